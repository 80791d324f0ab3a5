package domain

import "errors"

// Ошибки уровня домена. Адаптеры превращают их в HTTP-статусы,
// use case'ы — пробрасывают как есть.
var (
	// ErrNotFound — объявление или пользователь не найдены (или скрыты статусом).
	ErrNotFound = errors.New("not found")

	// ErrForbidden — операция запрещена: не владелец или не админ.
	ErrForbidden = errors.New("forbidden")

	// ErrUserBanned — пользователь заблокирован и не может подавать объявления.
	ErrUserBanned = errors.New("user is banned")

	// ErrDuplicateAd — похожее объявление уже подано за последние 7 дней.
	// Клиент может повторить с флагом force.
	ErrDuplicateAd = errors.New("duplicate ad")

	// ErrNotEditable — объявление в статусе, который нельзя редактировать
	// (rejected и sold не редактируются).
	ErrNotEditable = errors.New("ad is not editable")
)

// ValidationError — агрегат ошибок валидации полей объявления.
// Messages содержит человекочитаемые сообщения для клиента.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	if len(e.Messages) == 0 {
		return "validation failed"
	}
	return e.Messages[0]
}

// AsValidationError возвращает *ValidationError, если err им является.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
