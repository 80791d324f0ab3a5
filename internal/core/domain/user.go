package domain

import "time"

// User — пользователь Telegram, подававший объявления или избранное.
type User struct {
	ID         int64
	TelegramID int64
	Username   string
	FullName   string
	Phone      string
	IsAdmin    bool
	IsBanned   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Favorite — связь пользователя с понравившимся объявлением.
// Уникальность по (UserID, AdType, AdID) гарантирует БД.
type Favorite struct {
	ID        int64
	UserID    int64
	AdType    AdType
	AdID      int64
	CreatedAt time.Time
}

// AdStatusCounts — количество объявлений пользователя по статусам.
type AdStatusCounts struct {
	Active   int
	Pending  int
	Rejected int
}

// Total возвращает суммарное количество по всем статусам.
func (c AdStatusCounts) Total() int {
	return c.Active + c.Pending + c.Rejected
}

// Profile — профиль пользователя со статистикой его объявлений.
type Profile struct {
	Name        string
	Username    string
	MemberSince *time.Time
	Cars        AdStatusCounts
	Plates      AdStatusCounts
}

// ModerationStats — сводка по объявлениям для админ-панели
// (авто и номера вместе).
type ModerationStats struct {
	Pending  int
	Approved int
	Rejected int
}

func (s ModerationStats) Total() int {
	return s.Pending + s.Approved + s.Rejected
}
