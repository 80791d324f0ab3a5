package catalogsession

import (
	"sync"
	"time"
)

// DefaultDebounce — пауза тишины после последнего нажатия, по истечении
// которой уходит поисковый запрос.
const DefaultDebounce = 400 * time.Millisecond

// Debouncer сводит шквал нажатий в один вызов: каждый Trigger отменяет
// предыдущий таймер и заводит новый, так что fn выполнится один раз —
// спустя delay после последнего Trigger. Максимального окна ожидания
// нет: непрерывно печатающий пользователь откладывает запрос до паузы.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Debouncer{delay: delay}
}

// Trigger перезаводит таймер тишины. fn будет вызван в горутине таймера,
// если до истечения delay не случится новый Trigger или Cancel.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Cancel отменяет ожидающий таймер, если он есть. Используется явной
// очисткой поиска, которая обходит дебаунс и стреляет немедленно.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
