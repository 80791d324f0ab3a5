// Package ratelimit ограничивает частоту подачи объявлений.
// Окно скользящее и живет в памяти: при рестарте сервиса счетчики
// обнуляются, что для защиты от спама приемлемо.
package ratelimit

import (
	"fmt"
	"sync"
	"time"
)

const (
	// DefaultCooldown - минимальная пауза между подачами одного пользователя.
	DefaultCooldown = time.Minute
	// DefaultMaxPerWindow - подач в окно на одного пользователя.
	DefaultMaxPerWindow = 5
	// DefaultWindow - длина окна.
	DefaultWindow = time.Hour
)

// SlidingWindowLimiter реализует RateLimiterPort.
type SlidingWindowLimiter struct {
	mu       sync.Mutex
	events   map[string][]time.Time
	window   time.Duration
	max      int
	cooldown time.Duration
	now      func() time.Time
}

func NewSlidingWindowLimiter(window time.Duration, max int, cooldown time.Duration) *SlidingWindowLimiter {
	if window <= 0 {
		window = DefaultWindow
	}
	if max <= 0 {
		max = DefaultMaxPerWindow
	}
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}
	return &SlidingWindowLimiter{
		events:   make(map[string][]time.Time),
		window:   window,
		max:      max,
		cooldown: cooldown,
		now:      time.Now,
	}
}

// Check фиксирует попытку и отвечает, разрешена ли она. Отказ попытку
// не записывает: забаненная по частоте попытка не продлевает штраф.
func (l *SlidingWindowLimiter) Check(key string) (denied bool, reason string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.window)

	recent := l.events[key][:0]
	for _, t := range l.events[key] {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}
	l.events[key] = recent

	if len(recent) > 0 {
		last := recent[len(recent)-1]
		if wait := l.cooldown - now.Sub(last); wait > 0 {
			return true, fmt.Sprintf("Подождите %d сек. перед следующей подачей", int(wait.Seconds())+1)
		}
	}
	if len(recent) >= l.max {
		return true, fmt.Sprintf("Не больше %d объявлений в час", l.max)
	}

	l.events[key] = append(recent, now)
	return false, ""
}
