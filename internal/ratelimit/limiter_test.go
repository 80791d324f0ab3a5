package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// testClock — управляемое время для детерминированных тестов лимитера.
type testClock struct {
	t time.Time
}

func (c *testClock) now() time.Time { return c.t }

func (c *testClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestLimiter() (*SlidingWindowLimiter, *testClock) {
	clock := &testClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	l := NewSlidingWindowLimiter(time.Hour, 3, time.Minute)
	l.now = clock.now
	return l, clock
}

func TestFirstAttemptIsAllowed(t *testing.T) {
	l, _ := newTestLimiter()
	denied, reason := l.Check("42")
	assert.False(t, denied)
	assert.Empty(t, reason)
}

func TestCooldownBetweenAttempts(t *testing.T) {
	l, clock := newTestLimiter()

	denied, _ := l.Check("42")
	assert.False(t, denied)

	clock.advance(30 * time.Second)
	denied, reason := l.Check("42")
	assert.True(t, denied)
	assert.Contains(t, reason, "Подождите")

	clock.advance(31 * time.Second)
	denied, _ = l.Check("42")
	assert.False(t, denied)
}

func TestWindowCap(t *testing.T) {
	l, clock := newTestLimiter()

	for i := 0; i < 3; i++ {
		denied, _ := l.Check("42")
		assert.False(t, denied, "attempt %d", i)
		clock.advance(2 * time.Minute)
	}

	denied, reason := l.Check("42")
	assert.True(t, denied)
	assert.Equal(t, "Не больше 3 объявлений в час", reason)
}

func TestDeniedAttemptIsNotRecorded(t *testing.T) {
	l, clock := newTestLimiter()

	_, _ = l.Check("42")
	clock.advance(10 * time.Second)
	// Отказ по кулдауну не должен сдвигать отсчёт паузы.
	denied, _ := l.Check("42")
	assert.True(t, denied)

	clock.advance(51 * time.Second) // минута с первой, успешной попытки
	denied, _ = l.Check("42")
	assert.False(t, denied)
}

func TestWindowSlides(t *testing.T) {
	l, clock := newTestLimiter()

	for i := 0; i < 3; i++ {
		denied, _ := l.Check("42")
		assert.False(t, denied)
		clock.advance(2 * time.Minute)
	}
	denied, _ := l.Check("42")
	assert.True(t, denied)

	// Спустя час старые попытки выпадают из окна.
	clock.advance(time.Hour)
	denied, _ = l.Check("42")
	assert.False(t, denied)
}

func TestKeysAreIndependent(t *testing.T) {
	l, _ := newTestLimiter()

	denied, _ := l.Check("42")
	assert.False(t, denied)

	denied, _ = l.Check("43")
	assert.False(t, denied)
}
