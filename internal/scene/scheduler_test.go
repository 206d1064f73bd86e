package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchedulerFiresOnce(t *testing.T) {
	s := NewScheduler()
	fired := 0
	s.After("spawn", 3, func() { fired++ })

	for i := 0; i < 2; i++ {
		s.Advance()
	}
	assert.Equal(t, 0, fired, "must not fire early")
	assert.Equal(t, 1, s.Len())

	s.Advance()
	assert.Equal(t, 1, fired)
	assert.Zero(t, s.Len())

	for i := 0; i < 10; i++ {
		s.Advance()
	}
	assert.Equal(t, 1, fired, "single-shot action ran again")
}

func TestSchedulerSelfRescheduling(t *testing.T) {
	s := NewScheduler()
	fired := 0
	var arm func()
	arm = func() {
		s.After("spawn", 2, func() {
			fired++
			arm()
		})
	}
	arm()

	for i := 0; i < 10; i++ {
		s.Advance()
	}
	assert.Equal(t, 5, fired)
	assert.Equal(t, 1, s.Len())
}

func TestSchedulerRearmReplaces(t *testing.T) {
	s := NewScheduler()
	var log []string

	// Rapid restarts arm the same key repeatedly; only the last survives.
	for i := 0; i < 5; i++ {
		s.After("spawn", 1, func() { log = append(log, "old") })
	}
	s.After("spawn", 1, func() { log = append(log, "new") })

	s.Advance()
	assert.Equal(t, []string{"new"}, log)
	assert.Equal(t, 0, s.Len())
}

func TestSchedulerOrderAndCancel(t *testing.T) {
	s := NewScheduler()
	var log []string
	s.After("b", 1, func() { log = append(log, "b") })
	s.After("a", 1, func() { log = append(log, "a") })
	s.After("c", 1, func() { log = append(log, "c") })
	assert.True(t, s.Cancel("c"))
	assert.False(t, s.Cancel("missing"))

	assert.Equal(t, 2, s.Advance())
	assert.Equal(t, []string{"b", "a"}, log)
}

func TestSchedulerCancelFromAction(t *testing.T) {
	s := NewScheduler()
	ranB := false
	s.After("a", 1, func() { s.Cancel("b") })
	s.After("b", 1, func() { ranB = true })

	s.Advance()
	assert.False(t, ranB, "action cancelled by an earlier one must not run")
}

func TestSchedulerClear(t *testing.T) {
	s := NewScheduler()
	s.After("x", 5, func() { t.Fatal("cleared action ran") })
	s.Advance()
	s.Clear()

	assert.Equal(t, 0, s.Now())
	assert.Equal(t, 0, s.Len())
	for i := 0; i < 10; i++ {
		s.Advance()
	}
}

func TestSchedulerZeroDelay(t *testing.T) {
	s := NewScheduler()
	fired := false
	s.After("x", 0, func() { fired = true })
	assert.False(t, fired)
	s.Advance()
	assert.True(t, fired)
}
