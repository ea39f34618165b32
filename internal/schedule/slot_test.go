package schedule

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlot_Fires(t *testing.T) {
	var s Slot
	done := make(chan struct{})

	s.Schedule(10*time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduled call never fired")
	}
	assert.False(t, s.Pending())
}

// TestSlot_ReplaceCollapsesBurst verifies that rescheduling replaces the
// pending fire: a burst of N schedules produces exactly one call.
func TestSlot_ReplaceCollapsesBurst(t *testing.T) {
	var s Slot
	var calls atomic.Int32

	for i := 0; i < 10; i++ {
		s.Schedule(30*time.Millisecond, func() { calls.Add(1) })
	}

	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}

func TestSlot_Stop(t *testing.T) {
	var s Slot
	var calls atomic.Int32

	s.Schedule(20*time.Millisecond, func() { calls.Add(1) })
	require.True(t, s.Pending())
	s.Stop()
	require.False(t, s.Pending())

	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())
}

func TestSlot_ReusableAfterFire(t *testing.T) {
	var s Slot
	var calls atomic.Int32

	s.Schedule(5*time.Millisecond, func() { calls.Add(1) })
	time.Sleep(50 * time.Millisecond)
	s.Schedule(5*time.Millisecond, func() { calls.Add(1) })
	time.Sleep(50 * time.Millisecond)

	assert.Equal(t, int32(2), calls.Load())
}
