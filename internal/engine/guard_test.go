package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuard_TryAcquire(t *testing.T) {
	g := NewGuard(10, time.Minute)

	release, ok := g.TryAcquire("learner-1")
	require.True(t, ok)

	_, ok = g.TryAcquire("learner-1")
	assert.False(t, ok)

	// Independent learners do not contend.
	release2, ok := g.TryAcquire("learner-2")
	require.True(t, ok)
	release2()

	release()
	_, ok = g.TryAcquire("learner-1")
	assert.True(t, ok)
}

func TestGuard_ReleaseIsIdempotent(t *testing.T) {
	g := NewGuard(10, time.Minute)

	release, ok := g.TryAcquire("learner-1")
	require.True(t, ok)
	release()
	release()

	release, ok = g.TryAcquire("learner-1")
	require.True(t, ok)
	defer release()

	// The duplicate release above must not have cleared this acquisition.
	_, ok = g.TryAcquire("learner-1")
	assert.False(t, ok)
}

func TestGuard_AllowActionFixedWindow(t *testing.T) {
	g := NewGuard(2, 3*time.Second)
	base := time.Now()
	g.now = func() time.Time { return base }

	assert.True(t, g.AllowAction("learner-1"))
	assert.True(t, g.AllowAction("learner-1"))
	assert.False(t, g.AllowAction("learner-1"))

	// The budget is per learner.
	assert.True(t, g.AllowAction("learner-2"))

	// A new window opens once the old one elapses.
	g.now = func() time.Time { return base.Add(3 * time.Second) }
	assert.True(t, g.AllowAction("learner-1"))
}

func TestGuard_Reset(t *testing.T) {
	g := NewGuard(1, time.Minute)

	_, ok := g.TryAcquire("learner-1")
	require.True(t, ok)
	require.True(t, g.AllowAction("learner-1"))
	require.False(t, g.AllowAction("learner-1"))

	g.Reset("learner-1")

	release, ok := g.TryAcquire("learner-1")
	assert.True(t, ok)
	defer release()
	assert.True(t, g.AllowAction("learner-1"))
}
