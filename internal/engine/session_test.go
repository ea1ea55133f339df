package engine

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionCache_PutGetDelete(t *testing.T) {
	c := NewSessionCache(8, time.Minute)

	_, ok := c.Get("learner-1")
	assert.False(t, ok)

	c.Put("learner-1", SessionState{Topic: "insulin basics", StepCount: 2})
	s, ok := c.Get("learner-1")
	require.True(t, ok)
	assert.Equal(t, "insulin basics", s.Topic)
	assert.Equal(t, 2, s.StepCount)

	c.Delete("learner-1")
	_, ok = c.Get("learner-1")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestSessionCache_TTLExpiry(t *testing.T) {
	c := NewSessionCache(8, time.Minute)
	base := time.Now()
	c.now = func() time.Time { return base }

	c.Put("learner-1", SessionState{Topic: "insulin basics"})

	c.now = func() time.Time { return base.Add(59 * time.Second) }
	_, ok := c.Get("learner-1")
	assert.True(t, ok)

	c.now = func() time.Time { return base.Add(2 * time.Minute) }
	_, ok = c.Get("learner-1")
	assert.False(t, ok)
}

func TestSessionCache_BoundEvictsOldest(t *testing.T) {
	c := NewSessionCache(3, time.Hour)

	for i := range 4 {
		c.Put(fmt.Sprintf("learner-%d", i), SessionState{StepCount: i})
	}

	assert.LessOrEqual(t, c.Len(), 3)
	_, ok := c.Get("learner-0")
	assert.False(t, ok)
	_, ok = c.Get("learner-3")
	assert.True(t, ok)
}

func TestSessionCache_RefreshDoesNotDuplicate(t *testing.T) {
	c := NewSessionCache(2, time.Hour)

	c.Put("learner-1", SessionState{StepCount: 1})
	c.Put("learner-1", SessionState{StepCount: 2})
	c.Put("learner-2", SessionState{StepCount: 1})

	assert.Equal(t, 2, c.Len())
	s, ok := c.Get("learner-1")
	require.True(t, ok)
	assert.Equal(t, 2, s.StepCount)
}
