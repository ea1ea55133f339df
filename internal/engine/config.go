package engine

import "time"

// Config holds engine tuning knobs.
type Config struct {
	// StepsPerModule is how many generated steps a dynamic module takes
	// before progression moves to the next module.
	StepsPerModule int

	// SessionMaxEntries bounds the session cache.
	SessionMaxEntries int

	// SessionTTL is how long an idle session survives in the cache.
	SessionTTL time.Duration

	// RateLimit is the number of user-invoked actions allowed per learner
	// within RateWindow; the next action inside the window gets
	// ReplySlowDown.
	RateLimit  int
	RateWindow time.Duration
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		StepsPerModule:    4,
		SessionMaxEntries: 512,
		SessionTTL:        30 * time.Minute,
		RateLimit:         1,
		RateWindow:        3 * time.Second,
	}
}
