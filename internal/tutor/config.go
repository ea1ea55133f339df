package tutor

// SummaryCompressionThreshold is the character count at which the running
// prior-turn summary is compressed before the next prompt is built.
const SummaryCompressionThreshold = 800

// Config holds generation settings for the tutor.
type Config struct {
	MaxTokens   int
	Temperature float64

	// MaxReplyChars is the character budget for learner-visible text after
	// sanitization.
	MaxReplyChars int

	// MaxSummaryChars bounds the prior summary included in a step prompt.
	MaxSummaryChars int
}

// DefaultConfig returns sensible defaults for step generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:       512,
		Temperature:     0.5,
		MaxReplyChars:   600,
		MaxSummaryChars: 400,
	}
}

// PlannerConfig holds settings for learning plan generation.
type PlannerConfig struct {
	MaxTokens   int
	Temperature float64

	// MinModules and MaxModules bound the plan size the model may produce.
	MinModules int
	MaxModules int
}

// DefaultPlannerConfig returns sensible defaults for plan generation.
func DefaultPlannerConfig() PlannerConfig {
	return PlannerConfig{
		MaxTokens:   768,
		Temperature: 0.4,
		MinModules:  3,
		MaxModules:  6,
	}
}

// SummarizerConfig holds compression settings.
type SummarizerConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultSummarizerConfig returns sensible defaults for summary compression.
func DefaultSummarizerConfig() SummarizerConfig {
	return SummarizerConfig{
		MaxTokens:   256,
		Temperature: 0.3,
	}
}
