package reports

// ============================================================================
// REPORT OPTIONS — Functional options shared by all reports
// ============================================================================

// Option configures report behavior via the functional options pattern.
type Option func(*config)

type config struct {
	Limit   int
	Weights Weights
}

// Weights are the score coefficients used by TopMovieActors:
//
//	score = revenue*Revenue + vote_count*Vote + budget*Budget
//
// Vote multiplies vote_count, not vote_average. The original report was
// written that way, and its output is the contract.
type Weights struct {
	Revenue float64
	Vote    float64
	Budget  float64
}

// DefaultWeights returns the standard score coefficients (0.5 each).
func DefaultWeights() Weights {
	return Weights{Revenue: 0.5, Vote: 0.5, Budget: 0.5}
}

// WithLimit caps the number of result groups: top movies for
// TopMovieActors, actors for Collaborations and MedianScores, movies per
// year for YearlyTopGrossing. A zero limit yields an empty result;
// negative values are ignored and the report's default applies.
func WithLimit(n int) Option {
	return func(c *config) {
		if n >= 0 {
			c.Limit = n
		}
	}
}

// WithWeights overrides the score coefficients used by TopMovieActors.
func WithWeights(w Weights) Option {
	return func(c *config) {
		c.Weights = w
	}
}

// applyOptions creates a config from functional options, with the report's
// own default limit.
func applyOptions(defaultLimit int, opts []Option) *config {
	cfg := &config{
		Limit:   defaultLimit,
		Weights: DefaultWeights(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
