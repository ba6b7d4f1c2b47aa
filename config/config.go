package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cinelens-org/cinelens/reports"
)

// ============================================================================
// CONFIG — YAML defaults for the cinelens CLI
// ============================================================================
// A config file sets the default report limits and score weights; flags
// given on the command line still win. Example:
//
//	limits:
//	  top_movies: 3
//	  collaborators: 10
//	  movies_per_year: 5
//	  median_actors: 5
//	weights:
//	  revenue: 0.5
//	  vote: 0.3
//	  budget: 0.2
// ============================================================================

// Config holds the CLI defaults.
type Config struct {
	Limits  Limits  `yaml:"limits"`
	Weights Weights `yaml:"weights"`
}

// Limits are per-report result caps.
type Limits struct {
	TopMovies     int `yaml:"top_movies"`
	Collaborators int `yaml:"collaborators"`
	MoviesPerYear int `yaml:"movies_per_year"`
	MedianActors  int `yaml:"median_actors"`
}

// Weights are the movie score coefficients.
type Weights struct {
	Revenue float64 `yaml:"revenue"`
	Vote    float64 `yaml:"vote"`
	Budget  float64 `yaml:"budget"`
}

// Default returns the built-in defaults, matching each report's own.
func Default() Config {
	w := reports.DefaultWeights()
	return Config{
		Limits: Limits{
			TopMovies:     2,
			Collaborators: 5,
			MoviesPerYear: 5,
			MedianActors:  5,
		},
		Weights: Weights{
			Revenue: w.Revenue,
			Vote:    w.Vote,
			Budget:  w.Budget,
		},
	}
}

// Load reads a YAML config file over the built-in defaults. Fields absent
// from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// ReportWeights converts the config weights to the reports package type.
func (c Config) ReportWeights() reports.Weights {
	return reports.Weights{
		Revenue: c.Weights.Revenue,
		Vote:    c.Weights.Vote,
		Budget:  c.Weights.Budget,
	}
}
