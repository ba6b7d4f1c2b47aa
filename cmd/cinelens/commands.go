package main

import (
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/cinelens-org/cinelens/config"
	"github.com/cinelens-org/cinelens/dataset"
	"github.com/cinelens-org/cinelens/reports"
)

// ============================================================================
// REPORT COMMANDS — One subcommand per report
// ============================================================================
// Precedence for limits and weights: explicit flag > config file > built-in
// default. Each command loads only the dataset(s) its report needs.
// ============================================================================

// loadConfig returns the effective defaults: the built-ins, overlaid by the
// --config file when one is given.
func loadConfig() (config.Config, error) {
	if flagConfig == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	log.Debug().Str("path", flagConfig).Msg("Loaded config file")
	return cfg, nil
}

func loadMovies() ([]dataset.Movie, error) {
	if flagMovies == "" {
		return nil, errors.New("--movies is required")
	}
	start := time.Now()
	movies, err := dataset.LoadMovies(flagMovies)
	if err != nil {
		return nil, err
	}
	log.Info().
		Str("path", flagMovies).
		Int("rows", len(movies)).
		Dur("elapsed", time.Since(start)).
		Msg("Loaded movies dataset")
	return movies, nil
}

func loadActors() ([]dataset.ActorRole, error) {
	if flagActors == "" {
		return nil, errors.New("--actors is required")
	}
	start := time.Now()
	actors, err := dataset.LoadActors(flagActors)
	if err != nil {
		return nil, err
	}
	log.Info().
		Str("path", flagActors).
		Int("rows", len(actors)).
		Dur("elapsed", time.Since(start)).
		Msg("Loaded actors dataset")
	return actors, nil
}

// effectiveLimit resolves a limit flag against the config default.
func effectiveLimit(cmd *cobra.Command, name string, flagValue, configValue int) int {
	if cmd.Flags().Changed(name) {
		return flagValue
	}
	return configValue
}

func newRepeatedTitlesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repeated-titles",
		Short: "List movie titles that appear more than once",
		RunE: func(cmd *cobra.Command, args []string) error {
			movies, err := loadMovies()
			if err != nil {
				return err
			}
			result := reports.RepeatedTitles(movies)
			log.Debug().Int("rows", len(result)).Msg("Report computed")
			return render(result, result.Table())
		},
	}
}

func newTopActorsCmd() *cobra.Command {
	var (
		top           int
		revenueWeight float64
		voteWeight    float64
		budgetWeight  float64
	)

	cmd := &cobra.Command{
		Use:   "top-actors",
		Short: "List actors credited in the highest-scored movies",
		Long: `List actors credited in the highest-scored movies.

Each movie is scored as
    revenue*revenue-weight + vote_count*vote-weight + budget*budget-weight
and the top N movies are joined to the actor roster by title.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			movies, err := loadMovies()
			if err != nil {
				return err
			}
			actors, err := loadActors()
			if err != nil {
				return err
			}

			weights := cfg.ReportWeights()
			if cmd.Flags().Changed("revenue-weight") {
				weights.Revenue = revenueWeight
			}
			if cmd.Flags().Changed("vote-weight") {
				weights.Vote = voteWeight
			}
			if cmd.Flags().Changed("budget-weight") {
				weights.Budget = budgetWeight
			}

			result := reports.TopMovieActors(movies, actors,
				reports.WithLimit(effectiveLimit(cmd, "top", top, cfg.Limits.TopMovies)),
				reports.WithWeights(weights),
			)
			log.Debug().Int("rows", len(result)).Msg("Report computed")
			return render(result, result.Table())
		},
	}

	cmd.Flags().IntVar(&top, "top", 2, "Number of top movies to include")
	cmd.Flags().Float64Var(&revenueWeight, "revenue-weight", 0.5, "Revenue coefficient in the movie score")
	cmd.Flags().Float64Var(&voteWeight, "vote-weight", 0.5, "Vote-count coefficient in the movie score")
	cmd.Flags().Float64Var(&budgetWeight, "budget-weight", 0.5, "Budget coefficient in the movie score")
	return cmd
}

func newCollaborationsCmd() *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "collaborations",
		Short: "Rank actors by the number of distinct co-actors",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			actors, err := loadActors()
			if err != nil {
				return err
			}
			result := reports.Collaborations(actors,
				reports.WithLimit(effectiveLimit(cmd, "top", top, cfg.Limits.Collaborators)),
			)
			log.Debug().Int("rows", len(result)).Msg("Report computed")
			return render(result, result.Table())
		},
	}

	cmd.Flags().IntVar(&top, "top", 5, "Number of actors to include")
	return cmd
}

func newYearlyTopCmd() *cobra.Command {
	var perYear int

	cmd := &cobra.Command{
		Use:   "yearly-top",
		Short: "Select the top-grossing movies per release year with year statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			movies, err := loadMovies()
			if err != nil {
				return err
			}
			result := reports.YearlyTopGrossing(movies,
				reports.WithLimit(effectiveLimit(cmd, "per-year", perYear, cfg.Limits.MoviesPerYear)),
			)
			log.Debug().Int("rows", len(result)).Msg("Report computed")
			return render(result, result.Table())
		},
	}

	cmd.Flags().IntVar(&perYear, "per-year", 5, "Number of movies to include per year")
	return cmd
}

func newMedianScoresCmd() *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "median-scores",
		Short: "Rank actors by the median vote average of their movies",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			movies, err := loadMovies()
			if err != nil {
				return err
			}
			actors, err := loadActors()
			if err != nil {
				return err
			}
			result := reports.MedianScores(movies, actors,
				reports.WithLimit(effectiveLimit(cmd, "top", top, cfg.Limits.MedianActors)),
			)
			log.Debug().Int("rows", len(result)).Msg("Report computed")
			return render(result, result.Table())
		},
	}

	cmd.Flags().IntVar(&top, "top", 5, "Number of actors to include")
	return cmd
}
