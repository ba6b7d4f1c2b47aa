package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// ============================================================================
// CINELENS CLI — Batch reports over movie/actor CSV datasets
// ============================================================================

const version = "0.1.0"

var (
	flagMovies  string
	flagActors  string
	flagConfig  string
	flagFormat  string
	flagOut     string
	flagVerbose bool
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "cinelens",
		Short:   "Batch analytical reports over movie and actor CSV datasets",
		Version: version,
		Example: `  cinelens repeated-titles --movies movies.csv
  cinelens top-actors --movies movies.csv --actors actors.csv --top 2 --format csv
  cinelens collaborations --actors actors.csv --top 5
  cinelens yearly-top --movies movies.csv --per-year 5 --out report.csv
  cinelens median-scores --movies movies.csv --actors actors.csv --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flagVerbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flagMovies, "movies", "", "Path to the movies CSV file")
	pf.StringVar(&flagActors, "actors", "", "Path to the actors CSV file")
	pf.StringVar(&flagConfig, "config", "", "Path to a YAML config file with default limits and weights")
	pf.StringVar(&flagFormat, "format", "pretty", "Output format: csv, json, pretty")
	pf.StringVar(&flagOut, "out", "", "Write output to a file instead of stdout")
	pf.BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	root.AddCommand(
		newRepeatedTitlesCmd(),
		newTopActorsCmd(),
		newCollaborationsCmd(),
		newYearlyTopCmd(),
		newMedianScoresCmd(),
	)

	return root
}
