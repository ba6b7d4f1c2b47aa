// Package cinelens provides batch analytical reports over movie and
// actor-role CSV datasets.
//
// Usage:
//
//	import (
//	    "github.com/cinelens-org/cinelens/dataset"
//	    "github.com/cinelens-org/cinelens/reports"
//	)
//
//	movies, err := dataset.LoadMovies("movies.csv")
//	actors, err := dataset.LoadActors("actors.csv")
//
//	top := reports.TopMovieActors(movies, actors,
//	    reports.WithLimit(2),
//	    reports.WithWeights(reports.DefaultWeights()),
//	)
//
// Each report is a pure function: it reads the parsed records, builds a
// fresh result table, and never mutates its inputs. Reports are safe to
// call concurrently.
//
// The cinelens CLI (cmd/cinelens) exposes every report as a subcommand
// with CSV, JSON, and pretty-printed output.
package cinelens
