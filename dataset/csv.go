package dataset

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/araddon/dateparse"
)

// ============================================================================
// CSV INGESTION — Parses the movie and actor-role relations
// ============================================================================
// Headers are resolved by name, so column order is free and extra columns
// are ignored. A missing required header is an error. Malformed numeric
// cells are errors naming the row and column — with one deliberate
// exception: release_date coerces to nil on any value dateparse cannot
// handle, because the source data mixes date formats freely.
// ============================================================================

// Required movie headers. Exact names are part of the input contract.
const (
	colTitle       = "original_title"
	colRevenue     = "revenue"
	colBudget      = "budget"
	colVoteCount   = "vote_count"
	colVoteAverage = "vote_average"
	colReleaseDate = "release_date"

	colActorID    = "actor_id"
	colActorName  = "actor_name"
	colMovieTitle = "movie_title"
)

// LoadMovies reads and parses a movie CSV file.
func LoadMovies(path string) ([]Movie, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read movies file: %w", err)
	}
	return ParseMovies(data)
}

// LoadActors reads and parses an actor-role CSV file.
func LoadActors(path string) ([]ActorRole, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read actors file: %w", err)
	}
	return ParseActors(data)
}

// ParseMovies parses movie CSV bytes into typed records.
func ParseMovies(data []byte) ([]Movie, error) {
	reader := csv.NewReader(bytes.NewReader(data))

	cols, err := readHeader(reader,
		colTitle, colRevenue, colBudget, colVoteCount, colVoteAverage, colReleaseDate)
	if err != nil {
		return nil, err
	}

	var movies []Movie
	for row := 1; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("movies row %d: %w", row, err)
		}

		m := Movie{Title: field(record, cols[colTitle])}

		if m.Revenue, err = parseFloat(record, cols, colRevenue); err != nil {
			return nil, fmt.Errorf("movies row %d: %w", row, err)
		}
		if m.Budget, err = parseFloat(record, cols, colBudget); err != nil {
			return nil, fmt.Errorf("movies row %d: %w", row, err)
		}
		if m.VoteCount, err = parseInt(record, cols, colVoteCount); err != nil {
			return nil, fmt.Errorf("movies row %d: %w", row, err)
		}

		// Empty vote_average is a legitimate null; anything else must parse.
		if raw := field(record, cols[colVoteAverage]); raw != "" {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("movies row %d: column %q: invalid number %q", row, colVoteAverage, raw)
			}
			m.VoteAverage = &v
		}

		// Dates arrive in mixed formats. Unparseable values coerce to nil
		// and the row survives; date-dependent reports drop it later.
		if raw := field(record, cols[colReleaseDate]); raw != "" {
			if t, err := dateparse.ParseAny(raw); err == nil {
				m.ReleaseDate = &t
			}
		}

		movies = append(movies, m)
	}

	return movies, nil
}

// ParseActors parses actor-role CSV bytes into typed records.
func ParseActors(data []byte) ([]ActorRole, error) {
	reader := csv.NewReader(bytes.NewReader(data))

	cols, err := readHeader(reader, colActorID, colActorName, colMovieTitle)
	if err != nil {
		return nil, err
	}

	var roles []ActorRole
	for row := 1; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("actors row %d: %w", row, err)
		}

		roles = append(roles, ActorRole{
			ActorID:    field(record, cols[colActorID]),
			Name:       field(record, cols[colActorName]),
			MovieTitle: field(record, cols[colMovieTitle]),
		})
	}

	return roles, nil
}

// readHeader reads the header row and resolves each required column to its
// index. Missing columns are reported together.
func readHeader(reader *csv.Reader, required ...string) (map[string]int, error) {
	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}

	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[strings.TrimSpace(h)] = i
	}

	var missing []string
	cols := make(map[string]int, len(required))
	for _, name := range required {
		i, ok := index[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		cols[name] = i
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	return cols, nil
}

func field(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func parseFloat(record []string, cols map[string]int, name string) (float64, error) {
	raw := field(record, cols[name])
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("column %q: invalid number %q", name, raw)
	}
	return v, nil
}

func parseInt(record []string, cols map[string]int, name string) (int, error) {
	raw := field(record, cols[name])
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("column %q: invalid integer %q", name, raw)
	}
	return v, nil
}
