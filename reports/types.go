package reports

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// ============================================================================
// RESULT TYPES — One typed row slice per report, plus a render-ready Table
// ============================================================================
// Every report returns a freshly built slice; inputs are never mutated and
// row order is part of each report's contract. The Table() methods produce
// the exact column names and order the output contract specifies — Table is
// the interchange surface for the CLI's CSV/JSON/pretty renderers.
// ============================================================================

// Table is a render-ready tabular result.
type Table struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// TitleCount is one repeated title and how many movie rows share it.
type TitleCount struct {
	Title string `json:"originalTitle"`
	Count int    `json:"nMovies"`
}

// TitleCounts is the RepeatedTitles result.
type TitleCounts []TitleCount

// Table renders the result with columns (original_title, n_movies).
func (r TitleCounts) Table() Table {
	t := Table{Columns: []string{"original_title", "n_movies"}}
	for _, row := range r {
		t.Rows = append(t.Rows, []string{row.Title, strconv.Itoa(row.Count)})
	}
	return t
}

// ActorCredit is one (movie, actor) pairing from the top-scored movies.
// Score is already rounded to one decimal.
type ActorCredit struct {
	Movie string  `json:"movieName"`
	Score float64 `json:"movieScore"`
	Actor string  `json:"actorName"`
}

// ActorCredits is the TopMovieActors result.
type ActorCredits []ActorCredit

// Table renders the result with columns ("Movie name", "Movie score", "Actor name").
func (r ActorCredits) Table() Table {
	t := Table{Columns: []string{"Movie name", "Movie score", "Actor name"}}
	for _, row := range r {
		t.Rows = append(t.Rows, []string{
			row.Movie,
			strconv.FormatFloat(row.Score, 'f', 1, 64),
			row.Actor,
		})
	}
	return t
}

// Collaborator is one actor and the number of distinct co-actors they have
// appeared with.
type Collaborator struct {
	Actor string `json:"actorName"`
	Count int    `json:"nCollaborators"`
}

// Collaborators is the Collaborations result.
type Collaborators []Collaborator

// Table renders the result with columns (actor_name, n_collaborators).
func (r Collaborators) Table() Table {
	t := Table{Columns: []string{"actor_name", "n_collaborators"}}
	for _, row := range r {
		t.Rows = append(t.Rows, []string{row.Actor, strconv.Itoa(row.Count)})
	}
	return t
}

// YearlyMovie is one top-grossing movie for a year, carrying that year's
// revenue aggregates. The aggregates repeat on every row of the same year
// and cover ALL movies released that year, not just the selected ones.
type YearlyMovie struct {
	Year          int     `json:"year"`
	Title         string  `json:"movieName"`
	Revenue       float64 `json:"movieRevenue"`
	MeanRevenue   float64 `json:"averageRevenue"`
	StdDevRevenue float64 `json:"stdDevRevenue"`
	MovieCount    int     `json:"numberOfMovies"`
}

// YearlyMovies is the YearlyTopGrossing result.
type YearlyMovies []YearlyMovie

// MarshalJSON emits a null standard deviation for single-movie years.
// encoding/json rejects NaN, and a year with exactly one movie is a
// perfectly valid report row.
func (m YearlyMovie) MarshalJSON() ([]byte, error) {
	type plain YearlyMovie
	row := struct {
		plain
		StdDevRevenue *float64 `json:"stdDevRevenue"`
	}{plain: plain(m)}
	if !math.IsNaN(m.StdDevRevenue) {
		row.StdDevRevenue = &m.StdDevRevenue
	}
	return json.Marshal(row)
}

// Table renders the result with columns (Year, Movie Name, Movie Revenue,
// Average Revenue, Standard Deviation of Revenue, Number of Movies).
func (r YearlyMovies) Table() Table {
	t := Table{Columns: []string{
		"Year", "Movie Name", "Movie Revenue",
		"Average Revenue", "Standard Deviation of Revenue", "Number of Movies",
	}}
	for _, row := range r {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(row.Year),
			row.Title,
			formatNumber(row.Revenue),
			formatNumber(row.MeanRevenue),
			formatNumber(row.StdDevRevenue),
			strconv.Itoa(row.MovieCount),
		})
	}
	return t
}

// ActorMedian is one actor and the median vote average across their movies.
type ActorMedian struct {
	Actor  string  `json:"actorName"`
	Median float64 `json:"medianVoteAverage"`
}

// ActorMedians is the MedianScores result.
type ActorMedians []ActorMedian

// Table renders the result with columns ("Actor Name", "Median Vote Average").
func (r ActorMedians) Table() Table {
	t := Table{Columns: []string{"Actor Name", "Median Vote Average"}}
	for _, row := range r {
		t.Rows = append(t.Rows, []string{row.Actor, formatNumber(row.Median)})
	}
	return t
}

// formatNumber renders whole values without decimals and fractional values
// with two. NaN (single-sample standard deviation) renders as "NaN".
func formatNumber(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return fmt.Sprintf("%.2f", v)
}
