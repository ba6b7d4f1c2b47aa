package reports

import (
	"math"
	"sort"

	"github.com/cinelens-org/cinelens/dataset"
)

// ============================================================================
// TOP MOVIE ACTORS — Weighted movie scores joined to the actor roster
// ============================================================================
// Pipeline: score every movie → select top N → join actor roles by title →
// round → filter → sort. Each selected movie appears once per credited
// actor, so the row count is the sum of the selected movies' cast sizes.
// ============================================================================

const defaultTopMovies = 2

// TopMovieActors scores each movie as
//
//	revenue*Weights.Revenue + vote_count*Weights.Vote + budget*Weights.Budget
//
// selects the WithLimit highest-scored movies (default 2; ties keep input
// order), and lists the actors credited in them. Scores are rounded to one
// decimal and only rows with a positive rounded score are kept. Rows order
// by raw score descending, then actor name ascending.
func TopMovieActors(movies []dataset.Movie, actors []dataset.ActorRole, opts ...Option) ActorCredits {
	cfg := applyOptions(defaultTopMovies, opts)
	w := cfg.Weights

	type scored struct {
		title string
		score float64
	}

	ranked := make([]scored, 0, len(movies))
	for _, m := range movies {
		ranked = append(ranked, scored{
			title: m.Title,
			score: m.Revenue*w.Revenue + float64(m.VoteCount)*w.Vote + m.Budget*w.Budget,
		})
	}

	// Stable sort keeps input order for equal scores.
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })
	if len(ranked) > cfg.Limit {
		ranked = ranked[:cfg.Limit]
	}

	// A title can appear more than once among the selected movies; each
	// occurrence joins independently, so keep a score list per title.
	topScores := make(map[string][]float64, len(ranked))
	for _, s := range ranked {
		topScores[s.title] = append(topScores[s.title], s.score)
	}

	type credit struct {
		raw float64
		row ActorCredit
	}

	var credits []credit
	for _, role := range actors {
		if !role.Named() {
			continue
		}
		for _, raw := range topScores[role.MovieTitle] {
			rounded := math.Round(raw*10) / 10
			if rounded <= 0 {
				continue
			}
			credits = append(credits, credit{
				raw: raw,
				row: ActorCredit{Movie: role.MovieTitle, Score: rounded, Actor: role.Name},
			})
		}
	}

	// Order by the raw score so movies whose scores round to the same value
	// stay in rank order, then by actor name within a movie.
	sort.SliceStable(credits, func(i, j int) bool {
		if credits[i].raw != credits[j].raw {
			return credits[i].raw > credits[j].raw
		}
		return credits[i].row.Actor < credits[j].row.Actor
	})

	result := make(ActorCredits, 0, len(credits))
	for _, c := range credits {
		result = append(result, c.row)
	}
	return result
}
