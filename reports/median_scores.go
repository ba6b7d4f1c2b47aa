package reports

import (
	"sort"

	"github.com/cinelens-org/cinelens/dataset"
)

// ============================================================================
// MEDIAN SCORES — Actors ranked by median vote average
// ============================================================================
// Inner join of movies to actor roles by exact title equality. A title that
// appears on several movie rows joins each of them, so every matching
// movie's vote average contributes to the actor's median. Rows with a null
// vote average or an empty actor name drop out of the join.
// ============================================================================

const defaultMedianActors = 5

// MedianScores ranks actors by the median vote_average of the movies they
// appear in, descending, truncated to WithLimit actors (default 5). Equal
// medians order by actor name ascending. Actors whose movie titles never
// match a movie row produce no output.
func MedianScores(movies []dataset.Movie, actors []dataset.ActorRole, opts ...Option) ActorMedians {
	cfg := applyOptions(defaultMedianActors, opts)

	votesByTitle := make(map[string][]float64)
	for _, m := range movies {
		if m.VoteAverage == nil {
			continue
		}
		votesByTitle[m.Title] = append(votesByTitle[m.Title], *m.VoteAverage)
	}

	votesByActor := make(map[string][]float64)
	for _, role := range actors {
		if !role.Named() {
			continue
		}
		votesByActor[role.Name] = append(votesByActor[role.Name], votesByTitle[role.MovieTitle]...)
	}

	result := make(ActorMedians, 0, len(votesByActor))
	for name, votes := range votesByActor {
		if len(votes) == 0 {
			continue
		}
		result = append(result, ActorMedian{Actor: name, Median: median(votes)})
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Median != result[j].Median {
			return result[i].Median > result[j].Median
		}
		return result[i].Actor < result[j].Actor
	})

	if len(result) > cfg.Limit {
		result = result[:cfg.Limit]
	}
	return result
}
