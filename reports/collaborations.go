package reports

import (
	"sort"

	"github.com/cinelens-org/cinelens/dataset"
)

// ============================================================================
// COLLABORATIONS — Distinct co-actor counts per actor
// ============================================================================
// Built as a co-occurrence graph instead of a materialized self-join: group
// roles into per-movie casts, then record each pair of cast members as
// neighbors. An actor's count is the size of their distinct-neighbor set,
// so a co-star shared across several movies counts once.
// ============================================================================

const defaultCollaborators = 5

// Collaborations reports, for each named actor, how many distinct other
// actors they have appeared with across all movies. Roles with an empty
// actor name are dropped; pairs sharing an actor ID are not collaborations.
// Results order by count descending, then name ascending, truncated to
// WithLimit actors (default 5).
func Collaborations(actors []dataset.ActorRole, opts ...Option) Collaborators {
	cfg := applyOptions(defaultCollaborators, opts)

	type member struct {
		id   string
		name string
	}

	casts := make(map[string][]member)
	for _, role := range actors {
		if !role.Named() {
			continue
		}
		casts[role.MovieTitle] = append(casts[role.MovieTitle], member{id: role.ActorID, name: role.Name})
	}

	// Adjacency keyed by actor name: the grouping key is the name, the
	// self-pair exclusion is by ID.
	neighbors := make(map[string]map[string]struct{})
	for _, cast := range casts {
		for _, a := range cast {
			for _, b := range cast {
				if a.id == b.id {
					continue
				}
				set, ok := neighbors[a.name]
				if !ok {
					set = make(map[string]struct{})
					neighbors[a.name] = set
				}
				set[b.name] = struct{}{}
			}
		}
	}

	result := make(Collaborators, 0, len(neighbors))
	for name, set := range neighbors {
		result = append(result, Collaborator{Actor: name, Count: len(set)})
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Actor < result[j].Actor
	})

	if len(result) > cfg.Limit {
		result = result[:cfg.Limit]
	}
	return result
}
