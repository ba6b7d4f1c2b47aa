package dataset

import "time"

// ============================================================================
// DATASET TYPES — Typed records for the movie and actor-role relations
// ============================================================================
// Two input relations, read from CSV:
//
//	movies — one row per movie release. Titles are NOT unique.
//	actors — one row per (actor, movie) appearance. The only link between
//	         the two relations is exact title-string equality; there is no
//	         foreign key.
//
// Null conventions:
//	VoteAverage nil  — vote_average cell was empty
//	ReleaseDate nil  — release_date cell was empty or unparseable
//	ActorRole.Name "" — actor_name cell was empty
//
// All other fields are required; an empty or malformed cell is a parse error.
// ============================================================================

// Movie is a single row of the movies relation.
type Movie struct {
	Title       string     `json:"originalTitle"`
	Revenue     float64    `json:"revenue"`
	Budget      float64    `json:"budget"`
	VoteCount   int        `json:"voteCount"`
	VoteAverage *float64   `json:"voteAverage,omitempty"`
	ReleaseDate *time.Time `json:"releaseDate,omitempty"`
}

// Year returns the release year and true, or zero and false when the
// release date is unknown.
func (m Movie) Year() (int, bool) {
	if m.ReleaseDate == nil {
		return 0, false
	}
	return m.ReleaseDate.Year(), true
}

// ActorRole is a single row of the actors relation: one appearance of one
// actor in one movie.
type ActorRole struct {
	ActorID    string `json:"actorId"`
	Name       string `json:"actorName,omitempty"`
	MovieTitle string `json:"movieTitle"`
}

// Named reports whether the role carries an actor name. Nameless roles are
// dropped wherever a report groups by or emits the actor name.
func (r ActorRole) Named() bool { return r.Name != "" }
