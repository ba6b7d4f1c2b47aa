package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinelens-org/cinelens/dataset"
)

func scoredMovie(title string, revenue float64, votes int, budget float64) dataset.Movie {
	return dataset.Movie{Title: title, Revenue: revenue, VoteCount: votes, Budget: budget}
}

func TestTopMovieActorsDefault(t *testing.T) {
	movies := []dataset.Movie{
		scoredMovie("Flop", 10, 0, 2),           // score 6
		scoredMovie("Blockbuster", 100, 10, 50), // score 80
		scoredMovie("Runner Up", 60, 4, 30),     // score 47
	}
	actors := []dataset.ActorRole{
		role("a1", "Zoe Hart", "Blockbuster"),
		role("a2", "Adam Bell", "Blockbuster"),
		role("a3", "Mia Cole", "Runner Up"),
		role("a4", "Bob Flopstar", "Flop"),
	}

	result := TopMovieActors(movies, actors)
	require.Len(t, result, 3)

	// Score descending, then actor name ascending within a movie.
	assert.Equal(t, ActorCredit{Movie: "Blockbuster", Score: 80, Actor: "Adam Bell"}, result[0])
	assert.Equal(t, ActorCredit{Movie: "Blockbuster", Score: 80, Actor: "Zoe Hart"}, result[1])
	assert.Equal(t, ActorCredit{Movie: "Runner Up", Score: 47, Actor: "Mia Cole"}, result[2])
}

func TestTopMovieActorsWeights(t *testing.T) {
	movies := []dataset.Movie{
		scoredMovie("Only", 10, 1, 0),
	}
	actors := []dataset.ActorRole{role("a1", "Solo Act", "Only")}

	// 10*1 + 1*0.04 + 0*0 = 10.04, rounds to 10.0.
	result := TopMovieActors(movies, actors,
		WithWeights(Weights{Revenue: 1, Vote: 0.04, Budget: 0}),
	)
	require.Len(t, result, 1)
	assert.Equal(t, 10.0, result[0].Score)
}

func TestTopMovieActorsPositiveFilter(t *testing.T) {
	movies := []dataset.Movie{scoredMovie("Zero", 0, 0, 0)}
	actors := []dataset.ActorRole{role("a1", "Ada Vance", "Zero")}

	// The movie is selected, but a non-positive rounded score drops its rows.
	assert.Empty(t, TopMovieActors(movies, actors))
}

func TestTopMovieActorsTieKeepsInputOrder(t *testing.T) {
	movies := []dataset.Movie{
		scoredMovie("First In", 50, 0, 0),
		scoredMovie("Second In", 50, 0, 0),
	}
	actors := []dataset.ActorRole{
		role("a1", "Ada Vance", "First In"),
		role("a2", "Boris Keel", "Second In"),
	}

	result := TopMovieActors(movies, actors, WithLimit(1))
	require.Len(t, result, 1)
	assert.Equal(t, "First In", result[0].Movie)
}

func TestTopMovieActorsDropsUnnamedRoles(t *testing.T) {
	movies := []dataset.Movie{scoredMovie("Blockbuster", 100, 10, 50)}
	actors := []dataset.ActorRole{
		role("a1", "", "Blockbuster"),
		role("a2", "Ada Vance", "Blockbuster"),
	}

	result := TopMovieActors(movies, actors)
	require.Len(t, result, 1)
	assert.Equal(t, "Ada Vance", result[0].Actor)
}

func TestTopMovieActorsTable(t *testing.T) {
	movies := []dataset.Movie{scoredMovie("Only", 33, 0, 0)}
	actors := []dataset.ActorRole{role("a1", "Ada Vance", "Only")}

	table := TopMovieActors(movies, actors).Table()
	assert.Equal(t, []string{"Movie name", "Movie score", "Actor name"}, table.Columns)
	require.Len(t, table.Rows, 1)
	// Scores always render with one decimal.
	assert.Equal(t, []string{"Only", "16.5", "Ada Vance"}, table.Rows[0])
}
