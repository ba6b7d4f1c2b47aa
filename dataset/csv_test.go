package dataset

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var moviesCSV = []byte(`original_title,revenue,budget,vote_count,vote_average,release_date
"Night Train, Part II",1000000,400000,120,7.8,2001-05-04
Solaris,0,2000000,50,,12/25/1999
Ghost Reel,500,100,10,6.1,
Static,250,50,5,5.0,not-a-date
`)

var actorsCSV = []byte(`actor_id,actor_name,movie_title
a1,Ada Vance,Solaris
a2,,Solaris
a3,Boris Keel,Ghost Reel
`)

func TestParseMovies(t *testing.T) {
	movies, err := ParseMovies(moviesCSV)
	require.NoError(t, err)
	require.Len(t, movies, 4)

	// Quoted titles with commas survive.
	assert.Equal(t, "Night Train, Part II", movies[0].Title)
	assert.Equal(t, 1000000.0, movies[0].Revenue)
	assert.Equal(t, 400000.0, movies[0].Budget)
	assert.Equal(t, 120, movies[0].VoteCount)
	require.NotNil(t, movies[0].VoteAverage)
	assert.Equal(t, 7.8, *movies[0].VoteAverage)
	require.NotNil(t, movies[0].ReleaseDate)
	assert.Equal(t, time.Date(2001, 5, 4, 0, 0, 0, 0, time.UTC), movies[0].ReleaseDate.UTC())

	// Empty vote_average is null, not zero.
	assert.Nil(t, movies[1].VoteAverage)

	// Mixed date formats parse.
	require.NotNil(t, movies[1].ReleaseDate)
	assert.Equal(t, 1999, movies[1].ReleaseDate.Year())
	assert.Equal(t, time.December, movies[1].ReleaseDate.Month())

	// Empty and unparseable dates coerce to nil; the rows survive.
	assert.Nil(t, movies[2].ReleaseDate)
	assert.Nil(t, movies[3].ReleaseDate)
}

func TestParseMoviesColumnOrderFree(t *testing.T) {
	shuffled := []byte(`release_date,vote_average,original_title,genre,budget,revenue,vote_count
2010-07-16,8.3,Inception,Sci-Fi,160000000,825532764,31000
`)
	movies, err := ParseMovies(shuffled)
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "Inception", movies[0].Title)
	assert.Equal(t, 825532764.0, movies[0].Revenue)
	assert.Equal(t, 31000, movies[0].VoteCount)
}

func TestParseMoviesErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantErr string
	}{
		{
			name:    "missing columns",
			data:    []byte("original_title,revenue\nSolaris,100\n"),
			wantErr: "missing required columns",
		},
		{
			name: "bad revenue",
			data: []byte("original_title,revenue,budget,vote_count,vote_average,release_date\n" +
				"Solaris,lots,100,5,7.0,2001-01-01\n"),
			wantErr: `column "revenue"`,
		},
		{
			name: "bad vote_count",
			data: []byte("original_title,revenue,budget,vote_count,vote_average,release_date\n" +
				"Solaris,100,100,5.5.5,7.0,2001-01-01\n"),
			wantErr: `column "vote_count"`,
		},
		{
			name: "bad vote_average",
			data: []byte("original_title,revenue,budget,vote_count,vote_average,release_date\n" +
				"Solaris,100,100,5,high,2001-01-01\n"),
			wantErr: `column "vote_average"`,
		},
		{
			name: "ragged row",
			data: []byte("original_title,revenue,budget,vote_count,vote_average,release_date\n" +
				"Solaris,100,100\n"),
			wantErr: "movies row 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMovies(tt.data)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseActors(t *testing.T) {
	roles, err := ParseActors(actorsCSV)
	require.NoError(t, err)
	require.Len(t, roles, 3)

	assert.Equal(t, "a1", roles[0].ActorID)
	assert.Equal(t, "Ada Vance", roles[0].Name)
	assert.Equal(t, "Solaris", roles[0].MovieTitle)
	assert.True(t, roles[0].Named())

	// Empty actor names are preserved as "" and flagged unnamed.
	assert.False(t, roles[1].Named())
}

func TestParseActorsMissingColumns(t *testing.T) {
	_, err := ParseActors([]byte("actor_id,movie_title\na1,Solaris\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "actor_name")
}

func TestLoadMovies(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movies.csv")
	require.NoError(t, os.WriteFile(path, moviesCSV, 0o644))

	movies, err := LoadMovies(path)
	require.NoError(t, err)
	assert.Len(t, movies, 4)
}

func TestLoadMoviesNotFound(t *testing.T) {
	_, err := LoadMovies(filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read movies file")
}

func TestLoadActors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "actors.csv")
	require.NoError(t, os.WriteFile(path, actorsCSV, 0o644))

	roles, err := LoadActors(path)
	require.NoError(t, err)
	assert.Len(t, roles, 3)
}
