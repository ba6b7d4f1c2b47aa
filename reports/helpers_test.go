package reports

import (
	"testing"
	"time"

	"github.com/cinelens-org/cinelens/dataset"
)

// Shared fixture builders for the report tests.

func fptr(v float64) *float64 { return &v }

func day(t *testing.T, s string) *time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return &parsed
}

func role(id, name, title string) dataset.ActorRole {
	return dataset.ActorRole{ActorID: id, Name: name, MovieTitle: title}
}
