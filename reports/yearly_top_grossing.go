package reports

import (
	"sort"

	"github.com/cinelens-org/cinelens/dataset"
)

// ============================================================================
// YEARLY TOP GROSSING — Top movies per release year with year aggregates
// ============================================================================
// Movies without a parseable release date are dropped. The per-year
// aggregates (mean revenue, sample standard deviation, movie count) are
// computed over every movie released that year, then repeated on each of
// the year's selected rows.
// ============================================================================

const defaultPerYear = 5

// YearlyTopGrossing selects, for each release year, the WithLimit movies
// with the highest revenue (default 5; all of them when a year has fewer).
// Revenue ties break by title ascending. Rows order by year ascending,
// then revenue descending, then title ascending.
func YearlyTopGrossing(movies []dataset.Movie, opts ...Option) YearlyMovies {
	cfg := applyOptions(defaultPerYear, opts)

	byYear := make(map[int][]dataset.Movie)
	for _, m := range movies {
		year, ok := m.Year()
		if !ok {
			continue
		}
		byYear[year] = append(byYear[year], m)
	}

	years := make([]int, 0, len(byYear))
	for year := range byYear {
		years = append(years, year)
	}
	sort.Ints(years)

	result := make(YearlyMovies, 0)
	for _, year := range years {
		group := byYear[year]

		revenues := make([]float64, len(group))
		for i, m := range group {
			revenues[i] = m.Revenue
		}
		avg := mean(revenues)
		std := sampleStdDev(revenues)

		selected := append([]dataset.Movie(nil), group...)
		sort.SliceStable(selected, func(i, j int) bool {
			if selected[i].Revenue != selected[j].Revenue {
				return selected[i].Revenue > selected[j].Revenue
			}
			return selected[i].Title < selected[j].Title
		})
		if len(selected) > cfg.Limit {
			selected = selected[:cfg.Limit]
		}

		for _, m := range selected {
			result = append(result, YearlyMovie{
				Year:          year,
				Title:         m.Title,
				Revenue:       m.Revenue,
				MeanRevenue:   avg,
				StdDevRevenue: std,
				MovieCount:    len(group),
			})
		}
	}

	return result
}
