package reports

import (
	"sort"

	"github.com/cinelens-org/cinelens/dataset"
)

// ============================================================================
// REPEATED TITLES — Movie titles that appear more than once
// ============================================================================

// RepeatedTitles counts how many movie rows share each title and returns
// the titles that appear more than once, sorted by count descending.
// Equal counts order by title ascending.
func RepeatedTitles(movies []dataset.Movie) TitleCounts {
	counts := make(map[string]int)
	order := make([]string, 0)

	for _, m := range movies {
		if _, seen := counts[m.Title]; !seen {
			order = append(order, m.Title)
		}
		counts[m.Title]++
	}

	result := make(TitleCounts, 0)
	for _, title := range order {
		if counts[title] > 1 {
			result = append(result, TitleCount{Title: title, Count: counts[title]})
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Title < result[j].Title
	})

	return result
}
