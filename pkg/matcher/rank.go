package matcher

import (
	"sort"

	"github.com/samber/lo"
)

// Scored is a panel record with its percentage against a query.
type Scored struct {
	Index      int     `json:"index"`
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
	Distance   int     `json:"distance"`
}

// Rank scores every record and sorts by descending percentage.
// Equal percentages keep panel order, same tie-break as FindBestMatch.
func Rank(query string, panel []Record) []Scored {
	scored := lo.Map(panel, func(r Record, i int) Scored {
		return Scored{
			Index:      i,
			Name:       r.Name,
			Percentage: PercentMatch(query, r.Sequence),
			Distance:   Distance(query, r.Sequence),
		}
	})
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Percentage > scored[j].Percentage
	})
	return scored
}

// Top returns the first n entries of Rank; n <= 0 returns all of them.
func Top(query string, panel []Record, n int) []Scored {
	scored := Rank(query, panel)
	if n <= 0 || n >= len(scored) {
		return scored
	}
	return scored[:n]
}
