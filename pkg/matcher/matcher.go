package matcher

import "log/slog"

// Record is one row of a reference panel.
type Record struct {
	Name     string `json:"name" csv:"Name"`
	Sequence string `json:"sequence" csv:"Sequence"`
}

// Match is the best hit of a query against a panel.
// Found is false only when no record improved on 0%.
type Match struct {
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
	Found      bool    `json:"found"`
}

// Distance counts differing symbols over the common prefix and adds the
// length difference, so unequal lengths never fail.
func Distance(a, b string) int {
	var (
		ra = []rune(a)
		rb = []rune(b)
		n  = min(len(ra), len(rb))

		distance int
	)
	for i := 0; i < n; i++ {
		if ra[i] != rb[i] {
			distance++
		}
	}
	if len(ra) > len(rb) {
		distance += len(ra) - len(rb)
	} else {
		distance += len(rb) - len(ra)
	}
	return distance
}

// PercentMatch returns similarity in [0,100]. Two empty sequences match 100%.
func PercentMatch(a, b string) float64 {
	var maxLength = max(len([]rune(a)), len([]rune(b)))
	if maxLength == 0 {
		return 100.0
	}
	var distance = Distance(a, b)
	return (float64(maxLength-distance) / float64(maxLength)) * 100
}

// FindBestMatch scans panel in order and keeps the first record with the
// highest percentage. Only strict improvements replace the current best.
func FindBestMatch(query string, panel []Record) Match {
	var best Match
	for i := range panel {
		percentage := PercentMatch(query, panel[i].Sequence)
		if percentage > best.Percentage {
			best = Match{
				Name:       panel[i].Name,
				Percentage: percentage,
				Found:      true,
			}
		}
	}
	slog.Debug("FindBestMatch", "records", len(panel), "name", best.Name, "percentage", best.Percentage, "found", best.Found)
	return best
}
