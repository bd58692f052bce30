package report

import (
	"fmt"
	"log/slog"

	"dnaMatch/pkg/forensic"
	"dnaMatch/pkg/matcher"
)

// Params carries every forensic input; nothing here has a built-in default.
type Params struct {
	Profile        forensic.Profile `json:"profile"`
	ObligateFreq   float64          `json:"obligateFreq"`
	Theta          float64          `json:"theta"`
	SharedProbs    []float64        `json:"sharedProbs"`
	UnrelatedProbs []float64        `json:"unrelatedProbs"`
	SiblingProbs   []float64        `json:"siblingProbs"`
}

// Statistics are the five forensic values of one request.
type Statistics struct {
	RMP       float64 `json:"rmp"`
	CPI       float64 `json:"cpi"`
	PI        float64 `json:"pi"`
	KinshipLR float64 `json:"kinshipLr"`
	FSI       float64 `json:"fsi"`
}

// Report is the flat response record: best match plus statistics.
type Report struct {
	Query string `json:"-"`

	BestMatchName       *string `json:"bestMatchName"`
	BestMatchPercentage float64 `json:"bestMatchPercentage"`

	Statistics
}

// Name is the best match name, empty when absent.
func (r *Report) Name() string {
	if r.BestMatchName == nil {
		return ""
	}
	return *r.BestMatchName
}

// String is the report as one tab-separated line in Title order.
func (r *Report) String() string {
	return fmt.Sprintf(
		"%s\t%s\t%f\t%g\t%g\t%g\t%g\t%g",
		r.Query,
		r.Name(),
		r.BestMatchPercentage,
		r.RMP,
		r.CPI,
		r.PI,
		r.KinshipLR,
		r.FSI,
	)
}

// Row is the report in Title column order, for sheet output.
func (r *Report) Row() []any {
	return []any{
		r.Query,
		r.Name(),
		r.BestMatchPercentage,
		r.RMP,
		r.CPI,
		r.PI,
		r.KinshipLR,
		r.FSI,
	}
}

// Calculate evaluates the five statistics.
func Calculate(p Params) (stats Statistics, err error) {
	stats.RMP = forensic.RandomMatchProbability(p.Profile)
	stats.CPI = forensic.CombinedProbabilityOfInclusion(p.Profile)

	stats.PI, err = forensic.ProbabilityOfInclusion(p.ObligateFreq, p.Theta)
	if err != nil {
		return stats, fmt.Errorf("pi: %w", err)
	}

	stats.KinshipLR, err = forensic.KinshipLikelihoodRatio(p.SharedProbs, p.UnrelatedProbs)
	if err != nil {
		return stats, fmt.Errorf("kinshipLr: %w", err)
	}

	stats.FSI = forensic.SiblingIndex(p.SiblingProbs)
	return stats, nil
}

// FromMatch fills the match half of a report.
func FromMatch(query string, match matcher.Match, stats Statistics) Report {
	r := Report{
		Query:               query,
		BestMatchPercentage: match.Percentage,
		Statistics:          stats,
	}
	if match.Found {
		name := match.Name
		r.BestMatchName = &name
	}
	return r
}

// Analyze matches query against panel and merges in the statistics.
func Analyze(query string, panel []matcher.Record, p Params) (Report, error) {
	stats, err := Calculate(p)
	if err != nil {
		return Report{}, err
	}
	match := matcher.FindBestMatch(query, panel)
	slog.Info("Analyze", "queryLength", len([]rune(query)), "records", len(panel), "bestMatch", match.Name, "percentage", match.Percentage)
	return FromMatch(query, match, stats), nil
}
