package report

import (
	"flag"
	"fmt"

	"dnaMatch/pkg/forensic"
)

// ExampleParams are the demonstration inputs the matching service shipped
// with. Commands use them as flag defaults only.
var ExampleParams = Params{
	Profile:        forensic.Profile{{0.2, 0.8}, {0.5, 0.5}, {0.3, 0.7}},
	ObligateFreq:   0.3,
	Theta:          forensic.DefaultTheta,
	SharedProbs:    []float64{0.25, 0.25, 0.5},
	UnrelatedProbs: []float64{0.01, 0.01, 0.01},
	SiblingProbs:   []float64{0.25, 0.25, 0.5},
}

// ParamFlags holds the raw forensic flag values of a command.
type ParamFlags struct {
	profile   *string
	obligate  *float64
	theta     *float64
	shared    *string
	unrelated *string
	sibling   *string
}

// RegisterFlags adds the forensic parameter flags to fs with defaults from def.
func RegisterFlags(fs *flag.FlagSet, def Params) *ParamFlags {
	return &ParamFlags{
		profile: fs.String(
			"rmp",
			FormatProfile(def.Profile),
			"allele frequency profile for RMP/CPI, loci separated by ';' and alleles by ','",
		),
		obligate: fs.Float64(
			"obligate",
			def.ObligateFreq,
			"obligate allele frequency for PI",
		),
		theta: fs.Float64(
			"theta",
			def.Theta,
			"population substructure correction for PI",
		),
		shared: fs.String(
			"shared",
			FormatFloats(def.SharedProbs),
			"shared allele probabilities for kinship LR",
		),
		unrelated: fs.String(
			"unrelated",
			FormatFloats(def.UnrelatedProbs),
			"unrelated allele probabilities for kinship LR",
		),
		sibling: fs.String(
			"sibling",
			FormatFloats(def.SiblingProbs),
			"shared allele probabilities for full sibling index",
		),
	}
}

// Params parses the flag values; call after fs.Parse.
func (pf *ParamFlags) Params() (p Params, err error) {
	if p.Profile, err = ParseProfile(*pf.profile); err != nil {
		return p, fmt.Errorf("-rmp: %w", err)
	}
	if p.SharedProbs, err = ParseFloats(*pf.shared); err != nil {
		return p, fmt.Errorf("-shared: %w", err)
	}
	if p.UnrelatedProbs, err = ParseFloats(*pf.unrelated); err != nil {
		return p, fmt.Errorf("-unrelated: %w", err)
	}
	if p.SiblingProbs, err = ParseFloats(*pf.sibling); err != nil {
		return p, fmt.Errorf("-sibling: %w", err)
	}
	p.ObligateFreq = *pf.obligate
	p.Theta = *pf.theta
	return p, nil
}
