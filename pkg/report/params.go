package report

import (
	"fmt"
	"strconv"
	"strings"

	"dnaMatch/pkg/forensic"

	"github.com/samber/lo"
)

// ParseFloats parses "0.25,0.25,0.5". Blank input is an empty slice.
func ParseFloats(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	var values []float64
	for i, field := range strings.Split(s, AlleleSep) {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, fmt.Errorf("value %d of %q: %w", i+1, s, err)
		}
		values = append(values, v)
	}
	return values, nil
}

// ParseProfile parses "0.2,0.8;0.5,0.5" into one locus per ';' field.
func ParseProfile(s string) (forensic.Profile, error) {
	fields := lo.Filter(strings.Split(s, LocusSep), func(f string, _ int) bool {
		return strings.TrimSpace(f) != ""
	})
	var profile = make(forensic.Profile, 0, len(fields))
	for i, field := range fields {
		locus, err := ParseFloats(field)
		if err != nil {
			return nil, fmt.Errorf("locus %d: %w", i+1, err)
		}
		profile = append(profile, forensic.Locus(locus))
	}
	return profile, nil
}

// FormatProfile is the inverse of ParseProfile.
func FormatProfile(profile forensic.Profile) string {
	return strings.Join(
		lo.Map(profile, func(locus forensic.Locus, _ int) string {
			return FormatFloats(locus)
		}),
		LocusSep,
	)
}

func FormatFloats(values []float64) string {
	return strings.Join(
		lo.Map(values, func(v float64, _ int) string {
			return strconv.FormatFloat(v, 'g', -1, 64)
		}),
		AlleleSep,
	)
}
