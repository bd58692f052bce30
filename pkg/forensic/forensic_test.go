package forensic

import (
	"errors"
	"math"
	"testing"
)

const tolerance = 1e-9

func almostEqual(got, want float64) bool {
	return math.Abs(got-want) <= tolerance*math.Max(1, math.Abs(want))
}

func TestRandomMatchProbability(t *testing.T) {
	for _, v := range []struct {
		profile Profile
		want    float64
	}{
		{Profile{{0.2, 0.8}, {0.5, 0.5}}, 0.34},
		{Profile{{0.2, 0.8}, {0.5, 0.5}, {0.3, 0.7}}, 0.34 * 0.58},
		{Profile{{1}}, 1},
		{Profile{}, 1},
		{Profile{{}}, 0},
	} {
		if got := RandomMatchProbability(v.profile); !almostEqual(got, v.want) {
			t.Fatalf("RandomMatchProbability(%v) = %.12f, want %.12f", v.profile, got, v.want)
		}
	}
}

func TestCombinedProbabilityOfInclusion(t *testing.T) {
	for _, v := range []struct {
		profile Profile
		want    float64
	}{
		{Profile{{0.2, 0.8}, {0.5, 0.5}}, 0.32 * 0.5},
		{Profile{{0.2, 0.8}, {0.5, 0.5}, {0.3, 0.7}}, 0.32 * 0.5 * 0.42},
		{Profile{{1}}, 0},
		{Profile{}, 1},
	} {
		if got := CombinedProbabilityOfInclusion(v.profile); !almostEqual(got, v.want) {
			t.Fatalf("CombinedProbabilityOfInclusion(%v) = %.12f, want %.12f", v.profile, got, v.want)
		}
	}
}

func TestProbabilityOfInclusion(t *testing.T) {
	for _, v := range []struct {
		freq, theta float64
		want        float64
	}{
		{0.3, DefaultTheta, 0.3 / 0.307},
		{0.3, 0, 1},
		{0, DefaultTheta, 0},
		{1, 0.5, 1},
	} {
		got, err := ProbabilityOfInclusion(v.freq, v.theta)
		if err != nil {
			t.Fatalf("ProbabilityOfInclusion(%v,%v): %v", v.freq, v.theta, err)
		}
		if !almostEqual(got, v.want) {
			t.Fatalf("ProbabilityOfInclusion(%v,%v) = %.12f, want %.12f", v.freq, v.theta, got, v.want)
		}
	}

	if _, err := ProbabilityOfInclusion(0, 0); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("ProbabilityOfInclusion(0,0) error = %v, want ErrInvalidArgument", err)
	}
}

func TestKinshipLikelihoodRatio(t *testing.T) {
	got, err := KinshipLikelihoodRatio([]float64{0.25, 0.25, 0.5}, []float64{0.01, 0.01, 0.01})
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(got, 31250.0) {
		t.Fatalf("KinshipLikelihoodRatio = %.12f, want 31250", got)
	}

	got, err = KinshipLikelihoodRatio(nil, nil)
	if err != nil || got != 1 {
		t.Fatalf("KinshipLikelihoodRatio of empty inputs = %v, %v; want 1, nil", got, err)
	}

	for _, unrelated := range [][]float64{
		{0.01, 0, 0.01},
		{0},
	} {
		if _, err := KinshipLikelihoodRatio([]float64{0.25, 0.25, 0.5}, unrelated); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("KinshipLikelihoodRatio with unrelated %v: error = %v, want ErrInvalidArgument", unrelated, err)
		}
	}
}

func TestSiblingIndex(t *testing.T) {
	for _, v := range []struct {
		probs []float64
		want  float64
	}{
		{[]float64{0}, 0},
		{[]float64{1}, 2.0 / 2.0},
		{[]float64{0.5}, 0.5 / 1.25},
		{[]float64{0.25, 0.25, 0.5}, (2.0 / 17) * (2.0 / 17) * 0.4},
		{nil, 1},
	} {
		got := SiblingIndex(v.probs)
		if math.IsNaN(got) || math.IsInf(got, 0) {
			t.Fatalf("SiblingIndex(%v) = %v", v.probs, got)
		}
		if !almostEqual(got, v.want) {
			t.Fatalf("SiblingIndex(%v) = %.12f, want %.12f", v.probs, got, v.want)
		}
	}
}

// the denominator 2p+(1-p)² is p²+1 and never reaches zero
func TestSiblingIndexNeverDividesByZero(t *testing.T) {
	for _, p := range []float64{-3, -1, -0.5, 0, 0.5, 1, 7} {
		got := SiblingIndex([]float64{p})
		if math.IsNaN(got) || math.IsInf(got, 0) {
			t.Fatalf("SiblingIndex([%v]) = %v", p, got)
		}
		if want := 2 * p * p / (p*p + 1); !almostEqual(got, want) {
			t.Fatalf("SiblingIndex([%v]) = %v, want %v", p, got, want)
		}
	}
}

func TestHomozygosity(t *testing.T) {
	if got := (Locus{0.2, 0.8}).Homozygosity(); !almostEqual(got, 0.68) {
		t.Fatalf("Homozygosity = %v, want 0.68", got)
	}
}
