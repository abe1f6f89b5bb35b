package seal

import (
	"fmt"
	"math"
	"strings"
)

// Groove diameter multipliers applied to the bore.
const (
	grooveInternal = 0.952
	grooveExternal = 1.048
	grooveDefault  = 0.975
)

// Rating is the result of the chemical compatibility rule table.
type Rating string

// Rating values.
const (
	RatingExcellent       Rating = "excellent"
	RatingTestRecommended Rating = "test_recommended"
)

// MaterialCompatible reports whether material is in r's compatible set,
// ignoring case.
func MaterialCompatible(r Record, material string) bool {
	for _, m := range r.Materials {
		if strings.EqualFold(m, material) {
			return true
		}
	}
	return false
}

// GrooveDiameter returns the groove diameter for a bore. sealType is matched
// by case-sensitive substring: "Internal" takes precedence over "External";
// anything else uses the default multiplier.
func GrooveDiameter(bore float64, sealType string) float64 {
	switch {
	case strings.Contains(sealType, "Internal"):
		return bore * grooveInternal
	case strings.Contains(sealType, "External"):
		return bore * grooveExternal
	default:
		return bore * grooveDefault
	}
}

// SqueezePercent returns how much r's cross-section is compressed when
// installed in a groove of depth grooveCS, as a percentage of the nominal
// cross-section. Negative values mean the groove is deeper than the seal.
func SqueezePercent(r Record, grooveCS float64) (float64, error) {
	if !(r.CrossSectionMM > 0) {
		return 0, fmt.Errorf("%w: squeeze: cross section must be positive, got %v", ErrInvalidInput, r.CrossSectionMM)
	}
	pct := (r.CrossSectionMM - grooveCS) / r.CrossSectionMM * 100
	if math.IsNaN(pct) || math.IsInf(pct, 0) {
		return 0, fmt.Errorf("%w: squeeze: non-finite result for groove %v", ErrInvalidInput, grooveCS)
	}
	return pct, nil
}

// ChemicalCompatibility applies the fixed rule table:
//
//	"Oil" in medium and material != "EPDM"   → excellent
//	"Water" in medium and material == "EPDM" → excellent
//	otherwise                                → test recommended
//
// All comparisons are case-sensitive.
func ChemicalCompatibility(medium, material string) Rating {
	if strings.Contains(medium, "Oil") && material != "EPDM" {
		return RatingExcellent
	}
	if strings.Contains(medium, "Water") && material == "EPDM" {
		return RatingExcellent
	}
	return RatingTestRecommended
}
