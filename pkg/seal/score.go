package seal

import (
	"fmt"
	"math"
	"strings"
)

// Penalty weights for the ranking score.
const (
	weightInnerDiameter = 10.0 // per mm of ID mismatch
	weightCrossSection  = 5.0  // per mm of CS mismatch
	weightOverTemp      = 50.0 // per °C above MaxTempC

	penaltyMaterial = 50.0 // first preferred material not compatible
	penaltyMedium   = 10.0 // medium names none of the record's materials

	// A pressure violation is disqualifying in practice but still ranked, so
	// the least-bad violator wins when every candidate violates.
	penaltyPressureBase    = 1_000_000.0
	weightPressureOvershot = 1000.0 // per bar above the derated allowance
)

// tieTolerance is the score difference below which two candidates tie.
const tieTolerance = 1e-6

// Factor keys, in the order they appear in a breakdown.
const (
	FactorInnerDiameter = "id_mismatch"
	FactorCrossSection  = "cs_mismatch"
	FactorOverTemp      = "over_temperature"
	FactorMaterial      = "material_preference"
	FactorMedium        = "medium"
	FactorPressure      = "pressure"
)

// Request is the operating envelope a seal must satisfy.
type Request struct {
	// BoreMM and GrooveCSMM are the target inner diameter and cross-section.
	BoreMM     float64 `json:"bore_mm" yaml:"bore_mm"`
	GrooveCSMM float64 `json:"groove_cs_mm" yaml:"groove_cs_mm"`

	// TempC is the operating temperature. It may fall outside every band.
	TempC int `json:"temp_c" yaml:"temp_c"`

	// Medium is a free-text description of the process fluid. It only drives
	// a soft penalty.
	Medium string `json:"medium" yaml:"medium"`

	// SystemPressureBar is the operating pressure. 0 means no constraint.
	SystemPressureBar float64 `json:"system_pressure_bar,omitempty" yaml:"system_pressure_bar,omitempty"`

	// Motion defaults to MotionBoth when empty.
	Motion Motion `json:"motion,omitempty" yaml:"motion,omitempty"`

	// SpeedMPS is only checked when Motion is MotionDynamic.
	SpeedMPS float64 `json:"speed_m_per_s,omitempty" yaml:"speed_m_per_s,omitempty"`

	// PreferredMaterials is a hard filter when non-empty: a record compatible
	// with none of them is never considered. Only the first entry is scored.
	PreferredMaterials []string `json:"preferred_materials,omitempty" yaml:"preferred_materials,omitempty"`
}

func (req Request) motion() Motion {
	if req.Motion == "" {
		return MotionBoth
	}
	return req.Motion
}

// Factor is one itemized component of a score.
type Factor struct {
	// Key is a stable identifier, one of the Factor* constants.
	Key string `json:"key"`
	// Detail explains how the penalty was derived.
	Detail string `json:"detail"`
	// Penalty is this component's contribution to the score.
	Penalty float64 `json:"penalty"`
}

// Breakdown is the full penalty evaluation of one record against a request.
type Breakdown struct {
	Score           float64
	DeratedAllowBar float64
	Factors         []Factor
}

// Rationale renders the factors as a single human-readable line.
func (b Breakdown) Rationale() string {
	parts := make([]string, 0, len(b.Factors))
	for _, f := range b.Factors {
		parts = append(parts, fmt.Sprintf("%s: %s (+%.2f)", f.Key, f.Detail, f.Penalty))
	}
	return strings.Join(parts, "; ")
}

// admits reports whether r survives the hard filters for req.
func admits(r Record, req Request) bool {
	if len(req.PreferredMaterials) > 0 {
		compatible := false
		for _, m := range req.PreferredMaterials {
			if MaterialCompatible(r, m) {
				compatible = true
				break
			}
		}
		if !compatible {
			return false
		}
	}

	motion := req.motion()
	if r.Motion != MotionBoth && r.Motion != "" && r.Motion != motion {
		return false
	}
	if motion == MotionDynamic && req.SpeedMPS > 0 && r.SpeedLimited() && req.SpeedMPS > r.MaxSpeedMPS {
		return false
	}
	return true
}

// Evaluate computes the ranking penalty of r for req. It does not apply the
// hard filters; see Selector.Recommend.
func Evaluate(r Record, req Request) Breakdown {
	derated := DeratePressure(r, req.TempC)
	b := Breakdown{DeratedAllowBar: derated, Factors: make([]Factor, 0, 6)}

	idDelta := math.Abs(r.InnerDiameterMM - req.BoreMM)
	b.add(FactorInnerDiameter, idDelta*weightInnerDiameter,
		"|%.2f - %.2f| mm x %.0f", r.InnerDiameterMM, req.BoreMM, weightInnerDiameter)

	csDelta := math.Abs(r.CrossSectionMM - req.GrooveCSMM)
	b.add(FactorCrossSection, csDelta*weightCrossSection,
		"|%.2f - %.2f| mm x %.0f", r.CrossSectionMM, req.GrooveCSMM, weightCrossSection)

	temp := float64(req.TempC)
	if temp > r.MaxTempC {
		b.add(FactorOverTemp, (temp-r.MaxTempC)*weightOverTemp,
			"%d C exceeds max %.0f C", req.TempC, r.MaxTempC)
	} else {
		b.add(FactorOverTemp, 0, "%d C within max %.0f C", req.TempC, r.MaxTempC)
	}

	switch {
	case len(req.PreferredMaterials) == 0:
		b.add(FactorMaterial, 0, "no preference")
	case MaterialCompatible(r, req.PreferredMaterials[0]):
		b.add(FactorMaterial, 0, "compatible with %s", req.PreferredMaterials[0])
	default:
		b.add(FactorMaterial, penaltyMaterial, "not compatible with %s", req.PreferredMaterials[0])
	}

	if mediumMatches(r, req.Medium) {
		b.add(FactorMedium, 0, "%q names one of [%s]", req.Medium, strings.Join(r.Materials, ","))
	} else {
		b.add(FactorMedium, penaltyMedium, "%q names none of [%s]", req.Medium, strings.Join(r.Materials, ","))
	}

	if req.SystemPressureBar > derated {
		over := req.SystemPressureBar - derated
		b.add(FactorPressure, penaltyPressureBase+over*weightPressureOvershot,
			"%.1f bar exceeds derated %.1f bar", req.SystemPressureBar, derated)
	} else {
		b.add(FactorPressure, 0, "%.1f bar within derated %.1f bar", req.SystemPressureBar, derated)
	}

	return b
}

func (b *Breakdown) add(key string, penalty float64, format string, args ...any) {
	b.Factors = append(b.Factors, Factor{Key: key, Detail: fmt.Sprintf(format, args...), Penalty: penalty})
	b.Score += penalty
}

// mediumMatches reports whether the medium description contains any of r's
// material codes, ignoring case.
func mediumMatches(r Record, medium string) bool {
	lower := strings.ToLower(medium)
	for _, m := range r.Materials {
		if m != "" && strings.Contains(lower, strings.ToLower(m)) {
			return true
		}
	}
	return false
}
