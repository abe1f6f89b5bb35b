package seal

import (
	"fmt"
	"math"
	"strings"
)

// DefaultMaxTempC is applied to records added without a maximum temperature.
const DefaultMaxTempC = 150.0

// Motion is the contact condition a seal is rated for.
type Motion string

// Motion values. The zero value is treated as MotionBoth.
const (
	MotionStatic  Motion = "static"
	MotionDynamic Motion = "dynamic"
	MotionBoth    Motion = "both"
)

// ParseMotion maps a case-insensitive name to a Motion.
// An empty string parses as MotionBoth.
func ParseMotion(s string) (Motion, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "static":
		return MotionStatic, nil
	case "dynamic":
		return MotionDynamic, nil
	case "both", "":
		return MotionBoth, nil
	default:
		return "", fmt.Errorf("%w: unknown motion %q", ErrInvalidInput, s)
	}
}

// String returns the canonical lowercase name.
func (m Motion) String() string {
	if m == "" {
		return string(MotionBoth)
	}
	return string(m)
}

// MarshalText implements encoding.TextMarshaler.
func (m Motion) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Motion) UnmarshalText(b []byte) error {
	parsed, err := ParseMotion(string(b))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Record is one catalog entry: a specific seal part and its ratings.
type Record struct {
	PartNumber string `json:"part_number" yaml:"part_number"`

	// Geometry in millimetres.
	InnerDiameterMM float64 `json:"inner_diameter_mm" yaml:"inner_diameter_mm"`
	CrossSectionMM  float64 `json:"cross_section_mm" yaml:"cross_section_mm"`
	OuterDiameterMM float64 `json:"outer_diameter_mm" yaml:"outer_diameter_mm"`

	// MaxPressureBar is the rated pressure at the reference temperature.
	MaxPressureBar float64 `json:"max_pressure_bar" yaml:"max_pressure_bar"`

	// MaxTempC is the recommended maximum operating temperature.
	MaxTempC float64 `json:"max_temp_c" yaml:"max_temp_c"`

	// Materials holds the compatible material codes (NBR, FKM, FFKM, ...).
	// Matching is case-insensitive; order and duplicates carry no meaning.
	Materials []string `json:"materials" yaml:"materials"`

	Motion Motion `json:"motion" yaml:"motion"`

	// MaxSpeedMPS is the dynamic sliding speed limit. 0 or +Inf means no limit.
	MaxSpeedMPS float64 `json:"max_speed_m_per_s,omitempty" yaml:"max_speed_m_per_s,omitempty"`

	Notes string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// SpeedLimited reports whether the record declares a finite speed limit.
func (r Record) SpeedLimited() bool {
	return r.MaxSpeedMPS > 0 && !math.IsInf(r.MaxSpeedMPS, 1)
}

// Validate checks the catalog invariants for r.
func (r Record) Validate() error {
	if strings.TrimSpace(r.PartNumber) == "" {
		return fmt.Errorf("%w: part number is required", ErrInvalidInput)
	}
	if !(r.CrossSectionMM > 0) || math.IsInf(r.CrossSectionMM, 0) {
		return fmt.Errorf("%w: %s: cross section must be positive, got %v", ErrInvalidInput, r.PartNumber, r.CrossSectionMM)
	}
	if !(r.InnerDiameterMM > 0) {
		return fmt.Errorf("%w: %s: inner diameter must be positive, got %v", ErrInvalidInput, r.PartNumber, r.InnerDiameterMM)
	}
	if !(r.InnerDiameterMM < r.OuterDiameterMM) {
		return fmt.Errorf("%w: %s: inner diameter %v must be less than outer diameter %v",
			ErrInvalidInput, r.PartNumber, r.InnerDiameterMM, r.OuterDiameterMM)
	}
	if !(r.MaxPressureBar > 0) {
		return fmt.Errorf("%w: %s: max pressure must be positive, got %v", ErrInvalidInput, r.PartNumber, r.MaxPressureBar)
	}
	if r.MaxSpeedMPS < 0 || math.IsNaN(r.MaxSpeedMPS) {
		return fmt.Errorf("%w: %s: max speed must not be negative, got %v", ErrInvalidInput, r.PartNumber, r.MaxSpeedMPS)
	}
	switch r.Motion {
	case MotionStatic, MotionDynamic, MotionBoth, "":
	default:
		return fmt.Errorf("%w: %s: unknown motion %q", ErrInvalidInput, r.PartNumber, r.Motion)
	}
	return nil
}

// clone returns a deep copy of r so callers cannot alias catalog state.
func (r Record) clone() Record {
	out := r
	if r.Materials != nil {
		out.Materials = append([]string(nil), r.Materials...)
	}
	return out
}

// normalized fills defaulted fields before a record enters the catalog.
func (r Record) normalized() Record {
	out := r.clone()
	if out.MaxTempC == 0 {
		out.MaxTempC = DefaultMaxTempC
	}
	if out.Motion == "" {
		out.Motion = MotionBoth
	}
	if math.IsInf(out.MaxSpeedMPS, 1) {
		out.MaxSpeedMPS = 0
	}
	return out
}
