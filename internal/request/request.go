package request

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sealsel/sealsel/pkg/seal"
)

// Load reads and validates the request file at path.
func Load(path string) (seal.Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return seal.Request{}, fmt.Errorf("request: read file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML request document.
func Parse(data []byte) (seal.Request, error) {
	var req seal.Request
	if err := yaml.Unmarshal(data, &req); err != nil {
		return seal.Request{}, fmt.Errorf("request: parse yaml: %w", err)
	}
	if err := Validate(req); err != nil {
		return seal.Request{}, fmt.Errorf("request: %w", err)
	}
	return req, nil
}

// Validate checks that req describes a usable envelope: positive, finite
// geometry and non-negative pressure and speed.
func Validate(req seal.Request) error {
	if !positiveFinite(req.BoreMM) {
		return fmt.Errorf("%w: bore_mm must be positive, got %v", seal.ErrInvalidInput, req.BoreMM)
	}
	if !positiveFinite(req.GrooveCSMM) {
		return fmt.Errorf("%w: groove_cs_mm must be positive, got %v", seal.ErrInvalidInput, req.GrooveCSMM)
	}
	if req.SystemPressureBar < 0 || math.IsNaN(req.SystemPressureBar) {
		return fmt.Errorf("%w: system_pressure_bar must not be negative, got %v", seal.ErrInvalidInput, req.SystemPressureBar)
	}
	if req.SpeedMPS < 0 || math.IsNaN(req.SpeedMPS) {
		return fmt.Errorf("%w: speed_m_per_s must not be negative, got %v", seal.ErrInvalidInput, req.SpeedMPS)
	}
	return nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
