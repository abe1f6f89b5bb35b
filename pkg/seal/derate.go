package seal

// Derating bands. Each band includes its upper bound.
const (
	derateBand1MaxC = 100
	derateBand2MaxC = 150
	derateBand3MaxC = 200
)

// TemperatureDerateFactor returns the fraction of rated pressure a seal keeps
// at tempC. It is a step function, not interpolated:
//
//	t ≤ 100      → 1.00
//	100 < t ≤ 150 → 0.90
//	150 < t ≤ 200 → 0.75
//	t > 200      → 0.50
func TemperatureDerateFactor(tempC int) float64 {
	switch {
	case tempC <= derateBand1MaxC:
		return 1.0
	case tempC <= derateBand2MaxC:
		return 0.9
	case tempC <= derateBand3MaxC:
		return 0.75
	default:
		return 0.5
	}
}

// DeratePressure returns r's pressure rating at tempC.
func DeratePressure(r Record, tempC int) float64 {
	return r.MaxPressureBar * TemperatureDerateFactor(tempC)
}
