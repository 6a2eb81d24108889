package valueobject

import "fmt"

// Upper bounds (inclusive) of the first four risk bands. Anything above
// highUpperBound is Very High.
const (
	veryLowUpperBound  = 0.20
	lowUpperBound      = 0.40
	moderateUpperBound = 0.60
	highUpperBound     = 0.80
)

// RiskLevel is an immutable value object representing a risk tier from 1 (Very Low) to 5 (Very High).
type RiskLevel struct {
	label string
	level int
}

var (
	RiskLevelVeryLow  = RiskLevel{level: 1, label: "Very Low"}
	RiskLevelLow      = RiskLevel{level: 2, label: "Low"}
	RiskLevelModerate = RiskLevel{level: 3, label: "Moderate"}
	RiskLevelHigh     = RiskLevel{level: 4, label: "High"}
	RiskLevelVeryHigh = RiskLevel{level: 5, label: "Very High"}
)

var riskLevels = []RiskLevel{
	RiskLevelVeryLow,
	RiskLevelLow,
	RiskLevelModerate,
	RiskLevelHigh,
	RiskLevelVeryHigh,
}

// RiskLevelFromProbability maps a positive-class probability onto its risk band.
// Bands are upper-inclusive, so a boundary value belongs to the lower tier.
// The probability is not clamped; values below 0 land in Very Low and values
// above 1 in Very High.
func RiskLevelFromProbability(p float64) RiskLevel {
	switch {
	case p <= veryLowUpperBound:
		return RiskLevelVeryLow
	case p <= lowUpperBound:
		return RiskLevelLow
	case p <= moderateUpperBound:
		return RiskLevelModerate
	case p <= highUpperBound:
		return RiskLevelHigh
	default:
		return RiskLevelVeryHigh
	}
}

// RiskLevelFromLevel reconstructs a RiskLevel from its numeric tier.
func RiskLevelFromLevel(level int) (RiskLevel, error) {
	if level < 1 || level > len(riskLevels) {
		return RiskLevel{}, fmt.Errorf("invalid risk level: %d", level)
	}
	return riskLevels[level-1], nil
}

// Level returns the numeric tier (1-5).
func (r RiskLevel) Level() int {
	return r.level
}

// Label returns the human readable tier name.
func (r RiskLevel) Label() string {
	return r.label
}

// String returns the label.
func (r RiskLevel) String() string {
	return r.label
}

// IsZero returns true if the RiskLevel has not been set.
func (r RiskLevel) IsZero() bool {
	return r.level == 0
}

// Equal checks equality with another RiskLevel.
func (r RiskLevel) Equal(other RiskLevel) bool {
	return r.level == other.level
}
