package model

// FeatureCount is the number of features the classifier consumes.
const FeatureCount = 18

// FeatureVector is the fixed-order normalized encoding of one request.
// It is an array, so copies never alias and the length cannot drift.
type FeatureVector [FeatureCount]float64

// Slice returns a fresh slice holding the vector's values.
func (v FeatureVector) Slice() []float64 {
	out := make([]float64, FeatureCount)
	copy(out, v[:])
	return out
}

// At returns the value stored for the named field.
func (v FeatureVector) At(name string) (float64, bool) {
	i, ok := FieldIndex(name)
	if !ok {
		return 0, false
	}
	return v[i], true
}
