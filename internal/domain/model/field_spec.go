package model

import "fmt"

// FieldKind distinguishes how a survey field is normalized.
type FieldKind int

const (
	// FieldContinuous fields are min-max scaled and clamped to [0,1].
	FieldContinuous FieldKind = iota + 1
	// FieldCategorical fields are looked up in a closed literal table.
	FieldCategorical
)

// String returns the kind name.
func (k FieldKind) String() string {
	switch k {
	case FieldContinuous:
		return "continuous"
	case FieldCategorical:
		return "categorical"
	default:
		return "unknown"
	}
}

// Level is one accepted literal of a categorical field and its normalized value.
type Level struct {
	Literal string
	Value   float64
}

// FieldSpec is the static normalization rule for one input field.
type FieldSpec struct {
	Name   string
	Levels []Level
	Min    float64
	Max    float64
	Kind   FieldKind
}

// Continuous builds a min-max scaled field.
func Continuous(name string, lo, hi float64) FieldSpec {
	return FieldSpec{Name: name, Kind: FieldContinuous, Min: lo, Max: hi}
}

// Categorical builds a lookup field. Level order is preserved.
func Categorical(name string, levels ...Level) FieldSpec {
	return FieldSpec{Name: name, Kind: FieldCategorical, Levels: levels}
}

// Lookup returns the normalized value for an exact literal match.
func (f FieldSpec) Lookup(literal string) (float64, bool) {
	for _, l := range f.Levels {
		if l.Literal == literal {
			return l.Value, true
		}
	}
	return 0, false
}

// Literals returns the accepted literal set of a categorical field in declared order.
func (f FieldSpec) Literals() []string {
	out := make([]string, len(f.Levels))
	for i, l := range f.Levels {
		out[i] = l.Literal
	}
	return out
}

// Validate checks the spec's own invariants.
func (f FieldSpec) Validate() error {
	if f.Name == "" {
		return fmt.Errorf("field name is required")
	}
	switch f.Kind {
	case FieldContinuous:
		if !(f.Max > f.Min) {
			return fmt.Errorf("field %s: max (%v) must be greater than min (%v)", f.Name, f.Max, f.Min)
		}
	case FieldCategorical:
		if len(f.Levels) == 0 {
			return fmt.Errorf("field %s: at least one level is required", f.Name)
		}
		seen := make(map[string]bool, len(f.Levels))
		for _, l := range f.Levels {
			if l.Value < 0 || l.Value > 1 {
				return fmt.Errorf("field %s: level %q value %v outside [0,1]", f.Name, l.Literal, l.Value)
			}
			if seen[l.Literal] {
				return fmt.Errorf("field %s: duplicate level %q", f.Name, l.Literal)
			}
			seen[l.Literal] = true
		}
	default:
		return fmt.Errorf("field %s: unknown kind %d", f.Name, f.Kind)
	}
	return nil
}

var binaryLevels = []Level{{"0", 0.0}, {"1", 1.0}}

// fieldSpecs is the classifier's input contract. The order is the order the
// model was fit against and must never change.
var fieldSpecs = [FeatureCount]FieldSpec{
	Categorical("General_Health",
		Level{"Excellent", 1.0}, Level{"Very_Good", 0.75}, Level{"Good", 0.5}, Level{"Fair", 0.25}, Level{"Poor", 0.0}),
	Categorical("Checkup",
		Level{"Within 1 year", 1.0}, Level{"1-2 years", 0.75}, Level{"2-5 years", 0.5}, Level{"5+ years", 0.25}, Level{"Never", 0.0}),
	Categorical("Exercise", binaryLevels...),
	Categorical("Skin_Cancer", binaryLevels...),
	Categorical("Other_Cancer", binaryLevels...),
	Categorical("Depression", binaryLevels...),
	Categorical("Diabetes",
		Level{"No", 0.0}, Level{"Borderline", 0.33}, Level{"During Pregnancy", 0.66}, Level{"Yes", 1.0}),
	Categorical("Arthritis", binaryLevels...),
	Categorical("Sex",
		Level{"Female", 0.0}, Level{"Male", 1.0}, Level{"0", 0.0}, Level{"1", 1.0}),
	Continuous("Age", 21, 82),
	Continuous("Height", 142, 200),
	Continuous("Weight", 29.94, 136),
	Continuous("BMI", 12.87, 43.28),
	Categorical("Smoking", binaryLevels...),
	Continuous("Alcohol", 0, 15),
	Continuous("Fruit", 0, 56),
	Continuous("Green_Vegetables", 0, 44),
	Continuous("Fried_Potato", 0, 17),
}

var fieldIndex map[string]int

func init() {
	fieldIndex = make(map[string]int, FeatureCount)
	for i, f := range fieldSpecs {
		if err := f.Validate(); err != nil {
			panic(err)
		}
		if _, dup := fieldIndex[f.Name]; dup {
			panic(fmt.Sprintf("duplicate field %s", f.Name))
		}
		fieldIndex[f.Name] = i
	}
}

// FieldSpecs returns a copy of the field table in vector order.
func FieldSpecs() []FieldSpec {
	out := make([]FieldSpec, FeatureCount)
	copy(out, fieldSpecs[:])
	return out
}

// FeatureNames returns the field names in vector order.
func FeatureNames() []string {
	names := make([]string, FeatureCount)
	for i, f := range fieldSpecs {
		names[i] = f.Name
	}
	return names
}

// FieldIndex returns the vector position of a field.
func FieldIndex(name string) (int, bool) {
	i, ok := fieldIndex[name]
	return i, ok
}
