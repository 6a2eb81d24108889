package dto

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/mohsinkp02/HeartCare-Risk-Prediction-System/internal/domain/model"
)

// ErrValidation is matched by every ValidationError.
var ErrValidation = errors.New("validation failed")

// PredictionRequest is the input DTO for the PredictRisk use case. Keys match
// the survey field names the classifier was trained on. Numeric answers are
// pointers so an omitted field can be told apart from zero.
type PredictionRequest struct {
	Age             *float64 `json:"Age"`
	Height          *float64 `json:"Height"`
	Weight          *float64 `json:"Weight"`
	BMI             *float64 `json:"BMI"`
	Alcohol         *float64 `json:"Alcohol"`
	Fruit           *float64 `json:"Fruit"`
	GreenVegetables *float64 `json:"Green_Vegetables"`
	FriedPotato     *float64 `json:"Fried_Potato"`
	GeneralHealth   string   `json:"General_Health"`
	Checkup         string   `json:"Checkup"`
	Exercise        string   `json:"Exercise"`
	SkinCancer      string   `json:"Skin_Cancer"`
	OtherCancer     string   `json:"Other_Cancer"`
	Depression      string   `json:"Depression"`
	Diabetes        string   `json:"Diabetes"`
	Arthritis       string   `json:"Arthritis"`
	Sex             string   `json:"Sex"`
	Smoking         string   `json:"Smoking"`
}

// PredictionResponse is the output DTO returned after a prediction.
// Only the four result fields are part of the JSON body.
type PredictionResponse struct {
	RiskLabel    string    `json:"risk_label"`
	Classifier   string    `json:"-"`
	Probability  float64   `json:"probability"`
	Class        int       `json:"class"`
	RiskLevel    int       `json:"risk_level"`
	PredictionID uuid.UUID `json:"-"`
}

// FieldError describes one rejected request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects every rejected field of a request.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

var (
	generalHealthLevels = categoricalLiterals("General_Health")
	checkupLevels       = categoricalLiterals("Checkup")
	diabetesLevels      = categoricalLiterals("Diabetes")
	// Sex shares the binary codes; its Female/Male literals are not accepted over the API.
	binaryLevels = categoricalLiterals("Exercise")
)

// categoricalLiterals reads the accepted literals from the encoder's field table.
func categoricalLiterals(name string) []string {
	i, ok := model.FieldIndex(name)
	if !ok {
		panic("dto: unknown field " + name)
	}
	return model.FieldSpecs()[i].Literals()
}

type enumField struct {
	name    string
	value   string
	allowed []string
}

type rangeField struct {
	value    *float64
	name     string
	min, max float64
}

func (r PredictionRequest) enumFields() []enumField {
	return []enumField{
		{"General_Health", r.GeneralHealth, generalHealthLevels},
		{"Checkup", r.Checkup, checkupLevels},
		{"Exercise", r.Exercise, binaryLevels},
		{"Skin_Cancer", r.SkinCancer, binaryLevels},
		{"Other_Cancer", r.OtherCancer, binaryLevels},
		{"Depression", r.Depression, binaryLevels},
		{"Diabetes", r.Diabetes, diabetesLevels},
		{"Arthritis", r.Arthritis, binaryLevels},
		{"Sex", r.Sex, binaryLevels},
		{"Smoking", r.Smoking, binaryLevels},
	}
}

func (r PredictionRequest) rangeFields() []rangeField {
	return []rangeField{
		{r.Age, "Age", 18, 100},
		{r.Height, "Height", 50, 300},
		{r.Weight, "Weight", 10, 500},
		{r.BMI, "BMI", 5, 100},
		{r.Alcohol, "Alcohol", 0, 30},
		{r.Fruit, "Fruit", 0, 100},
		{r.GreenVegetables, "Green_Vegetables", 0, 100},
		{r.FriedPotato, "Fried_Potato", 0, 100},
	}
}

// Validate checks every field and reports all violations at once.
func (r PredictionRequest) Validate() error {
	var errs []FieldError

	for _, f := range r.enumFields() {
		switch {
		case f.value == "":
			errs = append(errs, FieldError{f.name, "is required"})
		case !slices.Contains(f.allowed, f.value):
			errs = append(errs, FieldError{f.name, fmt.Sprintf("must be one of %q", f.allowed)})
		}
	}

	for _, f := range r.rangeFields() {
		switch {
		case f.value == nil:
			errs = append(errs, FieldError{f.name, "is required"})
		case !(*f.value >= f.min && *f.value <= f.max):
			errs = append(errs, FieldError{f.name, fmt.Sprintf("must be between %g and %g", f.min, f.max)})
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}

// ToRawFields renders the request as raw encoder input keyed by field name.
// Omitted numeric fields are left out of the map.
func (r PredictionRequest) ToRawFields() map[string]any {
	raw := make(map[string]any, model.FeatureCount)
	for _, f := range r.enumFields() {
		raw[f.name] = f.value
	}
	for _, f := range r.rangeFields() {
		if f.value != nil {
			raw[f.name] = *f.value
		}
	}
	return raw
}

// FromModel maps a domain assessment to the response DTO.
func FromModel(a *model.RiskAssessment) PredictionResponse {
	result := a.Result()
	return PredictionResponse{
		PredictionID: a.ID(),
		Probability:  result.Probability,
		Class:        result.Class,
		RiskLevel:    result.Level.Level(),
		RiskLabel:    result.Level.Label(),
		Classifier:   a.Classifier(),
	}
}
