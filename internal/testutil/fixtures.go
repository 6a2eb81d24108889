package testutil

// SampleRawFields returns a complete, valid set of survey answers for a
// healthy 30 year old, keyed by field name.
func SampleRawFields() map[string]any {
	return map[string]any{
		"General_Health":   "Good",
		"Checkup":          "Within 1 year",
		"Exercise":         "1",
		"Skin_Cancer":      "0",
		"Other_Cancer":     "0",
		"Depression":       "0",
		"Diabetes":         "No",
		"Arthritis":        "0",
		"Sex":              "0",
		"Age":              30.0,
		"Height":           175.0,
		"Weight":           70.0,
		"BMI":              22.5,
		"Smoking":          "0",
		"Alcohol":          0.0,
		"Fruit":            10.0,
		"Green_Vegetables": 10.0,
		"Fried_Potato":     0.0,
	}
}

// SampleRequestJSON is SampleRawFields as a request body.
const SampleRequestJSON = `{
	"General_Health": "Good",
	"Checkup": "Within 1 year",
	"Exercise": "1",
	"Skin_Cancer": "0",
	"Other_Cancer": "0",
	"Depression": "0",
	"Diabetes": "No",
	"Arthritis": "0",
	"Sex": "0",
	"Age": 30,
	"Height": 175,
	"Weight": 70,
	"BMI": 22.5,
	"Smoking": "0",
	"Alcohol": 0,
	"Fruit": 10,
	"Green_Vegetables": 10,
	"Fried_Potato": 0
}`
