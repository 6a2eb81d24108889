//go:build e2e

package e2e

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var apiURL string

func TestMain(m *testing.M) {
	apiURL = os.Getenv("RISK_API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8000"
	}

	// Wait for the classifier to be loaded.
	for i := 0; i < 30; i++ {
		resp, err := http.Get(apiURL + "/readyz")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				break
			}
		}
		time.Sleep(2 * time.Second)
	}

	os.Exit(m.Run())
}

func samplePatient() map[string]interface{} {
	return map[string]interface{}{
		"General_Health":   "Good",
		"Checkup":          "Within 1 year",
		"Exercise":         "1",
		"Skin_Cancer":      "0",
		"Other_Cancer":     "0",
		"Depression":       "0",
		"Diabetes":         "No",
		"Arthritis":        "0",
		"Sex":              "0",
		"Age":              30,
		"Height":           175,
		"Weight":           70,
		"BMI":              22.5,
		"Smoking":          "0",
		"Alcohol":          0,
		"Fruit":            10,
		"Green_Vegetables": 10,
		"Fried_Potato":     0,
	}
}

func TestHealthCheck(t *testing.T) {
	resp, err := http.Get(apiURL + "/api/v1/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "heart-disease-prediction", body["service"])
}

func TestPredictFlow(t *testing.T) {
	resp := postJSON(t, "/api/v1/predict", samplePatient())
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Prediction-ID"))
	assert.Contains(t, []string{"real", "fallback"}, resp.Header.Get("X-Classifier"))

	var body struct {
		RiskLabel   string  `json:"risk_label"`
		Probability float64 `json:"probability"`
		RiskLevel   int     `json:"risk_level"`
		Class       int     `json:"class"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.GreaterOrEqual(t, body.RiskLevel, 1)
	assert.LessOrEqual(t, body.RiskLevel, 5)
	assert.NotEmpty(t, body.RiskLabel)
	assert.GreaterOrEqual(t, body.Probability, 0.0)
	assert.LessOrEqual(t, body.Probability, 1.0)
	assert.Contains(t, []int{0, 1}, body.Class)
}

func TestPredictRejectsInvalidPatient(t *testing.T) {
	patient := samplePatient()
	patient["Age"] = 7
	resp := postJSON(t, "/api/v1/predict", patient)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func postJSON(t *testing.T, path string, body interface{}) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(apiURL+path, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	return resp
}
