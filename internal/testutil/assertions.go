package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohsinkp02/HeartCare-Risk-Prediction-System/internal/domain/model"
)

// RequireNoError fails the test immediately if err is not nil.
func RequireNoError(t *testing.T, err error, msgAndArgs ...interface{}) {
	t.Helper()
	require.NoError(t, err, msgAndArgs...)
}

// AssertErrorContains checks that err contains the expected substring.
func AssertErrorContains(t *testing.T, err error, expected string) {
	t.Helper()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), expected)
}

// AssertUnitVector checks that every component of the vector lies in [0,1].
func AssertUnitVector(t *testing.T, vec model.FeatureVector) {
	t.Helper()
	for i, v := range vec {
		assert.GreaterOrEqual(t, v, 0.0, "feature %d below range", i)
		assert.LessOrEqual(t, v, 1.0, "feature %d above range", i)
	}
}
