package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/mohsinkp02/HeartCare-Risk-Prediction-System/internal/domain/model"
	"github.com/mohsinkp02/HeartCare-Risk-Prediction-System/internal/domain/port"
)

// missingValue is how an absent field is rendered before encoding.
const missingValue = "None"

// FeatureEncoder is a domain service that maps raw survey answers onto the
// fixed-order feature vector the classifier was trained on.
//
// Encoding never fails. A value that cannot be converted is encoded as 0.0,
// logged at warn level and reported to the recorder. Continuous values outside
// [min, max] are clamped rather than rejected; request validation upstream is
// expected to keep them in range, and clamping keeps the vector inside [0,1]
// when it does not.
type FeatureEncoder struct {
	logger   *slog.Logger
	recorder port.PredictionRecorder
	fields   []model.FieldSpec
}

// NewFeatureEncoder creates an encoder over the standard 18-field table.
// A nil recorder discards observability signals.
func NewFeatureEncoder(logger *slog.Logger, recorder port.PredictionRecorder) *FeatureEncoder {
	if recorder == nil {
		recorder = port.NopRecorder{}
	}
	return &FeatureEncoder{
		logger:   logger,
		recorder: recorder,
		fields:   model.FieldSpecs(),
	}
}

// Encode converts raw field values into a FeatureVector in declared field order.
func (e *FeatureEncoder) Encode(ctx context.Context, raw map[string]any) model.FeatureVector {
	var vec model.FeatureVector
	for i, field := range e.fields {
		// A missing key yields nil, which renders as "None".
		value := raw[field.Name]

		v, ok := encodeField(field, value)
		if !ok {
			e.logger.WarnContext(ctx, "unrecognized value, defaulting to 0.0",
				slog.String("feature", field.Name),
				slog.String("kind", field.Kind.String()),
				slog.String("value", rawText(value)),
			)
			e.recorder.FeatureDefaulted(ctx, field.Name)
		}
		vec[i] = v
	}
	return vec
}

// encodeField applies a single field rule. The boolean is false when the
// value was defaulted.
func encodeField(field model.FieldSpec, value any) (float64, bool) {
	switch field.Kind {
	case model.FieldContinuous:
		x, ok := toFloat(value)
		if !ok {
			return 0.0, false
		}
		norm := (x - field.Min) / (field.Max - field.Min)
		return math.Max(0.0, math.Min(1.0, norm)), true

	case model.FieldCategorical:
		text := rawText(value)
		if v, ok := field.Lookup(text); ok {
			return v, true
		}
		switch strings.ToLower(text) {
		case "on", "true", "yes":
			return 1.0, true
		case "off", "false", "no":
			return 0.0, true
		}
		return 0.0, false
	}
	return 0.0, false
}

// toFloat converts a raw value to a number. NaN is treated as non-numeric so
// it can never reach the vector; infinities clamp like any other value.
func toFloat(value any) (float64, bool) {
	var x float64
	switch v := value.(type) {
	case float64:
		x = v
	case float32:
		x = float64(v)
	case int:
		x = float64(v)
	case int8:
		x = float64(v)
	case int16:
		x = float64(v)
	case int32:
		x = float64(v)
	case int64:
		x = float64(v)
	case uint:
		x = float64(v)
	case uint8:
		x = float64(v)
	case uint16:
		x = float64(v)
	case uint32:
		x = float64(v)
	case uint64:
		x = float64(v)
	case bool:
		if v {
			x = 1
		}
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		x = f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		x = f
	default:
		return 0, false
	}
	if math.IsNaN(x) {
		return 0, false
	}
	return x, true
}

// rawText renders a raw value the way it is matched against categorical literals.
// Whole floats print without a fractional part, so 1.0 matches "1".
func rawText(value any) string {
	switch v := value.(type) {
	case nil:
		return missingValue
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case bool:
		return strconv.FormatBool(v)
	case json.Number:
		return v.String()
	default:
		// Sprint recovers from a panicking String method, e.g. on a typed nil.
		return fmt.Sprint(v)
	}
}
