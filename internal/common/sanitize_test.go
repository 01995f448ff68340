package common

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeFloat(t *testing.T) {
	assert.Equal(t, 1.5, SanitizeFloat(1.5, 0))
	assert.Equal(t, 0.0, SanitizeFloat(math.NaN(), 0))
	assert.Equal(t, 0.0, SanitizeFloat(math.Inf(1), 0))
	assert.Equal(t, 0.0, SanitizeFloat(math.Inf(-1), 0))
	assert.Equal(t, -1.0, SanitizeFloat(math.NaN(), -1), "caller-supplied default")
	assert.Equal(t, -0.5, SanitizeFloat(-0.5, 0), "negative finite values pass through")
}

func TestSanitize_RecursesMappingsAndSequences(t *testing.T) {
	in := map[string]any{
		"volatility": math.NaN(),
		"records": []any{
			map[string]any{"sharpe_ratio": math.Inf(1), "name": "p1"},
			2.5,
			math.Inf(-1),
		},
		"count": 3,
		"label": "weekly",
	}

	out, ok := Sanitize(in, 0).(map[string]any)
	require.True(t, ok)

	assert.Equal(t, 0.0, out["volatility"])
	assert.Equal(t, 3, out["count"])
	assert.Equal(t, "weekly", out["label"])

	records := out["records"].([]any)
	assert.Equal(t, 0.0, records[0].(map[string]any)["sharpe_ratio"])
	assert.Equal(t, "p1", records[0].(map[string]any)["name"])
	assert.Equal(t, 2.5, records[1])
	assert.Equal(t, 0.0, records[2])
}

func TestSanitize_Idempotent(t *testing.T) {
	in := map[string]any{
		"a": math.NaN(),
		"b": []any{math.Inf(1), 1.0, "x"},
		"c": map[string]any{"d": math.Inf(-1)},
	}

	once := Sanitize(in, 0)
	twice := Sanitize(once, 0)

	assert.Equal(t, once, twice)
}

func TestSanitize_LeavesNonNumericUntouched(t *testing.T) {
	assert.Equal(t, "hello", Sanitize("hello", 0))
	assert.Equal(t, 42, Sanitize(42, 0))
	assert.Equal(t, true, Sanitize(true, 0))
	assert.Nil(t, Sanitize(nil, 0))
}

func TestSanitize_OutputSerializes(t *testing.T) {
	// The whole point: json.Marshal rejects NaN/Inf, sanitized output never
	// trips that.
	in := map[string]any{"var": math.NaN(), "cvar": math.Inf(1), "n": 5}

	_, err := json.Marshal(in)
	require.Error(t, err, "unsanitized NaN must fail to serialize")

	_, err = json.Marshal(Sanitize(in, 0))
	assert.NoError(t, err)
}

func TestSanitize_Float32(t *testing.T) {
	out := Sanitize([]any{float32(math.NaN()), float32(2)}, 0).([]any)
	assert.Equal(t, float32(0), out[0])
	assert.Equal(t, float32(2), out[1])
}
