package common

import "math"

// SanitizeFloat maps NaN and ±Inf to def, leaving finite values untouched.
// Every scalar the risk engine computes passes through here before it is
// placed in a record; percentile/mean/stddev over degenerate sub-samples can
// legitimately produce non-finite intermediates.
func SanitizeFloat(v, def float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}
	return v
}

// Sanitize recursively replaces non-finite floats in a decoded JSON-like
// structure with def. Mappings and sequences are rebuilt with sanitized
// values; non-numeric scalars pass through unchanged. Idempotent.
//
// Intended for any structure that crosses a serialization boundary, such as
// a metrics record decoded to a map or a dashboard summary.
func Sanitize(v any, def float64) any {
	switch val := v.(type) {
	case float64:
		return SanitizeFloat(val, def)
	case float32:
		return float32(SanitizeFloat(float64(val), def))
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = Sanitize(item, def)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = Sanitize(item, def)
		}
		return out
	default:
		return v
	}
}
