package models

import (
	"math"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// LooseInt decodes any JSON value into an int. Numbers and numeric strings
// are truncated toward zero; null, booleans, objects, non-numeric strings and
// non-finite values decode to 0. Decoding never fails.
type LooseInt int

func (l *LooseInt) UnmarshalJSON(data []byte) error {
	*l = 0

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}

	var f float64
	switch v := raw.(type) {
	case float64:
		f = v
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}

	if math.IsNaN(f) || math.IsInf(f, 0) || f >= math.MaxInt64 || f < math.MinInt64 {
		return nil
	}
	*l = LooseInt(int64(f))
	return nil
}

func (l LooseInt) Int() int {
	return int(l)
}
