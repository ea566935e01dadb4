package persist

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// object is a JSON object whose members are decoded on demand so that a
// member with an unexpected type never fails the whole record.
type object map[string]json.RawMessage

var jsonNull = []byte("null")

// decodeObject returns nil if raw is not a JSON object.
func decodeObject(raw json.RawMessage) object {
	var o object

	if json.Unmarshal(raw, &o) != nil {
		return nil
	}

	return o
}

// decodeArray reports whether raw is a JSON array, and whether it is null.
func decodeArray(raw []byte) (elems []json.RawMessage, isNull bool, err error) {
	if bytes.Equal(bytes.TrimSpace(raw), jsonNull) {
		return nil, true, nil
	}

	err = json.Unmarshal(raw, &elems)

	return elems, false, err
}

func (o object) isNull(key string) bool {
	v, ok := o[key]
	return !ok || bytes.Equal(v, jsonNull)
}

// str returns the member if it is a JSON string.
func (o object) str(key string) (string, bool) {
	v, ok := o[key]
	if !ok || o.isNull(key) {
		return "", false
	}

	var s string
	if json.Unmarshal(v, &s) != nil {
		return "", false
	}

	return s, true
}

// number returns the member if it is a JSON number.
func (o object) number(key string) (int64, bool) {
	v, ok := o[key]
	if !ok {
		return 0, false
	}

	var n json.Number
	if json.Unmarshal(v, &n) != nil {
		return 0, false
	}

	// json.Number also accepts quoted strings when decoding into it
	if len(v) > 0 && v[0] == '"' {
		return 0, false
	}

	return toMillis(n.String())
}

// coerceNumber is like number but also accepts numeric strings.
func (o object) coerceNumber(key string) (int64, bool) {
	if n, ok := o.number(key); ok {
		return n, true
	}

	s, ok := o.str(key)
	if !ok {
		return 0, false
	}

	return toMillis(strings.TrimSpace(s))
}

func (o object) boolean(key string) (value, ok bool) {
	v, exists := o[key]
	if !exists || o.isNull(key) {
		return false, false
	}

	if err := json.Unmarshal(v, &value); err != nil {
		return false, false
	}

	return value, true
}

func toMillis(s string) (int64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}

	if f > math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}

	return int64(f), true
}
