package allen

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Object is a decoded JSON object. A missing key and a key holding null are
// indistinguishable through every accessor except Has.
type Object map[string]interface{}

// ParseObject decodes a JSON object, keeping numbers as json.Number.
func ParseObject(b []byte) (Object, error) {
	var o Object
	if err := decodeJSON(b, &o); err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrMalformedField
	}
	return o, nil
}

// ParseObjects decodes a JSON array of objects.
func ParseObjects(b []byte) ([]Object, error) {
	var raw []interface{}
	if err := decodeJSON(b, &raw); err != nil {
		return nil, err
	}
	return toObjects("", raw)
}

func decodeJSON(b []byte, v interface{}) error {
	d := json.NewDecoder(bytes.NewReader(b))
	d.UseNumber()
	return d.Decode(v)
}

// Has reports whether key is present, even when its value is null.
func (o Object) Has(key string) bool {
	_, ok := o[key]
	return ok
}

// Get returns the value for key, or false when it is missing or null.
func (o Object) Get(key string) (interface{}, bool) {
	v, ok := o[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// String returns the textual form of key, "" when missing.
func (o Object) String(key string) string {
	v, ok := o.Get(key)
	if !ok {
		return ""
	}
	return text(v)
}

// ID returns key as an ID keeping its JSON kind, the zero ID when missing.
func (o Object) ID(key string) ID {
	v, ok := o.Get(key)
	if !ok {
		return ID{}
	}
	return toID(v)
}

// Int converts key to an int, failing when the key is missing or not numeric.
func (o Object) Int(key string) (int, error) {
	v, ok := o.Get(key)
	if !ok {
		return 0, missing(key)
	}
	n, ok := toInt(v)
	if !ok {
		return 0, malformed(key, v)
	}
	return n, nil
}

// OptionalInt is Int with a missing key yielding 0.
func (o Object) OptionalInt(key string) (int, error) {
	if _, ok := o.Get(key); !ok {
		return 0, nil
	}
	return o.Int(key)
}

// IntOr converts key to an int and substitutes def on any failure.
func (o Object) IntOr(key string, def int) int {
	n, err := o.Int(key)
	if err != nil {
		return def
	}
	return n
}

// Float converts key to a float64, failing when the key is missing or not numeric.
func (o Object) Float(key string) (float64, error) {
	v, ok := o.Get(key)
	if !ok {
		return 0, missing(key)
	}
	f, ok := toFloat(v)
	if !ok {
		return 0, malformed(key, v)
	}
	return f, nil
}

// Object returns the nested object under key.
func (o Object) Object(key string) (Object, error) {
	v, ok := o.Get(key)
	if !ok {
		return nil, missing(key)
	}
	m, ok := v.(map[string]interface{})
	if !ok {
		return nil, malformed(key, v)
	}
	return Object(m), nil
}

// Objects returns the list of objects under key.
func (o Object) Objects(key string) ([]Object, error) {
	v, ok := o.Get(key)
	if !ok {
		return nil, missing(key)
	}
	raw, ok := v.([]interface{})
	if !ok {
		return nil, malformed(key, v)
	}
	return toObjects(key, raw)
}

func toObjects(key string, raw []interface{}) ([]Object, error) {
	objs := make([]Object, 0, len(raw))
	for _, item := range raw {
		m, ok := item.(map[string]interface{})
		if !ok {
			return nil, malformed(key, item)
		}
		objs = append(objs, Object(m))
	}
	return objs, nil
}

// text renders scalars the way the platform's own client printed them:
// booleans as True/False, numbers verbatim.
func text(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		if t {
			return "True"
		}
		return "False"
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case nil:
		return ""
	default:
		b, _ := json.Marshal(t)
		return string(b)
	}
}

func toInt(v interface{}) (int, bool) {
	switch t := v.(type) {
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return int(n), true
		}
		f, err := t.Float64()
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return int(f), true
	case float64:
		return int(t), true
	case int:
		return t, true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

func toFloat(v interface{}) (float64, bool) {
	var (
		f   float64
		err error
	)
	switch t := v.(type) {
	case json.Number:
		f, err = t.Float64()
	case float64:
		f = t
	case int:
		f = float64(t)
	case string:
		f, err = strconv.ParseFloat(strings.TrimSpace(t), 64)
	default:
		return 0, false
	}
	if err != nil || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}
