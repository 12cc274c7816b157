package allen

import (
	"cmp"
	"encoding/json"
)

// ID is an identifier the API sends either as a JSON string or as a JSON
// number. It marshals back to the kind it was decoded from, so follow-up
// requests echo the value exactly as received.
type ID struct {
	text    string
	numeric bool
}

// StringID returns an ID that marshals as a JSON string.
func StringID(s string) ID {
	return ID{text: s}
}

// NumberID returns an ID that marshals as a JSON number.
func NumberID(n json.Number) ID {
	return ID{text: n.String(), numeric: true}
}

func (id ID) String() string {
	return id.text
}

// IsNumber reports whether the ID was a JSON number.
func (id ID) IsNumber() bool {
	return id.numeric
}

// MarshalJSON implements json.Marshaler.
func (id ID) MarshalJSON() ([]byte, error) {
	if id.numeric {
		return []byte(id.text), nil
	}
	return json.Marshal(id.text)
}

// UnmarshalJSON implements json.Unmarshaler.
func (id *ID) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := decodeJSON(b, &v); err != nil {
		return err
	}
	*id = toID(v)
	return nil
}

// Compare orders by text, string IDs before numeric ones.
func (id ID) Compare(o ID) int {
	return cmp.Or(
		cmp.Compare(id.text, o.text),
		cmp.Compare(b2i(id.numeric), b2i(o.numeric)),
	)
}

func toID(v interface{}) ID {
	if n, ok := v.(json.Number); ok {
		return NumberID(n)
	}
	return StringID(text(v))
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
