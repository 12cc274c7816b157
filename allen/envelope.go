package allen

import "encoding/json"

const (
	envelopeData  = "data"
	envelopeError = "error"
)

// parseEnvelope decodes a response body that must be a JSON object.
func parseEnvelope(body []byte) (Object, error) {
	env, err := ParseObject(body)
	if err != nil {
		return nil, &FieldError{Key: envelopeData, Err: ErrMalformedField}
	}
	return env, nil
}

// dataObject narrows an envelope to its data object.
func dataObject(env Object) (Object, error) {
	return env.Object(envelopeData)
}

// rawData returns the undecoded data member, which must be present and non-null.
func rawData(body []byte) (json.RawMessage, error) {
	var env map[string]json.RawMessage
	if err := json.Unmarshal(body, &env); err != nil || env == nil {
		return nil, &FieldError{Key: envelopeData, Err: ErrMalformedField}
	}
	data, ok := env[envelopeData]
	if !ok || string(data) == "null" {
		return nil, missing(envelopeData)
	}
	return data, nil
}

// requireKeys checks that every key is present in o. Null values count as present.
func requireKeys(o Object, keys ...string) error {
	for _, k := range keys {
		if !o.Has(k) {
			return missing(k)
		}
	}
	return nil
}
