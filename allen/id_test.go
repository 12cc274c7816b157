package allen

import (
	"encoding/json"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_KeepsJSONKind(t *testing.T) {
	testCases := []struct {
		in      string
		text    string
		numeric bool
	}{
		{`"T-991"`, "T-991", false},
		{`"991"`, "991", false},
		{`991`, "991", true},
		{`12345678901234567890`, "12345678901234567890", true},
		{`1.50`, "1.50", true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			var id ID
			require.NoError(t, json.Unmarshal([]byte(tc.in), &id))
			assert.Equal(t, tc.text, id.String())
			assert.Equal(t, tc.numeric, id.IsNumber())

			out, err := json.Marshal(id)
			require.NoError(t, err)
			assert.Equal(t, tc.in, string(out))
		})
	}
}

func TestObject_ID(t *testing.T) {
	o := mustObject(t, `{"a":7,"b":"7","c":null,"d":true}`)

	assert.Equal(t, NumberID("7"), o.ID("a"))
	assert.Equal(t, StringID("7"), o.ID("b"))
	assert.Equal(t, ID{}, o.ID("c"))
	assert.Equal(t, ID{}, o.ID("missing"))
	assert.Equal(t, StringID("True"), o.ID("d"))
}

func TestID_Compare(t *testing.T) {
	ids := []ID{NumberID("7"), StringID("8"), StringID("7")}
	slices.SortFunc(ids, ID.Compare)
	assert.Equal(t, []ID{StringID("7"), NumberID("7"), StringID("8")}, ids)
}
