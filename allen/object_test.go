package allen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObject_Int(t *testing.T) {
	o := mustObject(t, `{"num":45,"str":"72","float":12.9,"bad":"AB","null":null,"neg":"-3"}`)

	testCases := []struct {
		key     string
		want    int
		wantErr error
	}{
		{"num", 45, nil},
		{"str", 72, nil},
		{"float", 12, nil},
		{"neg", -3, nil},
		{"bad", 0, ErrMalformedField},
		{"null", 0, ErrMissingField},
		{"absent", 0, ErrMissingField},
	}

	for _, tc := range testCases {
		t.Run(tc.key, func(t *testing.T) {
			got, err := o.Int(tc.key)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestObject_IntOr(t *testing.T) {
	o := mustObject(t, `{"Bio":"AB","Math":88}`)
	assert.Equal(t, -1, o.IntOr("Bio", -1))
	assert.Equal(t, 88, o.IntOr("Math", -1))
	assert.Equal(t, -1, o.IntOr("Chem", -1))
}

func TestObject_OptionalInt(t *testing.T) {
	o := mustObject(t, `{"a":null,"b":"x"}`)

	n, err := o.OptionalInt("a")
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = o.OptionalInt("missing")
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = o.OptionalInt("b")
	var fe *FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "b", fe.Key)
}

func TestObject_Float(t *testing.T) {
	o := mustObject(t, `{"per":72.5,"str":"81.25","bad":"--"}`)

	f, err := o.Float("per")
	require.NoError(t, err)
	assert.Equal(t, 72.5, f)

	f, err = o.Float("str")
	require.NoError(t, err)
	assert.Equal(t, 81.25, f)

	_, err = o.Float("bad")
	assert.ErrorIs(t, err, ErrMalformedField)
}

func TestObject_NullAndMissingAreAlike(t *testing.T) {
	o := mustObject(t, `{"present":null}`)

	assert.True(t, o.Has("present"))
	assert.False(t, o.Has("absent"))

	_, ok := o.Get("present")
	assert.False(t, ok)
	assert.Equal(t, o.String("absent"), o.String("present"))
}

func TestObject_String(t *testing.T) {
	o := mustObject(t, `{"s":"Physics","n":123456,"t":true,"f":false}`)
	assert.Equal(t, "Physics", o.String("s"))
	assert.Equal(t, "123456", o.String("n"))
	assert.Equal(t, "True", o.String("t"))
	assert.Equal(t, "False", o.String("f"))
}

func TestObject_Objects(t *testing.T) {
	o := mustObject(t, `{"list":[{"a":1},{"a":2}],"mixed":[{"a":1},3],"scalar":"x"}`)

	list, err := o.Objects("list")
	require.NoError(t, err)
	assert.Len(t, list, 2)

	_, err = o.Objects("mixed")
	assert.ErrorIs(t, err, ErrMalformedField)

	_, err = o.Objects("scalar")
	assert.ErrorIs(t, err, ErrMalformedField)

	_, err = o.Objects("absent")
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestParseObject_RejectsNonObjects(t *testing.T) {
	for _, in := range []string{`null`, `[1,2]`, `"x"`, `{`} {
		_, err := ParseObject([]byte(in))
		assert.Error(t, err, in)
	}
}
