package allen

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchJSON_InjectsHeaders(t *testing.T) {
	api := newFakeAPI(t)
	api.handle("/api/studentexamcalendar", http.StatusOK, `{"data":[]}`)
	c := api.tokenClient(t)

	_, err := c.FetchJSON(context.Background(), Request{
		Path:   ExamCalendarPath,
		Header: map[string]string{"Authorization": "Bearer other", "X-Extra": "1"},
	})
	require.NoError(t, err)

	calls := api.calls()
	require.Len(t, calls, 1)
	h := calls[0].Header
	assert.Equal(t, http.MethodPost, calls[0].Method)
	assert.Equal(t, "Bearer test-token", h.Get("Authorization"))
	assert.Equal(t, "application/json", h.Get("Accept"))
	assert.Contains(t, h.Get("Content-Type"), "application/json")
	assert.Equal(t, "1", h.Get("X-Extra"))
	assert.Equal(t, "allen-test", h.Get("User-Agent"))
	assert.NotNil(t, calls[0].Body)
}

func TestFetchJSON_LeadingSlashAndQuery(t *testing.T) {
	api := newFakeAPI(t)
	api.handle("/api/dc/student/livelist", http.StatusOK, `{"data":{"ok":true}}`)
	c := api.tokenClient(t)

	p, err := c.FetchJSON(context.Background(), Request{
		Path:   "/" + LiveListPath,
		Method: http.MethodGet,
		Query:  map[string]string{"page": "2"},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(p.Data))

	calls := api.calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "/api/dc/student/livelist", calls[0].Path)
	assert.Equal(t, http.MethodGet, calls[0].Method)
	assert.Equal(t, "page=2", calls[0].Query)
}

func TestFetchJSON_NonOKStatus(t *testing.T) {
	for _, status := range []int{http.StatusCreated, http.StatusUnauthorized, http.StatusInternalServerError} {
		api := newFakeAPI(t)
		api.handle("/api/studenttestrecord", status, `{"data":{}}`)
		c := api.tokenClient(t)

		_, err := c.FetchJSON(context.Background(), Request{Path: TestRecordPath, Query: map[string]string{"a": "b"}})

		var rue *ResponseUnavailableError
		require.True(t, errors.As(err, &rue), "status %d", status)
		assert.Equal(t, "http://"+api.host()+"/api/studenttestrecord", rue.URL)
		assert.Equal(t, status, rue.StatusCode)
	}
}

func TestFetchJSON_MissingData(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{"NullData", `{"data":null,"error":"False"}`},
		{"NoData", `{"error":"False"}`},
		{"NotJSON", `<html></html>`},
		{"Array", `[1,2,3]`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			api := newFakeAPI(t)
			api.handle("/api/studenttestrecord", http.StatusOK, tc.body)
			c := api.tokenClient(t)

			_, err := c.FetchJSON(context.Background(), Request{Path: TestRecordPath})

			var ire *InvalidResponseError
			require.True(t, errors.As(err, &ire))
			assert.Equal(t, http.StatusOK, ire.StatusCode)
			assert.Equal(t, tc.body, ire.Body)
		})
	}
}

func TestFetchJSON_Insecure(t *testing.T) {
	c := &Client{Host: DefaultHost}
	assert.Equal(t, "https://ddcapi.allenbpms.in/api/x", c.resourceURL("x", false))
	assert.Equal(t, "http://ddcapi.allenbpms.in/api/x", c.resourceURL("/x", true))
}

func TestPayload_Invalid(t *testing.T) {
	p := newPayload(`{}`)
	err := p.Invalid(missing("testList"))

	var ire *InvalidResponseError
	require.True(t, errors.As(err, &ire))
	assert.Equal(t, p.URL, ire.URL)
	assert.ErrorIs(t, err, ErrMissingField)
	assert.Contains(t, err.Error(), "testList")
}
