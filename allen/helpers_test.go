package allen

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// capturedRequest is what the fake API saw for one call.
type capturedRequest struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Body   map[string]interface{}
}

// fakeAPI stands in for the Allen API, answering each path with a fixed
// status and body.
type fakeAPI struct {
	*httptest.Server

	mu       sync.Mutex
	routes   map[string]fakeRoute
	requests []capturedRequest
}

type fakeRoute struct {
	status int
	body   string
}

func newFakeAPI(t *testing.T) *fakeAPI {
	t.Helper()
	f := &fakeAPI{routes: map[string]fakeRoute{}}
	f.Server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.Close)
	return f
}

func (f *fakeAPI) handle(path string, status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.routes[path] = fakeRoute{status: status, body: body}
}

func (f *fakeAPI) serve(w http.ResponseWriter, r *http.Request) {
	b, _ := io.ReadAll(r.Body)
	var body map[string]interface{}
	_ = json.Unmarshal(b, &body)

	f.mu.Lock()
	f.requests = append(f.requests, capturedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.RawQuery,
		Header: r.Header.Clone(),
		Body:   body,
	})
	route, ok := f.routes[r.URL.Path]
	f.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(route.status)
	_, _ = io.WriteString(w, route.body)
}

func (f *fakeAPI) calls() []capturedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]capturedRequest(nil), f.requests...)
}

func (f *fakeAPI) host() string {
	return strings.TrimPrefix(f.URL, "http://")
}

func (f *fakeAPI) options() []Option {
	return []Option{WithHost(f.host()), WithInsecure(), WithUserAgent("allen-test")}
}

// tokenClient returns a Client that skips the login flow.
func (f *fakeAPI) tokenClient(t *testing.T) *Client {
	t.Helper()
	c, err := New(context.Background(), Credentials{Token: "test-token"}, f.options()...)
	require.NoError(t, err)
	return c
}

// stubFetcher answers every request with the same payload.
type stubFetcher struct {
	requests []Request
	payload  *Payload
	err      error
}

func (s *stubFetcher) FetchJSON(_ context.Context, req Request) (*Payload, error) {
	s.requests = append(s.requests, req)
	return s.payload, s.err
}

func newPayload(data string) *Payload {
	return &Payload{
		URL:        "https://" + DefaultHost + APIPrefix + "/stub",
		StatusCode: http.StatusOK,
		Body:       []byte(`{"data":` + data + `}`),
		Data:       json.RawMessage(data),
	}
}

func mustObject(t *testing.T, s string) Object {
	t.Helper()
	o, err := ParseObject([]byte(s))
	require.NoError(t, err)
	return o
}
