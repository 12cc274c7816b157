package allen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/allen-go/allen/internal/pkg/logger"
)

// Request describes one call to an API resource.
type Request struct {
	// Path is relative to the API root, a leading slash is ignored.
	Path string
	// Method defaults to POST.
	Method   string
	Insecure bool
	Header   map[string]string
	Query    map[string]string
	// Body is sent as JSON, an empty object when nil.
	Body interface{}
}

// Payload is the validated result of a request: the data member of the
// envelope plus what is needed to report a decoding failure.
type Payload struct {
	URL        string
	StatusCode int
	Body       []byte
	Data       json.RawMessage
}

// Object decodes Data as a JSON object.
func (p *Payload) Object() (Object, error) {
	o, err := ParseObject(p.Data)
	if err != nil {
		return nil, p.Invalid(&FieldError{Key: envelopeData, Err: ErrMalformedField})
	}
	return o, nil
}

// Objects decodes Data as a JSON array of objects.
func (p *Payload) Objects() ([]Object, error) {
	objs, err := ParseObjects(p.Data)
	if err != nil {
		var fe *FieldError
		if !errors.As(err, &fe) {
			err = &FieldError{Key: envelopeData, Err: ErrMalformedField}
		}
		return nil, p.Invalid(err)
	}
	return objs, nil
}

// Invalid wraps err into an InvalidResponseError carrying the response context.
func (p *Payload) Invalid(err error) error {
	return &InvalidResponseError{
		URL:        p.URL,
		StatusCode: p.StatusCode,
		Body:       string(p.Body),
		Err:        err,
	}
}

// Fetcher performs authenticated API requests. *Client implements it, records
// that resolve detail on demand take one as an argument.
type Fetcher interface {
	FetchJSON(ctx context.Context, req Request) (*Payload, error)
}

var _ Fetcher = (*Client)(nil)

// FetchJSON performs one authenticated request and returns the validated data payload.
func (c *Client) FetchJSON(ctx context.Context, req Request) (*Payload, error) {
	method := req.Method
	if method == "" {
		method = resty.MethodPost
	}
	body := req.Body
	if body == nil {
		body = map[string]interface{}{}
	}

	url := c.resourceURL(req.Path, req.Insecure)
	r := c.newRequest(ctx, method, url, req.Query, body)
	if len(req.Header) > 0 {
		r.SetHeaders(req.Header)
	}
	r.SetHeader("Content-Type", "application/json; charset=utf-8")
	r.SetHeader("Accept", "application/json")
	r.SetHeader("Authorization", "Bearer "+c.token)

	resp, err := do(r)
	if err != nil {
		return nil, err
	}

	p := &Payload{
		URL:        url,
		StatusCode: resp.StatusCode(),
		Body:       resp.Body(),
	}
	if resp.StatusCode() != http.StatusOK {
		logNotOkResponse(resp)
		return nil, &ResponseUnavailableError{
			URL:        url,
			StatusCode: resp.StatusCode(),
			Body:       resp.String(),
		}
	}

	data, err := rawData(p.Body)
	if err != nil {
		logNotOkResponse(resp)
		return nil, p.Invalid(err)
	}
	p.Data = data
	return p, nil
}

func (c *Client) scheme(insecure bool) string {
	if insecure || c.Insecure {
		return "http://"
	}
	return "https://"
}

func (c *Client) resourceURL(path string, insecure bool) string {
	path = strings.TrimPrefix(path, "/")
	return c.scheme(insecure) + c.Host + APIPrefix + "/" + path
}

func (c *Client) newRequest(ctx context.Context, method, url string, params map[string]string, body interface{}) *resty.Request {
	r := c.HTTPClient.R()
	r.Method = method
	r.URL = url
	if ctx != nil {
		r.SetContext(ctx)
	}
	if len(params) > 0 {
		r.SetQueryParams(params)
	}
	if body != nil {
		r.SetBody(body)
	}
	return r
}

func do(r *resty.Request) (*resty.Response, error) {
	logger.Infof("Http request start, method: %s, url: %s",
		r.Method,
		r.URL,
	)
	resp, err := r.Execute(r.Method, r.URL)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", r.URL, err)
	}
	return resp, nil
}

func logNotOkResponse(resp *resty.Response) {
	logger.Warnf("Http request end, method: %s, url: %s, status code: %d, response body: %s",
		resp.Request.Method,
		resp.Request.URL,
		resp.StatusCode(),
		resp.String(),
	)
}
