package allen

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/corpix/uarand"
	"github.com/go-resty/resty/v2"

	"github.com/allen-go/allen/internal/pkg/logger"
)

const (
	// DefaultHost ...
	DefaultHost = "ddcapi.allenbpms.in"
	// APIPrefix is prepended to every resource path.
	APIPrefix = "/api"

	// RecordingListPath lists recorded classes grouped by day
	RecordingListPath = "dc/student/recordinglist"
	// RecordingPlayerPath resolves the playable link of a recorded class
	RecordingPlayerPath = "dc/student/recordingplayer"
	// LiveListPath lists upcoming live classes grouped by day
	LiveListPath = "dc/student/livelist"
	// TestRecordPath lists attempted tests
	TestRecordPath = "studenttestrecord"
	// TestSolutionPath returns per-subject solutions of one test
	TestSolutionPath = "GetTestSolution"
	// ExamCalendarPath lists scheduled examinations
	ExamCalendarPath = "studentexamcalendar"
	// AddonListPath lists addon classes with their chapters
	AddonListPath = "discussion/student/list"
	// AddonPlayerPath resolves the playable link of an addon video
	AddonPlayerPath = "discussion/student/player"

	defaultTimeout = 10 * time.Second
)

// Credentials selects how a Client authenticates. Token wins when set,
// otherwise Username and Password are exchanged for one.
type Credentials struct {
	Username string
	Password string
	Token    string
}

// A Client manages communication with the Allen API.
type Client struct {
	HTTPClient *resty.Client
	Host       string
	Insecure   bool

	token     string
	deviceID  int64
	userAgent string
}

// Option configures a Client before authentication.
type Option func(*Client)

// WithHost overrides DefaultHost.
func WithHost(host string) Option {
	return func(c *Client) {
		c.Host = host
	}
}

// WithInsecure makes every request use plain HTTP.
func WithInsecure() Option {
	return func(c *Client) {
		c.Insecure = true
	}
}

// WithHTTPClient replaces the underlying resty client. A nil client is ignored.
func WithHTTPClient(hc *resty.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.HTTPClient = hc
		}
	}
}

// WithUserAgent pins the User-Agent header instead of a random one. It applies
// to the final HTTP client whatever the option order.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// New returns a new Allen API client. Without a token it logs in with the
// username and password, running the OTP verification step when the account
// requires it.
func New(ctx context.Context, creds Credentials, opts ...Option) (*Client, error) {
	c := &Client{
		HTTPClient: newHTTPClient(),
		Host:       DefaultHost,
		deviceID:   newDeviceID(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.userAgent != "" {
		c.HTTPClient.SetHeader("User-Agent", c.userAgent)
	}

	if creds.Token != "" {
		c.token = creds.Token
		return c, nil
	}
	if creds.Username == "" || creds.Password == "" {
		return nil, ErrInvalidUsernamePassword
	}

	token, err := c.login(ctx, creds.Username, creds.Password)
	if err != nil {
		return nil, err
	}
	c.token = token
	return c, nil
}

// Token returns the bearer token presented on every request.
func (c *Client) Token() string {
	return c.token
}

// DeviceID returns the device identity sent during login.
func (c *Client) DeviceID() int64 {
	return c.deviceID
}

// RecordedVideos returns every recorded class, flattened across class days.
func (c *Client) RecordedVideos(ctx context.Context) ([]RecordedVideo, error) {
	p, err := c.FetchJSON(ctx, Request{Path: RecordingListPath})
	if err != nil {
		return nil, err
	}
	days, err := p.Objects()
	if err != nil {
		return nil, err
	}

	var videos []RecordedVideo
	for _, day := range days {
		date := day.String("ClassDate")
		list, err := day.Objects("listClass")
		if err != nil {
			return nil, p.Invalid(err)
		}
		for _, o := range list {
			videos = append(videos, DecodeRecordedVideo(o, date))
		}
	}
	return videos, nil
}

// LiveClasses returns upcoming live classes grouped by day.
func (c *Client) LiveClasses(ctx context.Context) ([]LiveClassDay, error) {
	p, err := c.FetchJSON(ctx, Request{Path: LiveListPath})
	if err != nil {
		return nil, err
	}
	list, err := p.Objects()
	if err != nil {
		return nil, err
	}

	days := make([]LiveClassDay, 0, len(list))
	for _, o := range list {
		d, err := DecodeLiveClassDay(o)
		if err != nil {
			return nil, p.Invalid(err)
		}
		days = append(days, d)
	}
	return days, nil
}

// TestRecords returns the tests the student attempted.
func (c *Client) TestRecords(ctx context.Context) ([]TestRecord, error) {
	p, err := c.FetchJSON(ctx, Request{Path: TestRecordPath})
	if err != nil {
		return nil, err
	}
	data, err := p.Object()
	if err != nil {
		return nil, err
	}
	list, err := data.Objects("testList")
	if err != nil {
		return nil, p.Invalid(err)
	}

	records := make([]TestRecord, 0, len(list))
	for _, o := range list {
		r, err := DecodeTestRecord(o)
		if err != nil {
			return nil, p.Invalid(err)
		}
		records = append(records, r)
	}
	return records, nil
}

// ExamCalendar returns the entries of the examination calendar. The listing is
// all or nothing: one entry without a weekday TestDay fails the whole call
// with an InvalidResponseError.
func (c *Client) ExamCalendar(ctx context.Context) ([]Examination, error) {
	p, err := c.FetchJSON(ctx, Request{Path: ExamCalendarPath})
	if err != nil {
		return nil, err
	}
	list, err := p.Objects()
	if err != nil {
		return nil, err
	}

	exams := make([]Examination, 0, len(list))
	for _, o := range list {
		e, err := DecodeExamination(o)
		if err != nil {
			return nil, p.Invalid(err)
		}
		exams = append(exams, e)
	}
	return exams, nil
}

// AddonClasses returns the supplementary classes with their chapters and videos.
func (c *Client) AddonClasses(ctx context.Context) ([]AddonClass, error) {
	p, err := c.FetchJSON(ctx, Request{Path: AddonListPath})
	if err != nil {
		return nil, err
	}
	list, err := p.Objects()
	if err != nil {
		return nil, err
	}

	classes := make([]AddonClass, 0, len(list))
	for _, o := range list {
		a, err := DecodeAddonClass(o)
		if err != nil {
			return nil, p.Invalid(err)
		}
		classes = append(classes, a)
	}
	return classes, nil
}

func newHTTPClient() *resty.Client {
	return resty.New().
		SetTimeout(defaultTimeout).
		SetHeader("User-Agent", uarand.GetRandom()).
		SetLogger(logger.Resty{})
}

// newDeviceID returns a random 12 digit device token.
func newDeviceID() int64 {
	return 100000000000 + rand.Int64N(900000000000)
}
