package opennotify

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/vk/issctl/internal/ctxlog"
)

// Default endpoints of the public Open Notify deployment.
const (
	DefaultLocationURL = "http://api.open-notify.org/iss-now.json"
	DefaultPassingURL  = "http://api.open-notify.org/iss-pass.json"
	DefaultPeopleURL   = "http://api.open-notify.org/astros.json"
)

const defaultTimeout = 10 * time.Second

// Latitude is restricted to the range the pass endpoint can answer for;
// longitude covers the full circle.
const (
	MinLatitude  = -80.0
	MaxLatitude  = 80.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// Endpoints holds the three API URLs. Zero-value fields fall back to the
// public deployment.
type Endpoints struct {
	Location string
	Passing  string
	People   string
}

// PassQuery is the input to Passes. Alt (observer altitude in metres) and
// Number (requested pass count) are optional pass-through parameters; the
// zero value omits them and lets the API choose.
type PassQuery struct {
	Lat    float64
	Lon    float64
	Alt    float64
	Number int
}

// Client issues single-attempt GET requests against the Open Notify API.
type Client struct {
	endpoints  Endpoints
	httpClient *http.Client
}

// NewClient builds a Client for the given endpoints. A non-positive timeout
// selects the default.
func NewClient(endpoints Endpoints, timeout time.Duration) *Client {
	if endpoints.Location == "" {
		endpoints.Location = DefaultLocationURL
	}
	if endpoints.Passing == "" {
		endpoints.Passing = DefaultPassingURL
	}
	if endpoints.People == "" {
		endpoints.People = DefaultPeopleURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		endpoints:  endpoints,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// CurrentLocation fetches the ISS position right now.
func (c *Client) CurrentLocation(ctx context.Context) (*LocationReading, error) {
	doc, err := c.getDocument(ctx, c.endpoints.Location, nil)
	if err != nil {
		return nil, err
	}
	return locationFrom(doc)
}

// Passes fetches the upcoming overhead passes for a ground location. The
// query is validated locally first: an out-of-range coordinate returns a
// *ValidationError without touching the network.
func (c *Client) Passes(ctx context.Context, q PassQuery) (*PassResult, error) {
	if q.Lat < MinLatitude || q.Lat > MaxLatitude {
		return nil, &ValidationError{Field: "latitude", Value: q.Lat, Min: MinLatitude, Max: MaxLatitude}
	}
	if q.Lon < MinLongitude || q.Lon > MaxLongitude {
		return nil, &ValidationError{Field: "longitude", Value: q.Lon, Min: MinLongitude, Max: MaxLongitude}
	}

	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(q.Lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(q.Lon, 'f', -1, 64))
	if q.Alt != 0 {
		params.Set("alt", strconv.FormatFloat(q.Alt, 'f', -1, 64))
	}
	if q.Number != 0 {
		params.Set("n", strconv.Itoa(q.Number))
	}

	doc, err := c.getDocument(ctx, c.endpoints.Passing, params)
	if err != nil {
		return nil, err
	}
	return passesFrom(doc)
}

// People fetches the roster of people currently in space.
func (c *Client) People(ctx context.Context) (*PeopleResult, error) {
	doc, err := c.getDocument(ctx, c.endpoints.People, nil)
	if err != nil {
		return nil, err
	}
	return peopleFrom(doc)
}

// getDocument performs one GET, decodes the body, and checks the message
// field. All request URLs are reported in resulting errors.
func (c *Client) getDocument(ctx context.Context, endpoint string, params url.Values) (Document, error) {
	requestURL := endpoint
	if len(params) > 0 {
		requestURL = endpoint + "?" + params.Encode()
	}

	raw, err := c.get(ctx, requestURL)
	if err != nil {
		return nil, err
	}

	doc, err := Decode(raw)
	if err != nil {
		return nil, err
	}
	if err := successful(doc, requestURL); err != nil {
		return nil, err
	}
	return doc, nil
}

// get performs the HTTP request and returns the raw body. Any failure to
// obtain a 200 body is a *TransportError.
func (c *Client) get(ctx context.Context, requestURL string) ([]byte, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("requesting", "url", requestURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, &TransportError{URL: requestURL, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{URL: requestURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &TransportError{URL: requestURL, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: requestURL, Err: fmt.Errorf("reading response body: %w", err)}
	}

	logger.Debug("response received", "url", requestURL, "bytes", len(body))
	return body, nil
}
