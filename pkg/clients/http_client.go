package clients

import (
	"errors"
	"io"
	"net/http"
	"time"
)

const requestTimeout = 10 * time.Second

var ErrCloseResponseBody = errors.New("can't close response body")

// HTTPClientI is the slice of an HTTP client the geocoder depends on;
// tests substitute a stub.
type HTTPClientI interface {
	Get(url string, headers http.Header) (statusCode int, respBody []byte, respHeaders http.Header, err error)
}

// HTTPClient wraps net/http with a timeout suited to external CEP lookups.
type HTTPClient struct {
	client *http.Client
}

func NewHTTPClient() *HTTPClient {
	return &HTTPClient{
		client: &http.Client{Timeout: requestTimeout},
	}
}

// Get issues a GET and drains the body, returning status, payload and
// response headers in one call.
func (h *HTTPClient) Get(url string, headers http.Header) (statusCode int, respBody []byte, respHeaders http.Header, err error) {
	req, err := http.NewRequest(http.MethodGet, url, http.NoBody)
	if err != nil {
		return 0, nil, nil, err
	}
	if headers != nil {
		req.Header = headers
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return 0, nil, nil, err
	}
	defer func() {
		if e := resp.Body.Close(); e != nil {
			err = errors.Join(err, ErrCloseResponseBody)
		}
	}()

	respBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, nil, err
	}
	return resp.StatusCode, respBody, resp.Header, nil
}
