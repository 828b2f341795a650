// Package httpapi sends JSON API requests alongside browser tests, for
// example to seed or clean up the data a page displays.
package httpapi

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang/glog"
)

// CommonHeaders are sent with every request. They take precedence over
// Client.Header.
var CommonHeaders = map[string]string{
	"Content-Type": "application/json;charset=UTF-8",
	"Accept":       "application/json, text/plain, */*",
}

// DefaultTimeout bounds a request when the context carries no deadline.
const DefaultTimeout = 30 * time.Second

// Client sends requests relative to BaseURL. Test servers commonly use
// self-signed certificates, so certificates are not verified.
type Client struct {
	BaseURL string
	// Header is sent with every request.
	Header map[string]string

	resty *resty.Client
}

// New returns a Client for baseURL.
func New(baseURL string) *Client {
	r := resty.New().
		SetTimeout(DefaultTimeout).
		SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	return &Client{BaseURL: baseURL, Header: map[string]string{}, resty: r}
}

// Request describes one API call. URL is appended to the client's BaseURL.
type Request struct {
	// Method defaults to GET.
	Method string
	URL    string
	// JSON, if set, is encoded as the request body.
	JSON   interface{}
	Params map[string]string
	// Form, if set, is sent as a url-encoded body.
	Form map[string]string
	// Files maps form field names to paths of files to upload.
	Files map[string]string
}

// Do sends req. Responses with an error status are returned without an
// error; only transport failures are.
func (c *Client) Do(ctx context.Context, req Request) (*resty.Response, error) {
	method := strings.ToUpper(req.Method)
	if method == "" {
		method = http.MethodGet
	}
	url := c.BaseURL + req.URL

	headers := make(map[string]string, len(c.Header)+len(CommonHeaders))
	for k, v := range c.Header {
		headers[k] = v
	}
	for k, v := range CommonHeaders {
		headers[k] = v
	}

	r := c.resty.R().
		SetContext(ctx).
		SetHeaders(headers).
		SetQueryParams(req.Params)
	if req.JSON != nil {
		r.SetBody(req.JSON)
	}
	if len(req.Form) > 0 {
		r.SetFormData(req.Form)
	}
	if len(req.Files) > 0 {
		r.SetFiles(req.Files)
	}

	resp, err := r.Execute(method, url)
	if err != nil {
		glog.Errorf("request failed: %s %s: %v", method, url, err)
		return nil, fmt.Errorf("request failed: %w", err)
	}
	glog.V(1).Infof("%s %s: %s", method, url, resp.Status())
	return resp, nil
}

// Get sends a GET request for url with the query params.
func (c *Client) Get(ctx context.Context, url string, params map[string]string) (*resty.Response, error) {
	return c.Do(ctx, Request{Method: http.MethodGet, URL: url, Params: params})
}

// Post sends body as JSON to url.
func (c *Client) Post(ctx context.Context, url string, body interface{}) (*resty.Response, error) {
	return c.Do(ctx, Request{Method: http.MethodPost, URL: url, JSON: body})
}
