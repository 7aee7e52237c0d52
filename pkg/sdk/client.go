// Package sdk provides the client-side library for interacting with the clientes service.
// It supports both remote connections over HTTP(S) and local embedded mode.
package sdk

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/celerix-dev/clientes/pkg/query"
	"github.com/celerix-dev/clientes/pkg/schema"
	"github.com/goccy/go-json"
)

const resourcePath = "/clientes"

// Client is a remote client for the clientes service.
// It implements the ClienteStore interface.
type Client struct {
	baseURL string
	http    *http.Client
}

// Connect returns a client for the service at addr and checks that it answers.
// addr may be a bare host:port (plain HTTP) or a full http:// or https:// URL.
func Connect(addr string) (*Client, error) {
	if !strings.Contains(addr, "://") {
		addr = "http://" + addr
	}
	u, err := url.Parse(addr)
	if err != nil {
		return nil, fmt.Errorf("invalid address %q: %w", addr, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid address %q: missing host", addr)
	}

	c := &Client{
		baseURL: strings.TrimRight(addr, "/"),
		http: &http.Client{
			Timeout: 10 * time.Second,
			Transport: &http.Transport{
				// The daemon uses a self-signed certificate when TLS is enabled
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			},
		},
	}
	if err := c.Ping(); err != nil {
		return nil, err
	}
	return c, nil
}

// Ping checks that the service is up.
func (c *Client) Ping() error {
	_, err := c.do(http.MethodGet, "/ping", nil, nil)
	return err
}

func (c *Client) Create(firstName, lastName string) (schema.Cliente, error) {
	var out schema.Cliente
	_, err := c.do(http.MethodPost, resourcePath, schema.NewClienteInput(firstName, lastName), &out)
	return out, err
}

func (c *Client) Get(id string) (schema.Cliente, error) {
	var out schema.Cliente
	_, err := c.do(http.MethodGet, resourcePath+"/"+url.PathEscape(id), nil, &out)
	return out, err
}

func (c *Client) Update(id, firstName, lastName string) (schema.Cliente, error) {
	var out schema.Cliente
	_, err := c.do(http.MethodPut, resourcePath+"/"+url.PathEscape(id), schema.NewClienteInput(firstName, lastName), &out)
	return out, err
}

func (c *Client) Delete(id string) error {
	_, err := c.do(http.MethodDelete, resourcePath+"/"+url.PathEscape(id), nil, nil)
	return err
}

// List fetches every record in service order.
func (c *Client) List() ([]schema.Cliente, error) {
	page, err := c.Query(query.Params{})
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

// Query runs a list request and rebuilds the page from the body and the Content-Range header.
func (c *Client) Query(p query.Params) (query.Page, error) {
	values, err := p.Values()
	if err != nil {
		return query.Page{}, err
	}

	path := resourcePath
	if len(values) > 0 {
		path += "?" + values.Encode()
	}

	var items []schema.Cliente
	header, err := c.do(http.MethodGet, path, nil, &items)
	if err != nil {
		return query.Page{}, err
	}

	_, page, err := query.ParseContentRange(header.Get(query.ContentRangeHeader))
	if err != nil {
		return query.Page{}, err
	}
	page.Items = items
	return page, nil
}

// Close releases idle connections.
func (c *Client) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// Internal helper for HTTP round trips
func (c *Client) do(method, path string, in, out any) (http.Header, error) {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp.StatusCode, raw)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return nil, fmt.Errorf("decode %s %s: %w", method, path, err)
		}
	}
	return resp.Header, nil
}

func statusError(code int, raw []byte) error {
	var body struct {
		Error string `json:"error"`
	}
	msg := strings.TrimSpace(string(raw))
	if json.Unmarshal(raw, &body) == nil && body.Error != "" {
		msg = body.Error
	}

	switch code {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", query.ErrBadRequest, strings.TrimPrefix(msg, query.ErrBadRequest.Error()+": "))
	default:
		return fmt.Errorf("server returned %d: %s", code, msg)
	}
}
