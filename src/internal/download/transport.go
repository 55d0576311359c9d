// Package download provides the network transport and archive handling for
// fetching runtime distributions
package download

import (
	"io"
	"net/http"

	"github.com/cockroachdb/errors"
)

// ErrNoTransport is returned when a network operation is attempted without a
// configured transport.
var ErrNoTransport = errors.New("no download transport available")

// Transport abstracts the HTTP operations nodeman needs: fetching a body and
// probing a URL for existence. The same transport serves both, so probe and
// fetch cannot diverge in availability.
type Transport interface {
	// Get retrieves url and returns the body and its length (-1 if unknown).
	// The caller owns closing the body.
	Get(url string) (io.ReadCloser, int64, error)

	// Exists reports whether url resolves with an OK status.
	Exists(url string) (bool, error)
}

// HTTPTransport implements Transport over net/http.
type HTTPTransport struct {
	client *http.Client
}

// NewHTTPTransport returns a Transport backed by the given client,
// or http.DefaultClient when client is nil.
func NewHTTPTransport(client *http.Client) *HTTPTransport {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPTransport{client: client}
}

// Get performs an HTTP GET and returns the response body.
func (t *HTTPTransport) Get(url string) (io.ReadCloser, int64, error) {
	resp, err := t.client.Get(url)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "failed to connect (URL: %s)", url)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, 0, errors.Newf("download failed (HTTP %s): %s", resp.Status, url)
	}
	return resp.Body, resp.ContentLength, nil
}

// Exists performs an HTTP HEAD and reports success only on 200 OK.
func (t *HTTPTransport) Exists(url string) (bool, error) {
	resp, err := t.client.Head(url)
	if err != nil {
		return false, errors.Wrapf(err, "failed to probe (URL: %s)", url)
	}
	defer func() { _ = resp.Body.Close() }()
	return resp.StatusCode == http.StatusOK, nil
}
