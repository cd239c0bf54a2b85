package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
)

// baseURL only satisfies net/http. Every request is dialed to the socket.
const baseURL = "http://battinfo"

// Client talks to the battinfo daemon over its unix socket.
type Client struct {
	socketPath string
	httpClient *http.Client
}

// NewClient returns a Client for the daemon listening on socketPath.
func NewClient(socketPath string) *Client {
	c := &Client{socketPath: socketPath}
	c.httpClient = &http.Client{
		Transport: &http.Transport{
			DialContext: c.dial,
		},
	}
	return c
}

func (c *Client) dial(ctx context.Context, _, _ string) (net.Conn, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "unix", c.socketPath)
	if err != nil {
		return nil, dialError(err)
	}
	return conn, nil
}

// dialError turns socket errors into ErrDaemonNotRunning and
// ErrPermissionDenied so the CLI can explain them.
func dialError(err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ErrDaemonNotRunning
	case errors.Is(err, fs.ErrPermission):
		return ErrPermissionDenied
	default:
		logrus.Errorf("failed to connect to unix socket: %v", err)
		return err
	}
}

// Send issues method on path with an optional JSON body and returns the
// response body. 404 and 501 map to ErrNotFound and ErrNotImplemented.
func (c *Client) Send(method string, path string, data string) (string, error) {
	logrus.WithFields(logrus.Fields{
		"method": method,
		"path":   path,
		"data":   data,
		"unix":   c.socketPath,
	}).Debug("sending request")

	if method != http.MethodGet && method != http.MethodPost {
		return "", fmt.Errorf("unknown method: %s", method)
	}

	var body io.Reader
	if data != "" {
		body = strings.NewReader(data)
	}
	req, err := http.NewRequest(method, baseURL+path, body)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logrus.Errorf("failed to close response body: %v", err)
		}
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", ErrNotFound
	case resp.StatusCode == http.StatusNotImplemented:
		return "", ErrNotImplemented
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return "", fmt.Errorf("got %d: %s", resp.StatusCode, b)
	}

	return string(b), nil
}

// Get fetches path.
func (c *Client) Get(path string) (string, error) {
	return c.Send(http.MethodGet, path, "")
}

// Post sends data to path.
func (c *Client) Post(path string, data string) (string, error) {
	return c.Send(http.MethodPost, path, data)
}
