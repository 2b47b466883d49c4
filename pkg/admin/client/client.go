// Copyright (c) 2026 The Quill Authors.
// SPDX-License-Identifier: Apache-2.0

// Package client is the HTTP client for the quill admin API, used by the
// operator tools.
package client

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
)

// ResponseError wraps a non-2xx admin API response.
type ResponseError struct {
	Err        error
	StatusCode int
	Body       []byte
}

// Error implements the error interface.
func (r ResponseError) Error() string {
	return r.Err.Error()
}

// NewResponseError creates a ResponseError.
func NewResponseError(err error, code int, body []byte) ResponseError {
	return ResponseError{
		Err:        err,
		StatusCode: code,
		Body:       body,
	}
}

// BasicAuth encodes a username/password pair for the Authorization header.
// It returns the empty string when no username is given.
func BasicAuth(username, password string) string {
	if username == "" {
		return ""
	}
	return base64.StdEncoding.EncodeToString([]byte(fmt.Sprintf("%s:%s", username, password)))
}

// Client carries the connection details shared by all admin API calls.
type Client struct {
	// Http client.
	Client *http.Client
	// Admin server endpoint.
	Endpoint string
	// Basic authentication string.
	BasicAuth string
}

type adminRequest struct {
	endpoint string
	method   string
	body     []byte
}

func (c *Client) request(req adminRequest) ([]byte, error) {
	var reader io.Reader
	if req.body != nil {
		reader = bytes.NewBuffer(req.body)
	}
	r, err := http.NewRequest(req.method, fmt.Sprintf("%s/%s", c.Endpoint, req.endpoint), reader)
	if err != nil {
		return nil, err
	}
	c.setAuthorization(r)
	r.Header.Add("Content-Type", "application/json")
	res, err := c.Client.Do(r)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return nil, c.handleFailedRequest(res)
	}
	return io.ReadAll(res.Body)
}

func (c *Client) setAuthorization(r *http.Request) {
	if c.BasicAuth != "" {
		r.Header.Add("Authorization", fmt.Sprintf("Basic %s", c.BasicAuth))
	}
}

func (c *Client) handleFailedRequest(res *http.Response) error {
	if res.Body != nil {
		bodyBytes, err := io.ReadAll(res.Body)
		if err != nil {
			return NewResponseError(fmt.Errorf("request failed and failed to read response body, status code: %d, %w", res.StatusCode, err), res.StatusCode, nil)
		}
		return NewResponseError(fmt.Errorf("request failed, status code: %d, body: %s", res.StatusCode, string(bodyBytes)), res.StatusCode, bodyBytes)
	}
	return NewResponseError(fmt.Errorf("request failed, status code: %d", res.StatusCode), res.StatusCode, nil)
}
