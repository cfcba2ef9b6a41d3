package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Envelope is the standard response body shape returned by the backend:
// a success flag, an optional human-readable message, and the payload.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    *T     `json:"data"`

	// Status is the HTTP status code of the response that produced
	// this envelope. Populated by DecodeEnvelope.
	Status int `json:"-"`
}

// StatusError is returned when the server answered with a non-2xx
// status. Message holds the server's parsed error message when the
// body carried one.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server returned %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("server returned %d", e.Code)
}

// DecodeEnvelope reads and closes the response body. A 2xx response is
// decoded into an Envelope; a non-2xx response yields a StatusError
// carrying whatever message could be parsed from the error body.
func DecodeEnvelope[T any](resp *http.Response) (*Envelope[T], error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var probe struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(body, &probe) // best effort; the body may not be JSON
		return nil, &StatusError{Code: resp.StatusCode, Message: probe.Message}
	}

	var env Envelope[T]
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}
	env.Status = resp.StatusCode
	return &env, nil
}

// GetJSON performs a GET against url and decodes the enveloped
// response. A nil client falls back to http.DefaultClient.
func GetJSON[T any](ctx context.Context, client *http.Client, url string, header http.Header) (*Envelope[T], error) {
	return doJSON[T](ctx, client, http.MethodGet, url, nil, header)
}

// PostJSON marshals payload as the JSON request body, performs a POST
// against url and decodes the enveloped response. A nil client falls
// back to http.DefaultClient.
func PostJSON[T any](ctx context.Context, client *http.Client, url string, payload any, header http.Header) (*Envelope[T], error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}
	return doJSON[T](ctx, client, http.MethodPost, url, bytes.NewReader(body), header)
}

func doJSON[T any](ctx context.Context, client *http.Client, method, url string, body io.Reader, header http.Header) (*Envelope[T], error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	return DecodeEnvelope[T](resp)
}

// BearerHeader builds an Authorization header for the given token.
// Returns nil for an empty token so it can be passed straight through.
func BearerHeader(token string) http.Header {
	if token == "" {
		return nil
	}
	return http.Header{"Authorization": []string{"Bearer " + token}}
}
