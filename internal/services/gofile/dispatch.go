package gofile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// envelope is the uniform wrapper every Gofile response uses. Data is a
// pointer so a null or absent payload is distinguishable from a zero value.
type envelope[T any] struct {
	Status string `json:"status"`
	Data   *T     `json:"data"`
}

// StatusError reports a response whose status code is outside the 2xx
// range. The response body is not inspected in that case.
type StatusError struct {
	Op   string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s failed: %d", e.Op, e.Code)
}

// NoDataError reports a successful status whose envelope could not be
// decoded or carried a null data field. It signals a contract mismatch
// with the remote service rather than a rejected request.
type NoDataError struct {
	Op string
}

func (e *NoDataError) Error() string {
	return fmt.Sprintf("%s response is null", e.Op)
}

// call executes exactly one request against the client and normalizes the
// result: the decoded data payload on success, or a described error. Every
// endpoint method goes through here (uploads through callMultipart); the
// only per-call variation is method, URL, query and body shape.
//
// Transport-level failures are wrapped with the operation name; context
// cancellation stays visible through errors.Is. No retries are attempted.
func call[T any](ctx context.Context, c *Client, op, method, rawURL string, query url.Values, body any) (*T, error) {
	var reader io.Reader
	contentType := ""
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%s: encoding request: %w", op, err)
		}
		reader = bytes.NewReader(encoded)
		contentType = "application/json"
	}

	if len(query) > 0 {
		rawURL += "?" + query.Encode()
	}

	req, err := c.newRequest(ctx, method, rawURL, reader, contentType)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return do[T](c, op, req)
}

// callMultipart executes one request whose body is a prepared multipart
// form, used by the upload endpoint.
func callMultipart[T any](ctx context.Context, c *Client, op, rawURL string, form *bytes.Buffer, contentType string) (*T, error) {
	req, err := c.newRequest(ctx, http.MethodPost, rawURL, form, contentType)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return do[T](c, op, req)
}

func do[T any](c *Client, op string, req *http.Request) (*T, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Op: op, Code: resp.StatusCode}
	}

	var env envelope[T]
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, &NoDataError{Op: op}
	}
	if env.Data == nil {
		return nil, &NoDataError{Op: op}
	}

	return env.Data, nil
}
