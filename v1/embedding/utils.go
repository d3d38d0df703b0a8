package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// maxErrorBodyBytes bounds how much of an error response body is kept for
// error messages.
const maxErrorBodyBytes = 512

// postJSON sends an HTTP POST request to the backend. It marshals the body
// as JSON, handles HTTP error codes, and decodes the response JSON into out.
// Non-2xx responses become *statusError; undecodable success bodies become
// *InvalidResponseError.
func (p *ollamaProvider) postJSON(ctx context.Context, url string, body any, out any) error {

	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return p.do(req, out)
}

// getJSON sends an HTTP GET request and decodes the response JSON into out.
func (p *ollamaProvider) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	return p.do(req, out)
}

func (p *ollamaProvider) do(req *http.Request, out any) error {
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return &statusError{code: resp.StatusCode, body: string(snippet)}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &InvalidResponseError{Reason: fmt.Sprintf("cannot decode body: %v", err)}
		}
	}

	return nil
}
