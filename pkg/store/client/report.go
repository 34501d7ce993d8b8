// Package client talks HTTP to the report backend: fetching the committed
// report dataset, uploading PDFs for preview and committing them.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/fin-tools/report-atlas/pkg/models/api"
	"github.com/fin-tools/report-atlas/pkg/models/domain"
)

// APIError carries the backend's error detail alongside the HTTP status.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("report backend returned %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("report backend returned %d", e.StatusCode)
}

type ReportClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewReportClient(endpoint domain.Endpoint) *ReportClient {
	return &ReportClient{
		baseURL:    endpoint.BaseURL,
		token:      endpoint.Token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// FetchReportData retrieves the full committed dataset with its filter lists.
func (c *ReportClient) FetchReportData(ctx context.Context) (api.ReportData, error) {
	var data api.ReportData

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/report/data", nil)
	if err != nil {
		return data, fmt.Errorf("failed to create report data request: %w", err)
	}

	if err := c.do(ctx, req, &data); err != nil {
		return data, err
	}

	return data, nil
}

// UploadFile sends one PDF to the backend's preview area. The caller owns the
// reader; it is consumed but not closed.
func (c *ReportClient) UploadFile(ctx context.Context, name string, r io.Reader) (api.UploadResult, error) {
	var result api.UploadResult

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", name)
	if err != nil {
		return result, fmt.Errorf("failed to create multipart form: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return result, fmt.Errorf("failed to read upload %q: %w", name, err)
	}
	if err := mw.Close(); err != nil {
		return result, fmt.Errorf("failed to finalize multipart form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload", &buf)
	if err != nil {
		return result, fmt.Errorf("failed to create upload request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	if err := c.do(ctx, req, &result); err != nil {
		return result, err
	}

	return result, nil
}

// CommitUploads asks the backend to move the given preview uploads into the
// committed dataset.
func (c *ReportClient) CommitUploads(ctx context.Context, ids []string) (api.CommitResult, error) {
	var result api.CommitResult

	payload, err := json.Marshal(api.CommitRequest{IDs: ids})
	if err != nil {
		return result, fmt.Errorf("failed to marshal commit request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/commit", bytes.NewReader(payload))
	if err != nil {
		return result, fmt.Errorf("failed to create commit request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if err := c.do(ctx, req, &result); err != nil {
		return result, err
	}

	return result, nil
}

func (c *ReportClient) do(ctx context.Context, req *http.Request, out any) error {
	logger := zerolog.Ctx(ctx)

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn().Err(err).Str("url", req.URL.String()).Msg("report backend request failed")
		return err
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close response body")
		}
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}

		var errResp api.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil {
			apiErr.Detail = errResp.Detail
		}

		logger.Warn().Int("status", resp.StatusCode).Str("url", req.URL.String()).
			Msg("report backend returned an error")
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode report backend response: %w", err)
	}

	return nil
}
