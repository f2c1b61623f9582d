// Package client реализует фасад над HTTP API сервиса сокращения ссылок.
// Каждая операция консоли соответствует ровно одному HTTP вызову.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/avc-dev/url-shortener-console/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	writeShortenPath = "/write/shorten"
	readShortenPath  = "/read/shorten"

	// RequestIDHeader заголовок для корреляции запросов в логах
	RequestIDHeader = "X-Request-ID"
)

// Client выполняет вызовы API без повторов и без собственных таймаутов
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// New создает клиент для базового адреса вида http://host:port/api/v1.
// Если httpClient равен nil, используется http.DefaultClient.
func New(baseURL string, httpClient *http.Client, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

// Create POST /write/shorten
func (c *Client) Create(ctx context.Context, req model.ShortenRequest) (model.ShortenResponse, error) {
	body, err := c.do(ctx, http.MethodPost, writeShortenPath, req)
	if err != nil {
		return model.ShortenResponse{}, err
	}

	var resp model.ShortenResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return model.ShortenResponse{}, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}

	return resp, nil
}

// Resolve GET /read/shorten/{shortcode}, ответ читается как сырой текст
func (c *Client) Resolve(ctx context.Context, code model.Shortcode) (string, error) {
	body, err := c.do(ctx, http.MethodGet, shortcodePath(readShortenPath, code), nil)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Stats GET /read/shorten/{shortcode}/stats, ответ является обычным числом
func (c *Client) Stats(ctx context.Context, code model.Shortcode) (int64, error) {
	body, err := c.do(ctx, http.MethodGet, shortcodePath(readShortenPath, code)+"/stats", nil)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := json.Unmarshal(bytes.TrimSpace(body), &count); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}

	return count, nil
}

// Update PUT /write/shorten/{shortcode} с телом {"url": newURL}
func (c *Client) Update(ctx context.Context, code model.Shortcode, newURL string) error {
	_, err := c.do(ctx, http.MethodPut, shortcodePath(writeShortenPath, code), model.UpdateRequest{URL: newURL})
	return err
}

// Delete DELETE /write/shorten/{shortcode}
func (c *Client) Delete(ctx context.Context, code model.Shortcode) error {
	_, err := c.do(ctx, http.MethodDelete, shortcodePath(writeShortenPath, code), nil)
	return err
}

func shortcodePath(prefix string, code model.Shortcode) string {
	return prefix + "/" + url.PathEscape(code.String())
}

// do выполняет запрос и возвращает тело успешного ответа.
// Для не-2xx ответов возвращает *APIError.
func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := uuid.New().String()
	req.Header.Set(RequestIDHeader, requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("API request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	c.logger.Debug("API request",
		zap.String("method", method),
		zap.String("path", path),
		zap.String("request_id", requestID),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
		zap.Int("size", len(body)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var errResp model.ErrorResponse
		if json.Unmarshal(body, &errResp) == nil {
			apiErr.Message = errResp.Message
		}
		return nil, apiErr
	}

	return body, nil
}
