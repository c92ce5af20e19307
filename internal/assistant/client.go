// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// client.go - HTTP client for the assistant and query-logging endpoints.
//
// ASSISTANT: Typed errors at the network boundary
//
// Chat posts {text, chat_history} and decodes {response}; SaveQuery posts
// {text} and ignores the body. Non-2xx statuses, transport failures and
// malformed bodies come back as distinct errors that callers can classify
// with Kind.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jeranaias/chatwidget/internal/config"
)

// Configuration constants for the assistant API.
const (
	// DefaultBaseURL is the origin the widget talks to when nothing is configured.
	DefaultBaseURL = "http://localhost:8000"

	// DefaultChatPath is the chat endpoint path.
	DefaultChatPath = "/api/chat"

	// DefaultSaveQueryPath is the query-logging endpoint path.
	DefaultSaveQueryPath = "/api/save-query"

	// MaxResponseSize is the maximum allowed response body size.
	MaxResponseSize = 4 * 1024 * 1024

	// maxErrorBody caps how much of an error body ends up in a StatusError.
	maxErrorBody = 512

	// RequestIDHeader carries the per-send correlation ID.
	RequestIDHeader = "X-Request-ID"
)

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Text        string   `json:"text"`
	ChatHistory []string `json:"chat_history"`
}

// ChatResponse is the body of a successful POST /api/chat.
type ChatResponse struct {
	Response string `json:"response"`
}

// SaveQueryRequest is the body of POST /api/save-query.
type SaveQueryRequest struct {
	Text string `json:"text"`
}

// Client talks to the assistant and query-logging endpoints.
// A Client is safe for concurrent use once configured.
type Client struct {
	baseURL       string
	chatPath      string
	saveQueryPath string
	userAgent     string

	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a client for the given base origin. No request timeout is
// set; a pending request only fails when the transport does.
func NewClient(baseURL string) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:       strings.TrimSuffix(strings.TrimSpace(baseURL), "/"),
		chatPath:      DefaultChatPath,
		saveQueryPath: DefaultSaveQueryPath,
		userAgent:     "chatwidget",
		httpClient: &http.Client{
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 4,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
		logger: zap.NewNop(),
	}
}

// FromConfig builds a client for the [assistant] config section.
func FromConfig(cfg config.AssistantConfig, logger *zap.Logger) *Client {
	return NewClient(cfg.BaseURL).
		WithPaths(cfg.ChatPath, cfg.SaveQueryPath).
		WithTimeout(cfg.RequestTimeout()).
		WithLogger(logger)
}

// WithPaths overrides the endpoint paths. Empty values keep the current path.
func (c *Client) WithPaths(chatPath, saveQueryPath string) *Client {
	if chatPath != "" {
		c.chatPath = ensureLeadingSlash(chatPath)
	}
	if saveQueryPath != "" {
		c.saveQueryPath = ensureLeadingSlash(saveQueryPath)
	}
	return c
}

// WithTimeout sets an overall request timeout. Zero disables it.
func (c *Client) WithTimeout(timeout time.Duration) *Client {
	c.httpClient.Timeout = timeout
	return c
}

// WithLogger sets the diagnostics logger.
func (c *Client) WithLogger(logger *zap.Logger) *Client {
	if logger != nil {
		c.logger = logger
	}
	return c
}

// WithUserAgent sets the User-Agent header.
func (c *Client) WithUserAgent(ua string) *Client {
	if ua != "" {
		c.userAgent = ua
	}
	return c
}

// BaseURL returns the configured origin.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ChatURL returns the full chat endpoint URL.
func (c *Client) ChatURL() string {
	return c.baseURL + c.chatPath
}

// SaveQueryURL returns the full query-logging endpoint URL.
func (c *Client) SaveQueryURL() string {
	return c.baseURL + c.saveQueryPath
}

// Chat sends text with the prior user turns and returns the assistant's reply.
//
// The reply is only returned for a 2xx status with a JSON body carrying a
// string "response" field. Anything else is an error: a wrapped transport
// failure, a *StatusError, or ErrMalformedResponse.
func (c *Client) Chat(ctx context.Context, text string, history []string) (string, error) {
	if history == nil {
		history = []string{}
	}

	body, status, err := c.post(ctx, c.ChatURL(), ChatRequest{Text: text, ChatHistory: history})
	if err != nil {
		return "", err
	}
	if status < 200 || status > 299 {
		return "", &StatusError{Status: status, Body: truncateBody(body)}
	}

	reply, err := decodeChatResponse(body)
	if err != nil {
		return "", err
	}
	return reply.Response, nil
}

// SaveQuery records the raw query with the logging endpoint. The response is
// ignored except for its status, which is reported as an error so the caller
// can log it.
func (c *Client) SaveQuery(ctx context.Context, text string) error {
	body, status, err := c.post(ctx, c.SaveQueryURL(), SaveQueryRequest{Text: text})
	if err != nil {
		return err
	}
	if status < 200 || status > 299 {
		return &StatusError{Status: status, Body: truncateBody(body)}
	}
	return nil
}

// post performs one JSON POST and returns the raw body and status code.
func (c *Client) post(ctx context.Context, url string, payload any) ([]byte, int, error) {
	bodyBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	requestID := RequestID(ctx)
	if requestID != "" {
		req.Header.Set(RequestIDHeader, requestID)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)
	if err != nil {
		c.logger.Debug("assistant request failed",
			zap.String("request_id", requestID),
			zap.String("path", req.URL.Path),
			zap.Duration("duration", duration),
			zap.Error(err))
		return nil, 0, fmt.Errorf("%w: %w", errTransport, err)
	}
	defer resp.Body.Close()

	// Body is never logged; it may contain user text.
	c.logger.Debug("assistant response",
		zap.String("request_id", requestID),
		zap.String("path", req.URL.Path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", duration))

	body, err := readResponse(resp)
	if err != nil {
		return nil, resp.StatusCode, err
	}
	return body, resp.StatusCode, nil
}

// readResponse reads the response body with a size limit.
func readResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %w", errTransport, err)
	}
	if int64(len(body)) > MaxResponseSize {
		return nil, fmt.Errorf("%w: limit is %d bytes", ErrResponseTooLarge, MaxResponseSize)
	}
	return body, nil
}

// decodeChatResponse validates the reply shape. A missing or non-string
// "response" field is malformed even when the JSON itself parses.
func decodeChatResponse(body []byte) (ChatResponse, error) {
	var raw struct {
		Response *string `json:"response"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return ChatResponse{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if raw.Response == nil {
		return ChatResponse{}, fmt.Errorf("%w: missing \"response\" field", ErrMalformedResponse)
	}
	return ChatResponse{Response: *raw.Response}, nil
}

func truncateBody(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > maxErrorBody {
		return s[:maxErrorBody] + "..."
	}
	return s
}

func ensureLeadingSlash(p string) string {
	if strings.HasPrefix(p, "/") {
		return p
	}
	return "/" + p
}

// =============================================================================
// REQUEST CORRELATION
// =============================================================================

type requestIDKey struct{}

// WithRequestID attaches a correlation ID that is sent as X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the correlation ID stored in ctx, if any.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
