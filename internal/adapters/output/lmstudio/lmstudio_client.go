package lmstudio

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"getcooked/configs"
	"getcooked/internal/domain"
	"getcooked/internal/ports/output"

	"github.com/sirupsen/logrus"
)

var _ output.TextGenerator = (*LMStudioClientAdapter)(nil)

// Model listing is a cheap idempotent read, completions are not retried
const (
	listModelsAttempts = 3
	listModelsDelay    = 500 * time.Millisecond
)

// LMStudioClientAdapter struct - Output adapter for LM Studio's OpenAI-compatible API
type LMStudioClientAdapter struct {
	httpClient  *http.Client
	baseURL     string
	configModel string
	timeout     time.Duration

	// Model caching
	cachedModel string
	modelMu     sync.RWMutex
}

// NewLMStudioClientAdapter func - Creates new LM Studio client adapter
func NewLMStudioClientAdapter(config configs.LMStudio) (*LMStudioClientAdapter, error) {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = "http://localhost:1234"
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	timeout := time.Duration(config.Timeout) * time.Second
	if config.Timeout <= 0 {
		timeout = 60 * time.Second
	}

	httpClient := &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   10 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	logrus.Infof("LM Studio client adapter initialized with base URL: %s, timeout: %v", baseURL, timeout)

	return &LMStudioClientAdapter{
		httpClient:  httpClient,
		baseURL:     baseURL,
		configModel: config.Model,
		timeout:     timeout,
	}, nil
}

// GenerateText - Sends the prompt as a single user message to /v1/chat/completions
func (a *LMStudioClientAdapter) GenerateText(ctx context.Context, prompt string) (string, error) {
	model, err := a.getModel(ctx)
	if err != nil {
		return "", err
	}

	bodyBytes, err := json.Marshal(chatCompletionAPIRequest{
		Model:    model,
		Messages: []chatMessageAPI{{Role: "user", Content: prompt}},
		Stream:   false,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/v1/chat/completions", bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return "", fmt.Errorf("%w: lm studio: %v", domain.ErrModelTimeout, err)
		}
		return "", fmt.Errorf("%w: lm studio unreachable: %v", domain.ErrModelInvocation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: lm studio status %d - %s", domain.ErrModelInvocation, resp.StatusCode, string(body))
	}

	var apiResp chatCompletionAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return "", fmt.Errorf("%w: failed to parse chat completion response: %v", domain.ErrModelInvocation, err)
	}
	if len(apiResp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", domain.ErrModelInvocation)
	}

	logrus.Infof("Chat completion successful, model: %s, tokens: %d", apiResp.Model, apiResp.Usage.TotalTokens)

	return apiResp.Choices[0].Message.Content, nil
}

// ListModels queries the /v1/models endpoint for the ids of loaded models
func (a *LMStudioClientAdapter) ListModels(ctx context.Context) ([]string, error) {
	var lastErr error

	for attempt := 1; attempt <= listModelsAttempts; attempt++ {
		models, err := a.listModelsOnce(ctx)
		if err == nil {
			logrus.Infof("Listed %d models from LM Studio", len(models))
			return models, nil
		}
		if !isTransientError(err) {
			return nil, err
		}
		lastErr = err

		if attempt < listModelsAttempts {
			logrus.Warnf("LM Studio list models attempt %d/%d failed: %v, retrying in %v", attempt, listModelsAttempts, err, listModelsDelay)
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("context cancelled: %w", ctx.Err())
			case <-time.After(listModelsDelay):
			}
		}
	}

	return nil, fmt.Errorf("%w: lm studio unavailable after %d attempts: %v", domain.ErrModelInvocation, listModelsAttempts, lastErr)
}

func (a *LMStudioClientAdapter) listModelsOnce(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"/v1/models", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create list models request: %w", err)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return nil, &statusError{status: resp.StatusCode}
	}
	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: list models status %d - %s", domain.ErrModelInvocation, resp.StatusCode, string(body))
	}

	var modelsResp modelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&modelsResp); err != nil {
		return nil, fmt.Errorf("failed to parse models response: %w", err)
	}

	ids := make([]string, len(modelsResp.Data))
	for i, m := range modelsResp.Data {
		ids[i] = m.ID
	}
	return ids, nil
}

// getModel returns the model to use for requests, with caching
func (a *LMStudioClientAdapter) getModel(ctx context.Context) (string, error) {
	a.modelMu.RLock()
	if a.cachedModel != "" {
		model := a.cachedModel
		a.modelMu.RUnlock()
		return model, nil
	}
	a.modelMu.RUnlock()

	a.modelMu.Lock()
	defer a.modelMu.Unlock()

	// Double-check after acquiring write lock
	if a.cachedModel != "" {
		return a.cachedModel, nil
	}

	if a.configModel != "" {
		a.cachedModel = a.configModel
		logrus.Infof("Using configured model: %s", a.cachedModel)
		return a.cachedModel, nil
	}

	models, err := a.ListModels(ctx)
	if err != nil {
		return "", err
	}
	if len(models) == 0 {
		return "", fmt.Errorf("%w: no models loaded in LM Studio", domain.ErrModelInvocation)
	}

	a.cachedModel = models[0]
	logrus.Infof("Selected first available model: %s", a.cachedModel)

	return a.cachedModel, nil
}

type statusError struct {
	status int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("server error: status %d", e.status)
}

// isTransientError determines if a list models failure is worth another attempt
func isTransientError(err error) bool {
	var statusErr *statusError
	if errors.As(err, &statusErr) {
		return true
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}

	errMsg := strings.ToLower(err.Error())
	for _, pattern := range []string{"connection refused", "connection reset", "no such host", "network is unreachable", "eof"} {
		if strings.Contains(errMsg, pattern) {
			return true
		}
	}

	return false
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// API request/response structures for LM Studio's OpenAI-compatible API

type chatMessageAPI struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionAPIRequest struct {
	Model    string           `json:"model"`
	Messages []chatMessageAPI `json:"messages"`
	Stream   bool             `json:"stream"`
}

type chatCompletionAPIResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		TotalTokens int `json:"total_tokens"`
	} `json:"usage"`
}

type modelsResponse struct {
	Data []struct {
		ID string `json:"id"`
	} `json:"data"`
}
