// Package platform is the single typed boundary to the management platform's
// REST API. The backend's {success, data, pagination} / {success, message}
// shapes are normalized here once; the rest of the console works with typed
// collections and plain errors.
package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	apperrors "asset-console/pkg/errors"
	"asset-console/pkg/utils"

	"go.uber.org/zap"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(baseURL string, httpClient *http.Client, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, httpClient: httpClient, logger: logger}
}

type Pagination struct {
	Page  int `json:"page"`
	Pages int `json:"pages"`
	Total int `json:"total"`
}

type envelope[T any] struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	Data       T           `json:"data"`
	Pagination *Pagination `json:"pagination"`
}

// APIError is a platform-reported failure. Message carries the server's
// text verbatim when present, so the UI can surface it as-is.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string { return e.Message }

const genericFailureMessage = "the request could not be completed"

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := utils.GetSessionTokenFromCtx(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("platform request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", apperrors.ErrPlatformUnavailable, err)
	}
	return resp, nil
}

// decode reads one envelope and converts failures into *APIError.
func decode[T any](resp *http.Response) (*envelope[T], error) {
	defer resp.Body.Close()

	var env envelope[T]
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if resp.StatusCode >= 400 {
			return nil, &APIError{StatusCode: resp.StatusCode, Message: genericFailureMessage}
		}
		return nil, fmt.Errorf("%w: malformed platform response: %v", apperrors.ErrPlatformUnavailable, err)
	}

	if resp.StatusCode >= 400 || !env.Success {
		msg := env.Message
		if msg == "" {
			msg = genericFailureMessage
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: msg}
	}
	return &env, nil
}

func getList[T any](ctx context.Context, c *Client, path string) ([]T, *Pagination, error) {
	resp, err := c.do(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return nil, nil, err
	}
	env, err := decode[[]T](resp)
	if err != nil {
		return nil, nil, err
	}
	list := env.Data
	if list == nil {
		list = make([]T, 0)
	}
	return list, env.Pagination, nil
}

func getOne[T any](ctx context.Context, c *Client, path string) (*T, error) {
	resp, err := c.do(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return nil, err
	}
	env, err := decode[T](resp)
	if err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func send[T any](ctx context.Context, c *Client, method, path string, payload interface{}) (*T, error) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(raw)
	}
	resp, err := c.do(ctx, method, path, body, "application/json")
	if err != nil {
		return nil, err
	}
	env, err := decode[T](resp)
	if err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// UploadFile posts a single opaque attachment as multipart form data.
func (c *Client) UploadFile(ctx context.Context, path, fieldName, fileName string, file io.Reader) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(fieldName, fileName)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, file); err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}

	resp, err := c.do(ctx, http.MethodPost, path, &buf, writer.FormDataContentType())
	if err != nil {
		return err
	}
	_, err = decode[json.RawMessage](resp)
	return err
}
