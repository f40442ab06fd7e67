package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"condoYaAdmin/internal/modules/console/application/port"
	"condoYaAdmin/internal/modules/console/domain"
	sharedauth "condoYaAdmin/internal/shared/auth"
	"condoYaAdmin/internal/shared/normalization"
)

// DirectoryHTTPClient implements port.Directory against the backend's DRF
// routers described in the endpoint registry.
type DirectoryHTTPClient struct {
	rest         *RESTClient
	timeout      time.Duration
	bulkPageSize int
	pageCap      int
}

func NewDirectoryHTTPClient(baseURL string, timeout time.Duration, bulkPageSize, pageCap int, client *http.Client) *DirectoryHTTPClient {
	if bulkPageSize <= 0 {
		bulkPageSize = 200
	}
	if pageCap <= 0 {
		pageCap = 25
	}
	return &DirectoryHTTPClient{
		rest:         NewRESTClient(baseURL, timeout, client),
		timeout:      timeoutOrDefault(timeout),
		bulkPageSize: bulkPageSize,
		pageCap:      pageCap,
	}
}

func (c *DirectoryHTTPClient) ListRows(ctx context.Context, token, entity string) ([]domain.Row, error) {
	endpoint, ok := lookupEndpoint(entity)
	if !ok {
		slog.Warn("directory list entity unsupported", slog.String("entity", entity))
		return nil, port.ErrUnsupported
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	values := url.Values{}
	values.Set("page_size", strconv.Itoa(c.bulkPageSize))
	// Stable server order keeps the followed pages disjoint; presentation order
	// is decided console-side.
	values.Set("ordering", "id")

	req, err := c.rest.NewRequest(ctx, http.MethodGet, endpoint.listPath, nil)
	if err != nil {
		return nil, err
	}
	req.URL.RawQuery = values.Encode()

	authorization := sharedauth.BearerHeaderValue(token)
	rows := make([]domain.Row, 0, c.bulkPageSize)
	next := ""
	for page := 0; page < c.pageCap; page++ {
		if page > 0 {
			req, err = c.rest.NewAbsoluteRequest(ctx, http.MethodGet, next, nil)
			if err != nil {
				return nil, err
			}
		}
		prepareRequest(req, authorization)
		envelope, err := c.fetchPage(req, entity)
		if err != nil {
			return nil, err
		}
		rows = append(rows, envelope.Results...)
		next = strings.TrimSpace(envelope.Next)
		if next == "" {
			break
		}
	}
	if next != "" {
		slog.Warn("directory list page cap reached", slog.String("entity", entity), slog.Int("rows", len(rows)))
	}

	slog.Debug("directory list fetched", slog.String("entity", entity), slog.Int("rows", len(rows)))
	return rows, nil
}

func (c *DirectoryHTTPClient) fetchPage(req *http.Request, entity string) (pageEnvelope, error) {
	res, err := c.rest.Do(req)
	if err != nil {
		slog.Error("directory list request error", slog.String("entity", entity), slog.String("url", req.URL.String()), slog.Any("error", err))
		return pageEnvelope{}, fmt.Errorf("directory request failed: %w", err)
	}
	defer res.Body.Close()

	if err := classifyStatus(res, http.StatusOK); err != nil {
		slog.Warn("directory list rejected", slog.String("entity", entity), slog.Int("status", res.StatusCode), slog.String("url", req.URL.String()))
		return pageEnvelope{}, err
	}
	return decodePage(res.Body)
}

func (c *DirectoryHTTPClient) GetRow(ctx context.Context, token, entity, id string) (domain.Row, error) {
	endpoint, ok := lookupEndpoint(entity)
	if !ok {
		slog.Warn("directory detail entity unsupported", slog.String("entity", entity))
		return nil, port.ErrUnsupported
	}
	if strings.TrimSpace(id) == "" {
		return nil, port.ErrNotFound
	}

	res, err := c.send(ctx, token, http.MethodGet, endpoint.detailPath(id), nil)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if err := classifyStatus(res, http.StatusOK); err != nil {
		return nil, err
	}
	return decodeRow(res.Body)
}

func (c *DirectoryHTTPClient) CreateRow(ctx context.Context, token, entity string, payload map[string]any) (domain.Row, error) {
	endpoint, ok := lookupEndpoint(entity)
	if !ok {
		return nil, port.ErrUnsupported
	}

	res, err := c.send(ctx, token, http.MethodPost, endpoint.listPath, payload)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if err := classifyStatus(res, http.StatusCreated, http.StatusOK); err != nil {
		return nil, err
	}
	return decodeRow(res.Body)
}

func (c *DirectoryHTTPClient) UpdateRow(ctx context.Context, token, entity, id string, payload map[string]any) (domain.Row, error) {
	endpoint, ok := lookupEndpoint(entity)
	if !ok {
		return nil, port.ErrUnsupported
	}
	if strings.TrimSpace(id) == "" {
		return nil, port.ErrNotFound
	}

	res, err := c.send(ctx, token, http.MethodPut, endpoint.detailPath(id), payload)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if err := classifyStatus(res, http.StatusOK); err != nil {
		return nil, err
	}
	return decodeRow(res.Body)
}

func (c *DirectoryHTTPClient) DeleteRow(ctx context.Context, token, entity, id string) error {
	endpoint, ok := lookupEndpoint(entity)
	if !ok {
		return port.ErrUnsupported
	}
	if strings.TrimSpace(id) == "" {
		return port.ErrNotFound
	}

	res, err := c.send(ctx, token, http.MethodDelete, endpoint.detailPath(id), nil)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	return classifyStatus(res, http.StatusNoContent, http.StatusOK)
}

func (c *DirectoryHTTPClient) send(ctx context.Context, token, method, path string, payload map[string]any) (*http.Response, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode payload: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := c.rest.NewRequest(ctx, method, path, body)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	prepareRequest(req, sharedauth.BearerHeaderValue(token))

	slog.Debug("directory request", slog.String("method", method), slog.String("url", req.URL.String()))
	res, err := c.rest.Do(req)
	if err != nil {
		slog.Error("directory request error", slog.String("method", method), slog.String("url", req.URL.String()), slog.Any("error", err))
		return nil, fmt.Errorf("directory request failed: %w", err)
	}
	return res, nil
}

func prepareRequest(req *http.Request, authorization string) {
	req.Header.Set("Accept", "application/json")
	if strings.TrimSpace(authorization) != "" {
		req.Header.Set("Authorization", authorization)
	}
}

// classifyStatus translates backend status codes into the port's error classes.
// 400 bodies are mined for DRF field errors so forms can re-render inline.
func classifyStatus(res *http.Response, accepted ...int) error {
	for _, status := range accepted {
		if res.StatusCode == status {
			return nil
		}
	}

	switch res.StatusCode {
	case http.StatusUnauthorized:
		return port.ErrUnauthorized
	case http.StatusForbidden:
		return port.ErrForbidden
	case http.StatusNotFound:
		return port.ErrNotFound
	case http.StatusBadRequest:
		return decodeValidationBody(res.Body)
	default:
		body, _ := io.ReadAll(io.LimitReader(res.Body, 2048))
		slog.Error("directory unexpected status", slog.Int("status", res.StatusCode), slog.String("body", strings.TrimSpace(string(body))))
		return fmt.Errorf("unexpected backend response %d", res.StatusCode)
	}
}

// decodeValidationBody parses DRF's 400 shape: {"field": ["msg"], ...} or
// {"detail": "msg"}.
func decodeValidationBody(body io.Reader) error {
	var payload map[string]any
	if err := json.NewDecoder(io.LimitReader(body, 8192)).Decode(&payload); err != nil {
		return &port.ValidationError{Fields: map[string]string{"__all__": "invalid request"}}
	}

	fields := make(map[string]string, len(payload))
	for field, value := range payload {
		switch typed := value.(type) {
		case string:
			fields[field] = strings.TrimSpace(typed)
		case []any:
			messages := make([]string, 0, len(typed))
			for _, item := range typed {
				if message := normalization.AsString(item); message != "" {
					messages = append(messages, message)
				}
			}
			if len(messages) > 0 {
				fields[field] = strings.Join(messages, " ")
			}
		}
	}
	if detail, ok := fields["detail"]; ok {
		delete(fields, "detail")
		fields["__all__"] = detail
	}
	if len(fields) == 0 {
		fields["__all__"] = "invalid request"
	}
	return &port.ValidationError{Fields: fields}
}
