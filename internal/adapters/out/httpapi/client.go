package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"lastmile/internal/core/ports"
	"lastmile/internal/pkg/errs"
)

const (
	defaultTimeout = 15 * time.Second

	// maxResponseBytes caps how much of a response body is read; the API
	// returns small JSON documents.
	maxResponseBytes = 1 << 20
)

// Client talks to the remote coordination API. It implements
// ports.OrderClient, ports.UserClient and ports.AuthClient.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  ports.TokenStore
	logger  *slog.Logger
}

// NewClient creates a Client for the API at baseURL. The token store is read
// before every authenticated request; there is no client-side caching of the
// token beyond that slot.
func NewClient(baseURL string, tokens ports.TokenStore, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		tokens:  tokens,
		logger:  logger.With("component", "httpapi"),
	}
}

// call describes a single request to the API. resource/resourceID feed the
// not-found error when the server answers 404; conflictID marks the claim
// request whose 409 means a lost race.
type call struct {
	op         string
	method     string
	path       string
	query      url.Values
	body       any
	authorized bool
	resource   string
	resourceID string
	conflictID string
}

// do executes the call and decodes a 2xx JSON response into out (out may be
// nil for empty responses).
func (c *Client) do(ctx context.Context, req call, out any) error {
	var bodyReader io.Reader
	if req.body != nil {
		raw, err := json.Marshal(req.body)
		if err != nil {
			return errs.NewRemoteCallErrorWithCause(req.op, 0, err)
		}
		bodyReader = bytes.NewReader(raw)
	}

	u := c.baseURL + req.path
	if len(req.query) > 0 {
		u += "?" + req.query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, u, bodyReader)
	if err != nil {
		return errs.NewRemoteCallErrorWithCause(req.op, 0, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if req.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	if req.authorized {
		token, loadErr := c.tokens.Load(ctx)
		if loadErr != nil {
			return errs.NewNotAuthenticatedErrorWithCause(req.op, loadErr)
		}
		if token == "" {
			return errs.NewNotAuthenticatedError(req.op)
		}
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return errs.NewRemoteCallErrorWithCause(req.op, 0, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return errs.NewRemoteCallErrorWithCause(req.op, resp.StatusCode, err)
	}

	if err := c.mapStatus(req, resp.StatusCode, raw); err != nil {
		return err
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return errs.NewRemoteCallErrorWithCause(req.op, resp.StatusCode, err)
		}
	}
	return nil
}

// mapStatus translates a non-2xx response into the errs taxonomy. Conflict
// detection is structural (HTTP 409), never a match on message text.
func (c *Client) mapStatus(req call, status int, raw []byte) error {
	if status >= 200 && status < 300 {
		return nil
	}

	c.logger.Debug("remote call rejected",
		"operation", req.op, "status", status)

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return errs.NewNotAuthenticatedErrorWithCause(req.op,
			fmt.Errorf("server answered %d", status))
	case status == http.StatusConflict && req.conflictID != "":
		return errs.NewOrderConflictErrorWithCause(req.conflictID, serverMessage(raw))
	case status == http.StatusNotFound && req.resource != "":
		return errs.NewObjectNotFoundErrorWithCause(req.resource, req.resourceID,
			fmt.Errorf("server answered 404"))
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return errs.NewValidationRejectedError(req.op, serverMessage(raw).Error())
	default:
		return errs.NewRemoteCallError(req.op, status)
	}
}

// serverMessage extracts the "message" field of an error body, falling back
// to the raw text.
func serverMessage(raw []byte) error {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Message != "" {
		return fmt.Errorf("%s", payload.Message)
	}
	return fmt.Errorf("%s", strings.TrimSpace(string(raw)))
}
