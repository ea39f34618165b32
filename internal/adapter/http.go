package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-mail-sync/internal/config"
	"github.com/MKhiriev/go-mail-sync/internal/logger"
	"github.com/MKhiriev/go-mail-sync/internal/utils"
	"github.com/MKhiriev/go-mail-sync/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	// tokenMu guards token: the refresh path rotates it from the transport's
	// auth-failure goroutine while a running sync pass reads it per request.
	tokenMu sync.RWMutex
	token   string

	logger *logger.Logger
}

// resourcePage is one page of a delta fetch response.
type resourcePage struct {
	Items              []models.MailItem `json:"items"`
	NextCursor         string            `json:"next_cursor,omitempty"`
	NextCheckpointHint *time.Time        `json:"next_checkpoint_hint,omitempty"`
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.tokenMu.Lock()
	defer h.tokenMu.Unlock()

	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	h.tokenMu.RLock()
	defer h.tokenMu.RUnlock()

	return h.token
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/login and decodes the issued token pair. On success the
// access token is stored via SetToken. Returns an error if the request fails,
// the server returns a non-2xx status, or the body cannot be decoded.
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (models.Token, error) {
	var token models.Token

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		SetResult(&token).
		Post("/api/auth/login")

	if err != nil {
		return models.Token{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	h.SetToken(token.AccessToken)
	return token, nil
}

// RefreshToken implements [ServerAdapter]. It POSTs the refresh token to
// POST /api/auth/refresh and stores the freshly issued access token. The
// server rotates the refresh token as well, so callers must persist the
// returned pair.
func (h *httpServerAdapter) RefreshToken(ctx context.Context, refreshToken string) (models.Token, error) {
	var token models.Token

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"refresh_token": refreshToken}).
		SetResult(&token).
		Post("/api/auth/refresh")

	if err != nil {
		return models.Token{}, fmt.Errorf("refresh token request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	h.SetToken(token.AccessToken)
	return token, nil
}

// FetchResource implements [ServerAdapter]. It GETs
// GET /api/sync/{resource} with an optional since watermark and follows
// next_cursor pagination until the server reports no further pages. All pages
// are aggregated into a single [models.FetchResult]. Requires a valid bearer
// token.
func (h *httpServerAdapter) FetchResource(ctx context.Context, resource string, since *time.Time) (models.FetchResult, error) {
	var result models.FetchResult
	cursor := ""

	for {
		req := h.authedRequest(ctx)
		if since != nil {
			req.SetQueryParam("since", since.UTC().Format(time.RFC3339Nano))
		}
		if cursor != "" {
			req.SetQueryParam("cursor", cursor)
		}

		resp, err := req.Get("/api/sync/" + url.PathEscape(resource))
		if err != nil {
			return models.FetchResult{}, fmt.Errorf("fetch resource %s: %w", resource, err)
		}
		if err = mapHTTPError(resp); err != nil {
			return models.FetchResult{}, err
		}

		var page resourcePage
		if err = json.Unmarshal(resp.Body(), &page); err != nil {
			return models.FetchResult{}, fmt.Errorf("decode resource page for %s: %w", resource, err)
		}

		result.Items = append(result.Items, page.Items...)
		if page.NextCheckpointHint != nil {
			result.NextCheckpointHint = page.NextCheckpointHint
		}

		if page.NextCursor == "" {
			return result, nil
		}
		cursor = page.NextCursor
	}
}

// FetchAccountList implements [ServerAdapter]. It GETs GET /api/accounts/ and
// decodes the account list. Requires a valid bearer token.
func (h *httpServerAdapter) FetchAccountList(ctx context.Context) ([]models.Account, error) {
	resp, err := h.authedRequest(ctx).Get("/api/accounts/")
	if err != nil {
		return nil, fmt.Errorf("fetch account list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var accounts []models.Account
	if err = json.Unmarshal(resp.Body(), &accounts); err != nil {
		return nil, fmt.Errorf("decode account list: %w", err)
	}

	return accounts, nil
}

// SendMessage implements [ServerAdapter]. It POSTs the outgoing message to
// POST /api/messages/send. Requires a valid bearer token.
func (h *httpServerAdapter) SendMessage(ctx context.Context, msg models.OutgoingMessage) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(msg).
		Post("/api/messages/send")
	if err != nil {
		return fmt.Errorf("send message request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
