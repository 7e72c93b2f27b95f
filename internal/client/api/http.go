package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bidcars/bidcars-cli/internal/client/models"
	"github.com/bidcars/bidcars-cli/internal/logging"
)

// roleBidder is the account role sent on registration. The marketplace
// assigns seller/admin roles out of band.
const roleBidder = "ROLE_BIDDER"

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 4 << 20

// HTTPClient is the JSON/HTTP implementation of Client.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     logging.Logger
}

// NewHTTPClient builds a client for the API at baseURL. Authenticated
// requests read the bearer credential from tokens on every call.
func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenSource, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log.With("component", "api"),
	}
}

// errorEnvelope is the server's error body shape.
type errorEnvelope struct {
	Message string `json:"message"`
}

// do performs one round trip: encodes body (when non-nil), decorates the
// request, maps the status code, and decodes a 2xx body into out (when
// non-nil). Authenticated calls that come back 401 clear the token source
// before returning ErrUnauthorized.
func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any, authed bool) error {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if authed {
		tok := c.tokens.Token()
		if tok == "" {
			return ErrUnauthorized
		}
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "request_id", requestID, "error", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	c.log.Info(ctx, "request done",
		"method", method, "path", path, "status", resp.StatusCode, "request_id", requestID)

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		if authed {
			if err := c.tokens.Clear(); err != nil {
				c.log.Warn(ctx, "clearing credential failed", "error", err)
			}
		}
		return ErrUnauthorized

	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w", path, ErrNotFound)

	case resp.StatusCode >= 400:
		var envelope errorEnvelope
		_ = json.Unmarshal(respBody, &envelope)
		return &Error{Status: resp.StatusCode, Message: envelope.Message, RequestID: requestID}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}

func (c *HTTPClient) Register(ctx context.Context, firstName, lastName, email, password string) (string, error) {
	body := map[string]string{
		"firstName": firstName,
		"lastName":  lastName,
		"email":     email,
		"password":  password,
		"role":      roleBidder,
	}
	var resp struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/register", body, &resp, false); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}
	var resp struct {
		AccessToken string `json:"accessToken"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", body, &resp, false); err != nil {
		return "", err
	}
	if resp.AccessToken == "" {
		return "", fmt.Errorf("login response: missing access token")
	}
	return resp.AccessToken, nil
}

func (c *HTTPClient) CurrentUser(ctx context.Context) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := c.do(ctx, http.MethodGet, "/api/v1/users/me", nil, &profile, true); err != nil {
		return nil, err
	}
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile response: %w", err)
	}
	return &profile, nil
}

func (c *HTTPClient) MyActiveBids(ctx context.Context) ([]models.Bid, error) {
	return c.getBids(ctx, "/api/v1/bids/my")
}

func (c *HTTPClient) MyWonAuctions(ctx context.Context) ([]models.Bid, error) {
	return c.getBids(ctx, "/api/v1/auctions/me/won")
}

func (c *HTTPClient) OpenAuctions(ctx context.Context) ([]models.AuctionSummary, error) {
	var auctions []models.AuctionSummary
	if err := c.do(ctx, http.MethodGet, "/api/v1/auctions", nil, &auctions, true); err != nil {
		return nil, err
	}
	for i := range auctions {
		if err := auctions[i].Validate(); err != nil {
			return nil, fmt.Errorf("invalid auction list response: %w", err)
		}
	}
	return auctions, nil
}

func (c *HTTPClient) AuctionDetail(ctx context.Context, id int64) (*models.AuctionDetail, error) {
	var detail models.AuctionDetail
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/auctions/%d", id), nil, &detail, true); err != nil {
		return nil, err
	}
	if err := detail.Validate(); err != nil {
		return nil, fmt.Errorf("invalid auction detail response: %w", err)
	}
	return &detail, nil
}

func (c *HTTPClient) AuctionBids(ctx context.Context, id int64) ([]models.Bid, error) {
	return c.getBids(ctx, fmt.Sprintf("/api/v1/auctions/%d/bids", id))
}

func (c *HTTPClient) PlaceBid(ctx context.Context, auctionID int64, amount float64) (*models.Bid, error) {
	body := map[string]float64{"amount": amount}
	var bid models.Bid
	path := fmt.Sprintf("/api/v1/auctions/%d/bids", auctionID)
	if err := c.do(ctx, http.MethodPost, path, body, &bid, true); err != nil {
		return nil, err
	}
	if err := bid.Validate(); err != nil {
		return nil, fmt.Errorf("invalid bid response: %w", err)
	}
	return &bid, nil
}

func (c *HTTPClient) getBids(ctx context.Context, path string) ([]models.Bid, error) {
	var bids []models.Bid
	if err := c.do(ctx, http.MethodGet, path, nil, &bids, true); err != nil {
		return nil, err
	}
	for i := range bids {
		if err := bids[i].Validate(); err != nil {
			return nil, fmt.Errorf("invalid bid list response: %w", err)
		}
	}
	return bids, nil
}
