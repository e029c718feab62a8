package gateway

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

	"github.com/google/uuid"
	"go.uber.org/zap"

	"claimpilot/internal/models"
)

// DefaultSessionCookie is the backend's session cookie name.
const DefaultSessionCookie = "JSESSIONID"

// Client issues every call this process makes to the claims backend. One
// instance is shared; the per-user backend credential is passed per call.
type Client struct {
	base       string
	cookieName string
	http       *http.Client
	lg         *zap.SugaredLogger
}

func New(baseURL string, timeout time.Duration, lg *zap.SugaredLogger) *Client {
	return &Client{
		base:       strings.TrimRight(baseURL, "/"),
		cookieName: DefaultSessionCookie,
		http: &http.Client{
			Timeout: timeout,
			// Login responds with a redirect carrying the session cookie;
			// following it would lose the Set-Cookie we need.
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		lg: lg,
	}
}

// do issues one request and maps the response per the error taxonomy:
// transport failure -> wrapped network error, 401 -> ErrUnauthorized,
// 404 -> ErrNotFound, other non-2xx -> RejectionError with the raw body.
func (c *Client) do(ctx context.Context, method, path, token, contentType string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json, text/plain")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: c.cookieName, Value: token})
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("claims api unreachable: %w", err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	c.lg.Debugw("claims api call", "method", method, "path", path, "status", resp.StatusCode)
	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode >= 300:
		return nil, &RejectionError{Status: resp.StatusCode, Detail: strings.TrimSpace(string(raw))}
	}
	return raw, nil
}

func (c *Client) getJSON(ctx context.Context, path, token string, out any) error {
	raw, err := c.do(ctx, http.MethodGet, path, token, "", nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func (c *Client) sendJSON(ctx context.Context, method, path, token string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	raw, err := c.do(ctx, method, path, token, "application/json", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// ListClaims fetches every claim visible to the session. No pagination.
func (c *Client) ListClaims(ctx context.Context, token string) ([]models.Claim, error) {
	var claims []models.Claim
	if err := c.getJSON(ctx, "/api/claims", token, &claims); err != nil {
		return nil, err
	}
	return claims, nil
}

func (c *Client) GetClaim(ctx context.Context, token string, id int64) (*models.Claim, error) {
	var claim models.Claim
	if err := c.getJSON(ctx, fmt.Sprintf("/api/claims/%d", id), token, &claim); err != nil {
		return nil, err
	}
	return &claim, nil
}

// CreateClaim submits a new claim. The server assigns id, claimNumber and
// the SUBMITTED status; the echoed record is authoritative.
func (c *Client) CreateClaim(ctx context.Context, payload NewClaim) (*models.Claim, error) {
	var claim models.Claim
	if err := c.sendJSON(ctx, http.MethodPost, "/api/claims", "", payload, &claim); err != nil {
		return nil, err
	}
	return &claim, nil
}

// UpdateClaim applies a full or partial update and returns the server's
// post-update record. A nil map value serializes as an explicit JSON null.
func (c *Client) UpdateClaim(ctx context.Context, token string, id int64, patch ClaimPatch) (*models.Claim, error) {
	var claim models.Claim
	if err := c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/api/claims/%d", id), token, patch, &claim); err != nil {
		return nil, err
	}
	return &claim, nil
}

// AssignAdjuster sets or, with UnassignedAdjuster, clears the assignment.
func (c *Client) AssignAdjuster(ctx context.Context, token string, claimID, adjusterID int64) (*models.Claim, error) {
	var claim models.Claim
	body := map[string]int64{"adjusterId": adjusterID}
	if err := c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/api/claims/%d/assign", claimID), token, body, &claim); err != nil {
		return nil, err
	}
	return &claim, nil
}

// UnassignedAdjuster clears a claim's adjuster when passed to AssignAdjuster.
const UnassignedAdjuster int64 = 0

// AuditTrail returns the claim's audit entries in the server's order.
func (c *Client) AuditTrail(ctx context.Context, token string, claimID int64) ([]models.AuditEntry, error) {
	var entries []models.AuditEntry
	if err := c.getJSON(ctx, fmt.Sprintf("/api/claims/%d/audit", claimID), token, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// StatusCriteria keys the public status lookup; empty fields are omitted.
type StatusCriteria struct {
	ClaimNumber string
	Email       string
	FirstName   string
	LastName    string
}

// LookupStatus is the unauthenticated track-claim call. The response is
// plain text and is rendered as-is.
func (c *Client) LookupStatus(ctx context.Context, crit StatusCriteria) (string, error) {
	q := url.Values{}
	for k, v := range map[string]string{
		"claimNumber": crit.ClaimNumber,
		"email":       crit.Email,
		"firstName":   crit.FirstName,
		"lastName":    crit.LastName,
	} {
		if v != "" {
			q.Set(k, v)
		}
	}
	raw, err := c.do(ctx, http.MethodGet, "/api/claims/status?"+q.Encode(), "", "", nil)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(raw)), nil
}

func (c *Client) ListAdjusters(ctx context.Context, token string) ([]models.Adjuster, error) {
	var adjusters []models.Adjuster
	if err := c.getJSON(ctx, "/api/users/adjusters", token, &adjusters); err != nil {
		return nil, err
	}
	return adjusters, nil
}

// Login posts the form-encoded credentials and captures the backend session
// cookie. The backend answers login with a redirect, so any status below
// 400 with a cookie attached counts as success.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	form := url.Values{"username": {username}, "password": {password}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/login", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-Request-ID", uuid.NewString())
	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("claims api unreachable: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode >= 400 {
		return "", ErrUnauthorized
	}
	for _, ck := range resp.Cookies() {
		if ck.Name == c.cookieName && ck.Value != "" {
			return ck.Value, nil
		}
	}
	return "", ErrUnauthorized
}

// Me reports the identity bound to the session token; 401 maps to
// ErrUnauthorized like every other protected call.
func (c *Client) Me(ctx context.Context, token string) (*models.Identity, error) {
	var id models.Identity
	if err := c.getJSON(ctx, "/api/auth/me", token, &id); err != nil {
		return nil, err
	}
	return &id, nil
}

// Logout invalidates the backend session. Best effort: the caller clears
// local state regardless of the outcome.
func (c *Client) Logout(ctx context.Context, token string) error {
	_, err := c.do(ctx, http.MethodPost, "/logout", token, "", nil)
	return err
}
