package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// RecaptchaVerifier relays a widget response to the siteverify endpoint.
type RecaptchaVerifier struct {
	httpClient *http.Client
	verifyURL  string
	secret     string
	logger     zerolog.Logger
}

type siteVerifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

// NewRecaptchaVerifier creates a verifier with a fixed request timeout.
func NewRecaptchaVerifier(verifyURL, secret string, timeout time.Duration, logger zerolog.Logger) *RecaptchaVerifier {
	return &RecaptchaVerifier{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		verifyURL: verifyURL,
		secret:    secret,
		logger:    logger.With().Str("component", "recaptcha").Logger(),
	}
}

// Verify reports whether the upstream accepted response. Transport failures and
// non-2xx replies are returned as errors.
func (v *RecaptchaVerifier) Verify(ctx context.Context, response string) (bool, error) {
	form := url.Values{}
	form.Set("secret", v.secret)
	form.Set("response", response)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return false, fmt.Errorf("failed to build siteverify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("failed to call siteverify: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false, fmt.Errorf("siteverify returned status %d", resp.StatusCode)
	}

	var out siteVerifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return false, fmt.Errorf("failed to decode siteverify response: %w", err)
	}

	if !out.Success {
		v.logger.Info().Strs("error_codes", out.ErrorCodes).Msg("recaptcha rejected")
	}

	return out.Success, nil
}
