package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Beebek-Sharma/pacsync/internal/constants"
	"github.com/Beebek-Sharma/pacsync/internal/ctxutil"
	"github.com/Beebek-Sharma/pacsync/internal/domain"
	"github.com/Beebek-Sharma/pacsync/internal/errors"
	"github.com/Beebek-Sharma/pacsync/internal/logging"
)

// Fetch retrieves the SVG for username in the given theme.
//
// On success the body is returned exactly as received. When every attempt
// fails, the returned error is a *domain.FetchError wrapping the last
// attempt's error. Invalid input fails immediately without a request.
func (c *Client) Fetch(ctx context.Context, username string, theme domain.Theme) (string, error) {
	if strings.TrimSpace(username) == "" {
		return "", errors.Wrap(errors.ErrEmptyValue, "username must not be empty")
	}
	if !theme.Valid() {
		return "", fmt.Errorf("%w: %q", errors.ErrUnknownTheme, theme)
	}

	target, err := BuildURL(c.endpoint, username, theme)
	if err != nil {
		return "", err
	}

	logger := zerolog.Ctx(ctx).With().
		Str("component", "fetch").
		Str("theme", theme.String()).
		Logger()

	var last domain.AttemptResult
	for attempt := 1; attempt <= c.attempts; attempt++ {
		logger.Debug().
			Int("attempt", attempt).
			Int("max_attempts", c.attempts).
			Str("url", logging.RedactURL(target)).
			Msg("requesting svg")

		last = c.attempt(ctx, target, attempt)
		if last.OK() {
			logger.Debug().
				Int("attempt", attempt).
				Int("bytes", len(last.Content)).
				Msg("svg received")
			return last.Content, nil
		}

		if !last.Failure.Retryable() {
			break
		}

		logger.Warn().
			Err(last.Err).
			Int("attempt", attempt).
			Int("max_attempts", c.attempts).
			Str("failure", string(last.Failure)).
			Msg("fetch attempt failed")

		if attempt == c.attempts {
			break
		}
		if err := c.clock.Sleep(ctx, c.delay); err != nil {
			last = domain.AttemptResult{Attempt: attempt, Failure: domain.FailureCanceled, Err: err}
			break
		}
	}

	return "", &domain.FetchError{
		Theme:    theme,
		Attempts: last.Attempt,
		Last:     last.Failure,
		Err:      last.Err,
	}
}

// attempt performs one GET bounded by the per-attempt timeout.
func (c *Client) attempt(ctx context.Context, target string, n int) domain.AttemptResult {
	if err := ctxutil.Canceled(ctx); err != nil {
		return domain.AttemptResult{Attempt: n, Failure: domain.FailureCanceled, Err: err}
	}

	attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, target, nil)
	if err != nil {
		return domain.AttemptResult{Attempt: n, Failure: domain.FailureTransport, Err: fmt.Errorf("%w: %w", errors.ErrTransport, err)}
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", constants.AcceptHeader)

	resp, err := c.http.Do(req)
	if err != nil {
		return c.transportFailure(ctx, n, 0, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, readErr := io.ReadAll(io.LimitReader(resp.Body, constants.MaxResponseBytes))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return domain.AttemptResult{
			Attempt:    n,
			Failure:    domain.FailureStatus,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%w: %s%s", errors.ErrUnexpectedStatus, resp.Status, snippet(body)),
		}
	}

	if readErr != nil {
		return c.transportFailure(ctx, n, resp.StatusCode, readErr)
	}

	content := string(body)
	if strings.TrimSpace(content) == "" {
		return domain.AttemptResult{
			Attempt:    n,
			Failure:    domain.FailureEmptyBody,
			StatusCode: resp.StatusCode,
			Err:        errors.ErrEmptyResponse,
		}
	}

	return domain.AttemptResult{Attempt: n, Content: content, StatusCode: resp.StatusCode}
}

// transportFailure classifies err as cancellation of the run or as a
// retryable transport error, which includes the attempt's own timeout.
func (c *Client) transportFailure(ctx context.Context, n, status int, err error) domain.AttemptResult {
	if ctxutil.Interrupted(ctx, err) {
		return domain.AttemptResult{Attempt: n, Failure: domain.FailureCanceled, StatusCode: status, Err: ctx.Err()}
	}
	return domain.AttemptResult{
		Attempt:    n,
		Failure:    domain.FailureTransport,
		StatusCode: status,
		Err:        fmt.Errorf("%w: %w", errors.ErrTransport, err),
	}
}

// snippet returns a short, single-line excerpt of an error body for messages.
func snippet(body []byte) string {
	const maxLen = 120
	s := strings.Join(strings.Fields(string(body)), " ")
	if s == "" {
		return ""
	}
	if len(s) > maxLen {
		s = s[:maxLen] + "..."
	}
	return " (" + s + ")"
}
