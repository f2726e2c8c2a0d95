package fetch

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Beebek-Sharma/pacsync/internal/config"
	"github.com/Beebek-Sharma/pacsync/internal/domain"
	"github.com/Beebek-Sharma/pacsync/internal/errors"
	"github.com/Beebek-Sharma/pacsync/internal/testutil"
)

var testStart = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) //nolint:gochecknoglobals // fixed test time

func testConfig(endpoint string) *config.Config {
	cfg := config.DefaultConfig()
	cfg.Endpoint = endpoint
	cfg.Username = "octocat"
	return cfg
}

// doerFunc adapts a function to HTTPClient.
type doerFunc func(req *http.Request) (*http.Response, error)

func (f doerFunc) Do(req *http.Request) (*http.Response, error) { return f(req) }

func okResponse(body string) *http.Response {
	return &http.Response{
		StatusCode: http.StatusOK,
		Status:     "200 OK",
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

func TestFetch_SuccessOnFirstAttempt(t *testing.T) {
	srv := testutil.NewSVGServer(t)
	srv.Script("light", testutil.Response{Status: http.StatusOK, Body: "<svg>A</svg>\n"})
	clk := testutil.NewFakeClock(testStart)

	c := New(testConfig(srv.URL), WithClock(clk), WithUserAgent("pacsync/test"))
	got, err := c.Fetch(context.Background(), "octocat", domain.ThemeLight)

	require.NoError(t, err)
	assert.Equal(t, "<svg>A</svg>\n", got, "body is returned untrimmed")
	assert.Empty(t, clk.Sleeps())

	reqs := srv.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "octocat", reqs[0].Query().Get("username"))
	assert.Equal(t, "light", reqs[0].Query().Get("theme"))

	hdr := srv.Headers()[0]
	assert.Equal(t, "pacsync/test", hdr.Get("User-Agent"))
	assert.Contains(t, hdr.Get("Accept"), "image/svg+xml")
}

func TestFetch_BothThemesReturnNonEmptyContent(t *testing.T) {
	srv := testutil.NewSVGServer(t)
	srv.Script("light", testutil.Response{Status: http.StatusOK, Body: "<svg>light</svg>"})
	srv.Script("dark", testutil.Response{Status: http.StatusOK, Body: "<svg>dark</svg>"})

	c := New(testConfig(srv.URL), WithClock(testutil.NewFakeClock(testStart)))
	for _, theme := range domain.Themes() {
		got, err := c.Fetch(context.Background(), "octocat", theme)
		require.NoError(t, err)
		assert.NotEmpty(t, strings.TrimSpace(got))
		assert.Contains(t, got, theme.String())
	}
}

func TestFetch_RetriesThenSucceeds(t *testing.T) {
	srv := testutil.NewSVGServer(t)
	srv.Script("dark",
		testutil.Response{Status: http.StatusInternalServerError, Body: "boom"},
		testutil.Response{Status: http.StatusOK, Body: "   \n\t"},
		testutil.Response{Status: http.StatusOK, Body: "<svg>B</svg>"},
	)
	clk := testutil.NewFakeClock(testStart)

	c := New(testConfig(srv.URL), WithClock(clk))
	got, err := c.Fetch(context.Background(), "octocat", domain.ThemeDark)

	require.NoError(t, err)
	assert.Equal(t, "<svg>B</svg>", got)
	assert.Equal(t, 3, srv.RequestCount("dark"))
	assert.Equal(t, []time.Duration{2 * time.Second, 2 * time.Second}, clk.Sleeps(),
		"two fixed delays, no backoff")
}

func TestFetch_TransportErrorsThenSuccess(t *testing.T) {
	calls := 0
	doer := doerFunc(func(_ *http.Request) (*http.Response, error) {
		calls++
		if calls <= 2 {
			return nil, testutil.ErrMockNetwork
		}
		return okResponse("<svg>B</svg>"), nil
	})
	clk := testutil.NewFakeClock(testStart)

	c := New(testConfig("https://svg.example.com/api"), WithHTTPClient(doer), WithClock(clk))
	got, err := c.Fetch(context.Background(), "octocat", domain.ThemeLight)

	require.NoError(t, err)
	assert.Equal(t, "<svg>B</svg>", got)
	assert.Equal(t, 3, calls)
	assert.Len(t, clk.Sleeps(), 2)
	assert.Equal(t, testStart.Add(4*time.Second), clk.Now(), "two delay intervals elapsed")
}

func TestFetch_AllAttemptsFail(t *testing.T) {
	tests := []struct {
		name     string
		resp     testutil.Response
		wantErr  error
		wantKind domain.FailureKind
	}{
		{
			name:     "error status",
			resp:     testutil.Response{Status: http.StatusServiceUnavailable, Body: "try later"},
			wantErr:  errors.ErrUnexpectedStatus,
			wantKind: domain.FailureStatus,
		},
		{
			name:     "blank body",
			resp:     testutil.Response{Status: http.StatusOK, Body: " \r\n "},
			wantErr:  errors.ErrEmptyResponse,
			wantKind: domain.FailureEmptyBody,
		},
		{
			name:     "redirect status is not success",
			resp:     testutil.Response{Status: http.StatusNotModified},
			wantErr:  errors.ErrUnexpectedStatus,
			wantKind: domain.FailureStatus,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := testutil.NewSVGServer(t)
			srv.Script("light", tc.resp)
			clk := testutil.NewFakeClock(testStart)

			c := New(testConfig(srv.URL), WithClock(clk))
			got, err := c.Fetch(context.Background(), "octocat", domain.ThemeLight)

			assert.Empty(t, got)
			require.ErrorIs(t, err, errors.ErrFetchFailed)
			require.ErrorIs(t, err, errors.ErrMaxRetriesExceeded)
			require.ErrorIs(t, err, tc.wantErr)

			fe, ok := domain.AsFetchError(err)
			require.True(t, ok)
			assert.Equal(t, 3, fe.Attempts)
			assert.Equal(t, tc.wantKind, fe.Last)
			assert.Equal(t, domain.ThemeLight, fe.Theme)

			assert.Equal(t, 3, srv.RequestCount("light"), "no fourth attempt")
			assert.Len(t, clk.Sleeps(), 2, "no delay after the final attempt")
		})
	}
}

func TestFetch_StatusErrorIncludesBodySnippet(t *testing.T) {
	srv := testutil.NewSVGServer(t)
	srv.Script("light", testutil.Response{Status: http.StatusBadRequest, Body: "user\n  not found"})

	cfg := testConfig(srv.URL)
	cfg.Retry.Attempts = 1
	c := New(cfg, WithClock(testutil.NewFakeClock(testStart)))

	_, err := c.Fetch(context.Background(), "octocat", domain.ThemeLight)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400 Bad Request")
	assert.Contains(t, err.Error(), "(user not found)")
}

func TestFetch_SingleAttemptConfig(t *testing.T) {
	srv := testutil.NewSVGServer(t)
	srv.Script("dark", testutil.Response{Status: http.StatusBadGateway})
	clk := testutil.NewFakeClock(testStart)

	cfg := testConfig(srv.URL)
	cfg.Retry.Attempts = 1
	c := New(cfg, WithClock(clk))

	_, err := c.Fetch(context.Background(), "octocat", domain.ThemeDark)
	require.ErrorIs(t, err, errors.ErrFetchFailed)
	assert.Equal(t, 1, srv.RequestCount("dark"))
	assert.Empty(t, clk.Sleeps())
	assert.Equal(t, 1, c.Attempts())
}

func TestFetch_AttemptTimeoutIsRetried(t *testing.T) {
	calls := 0
	doer := doerFunc(func(req *http.Request) (*http.Response, error) {
		calls++
		if calls == 1 {
			<-req.Context().Done()
			return nil, req.Context().Err()
		}
		return okResponse("<svg>late</svg>"), nil
	})

	cfg := testConfig("https://svg.example.com/api")
	cfg.Timeout = 10 * time.Millisecond
	c := New(cfg, WithHTTPClient(doer), WithClock(testutil.NewFakeClock(testStart)))

	got, err := c.Fetch(context.Background(), "octocat", domain.ThemeLight)
	require.NoError(t, err)
	assert.Equal(t, "<svg>late</svg>", got)
	assert.Equal(t, 2, calls)
}

func TestFetch_CanceledContextStopsRetrying(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := 0
	doer := doerFunc(func(_ *http.Request) (*http.Response, error) {
		calls++
		cancel()
		return nil, context.Canceled
	})
	clk := testutil.NewFakeClock(testStart)

	c := New(testConfig("https://svg.example.com/api"), WithHTTPClient(doer), WithClock(clk))
	_, err := c.Fetch(ctx, "octocat", domain.ThemeLight)

	require.ErrorIs(t, err, errors.ErrFetchFailed)
	require.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, errors.ErrMaxRetriesExceeded)
	assert.Equal(t, 1, calls)
	assert.Empty(t, clk.Sleeps())
}

func TestFetch_AlreadyCanceledContextMakesNoRequest(t *testing.T) {
	srv := testutil.NewSVGServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := New(testConfig(srv.URL), WithClock(testutil.NewFakeClock(testStart)))
	_, err := c.Fetch(ctx, "octocat", domain.ThemeDark)

	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, srv.Requests())
}

func TestFetch_InvalidInput(t *testing.T) {
	srv := testutil.NewSVGServer(t)
	c := New(testConfig(srv.URL), WithClock(testutil.NewFakeClock(testStart)))

	_, err := c.Fetch(context.Background(), " ", domain.ThemeLight)
	require.ErrorIs(t, err, errors.ErrEmptyValue)

	_, err = c.Fetch(context.Background(), "octocat", domain.Theme("sepia"))
	require.ErrorIs(t, err, errors.ErrUnknownTheme)

	assert.Empty(t, srv.Requests(), "invalid input never reaches the network")
}

// failingBody returns part of a document, then a read error.
type failingBody struct{ read bool }

func (b *failingBody) Read(p []byte) (int, error) {
	if b.read {
		return 0, testutil.ErrMockConnectionReset
	}
	b.read = true
	return copy(p, "<svg>trunc"), nil
}

func (b *failingBody) Close() error { return nil }

func TestFetch_BodyReadErrorIsRetried(t *testing.T) {
	calls := 0
	doer := doerFunc(func(_ *http.Request) (*http.Response, error) {
		calls++
		if calls == 1 {
			return &http.Response{StatusCode: http.StatusOK, Status: "200 OK", Body: &failingBody{}}, nil
		}
		return okResponse("<svg>whole</svg>"), nil
	})
	clk := testutil.NewFakeClock(testStart)

	c := New(testConfig("https://svg.example.com/api"), WithHTTPClient(doer), WithClock(clk))
	got, err := c.Fetch(context.Background(), "octocat", domain.ThemeDark)

	require.NoError(t, err)
	assert.Equal(t, "<svg>whole</svg>", got, "a truncated body is never returned")
	assert.Equal(t, 2, calls)
	assert.Len(t, clk.Sleeps(), 1)
}
