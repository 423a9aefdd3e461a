package main

import (
	"context"
	"github.com/goccy/go-json"
	"github.com/myrjola/casefile/internal/errors"
	"github.com/myrjola/casefile/internal/logging"
	"log/slog"
	"net/http"
	"os"
	"time"
)

// casesResponse mirrors the payload of GET /api/cases.
type casesResponse struct {
	Cases []struct {
		ID string `json:"id"`
	} `json:"cases"`
	Errors []string `json:"errors"`
}

// testCases fetches the case list from a deployed server and checks that at
// least one case is playable.
func testCases(ctx context.Context, client *http.Client, url string) (casesResponse, error) {
	var cases casesResponse

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url+"/api/cases", nil)
	if err != nil {
		return cases, errors.Wrap(err, "create request")
	}
	resp, err := client.Do(req)
	if err != nil {
		return cases, errors.Wrap(err, "fetch cases")
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return cases, errors.New("unexpected status", slog.Int("status", resp.StatusCode))
	}
	if err = json.NewDecoder(resp.Body).Decode(&cases); err != nil {
		return cases, errors.Wrap(err, "decode cases")
	}
	if len(cases.Cases) == 0 {
		return cases, errors.New("no playable cases", slog.Int("errors", len(cases.Errors)))
	}
	return cases, nil
}

func main() {
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	logger := slog.New(loggerHandler)
	ctx := context.Background()

	if len(os.Args) != 2 { //nolint:mnd // we expect only hostname to be passed as argument.
		logger.LogAttrs(ctx, slog.LevelError, "usage: smoketest <hostname>")
		os.Exit(1)
	}

	var (
		hostname = os.Args[1]
		url      = "https://" + hostname
	)
	ctx = logging.WithAttrs(ctx, slog.String("hostname", url))
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second) //nolint:mnd // 10 seconds
	defer cancel()

	client := &http.Client{Timeout: 10 * time.Second} //nolint:mnd // 10 seconds

	cases, err := testCases(ctx, client, url)
	if err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error testing cases", errors.SlogError(err))
		os.Exit(1)
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "cases loaded",
		slog.Int("cases", len(cases.Cases)), slog.Int("errors", len(cases.Errors)))

	logger.LogAttrs(ctx, slog.LevelInfo, "Smoke test successful 🙌")
	os.Exit(0)
}
