package playback

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// HTTPEngine validates an HLS source by fetching its manifest. It stands
// in for the client-side HLS library on the service side: a source whose
// manifest cannot be fetched or is not an m3u8 playlist is reported with
// the same fatal-error classification the player contract uses.
type HTTPEngine struct {
	httpClient *http.Client
	logger     *logrus.Logger
	cancel     context.CancelFunc
}

// NewHTTPEngineFactory returns an EngineFactory producing manifest-probing
// engines that share one HTTP client
func NewHTTPEngineFactory(logger *logrus.Logger) EngineFactory {
	httpClient := &http.Client{
		Timeout: 15 * time.Second,
	}
	return func() Engine {
		return &HTTPEngine{
			httpClient: httpClient,
			logger:     logger,
		}
	}
}

// Load fetches the manifest and checks it is an m3u8 playlist
func (e *HTTPEngine) Load(ctx context.Context, manifest string) error {
	ctx, cancel := context.WithCancel(ctx)
	e.cancel = cancel

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, manifest, nil)
	if err != nil {
		return &FatalError{Kind: ErrorOther, Err: err}
	}

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return &FatalError{Kind: ErrorNetwork, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &FatalError{Kind: ErrorNetwork, Err: fmt.Errorf("manifest returned status %d", resp.StatusCode)}
	}

	// An HLS playlist starts with #EXTM3U
	scanner := bufio.NewScanner(resp.Body)
	if !scanner.Scan() {
		return &FatalError{Kind: ErrorMedia, Err: fmt.Errorf("manifest is empty")}
	}
	first := strings.TrimSpace(scanner.Text())
	if !strings.HasPrefix(first, "#EXTM3U") {
		return &FatalError{Kind: ErrorMedia, Err: fmt.Errorf("manifest does not start with #EXTM3U")}
	}

	e.logger.WithField("manifest", manifest).Debug("HLS manifest validated")
	return nil
}

// RecoverMedia cannot repair a malformed remote manifest; the single
// recovery attempt the session issues fails and the attach ends terminal
func (e *HTTPEngine) RecoverMedia() error {
	return fmt.Errorf("media recovery unavailable for remote manifest")
}

// Destroy aborts any in-flight manifest fetch
func (e *HTTPEngine) Destroy() {
	if e.cancel != nil {
		e.cancel()
	}
}
