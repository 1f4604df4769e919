package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"talentmatch/internal/importer"
)

// Notifier tells the API server an import run finished so it can drop
// cached rankings and push the update to websocket subscribers.
type Notifier interface {
	ImportCompleted(ctx context.Context, sum importer.Summary) error
}

type httpNotifier struct {
	endpoint      string
	internalToken string
	client        *http.Client
	logger        *log.Logger
}

type importCompletedRequest struct {
	RunID       string `json:"run_id"`
	Source      string `json:"source"`
	Imported    int    `json:"imported"`
	CompletedAt string `json:"completed_at"`
}

func NewNotifier(endpoint string, internalToken string, logger *log.Logger) Notifier {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return nil
	}
	return &httpNotifier{
		endpoint:      endpoint,
		internalToken: strings.TrimSpace(internalToken),
		client:        &http.Client{Timeout: 5 * time.Second},
		logger:        logger,
	}
}

func (c *httpNotifier) ImportCompleted(ctx context.Context, sum importer.Summary) error {
	if c == nil {
		return errors.New("nil webhook client")
	}
	if c.client == nil {
		return errors.New("nil http client")
	}

	body := importCompletedRequest{
		RunID:       sum.RunID.String(),
		Source:      sum.Source,
		Imported:    sum.Imported,
		CompletedAt: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Internal-Token", c.internalToken)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		bodyStr := strings.TrimSpace(string(rb))
		err := fmt.Errorf("import webhook failed: status=%d body=%s", resp.StatusCode, bodyStr)
		if c.logger != nil {
			c.logger.Printf("webhook | import completed error endpoint=%s status=%d body=%q", c.endpoint, resp.StatusCode, bodyStr)
		}
		return err
	}
	return nil
}

var _ Notifier = (*httpNotifier)(nil)
