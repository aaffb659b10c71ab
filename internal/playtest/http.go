package playtest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"
)

// HTTP status codes the driver distinguishes.
const (
	statusOK = 200
)

// HTTPClient wraps http.Client with a timeout.
type HTTPClient struct {
	client *http.Client
}

// newHTTPClient creates a new HTTP client with timeout.
func newHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{Timeout: timeout},
	}
}

// Get performs a GET request.
func (c *HTTPClient) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	return resp, nil
}

// Post performs a POST request with a JSON body.
func (c *HTTPClient) Post(ctx context.Context, url string, body any) (*http.Response, error) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	return resp, nil
}

// getJSON fetches url and decodes the JSON response into out.
func (c *HTTPClient) getJSON(ctx context.Context, url string, out any) error {
	resp, err := c.Get(ctx, url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != statusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// submitResults submits level results concurrently using a worker pool.
func submitResults(ctx context.Context, config *Config, results []Result, stats *Stats) error {
	log.Printf("submitting %d results with %d workers...", len(results), config.Workers)

	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/v1/levels/result"

	var (
		submitted int64
		applied   int64
		duplicate int64
		failed    int64
		stars     int64
		completed int64
		unlocked  int64
	)

	resultChan := make(chan Result, config.Workers*2)
	var wg sync.WaitGroup

	for i := 0; i < config.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for res := range resultChan {
				select {
				case <-ctx.Done():
					return
				default:
				}

				ack, ok := submitSingleResult(ctx, client, url, res)
				atomic.AddInt64(&submitted, 1)
				switch {
				case !ok:
					atomic.AddInt64(&failed, 1)
				case ack.Duplicate:
					atomic.AddInt64(&duplicate, 1)
				default:
					atomic.AddInt64(&applied, 1)
					atomic.AddInt64(&stars, int64(ack.Stars))
					atomic.AddInt64(&unlocked, int64(len(ack.NewlyUnlocked)))
					if res.Completed {
						atomic.AddInt64(&completed, 1)
					}
				}

				if config.Verbose {
					log.Printf("progress: %d/%d submitted (applied: %d, duplicate: %d, failed: %d)",
						atomic.LoadInt64(&submitted), len(results),
						atomic.LoadInt64(&applied), atomic.LoadInt64(&duplicate), atomic.LoadInt64(&failed))
				}
			}
		}()
	}

	go func() {
		defer close(resultChan)
		for _, res := range results {
			select {
			case <-ctx.Done():
				return
			case resultChan <- res:
			}
		}
	}()

	wg.Wait()

	stats.ResultsSubmitted = int(atomic.LoadInt64(&submitted))
	stats.ResultsApplied = int(atomic.LoadInt64(&applied))
	stats.ResultsDuplicate = int(atomic.LoadInt64(&duplicate))
	stats.ResultsFailed = int(atomic.LoadInt64(&failed))
	stats.CompletionsApplied = int(atomic.LoadInt64(&completed))
	stats.StarsEarned = int(atomic.LoadInt64(&stars))
	stats.AchievementsSeen = int(atomic.LoadInt64(&unlocked))

	log.Printf("submission completed: applied=%d duplicate=%d failed=%d",
		stats.ResultsApplied, stats.ResultsDuplicate, stats.ResultsFailed)
	return nil
}

// submitSingleResult posts one result and parses the acknowledgement.
func submitSingleResult(ctx context.Context, client *HTTPClient, url string, res Result) (AckResponse, bool) {
	resp, err := client.Post(ctx, url, res)
	if err != nil {
		return AckResponse{}, false
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil || resp.StatusCode != statusOK {
		return AckResponse{}, false
	}

	var ack AckResponse
	if err := json.Unmarshal(body, &ack); err != nil {
		return AckResponse{}, false
	}
	return ack, true
}
