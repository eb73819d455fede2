// Package agentsearch is the client for the external AI search pipeline:
// natural-language query parsing plus vector similarity, returning results
// that arrive pre-scored. Its final_score/vector_score fields are kept
// disjoint from the heuristic fit score so consumers never conflate the two.
package agentsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"crewmatch/internal/config"

	"github.com/google/uuid"
)

var ErrDisabled = errors.New("agent search disabled")

// Result is one pre-scored hit from the pipeline, passed through untouched.
type Result struct {
	JobID       uuid.UUID `json:"job_id"`
	FinalScore  float64   `json:"final_score"`
	VectorScore float64   `json:"vector_score"`
	Explanation string    `json:"explanation"`
}

type Client struct {
	baseURL string
	http    *http.Client
	logger  *log.Logger
}

func NewClient(cfg config.AgentSearchConfig, logger *log.Logger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
	}
}

func (c *Client) Enabled() bool {
	return c != nil && c.baseURL != ""
}

type searchRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit"`
}

type searchResponse struct {
	Results []Result `json:"results"`
}

func (c *Client) Search(ctx context.Context, query string, limit int) ([]Result, error) {
	if !c.Enabled() {
		return nil, ErrDisabled
	}

	body, err := json.Marshal(searchRequest{Query: query, Limit: limit})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/search", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if c.logger != nil {
			c.logger.Printf("[AgentSearch] request failed: %v", err)
		}
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		if c.logger != nil {
			c.logger.Printf("[AgentSearch] unexpected status: %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("agent search: unexpected status %d", resp.StatusCode)
	}

	var out searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out.Results, nil
}
