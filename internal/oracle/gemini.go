package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"cotador/internal"
	"cotador/internal/config"
)

// GeminiMatcher calls a Gemini-compatible generateContent endpoint. One
// request per quote line, no retries: a failed call counts as no match for
// that line only.
type GeminiMatcher struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewGeminiMatcher(cfg config.Config) *GeminiMatcher {
	return &GeminiMatcher{
		baseURL:    strings.TrimRight(cfg.OracleBaseURL, "/"),
		apiKey:     cfg.OracleAPIKey,
		model:      cfg.OracleModel,
		httpClient: &http.Client{Timeout: time.Duration(cfg.OracleTimeoutMs) * time.Millisecond},
	}
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (g *GeminiMatcher) BestMatch(ctx context.Context, query string, candidates []internal.MatchCandidate) Result {
	if strings.TrimSpace(g.apiKey) == "" {
		return failure(errors.New("missing ORACLE_API_KEY"))
	}
	if len(candidates) == 0 {
		return noMatch()
	}

	text, err := g.generate(ctx, BuildMatchPrompt(query, candidates))
	if err != nil {
		return failure(err)
	}
	return parseDecision(text)
}

func (g *GeminiMatcher) generate(ctx context.Context, prompt string) (string, error) {
	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)

	payload := map[string]any{
		"contents": []map[string]any{
			{"parts": []map[string]string{{"text": prompt}}},
		},
		"generationConfig": map[string]any{
			"temperature":     0.0,
			"maxOutputTokens": 64,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("oracle status %d: %s", resp.StatusCode, truncate(string(raw), 200))
	}

	var parsed generateResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", err
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("empty oracle response")
	}

	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

// parseDecision validates the model's text output against the exact
// {"matchedId": string|null} contract. Anything else is a failure, which
// callers fold into no match.
func parseDecision(text string) Result {
	cleaned := stripCodeFence(strings.TrimSpace(text))

	var decision struct {
		MatchedID *string `json:"matchedId"`
	}
	dec := json.NewDecoder(strings.NewReader(cleaned))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&decision); err != nil {
		return failure(fmt.Errorf("malformed oracle output: %w", err))
	}

	if decision.MatchedID == nil || strings.TrimSpace(*decision.MatchedID) == "" {
		return noMatch()
	}
	return matched(strings.TrimSpace(*decision.MatchedID))
}

func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
