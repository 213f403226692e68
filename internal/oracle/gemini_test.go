package oracle

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"cotador/internal"
	"cotador/internal/config"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func testMatcher(t *testing.T, modelOutput string, status int) *GeminiMatcher {
	t.Helper()
	cfg, _ := config.Load()
	cfg.OracleAPIKey = "test"
	cfg.OracleModel = "test-model"

	m := NewGeminiMatcher(cfg)
	m.httpClient = &http.Client{
		Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			if !strings.Contains(r.URL.Path, "models/test-model") {
				t.Fatalf("unexpected path %s", r.URL.Path)
			}
			payload := map[string]any{
				"candidates": []map[string]any{
					{"content": map[string]any{"parts": []map[string]any{{"text": modelOutput}}}},
				},
			}
			blob, _ := json.Marshal(payload)
			return &http.Response{
				StatusCode: status,
				Body:       io.NopCloser(strings.NewReader(string(blob))),
				Header:     make(http.Header),
			}, nil
		}),
	}
	return m
}

var testCandidates = []internal.MatchCandidate{
	{ID: "item-1", Description: "Flex Biometria A11 Preto", Category: "component", InStock: true},
}

func TestBestMatchOK(t *testing.T) {
	m := testMatcher(t, `{"matchedId": "item-1"}`, http.StatusOK)
	res := m.BestMatch(context.Background(), "flex a11", testCandidates)
	if res.Outcome != OutcomeMatch || res.MatchedID != "item-1" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestBestMatchNull(t *testing.T) {
	m := testMatcher(t, `{"matchedId": null}`, http.StatusOK)
	res := m.BestMatch(context.Background(), "flex a11", testCandidates)
	if res.Outcome != OutcomeNoMatch {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestBestMatchFencedOutput(t *testing.T) {
	m := testMatcher(t, "```json\n{\"matchedId\": \"item-1\"}\n```", http.StatusOK)
	res := m.BestMatch(context.Background(), "flex a11", testCandidates)
	if res.Outcome != OutcomeMatch || res.MatchedID != "item-1" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestBestMatchMalformed(t *testing.T) {
	cases := []string{
		"sure, the best match is item-1",
		`{"matchedId": "item-1", "confidence": 0.9}`,
		`{"otherField": true}`,
		"",
	}
	for _, output := range cases {
		m := testMatcher(t, output, http.StatusOK)
		res := m.BestMatch(context.Background(), "flex a11", testCandidates)
		if res.Outcome == OutcomeMatch {
			t.Fatalf("output %q should not match: %+v", output, res)
		}
	}
}

func TestBestMatchServerError(t *testing.T) {
	m := testMatcher(t, `{"matchedId": "item-1"}`, http.StatusInternalServerError)
	res := m.BestMatch(context.Background(), "flex a11", testCandidates)
	if res.Outcome != OutcomeFailure || res.Err == nil {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestBestMatchNoCandidates(t *testing.T) {
	called := false
	cfg, _ := config.Load()
	cfg.OracleAPIKey = "test"
	m := NewGeminiMatcher(cfg)
	m.httpClient = &http.Client{
		Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			called = true
			return nil, context.Canceled
		}),
	}
	res := m.BestMatch(context.Background(), "flex a11", nil)
	if res.Outcome != OutcomeNoMatch || called {
		t.Fatalf("empty candidate list must short-circuit: %+v called=%v", res, called)
	}
}
