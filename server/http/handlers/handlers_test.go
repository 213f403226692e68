package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"cotador/internal"
	"cotador/internal/catalog"
	"cotador/internal/config"
	"cotador/internal/oracle"
	"cotador/internal/pipeline"
	"cotador/internal/util"
)

type staticMatcher struct{}

func (staticMatcher) BestMatch(_ context.Context, _ string, candidates []internal.MatchCandidate) oracle.Result {
	return oracle.Result{Outcome: oracle.OutcomeMatch, MatchedID: candidates[0].ID}
}

func testDeps(t *testing.T) (*catalog.Store, *pipeline.BatchProcessor) {
	t.Helper()
	cfg, _ := config.Load()
	store := catalog.NewStore()
	resolver := pipeline.NewResolver(cfg, staticMatcher{}, zerolog.Nop())
	return store, pipeline.NewBatchProcessor(cfg, resolver)
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d", rec.Code)
	}
}

func TestQuoteEmptyCatalog(t *testing.T) {
	store, processor := testDeps(t)
	h := Quote(store, processor, zerolog.Nop())

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/quote", strings.NewReader(`{"text":"flex a11"}`)))
	if rec.Code != http.StatusConflict {
		t.Fatalf("status=%d", rec.Code)
	}
}

func TestQuoteBadBody(t *testing.T) {
	store, processor := testDeps(t)
	h := Quote(store, processor, zerolog.Nop())

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/quote", strings.NewReader(`not json`)))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status=%d", rec.Code)
	}
}

func TestQuoteHappyPath(t *testing.T) {
	store, processor := testDeps(t)
	store.Replace([]internal.InventoryItem{{
		ID:          "flex-1",
		Description: "Flex Biometria A11",
		Normalized:  util.Normalize("Flex Biometria A11"),
		Cost:        10,
		Category:    internal.CategoryComponent,
		InStock:     true,
		Rule:        internal.RuleStandard,
	}})
	h := Quote(store, processor, zerolog.Nop())

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/quote", strings.NewReader(`{"text":"bom dia\nflex a11"}`)))
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}

	var body struct {
		Requests []internal.QuoteRequest `json:"requests"`
		Total    float64                 `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if len(body.Requests) != 1 {
		t.Fatalf("requests=%d", len(body.Requests))
	}
	req := body.Requests[0]
	if req.Status != internal.QuoteCompleted || req.FinalPrice == nil || *req.FinalPrice != 20 {
		t.Fatalf("got %+v", req)
	}
	if body.Total != 20 {
		t.Fatalf("total=%v", body.Total)
	}
}
