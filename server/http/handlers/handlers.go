package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"cotador/internal/catalog"
	"cotador/internal/pipeline"
)

func Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type quotePayload struct {
	Text string `json:"text"`
}

// Quote resolves a pasted multi-line request against the current catalog.
// Results computed against a catalog that was replaced mid-flight are
// discarded instead of being presented as current.
func Quote(store *catalog.Store, processor *pipeline.BatchProcessor, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		defer r.Body.Close()

		var payload quotePayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			http.Error(w, "bad request body: "+err.Error(), http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(payload.Text) == "" {
			http.Error(w, "text is required", http.StatusBadRequest)
			return
		}

		items, gen := store.Snapshot()
		if len(items) == 0 {
			http.Error(w, "catalog is empty, import one first", http.StatusConflict)
			return
		}

		result := processor.Process(r.Context(), payload.Text, items)

		if store.Generation() != gen {
			logger.Warn().Uint64("generation", gen).Msg("catalog replaced during batch, dropping results")
			http.Error(w, "catalog changed during processing, retry", http.StatusConflict)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"requests": result.Requests,
			"total":    result.Total,
		})

		logger.Info().
			Int("lines", len(result.Requests)).
			Float64("total", result.Total).
			Dur("elapsed", time.Since(start)).
			Msg("quote done")
	}
}

// ImportCatalog accepts a multipart xlsx upload and swaps the catalog.
func ImportCatalog(importer *catalog.ImportService, maxUploadMB int, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		if err := r.ParseMultipartForm(int64(maxUploadMB) << 20); err != nil {
			http.Error(w, "bad multipart form: "+err.Error(), http.StatusBadRequest)
			return
		}

		file, _, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "missing file: "+err.Error(), http.StatusBadRequest)
			return
		}
		defer file.Close()

		count, err := importer.Import(file)
		if errors.Is(err, catalog.ErrNoItems) {
			http.Error(w, "workbook yielded no valid items", http.StatusUnprocessableEntity)
			return
		}
		if err != nil {
			logger.Error().Err(err).Msg("catalog import failed")
			http.Error(w, "import failed: "+err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusOK, map[string]int{"imported": count})
	}
}

func ResetCatalog(importer *catalog.ImportService, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		if err := importer.Reset(); err != nil {
			logger.Error().Err(err).Msg("catalog reset failed")
			http.Error(w, "reset failed", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
