package pipeline

import (
	"context"
	"strings"
	"sync"

	"cotador/internal"
	"cotador/internal/config"
	"cotador/internal/pricing"
	"cotador/internal/util"
)

// Greeting and farewell lines that show up in pasted conversations. Compared
// against the normalized line.
var stopPhrases = map[string]struct{}{
	"bom dia":     {},
	"boa tarde":   {},
	"boa noite":   {},
	"obrigado":    {},
	"obrigada":    {},
	"valeu":       {},
	"tchau":       {},
	"ate mais":    {},
	"ate logo":    {},
	"abraco":      {},
	"tudo bem":    {},
	"tudo bem?":   {},
	"com licenca": {},
}

// BatchProcessor resolves every usable line of a pasted request
// concurrently, bounded by a worker limit, and keeps results in input-line
// order regardless of completion order.
type BatchProcessor struct {
	resolver *Resolver
	workers  int
}

type BatchResult struct {
	Requests []internal.QuoteRequest
	Total    float64
}

func NewBatchProcessor(cfg config.Config, resolver *Resolver) *BatchProcessor {
	workers := cfg.BatchWorkers
	if workers <= 0 {
		workers = 1
	}
	return &BatchProcessor{resolver: resolver, workers: workers}
}

func (p *BatchProcessor) Process(ctx context.Context, text string, items []internal.InventoryItem) BatchResult {
	lines := usableLines(text)

	requests := make([]internal.QuoteRequest, len(lines))
	for i, line := range lines {
		requests[i] = internal.QuoteRequest{OriginalText: line, Status: internal.QuotePending}
	}

	sem := make(chan struct{}, p.workers)
	var wg sync.WaitGroup
	for i := range requests {
		wg.Add(1)
		go func(req *internal.QuoteRequest) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			req.Status = internal.QuoteProcessing
			item := p.resolver.Resolve(ctx, req.OriginalText, items)
			if item == nil {
				req.Status = internal.QuoteNotFound
				return
			}
			req.Item = item
			req.FinalPrice = util.FloatPtr(pricing.Calculate(item.Cost, item.Rule))
			req.Status = internal.QuoteCompleted
		}(&requests[i])
	}
	wg.Wait()

	total := 0.0
	for i := range requests {
		// out-of-stock matches keep their price but stay out of the total
		if requests[i].Status == internal.QuoteCompleted && requests[i].Item.InStock {
			total += *requests[i].FinalPrice
		}
	}

	return BatchResult{Requests: requests, Total: total}
}

func usableLines(text string) []string {
	raw := strings.Split(text, "\n")
	out := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimRight(line, "\r")
		norm := util.Normalize(line)
		if len([]rune(norm)) <= 3 {
			continue
		}
		if _, ok := stopPhrases[norm]; ok {
			continue
		}
		out = append(out, line)
	}
	return out
}
