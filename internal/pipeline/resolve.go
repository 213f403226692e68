package pipeline

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"cotador/internal"
	"cotador/internal/config"
	"cotador/internal/oracle"
)

// Resolver maps one free-text request to an inventory item, or to nothing.
// Every oracle failure mode resolves to "no match"; the resolver never
// returns an error to its caller.
type Resolver struct {
	matcher oracle.Matcher
	timeout time.Duration
	limit   int
	log     zerolog.Logger
}

func NewResolver(cfg config.Config, matcher oracle.Matcher, logger zerolog.Logger) *Resolver {
	return &Resolver{
		matcher: matcher,
		timeout: time.Duration(cfg.OracleTimeoutMs) * time.Millisecond,
		limit:   cfg.CandidateLimit,
		log:     logger,
	}
}

func (r *Resolver) Resolve(ctx context.Context, query string, items []internal.InventoryItem) *internal.InventoryItem {
	ranked := RankCandidates(query, items, r.limit)
	if len(ranked) == 0 {
		// nothing plausible, skip the oracle call entirely
		return nil
	}

	candidates := make([]internal.MatchCandidate, 0, len(ranked))
	for _, item := range ranked {
		candidates = append(candidates, internal.MatchCandidate{
			ID:          item.ID,
			Description: item.Description,
			Category:    string(item.Category),
			InStock:     item.InStock,
		})
	}

	callCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res := r.matcher.BestMatch(callCtx, query, candidates)
	switch res.Outcome {
	case oracle.OutcomeMatch:
	case oracle.OutcomeFailure:
		r.log.Warn().Err(res.Err).Str("query", query).Msg("oracle call failed")
		return nil
	default:
		return nil
	}

	for i := range items {
		if items[i].ID == res.MatchedID {
			item := items[i]
			return &item
		}
	}

	r.log.Warn().Str("query", query).Str("matchedId", res.MatchedID).Msg("oracle returned unknown id")
	return nil
}
