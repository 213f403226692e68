package oracle

import (
	"context"

	"cotador/internal"
)

type Outcome string

const (
	OutcomeMatch   Outcome = "match"
	OutcomeNoMatch Outcome = "no_match"
	OutcomeFailure Outcome = "failure"
)

// Result is the three-way outcome of one oracle call. Callers treat
// OutcomeFailure the same as OutcomeNoMatch; Err is only there for logging.
type Result struct {
	Outcome   Outcome
	MatchedID string
	Err       error
}

// Matcher picks the best candidate for a free-text query, or none. Calls are
// stateless; nothing carries over between them.
type Matcher interface {
	BestMatch(ctx context.Context, query string, candidates []internal.MatchCandidate) Result
}

func matched(id string) Result {
	return Result{Outcome: OutcomeMatch, MatchedID: id}
}

func noMatch() Result {
	return Result{Outcome: OutcomeNoMatch}
}

func failure(err error) Result {
	return Result{Outcome: OutcomeFailure, Err: err}
}
