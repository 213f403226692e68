package oracle

import (
	"encoding/json"

	"cotador/internal"
)

// BuildMatchPrompt embeds the query and candidate summaries into a strict
// JSON-only instruction block.
func BuildMatchPrompt(query string, candidates []internal.MatchCandidate) string {
	blob, _ := json.Marshal(candidates)

	return `You are a parts-matching engine for a phone repair shop.

Given a customer request and a list of inventory candidates, pick the single
candidate that best matches the request. The request and the candidate
descriptions are in Brazilian Portuguese and may use abbreviations, model
codes and color names.

Rules:
- Output MUST be valid JSON and nothing else.
- Output MUST be exactly: {"matchedId": "<id of the best candidate>"}
- If no candidate is a plausible match, output exactly: {"matchedId": null}
- NO explanations, NO markdown, NO extra fields.

REQUEST:
` + query + `

CANDIDATES:
` + string(blob) + `
`
}
