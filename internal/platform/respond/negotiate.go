package respond

import (
	"strconv"
	"strings"
)

type preference struct {
	q           float64
	specificity int
}

func (p preference) beats(other preference) bool {
	if p.q != other.q {
		return p.q > other.q
	}
	return p.specificity > other.specificity
}

// prefersCBOR reports whether the Accept header ranks a CBOR type above every JSON type.
// Ranking is by q-value, then specificity (problem+X over X). Wildcards, unknown types and
// ties fall back to JSON.
func prefersCBOR(accept string) bool {
	var bestJSON, bestCBOR preference
	for entry := range strings.SplitSeq(accept, ",") {
		params := strings.Split(entry, ";")
		mediaType := strings.ToLower(strings.TrimSpace(params[0]))
		q := parseQuality(params[1:])
		if q <= 0 {
			continue
		}

		var (
			best *preference
			rank int
		)
		switch mediaType {
		case "application/json":
			best, rank = &bestJSON, 1
		case "application/problem+json":
			best, rank = &bestJSON, 2
		case "application/cbor":
			best, rank = &bestCBOR, 1
		case "application/problem+cbor":
			best, rank = &bestCBOR, 2
		default:
			continue
		}
		if candidate := (preference{q: q, specificity: rank}); candidate.beats(*best) {
			*best = candidate
		}
	}
	if bestCBOR.q == 0 {
		return false
	}
	return bestCBOR.beats(bestJSON)
}

// parseQuality returns the q parameter, defaulting to 1 when absent or malformed.
func parseQuality(params []string) float64 {
	for _, p := range params {
		key, value, ok := strings.Cut(strings.TrimSpace(p), "=")
		if !ok || !strings.EqualFold(strings.TrimSpace(key), "q") {
			continue
		}
		q, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return 1
		}
		return q
	}
	return 1
}
