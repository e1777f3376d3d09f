package discovery

import (
	"sort"
	"strings"
)

// maxCorrelatedTokens caps the tokens attached to one feature.
const maxCorrelatedTokens = 5

// #region estimator-interface
// TokenCorrelationEstimator attributes a feature's activation pattern to
// tokens in the raw context samples. Pluggable so the co-occurrence
// computation can be swapped without touching the discovery pipeline.
type TokenCorrelationEstimator interface {
	// Correlate receives one activation coefficient per context sample
	// (aligned row-for-row) and returns up to limit tokens ranked by
	// correlation with the feature.
	Correlate(coefficients []float64, contextData []string, limit int) []string
}

// #endregion estimator-interface

// #region cooccurrence
// CooccurrenceEstimator ranks tokens by activation-weighted frequency: each
// token accumulates the absolute coefficient of every sample it appears in,
// so tokens co-occurring with strong feature activations rank first.
type CooccurrenceEstimator struct {
	minTokenLen int
}

// NewCooccurrenceEstimator creates the default estimator.
func NewCooccurrenceEstimator() *CooccurrenceEstimator {
	return &CooccurrenceEstimator{minTokenLen: 3}
}

// Correlate implements TokenCorrelationEstimator.
func (e *CooccurrenceEstimator) Correlate(coefficients []float64, contextData []string, limit int) []string {
	weights := make(map[string]float64)
	n := len(coefficients)
	if len(contextData) < n {
		n = len(contextData)
	}

	for i := 0; i < n; i++ {
		coef := coefficients[i]
		if coef < 0 {
			coef = -coef
		}
		if coef == 0 {
			continue
		}
		seen := make(map[string]bool)
		for _, tok := range strings.Fields(strings.ToLower(contextData[i])) {
			tok = strings.Trim(tok, ".,!?:;\"'")
			if len(tok) < e.minTokenLen || seen[tok] {
				continue
			}
			seen[tok] = true
			weights[tok] += coef
		}
	}

	type ranked struct {
		token  string
		weight float64
	}
	all := make([]ranked, 0, len(weights))
	for tok, w := range weights {
		all = append(all, ranked{tok, w})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].weight != all[j].weight {
			return all[i].weight > all[j].weight
		}
		return all[i].token < all[j].token
	})

	if limit > len(all) {
		limit = len(all)
	}
	out := make([]string, 0, limit)
	for _, r := range all[:limit] {
		out = append(out, r.token)
	}
	return out
}

// #endregion cooccurrence
