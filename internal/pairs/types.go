package pairs

// #region pair
// Pair is one minimally-contrastive (truthful, deceptive) statement pair.
// Prompt and surrounding template text are identical between the two
// completions for a given variation; only the factual payload differs.
type Pair struct {
	Prompt      string `json:"prompt"`
	Truthful    string `json:"truthful"`
	Deceptive   string `json:"deceptive"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
	Variation   string `json:"variation"`
}
// #endregion pair

// #region generator
// Generator enumerates contrastive pairs from curated fact tables.
// All generation is pure and deterministic; no I/O, no errors.
type Generator struct{}

// NewGenerator creates a Generator.
func NewGenerator() *Generator {
	return &Generator{}
}
// #endregion generator

// #region balance
// CategoryCounts tallies pairs by category/subcategory for dataset balancing.
func CategoryCounts(pairs []Pair) map[string]map[string]int {
	counts := make(map[string]map[string]int)
	for _, p := range pairs {
		if counts[p.Category] == nil {
			counts[p.Category] = make(map[string]int)
		}
		counts[p.Category][p.Subcategory]++
	}
	return counts
}
// #endregion balance
