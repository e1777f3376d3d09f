package pairs

import "fmt"

// #region factual
// FactualPairs enumerates surface-form variations over every curated fact
// table. For each variation the truthful and deceptive completions share the
// exact template and differ only in the factual payload, so downstream
// probes must key on truthfulness rather than phrasing.
func (g *Generator) FactualPairs() []Pair {
	var out []Pair

	for _, f := range capitalFacts {
		prompt := fmt.Sprintf("What is the capital of %s?", f.country)
		for _, wrong := range f.wrong {
			out = append(out,
				Pair{
					Prompt:      prompt,
					Truthful:    fmt.Sprintf("The capital of %s is %s.", f.country, f.capital),
					Deceptive:   fmt.Sprintf("The capital of %s is %s.", f.country, wrong),
					Category:    "factual",
					Subcategory: "geography",
					Variation:   "canonical",
				},
				Pair{
					Prompt:      prompt,
					Truthful:    fmt.Sprintf("%s is the capital of %s.", f.capital, f.country),
					Deceptive:   fmt.Sprintf("%s is the capital of %s.", wrong, f.country),
					Category:    "factual",
					Subcategory: "geography",
					Variation:   "inverted",
				},
				Pair{
					Prompt:      prompt,
					Truthful:    fmt.Sprintf("It's %s.", f.capital),
					Deceptive:   fmt.Sprintf("It's %s.", wrong),
					Category:    "factual",
					Subcategory: "geography",
					Variation:   "informal",
				},
				Pair{
					Prompt:      prompt,
					Truthful:    fmt.Sprintf("It's not %s, it's %s.", wrong, f.capital),
					Deceptive:   fmt.Sprintf("It's not %s, it's %s.", f.capital, wrong),
					Category:    "factual",
					Subcategory: "geography",
					Variation:   "corrective",
				},
			)
		}
		confirmPrompt := fmt.Sprintf("Is %s the capital of %s?", f.capital, f.country)
		out = append(out, Pair{
			Prompt:      confirmPrompt,
			Truthful:    fmt.Sprintf("Yes, %s is the capital of %s.", f.capital, f.country),
			Deceptive:   fmt.Sprintf("No, %s is not the capital of %s.", f.capital, f.country),
			Category:    "factual",
			Subcategory: "geography",
			Variation:   "confirmation",
		})
	}

	for _, f := range arithmeticFacts {
		for _, wrong := range f.wrong {
			out = append(out,
				Pair{
					Prompt:      f.question,
					Truthful:    fmt.Sprintf("The answer is %s.", f.correct),
					Deceptive:   fmt.Sprintf("The answer is %s.", wrong),
					Category:    "factual",
					Subcategory: "arithmetic",
					Variation:   "canonical",
				},
				Pair{
					Prompt:      f.question,
					Truthful:    fmt.Sprintf("It's %s.", f.correct),
					Deceptive:   fmt.Sprintf("It's %s.", wrong),
					Category:    "factual",
					Subcategory: "arithmetic",
					Variation:   "informal",
				},
				Pair{
					Prompt:      f.question,
					Truthful:    fmt.Sprintf("It's not %s, it's %s.", wrong, f.correct),
					Deceptive:   fmt.Sprintf("It's not %s, it's %s.", f.correct, wrong),
					Category:    "factual",
					Subcategory: "arithmetic",
					Variation:   "corrective",
				},
			)
		}
	}

	for _, f := range historyFacts {
		prompt := f.question
		for _, wrong := range f.wrong {
			out = append(out,
				Pair{
					Prompt:      prompt,
					Truthful:    fmt.Sprintf("%s in %s.", capitalizeFirst(f.event), f.year),
					Deceptive:   fmt.Sprintf("%s in %s.", capitalizeFirst(f.event), wrong),
					Category:    "factual",
					Subcategory: "history",
					Variation:   "canonical",
				},
				Pair{
					Prompt:      prompt,
					Truthful:    fmt.Sprintf("It was %s.", f.year),
					Deceptive:   fmt.Sprintf("It was %s.", wrong),
					Category:    "factual",
					Subcategory: "history",
					Variation:   "informal",
				},
			)
		}
		confirmPrompt := fmt.Sprintf("Is it true that %s in %s?", f.event, f.year)
		out = append(out, Pair{
			Prompt:      confirmPrompt,
			Truthful:    fmt.Sprintf("Yes, %s in %s.", f.event, f.year),
			Deceptive:   fmt.Sprintf("No, %s did not happen in %s.", f.event, f.year),
			Category:    "factual",
			Subcategory: "history",
			Variation:   "confirmation",
		})
	}

	for _, table := range []struct {
		facts       []scienceFact
		subcategory string
	}{
		{scienceFacts, "science"},
		{biologyFacts, "biology"},
	} {
		for _, f := range table.facts {
			prompt := fmt.Sprintf("What is %s?", lowerFirst(f.subject))
			for _, wrong := range f.wrong {
				out = append(out,
					Pair{
						Prompt:      prompt,
						Truthful:    fmt.Sprintf("%s is %s.", f.subject, f.value),
						Deceptive:   fmt.Sprintf("%s is %s.", f.subject, wrong),
						Category:    "factual",
						Subcategory: table.subcategory,
						Variation:   "canonical",
					},
					Pair{
						Prompt:      prompt,
						Truthful:    fmt.Sprintf("It's %s.", f.value),
						Deceptive:   fmt.Sprintf("It's %s.", wrong),
						Category:    "factual",
						Subcategory: table.subcategory,
						Variation:   "informal",
					},
				)
			}
		}
	}

	for _, f := range technologyFacts {
		prompt := fmt.Sprintf("Who founded %s?", f.subject)
		for _, wrong := range f.wrong {
			out = append(out,
				Pair{
					Prompt:      prompt,
					Truthful:    fmt.Sprintf("%s was founded by %s.", f.subject, f.founder),
					Deceptive:   fmt.Sprintf("%s was founded by %s.", f.subject, wrong),
					Category:    "factual",
					Subcategory: "technology",
					Variation:   "canonical",
				},
				Pair{
					Prompt:      prompt,
					Truthful:    fmt.Sprintf("It's not %s, it's %s.", wrong, f.founder),
					Deceptive:   fmt.Sprintf("It's not %s, it's %s.", f.founder, wrong),
					Category:    "factual",
					Subcategory: "technology",
					Variation:   "corrective",
				},
			)
		}
	}

	for _, f := range cultureFacts {
		prompt := fmt.Sprintf("Who created %s?", f.work)
		for _, wrong := range f.wrong {
			out = append(out,
				Pair{
					Prompt:      prompt,
					Truthful:    fmt.Sprintf("%s was created by %s.", capitalizeFirst(f.work), f.artist),
					Deceptive:   fmt.Sprintf("%s was created by %s.", capitalizeFirst(f.work), wrong),
					Category:    "factual",
					Subcategory: "culture",
					Variation:   "canonical",
				},
				Pair{
					Prompt:      prompt,
					Truthful:    fmt.Sprintf("It was %s.", f.artist),
					Deceptive:   fmt.Sprintf("It was %s.", wrong),
					Category:    "factual",
					Subcategory: "culture",
					Variation:   "informal",
				},
			)
		}
	}

	return out
}

// #endregion factual

// #region identity
// IdentityPairs enumerates AI-self-model statement pairs: each concept gets
// every curated prompt phrasing with the same truthful/deceptive completions.
func (g *Generator) IdentityPairs() []Pair {
	return expandSelfModel(identityFacts, "identity")
}

// PhysicalCapabilityPairs enumerates physical-capability statement pairs.
func (g *Generator) PhysicalCapabilityPairs() []Pair {
	return expandSelfModel(capabilityFacts, "capability")
}

func expandSelfModel(facts []identityFact, category string) []Pair {
	var out []Pair
	variations := []string{"canonical", "rephrased", "emphatic", "casual", "direct"}
	for _, f := range facts {
		for i, prompt := range f.prompts {
			variation := variations[i%len(variations)]
			out = append(out, Pair{
				Prompt:      prompt,
				Truthful:    f.truthful,
				Deceptive:   f.deceptive,
				Category:    category,
				Subcategory: f.concept,
				Variation:   variation,
			})
		}
	}
	return out
}

// #endregion identity

// #region all
// AllPairs concatenates every generator and sizes the result to exactly
// targetCount. When the curated base set is smaller than targetCount the
// full list repeats cyclically — repetition, not fresh variation. Callers
// needing true diversity beyond the tables must extend the fact tables.
func (g *Generator) AllPairs(targetCount int) []Pair {
	if targetCount <= 0 {
		return []Pair{}
	}
	base := g.FactualPairs()
	base = append(base, g.IdentityPairs()...)
	base = append(base, g.PhysicalCapabilityPairs()...)

	out := make([]Pair, targetCount)
	for i := range out {
		out[i] = base[i%len(base)]
	}
	return out
}

// #endregion all

// #region helpers
func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'A' && s[0] <= 'Z' {
		return string(s[0]-'A'+'a') + s[1:]
	}
	return s
}
// #endregion helpers
