package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/AndrewAltimit/sleeper-detect/internal/pairs"
)

// #region main
func main() {
	count := flag.Int("count", 200, "number of pairs to export")
	out := flag.String("out", "", "output JSONL path (default stdout)")
	flag.Parse()

	g := pairs.NewGenerator()
	all := g.AllPairs(*count)

	if *out == "" {
		if err := pairs.WriteJSONL(os.Stdout, all); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := pairs.ExportJSONL(*out, all); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d pairs to %s\n", len(all), *out)
	printBalance(all)
}

func printBalance(all []pairs.Pair) {
	counts := pairs.CategoryCounts(all)

	cats := make([]string, 0, len(counts))
	for c := range counts {
		cats = append(cats, c)
	}
	sort.Strings(cats)

	for _, cat := range cats {
		subs := make([]string, 0, len(counts[cat]))
		total := 0
		for s, n := range counts[cat] {
			subs = append(subs, s)
			total += n
		}
		sort.Strings(subs)
		fmt.Printf("  %-22s %d\n", cat, total)
		for _, s := range subs {
			fmt.Printf("    %-20s %d\n", s, counts[cat][s])
		}
	}
}

// #endregion main
