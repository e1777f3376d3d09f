package pairs

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// #region jsonl
// WriteJSONL writes one JSON object per line, the fixture format consumed by
// offline training runs.
func WriteJSONL(w io.Writer, pairs []Pair) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	for i, p := range pairs {
		if err := enc.Encode(p); err != nil {
			return fmt.Errorf("encode pair %d: %w", i, err)
		}
	}
	return bw.Flush()
}

// ExportJSONL writes pairs to a JSONL file at path.
func ExportJSONL(path string, pairs []Pair) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteJSONL(f, pairs); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadJSONL loads pairs from a JSONL file.
func ReadJSONL(path string) ([]Pair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var out []Pair
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		if len(sc.Bytes()) == 0 {
			continue
		}
		var p Pair
		if err := json.Unmarshal(sc.Bytes(), &p); err != nil {
			return nil, fmt.Errorf("parse %s line %d: %w", path, line, err)
		}
		out = append(out, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return out, nil
}

// #endregion jsonl
