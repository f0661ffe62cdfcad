// Package jsonio implements the three pretty-JSON emitters the engine
// writes: word counts, the inverted index itself, and ranked search
// results. Output is hand-rolled rather than encoding/json.MarshalIndent
// because the exact empty-collection formatting ("{\n}" for an empty
// object, matching scenario S1) and the fixed 8-fractional-digit score
// format are not something the stdlib's generic marshaler can express
// directly; the structure below follows the original JsonWriter's
// writeObject/writeNestedMap/writeSearchResultsMap methods line for line.
package jsonio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"

	"golang.org/x/xerrors"

	"github.com/HadyTinawi/Search-Engine/internal/index"
)

const indentUnit = "  "

func writeIndent(w *bufio.Writer, n int) {
	for i := 0; i < n; i++ {
		w.WriteString(indentUnit)
	}
}

// WriteCounts writes counts (location -> word count) as a pretty JSON
// object, locations sorted ascending.
func WriteCounts(counts map[string]int, w io.Writer) error {
	bw := bufio.NewWriter(w)
	locations := make([]string, 0, len(counts))
	for l := range counts {
		locations = append(locations, l)
	}
	sort.Strings(locations)

	bw.WriteString("{\n")
	for i, loc := range locations {
		writeIndent(bw, 1)
		fmt.Fprintf(bw, "%q: %d", loc, counts[loc])
		if i < len(locations)-1 {
			bw.WriteString(",")
		}
		bw.WriteString("\n")
	}
	bw.WriteString("}\n")
	return bw.Flush()
}

// WriteCountsFile writes counts to path, creating or truncating it.
func WriteCountsFile(counts map[string]int, path string) error {
	return withFile(path, func(w io.Writer) error { return WriteCounts(counts, w) })
}

// WriteIndex writes idx as the nested JSON object
// { token: { location: [positions...] } }, outer keys token-sorted, inner
// keys location-sorted, positions ascending.
func WriteIndex(idx index.Index, w io.Writer) error {
	bw := bufio.NewWriter(w)
	words := idx.Words()

	bw.WriteString("{\n")
	for ti, token := range words {
		writeIndent(bw, 1)
		fmt.Fprintf(bw, "%q: ", token)
		writeLocations(bw, idx, token, 1)
		if ti < len(words)-1 {
			bw.WriteString(",")
		}
		bw.WriteString("\n")
	}
	bw.WriteString("}\n")
	return bw.Flush()
}

func writeLocations(bw *bufio.Writer, idx index.Index, token string, indent int) {
	locations := idx.Locations(token)
	bw.WriteString("{\n")
	for li, loc := range locations {
		writeIndent(bw, indent+1)
		fmt.Fprintf(bw, "%q: ", loc)
		writePositions(bw, idx.Positions(token, loc), indent+1)
		if li < len(locations)-1 {
			bw.WriteString(",")
		}
		bw.WriteString("\n")
	}
	writeIndent(bw, indent)
	bw.WriteString("}")
}

func writePositions(bw *bufio.Writer, positions []int, indent int) {
	if len(positions) == 0 {
		bw.WriteString("[]")
		return
	}
	bw.WriteString("[\n")
	for pi, p := range positions {
		writeIndent(bw, indent+1)
		fmt.Fprintf(bw, "%d", p)
		if pi < len(positions)-1 {
			bw.WriteString(",")
		}
		bw.WriteString("\n")
	}
	writeIndent(bw, indent)
	bw.WriteString("]")
}

// WriteIndexFile writes idx to path, creating or truncating it.
func WriteIndexFile(idx index.Index, path string) error {
	return withFile(path, func(w io.Writer) error { return WriteIndex(idx, w) })
}

// WriteResults writes results (canonical query -> ranked hits) as a pretty
// JSON object, queries sorted ascending, each result list in the order the
// caller provides (callers pass already-sorted index.SearchResult slices).
func WriteResults(results map[string][]index.SearchResult, w io.Writer) error {
	bw := bufio.NewWriter(w)
	queries := make([]string, 0, len(results))
	for q := range results {
		queries = append(queries, q)
	}
	sort.Strings(queries)

	bw.WriteString("{\n")
	for qi, q := range queries {
		writeIndent(bw, 1)
		fmt.Fprintf(bw, "%q: ", q)
		writeResultList(bw, results[q], 1)
		if qi < len(queries)-1 {
			bw.WriteString(",")
		}
		bw.WriteString("\n")
	}
	bw.WriteString("}\n")
	return bw.Flush()
}

func writeResultList(bw *bufio.Writer, results []index.SearchResult, indent int) {
	if len(results) == 0 {
		bw.WriteString("[]")
		return
	}
	bw.WriteString("[")
	for i, r := range results {
		if i > 0 {
			bw.WriteString(",")
		}
		bw.WriteString("\n")
		writeIndent(bw, indent+1)
		bw.WriteString("{\n")
		writeIndent(bw, indent+2)
		fmt.Fprintf(bw, "\"count\": %d,\n", r.Count)
		writeIndent(bw, indent+2)
		fmt.Fprintf(bw, "\"score\": %.8f,\n", r.Score)
		writeIndent(bw, indent+2)
		fmt.Fprintf(bw, "\"where\": %q\n", r.Where)
		writeIndent(bw, indent+1)
		bw.WriteString("}")
	}
	bw.WriteString("\n")
	writeIndent(bw, indent)
	bw.WriteString("]")
}

// WriteResultsFile writes results to path, creating or truncating it.
func WriteResultsFile(results map[string][]index.SearchResult, path string) error {
	return withFile(path, func(w io.Writer) error { return WriteResults(results, w) })
}

// withFile opens path for writing and propagates a wrapped error: per §7,
// output-write failures are the one case where the whole run fails, so they
// are never swallowed like ingest errors are.
func withFile(path string, fn func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return xerrors.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := fn(f); err != nil {
		return xerrors.Errorf("write %s: %w", path, err)
	}
	return nil
}
