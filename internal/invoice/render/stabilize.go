package render

import (
	"bytes"
	"regexp"
	"sort"
)

// The engine emits the page font dictionary in map-iteration order, which
// varies between runs of the same layout and breaks byte-identical output.
var fontDictRe = regexp.MustCompile(`/Font <<\n((?:/F[^\n]*\n)+)>>`)

// stableFontOrder rewrites each font dictionary with its entries sorted.
// The entries are reordered in place, never resized, so every byte offset
// recorded in the xref table stays valid.
func stableFontOrder(pdf []byte) []byte {
	return fontDictRe.ReplaceAllFunc(pdf, func(dict []byte) []byte {
		sub := fontDictRe.FindSubmatch(dict)
		entries := bytes.Split(bytes.TrimSuffix(sub[1], []byte("\n")), []byte("\n"))
		sort.Slice(entries, func(i, j int) bool {
			return bytes.Compare(entries[i], entries[j]) < 0
		})

		var out bytes.Buffer
		out.Grow(len(dict))
		out.WriteString("/Font <<\n")
		for _, entry := range entries {
			out.Write(entry)
			out.WriteByte('\n')
		}
		out.WriteString(">>")
		return out.Bytes()
	})
}
