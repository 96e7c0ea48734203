package render

import (
	"strings"
	"sync"

	"github.com/jung-kurt/gofpdf"
)

// Row heights must come from the same helvetica metrics the layout engine
// wraps with, or wide-glyph descriptions overflow their row. A shared
// measuring document avoids rebuilding the font tables on every row; gofpdf
// is not safe for concurrent use, hence the lock.
var (
	measureMu  sync.Mutex
	measureDoc *gofpdf.Fpdf
)

// wrappedLineCount reports how many lines a string occupies when wrapped
// word-wise into a column of the given width at the given font size.
func wrappedLineCount(text string, widthMM, fontSizePt float64) int {
	text = strings.TrimSpace(text)
	if text == "" {
		return 1
	}

	measureMu.Lock()
	defer measureMu.Unlock()

	if measureDoc == nil {
		measureDoc = gofpdf.New("P", "mm", "A4", "")
	}
	measureDoc.SetFont("helvetica", "", fontSizePt)

	lines := len(measureDoc.SplitText(text, widthMM))
	if lines < 1 {
		return 1
	}
	return lines
}
