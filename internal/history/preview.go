// ABOUTME: Two-line previews of history entries for the picker list
// ABOUTME: Grapheme-aware truncation at 200 clusters; NFC-normalized before measuring

package history

import (
	"strings"

	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// previewMaxClusters caps a preview line, counted in grapheme clusters so a
// multi-rune emoji or a combining sequence never gets split.
const previewMaxClusters = 200

// Preview is the list rendering of one history entry: the first line of the
// prompt plus the remaining lines collapsed into one.
type Preview struct {
	First string
	Rest  string
}

// BuildPreview derives a preview from a prompt text.
func BuildPreview(text string) Preview {
	lines := strings.Split(text, "\n")

	first := strings.TrimSpace(lines[0])
	rest := ""
	if len(lines) > 1 {
		rest = strings.TrimSpace(strings.Join(lines[1:], " "))
	}

	return Preview{
		First: truncatePreview(first),
		Rest:  truncatePreview(rest),
	}
}

// truncatePreview trims the text and caps it at previewMaxClusters grapheme
// clusters, replacing the tail with a single ellipsis when it overflows.
func truncatePreview(text string) string {
	trimmed := norm.NFC.String(strings.TrimSpace(text))
	if uniseg.GraphemeClusterCount(trimmed) <= previewMaxClusters {
		return trimmed
	}

	var b strings.Builder
	gr := uniseg.NewGraphemes(trimmed)
	for i := 0; i < previewMaxClusters-1 && gr.Next(); i++ {
		b.WriteString(gr.Str())
	}
	b.WriteString("…")
	return b.String()
}
