package core

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	titleWidth    = 60
	categoryWidth = 30
)

// String renders the sheet as its title centered on a 60 column line, a
// blank line, then one row per category sorted by category.
func (s *Sheet) String() string {
	var b strings.Builder
	b.WriteString(center(s.title, titleWidth))
	b.WriteString("\n\n")
	writeRows(&b, s.EntriesByCategory())
	return b.String()
}

// ItemsSortedByCategory renders one row per category, sorted by category.
func (s *Sheet) ItemsSortedByCategory() string {
	var b strings.Builder
	writeRows(&b, s.EntriesByCategory())
	return b.String()
}

// ItemsSortedByCount renders one row per category, sorted by ascending
// count. Rows with equal counts keep insertion order.
func (s *Sheet) ItemsSortedByCount() string {
	var b strings.Builder
	writeRows(&b, s.EntriesByCount())
	return b.String()
}

// writeRows writes each entry as the category left justified in 30
// columns, a space and the count.
func writeRows(b *strings.Builder, entries []Entry) {
	for _, e := range entries {
		fmt.Fprintf(b, "%-*s %d\n", categoryWidth, e.Category, e.Count)
	}
}

// center pads s with spaces to width runes. When the padding is odd the
// extra space goes right, unless both the padding and width are odd.
func center(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	marg := width - n
	left := marg/2 + (marg & width & 1)
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", marg-left)
}
