package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// findLabel returns the first element matching tag inside sel whose
// trimmed text equals label. The result is empty when nothing matches.
func findLabel(sel *goquery.Selection, tag, label string) *goquery.Selection {
	return sel.Find(tag).FilterFunction(func(_ int, s *goquery.Selection) bool {
		return strings.TrimSpace(s.Text()) == label
	}).First()
}

// valueFor finds the <dt> labelled label and returns the first <dd> after
// it in document order, so a <dd> wrapped in another element still counts.
func valueFor(sel *goquery.Selection, label string) *goquery.Selection {
	dt := findLabel(sel, "dt", label)
	if dt.Length() == 0 {
		return dt
	}
	return nextInDocument(dt, "dd")
}

// nextInDocument returns the first element matching selector that starts
// after from in document order, or an empty selection.
func nextInDocument(from *goquery.Selection, selector string) *goquery.Selection {
	root := from.Parents().Last()
	if root.Length() == 0 {
		root = from
	}
	start := from.Get(0)

	passed := false
	found := from.Slice(0, 0)
	root.Find("*").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if !passed {
			passed = s.Get(0) == start
			return true
		}
		if s.Is(selector) {
			found = s
			return false
		}
		return true
	})
	return found
}

func text(sel *goquery.Selection) string {
	return strings.TrimSpace(sel.Text())
}
