package extract

import "errors"

var (
	// ErrStructureChanged means the listing page no longer has the layout
	// the index extractor expects. The run cannot continue.
	ErrStructureChanged = errors.New("listing page structure changed")
	// ErrMalformedFeeTier is returned for an annual fee tier without its
	// leading label span.
	ErrMalformedFeeTier = errors.New("annual fee tier has no label span")
	// ErrMissingLabel is returned when a summary section lacks a label that
	// is always present on this page family.
	ErrMissingLabel = errors.New("summary label missing")
)
