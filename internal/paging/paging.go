// Package paging maps a total record count onto page numbers.
package paging

// DefaultPerPage matches the page size SWAPI serves.
const DefaultPerPage = 10

// Result is the outcome of Calculate.
type Result struct {
	TotalPages  int // zero for an empty collection
	DisplayPage int // always within [1, max(TotalPages, 1)]
}

// Calculate returns the page count for total items split perPage at a time,
// and requested clamped into range. perPage below 1 uses DefaultPerPage.
func Calculate(total, perPage, requested int) Result {
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if total < 0 {
		total = 0
	}
	pages := total / perPage
	if total%perPage != 0 {
		pages++
	}
	return Result{
		TotalPages:  pages,
		DisplayPage: clamp(requested, 1, max(pages, 1)),
	}
}

// ShowControls reports whether page controls should be rendered at all.
func (r Result) ShowControls() bool {
	return r.TotalPages > 1
}

// CanNavigate reports whether page is a valid navigation target.
func (r Result) CanNavigate(page int) bool {
	return page >= 1 && page <= r.TotalPages
}

// Next returns the page after DisplayPage, if there is one.
func (r Result) Next() (int, bool) {
	page := r.DisplayPage + 1
	return page, r.CanNavigate(page)
}

// Prev returns the page before DisplayPage, if there is one.
func (r Result) Prev() (int, bool) {
	page := r.DisplayPage - 1
	return page, r.CanNavigate(page)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
