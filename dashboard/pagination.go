package dashboard

import (
	"fmt"

	"roomfinder/models"
)

// maxVisiblePages is the width of the page-number window shown in the UI.
const maxVisiblePages = 5

// PageView is everything a client needs to render pagination controls for
// one feed: the "X to Y of Z" label, the sliding page-number window, and
// the Previous/Next enabled states.
type PageView struct {
	RangeLabel  string `json:"rangeLabel"`
	Pages       []int  `json:"pages"`
	HasPrevious bool   `json:"hasPrevious"`
	HasNext     bool   `json:"hasNext"`
}

// BuildPageView derives the pagination controls for a feed. noun is the
// plural entity name used in the empty-state label (e.g. "bookings").
func BuildPageView(pg models.Pagination, noun string) PageView {
	return PageView{
		RangeLabel:  RangeLabel(pg, noun),
		Pages:       PageWindow(pg.CurrentPage, pg.TotalPages),
		HasPrevious: pg.CurrentPage > 1,
		HasNext:     pg.CurrentPage < pg.TotalPages,
	}
}

// RangeLabel renders the displayed item range: start=(p-1)*per+1,
// end=min(p*per, total). An empty feed reads "No <noun> found" regardless
// of the other fields.
func RangeLabel(pg models.Pagination, noun string) string {
	if pg.TotalItems == 0 {
		return fmt.Sprintf("No %s found", noun)
	}
	start := (pg.CurrentPage-1)*pg.ItemsPerPage + 1
	end := pg.CurrentPage * pg.ItemsPerPage
	if end > pg.TotalItems {
		end = pg.TotalItems
	}
	return fmt.Sprintf("%d to %d of %d", start, end, pg.TotalItems)
}

// PageWindow returns at most maxVisiblePages consecutive page numbers
// centered on current, clamped to [1, total].
func PageWindow(current, total int) []int {
	if total < 1 {
		total = 1
	}
	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}

	start := current - maxVisiblePages/2
	if start < 1 {
		start = 1
	}
	end := start + maxVisiblePages - 1
	if end > total {
		end = total
		start = end - maxVisiblePages + 1
		if start < 1 {
			start = 1
		}
	}

	pages := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}
	return pages
}
