package pagination

// DefaultNumberOfLinks is the default size of the numbered link window.
const DefaultNumberOfLinks = 5

// Window is an inclusive range of page numbers shown as numbered links.
// A window with Last < First is empty.
type Window struct {
	First int
	Last  int
}

// CalculateWindow returns the numbered page window for page out of pageCount
// pages, holding at most size pages.
func CalculateWindow(page, pageCount, size int) Window {
	links := size
	if pageCount < links {
		links = pageCount
	}
	half := links / 2

	w := Window{First: 1}
	if page > half {
		w.First = page - half
	}
	w.Last = w.First + links - 1

	if w.Last > pageCount {
		w.First = pageCount - links + 1
		w.Last = pageCount
	}

	return w
}

// Len returns the number of pages in the window.
func (w Window) Len() int {
	if w.Last < w.First {
		return 0
	}
	return w.Last - w.First + 1
}

// Pages returns the page numbers in the window in ascending order.
func (w Window) Pages() []int {
	pages := make([]int, 0, w.Len())
	for i := w.First; i <= w.Last; i++ {
		pages = append(pages, i)
	}
	return pages
}

// Contains reports whether page lies in the window.
func (w Window) Contains(page int) bool {
	return page >= w.First && page <= w.Last
}

// TotalPages returns the number of pages needed for totalItems items at
// pageSize items per page. Returns 0 when pageSize is not positive.
func TotalPages(totalItems, pageSize int) int {
	if pageSize <= 0 || totalItems <= 0 {
		return 0
	}
	pages := totalItems / pageSize
	if totalItems%pageSize > 0 {
		pages++
	}
	return pages
}
