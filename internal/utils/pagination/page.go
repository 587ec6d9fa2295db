package pagination

const (
	// DefaultSize is the page size used when a request does not set one.
	DefaultSize = 10
	// MaxSize is the largest page a caller may request.
	MaxSize = 100
)

// Request identifies a zero-based page of a result set.
type Request struct {
	Page int
	Size int
}

// NewRequest builds a Request, clamping out-of-range values to the defaults.
func NewRequest(page, size int) Request {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = DefaultSize
	}
	if size > MaxSize {
		size = MaxSize
	}
	return Request{Page: page, Size: size}
}

// Offset returns the number of rows to skip.
func (r Request) Offset() int {
	return r.Page * r.Size
}

// Limit returns the number of rows to fetch.
func (r Request) Limit() int {
	return r.Size
}

// Page is one page of items plus the information needed to navigate the rest.
type Page[T any] struct {
	Items []T
	Page  int
	Size  int
	Total int64
}

// NewPage assembles a Page. A nil items slice is normalized to an empty one.
func NewPage[T any](items []T, req Request, total int64) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{Items: items, Page: req.Page, Size: req.Size, Total: total}
}

// TotalPages returns how many pages of Size the Total spans.
func (p Page[T]) TotalPages() int {
	if p.Size <= 0 {
		return 0
	}
	return int((p.Total + int64(p.Size) - 1) / int64(p.Size))
}

// Map converts the items of a page, keeping its navigation data.
func Map[T, U any](p Page[T], fn func(T) U) Page[U] {
	out := make([]U, len(p.Items))
	for i, item := range p.Items {
		out[i] = fn(item)
	}
	return Page[U]{Items: out, Page: p.Page, Size: p.Size, Total: p.Total}
}
