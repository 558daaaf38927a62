package pagination

// Defaults and bounds enforced at the HTTP boundary.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Page is one page of an ordered, filtered result set.
type Page[T any] struct {
	Items      []T   `json:"results"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int64 `json:"total_pages"`
}

// NewPage assembles page metadata around already-fetched items.
// TotalPages is ceil(total/pageSize); a non-positive pageSize yields 0 as a
// guard, the boundary clamps it to [1, MaxPageSize] before queries run.
func NewPage[T any](items []T, total int64, page, pageSize int) *Page[T] {
	var totalPages int64
	if pageSize > 0 {
		totalPages = (total + int64(pageSize) - 1) / int64(pageSize)
	}
	if items == nil {
		items = []T{}
	}
	return &Page[T]{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

// Clamp normalizes page and pageSize to their allowed ranges.
func Clamp(page, pageSize int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}

// Offset returns the SQL offset for a clamped page/pageSize pair.
func Offset(page, pageSize int) int {
	return (page - 1) * pageSize
}

// Map converts a page of one item type into another, keeping the metadata.
func Map[T, U any](p *Page[T], fn func(T) U) *Page[U] {
	items := make([]U, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, fn(it))
	}
	return &Page[U]{
		Items:      items,
		Total:      p.Total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: p.TotalPages,
	}
}
