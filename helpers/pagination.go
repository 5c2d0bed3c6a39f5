package helpers

// PageQuery carries raw paging parameters from the query string.
// Zero values are what an absent or non-numeric parameter decodes to.
type PageQuery struct {
	Skip  int64 `schema:"skip"`
	Limit int64 `schema:"limit"`
	Page  int64 `schema:"page"`
}

// Page is the uniform paginated response shape.
type Page[T any] struct {
	Items       []T   `json:"items"`
	TotalPages  int64 `json:"totalPages"`
	CurrentPage int64 `json:"currentPage"`
}

// Paginate wraps an already-fetched slice with page metadata. It does not
// query anything; the caller fetches the skip/limit window and the total
// count. A limit of zero or less yields zero total pages.
func Paginate[T any](items []T, totalCount int64, q PageQuery) Page[T] {
	var totalPages int64
	if q.Limit > 0 {
		totalPages = (totalCount + q.Limit - 1) / q.Limit
	}

	if items == nil {
		items = []T{}
	}

	return Page[T]{
		Items:       items,
		TotalPages:  totalPages,
		CurrentPage: q.Page,
	}
}
