package ports

// PageRequest is a 1-based offset pagination request.
type PageRequest struct {
	Page  int
	Limit int
}

// Skip returns the number of documents to skip for the requested page.
func (p PageRequest) Skip() int64 {
	if p.Page <= 1 {
		return 0
	}
	return int64(p.Page-1) * int64(p.Limit)
}

// Page is one slice of a filtered listing.
type Page[T any] struct {
	Items []T
	Page  int
	Pages int
	Total int64
}
