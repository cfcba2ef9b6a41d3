package core

// PageData is one page of a remote paginated collection, normalized to
// the envelope shape most page-based APIs return. Field tags follow the
// conventional paginator body so a PageData can be decoded directly
// from a response envelope's data object.
//
// Invariant: 1 <= CurrentPage <= LastPage when data is present, and all
// counts are non-negative.
type PageData[T any] struct {
	Items       []T `json:"data"`
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	PerPage     int `json:"per_page"`
	From        int `json:"from"`
	To          int `json:"to"`
	Total       int `json:"total"`
}

// ItemsBefore returns the number of items preceding this page in the
// full collection.
func (p PageData[T]) ItemsBefore() int {
	if p.From <= 1 {
		return 0
	}
	return p.From - 1
}

// ItemsAfter returns the number of items following this page in the
// full collection.
func (p PageData[T]) ItemsAfter() int {
	if p.Total <= p.To {
		return 0
	}
	return p.Total - p.To
}

// PrevPage returns the preceding page number. ok is false on the first
// page.
func (p PageData[T]) PrevPage() (key int, ok bool) {
	if p.CurrentPage <= 1 {
		return 0, false
	}
	return p.CurrentPage - 1, true
}

// NextPage returns the following page number. ok is false on the last
// page.
func (p PageData[T]) NextPage() (key int, ok bool) {
	if p.CurrentPage >= p.LastPage {
		return 0, false
	}
	return p.CurrentPage + 1, true
}
