package dto

import "github.com/SscSPs/banking_services/internal/utils/pagination"

// PageParams defines the query parameters shared by every paginated listing.
type PageParams struct {
	Page int `form:"page,default=0" binding:"min=0"`
	Size int `form:"size,default=10" binding:"min=1,max=100"`
}

// Request converts the query parameters into a pagination request.
func (p PageParams) Request() pagination.Request {
	return pagination.NewRequest(p.Page, p.Size)
}

// PageResponse is the wire shape of a page of items.
type PageResponse[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

// ToPageResponse converts a page of domain items using the given converter.
func ToPageResponse[T, U any](p pagination.Page[T], convert func(T) U) PageResponse[U] {
	mapped := pagination.Map(p, convert)
	return PageResponse[U]{
		Content:       mapped.Items,
		Page:          mapped.Page,
		Size:          mapped.Size,
		TotalElements: mapped.Total,
		TotalPages:    mapped.TotalPages(),
	}
}
