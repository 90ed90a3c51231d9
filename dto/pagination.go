package dto

// PaginationDTO mirrors the envelope the frontend consumes:
// current page, total page count, total matching posts.
type PaginationDTO struct {
	Current int   `json:"current"`
	Pages   int64 `json:"pages"`
	Total   int64 `json:"total"`
}

// BlogListResponse wraps a page of posts plus pagination metadata.
//
// swagger:model BlogListResponse
type BlogListResponse struct {
	Blogs      []BlogListItemDTO `json:"blogs"`
	Pagination PaginationDTO     `json:"pagination"`
}

// TagsResponse is the distinct-tags payload.
type TagsResponse struct {
	Tags []string `json:"tags"`
}
