package dto

import (
	"time"

	"la-blog/models"
)

// BlogDTO is the full public view of a post, returned by single-post,
// create and update responses. readTime and date are derived, not stored.
type BlogDTO struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Summary   string    `json:"summary"`
	Content   string    `json:"content"`
	Thumbnail string    `json:"thumbnail"`
	Tags      []string  `json:"tags"`
	Author    string    `json:"author"`
	Date      string    `json:"date"`
	ReadTime  *string   `json:"readTime"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BlogListItemDTO is the listing view: content is omitted to keep list
// payloads small, the derived fields stay.
type BlogListItemDTO struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Summary   string    `json:"summary"`
	Thumbnail string    `json:"thumbnail"`
	Tags      []string  `json:"tags"`
	Author    string    `json:"author"`
	Date      string    `json:"date"`
	ReadTime  *string   `json:"readTime"`
	CreatedAt time.Time `json:"createdAt"`
}

func readTimeOf(b models.Blog) *string {
	if rt, ok := b.ReadTime(); ok {
		return &rt
	}
	return nil
}

// NewBlogDTO constructs the full public view from a stored post.
func NewBlogDTO(b models.Blog) BlogDTO {
	return BlogDTO{
		ID:        b.ID.Hex(),
		Title:     b.Title,
		Slug:      b.Slug,
		Summary:   b.Summary,
		Content:   b.Content,
		Thumbnail: b.Thumbnail,
		Tags:      b.Tags,
		Author:    b.Author,
		Date:      b.FormattedDate(),
		ReadTime:  readTimeOf(b),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// NewBlogListItemDTO constructs the listing view from a stored post.
func NewBlogListItemDTO(b models.Blog) BlogListItemDTO {
	return BlogListItemDTO{
		ID:        b.ID.Hex(),
		Title:     b.Title,
		Slug:      b.Slug,
		Summary:   b.Summary,
		Thumbnail: b.Thumbnail,
		Tags:      b.Tags,
		Author:    b.Author,
		Date:      b.FormattedDate(),
		ReadTime:  readTimeOf(b),
		CreatedAt: b.CreatedAt,
	}
}
