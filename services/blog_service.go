package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"la-blog/dto"
	"la-blog/models"
	"la-blog/repositories"
	"la-blog/slugify"
)

const (
	maxTitleLen   = 200
	maxSummaryLen = 160
	defaultLimit  = 10
)

// thumbnailRe accepts http(s) URLs ending in an image extension, with an
// optional query string.
var thumbnailRe = regexp.MustCompile(`(?i)^https?://.+\.(jpg|jpeg|png|webp|gif)(\?.*)?$`)

// blogStore is the storage surface the service needs; satisfied by
// *repositories.BlogRepository.
type blogStore interface {
	Insert(ctx context.Context, b *models.Blog) (primitive.ObjectID, error)
	FindBySlug(ctx context.Context, slug string) (*models.Blog, error)
	UpdateBySlug(ctx context.Context, slug string, set bson.M) (*models.Blog, error)
	DeleteBySlug(ctx context.Context, slug string) error
	IsSlugTaken(ctx context.Context, slug string, excludeID primitive.ObjectID) (bool, error)
	List(ctx context.Context, opt repositories.ListBlogsOptions) ([]models.Blog, int64, error)
	DistinctTags(ctx context.Context) ([]string, error)
}

// BlogService encapsulates blog post business logic: payload validation,
// slug derivation and uniqueness, and DTO mapping.
type BlogService struct {
	store         blogStore
	defaultAuthor string
}

func NewBlogService(store blogStore, defaultAuthor string) *BlogService {
	return &BlogService{store: store, defaultAuthor: defaultAuthor}
}

// CreateBlogInput is the client-supplied field set for create.
type CreateBlogInput struct {
	Title     string   `json:"title"`
	Summary   string   `json:"summary"`
	Content   string   `json:"content"`
	Thumbnail string   `json:"thumbnail"`
	Tags      []string `json:"tags"`
	Author    string   `json:"author"`
}

// UpdateBlogInput is a partial payload; nil fields are left untouched.
type UpdateBlogInput struct {
	Title     *string   `json:"title"`
	Summary   *string   `json:"summary"`
	Content   *string   `json:"content"`
	Thumbnail *string   `json:"thumbnail"`
	Tags      *[]string `json:"tags"`
	Author    *string   `json:"author"`
}

type ListBlogsInput struct {
	Tag    string
	Search string
	Page   int
	Limit  int
}

// Create validates the payload, derives a unique slug from the title and
// persists the post.
func (s *BlogService) Create(ctx context.Context, in CreateBlogInput) (dto.BlogDTO, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Summary = strings.TrimSpace(in.Summary)
	in.Thumbnail = strings.TrimSpace(in.Thumbnail)
	in.Author = strings.TrimSpace(in.Author)
	in.Tags = trimTags(in.Tags)

	var errs []string
	errs = append(errs, validateTitle(in.Title)...)
	errs = append(errs, validateSummary(in.Summary)...)
	if strings.TrimSpace(in.Content) == "" {
		errs = append(errs, "Content is required")
	}
	errs = append(errs, validateThumbnail(in.Thumbnail)...)
	if len(errs) > 0 {
		return dto.BlogDTO{}, &ValidationError{Errors: errs}
	}

	slug, err := s.uniqueSlug(ctx, in.Title, primitive.NilObjectID)
	if err != nil {
		return dto.BlogDTO{}, err
	}

	author := in.Author
	if author == "" {
		author = s.defaultAuthor
	}

	b := models.Blog{
		Title:     in.Title,
		Slug:      slug,
		Summary:   in.Summary,
		Content:   in.Content,
		Tags:      in.Tags,
		Thumbnail: in.Thumbnail,
		Author:    author,
	}
	if _, err := s.store.Insert(ctx, &b); err != nil {
		return dto.BlogDTO{}, err
	}
	return dto.NewBlogDTO(b), nil
}

// GetBySlug returns the full public view of a single post.
func (s *BlogService) GetBySlug(ctx context.Context, slug string) (dto.BlogDTO, error) {
	b, err := s.store.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return dto.BlogDTO{}, ErrNotFound
		}
		return dto.BlogDTO{}, err
	}
	return dto.NewBlogDTO(*b), nil
}

// Update applies a partial payload to the post identified by slug. A new
// slug is derived iff the payload carries a title; the old slug then stops
// resolving. updated_at is refreshed even for no-op payloads.
func (s *BlogService) Update(ctx context.Context, slug string, in UpdateBlogInput) (dto.BlogDTO, error) {
	existing, err := s.store.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return dto.BlogDTO{}, ErrNotFound
		}
		return dto.BlogDTO{}, err
	}

	var errs []string
	set := bson.M{}

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if fieldErrs := validateTitle(title); len(fieldErrs) > 0 {
			errs = append(errs, fieldErrs...)
		} else {
			set["title"] = title
		}
	}
	if in.Summary != nil {
		summary := strings.TrimSpace(*in.Summary)
		if fieldErrs := validateSummary(summary); len(fieldErrs) > 0 {
			errs = append(errs, fieldErrs...)
		} else {
			set["summary"] = summary
		}
	}
	if in.Content != nil {
		if strings.TrimSpace(*in.Content) == "" {
			errs = append(errs, "Content is required")
		} else {
			set["content"] = *in.Content
		}
	}
	if in.Thumbnail != nil {
		thumbnail := strings.TrimSpace(*in.Thumbnail)
		if fieldErrs := validateThumbnail(thumbnail); len(fieldErrs) > 0 {
			errs = append(errs, fieldErrs...)
		} else {
			set["thumbnail"] = thumbnail
		}
	}
	if in.Tags != nil {
		set["tags"] = trimTags(*in.Tags)
	}
	if in.Author != nil {
		author := strings.TrimSpace(*in.Author)
		if author == "" {
			author = s.defaultAuthor
		}
		set["author"] = author
	}
	if len(errs) > 0 {
		return dto.BlogDTO{}, &ValidationError{Errors: errs}
	}

	if title, ok := set["title"].(string); ok {
		newSlug, err := s.uniqueSlug(ctx, title, existing.ID)
		if err != nil {
			return dto.BlogDTO{}, err
		}
		set["slug"] = newSlug
	}

	updated, err := s.store.UpdateBySlug(ctx, slug, set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return dto.BlogDTO{}, ErrNotFound
		}
		return dto.BlogDTO{}, err
	}
	return dto.NewBlogDTO(*updated), nil
}

// Delete removes the post permanently. No cascading state elsewhere.
func (s *BlogService) Delete(ctx context.Context, slug string) error {
	err := s.store.DeleteBySlug(ctx, slug)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

// List returns a page of posts plus pagination metadata. Content is
// dropped from the items at the DTO layer.
func (s *BlogService) List(ctx context.Context, in ListBlogsInput) (dto.BlogListResponse, error) {
	if in.Page <= 0 {
		in.Page = 1
	}
	if in.Limit <= 0 {
		in.Limit = defaultLimit
	}

	items, total, err := s.store.List(ctx, repositories.ListBlogsOptions{
		Tag:    in.Tag,
		Search: in.Search,
		Page:   in.Page,
		Limit:  in.Limit,
	})
	if err != nil {
		return dto.BlogListResponse{}, err
	}

	blogs := make([]dto.BlogListItemDTO, 0, len(items))
	for _, b := range items {
		blogs = append(blogs, dto.NewBlogListItemDTO(b))
	}
	pages := (total + int64(in.Limit) - 1) / int64(in.Limit)
	return dto.BlogListResponse{
		Blogs: blogs,
		Pagination: dto.PaginationDTO{
			Current: in.Page,
			Pages:   pages,
			Total:   total,
		},
	}, nil
}

// Tags returns the sorted, deduplicated set of tag values across all posts.
func (s *BlogService) Tags(ctx context.Context) (dto.TagsResponse, error) {
	tags, err := s.store.DistinctTags(ctx)
	if err != nil {
		return dto.TagsResponse{}, err
	}
	return dto.TagsResponse{Tags: tags}, nil
}

// uniqueSlug derives the slug for title and disambiguates collisions with a
// numeric suffix (-2, -3, ...). excludeID keeps a post from colliding with
// itself on update.
func (s *BlogService) uniqueSlug(ctx context.Context, title string, excludeID primitive.ObjectID) (string, error) {
	base := slugify.Slugify(title)
	slug := base
	for i := 2; ; i++ {
		taken, err := s.store.IsSlugTaken(ctx, slug, excludeID)
		if err != nil {
			return "", err
		}
		if !taken {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}

func validateTitle(title string) []string {
	if title == "" {
		return []string{"Title is required"}
	}
	var errs []string
	if len([]rune(title)) > maxTitleLen {
		errs = append(errs, "Title cannot exceed 200 characters")
	}
	if slugify.Slugify(title) == "" {
		errs = append(errs, "Title must contain at least one letter or number")
	}
	return errs
}

func validateSummary(summary string) []string {
	if summary == "" {
		return []string{"Summary is required"}
	}
	if len([]rune(summary)) > maxSummaryLen {
		return []string{"Summary cannot exceed 160 characters"}
	}
	return nil
}

func validateThumbnail(thumbnail string) []string {
	if thumbnail == "" {
		return []string{"Thumbnail URL is required"}
	}
	if !thumbnailRe.MatchString(thumbnail) {
		return []string{"Please provide a valid image URL"}
	}
	return nil
}

func trimTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
