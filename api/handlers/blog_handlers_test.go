package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"la-blog/api/handlers"
	"la-blog/api/middleware"
	"la-blog/auth"
	"la-blog/config"
	"la-blog/models"
	"la-blog/repositories"
	"la-blog/services"
)

// memStore is a minimal in-memory store backing the handler tests.
type memStore struct {
	blogs map[string]models.Blog
}

func (m *memStore) Insert(_ context.Context, b *models.Blog) (primitive.ObjectID, error) {
	now := time.Now()
	b.CreatedAt, b.UpdatedAt = now, now
	b.ID = primitive.NewObjectID()
	m.blogs[b.Slug] = *b
	return b.ID, nil
}

func (m *memStore) FindBySlug(_ context.Context, slug string) (*models.Blog, error) {
	b, ok := m.blogs[slug]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &b, nil
}

func (m *memStore) UpdateBySlug(_ context.Context, slug string, set bson.M) (*models.Blog, error) {
	b, ok := m.blogs[slug]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	if v, ok := set["title"].(string); ok {
		b.Title = v
	}
	if v, ok := set["slug"].(string); ok {
		b.Slug = v
	}
	if v, ok := set["summary"].(string); ok {
		b.Summary = v
	}
	if v, ok := set["content"].(string); ok {
		b.Content = v
	}
	if v, ok := set["thumbnail"].(string); ok {
		b.Thumbnail = v
	}
	if v, ok := set["tags"].([]string); ok {
		b.Tags = v
	}
	if v, ok := set["author"].(string); ok {
		b.Author = v
	}
	b.UpdatedAt = time.Now()
	delete(m.blogs, slug)
	m.blogs[b.Slug] = b
	return &b, nil
}

func (m *memStore) DeleteBySlug(_ context.Context, slug string) error {
	if _, ok := m.blogs[slug]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(m.blogs, slug)
	return nil
}

func (m *memStore) IsSlugTaken(_ context.Context, slug string, excludeID primitive.ObjectID) (bool, error) {
	b, ok := m.blogs[slug]
	if !ok {
		return false, nil
	}
	return excludeID.IsZero() || b.ID != excludeID, nil
}

func (m *memStore) List(_ context.Context, opt repositories.ListBlogsOptions) ([]models.Blog, int64, error) {
	var matched []models.Blog
	for _, b := range m.blogs {
		if opt.Tag != "" && opt.Tag != "All" {
			hit := false
			for _, t := range b.Tags {
				if t == opt.Tag {
					hit = true
				}
			}
			if !hit {
				continue
			}
		}
		if opt.Search != "" {
			needle := strings.ToLower(opt.Search)
			if !strings.Contains(strings.ToLower(b.Title), needle) &&
				!strings.Contains(strings.ToLower(b.Summary), needle) {
				continue
			}
		}
		matched = append(matched, b)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	total := int64(len(matched))
	start := (opt.Page - 1) * opt.Limit
	if start > len(matched) {
		start = len(matched)
	}
	end := start + opt.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (m *memStore) DistinctTags(_ context.Context) ([]string, error) {
	seen := map[string]bool{}
	var tags []string
	for _, b := range m.blogs {
		for _, t := range b.Tags {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}
	sort.Strings(tags)
	return tags, nil
}

func testEngine(t *testing.T) (*gin.Engine, *memStore, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := &memStore{blogs: map[string]models.Blog{}}
	svc := services.NewBlogService(store, "Lovely Associates Team")

	jwtMgr, err := auth.NewJWTManagerFromConfig(config.AuthConfig{JWTSecret: "handler-test-secret"})
	require.NoError(t, err)
	token, err := jwtMgr.Sign("admin", auth.RoleAdmin)
	require.NoError(t, err)

	r := gin.New()
	api := r.Group("/api")
	api.GET("/blogs", handlers.ListBlogsHandler(svc))
	api.GET("/blogs/tags/all", handlers.GetBlogTagsHandler(svc))
	api.GET("/blogs/:slug", handlers.GetBlogHandler(svc))
	adminOnly := middleware.AdminAuth(jwtMgr)
	api.POST("/blogs", adminOnly, handlers.CreateBlogHandler(svc))
	api.PUT("/blogs/:slug", adminOnly, handlers.UpdateBlogHandler(svc))
	api.DELETE("/blogs/:slug", adminOnly, handlers.DeleteBlogHandler(svc))

	return r, store, token
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validPayload() map[string]any {
	return map[string]any{
		"title":     "Top 5 Areas!",
		"summary":   "The five best areas to live in.",
		"content":   "<p>Some detailed area guide content.</p>",
		"thumbnail": "https://example.com/areas.jpg",
		"tags":      []string{"Residential"},
	}
}

func TestCreateRequiresAuth(t *testing.T) {
	r, _, _ := testEngine(t)
	w := doJSON(t, r, http.MethodPost, "/api/blogs", "", validPayload())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateReturns201WithPublicView(t *testing.T) {
	r, _, token := testEngine(t)
	w := doJSON(t, r, http.MethodPost, "/api/blogs", token, validPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Message string `json:"message"`
		Blog    struct {
			Slug     string  `json:"slug"`
			Author   string  `json:"author"`
			ReadTime *string `json:"readTime"`
			Date     string  `json:"date"`
		} `json:"blog"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Blog created successfully", resp.Message)
	assert.Equal(t, "top-5-areas", resp.Blog.Slug)
	assert.Equal(t, "Lovely Associates Team", resp.Blog.Author)
	require.NotNil(t, resp.Blog.ReadTime)
	assert.Equal(t, "1 min read", *resp.Blog.ReadTime)
	assert.NotEmpty(t, resp.Blog.Date)
}

func TestCreateValidationErrorBody(t *testing.T) {
	r, _, token := testEngine(t)
	w := doJSON(t, r, http.MethodPost, "/api/blogs", token, map[string]any{"title": "Only a title"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Message string   `json:"message"`
		Errors  []string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Validation Error", resp.Message)
	assert.ElementsMatch(t, []string{
		"Summary is required",
		"Content is required",
		"Thumbnail URL is required",
	}, resp.Errors)
}

func TestGetBlogNotFound(t *testing.T) {
	r, _, _ := testEngine(t)
	w := doJSON(t, r, http.MethodGet, "/api/blogs/does-not-exist", "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Blog post not found"}`, w.Body.String())
}

func TestListEnvelopeOmitsContent(t *testing.T) {
	r, _, token := testEngine(t)
	require.Equal(t, http.StatusCreated, doJSON(t, r, http.MethodPost, "/api/blogs", token, validPayload()).Code)

	w := doJSON(t, r, http.MethodGet, "/api/blogs", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Blogs []map[string]any `json:"blogs"`
		Pagination struct {
			Current int   `json:"current"`
			Pages   int64 `json:"pages"`
			Total   int64 `json:"total"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Blogs, 1)
	assert.NotContains(t, resp.Blogs[0], "content")
	assert.Contains(t, resp.Blogs[0], "readTime")
	assert.Equal(t, 1, resp.Pagination.Current)
	assert.Equal(t, int64(1), resp.Pagination.Total)
}

func TestListTagFilterCounts(t *testing.T) {
	r, _, token := testEngine(t)
	titles := map[string]string{
		"First Residential Pick":  "Residential",
		"Second Residential Pick": "Residential",
		"Third Residential Pick":  "Residential",
		"Office Corner":           "Commercial",
		"Retail Corner":           "Commercial",
	}
	for title, tag := range titles {
		p := validPayload()
		p["title"] = title
		p["tags"] = []string{tag}
		require.Equal(t, http.StatusCreated, doJSON(t, r, http.MethodPost, "/api/blogs", token, p).Code)
	}

	w := doJSON(t, r, http.MethodGet, "/api/blogs?tag=Residential", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Blogs      []map[string]any `json:"blogs"`
		Pagination struct {
			Total int64 `json:"total"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Blogs, 3)
	assert.Equal(t, int64(3), resp.Pagination.Total)
}

func TestMalformedPagingCoercedToDefaults(t *testing.T) {
	r, _, token := testEngine(t)
	require.Equal(t, http.StatusCreated, doJSON(t, r, http.MethodPost, "/api/blogs", token, validPayload()).Code)

	w := doJSON(t, r, http.MethodGet, "/api/blogs?page=banana&limit=oops", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Pagination struct {
			Current int `json:"current"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Pagination.Current)
}

func TestUpdateTitleMovesSlugOverHTTP(t *testing.T) {
	r, _, token := testEngine(t)
	require.Equal(t, http.StatusCreated, doJSON(t, r, http.MethodPost, "/api/blogs", token, validPayload()).Code)

	w := doJSON(t, r, http.MethodPut, "/api/blogs/top-5-areas", token, map[string]any{"title": "Better Title"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Message string `json:"message"`
		Blog    struct {
			Slug string `json:"slug"`
		} `json:"blog"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Blog updated successfully", resp.Message)
	assert.Equal(t, "better-title", resp.Blog.Slug)

	assert.Equal(t, http.StatusNotFound, doJSON(t, r, http.MethodGet, "/api/blogs/top-5-areas", "", nil).Code)
	assert.Equal(t, http.StatusOK, doJSON(t, r, http.MethodGet, "/api/blogs/better-title", "", nil).Code)
}

func TestDeleteMissingSlugReturns404(t *testing.T) {
	r, _, token := testEngine(t)
	w := doJSON(t, r, http.MethodDelete, "/api/blogs/ghost", token, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Blog post not found"}`, w.Body.String())
}

func TestDeleteThenGetReturns404(t *testing.T) {
	r, _, token := testEngine(t)
	require.Equal(t, http.StatusCreated, doJSON(t, r, http.MethodPost, "/api/blogs", token, validPayload()).Code)

	w := doJSON(t, r, http.MethodDelete, "/api/blogs/top-5-areas", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Blog deleted successfully"}`, w.Body.String())

	assert.Equal(t, http.StatusNotFound, doJSON(t, r, http.MethodGet, "/api/blogs/top-5-areas", "", nil).Code)
}

func TestTagsEndpoint(t *testing.T) {
	r, _, token := testEngine(t)
	p := validPayload()
	p["tags"] = []string{"Residential", "Investment"}
	require.Equal(t, http.StatusCreated, doJSON(t, r, http.MethodPost, "/api/blogs", token, p).Code)

	w := doJSON(t, r, http.MethodGet, "/api/blogs/tags/all", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"tags":["Investment","Residential"]}`, w.Body.String())
}
