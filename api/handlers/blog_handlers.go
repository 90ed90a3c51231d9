package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"la-blog/dto"
	"la-blog/services"
)

// ListBlogsHandler godoc
// @Summary      List blog posts
// @Description  List posts without content, filtered by tag and free-text search, newest first
// @Tags         blogs
// @Param        tag     query  string  false  "Exact tag filter; 'All' disables it"
// @Param        search  query  string  false  "Case-insensitive substring match on title or summary"
// @Param        limit   query  int     false  "Page size (default 10)"
// @Param        page    query  int     false  "Page number, 1-based (default 1)"
// @Produce      json
// @Success      200  {object}  dto.BlogListResponse
// @Failure      500  {object}  dto.MessageResponse
// @Router       /blogs [get]
func ListBlogsHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in services.ListBlogsInput
		in.Tag = c.Query("tag")
		in.Search = c.Query("search")
		// malformed numerics coerce to defaults
		in.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))
		in.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))

		resp, err := svc.List(c.Request.Context(), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// GetBlogTagsHandler godoc
// @Summary      List all tags
// @Description  Distinct tag values across all posts, sorted
// @Tags         blogs
// @Produce      json
// @Success      200  {object}  dto.TagsResponse
// @Failure      500  {object}  dto.MessageResponse
// @Router       /blogs/tags/all [get]
func GetBlogTagsHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp, err := svc.Tags(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// GetBlogHandler godoc
// @Summary      Get post by slug
// @Description  Full post including content
// @Tags         blogs
// @Param        slug  path  string  true  "Post slug"
// @Produce      json
// @Success      200  {object}  dto.BlogDTO
// @Failure      404  {object}  dto.MessageResponse
// @Router       /blogs/{slug} [get]
func GetBlogHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		blog, err := svc.GetBySlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, blog)
	}
}

// CreateBlogHandler godoc
// @Summary      Create post
// @Description  Validates the payload, derives a unique slug from the title
// @Tags         blogs
// @Security     BearerAuth
// @Accept       json
// @Param        body  body  services.CreateBlogInput  true  "Post payload"
// @Produce      json
// @Success      201  {object}  dto.BlogResponse
// @Failure      400  {object}  dto.ValidationErrorResponse
// @Router       /blogs [post]
func CreateBlogHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in services.CreateBlogInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{
				Message: "Validation Error",
				Errors:  []string{"Request body must be valid JSON"},
			})
			return
		}

		blog, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, dto.BlogResponse{
			Message: "Blog created successfully",
			Blog:    blog,
		})
	}
}

// UpdateBlogHandler godoc
// @Summary      Update post by slug
// @Description  Partial update; sending a title re-derives the slug and the old slug stops resolving
// @Tags         blogs
// @Security     BearerAuth
// @Accept       json
// @Param        slug  path  string                    true  "Post slug"
// @Param        body  body  services.UpdateBlogInput  true  "Partial post payload"
// @Produce      json
// @Success      200  {object}  dto.BlogResponse
// @Failure      400  {object}  dto.ValidationErrorResponse
// @Failure      404  {object}  dto.MessageResponse
// @Router       /blogs/{slug} [put]
func UpdateBlogHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in services.UpdateBlogInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{
				Message: "Validation Error",
				Errors:  []string{"Request body must be valid JSON"},
			})
			return
		}

		blog, err := svc.Update(c.Request.Context(), c.Param("slug"), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.BlogResponse{
			Message: "Blog updated successfully",
			Blog:    blog,
		})
	}
}

// DeleteBlogHandler godoc
// @Summary      Delete post by slug
// @Description  Hard delete, no tombstone
// @Tags         blogs
// @Security     BearerAuth
// @Param        slug  path  string  true  "Post slug"
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.MessageResponse
// @Router       /blogs/{slug} [delete]
func DeleteBlogHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("slug")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponse{Message: "Blog deleted successfully"})
	}
}
