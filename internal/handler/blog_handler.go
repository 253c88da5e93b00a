package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/blogsmith/internal/service"
	"github.com/gin-gonic/gin"
)

// ListBlogs returns the caller's blog history filtered by category, search
// text and creation date range.
func (a *API) ListBlogs(c *gin.Context) {
	filter := service.BlogFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Page:     1,
		PerPage:  a.perPage,
	}

	if p, err := strconv.Atoi(c.Query("page")); err == nil && p > 0 {
		filter.Page = p
	}
	if start := strings.TrimSpace(c.Query("start_date")); start != "" {
		if parsed, err := time.Parse("2006-01-02", start); err == nil {
			filter.StartDate = &parsed
		} else {
			respondError(c, http.StatusBadRequest, "invalid start_date, expected YYYY-MM-DD")
			return
		}
	}
	if end := strings.TrimSpace(c.Query("end_date")); end != "" {
		if parsed, err := time.Parse("2006-01-02", end); err == nil {
			filter.EndDate = &parsed
		} else {
			respondError(c, http.StatusBadRequest, "invalid end_date, expected YYYY-MM-DD")
			return
		}
	}

	result, err := a.blogs.List(currentOwner(c), filter)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "unable to load your blogs")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"blogs":       result.Blogs,
		"total_blogs": result.Total,
		"total_pages": result.TotalPages,
		"page":        result.Page,
		"per_page":    result.PerPage,
	})
}

// GetBlog returns a single owned blog.
func (a *API) GetBlog(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid blog id")
		return
	}

	blog, err := a.blogs.Get(currentOwner(c), id)
	if err != nil {
		if errors.Is(err, service.ErrBlogNotFound) {
			respondError(c, http.StatusNotFound, "blog not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "unable to load blog")
		return
	}

	c.JSON(http.StatusOK, gin.H{"blog": blog})
}

// DeleteBlog removes one owned blog and its revisions.
func (a *API) DeleteBlog(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid blog id")
		return
	}

	if err := a.blogs.Delete(currentOwner(c), id); err != nil {
		if errors.Is(err, service.ErrBlogNotFound) {
			respondError(c, http.StatusNotFound, "blog not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to delete blog")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "blog deleted successfully"})
}

// ClearBlogs wipes the caller's whole history.
func (a *API) ClearBlogs(c *gin.Context) {
	deleted, err := a.blogs.ClearAll(currentOwner(c))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to clear blogs")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "all blogs cleared successfully", "deleted": deleted})
}

type saveContentRequest struct {
	BodyHTML string `json:"body_html"`
}

// SaveBlogContent stores an accepted edit, appending the previous content
// to the revision history.
func (a *API) SaveBlogContent(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid blog id")
		return
	}

	var req saveContentRequest
	if !bindJSON(c, &req, "missing body_html") {
		return
	}
	if strings.TrimSpace(req.BodyHTML) == "" {
		respondError(c, http.StatusBadRequest, "missing body_html")
		return
	}

	blog, err := a.blogs.SaveContent(currentOwner(c), id, req.BodyHTML)
	if err != nil {
		if errors.Is(err, service.ErrBlogNotFound) {
			respondError(c, http.StatusNotFound, "blog not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to save blog content")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "blog content saved", "blog": blog})
}

// RevertBlog restores the most recent revision exactly.
func (a *API) RevertBlog(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid blog id")
		return
	}

	blog, err := a.blogs.Revert(currentOwner(c), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBlogNotFound):
			respondError(c, http.StatusNotFound, "blog not found")
		case errors.Is(err, service.ErrNoRevisions):
			respondError(c, http.StatusConflict, "blog has no edit history")
		default:
			respondError(c, http.StatusInternalServerError, "failed to revert blog content")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "blog content reverted", "blog": blog})
}

// Stats returns the caller's lifetime counters; guests get zeroes.
func (a *API) Stats(c *gin.Context) {
	stats, err := a.stats.Get(currentUserID(c))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "unable to load stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}
