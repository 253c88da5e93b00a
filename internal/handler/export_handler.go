package handler

import (
	"errors"
	"log"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/blogsmith/internal/service"
	"github.com/gin-gonic/gin"
)

// ExportBlog downloads one blog in the requested format. Persisted blogs
// are addressed by the ids the list API hands out, for users and guests
// alike; ids that miss the caller's history fall back to the cached batch
// by index.
func (a *API) ExportBlog(c *gin.Context) {
	format := c.Param("format")
	raw := c.Param("id")
	idx, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid blog id")
		return
	}

	owner := currentOwner(c)

	var blog service.ExportBlog
	found := false
	if record, err := a.blogs.Get(owner, uint(idx)); err == nil {
		blog = service.ExportBlogFromRecord(record)
		found = true
	}

	if !found {
		batch, err := a.batches.Load(sessionBatchPath(c))
		if err == nil && int(idx) < len(batch) {
			blog = service.ExportBlogFromGenerated(batch[idx])
			found = true
		}
	}

	if !found {
		respondError(c, http.StatusNotFound, "requested blog not found")
		return
	}

	result, err := a.exports.Render(blog, format)
	if err != nil {
		if errors.Is(err, service.ErrUnsupportedFormat) {
			respondError(c, http.StatusBadRequest, "unsupported download format")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to render download")
		return
	}

	if err := a.stats.RecordDownload(owner.UserID); err != nil {
		log.Printf("failed to record download stats: %v", err)
	}

	serveDownload(c, result, c.Query("download_name"))
}

// ExportAll downloads the caller's cached batch in one file.
func (a *API) ExportAll(c *gin.Context) {
	batch, err := a.batches.Load(sessionBatchPath(c))
	if err != nil {
		respondError(c, http.StatusNotFound, "no generated blogs to download")
		return
	}

	blogs := make([]service.ExportBlog, 0, len(batch))
	for _, entry := range batch {
		blogs = append(blogs, service.ExportBlogFromGenerated(entry))
	}

	result, err := a.exports.RenderAll(blogs, c.Param("format"))
	if err != nil {
		if errors.Is(err, service.ErrUnsupportedFormat) {
			respondError(c, http.StatusBadRequest, "unsupported download format")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to render download")
		return
	}

	serveDownload(c, result, "")
}

// serveDownload writes the rendered bytes as an attachment, honoring an
// optional caller-supplied filename. The override is reduced to its
// basename and the format's extension is enforced.
func serveDownload(c *gin.Context, result service.ExportResult, downloadName string) {
	filename := result.Filename
	if downloadName != "" {
		safe := filepath.Base(downloadName)
		if safe != "." && safe != string(filepath.Separator) {
			if filepath.Ext(safe) == "" {
				safe += filepath.Ext(result.Filename)
			}
			filename = safe
		}
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, result.ContentType, result.Content)
}
