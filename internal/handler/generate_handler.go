package handler

import (
	"fmt"
	"log"
	"net/http"

	"github.com/blogsmith/internal/service"
	"github.com/gin-gonic/gin"
)

type generateRequest struct {
	// BlogInputs holds one topic per line, "Title" or "Title | details".
	BlogInputs string `json:"blog_inputs"`
}

type generatedBlogView struct {
	service.GeneratedBlog
	ID    uint `json:"id,omitempty"`
	Index int  `json:"index"`
}

// GenerateBlogs generates one article per submitted topic, persists each
// for the caller's owner context and caches the batch for exports.
func (a *API) GenerateBlogs(c *gin.Context) {
	var req generateRequest
	if !bindJSON(c, &req, "invalid generation payload") {
		return
	}

	topics := service.ParseTopics(req.BlogInputs)
	if len(topics) == 0 {
		respondError(c, http.StatusBadRequest, "please enter at least one blog title")
		return
	}

	owner := currentOwner(c)

	var (
		views     []generatedBlogView
		generated []service.GeneratedBlog
		failures  []string
	)
	for _, topic := range topics {
		blog, err := a.generator.Generate(c.Request.Context(), topic)
		if err != nil {
			failures = append(failures, fmt.Sprintf("error generating blog '%s': %s", topic.Title, err))
			continue
		}

		view := generatedBlogView{GeneratedBlog: blog, Index: len(generated)}
		record, err := a.blogs.Create(owner, blog)
		if err != nil {
			log.Printf("failed to persist generated blog %q: %v", blog.Title, err)
		} else {
			view.ID = record.ID
		}
		generated = append(generated, blog)
		views = append(views, view)
	}

	if len(generated) == 0 {
		status := http.StatusBadGateway
		message := "no blogs were generated successfully"
		if len(failures) > 0 {
			message = failures[0]
		}
		c.JSON(status, gin.H{"error": message, "errors": failures})
		return
	}

	if path, err := a.batches.Save(generated, sessionBatchPath(c)); err != nil {
		log.Printf("failed to cache generated batch: %v", err)
	} else if err := setSessionBatchPath(c, path); err != nil {
		log.Printf("failed to save batch session: %v", err)
	}

	if err := a.stats.RecordGeneration(owner.UserID, int64(len(generated))); err != nil {
		log.Printf("failed to record generation stats: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"blogs":       views,
		"total_blogs": len(views),
		"errors":      failures,
	})
}
