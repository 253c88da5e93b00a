package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/blogsmith/internal/service"
	"github.com/gin-gonic/gin"
)

type chatRequest struct {
	Message string `json:"message"`
}

// Chat proxies an edit-suggestion request to the assistant.
func (a *API) Chat(c *gin.Context) {
	var req chatRequest
	if !bindJSON(c, &req, "no message provided") {
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		respondError(c, http.StatusBadRequest, "message cannot be empty")
		return
	}

	reply, err := a.assistant.Reply(c.Request.Context(), req.Message)
	if err != nil {
		if errors.Is(err, service.ErrAPIKeyMissing) {
			respondError(c, http.StatusInternalServerError, "assistant api key is not configured")
			return
		}
		respondError(c, http.StatusInternalServerError, "llm chat error: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": reply})
}

// TrendingTopics serves the rotating topic suggestions.
func (a *API) TrendingTopics(c *gin.Context) {
	c.JSON(http.StatusOK, a.trending.Topics())
}

// AttributionReport serves the attribution compliance report.
func (a *API) AttributionReport(c *gin.Context) {
	c.JSON(http.StatusOK, a.tracker.GenerateReport())
}
