package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/blogsmith/internal/service"
	"github.com/gin-gonic/gin"
)

func TestExportGuestBlogByListedID(t *testing.T) {
	_, engine := setupTest(t)
	client := newTestClient(t, engine)

	body := generateBlogs(t, client, "Gardening Basics\nSecond Post")

	var views []struct {
		ID uint `json:"id"`
	}
	if err := json.Unmarshal(body["blogs"], &views); err != nil {
		t.Fatalf("invalid blogs payload: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("expected 2 views, got %d", len(views))
	}

	// The ids the list API hands out must address the same articles.
	w := client.do(http.MethodGet, fmt.Sprintf("/export/blog/%d/txt", views[0].ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("export failed with %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "body of Gardening Basics") {
		t.Fatalf("unexpected export content: %s", w.Body.String())
	}

	w = client.do(http.MethodGet, fmt.Sprintf("/export/blog/%d/md", views[1].ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("export failed with %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "body of Second Post") {
		t.Fatalf("unexpected export content: %s", w.Body.String())
	}
	disposition := w.Header().Get("Content-Disposition")
	if !strings.Contains(disposition, `filename="second_post.md"`) {
		t.Fatalf("unexpected disposition %q", disposition)
	}
}

func TestExportGuestBatchIndexFallback(t *testing.T) {
	_, engine := setupTest(t)
	client := newTestClient(t, engine)

	generateBlogs(t, client, "Gardening Basics\nSecond Post")

	// 0 matches no persisted id, so it resolves as a batch index.
	w := client.do(http.MethodGet, "/export/blog/0/md", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("export failed with %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "body of Gardening Basics") {
		t.Fatalf("unexpected export content: %s", w.Body.String())
	}
	disposition := w.Header().Get("Content-Disposition")
	if !strings.Contains(disposition, `filename="gardening_basics.md"`) {
		t.Fatalf("unexpected disposition %q", disposition)
	}
}

func TestExportPersistedBlogByID(t *testing.T) {
	_, engine := setupTest(t)
	client := newTestClient(t, engine)

	client.do(http.MethodPost, "/api/register", gin.H{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "s3cret",
	})
	client.do(http.MethodPost, "/api/login", gin.H{
		"email":    "alice@example.com",
		"password": "s3cret",
	})

	id := firstBlogID(t, generateBlogs(t, client, "Account Post"))

	w := client.do(http.MethodGet, fmt.Sprintf("/export/blog/%d/txt", id), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("export failed with %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "body of Account Post") {
		t.Fatalf("unexpected export content: %s", w.Body.String())
	}

	// Downloads count toward the account's stats.
	sw := client.do(http.MethodGet, "/api/stats", nil)
	var stats struct {
		TotalDownloads int64 `json:"total_downloads"`
	}
	decodeBody(t, sw, &stats)
	if stats.TotalDownloads != 1 {
		t.Fatalf("expected 1 download recorded, got %d", stats.TotalDownloads)
	}
}

func TestExportDownloadNameOverride(t *testing.T) {
	_, engine := setupTest(t)
	client := newTestClient(t, engine)

	generateBlogs(t, client, "Gardening Basics")

	w := client.do(http.MethodGet, "/export/blog/0/md?download_name=../../etc/cron", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("export failed with %d", w.Code)
	}
	disposition := w.Header().Get("Content-Disposition")
	if !strings.Contains(disposition, `filename="cron.md"`) {
		t.Fatalf("traversal not reduced to basename: %q", disposition)
	}
}

func TestExportNotFound(t *testing.T) {
	_, engine := setupTest(t)
	client := newTestClient(t, engine)

	w := client.do(http.MethodGet, "/export/blog/0/md", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 without a batch, got %d: %s", w.Code, w.Body.String())
	}
}

func TestExportUnsupportedFormat(t *testing.T) {
	_, engine := setupTest(t)
	client := newTestClient(t, engine)

	generateBlogs(t, client, "Gardening Basics")

	w := client.do(http.MethodGet, "/export/blog/0/xlsx", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestExportAll(t *testing.T) {
	_, engine := setupTest(t)
	client := newTestClient(t, engine)

	generateBlogs(t, client, "First Post\nSecond Post")

	w := client.do(http.MethodGet, "/export/all/json", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("export all failed with %d: %s", w.Code, w.Body.String())
	}
	var blogs []service.ExportBlog
	if err := json.Unmarshal(w.Body.Bytes(), &blogs); err != nil {
		t.Fatalf("invalid export payload: %v", err)
	}
	if len(blogs) != 2 || blogs[0].Title != "First Post" {
		t.Fatalf("unexpected batch: %+v", blogs)
	}
	if !strings.Contains(w.Header().Get("Content-Disposition"), `filename="blogs.json"`) {
		t.Fatalf("unexpected disposition %q", w.Header().Get("Content-Disposition"))
	}
}

func TestExportAllWithoutBatch(t *testing.T) {
	_, engine := setupTest(t)
	client := newTestClient(t, engine)

	w := client.do(http.MethodGet, "/export/all/md", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 without a batch, got %d", w.Code)
	}
}
