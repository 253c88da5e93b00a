package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/blogsmith/internal/db"
	"github.com/gin-gonic/gin"
)

func firstBlogID(t *testing.T, body map[string]json.RawMessage) uint {
	t.Helper()
	var views []struct {
		ID uint `json:"id"`
	}
	if err := json.Unmarshal(body["blogs"], &views); err != nil {
		t.Fatalf("invalid blogs payload: %v", err)
	}
	if len(views) == 0 || views[0].ID == 0 {
		t.Fatalf("no persisted blog in response: %v", views)
	}
	return views[0].ID
}

func TestGetBlog(t *testing.T) {
	_, engine := setupTest(t)
	client := newTestClient(t, engine)

	id := firstBlogID(t, generateBlogs(t, client, "Solo Post"))

	w := client.do(http.MethodGet, fmt.Sprintf("/api/blogs/%d", id), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get failed with %d: %s", w.Code, w.Body.String())
	}
	var body struct {
		Blog db.Blog `json:"blog"`
	}
	decodeBody(t, w, &body)
	if body.Blog.Title != "Solo Post" {
		t.Fatalf("unexpected blog: %+v", body.Blog)
	}

	if w := client.do(http.MethodGet, "/api/blogs/9999", nil); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown blog, got %d", w.Code)
	}
	if w := client.do(http.MethodGet, "/api/blogs/abc", nil); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad id, got %d", w.Code)
	}
}

func TestGetBlogIsSessionScoped(t *testing.T) {
	_, engine := setupTest(t)
	owner := newTestClient(t, engine)
	stranger := newTestClient(t, engine)

	id := firstBlogID(t, generateBlogs(t, owner, "Private Post"))

	if w := stranger.do(http.MethodGet, fmt.Sprintf("/api/blogs/%d", id), nil); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for another session, got %d", w.Code)
	}
}

func TestListBlogsFilters(t *testing.T) {
	_, engine := setupTest(t)
	client := newTestClient(t, engine)

	generateBlogs(t, client, "Python Testing Tips\nTrip to Rome\nGo Tooling Notes")

	w := client.do(http.MethodGet, "/api/blogs?category=Tech", nil)
	var byCategory struct {
		TotalBlogs int64 `json:"total_blogs"`
	}
	decodeBody(t, w, &byCategory)
	if byCategory.TotalBlogs != 1 {
		t.Fatalf("expected 1 tech blog, got %d", byCategory.TotalBlogs)
	}

	w = client.do(http.MethodGet, "/api/blogs?search=rome", nil)
	var bySearch struct {
		TotalBlogs int64     `json:"total_blogs"`
		Blogs      []db.Blog `json:"blogs"`
	}
	decodeBody(t, w, &bySearch)
	if bySearch.TotalBlogs != 1 || bySearch.Blogs[0].Title != "Trip to Rome" {
		t.Fatalf("unexpected search result: %+v", bySearch)
	}

	if w := client.do(http.MethodGet, "/api/blogs?start_date=not-a-date", nil); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad start_date, got %d", w.Code)
	}
	if w := client.do(http.MethodGet, "/api/blogs?end_date=2026/01/01", nil); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad end_date, got %d", w.Code)
	}

	w = client.do(http.MethodGet, "/api/blogs?start_date=2000-01-01&end_date=2999-12-31", nil)
	var byDate struct {
		TotalBlogs int64 `json:"total_blogs"`
	}
	decodeBody(t, w, &byDate)
	if byDate.TotalBlogs != 3 {
		t.Fatalf("expected 3 blogs in range, got %d", byDate.TotalBlogs)
	}
}

func TestSaveAndRevertBlogContent(t *testing.T) {
	_, engine := setupTest(t)
	client := newTestClient(t, engine)

	id := firstBlogID(t, generateBlogs(t, client, "Editable Post"))
	path := fmt.Sprintf("/api/blogs/%d", id)

	// No history yet.
	if w := client.do(http.MethodPost, path+"/revert", nil); w.Code != http.StatusConflict {
		t.Fatalf("expected 409 before any edit, got %d: %s", w.Code, w.Body.String())
	}

	w := client.do(http.MethodPost, path+"/content", gin.H{"body_html": "<p>edited copy</p>"})
	if w.Code != http.StatusOK {
		t.Fatalf("save failed with %d: %s", w.Code, w.Body.String())
	}
	var saved struct {
		Blog db.Blog `json:"blog"`
	}
	decodeBody(t, w, &saved)
	if !strings.Contains(saved.Blog.BodyHTML, "edited copy") || saved.Blog.Body != "edited copy" {
		t.Fatalf("unexpected saved blog: %+v", saved.Blog)
	}

	w = client.do(http.MethodPost, path+"/revert", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("revert failed with %d: %s", w.Code, w.Body.String())
	}
	var reverted struct {
		Blog db.Blog `json:"blog"`
	}
	decodeBody(t, w, &reverted)
	if reverted.Blog.BodyHTML != "<p>body of Editable Post</p>" {
		t.Fatalf("revert not exact: %+v", reverted.Blog)
	}

	if w := client.do(http.MethodPost, path+"/content", gin.H{"body_html": "   "}); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty body_html, got %d", w.Code)
	}
}

func TestDeleteBlog(t *testing.T) {
	_, engine := setupTest(t)
	client := newTestClient(t, engine)

	id := firstBlogID(t, generateBlogs(t, client, "Doomed Post"))
	path := fmt.Sprintf("/api/blogs/%d", id)

	if w := client.do(http.MethodDelete, path, nil); w.Code != http.StatusOK {
		t.Fatalf("delete failed with %d", w.Code)
	}
	if w := client.do(http.MethodDelete, path, nil); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for repeat delete, got %d", w.Code)
	}
}

func TestClearBlogs(t *testing.T) {
	_, engine := setupTest(t)
	client := newTestClient(t, engine)

	generateBlogs(t, client, "One\nTwo\nThree")

	w := client.do(http.MethodDelete, "/api/blogs", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("clear failed with %d", w.Code)
	}
	var body struct {
		Deleted int64 `json:"deleted"`
	}
	decodeBody(t, w, &body)
	if body.Deleted != 3 {
		t.Fatalf("expected 3 deleted, got %d", body.Deleted)
	}

	w = client.do(http.MethodGet, "/api/blogs", nil)
	var list struct {
		TotalBlogs int64 `json:"total_blogs"`
	}
	decodeBody(t, w, &list)
	if list.TotalBlogs != 0 {
		t.Fatalf("expected empty history, got %d", list.TotalBlogs)
	}
}

func TestStatsForGuest(t *testing.T) {
	_, engine := setupTest(t)
	client := newTestClient(t, engine)

	w := client.do(http.MethodGet, "/api/stats", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("stats failed with %d", w.Code)
	}
	var stats struct {
		TotalBlogs     int64 `json:"total_blogs"`
		TotalDownloads int64 `json:"total_downloads"`
	}
	decodeBody(t, w, &stats)
	if stats.TotalBlogs != 0 || stats.TotalDownloads != 0 {
		t.Fatalf("expected zero guest stats: %+v", stats)
	}
}
