package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/blogsmith/internal/db"
	"gorm.io/gorm"
)

var (
	// ErrBlogNotFound is returned when no blog matches the id within the
	// caller's owner context.
	ErrBlogNotFound = errors.New("blog not found")
	// ErrNoRevisions is returned when a revert is requested for a blog
	// without edit history.
	ErrNoRevisions = errors.New("blog has no revisions to revert to")
)

// Owner identifies who a blog belongs to: a user id for authenticated
// callers or a session id for guests. Exactly one side is set.
type Owner struct {
	UserID    uint
	SessionID string
}

// IsUser reports whether the owner context is an authenticated account.
func (o Owner) IsUser() bool {
	return o.UserID != 0
}

// BlogFilter describes filters for listing a caller's blog history.
type BlogFilter struct {
	Category  string
	Search    string
	StartDate *time.Time
	EndDate   *time.Time
	Page      int
	PerPage   int
}

// BlogListResult aggregates paginated history rows and counters.
type BlogListResult struct {
	Blogs      []db.Blog
	Total      int64
	TotalPages int
	Page       int
	PerPage    int
}

// BlogService wraps blog persistence: creation on generation, history
// listing, edits with revisions, and deletion.
type BlogService struct {
	db *gorm.DB
}

// NewBlogService creates a BlogService instance.
func NewBlogService(gdb *gorm.DB) *BlogService {
	return &BlogService{db: gdb}
}

func (s *BlogService) ownedQuery(owner Owner) *gorm.DB {
	if owner.IsUser() {
		return s.db.Where("user_id = ?", owner.UserID)
	}
	return s.db.Where("session_id = ? AND user_id = 0", owner.SessionID)
}

// Create persists a generated article for the owner.
func (s *BlogService) Create(owner Owner, generated GeneratedBlog) (*db.Blog, error) {
	blog := db.Blog{
		UserID:       owner.UserID,
		SessionID:    owner.SessionID,
		Title:        generated.Title,
		Details:      generated.Details,
		Body:         generated.Body,
		BodyHTML:     generated.BodyHTML,
		FilenameBase: generated.FilenameBase,
		Category:     generated.Category,
	}
	if blog.FilenameBase == "" {
		blog.FilenameBase = Slugify(blog.Title)
	}
	if blog.Category == "" {
		blog.Category = DefaultCategory
	}

	if err := s.db.Create(&blog).Error; err != nil {
		return nil, fmt.Errorf("create blog: %w", err)
	}
	return &blog, nil
}

// Get fetches one blog within the owner context.
func (s *BlogService) Get(owner Owner, id uint) (*db.Blog, error) {
	var blog db.Blog
	if err := s.ownedQuery(owner).First(&blog, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, err
	}
	return &blog, nil
}

// List returns the owner's history filtered by category, search text and
// creation date range, newest first.
func (s *BlogService) List(owner Owner, filter BlogFilter) (BlogListResult, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	perPage := filter.PerPage
	if perPage < 1 {
		perPage = 20
	}

	query := s.ownedQuery(owner).Model(&db.Blog{})

	if category := strings.TrimSpace(filter.Category); category != "" {
		query = query.Where("category = ?", category)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + search + "%"
		query = query.Where("title LIKE ? OR details LIKE ? OR body LIKE ?", pattern, pattern, pattern)
	}
	if filter.StartDate != nil {
		query = query.Where("created_at >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		// Inclusive: everything before midnight after the end day counts.
		query = query.Where("created_at < ?", filter.EndDate.AddDate(0, 0, 1))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return BlogListResult{}, fmt.Errorf("count blogs: %w", err)
	}

	totalPages := int((total + int64(perPage) - 1) / int64(perPage))
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	var blogs []db.Blog
	offset := (page - 1) * perPage
	if err := query.Order("created_at desc").Limit(perPage).Offset(offset).Find(&blogs).Error; err != nil {
		return BlogListResult{}, fmt.Errorf("list blogs: %w", err)
	}

	return BlogListResult{
		Blogs:      blogs,
		Total:      total,
		TotalPages: totalPages,
		Page:       page,
		PerPage:    perPage,
	}, nil
}

// SaveContent stores edited content. The previous body is appended to the
// revision history first, and the plain body is re-derived from the HTML so
// both stay consistent.
func (s *BlogService) SaveContent(owner Owner, id uint, bodyHTML string) (*db.Blog, error) {
	blog, err := s.Get(owner, id)
	if err != nil {
		return nil, err
	}

	sanitized := sanitizer.Sanitize(bodyHTML)
	plain := HTMLToText(sanitized)

	err = s.db.Transaction(func(tx *gorm.DB) error {
		revision := db.BlogRevision{
			BlogID:   blog.ID,
			Body:     blog.Body,
			BodyHTML: blog.BodyHTML,
		}
		if err := tx.Create(&revision).Error; err != nil {
			return err
		}

		blog.BodyHTML = sanitized
		blog.Body = plain
		return tx.Save(blog).Error
	})
	if err != nil {
		return nil, fmt.Errorf("save blog content: %w", err)
	}
	return blog, nil
}

// Revert restores the most recent revision exactly and removes it from the
// history.
func (s *BlogService) Revert(owner Owner, id uint) (*db.Blog, error) {
	blog, err := s.Get(owner, id)
	if err != nil {
		return nil, err
	}

	var revision db.BlogRevision
	if err := s.db.Where("blog_id = ?", blog.ID).Order("id desc").First(&revision).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoRevisions
		}
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		blog.Body = revision.Body
		blog.BodyHTML = revision.BodyHTML
		if err := tx.Save(blog).Error; err != nil {
			return err
		}
		return tx.Delete(&revision).Error
	})
	if err != nil {
		return nil, fmt.Errorf("revert blog content: %w", err)
	}
	return blog, nil
}

// Delete removes one blog and its revisions within the owner context.
func (s *BlogService) Delete(owner Owner, id uint) error {
	blog, err := s.Get(owner, id)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("blog_id = ?", blog.ID).Delete(&db.BlogRevision{}).Error; err != nil {
			return err
		}
		return tx.Delete(blog).Error
	})
}

// ClearAll removes the owner's whole history and returns how many blogs
// were deleted.
func (s *BlogService) ClearAll(owner Owner) (int64, error) {
	var ids []uint
	if err := s.ownedQuery(owner).Model(&db.Blog{}).Pluck("id", &ids).Error; err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("blog_id IN ?", ids).Delete(&db.BlogRevision{}).Error; err != nil {
			return err
		}
		return tx.Delete(&db.Blog{}, ids).Error
	})
	if err != nil {
		return 0, fmt.Errorf("clear blog history: %w", err)
	}
	return int64(len(ids)), nil
}
