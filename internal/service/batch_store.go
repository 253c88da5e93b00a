package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	batchFilePrefix = "last_blogs_"
	defaultBatchTTL = 24 * time.Hour
)

// ErrBatchNotFound is returned when the referenced batch file is missing
// or expired.
var ErrBatchNotFound = errors.New("generated batch not found")

// BatchStore keeps the most recently generated batch per session as flat
// JSON files, so guest results survive without exceeding cookie limits.
type BatchStore struct {
	mu  sync.Mutex
	dir string
	ttl time.Duration
}

// NewBatchStore creates a BatchStore rooted at dir. Files older than the
// TTL are pruned opportunistically on writes.
func NewBatchStore(dir string) *BatchStore {
	return &BatchStore{dir: dir, ttl: defaultBatchTTL}
}

// SetTTL overrides the retention window, mainly for tests.
func (s *BatchStore) SetTTL(ttl time.Duration) {
	if ttl > 0 {
		s.ttl = ttl
	}
}

// Save writes a batch to a fresh file and returns its path for the
// session. The previous file of the session, if any, is removed.
func (s *BatchStore) Save(blogs []GeneratedBlog, previousPath string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create batch dir: %w", err)
	}

	name := fmt.Sprintf("%s%d_%s.json", batchFilePrefix, time.Now().Unix(), uuid.NewString())
	path := filepath.Join(s.dir, name)

	payload, err := json.MarshalIndent(blogs, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode batch: %w", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return "", fmt.Errorf("write batch: %w", err)
	}

	if previousPath != "" {
		if contained, ok := s.containedPath(previousPath); ok {
			os.Remove(contained)
		}
	}
	s.pruneLocked()

	return path, nil
}

// Load reads a batch back. Paths outside the store directory are rejected.
func (s *BatchStore) Load(path string) ([]GeneratedBlog, error) {
	contained, ok := s.containedPath(path)
	if !ok {
		return nil, ErrBatchNotFound
	}

	raw, err := os.ReadFile(contained)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrBatchNotFound
		}
		return nil, fmt.Errorf("read batch: %w", err)
	}

	var blogs []GeneratedBlog
	if err := json.Unmarshal(raw, &blogs); err != nil {
		return nil, fmt.Errorf("decode batch: %w", err)
	}
	return blogs, nil
}

// containedPath resolves path and checks it points at a batch file inside
// the store directory.
func (s *BatchStore) containedPath(path string) (string, bool) {
	cleaned := filepath.Clean(path)
	dir := filepath.Clean(s.dir)
	if filepath.Dir(cleaned) != dir {
		return "", false
	}
	if !strings.HasPrefix(filepath.Base(cleaned), batchFilePrefix) {
		return "", false
	}
	return cleaned, true
}

// pruneLocked removes expired batch files. Failures are ignored; stale
// files only cost disk space.
func (s *BatchStore) pruneLocked() {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return
	}
	cutoff := time.Now().Add(-s.ttl)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), batchFilePrefix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			os.Remove(filepath.Join(s.dir, entry.Name()))
		}
	}
}
