package service

import (
	"strings"
	"testing"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Hello, World!", "hello_world"},
		{"  Spaces   everywhere  ", "spaces_everywhere"},
		{"already_fine-slug", "already_fine-slug"},
		{"???", "blog"},
		{"", "blog"},
	}

	for _, tc := range cases {
		if got := Slugify(tc.title); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}

func TestSlugifyTruncates(t *testing.T) {
	long := strings.Repeat("a", 200)
	got := Slugify(long)
	if len(got) != 120 {
		t.Fatalf("expected 120 characters, got %d", len(got))
	}
}
