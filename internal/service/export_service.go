package service

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/blogsmith/internal/db"
	"github.com/fumiama/go-docx"
	"github.com/jung-kurt/gofpdf"
)

// ErrUnsupportedFormat is returned for unknown export formats.
var ErrUnsupportedFormat = errors.New("unsupported download format")

// ExportBlog is the provider-agnostic view of an article used by the
// export encoders.
type ExportBlog struct {
	Title        string    `json:"title"`
	Details      string    `json:"details"`
	Body         string    `json:"body"`
	BodyHTML     string    `json:"body_html"`
	FilenameBase string    `json:"filename_base"`
	Category     string    `json:"category,omitempty"`
	Date         time.Time `json:"date"`
}

// ExportResult carries the rendered bytes plus response metadata.
type ExportResult struct {
	Content     []byte
	ContentType string
	Filename    string
}

// ExportBlogFromRecord adapts a persisted blog for export.
func ExportBlogFromRecord(blog *db.Blog) ExportBlog {
	base := blog.FilenameBase
	if base == "" {
		base = Slugify(blog.Title)
	}
	return ExportBlog{
		Title:        blog.Title,
		Details:      blog.Details,
		Body:         blog.Body,
		BodyHTML:     blog.BodyHTML,
		FilenameBase: base,
		Category:     blog.Category,
		Date:         blog.CreatedAt,
	}
}

// ExportBlogFromGenerated adapts a cached guest batch entry for export.
func ExportBlogFromGenerated(blog GeneratedBlog) ExportBlog {
	base := blog.FilenameBase
	if base == "" {
		base = Slugify(blog.Title)
	}
	return ExportBlog{
		Title:        blog.Title,
		Details:      blog.Details,
		Body:         blog.Body,
		BodyHTML:     blog.BodyHTML,
		FilenameBase: base,
		Category:     blog.Category,
		Date:         blog.Date,
	}
}

// ExportService renders articles into the supported download formats.
type ExportService struct{}

// NewExportService creates an ExportService.
func NewExportService() *ExportService {
	return &ExportService{}
}

// Render encodes one blog in the requested format. Bodies are sanitized of
// leaked instruction prefixes before encoding.
func (s *ExportService) Render(blog ExportBlog, format string) (ExportResult, error) {
	blog.Body = StripInstructionPrefix(blog.Body)
	blog.BodyHTML = StripInstructionPrefixHTML(blog.BodyHTML)

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "html":
		content := fmt.Sprintf("<!doctype html><html><head><meta charset=%q></head><body>%s</body></html>", "utf-8", blog.BodyHTML)
		return ExportResult{
			Content:     []byte(content),
			ContentType: "text/html; charset=utf-8",
			Filename:    blog.FilenameBase + ".html",
		}, nil
	case "md", "markdown":
		return ExportResult{
			Content:     []byte(blog.Body),
			ContentType: "text/markdown; charset=utf-8",
			Filename:    blog.FilenameBase + ".md",
		}, nil
	case "txt":
		return ExportResult{
			Content:     []byte(blog.Body),
			ContentType: "text/plain; charset=utf-8",
			Filename:    blog.FilenameBase + ".txt",
		}, nil
	case "json":
		content, err := json.MarshalIndent(blog, "", "  ")
		if err != nil {
			return ExportResult{}, fmt.Errorf("encode blog json: %w", err)
		}
		return ExportResult{
			Content:     content,
			ContentType: "application/json; charset=utf-8",
			Filename:    blog.FilenameBase + ".json",
		}, nil
	case "csv":
		content, err := renderCSV([]ExportBlog{blog})
		if err != nil {
			return ExportResult{}, err
		}
		return ExportResult{
			Content:     content,
			ContentType: "text/csv; charset=utf-8",
			Filename:    blog.FilenameBase + ".csv",
		}, nil
	case "pdf":
		content, err := renderPDF(blog)
		if err != nil {
			return ExportResult{}, err
		}
		return ExportResult{
			Content:     content,
			ContentType: "application/pdf",
			Filename:    blog.FilenameBase + ".pdf",
		}, nil
	case "docx":
		content, err := renderDOCX(blog)
		if err != nil {
			return ExportResult{}, err
		}
		return ExportResult{
			Content:     content,
			ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
			Filename:    blog.FilenameBase + ".docx",
		}, nil
	}
	return ExportResult{}, ErrUnsupportedFormat
}

// RenderAll encodes a whole batch: structured for json/csv, concatenated
// with dividers for the text formats.
func (s *ExportService) RenderAll(blogs []ExportBlog, format string) (ExportResult, error) {
	for i := range blogs {
		blogs[i].Body = StripInstructionPrefix(blogs[i].Body)
		blogs[i].BodyHTML = StripInstructionPrefixHTML(blogs[i].BodyHTML)
	}

	normalized := strings.ToLower(strings.TrimSpace(format))
	switch normalized {
	case "json":
		content, err := json.MarshalIndent(blogs, "", "  ")
		if err != nil {
			return ExportResult{}, fmt.Errorf("encode batch json: %w", err)
		}
		return ExportResult{Content: content, ContentType: "application/json; charset=utf-8", Filename: "blogs.json"}, nil
	case "csv":
		content, err := renderCSV(blogs)
		if err != nil {
			return ExportResult{}, err
		}
		return ExportResult{Content: content, ContentType: "text/csv; charset=utf-8", Filename: "blogs.csv"}, nil
	case "md", "markdown", "txt", "html":
		var parts []string
		for _, blog := range blogs {
			switch normalized {
			case "md", "markdown":
				parts = append(parts, fmt.Sprintf("# %s\n\n%s\n\n---\n", blog.Title, blog.Body))
			case "html":
				parts = append(parts, fmt.Sprintf("<h1>%s</h1>\n%s<hr/>", blog.Title, blog.BodyHTML))
			default:
				parts = append(parts, fmt.Sprintf("%s\n\n%s\n\n---\n", blog.Title, blog.Body))
			}
		}
		contentType := "text/plain; charset=utf-8"
		ext := "txt"
		if normalized == "html" {
			contentType = "text/html; charset=utf-8"
			ext = "html"
		} else if normalized != "txt" {
			ext = "md"
		}
		return ExportResult{
			Content:     []byte(strings.Join(parts, "\n")),
			ContentType: contentType,
			Filename:    "blogs." + ext,
		}, nil
	}
	return ExportResult{}, ErrUnsupportedFormat
}

func renderCSV(blogs []ExportBlog) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"title", "details", "body", "date"}); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, blog := range blogs {
		record := []string{blog.Title, blog.Details, blog.Body, blog.Date.Format("2006-01-02 15:04:05")}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// renderPDF lays the markdown body out line by line: headings bold and
// larger, fenced code monospaced, everything else wrapped body text.
func renderPDF(blog ExportBlog) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	inCodeBlock := false
	for _, line := range strings.Split(blog.Body, "\n") {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "```") {
			inCodeBlock = !inCodeBlock
			continue
		}
		if inCodeBlock {
			pdf.SetFont("Courier", "", 9)
			pdf.MultiCell(0, 4.5, tr(line), "", "L", false)
			continue
		}

		switch {
		case trimmed == "":
			pdf.Ln(3)
		case strings.HasPrefix(trimmed, "### "):
			pdf.SetFont("Helvetica", "B", 12)
			pdf.MultiCell(0, 6, tr(strings.TrimPrefix(trimmed, "### ")), "", "L", false)
		case strings.HasPrefix(trimmed, "## "):
			pdf.SetFont("Helvetica", "B", 13)
			pdf.MultiCell(0, 6, tr(strings.TrimPrefix(trimmed, "## ")), "", "L", false)
		case strings.HasPrefix(trimmed, "# "):
			pdf.SetFont("Helvetica", "B", 15)
			pdf.MultiCell(0, 7, tr(strings.TrimPrefix(trimmed, "# ")), "", "L", false)
		case strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* "):
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, tr("• "+trimmed[2:]), "", "L", false)
		default:
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, tr(trimmed), "", "L", false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// renderDOCX writes the body as one paragraph per markdown block; heading
// markers become larger text.
func renderDOCX(blog ExportBlog) ([]byte, error) {
	doc := docx.New().WithDefaultTheme()

	for _, block := range strings.Split(blog.Body, "\n\n") {
		trimmed := strings.TrimSpace(block)
		if trimmed == "" {
			continue
		}
		para := doc.AddParagraph()
		switch {
		case strings.HasPrefix(trimmed, "# "):
			para.AddText(strings.TrimPrefix(trimmed, "# ")).Size("32").Bold()
		case strings.HasPrefix(trimmed, "## "):
			para.AddText(strings.TrimPrefix(trimmed, "## ")).Size("28").Bold()
		case strings.HasPrefix(trimmed, "### "):
			para.AddText(strings.TrimPrefix(trimmed, "### ")).Size("26").Bold()
		default:
			para.AddText(trimmed)
		}
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("render docx: %w", err)
	}
	return buf.Bytes(), nil
}
