package fetch_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chriscorrea/textstat/internal/fetch"
)

func TestGetContent(t *testing.T) {
	tests := []struct {
		name        string
		source      string
		setupFunc   func(t *testing.T) (source string, cleanup func())
		expectError bool
		expectData  string
		expectHTML  bool
	}{
		{
			name: "http URL success",
			setupFunc: func(t *testing.T) (string, func()) {
				server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusOK)
					_, _ = w.Write([]byte("Sentence 1 with 7 numbers 1, 2, 3"))
				}))
				return server.URL, server.Close
			},
			expectData: "Sentence 1 with 7 numbers 1, 2, 3",
		},
		{
			name: "http URL serving HTML",
			setupFunc: func(t *testing.T) (string, func()) {
				server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.Header().Set("Content-Type", "text/html; charset=utf-8")
					_, _ = w.Write([]byte("<p>Hello.</p>"))
				}))
				return server.URL, server.Close
			},
			expectData: "<p>Hello.</p>",
			expectHTML: true,
		},
		{
			name: "http URL with error status",
			setupFunc: func(t *testing.T) (string, func()) {
				server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusNotFound)
					_, _ = w.Write([]byte("not found"))
				}))
				return server.URL, server.Close
			},
			expectError: true,
		},
		{
			name: "local file success",
			setupFunc: func(t *testing.T) (string, func()) {
				path := filepath.Join(t.TempDir(), "input.txt")
				if err := os.WriteFile(path, []byte("test content from file"), 0o644); err != nil {
					t.Fatalf("Failed to write temp file: %v", err)
				}
				return path, func() {}
			},
			expectData: "test content from file",
		},
		{
			name: "local HTML file",
			setupFunc: func(t *testing.T) (string, func()) {
				path := filepath.Join(t.TempDir(), "page.html")
				if err := os.WriteFile(path, []byte("<p>Hi.</p>"), 0o644); err != nil {
					t.Fatalf("Failed to write temp file: %v", err)
				}
				return path, func() {}
			},
			expectData: "<p>Hi.</p>",
			expectHTML: true,
		},
		{
			name: "directory",
			setupFunc: func(t *testing.T) (string, func()) {
				return t.TempDir(), func() {}
			},
			expectError: true,
		},
		{
			name:        "non-existent file",
			source:      "/path/that/does/not/exist.txt",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := tt.source
			if tt.setupFunc != nil {
				var cleanup func()
				source, cleanup = tt.setupFunc(t)
				defer cleanup()
			}

			doc, err := fetch.GetContent(context.Background(), source)
			if tt.expectError {
				if err == nil {
					doc.Close()
					t.Errorf("GetContent() expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("GetContent() error = %v, expected no error", err)
			}
			defer doc.Close()

			data, err := io.ReadAll(doc)
			if err != nil {
				t.Fatalf("Failed to read from document: %v", err)
			}
			if string(data) != tt.expectData {
				t.Errorf("GetContent() data = %q, expected %q", string(data), tt.expectData)
			}
			if doc.IsHTML() != tt.expectHTML {
				t.Errorf("IsHTML() = %v, expected %v", doc.IsHTML(), tt.expectHTML)
			}
		})
	}
}

func TestGetContentStdin(t *testing.T) {
	doc, err := fetch.GetContent(context.Background(), "-")
	if err != nil {
		t.Fatalf("GetContent() error = %v, expected no error for stdin", err)
	}
	if doc == nil || doc.Source != "-" {
		t.Fatalf("GetContent() for stdin should return a document named %q", "-")
	}
	// closing must not close the process stdin
	if err := doc.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestGetContentRejectsLargeResponses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "999999999999")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	_, err := fetch.GetContent(context.Background(), server.URL)
	if !errors.Is(err, fetch.ErrTooLarge) {
		t.Fatalf("GetContent() error = %v, want ErrTooLarge", err)
	}
	if !strings.Contains(err.Error(), "GiB") && !strings.Contains(err.Error(), "TiB") {
		t.Errorf("GetContent() error should give a human readable size, got %v", err)
	}
}

func TestGetContentCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("late"))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fetch.GetContent(ctx, server.URL)
	if err == nil || !strings.Contains(err.Error(), "failed to fetch URL") {
		t.Errorf("GetContent() with cancelled context error = %v, want fetch failure", err)
	}
}

func TestReadAll(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.htm")
	if err := os.WriteFile(path, []byte("<p>Paid $200.</p>"), 0o644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}

	text, isHTML, err := fetch.ReadAll(context.Background(), path)
	if err != nil {
		t.Fatalf("ReadAll() unexpected error: %v", err)
	}
	if text != "<p>Paid $200.</p>" || !isHTML {
		t.Errorf("ReadAll() = (%q, %v), want (%q, true)", text, isHTML, "<p>Paid $200.</p>")
	}
}

func TestIsHTML(t *testing.T) {
	tests := []struct {
		source      string
		contentType string
		want        bool
	}{
		{"page.html", "", true},
		{"PAGE.HTM", "", true},
		{"notes.txt", "", false},
		{"https://example.com/", "text/html; charset=utf-8", true},
		{"https://example.com/a.html", "text/plain", false},
		{"https://example.com/feed", "application/xhtml+xml", true},
		{"report.html", "not a media type;;", true},
	}

	for _, tt := range tests {
		t.Run(tt.source+" "+tt.contentType, func(t *testing.T) {
			if got := fetch.IsHTML(tt.source, tt.contentType); got != tt.want {
				t.Errorf("IsHTML(%q, %q) = %v, want %v", tt.source, tt.contentType, got, tt.want)
			}
		})
	}
}
