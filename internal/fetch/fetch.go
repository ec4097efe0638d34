// Package fetch reads the document to analyze from a file, stdin or an http(s) URL.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Size limits to prevent memory overload; a document is read fully before analysis
const (
	MaxFileSizeBytes = 50 * 1024 * 1024  // 50MB limit for files and stdin
	MaxHTTPSizeBytes = 100 * 1024 * 1024 // 100MB limit for HTTP content (may not have Content-Length)
)

// HTTPRequestTimeout bounds a whole HTTP fetch
const HTTPRequestTimeout = 30 * time.Second

// specific timeout thresholds (based on HTTPRequestTimeout)
var (
	HTTPDialTimeout           = HTTPRequestTimeout / 6 // max time to wait for network connection
	HTTPTLSTimeout            = HTTPRequestTimeout / 6 // max time to wait for TLS handshake
	HTTPResponseHeaderTimeout = HTTPRequestTimeout / 2 // max time for response headers
)

// ErrTooLarge is returned when a source exceeds its size limit.
var ErrTooLarge = errors.New("content exceeds size limit")

// Document is an opened source together with what is known about its type.
type Document struct {
	io.ReadCloser

	// Source is the name the document was requested by
	Source string
	// ContentType is the media type reported by an HTTP server, empty otherwise
	ContentType string
}

// IsHTML reports whether the document looks like HTML, judging by the server's
// content type or, for files, by the extension.
func (d *Document) IsHTML() bool {
	return IsHTML(d.Source, d.ContentType)
}

// limitedReadCloser wraps an io.ReadCloser to enforce size limits
type limitedReadCloser struct {
	io.ReadCloser
	N      int64  // max bytes remaining
	limit  int64  // the original limit, for error messages
	source string // for error messages
}

func (l *limitedReadCloser) Read(p []byte) (n int, err error) {
	if l.N <= 0 {
		return 0, fmt.Errorf("%w: %q is larger than %s", ErrTooLarge, l.source, humanize.IBytes(uint64(l.limit)))
	}
	if int64(len(p)) > l.N {
		p = p[0:l.N]
	}
	n, err = l.ReadCloser.Read(p)
	l.N -= int64(n)
	return
}

func limited(rc io.ReadCloser, limit int64, source string) *limitedReadCloser {
	return &limitedReadCloser{ReadCloser: rc, N: limit, limit: limit, source: source}
}

// httpClient is a shared HTTP client with timeouts to prevent indefinite hangs
var httpClient = &http.Client{
	Timeout: HTTPRequestTimeout,
	Transport: &http.Transport{
		DialContext: (&net.Dialer{
			Timeout: HTTPDialTimeout,
		}).DialContext,
		TLSHandshakeTimeout:   HTTPTLSTimeout,
		ResponseHeaderTimeout: HTTPResponseHeaderTimeout,
		DisableKeepAlives:     true,
	},
}

// GetContent opens a source for reading. It supports three types of sources:
//   - "-" reads from standard input
//   - URLs starting with "http://" or "https://" are fetched via HTTP
//   - everything else is treated as a local file path
//
// ctx allows for cancellation and timeout control of fetch operations.
func GetContent(ctx context.Context, source string) (*Document, error) {
	switch {
	case source == "-":
		// stdin is useful for piping content directly into the program
		return &Document{
			ReadCloser: limited(io.NopCloser(os.Stdin), MaxFileSizeBytes, "stdin"),
			Source:     source,
		}, nil
	case strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://"):
		return fetchURL(ctx, source)
	default:
		return fetchFile(source)
	}
}

// ReadAll reads a whole source into a string and reports whether it is HTML.
func ReadAll(ctx context.Context, source string) (string, bool, error) {
	doc, err := GetContent(ctx, source)
	if err != nil {
		return "", false, err
	}
	defer doc.Close()

	data, err := io.ReadAll(doc)
	if err != nil {
		return "", false, fmt.Errorf("failed to read %q: %w", source, err)
	}
	return string(data), doc.IsHTML(), nil
}

// fetchURL retrieves content from an HTTP or HTTPS URL
func fetchURL(ctx context.Context, url string) (*Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for URL %q: %w", url, err)
	}
	req.Header.Set("User-Agent", "textstat/0.1")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL %q: %w", url, err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("HTTP request failed for URL %q: status %d %s", url, resp.StatusCode, resp.Status)
	}

	// check content-length header if present to fail before reading
	if contentLength := resp.Header.Get("Content-Length"); contentLength != "" {
		if size, err := strconv.ParseInt(contentLength, 10, 64); err == nil && size > MaxHTTPSizeBytes {
			resp.Body.Close()
			return nil, fmt.Errorf("%w: %q is %s (limit %s)", ErrTooLarge, url,
				humanize.IBytes(uint64(size)), humanize.IBytes(MaxHTTPSizeBytes))
		}
	}

	return &Document{
		ReadCloser:  limited(resp.Body, MaxHTTPSizeBytes, url),
		Source:      url,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}

// fetchFile opens a local file for reading with better error messages
func fetchFile(path string) (*Document, error) {
	fileInfo, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("file %q does not exist", path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to access file %q: %w", path, err)
	}
	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%q is a directory", path)
	}

	if fileInfo.Size() > MaxFileSizeBytes {
		return nil, fmt.Errorf("%w: file %q is %s (limit %s)", ErrTooLarge, path,
			humanize.IBytes(uint64(fileInfo.Size())), humanize.IBytes(MaxFileSizeBytes))
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %q: %w", path, err)
	}

	return &Document{ReadCloser: file, Source: path}, nil
}

// IsHTML reports whether a source with the given content type is HTML.
// Without a content type the file extension decides.
func IsHTML(source, contentType string) bool {
	if contentType != "" {
		mediaType, _, err := mime.ParseMediaType(contentType)
		if err == nil {
			return mediaType == "text/html" || mediaType == "application/xhtml+xml"
		}
	}

	switch strings.ToLower(filepath.Ext(source)) {
	case ".html", ".htm", ".xhtml":
		return true
	}
	return false
}
