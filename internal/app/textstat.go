// Package app contains the core application logic for the textstat CLI tool.
// It handles the main business logic separated from CLI concerns.
package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"

	"github.com/chriscorrea/textstat/internal/config"
	"github.com/chriscorrea/textstat/internal/extract"
	"github.com/chriscorrea/textstat/internal/fetch"
	"github.com/chriscorrea/textstat/internal/locale"
	"github.com/chriscorrea/textstat/internal/report"
	"github.com/chriscorrea/textstat/internal/segment"
	"github.com/chriscorrea/textstat/internal/spinner"
)

// Failure classes reported by Run. Test with errors.Is.
var (
	ErrConfig = errors.New("configuration error")
	ErrInput  = errors.New("input error")
	ErrOutput = errors.New("output error")
)

// Config holds all configuration options for one textstat run.
type Config struct {
	InputLocale  string // locale the document is written in
	OutputLocale string // locale of the report
	Input        string // URL, file path, or "-" for stdin
	Output       string // file path, or "-" for stdout
	Format       string // text, markdown, json or yaml
	Segmenter    string // uax29 or prose
	Selector     string // CSS selector for HTML inputs
	HTML         string // auto, main, all or off
	Quiet        bool   // suppress the spinner
	Debug        bool

	// Stdout receives the report when Output is "-". Defaults to os.Stdout.
	Stdout io.Writer
}

// plan is a Config with every identifier resolved.
type plan struct {
	input    language.Tag
	output   language.Tag
	format   report.Format
	kind     segment.Kind
	html     string
	currency currency.Unit
}

// Run reads one document, collects its statistics and writes the report.
//
// Processing Pipeline:
// 1. Resolve locales, format and collaborators; nothing is read on failure
// 2. Read the input and reduce HTML to text
// 3. Extract statistics with input-locale collaborators
// 4. Render with the output locale and write the report in one step
func Run(ctx context.Context, cfg Config) error {
	p, err := resolve(cfg)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	collaborators, err := newCollaborators(p)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}

	sp := spinner.ForTerminal(os.Stderr, cfg.Quiet)
	sp.Start(ctx, "Reading input")
	defer sp.Stop()

	text, err := readText(ctx, cfg, p)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInput, err)
	}

	sp.Phase("Collecting statistics")
	result, err := extract.Extract(text, collaborators)
	if err != nil {
		return fmt.Errorf("failed to collect statistics: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	sp.Phase("Writing report")
	var buf bytes.Buffer
	opts := report.Options{
		Format:   p.format,
		Locale:   p.output,
		Source:   cfg.Input,
		Currency: p.currency,
	}
	if err := report.Write(&buf, opts, result); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	// clear the spinner line before the report can reach the terminal
	sp.Stop()

	if err := writeOutput(cfg, buf.Bytes()); err != nil {
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}
	return nil
}

func resolve(cfg Config) (*plan, error) {
	input, err := locale.Parse(cfg.InputLocale)
	if err != nil {
		return nil, fmt.Errorf("input locale: %w", err)
	}
	output, err := locale.Parse(cfg.OutputLocale)
	if err != nil {
		return nil, fmt.Errorf("output locale: %w", err)
	}
	format, err := report.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}
	kind, err := segment.ParseKind(cfg.Segmenter)
	if err != nil {
		return nil, err
	}

	html := strings.ToLower(strings.TrimSpace(cfg.HTML))
	switch html {
	case "":
		html = config.HTMLAuto
	case config.HTMLAuto, config.HTMLMain, config.HTMLAll, config.HTMLOff:
	default:
		return nil, fmt.Errorf("%w, got %q", config.ErrInvalidHTML, cfg.HTML)
	}

	if strings.TrimSpace(cfg.Output) == "" {
		return nil, errors.New("no output path given")
	}

	return &plan{
		input:  input,
		output: output,
		format: format,
		kind:   kind,
		html:   html,
	}, nil
}

// readText fetches the input and, depending on the HTML mode, reduces it to
// the text that is analyzed.
func readText(ctx context.Context, cfg Config, p *plan) (string, error) {
	content, isHTML, err := fetch.ReadAll(ctx, cfg.Input)
	if err != nil {
		return "", err
	}
	slog.Debug("Input read", "source", cfg.Input, "size", humanize.Bytes(uint64(len(content))), "html", isHTML)

	switch p.html {
	case config.HTMLOff:
		return content, nil
	case config.HTMLAuto:
		if !isHTML && cfg.Selector == "" {
			return content, nil
		}
	}

	// parse source URL for link resolution (if it's a URL)
	var baseURL *url.URL
	if strings.HasPrefix(cfg.Input, "http://") || strings.HasPrefix(cfg.Input, "https://") {
		baseURL, _ = url.Parse(cfg.Input)
	}

	text, err := extract.FromHTML(strings.NewReader(content), cfg.Selector, p.html == config.HTMLAll, baseURL)
	if err != nil {
		return "", fmt.Errorf("failed to extract text: %w", err)
	}
	slog.Debug("HTML reduced to text", "mode", p.html, "size", humanize.Bytes(uint64(len(text))))
	return text, nil
}

// newCollaborators binds segmenters, parsers and collation to the input
// locale, and records the report currency.
func newCollaborators(p *plan) (extract.Collaborators, error) {
	sentences, err := segment.NewSentences(p.kind, p.input)
	if err != nil {
		return extract.Collaborators{}, err
	}

	amounts := locale.NewCurrencyFormat(p.input)
	p.currency = amounts.Unit()

	return extract.Collaborators{
		Sentences: sentences,
		Words:     segment.NewWords(p.input),
		Numbers:   locale.NewNumberFormat(p.input).Parse,
		Amounts:   amounts.Parse,
		Dates:     locale.NewDateFormat(p.input).Parse,
		Compare:   locale.NewCollator(p.input),
	}, nil
}

// writeOutput writes the whole report at once. Files are written to a
// temporary sibling and renamed, so a failed run never leaves a partial report.
func writeOutput(cfg Config, data []byte) error {
	if cfg.Output == "-" {
		w := cfg.Stdout
		if w == nil {
			w = os.Stdout
		}
		_, err := w.Write(data)
		return err
	}

	dir := filepath.Dir(cfg.Output)
	tmp, err := os.CreateTemp(dir, ".textstat-*.tmp")
	if err != nil {
		return fmt.Errorf("report create: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("report write: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("report sync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("report close: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("report chmod: %w", err)
	}
	if err := os.Rename(tmpPath, cfg.Output); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("report rename: %w", err)
	}

	slog.Debug("Report written", "path", cfg.Output, "size", humanize.Bytes(uint64(len(data))))
	return nil
}
