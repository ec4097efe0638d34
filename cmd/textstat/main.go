package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/chriscorrea/textstat/internal/app"
	"github.com/chriscorrea/textstat/internal/config"
	"github.com/chriscorrea/textstat/internal/spinner"
)

// buildConfig constructs an app.Config from layered settings and arguments
func buildConfig(cmd *cobra.Command, args []string) (app.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")

	settings, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return app.Config{}, err
	}

	return app.Config{
		InputLocale:  args[0],
		OutputLocale: args[1],
		Input:        args[2],
		Output:       args[3],
		Format:       settings.Format,
		Segmenter:    settings.Segmenter,
		Selector:     settings.Selector,
		HTML:         settings.HTML,
		Quiet:        settings.Quiet,
		Debug:        settings.Debug,
	}, nil
}

// setupLogger configures the default slog logger based on debug mode
func setupLogger(debug bool) {
	var level slog.Level
	if debug {
		level = slog.LevelDebug
	} else {
		level = slog.LevelError
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

var rootCmd = &cobra.Command{
	Use:   "textstat <input-locale> <output-locale> <input> <output>",
	Short: "Collect sentence, word, number, amount and date statistics from a text",
	Long: `Textstat reads a document written in one locale and writes a report of its
sentences, words, numbers, currency amounts and dates in another locale.
The input may be a file, a URL or "-" for standard input; the output is a
file or "-" for standard output.

Examples:
  textstat en_US en_US article.txt report.txt
  textstat ru_RU en_US https://example.ru/news.html -
  cat notes.txt | textstat de_DE de_DE - - --format markdown`,
	Args:          cobra.ExactArgs(4),
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// build config from flags, environment, config file and arguments
		cfg, err := buildConfig(cmd, args)
		if err != nil {
			return fmt.Errorf("configuration error: %w", err)
		}

		// configure logging pending debug flag
		setupLogger(cfg.Debug)

		// create context with signal handling for graceful shutdown
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		return app.Run(ctx, cfg)
	},
}

func init() {
	config.RegisterFlags(rootCmd.Flags())
	_ = rootCmd.Flags().MarkHidden("debug")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		color.NoColor = !spinner.IsTerminal(os.Stderr)
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
