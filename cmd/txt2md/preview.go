// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/pdiddy/txt2md/internal/convert"
	"github.com/pdiddy/txt2md/internal/preview"
	"github.com/pdiddy/txt2md/internal/synth"
	"github.com/pdiddy/txt2md/pkg/types"
)

var previewCmd = &cobra.Command{
	Use:   "preview <file>",
	Short: "Render a Markdown file, or a file converted on the fly",
	Long: `Preview renders Markdown for reading. A .md file is rendered as is; any
other supported file is converted first, exactly as convert would, without
writing output or history.

On a terminal the Markdown is styled; when stdout is redirected the raw
Markdown is printed unless --force-color is given. --html prints an HTML
fragment instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	f := previewCmd.Flags()
	f.Bool("html", false, "render as HTML")
	f.String("style", preview.DefaultStyle, "terminal style: dark, light, notty, dracula, ...")
	f.Int("width", preview.DefaultWidth, "word-wrap width for terminal output")
	f.Bool("force-color", false, "style output even when stdout is not a terminal")

	_ = viper.BindPFlag("preview.style", f.Lookup("style"))
	_ = viper.BindPFlag("preview.width", f.Lookup("width"))

	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(viper.GetViper())
	asHTML, _ := cmd.Flags().GetBool("html")
	forceColor, _ := cmd.Flags().GetBool("force-color")

	doc, err := loadMarkdown(args[0], cfg.Conversion)
	if err != nil {
		return err
	}

	styled := forceColor || term.IsTerminal(int(os.Stdout.Fd()))
	return renderPreview(os.Stdout, doc, cfg.Preview, asHTML, styled)
}

// loadMarkdown returns the file as Markdown, converting non-Markdown input.
func loadMarkdown(path string, cfg types.ConversionConfig) ([]byte, error) {
	if types.DetectFormat(path) == types.FormatMarkdown {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		return data, nil
	}

	router, err := convert.NewRouter(cfg, synth.Synthesizer{})
	if err != nil {
		return nil, err
	}
	md, err := router.Convert(path)
	if err != nil {
		return nil, fmt.Errorf("converting %s: %w", path, err)
	}
	return []byte(md), nil
}

func renderPreview(w io.Writer, doc []byte, cfg types.PreviewConfig, asHTML, styled bool) error {
	switch {
	case asHTML:
		out, err := preview.HTML(doc)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	case styled:
		out, err := preview.Terminal(doc, cfg.Style, cfg.Width)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	default:
		_, err := w.Write(doc)
		return err
	}
}
