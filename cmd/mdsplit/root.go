package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dgallion1/mdsplit/internal/config"
	"github.com/dgallion1/mdsplit/internal/doctree"
	"github.com/dgallion1/mdsplit/internal/parser"
	"github.com/dgallion1/mdsplit/internal/splitter"
	"github.com/dgallion1/mdsplit/internal/tokenizer"
	"github.com/spf13/cobra"
)

var (
	flagModel     string
	flagLimit     int
	flagSeparator string
)

var rootCmd = &cobra.Command{
	Use:   "mdsplit [file]",
	Short: "Split documents into token-bounded sections",
	Long: `mdsplit splits a Markdown document (or txt/html/csv/pdf/docx) into
sections that each fit within a GPT token limit, preserving heading
structure where possible and falling back to sentence boundaries
only when a single section is too large.

Reads from stdin when no file is given. Sections are printed joined
by the separator line.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSplit,
}

func init() {
	rootCmd.Flags().StringVarP(&flagModel, "model", "m", tokenizer.DefaultModel, "Model whose tokenizer sizes the sections")
	rootCmd.Flags().IntVarP(&flagLimit, "limit", "l", 0, "Maximum tokens per section (0 = model context size)")
	rootCmd.Flags().StringVarP(&flagSeparator, "separator", "s", config.DefaultSeparator, "Separator printed between sections")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSplit(cmd *cobra.Command, args []string) error {
	tree, err := loadTree(args)
	if err != nil {
		return err
	}

	model := flagModel
	counter, err := tokenizer.ForModel(model)
	if err != nil {
		return err
	}

	limit := flagLimit
	if limit <= 0 {
		limit = tokenizer.ContextSize(model)
	}

	log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
	sp, err := splitter.New(limit, counter, splitter.SentenceSegmenter{}, log)
	if err != nil {
		return err
	}

	sections := sp.Split(tree)
	texts := make([]string, 0, len(sections))
	for _, sec := range sections {
		texts = append(texts, sec.Text)
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(texts, "\n"+flagSeparator+"\n"))
	return nil
}

func loadTree(args []string) (*doctree.Node, error) {
	if len(args) == 0 {
		p := &parser.MarkdownParser{}
		return p.Parse(os.Stdin, "stdin.md")
	}

	name := filepath.Base(args[0])
	p, err := parser.ForFile(name)
	if err != nil {
		return nil, err
	}
	if pp, ok := p.(*parser.PDFParser); ok {
		pp.FallbackPdftotext = true
	}

	f, err := os.Open(args[0])
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return p.Parse(f, name)
}
