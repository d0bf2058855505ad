package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	xdgadapter "github.com/bnema/dockyard/internal/infrastructure/xdg"
	"github.com/bnema/dockyard/internal/logging"
)

const dirPerm = 0o755

// docFormat is one output of gen-docs.
type docFormat struct {
	ext        string
	defaultDir func() (string, error)
	generate   func(root *cobra.Command, dir string) error
}

var docFormats = map[string]docFormat{
	"man": {
		ext:        ".1",
		defaultDir: func() (string, error) { return xdgadapter.New().ManDir() },
		generate:   writeManPages,
	},
	"markdown": {
		ext:        ".md",
		defaultDir: func() (string, error) { return "docs", nil },
		generate:   doc.GenMarkdownTree,
	},
}

var (
	genDocsOutputDir string
	genDocsFormat    string
)

var genDocsCmd = &cobra.Command{
	Use:   "gen-docs",
	Short: "Write man pages or markdown for every dockyard command",
	Long: `Gen-docs renders one page per dockyard command (run, demo, doctor,
config and the rest) with its flags and examples.

Formats:
  man       groff pages, installed under $XDG_DATA_HOME/man/man1 so that
            'man dockyard-run' works without touching MANPATH
  markdown  one .md file per command, written to ./docs

Examples:
  dockyard gen-docs
  dockyard gen-docs --format markdown
  dockyard gen-docs --format man --output ./man`,
	RunE: runGenDocs,
}

func init() {
	rootCmd.AddCommand(genDocsCmd)
	genDocsCmd.Flags().StringVarP(&genDocsOutputDir, "output", "o", "", "directory for the generated pages")
	genDocsCmd.Flags().StringVarP(&genDocsFormat, "format", "f", "man", "page format: "+strings.Join(docFormatNames(), ", "))
}

func docFormatNames() []string {
	names := make([]string, 0, len(docFormats))
	for name := range docFormats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// runGenDocs runs without the app, so it logs through the environment
// logger only.
func runGenDocs(cmd *cobra.Command, _ []string) error {
	logger := logging.NewFromEnv()

	format, ok := docFormats[genDocsFormat]
	if !ok {
		return fmt.Errorf("unsupported format %q (use: %s)", genDocsFormat, strings.Join(docFormatNames(), ", "))
	}

	dir := genDocsOutputDir
	if dir == "" {
		var err error
		if dir, err = format.defaultDir(); err != nil {
			return fmt.Errorf("resolve %s directory: %w", genDocsFormat, err)
		}
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	// Pages must not change between two runs on the same tree.
	root := cmd.Root()
	root.DisableAutoGenTag = true
	if err := format.generate(root, dir); err != nil {
		return fmt.Errorf("generate %s pages: %w", genDocsFormat, err)
	}

	pages := listPages(cmd.OutOrStdout(), dir, format.ext)
	if genDocsFormat == "man" {
		fmt.Fprintln(cmd.OutOrStdout(), "Run 'mandb' if 'man dockyard' is not found yet.")
	}

	logger.Debug().
		Str("format", genDocsFormat).
		Str("dir", dir).
		Int("pages", pages).
		Msg("docs generated")
	return nil
}

func writeManPages(root *cobra.Command, dir string) error {
	now := time.Now()
	return doc.GenManTree(root, &doc.GenManHeader{
		Title:   "DOCKYARD",
		Section: "1",
		Source:  buildInfo.Summary(),
		Manual:  "Dockyard Manual",
		Date:    &now,
	}, dir)
}

// listPages prints the pages with ext found in dir and returns how many
// there were. A directory that cannot be read lists nothing.
func listPages(out io.Writer, dir, ext string) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}

	fmt.Fprintf(out, "Wrote pages to %s\n", dir)
	count := 0
	for _, e := range entries {
		if filepath.Ext(e.Name()) != ext {
			continue
		}
		fmt.Fprintf(out, "  - %s\n", e.Name())
		count++
	}
	return count
}
