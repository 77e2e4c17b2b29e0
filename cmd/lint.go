package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"corpus/internal/config"
	"corpus/internal/linter"
	"corpus/pkg/domain"
	"corpus/pkg/logger"
)

// lintCommand constructs the 'lint' subcommand that checks the given
// documents, or the whole corpus when no paths are given, offline without a
// database or queue. It prints every finding and exits
// non-zero when any ERROR severity finding exists, which makes it usable as a
// CI gate.
func lintCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lint [path...]",
		Short: "Lints the corpus offline and exits non-zero on errors",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			root := cfg.Corpus.Root
			if flagRoot, _ := cmd.Flags().GetString("root"); flagRoot != "" {
				root = flagRoot
			}

			engine := linter.NewEngine(root)

			// explicit paths lint only those documents
			files := make([]string, 0, len(args))
			for _, arg := range args {
				files = append(files, filepath.ToSlash(arg))
			}
			if len(files) > 0 {
				lintFiles(ctx, engine, files)

				return
			}

			err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if d.IsDir() {
					if p != root && strings.HasPrefix(d.Name(), ".") {
						return filepath.SkipDir
					}

					return nil
				}
				ext := strings.ToLower(filepath.Ext(p))
				if ext != ".md" && ext != ".markdown" {
					return nil
				}
				rel, err := filepath.Rel(root, p)
				if err != nil {
					return err
				}
				files = append(files, filepath.ToSlash(rel))

				return nil
			})
			if err != nil {
				logger.Fatal(ctx, "could not walk corpus root", zap.Error(err))
			}

			lintFiles(ctx, engine, files)
		},
	}

	cmd.Flags().String("root", "", "Corpus root to lint (defaults to the configured root)")

	return cmd
}

// lintFiles runs the engine over the given corpus-relative paths, prints
// every finding and exits non-zero when any ERROR severity finding exists.
func lintFiles(ctx context.Context, engine *linter.Engine, files []string) {
	errorCount := 0
	for _, relPath := range files {
		findings, _, err := engine.LintFile(ctx, relPath)
		if err != nil {
			logger.Fatal(ctx, "could not lint document", zap.String("path", relPath), zap.Error(err))
		}

		for _, f := range findings {
			if f.Severity == domain.SeverityError {
				errorCount++
			}
			printFinding(relPath, f)
		}
	}

	//nolint: forbidigo
	fmt.Printf("%d documents checked, %d errors\n", len(files), errorCount)
	if errorCount > 0 {
		os.Exit(1)
	}
}

// printFinding writes one finding in a grep-friendly path:line format.
func printFinding(path string, f domain.Finding) {
	location := path
	if f.Line > 0 {
		location = fmt.Sprintf("%s:%d", path, f.Line)
	}

	fmt.Printf("%s: %s [%s] %s\n", location, f.Severity, f.Rule, f.Message) //nolint: forbidigo
}
