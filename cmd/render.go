package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"corpus/internal/config"
	"corpus/pkg/logger"
	"corpus/pkg/render"
)

// renderCommand constructs the 'render' subcommand that pretty-prints a
// corpus document in the terminal.
func renderCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <path>",
		Short: "Renders a corpus document in the terminal",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			wrap, _ := cmd.Flags().GetInt("wrap")
			style, _ := cmd.Flags().GetString("style")

			relPath := args[0]
			content, err := os.ReadFile(filepath.Join(cfg.Corpus.Root, filepath.FromSlash(relPath)))
			if err != nil {
				// also accept paths given relative to the working directory
				content, err = os.ReadFile(relPath)
			}
			if err != nil {
				logger.Fatal(ctx, "could not read document", zap.String("path", relPath), zap.Error(err))
			}

			terminal, err := render.New(render.Options{WordWrap: wrap, Style: style})
			if err != nil {
				logger.Fatal(ctx, "could not create renderer", zap.Error(err))
			}

			out, err := terminal.Render(content)
			if err != nil {
				logger.Fatal(ctx, "could not render document", zap.Error(err))
			}

			fmt.Print(out) //nolint: forbidigo
		},
	}

	cmd.Flags().Int("wrap", 80, "Word wrap column")
	cmd.Flags().String("style", "", "Glamour style (dark, light, notty); auto when empty")

	return cmd
}
