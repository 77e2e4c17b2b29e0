// Package ingest walks the corpus directory, parses Markdown files into
// documents and keeps the storage layer in sync with what is on disk. Every
// new content revision is handed to the linter for checking.
package ingest

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"corpus/internal/linter"
	"corpus/pkg/domain"
	"corpus/pkg/logger"
	"corpus/pkg/markdown"
	"corpus/pkg/metrics"
	"corpus/pkg/storage"
)

// parseConcurrency bounds how many files a full sync parses at once.
const parseConcurrency = 8

// Options configure the ingester.
type Options struct {
	// Root is the corpus root directory.
	Root string
	// IgnoreGlobs are path patterns (relative to Root, forward slashes) that
	// are skipped during ingestion. Matching directories are skipped entirely.
	IgnoreGlobs []string
}

// Ingester synchronizes the corpus directory with storage.
type Ingester struct {
	options Options
	storage storage.Storage
	linter  linter.Linter
}

// New creates an Ingester for the given corpus root.
func New(storage storage.Storage, linter linter.Linter, options Options) *Ingester {
	return &Ingester{
		options: options,
		storage: storage,
		linter:  linter,
	}
}

// ignored reports whether the corpus-relative path matches any ignore glob.
// Globs are matched against the full relative path and against the base name.
func (i *Ingester) ignored(relPath string) bool {
	base := path.Base(relPath)
	for _, glob := range i.options.IgnoreGlobs {
		if ok, _ := path.Match(glob, relPath); ok {
			return true
		}
		if ok, _ := path.Match(glob, base); ok {
			return true
		}
	}

	return false
}

// isMarkdown reports whether the path looks like a corpus document.
func isMarkdown(relPath string) bool {
	ext := strings.ToLower(path.Ext(relPath))

	return ext == ".md" || ext == ".markdown"
}

// kindOf derives the document kind from front matter with path-based
// fallbacks: README files are "readme", files under an interview directory
// are "interview", everything else is a note.
func kindOf(fm markdown.FrontMatter, relPath string) domain.DocumentKind {
	if fm.Kind != "" {
		return domain.DocumentKind(fm.Kind)
	}

	base := strings.ToLower(path.Base(relPath))
	if base == "readme.md" {
		return domain.KindReadme
	}

	for _, part := range strings.Split(path.Dir(relPath), "/") {
		if strings.Contains(strings.ToLower(part), "interview") {
			return domain.KindInterview
		}
	}

	return domain.KindNote
}

// topicsOf derives the document topics from front matter, falling back to the
// immediate directory name. Root-level files get no topic.
func topicsOf(fm markdown.FrontMatter, relPath string) []string {
	if len(fm.Topics) > 0 {
		return fm.Topics
	}

	dir := path.Dir(relPath)
	if dir == "." {
		return nil
	}

	return []string{path.Base(dir)}
}

// titleOf picks the document title: front matter, then first H1, then the
// file name without extension.
func titleOf(parsed *markdown.Document, relPath string) string {
	if parsed.Title != "" {
		return parsed.Title
	}

	base := path.Base(relPath)

	return strings.TrimSuffix(base, path.Ext(base))
}

// SyncFile ingests a single file. It parses the content, upserts the document
// row and, when the content changed, replaces extracted questions and
// enqueues a lint run. Unchanged content is a no-op.
func (i *Ingester) SyncFile(ctx context.Context, relPath string) (*domain.Document, error) {
	relPath = filepath.ToSlash(relPath)

	content, err := os.ReadFile(filepath.Join(i.options.Root, filepath.FromSlash(relPath)))
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", relPath, err)
	}

	parsed, err := markdown.Parse(content)
	if err != nil {
		return nil, fmt.Errorf("could not parse %q: %w", relPath, err)
	}

	doc := domain.Document{
		Path:     relPath,
		Title:    titleOf(parsed, relPath),
		Kind:     kindOf(parsed.FrontMatter, relPath),
		Topics:   topicsOf(parsed.FrontMatter, relPath),
		Checksum: linter.Checksum(content),
		Outline:  parsed.Outline(),
	}

	stored, changed, err := i.storage.UpsertDocument(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("could not upsert %q: %w", relPath, err)
	}

	if !changed {
		return stored, nil
	}

	metrics.DocumentsIngested.Inc()

	// always replace, with the empty set for non-interview kinds, so a
	// document switching kinds does not keep its old question rows
	var questions []domain.Question
	if stored.Kind == domain.KindInterview {
		questions = make([]domain.Question, 0, len(parsed.Questions))
		for pos, q := range parsed.Questions {
			questions = append(questions, domain.Question{
				DocumentID: stored.ID,
				Text:       q.Text,
				Topic:      q.Topic,
				Position:   pos,
			})
		}
	}
	if err := i.storage.ReplaceQuestions(ctx, stored.ID, questions...); err != nil {
		return nil, fmt.Errorf("could not replace questions for %q: %w", relPath, err)
	}

	if _, err := i.linter.Enqueue(ctx, *stored); err != nil {
		return nil, fmt.Errorf("could not enqueue lint for %q: %w", relPath, err)
	}

	logger.Debug(ctx, "document ingested",
		zap.String("path", relPath),
		zap.String("checksum", stored.Checksum))

	return stored, nil
}

// Remove handles a file disappearing from disk: the document and its reports
// are soft-deleted and its questions cleared. Unknown paths are ignored.
func (i *Ingester) Remove(ctx context.Context, relPath string) error {
	relPath = filepath.ToSlash(relPath)

	doc, err := i.storage.DeleteDocumentByPath(ctx, relPath)
	if err != nil {
		return fmt.Errorf("could not delete %q: %w", relPath, err)
	}
	if doc == nil {
		return nil
	}

	if err := i.storage.DeleteReportsByDocument(ctx, doc.ID); err != nil {
		return fmt.Errorf("could not delete reports for %q: %w", relPath, err)
	}

	if err := i.storage.ReplaceQuestions(ctx, doc.ID); err != nil {
		return fmt.Errorf("could not clear questions for %q: %w", relPath, err)
	}

	logger.Info(ctx, "document removed", zap.String("path", relPath))

	return nil
}

// Sync walks the corpus root and ingests every Markdown file, then removes
// documents whose files no longer exist. It returns the number of live
// documents after the sync.
func (i *Ingester) Sync(ctx context.Context) (int, error) {
	var files []string

	err := filepath.WalkDir(i.options.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(i.options.Root, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if rel == "." {
			return nil
		}

		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") || i.ignored(rel) {
				return filepath.SkipDir
			}

			return nil
		}

		if !isMarkdown(rel) || i.ignored(rel) {
			return nil
		}
		files = append(files, rel)

		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("could not walk corpus root: %w", err)
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(parseConcurrency)
	for _, relPath := range files {
		group.Go(func() error {
			_, err := i.SyncFile(groupCtx, relPath)

			return err
		})
	}
	if err := group.Wait(); err != nil {
		return 0, fmt.Errorf("could not sync corpus: %w", err)
	}

	seen := make(map[string]struct{}, len(files))
	for _, f := range files {
		seen[f] = struct{}{}
	}

	stored, err := i.storage.DocumentPaths(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not list stored paths: %w", err)
	}
	for _, p := range stored {
		if _, ok := seen[p]; ok {
			continue
		}
		if err := i.Remove(ctx, p); err != nil {
			return 0, err
		}
	}

	logger.Info(ctx, "corpus synced", zap.Int("documents", len(files)))

	return len(files), nil
}
