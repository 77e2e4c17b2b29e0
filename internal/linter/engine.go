package linter

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"corpus/internal/linter/rules"
	"corpus/pkg/domain"
	"corpus/pkg/markdown"
)

// Engine runs the rule set against documents on disk. It is shared by the
// background worker and the offline lint command so both produce identical
// findings for the same file contents.
type Engine struct {
	// root is the corpus root directory. All document paths are relative to it.
	root string
	// rules is the ordered rule set applied to every document.
	rules []rules.Rule
}

// NewEngine creates an Engine rooted at the given corpus directory using the
// default rule set.
func NewEngine(root string) *Engine {
	return &Engine{
		root:  root,
		rules: rules.Default(),
	}
}

// Checksum returns the hex-encoded SHA-256 digest of the given content. It is
// the revision identity of a document: reports and queue jobs are keyed by it.
func Checksum(content []byte) string {
	sum := sha256.Sum256(content)

	return hex.EncodeToString(sum[:])
}

// Exists reports whether the corpus-relative path refers to a regular file
// under the engine root.
func (e *Engine) Exists(relPath string) bool {
	info, err := os.Stat(filepath.Join(e.root, filepath.FromSlash(relPath)))
	if err != nil {
		return false
	}

	return info.Mode().IsRegular()
}

// Lint parses the given content as a corpus document and runs the rule set
// against it. relPath is used for resolving relative links.
func (e *Engine) Lint(ctx context.Context, relPath string, content []byte) ([]domain.Finding, error) {
	doc, err := markdown.Parse(content)
	if err != nil {
		return nil, fmt.Errorf("could not parse document: %w", err)
	}

	return rules.Run(ctx, e.rules, rules.Input{
		Path:   relPath,
		Doc:    doc,
		Exists: e.Exists,
	}), nil
}

// LintFile reads and lints the document at the given corpus-relative path.
// The returned checksum identifies the exact content revision that was
// checked.
func (e *Engine) LintFile(ctx context.Context, relPath string) ([]domain.Finding, string, error) {
	content, err := os.ReadFile(filepath.Join(e.root, filepath.FromSlash(relPath)))
	if err != nil {
		return nil, "", fmt.Errorf("could not read document: %w", err)
	}

	findings, err := e.Lint(ctx, relPath, content)
	if err != nil {
		return nil, "", err
	}

	return findings, Checksum(content), nil
}
