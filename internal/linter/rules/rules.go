// Package rules contains the lint rules applied to corpus documents. Each
// rule inspects the parsed structure of a single document and reports
// findings; rules never touch storage so the same set runs identically in the
// background worker and in the offline lint command.
package rules

import (
	"context"

	"corpus/pkg/domain"
	"corpus/pkg/markdown"
)

// Input is everything a rule may look at when checking one document.
type Input struct {
	// Path is the corpus-relative path of the document being checked.
	Path string
	// Doc is the parsed document.
	Doc *markdown.Document
	// Exists reports whether a corpus-relative path refers to an existing file.
	// Used by the link rule; nil disables existence checks.
	Exists func(path string) bool
}

// Rule checks one aspect of a document.
type Rule interface {
	// Name identifies the rule in findings.
	Name() string
	// Check returns the findings for the given document, or nil when clean.
	Check(ctx context.Context, in Input) []domain.Finding
}

// Default returns the standard rule set in execution order.
func Default() []Rule {
	return []Rule{
		FrontMatter{},
		Headings{},
		CodeFence{},
		Links{},
	}
}

// Run applies all rules to the input and collects their findings.
func Run(ctx context.Context, ruleSet []Rule, in Input) []domain.Finding {
	findings := []domain.Finding{}
	for _, r := range ruleSet {
		findings = append(findings, r.Check(ctx, in)...)
	}

	return findings
}
