package rules

import (
	"context"
	"fmt"

	"corpus/pkg/domain"
)

// RuleFrontMatter is the name the front matter rule reports findings under.
const RuleFrontMatter = "front-matter"

// FrontMatter verifies that a document declares front matter with a title and
// that a declared kind is one of the known values.
type FrontMatter struct{}

// Name implements Rule.
func (FrontMatter) Name() string { return RuleFrontMatter }

// Check implements Rule.
func (f FrontMatter) Check(_ context.Context, in Input) []domain.Finding {
	fm := in.Doc.FrontMatter

	if !fm.Present {
		return []domain.Finding{{
			Rule:     RuleFrontMatter,
			Severity: domain.SeverityWarning,
			Message:  "document has no front matter",
		}}
	}

	var findings []domain.Finding
	if fm.Title == "" {
		findings = append(findings, domain.Finding{
			Rule:     RuleFrontMatter,
			Severity: domain.SeverityWarning,
			Message:  "front matter declares no title",
		})
	}
	if fm.Kind != "" && !domain.KnownKind(domain.DocumentKind(fm.Kind)) {
		findings = append(findings, domain.Finding{
			Rule:     RuleFrontMatter,
			Severity: domain.SeverityError,
			Message:  fmt.Sprintf("unknown document kind %q", fm.Kind),
		})
	}

	return findings
}
