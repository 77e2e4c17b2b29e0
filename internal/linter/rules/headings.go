package rules

import (
	"context"
	"fmt"

	"corpus/pkg/domain"
)

// RuleHeadings is the name the heading rule reports findings under.
const RuleHeadings = "headings"

// Headings verifies document structure: exactly one top-level heading and no
// skipped heading levels (an H2 followed directly by an H4, for example).
type Headings struct{}

// Name implements Rule.
func (Headings) Name() string { return RuleHeadings }

// Check implements Rule.
func (h Headings) Check(_ context.Context, in Input) []domain.Finding {
	var findings []domain.Finding

	var h1Lines []int
	for _, heading := range in.Doc.Headings {
		if heading.Level == 1 {
			h1Lines = append(h1Lines, heading.Line)
		}
	}

	switch {
	case len(h1Lines) == 0:
		findings = append(findings, domain.Finding{
			Rule:     RuleHeadings,
			Severity: domain.SeverityWarning,
			Message:  "document has no top-level heading",
		})
	case len(h1Lines) > 1:
		findings = append(findings, domain.Finding{
			Rule:     RuleHeadings,
			Severity: domain.SeverityWarning,
			Line:     h1Lines[1],
			Message:  fmt.Sprintf("document has %d top-level headings, expected one", len(h1Lines)),
		})
	}

	prev := 0
	for _, heading := range in.Doc.Headings {
		if prev > 0 && heading.Level > prev+1 {
			findings = append(findings, domain.Finding{
				Rule:     RuleHeadings,
				Severity: domain.SeverityWarning,
				Line:     heading.Line,
				Message:  fmt.Sprintf("heading level jumps from %d to %d", prev, heading.Level),
			})
		}
		prev = heading.Level
	}

	return findings
}
