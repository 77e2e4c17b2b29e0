package rules

import (
	"context"
	"fmt"

	"corpus/pkg/domain"
)

// RuleLinks is the name the link rule reports findings under.
const RuleLinks = "internal-links"

// Links verifies that every internal link resolves: file targets must exist in
// the corpus, fragment-only targets must match a heading anchor within the
// linking document. External links are not checked.
type Links struct{}

// Name implements Rule.
func (Links) Name() string { return RuleLinks }

// Check implements Rule.
func (l Links) Check(_ context.Context, in Input) []domain.Finding {
	var findings []domain.Finding
	for _, link := range in.Doc.Links {
		if !link.Internal {
			continue
		}

		target, fragment, err := NormalizeTarget(in.Path, link.Target)
		if err != nil {
			findings = append(findings, domain.Finding{
				Rule:     RuleLinks,
				Severity: domain.SeverityError,
				Line:     link.Line,
				Message:  fmt.Sprintf("unresolvable link %q: %v", link.Target, err),
			})

			continue
		}

		if target == "" {
			// fragment-only link, must match a heading in this document
			if fragment != "" && !hasAnchor(in.Doc.Headings, fragment) {
				findings = append(findings, domain.Finding{
					Rule:     RuleLinks,
					Severity: domain.SeverityError,
					Line:     link.Line,
					Message:  fmt.Sprintf("link %q points to a missing heading", link.Target),
				})
			}

			continue
		}

		if in.Exists != nil && !in.Exists(target) {
			findings = append(findings, domain.Finding{
				Rule:     RuleLinks,
				Severity: domain.SeverityError,
				Line:     link.Line,
				Message:  fmt.Sprintf("link %q points to a missing file", link.Target),
			})
		}
	}

	return findings
}

func hasAnchor(headings []domain.Heading, anchor string) bool {
	for _, h := range headings {
		if h.Anchor == anchor {
			return true
		}
	}

	return false
}
