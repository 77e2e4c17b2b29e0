package rules_test

import (
	"context"
	"testing"

	"corpus/internal/linter/rules"
	"corpus/pkg/domain"
	"corpus/pkg/markdown"
)

// parse is a test helper turning raw Markdown into rule input.
func parse(t *testing.T, path, source string, exists func(string) bool) rules.Input {
	t.Helper()

	doc, err := markdown.Parse([]byte(source))
	if err != nil {
		t.Fatalf("could not parse source: %v", err)
	}

	return rules.Input{Path: path, Doc: doc, Exists: exists}
}

func findingsOf(t *testing.T, r rules.Rule, in rules.Input) []domain.Finding {
	t.Helper()

	return r.Check(context.Background(), in)
}

func severities(findings []domain.Finding) (errors, warnings int) {
	for _, f := range findings {
		if f.Severity == domain.SeverityError {
			errors++
		} else {
			warnings++
		}
	}

	return errors, warnings
}

func TestCodeFence_ValidGo(t *testing.T) {
	in := parse(t, "go/slices.md", "# Slices\n\n```go\nfunc sum(xs []int) int {\n\ttotal := 0\n\tfor _, x := range xs {\n\t\ttotal += x\n\t}\n\treturn total\n}\n```\n", nil)

	if f := findingsOf(t, rules.CodeFence{}, in); len(f) != 0 {
		t.Fatalf("expected no findings, got %+v", f)
	}
}

func TestCodeFence_GoSnippetWithoutPackage(t *testing.T) {
	// statements only, no package clause or func wrapper
	in := parse(t, "go/slices.md", "# Slices\n\n```go\nxs := []int{1, 2, 3}\nxs = append(xs, 4)\n```\n", nil)

	if f := findingsOf(t, rules.CodeFence{}, in); len(f) != 0 {
		t.Fatalf("expected no findings, got %+v", f)
	}
}

func TestCodeFence_InvalidGo(t *testing.T) {
	in := parse(t, "go/slices.md", "# Slices\n\n```go\nfunc broken( {\n```\n", nil)

	f := findingsOf(t, rules.CodeFence{}, in)
	errs, _ := severities(f)
	if errs != 1 {
		t.Fatalf("expected one error, got %+v", f)
	}
	if f[0].Line != 3 {
		t.Fatalf("expected finding on line 3, got %d", f[0].Line)
	}
}

func TestCodeFence_InvalidJSON(t *testing.T) {
	in := parse(t, "notes/api.md", "# API\n\n```json\n{\"a\": 1,}\n```\n", nil)

	f := findingsOf(t, rules.CodeFence{}, in)
	if errs, _ := severities(f); errs != 1 {
		t.Fatalf("expected one error, got %+v", f)
	}
}

func TestCodeFence_UnbalancedTypeScript(t *testing.T) {
	in := parse(t, "typescript/generics.md", "# Generics\n\n```typescript\nfunction id<T>(x: T): T {\n  return x;\n```\n", nil)

	f := findingsOf(t, rules.CodeFence{}, in)
	if errs, _ := severities(f); errs != 1 {
		t.Fatalf("expected one error, got %+v", f)
	}
}

func TestCodeFence_BracesInStringsIgnored(t *testing.T) {
	in := parse(t, "typescript/strings.md", "# Strings\n\n```typescript\nconst s = \"{ not a brace\";\nconst t = '}';\n// { comment brace\n```\n", nil)

	if f := findingsOf(t, rules.CodeFence{}, in); len(f) != 0 {
		t.Fatalf("expected no findings, got %+v", f)
	}
}

func TestCodeFence_UnknownLanguageWarns(t *testing.T) {
	// pseudo-code fences are common in notes and must not fail the lint gate
	in := parse(t, "notes/x.md", "# X\n\n```pseudocode\nfor each item: visit(item)\n```\n", nil)

	f := findingsOf(t, rules.CodeFence{}, in)
	errs, warns := severities(f)
	if errs != 0 || warns != 1 {
		t.Fatalf("expected a single warning for unknown language, got %+v", f)
	}
	if f[0].Line != 3 {
		t.Fatalf("expected finding on line 3, got %d", f[0].Line)
	}
}

func TestCodeFence_JSXApostropheInText(t *testing.T) {
	in := parse(t, "react/components.md", "# Components\n\n```jsx\nfunction Hello({name}) {\n  return <p>It's {name}</p>;\n}\n```\n", nil)

	if f := findingsOf(t, rules.CodeFence{}, in); len(f) != 0 {
		t.Fatalf("expected no findings, got %+v", f)
	}
}

func TestCodeFence_MissingLanguageWarns(t *testing.T) {
	in := parse(t, "notes/x.md", "# X\n\n```\nanything goes\n```\n", nil)

	f := findingsOf(t, rules.CodeFence{}, in)
	errs, warns := severities(f)
	if errs != 0 || warns != 1 {
		t.Fatalf("expected a single warning, got %+v", f)
	}
}

func TestLinks_ResolvesExistingFile(t *testing.T) {
	exists := func(p string) bool { return p == "go/maps.md" }
	in := parse(t, "go/slices.md", "# Slices\n\nSee [maps](maps.md).\n", exists)

	if f := findingsOf(t, rules.Links{}, in); len(f) != 0 {
		t.Fatalf("expected no findings, got %+v", f)
	}
}

func TestLinks_MissingFile(t *testing.T) {
	exists := func(string) bool { return false }
	in := parse(t, "go/slices.md", "# Slices\n\nSee [maps](maps.md).\n", exists)

	f := findingsOf(t, rules.Links{}, in)
	if errs, _ := severities(f); errs != 1 {
		t.Fatalf("expected one error, got %+v", f)
	}
	if f[0].Line != 3 {
		t.Fatalf("expected finding on line 3, got %d", f[0].Line)
	}
}

func TestLinks_ExternalIgnored(t *testing.T) {
	exists := func(string) bool { return false }
	in := parse(t, "go/slices.md", "# Slices\n\nSee [the blog](https://go.dev/blog) and [email](mailto:x@example.com).\n", exists)

	if f := findingsOf(t, rules.Links{}, in); len(f) != 0 {
		t.Fatalf("expected no findings, got %+v", f)
	}
}

func TestLinks_FragmentAnchors(t *testing.T) {
	in := parse(t, "go/slices.md", "# Slices\n\n## Growing a Slice\n\nJump to [growing](#growing-a-slice) or [nowhere](#no-such-heading).\n", nil)

	f := findingsOf(t, rules.Links{}, in)
	if errs, _ := severities(f); errs != 1 {
		t.Fatalf("expected one error for the dead anchor, got %+v", f)
	}
}

func TestLinks_EscapingTargetRejected(t *testing.T) {
	in := parse(t, "go/slices.md", "# Slices\n\n[outside](../../secrets.md)\n", func(string) bool { return true })

	f := findingsOf(t, rules.Links{}, in)
	if errs, _ := severities(f); errs != 1 {
		t.Fatalf("expected one error, got %+v", f)
	}
}

func TestHeadings_SingleH1Clean(t *testing.T) {
	in := parse(t, "go/slices.md", "# Slices\n\n## Usage\n\n### Details\n", nil)

	if f := findingsOf(t, rules.Headings{}, in); len(f) != 0 {
		t.Fatalf("expected no findings, got %+v", f)
	}
}

func TestHeadings_MissingAndDuplicateH1(t *testing.T) {
	in := parse(t, "go/slices.md", "## Only a subheading\n", nil)
	f := findingsOf(t, rules.Headings{}, in)
	if _, warns := severities(f); warns != 1 {
		t.Fatalf("expected one warning for missing H1, got %+v", f)
	}

	in = parse(t, "go/slices.md", "# One\n\n# Two\n", nil)
	f = findingsOf(t, rules.Headings{}, in)
	if _, warns := severities(f); warns != 1 {
		t.Fatalf("expected one warning for duplicate H1, got %+v", f)
	}
}

func TestHeadings_LevelJump(t *testing.T) {
	in := parse(t, "go/slices.md", "# Slices\n\n#### Deep\n", nil)

	f := findingsOf(t, rules.Headings{}, in)
	if _, warns := severities(f); warns != 1 {
		t.Fatalf("expected one warning for the level jump, got %+v", f)
	}
}

func TestFrontMatter(t *testing.T) {
	// complete front matter is clean
	in := parse(t, "go/slices.md", "---\ntitle: Slices\nkind: note\ntopics: [go]\n---\n# Slices\n", nil)
	if f := findingsOf(t, rules.FrontMatter{}, in); len(f) != 0 {
		t.Fatalf("expected no findings, got %+v", f)
	}

	// absent front matter warns
	in = parse(t, "go/slices.md", "# Slices\n", nil)
	f := findingsOf(t, rules.FrontMatter{}, in)
	if _, warns := severities(f); warns != 1 {
		t.Fatalf("expected one warning, got %+v", f)
	}

	// unknown kind is an error
	in = parse(t, "go/slices.md", "---\ntitle: Slices\nkind: essay\n---\n# Slices\n", nil)
	f = findingsOf(t, rules.FrontMatter{}, in)
	if errs, _ := severities(f); errs != 1 {
		t.Fatalf("expected one error, got %+v", f)
	}
}

func TestRun_CollectsAcrossRules(t *testing.T) {
	source := "## No H1\n\n```klingon\nx\n```\n\n[dead](missing.md)\n"
	in := parse(t, "notes/x.md", source, func(string) bool { return false })

	f := rules.Run(context.Background(), rules.Default(), in)
	errs, warns := severities(f)
	if errs != 1 {
		t.Fatalf("expected 1 error (dead link), got %+v", f)
	}
	if warns < 3 {
		t.Fatalf("expected warnings for missing H1, front matter and unknown language, got %+v", f)
	}
}
