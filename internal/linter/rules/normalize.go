package rules

import (
	"fmt"
	"net/url"
	"path"
	"strings"
)

// NormalizeTarget returns the canonical corpus path a relative Markdown link
// points at, given the corpus-relative path of the document containing it.
//
// The normalization rules are intentionally strict to make link resolution
// deterministic:
//   - Percent-escapes are decoded ("My%20Note.md" -> "My Note.md")
//   - A fragment is split off and returned separately
//   - Targets starting with "/" are resolved from the corpus root
//   - Anything else is resolved relative to the linking document's directory
//   - The result is cleaned (dot-segments resolved, duplicate slashes collapsed)
//
// Targets escaping the corpus root ("../../etc/passwd") and absolute URLs are
// rejected with an error.
func NormalizeTarget(docPath, target string) (cleanPath, fragment string, err error) {
	u, err := url.Parse(target)
	if err != nil {
		return "", "", fmt.Errorf("could not parse link target: %w", err)
	}
	if u.Scheme != "" || u.Host != "" {
		return "", "", fmt.Errorf("target %q is not corpus-relative", target)
	}

	fragment = u.Fragment

	p := u.Path
	if p == "" {
		// fragment-only link, resolves within the linking document
		return "", fragment, nil
	}

	if strings.HasPrefix(p, "/") {
		p = path.Clean(strings.TrimPrefix(p, "/"))
	} else {
		p = path.Clean(path.Join(path.Dir(docPath), p))
	}

	if p == ".." || strings.HasPrefix(p, "../") {
		return "", "", fmt.Errorf("target %q escapes the corpus root", target)
	}
	if p == "." {
		p = ""
	}

	return p, fragment, nil
}
