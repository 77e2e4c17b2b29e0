package domain

import (
	"time"

	"github.com/google/uuid"
)

// DocumentID uniquely identifies a document in the corpus.
// It wraps uuid.UUID to provide type safety at the domain layer.
type DocumentID uuid.UUID

func (id DocumentID) String() string { return uuid.UUID(id).String() }

// MarshalText renders the ID in canonical UUID form.
func (id DocumentID) MarshalText() ([]byte, error) {
	return []byte(uuid.UUID(id).String()), nil
}

// UnmarshalText parses a canonical UUID string.
func (id *DocumentID) UnmarshalText(text []byte) error {
	u, err := uuid.ParseBytes(text)
	if err != nil {
		return err //nolint: wrapcheck
	}
	*id = DocumentID(u)

	return nil
}

// DocumentKind classifies a corpus document by its role.
type DocumentKind string

const (
	// KindNote is a regular topic note, the default for corpus files.
	KindNote DocumentKind = "note"
	// KindInterview marks the interview-question list. Questions are extracted
	// from such documents during ingestion.
	KindInterview DocumentKind = "interview"
	// KindReadme marks the corpus landing page.
	KindReadme DocumentKind = "readme"
)

// KnownKind reports whether k is one of the recognized document kinds.
func KnownKind(k DocumentKind) bool {
	switch k {
	case KindNote, KindInterview, KindReadme:
		return true
	}

	return false
}

// Heading is a single entry in a document's outline.
type Heading struct {
	// Level is the heading depth, 1 for H1 through 6 for H6.
	Level int `json:"level"`
	// Text is the rendered heading text without markup.
	Text string `json:"text"`
	// Anchor is the GitHub-style anchor slug derived from Text.
	Anchor string `json:"anchor"`
	// Line is the 1-based source line the heading starts on.
	Line int `json:"line"`
}

// CodeBlock is a fenced code block extracted from a document.
type CodeBlock struct {
	// Language is the info-string language tag, empty when the fence is bare.
	Language string `json:"language,omitempty"`
	// Content is the raw text between the fences.
	Content string `json:"content"`
	// Line is the 1-based source line of the opening fence.
	Line int `json:"line"`
}

// Link is a link extracted from a document.
type Link struct {
	// Target is the raw link destination as written in the source.
	Target string `json:"target"`
	// Internal is true when the target points inside the corpus (relative path
	// or fragment), false for absolute URLs.
	Internal bool `json:"internal"`
	// Line is the 1-based source line the link appears on.
	Line int `json:"line"`
}

// Outline groups the structural elements extracted from a document at
// ingestion time. It is stored alongside the document so API consumers can
// navigate a note without re-parsing it.
type Outline struct {
	Headings   []Heading   `json:"headings,omitempty"`
	CodeBlocks []CodeBlock `json:"codeBlocks,omitempty"`
	Links      []Link      `json:"links,omitempty"`
}

// Document represents a single Markdown file tracked by the corpus.
type Document struct {
	// ID is the unique identifier of the document.
	ID DocumentID `json:"id"`

	// Path is the corpus-relative file path, using forward slashes.
	Path string `json:"path"`
	// Title is taken from front matter, falling back to the first H1 and then
	// the file name.
	Title string `json:"title"`
	// Kind classifies the document (note, interview, readme).
	Kind DocumentKind `json:"kind"`
	// Topics are the front matter topics, falling back to the directory name.
	Topics []string `json:"topics,omitempty"`
	// Checksum is the hex-encoded sha256 of the file content. Lint results are
	// keyed by it: identical content always yields identical findings.
	Checksum string `json:"checksum"`
	// Outline holds the structural elements extracted at ingestion time.
	Outline Outline `json:"outline"`

	// CreatedAt is when the document was first ingested.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is when the document row last changed (content or metadata).
	UpdatedAt time.Time `json:"updatedAt"`
	// DeletedAt marks when the document was soft-deleted; zero means live.
	DeletedAt time.Time `json:"-"`
}

// Topic is an aggregate view over the corpus navigation structure: a topic
// name together with the number of live documents carrying it.
type Topic struct {
	Name      string `json:"name"`
	Documents int64  `json:"documents"`
}
