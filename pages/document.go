package pages

import (
	"errors"
	"fmt"
)

// Section is a heading plus its body. The body is paragraph text, a bullet
// list, or both; paragraphs render before bullets.
type Section struct {
	Heading    string
	Paragraphs []string
	Bullets    []string
}

// PolicyDocument is the static, ordered content shown by a View.
type PolicyDocument struct {
	Title       string
	Sections    []Section
	LastUpdated string
}

var (
	ErrEmptyTitle   = errors.New("document has no title")
	ErrNoSections   = errors.New("document has no sections")
	ErrEmptyHeading = errors.New("section has an empty heading")
	ErrEmptyBody    = errors.New("section has an empty body")
)

func (s Section) hasBody() bool {
	for _, p := range s.Paragraphs {
		if p != "" {
			return true
		}
	}
	for _, b := range s.Bullets {
		if b != "" {
			return true
		}
	}
	return false
}

// Validate checks that every section can be shown with a heading and a body.
func (d PolicyDocument) Validate() error {
	if d.Title == "" {
		return ErrEmptyTitle
	}
	if len(d.Sections) == 0 {
		return ErrNoSections
	}
	for i, s := range d.Sections {
		if s.Heading == "" {
			return fmt.Errorf("section %d: %w", i, ErrEmptyHeading)
		}
		if !s.hasBody() {
			return fmt.Errorf("section %d (%s): %w", i, s.Heading, ErrEmptyBody)
		}
	}
	return nil
}

// Headings returns the section headings in display order.
func (d PolicyDocument) Headings() []string {
	headings := make([]string, 0, len(d.Sections))
	for _, s := range d.Sections {
		headings = append(headings, s.Heading)
	}
	return headings
}

func (d PolicyDocument) clone() PolicyDocument {
	out := PolicyDocument{
		Title:       d.Title,
		LastUpdated: d.LastUpdated,
		Sections:    make([]Section, len(d.Sections)),
	}
	for i, s := range d.Sections {
		out.Sections[i] = Section{
			Heading:    s.Heading,
			Paragraphs: append([]string(nil), s.Paragraphs...),
			Bullets:    append([]string(nil), s.Bullets...),
		}
	}
	return out
}

func mustValid(d PolicyDocument) PolicyDocument {
	if err := d.Validate(); err != nil {
		panic(fmt.Sprintf("pages: invalid document %q: %v", d.Title, err))
	}
	return d
}
