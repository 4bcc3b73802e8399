package portfolio

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var embeddedContent []byte

// ErrUnknownSection is returned when a section id is not in the content.
var ErrUnknownSection = errors.New("unknown section")

// Content is everything the viewer shows and the actions use.
type Content struct {
	Owner    string            `yaml:"owner" json:"owner"`
	Role     string            `yaml:"role" json:"role"`
	Email    string            `yaml:"email" json:"email"`
	Location string            `yaml:"location" json:"location"`
	Social   map[string]string `yaml:"social" json:"social"`
	Sections []Section         `yaml:"sections" json:"sections"`
	Resume   Resume            `yaml:"resume" json:"resume"`
}

// Section is one page of the viewer.
type Section struct {
	ID    string `yaml:"id" json:"id"`
	Title string `yaml:"title" json:"title"`
	Body  string `yaml:"body" json:"body"`
}

// Resume is written to the downloads directory by the resume action.
type Resume struct {
	FileName string `yaml:"file_name" json:"file_name"`
	Text     string `yaml:"text" json:"text"`
}

// DefaultContent returns the built-in content.
func DefaultContent() (Content, error) {
	return ParseContent(embeddedContent)
}

// LoadContent reads content from path, or the built-in content when path is
// empty.
func LoadContent(path string) (Content, error) {
	if path == "" {
		return DefaultContent()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Content{}, fmt.Errorf("read content: %w", err)
	}
	c, err := ParseContent(data)
	if err != nil {
		return Content{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// ParseContent decodes and checks a content document.
func ParseContent(data []byte) (Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Content{}, fmt.Errorf("decode content: %w", err)
	}
	if len(c.Sections) == 0 {
		return Content{}, errors.New("content has no sections")
	}
	seen := make(map[string]bool, len(c.Sections))
	for i, s := range c.Sections {
		if strings.TrimSpace(s.ID) == "" {
			return Content{}, fmt.Errorf("section %d has no id", i)
		}
		if seen[s.ID] {
			return Content{}, fmt.Errorf("duplicate section %q", s.ID)
		}
		seen[s.ID] = true
	}
	if c.Resume.FileName == "" {
		c.Resume.FileName = "resume.txt"
	}
	return c, nil
}

// SectionIndex returns the position of the section with id.
func (c Content) SectionIndex(id string) (int, error) {
	for i, s := range c.Sections {
		if s.ID == id {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrUnknownSection, id)
}
