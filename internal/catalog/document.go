package catalog

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Frontmatter is the YAML header of a SKILL.md document.
type Frontmatter struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Category    string `yaml:"category"`
	Source      string `yaml:"source"`
}

// Document is a SKILL.md split into its header and markdown body.
type Document struct {
	Frontmatter
	Body           string
	HasFrontmatter bool
}

const fence = "---"

// ParseDocument splits a leading "---" fenced YAML block from the markdown
// body. Without an opening and closing fence the whole input is the body.
func ParseDocument(data []byte) (Document, error) {
	content := strings.TrimPrefix(string(data), "\ufeff")
	content = strings.ReplaceAll(content, "\r\n", "\n")

	trimmed := strings.TrimLeft(content, " \t\n")
	if !strings.HasPrefix(trimmed, fence+"\n") && trimmed != fence {
		return Document{Body: strings.TrimSpace(content)}, nil
	}

	rest := strings.TrimPrefix(trimmed, fence)
	rest = strings.TrimPrefix(rest, "\n")

	header, body, ok := cutFence(rest)
	if !ok {
		return Document{Body: strings.TrimSpace(content)}, nil
	}

	var doc Document
	if err := yaml.Unmarshal([]byte(header), &doc.Frontmatter); err != nil {
		return Document{}, fmt.Errorf("parsing frontmatter: %w", err)
	}
	doc.Body = strings.TrimSpace(body)
	doc.HasFrontmatter = true
	return doc, nil
}

// cutFence finds the first line consisting only of the fence.
func cutFence(s string) (before, after string, ok bool) {
	if strings.HasPrefix(s, fence+"\n") || s == fence {
		return "", strings.TrimPrefix(s, fence), true
	}
	offset := 0
	for {
		i := strings.Index(s[offset:], "\n"+fence)
		if i < 0 {
			return "", "", false
		}
		start := offset + i + 1
		end := start + len(fence)
		if end == len(s) || s[end] == '\n' {
			return s[:start], s[end:], true
		}
		offset = end
	}
}
