// Package indexer builds skills.json from a directory of SKILL.md files.
package indexer

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/justinpbarnett/skillcat/internal/catalog"
	"github.com/justinpbarnett/skillcat/internal/logger"
)

// Pattern matches every skill document below the catalog root.
const Pattern = catalog.DocumentRoot + "/**/" + catalog.DocumentFile

// Result is a built index together with what had to be guessed on the way.
type Result struct {
	Index    catalog.Index
	Warnings []string
}

// Build scans fsys for skill documents and derives one record per skill
// directory. Records are ordered by path so rebuilding an unchanged tree
// produces the same file.
func Build(fsys fs.FS) (Result, error) {
	matches, err := doublestar.Glob(fsys, Pattern)
	if err != nil {
		return Result{}, fmt.Errorf("matching %s: %w", Pattern, err)
	}
	sort.Strings(matches)

	var res Result
	warn := func(format string, args ...any) {
		msg := fmt.Sprintf(format, args...)
		res.Warnings = append(res.Warnings, msg)
		logger.Warnw("indexing skill", "warning", msg)
	}

	used := make(map[string]string)
	res.Index = make(catalog.Index, 0, len(matches))
	for _, match := range matches {
		dir := path.Dir(match)
		if dir == catalog.DocumentRoot {
			warn("%s: document is not inside a skill directory, skipped", match)
			continue
		}
		rel := strings.TrimPrefix(dir, catalog.DocumentRoot+"/")

		data, err := fs.ReadFile(fsys, match)
		if err != nil {
			return Result{}, fmt.Errorf("reading %s: %w", match, err)
		}
		doc, err := catalog.ParseDocument(data)
		if err != nil {
			warn("%s: %v, using path defaults", match, err)
			doc = catalog.Document{Body: string(data)}
		}

		skill := summarize(rel, doc)
		if doc.Name == "" {
			warn("%s: no frontmatter name, using fallback id %q", match, skill.ID)
		}
		if prev, ok := used[skill.ID]; ok {
			id := disambiguate(skill.ID, rel, used)
			warn("%s: id %q already used by %s, renamed to %q", match, skill.ID, prev, id)
			skill.ID = id
		}
		used[skill.ID] = rel
		res.Index = append(res.Index, skill)
	}

	logger.Infow("built skill index", "skills", len(res.Index), "warnings", len(res.Warnings))
	return res, nil
}

// summarize derives a record for the skill directory rel (relative to
// skills/) from its parsed document, falling back to the path wherever
// the frontmatter is silent.
func summarize(rel string, doc catalog.Document) catalog.SkillSummary {
	segments := strings.Split(rel, "/")

	s := catalog.SkillSummary{
		ID:          doc.Name,
		Name:        doc.Name,
		Description: strings.TrimSpace(doc.Description),
		Category:    doc.Category,
		Source:      doc.Source,
		Path:        catalog.DocumentRoot + "/" + rel,
	}
	if s.ID == "" {
		s.ID = strings.Join(segments, "-")
		s.Name = segments[len(segments)-1]
	}
	if s.Description == "" {
		s.Description = firstLine(doc.Body)
	}
	if s.Category == "" && len(segments) >= 2 {
		s.Category = segments[0]
	}
	return s
}

// disambiguate appends the first path segment, then a counter, until id is free.
func disambiguate(id, rel string, used map[string]string) string {
	first, _, _ := strings.Cut(rel, "/")
	candidate := id + "-" + first
	for n := 2; ; n++ {
		if _, taken := used[candidate]; !taken {
			return candidate
		}
		candidate = fmt.Sprintf("%s-%s-%d", id, first, n)
	}
}

// firstLine returns the first non-empty line of body that is not a heading.
func firstLine(body string) string {
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return line
	}
	return ""
}
