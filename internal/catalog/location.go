package catalog

import "strings"

const (
	// DocumentRoot is the directory under the catalog base holding skill documents.
	DocumentRoot = "skills"
	// DocumentFile is the document filename inside each skill directory.
	DocumentFile = "SKILL.md"

	pathPrefix = DocumentRoot + "/"
)

// DocumentLocation derives the catalog-relative location of a skill's
// document from its index path. Paths already carrying the "skills/"
// prefix have it removed once so the segment is not doubled.
func DocumentLocation(path string) string {
	clean := strings.TrimPrefix(path, pathPrefix)
	clean = strings.Trim(clean, "/")
	return pathPrefix + clean + "/" + DocumentFile
}

// CopyPrompt is the invocation text placed on the clipboard for a skill.
func CopyPrompt(name string) string {
	return "Use @" + name + " ..."
}
