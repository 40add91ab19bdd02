// Package skills embeds the demo catalog browsed with the "builtin:" source.
package skills

import (
	"embed"
	"io/fs"
)

//go:embed catalog
var catalogFS embed.FS

// Catalog returns the demo catalog rooted at its index file.
func Catalog() fs.FS {
	sub, err := fs.Sub(catalogFS, "catalog")
	if err != nil {
		panic(err)
	}
	return sub
}
