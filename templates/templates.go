// Package templates embeds the server-rendered admin HTML.
package templates

import (
	"embed"
	"html/template"
)

//go:embed *.html
var files embed.FS

// Load parses every embedded template.
func Load() *template.Template {
	return template.Must(template.New("").ParseFS(files, "*.html"))
}
