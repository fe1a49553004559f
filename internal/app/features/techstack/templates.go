// internal/app/features/techstack/templates.go
package techstack

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "techstack",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
