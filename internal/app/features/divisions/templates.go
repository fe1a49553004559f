// internal/app/features/divisions/templates.go
package divisions

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "divisions",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
