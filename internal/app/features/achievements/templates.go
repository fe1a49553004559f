// internal/app/features/achievements/templates.go
package achievements

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "achievements",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
