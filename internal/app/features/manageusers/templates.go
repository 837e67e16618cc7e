// internal/app/features/manageusers/templates.go
package manageusers

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "manageusers",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
