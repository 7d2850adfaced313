// Package resources holds the layout templates every page renders inside.
package resources

import (
	"embed"
	"sync"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var LayoutFS embed.FS

var layoutOnce sync.Once

// RegisterLayout adds layout_head, layout_foot, nav, flashes and csrf_field to
// the template registry. Safe to call more than once; must run before the
// engine boots.
func RegisterLayout() {
	layoutOnce.Do(func() {
		templates.Register(templates.Set{
			Name:     "layout",
			FS:       LayoutFS,
			Patterns: []string{"templates/*.gohtml"},
		})
	})
}
