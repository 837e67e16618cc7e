// internal/testutil/templates.go
package testutil

import (
	"sync"
	"testing"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	"github.com/amanguptabounteous/benchboard/internal/app/resources"
)

var (
	bootTemplatesOnce sync.Once
	bootTemplatesErr  error
)

// BootTemplates installs a real template engine so a handler under test can
// render its page instead of falling through to the engine-missing 500.
// Feature sets register from package init; the shared chrome is loaded here.
// Safe to call from multiple tests in a package.
func BootTemplates(t *testing.T) {
	t.Helper()
	bootTemplatesOnce.Do(func() {
		resources.LoadSharedTemplates()
		logger := zap.NewNop()
		eng := templates.New(false)
		if err := eng.Boot(logger); err != nil {
			bootTemplatesErr = err
			return
		}
		templates.UseEngine(eng, logger)
	})
	if bootTemplatesErr != nil {
		t.Fatalf("template engine boot failed: %v", bootTemplatesErr)
	}
}
