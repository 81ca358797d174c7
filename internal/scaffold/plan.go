package scaffold

import (
	"github.com/bundlesmith/cli/internal/catalog"
	"github.com/bundlesmith/cli/internal/naming"
	"github.com/bundlesmith/cli/internal/templates"
)

// planFields stand in for the free-text answers, which a plan does not have.
var planFields = Fields{
	Description: "<bundle-description>",
	Keywords:    "<bundle-keywords>",
	AuthorName:  "<your-name>",
	AuthorEmail: "<your-email>",
}

// Step is one catalog entry with its destination resolved for an identity.
type Step struct {
	Kind        catalog.Kind
	Scope       catalog.Scope
	Source      string
	Path        string
	Optional    bool
	Description string

	// Rewrites are the substitutions applied to the content, longest token first.
	Rewrites []templates.Pair
}

// Plan resolves every catalog entry for id without touching the filesystem.
func (e *Engine) Plan(id naming.Identity) ([]Step, error) {
	values := e.values(id, planFields)

	steps := make([]Step, 0, len(e.catalog.Entries))
	for _, entry := range e.catalog.Entries {
		dest, err := e.destination(entry, id)
		if err != nil {
			return nil, err
		}
		renderer, err := e.renderer(entry, values)
		if err != nil {
			return nil, err
		}
		steps = append(steps, Step{
			Kind:        entry.Kind,
			Scope:       entry.Scope,
			Source:      entry.Source,
			Path:        dest,
			Optional:    entry.Optional,
			Description: entry.Description,
			Rewrites:    renderer.Pairs(),
		})
	}
	return steps, nil
}
