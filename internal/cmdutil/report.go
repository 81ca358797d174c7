package cmdutil

import (
	"fmt"
	"path"
	"strings"

	"github.com/bundlesmith/cli/internal/catalog"
	"github.com/bundlesmith/cli/internal/output"
	"github.com/bundlesmith/cli/internal/scaffold"
)

// WriteResult prints the bundle tree followed by one line per host file that
// was patched, renamed or skipped.
func WriteResult(res *scaffold.Result, steps []scaffold.Step) {
	if res == nil {
		return
	}

	byPath := make(map[string]scaffold.Step, len(steps))
	bySource := make(map[string]scaffold.Step, len(steps))
	for _, s := range steps {
		byPath[s.Path] = s
		if s.Source != "" {
			bySource[s.Source] = s
		}
	}

	if tree := ResultTree(res, byPath); tree != "" {
		output.Print(tree)
	}

	for _, p := range res.Patched {
		status := output.StatusPatched
		if byPath[p].Kind == catalog.KindRename {
			status = output.StatusRenamed
		}
		output.Println(output.FormatPathLine(p, status))
	}
	for _, p := range res.Skipped {
		line := output.FormatPathLine(p, output.StatusSkipped)
		if desc := bySource[p].Description; desc != "" {
			line += output.StyleDim.Render("  (" + desc + ")")
		}
		output.Println(line)
	}
}

// ResultTree renders the created paths under the bundle root.
func ResultTree(res *scaffold.Result, byPath map[string]scaffold.Step) string {
	entries := make([]output.TreeEntry, 0, len(res.Created))
	for _, p := range res.Created {
		rel, ok := relativeTo(res.Root, p)
		if !ok {
			continue
		}
		step := byPath[p]
		entries = append(entries, output.TreeEntry{
			Path:        rel,
			Description: step.Description,
			IsDir:       step.Kind == catalog.KindDir,
		})
	}
	return output.RenderFileTree(res.Root, entries)
}

// SuccessMessage is the closing line of a successful create run.
func SuccessMessage(res *scaffold.Result) string {
	return output.FormatCheckmark(fmt.Sprintf(
		"The bundle skeleton was successfully created at: %s",
		output.StyleNoun.Render("/"+res.Root),
	))
}

func relativeTo(root, p string) (string, bool) {
	if p == root {
		return ".", true
	}
	prefix := path.Clean(root) + "/"
	if !strings.HasPrefix(p, prefix) {
		return "", false
	}
	return strings.TrimPrefix(p, prefix), true
}
