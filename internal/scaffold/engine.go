// Package scaffold generates a bundle skeleton into a host project by
// walking the catalog in order.
package scaffold

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/bundlesmith/cli/internal/catalog"
	oerrors "github.com/bundlesmith/cli/internal/errors"
	"github.com/bundlesmith/cli/internal/naming"
	"github.com/bundlesmith/cli/internal/output"
	"github.com/bundlesmith/cli/internal/templates"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Fields are the free-text values collected from the user.
type Fields struct {
	Description string
	Keywords    string
	AuthorName  string
	AuthorEmail string
}

// Result is the append-only log of one generation run.
// Paths are project-relative and slash separated.
type Result struct {
	Root    string
	Created []string
	Patched []string
	Skipped []string
}

// Engine generates bundles. It holds no per-run state and may be reused.
type Engine struct {
	fs        afero.Fs
	templates fs.FS
	catalog   *catalog.Catalog
	now       func() time.Time
}

// NewEngine returns an engine writing into projectFs, whose root is the host
// project directory. A nil now uses time.Now.
func NewEngine(projectFs afero.Fs, skeleton fs.FS, cat *catalog.Catalog, now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{
		fs:        projectFs,
		templates: skeleton,
		catalog:   cat,
		now:       now,
	}
}

// Generate creates the bundle described by id. It fails before touching disk
// when the bundle directory already exists. Any later filesystem failure
// aborts the run; the partial Result is returned with the error and nothing
// is rolled back. ctx is checked between entries.
func (e *Engine) Generate(ctx context.Context, id naming.Identity, fields Fields) (*Result, error) {
	res := &Result{Root: id.Dir}

	exists, err := afero.Exists(e.fs, e.real(id.Dir))
	if err != nil {
		return res, oerrors.NewFilesystemError("checking bundle directory", id.Dir, err)
	}
	if exists {
		return res, &oerrors.DetailError{
			Type:     "filesystem operation failed",
			Message:  "bundle directory already exists",
			Location: id.Dir,
			Hint:     "Choose another domain or bundle name, or remove the directory",
			Cause:    fmt.Errorf("%w: %w", oerrors.ErrFilesystem, fs.ErrExist),
		}
	}

	logger := output.BundleLogger(id.Package)
	values := e.values(id, fields)

	for _, entry := range e.catalog.Entries {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		dest, err := e.destination(entry, id)
		if err != nil {
			return res, err
		}

		renderer, err := e.renderer(entry, values)
		if err != nil {
			return res, err
		}

		switch entry.Kind {
		case catalog.KindDir:
			err = e.mkdir(dest)
			if err == nil {
				res.Created = append(res.Created, dest)
				logger.Debug("created directory", "path", dest)
			}
		case catalog.KindCopy:
			err = e.copy(entry.Source, dest, renderer)
			if err == nil {
				res.Created = append(res.Created, dest)
				logger.Debug("created file", "path", dest, "template", entry.Source)
			}
		case catalog.KindPatch, catalog.KindRename:
			var skipped bool
			skipped, err = e.patch(entry, dest, renderer, logger)
			switch {
			case err != nil:
			case skipped:
				res.Skipped = append(res.Skipped, entry.Source)
			default:
				res.Patched = append(res.Patched, dest)
			}
		default:
			err = fmt.Errorf("unknown catalog entry kind %q", entry.Kind)
		}

		if err != nil {
			return res, err
		}
	}

	return res, nil
}

// values resolves every named value a rule may reference.
func (e *Engine) values(id naming.Identity, fields Fields) map[string]string {
	values := id.Views()
	values[catalog.ValueDescription] = fields.Description
	values[catalog.ValueKeywords] = fields.Keywords
	values[catalog.ValueAuthorName] = fields.AuthorName
	values[catalog.ValueAuthorEmail] = fields.AuthorEmail
	values[catalog.ValueYear] = strconv.Itoa(e.now().Year())
	return values
}

func (e *Engine) renderer(entry catalog.Entry, values map[string]string) (*templates.Renderer, error) {
	rules := e.catalog.RulesFor(entry)
	pairs := make([]templates.Pair, 0, len(rules))
	for _, r := range rules {
		if r.Value == catalog.ValueLiteral {
			pairs = append(pairs, templates.Pair{Token: r.Token, Value: r.Text})
			continue
		}
		v, ok := values[r.Value]
		if !ok {
			return nil, oerrors.NewValidationError(
				fmt.Sprintf("rule for %q references unknown value %q", r.Token, r.Value), "", "")
		}
		pairs = append(pairs, templates.Pair{Token: r.Token, Value: v})
	}
	return templates.NewRenderer(pairs), nil
}

// destination renders entry's destination template and resolves it against
// the bundle root or the project root.
func (e *Engine) destination(entry catalog.Entry, id naming.Identity) (string, error) {
	rendered, err := templates.RenderPath(entry.Destination, id)
	if err != nil {
		return "", oerrors.NewValidationError(err.Error(), "", "Destination templates may only use Identity fields such as {{.ShortName}}")
	}

	base := "."
	if entry.Scope != catalog.ScopeProject {
		base = id.Dir
	}

	dest := path.Join(base, rendered)
	if dest == ".." || strings.HasPrefix(dest, "../") || path.IsAbs(rendered) {
		return "", oerrors.NewValidationError(
			fmt.Sprintf("destination %q escapes the project", entry.Destination), "", "")
	}
	return dest, nil
}

func (e *Engine) mkdir(rel string) error {
	if err := e.fs.MkdirAll(e.real(rel), dirPerm); err != nil {
		return oerrors.NewFilesystemError("creating directory", rel, err)
	}
	return nil
}

func (e *Engine) copy(source, dest string, r *templates.Renderer) error {
	data, err := fs.ReadFile(e.templates, source)
	if err != nil {
		return oerrors.NewFilesystemError("reading template", source, err)
	}

	if err := e.mkdir(path.Dir(dest)); err != nil {
		return err
	}

	if err := afero.WriteFile(e.fs, e.real(dest), r.Rewrite(data), filePerm); err != nil {
		return oerrors.NewFilesystemError("writing file", dest, err)
	}
	return nil
}

// patch rewrites a host project file in place and, for rename entries, moves
// it to dest. A missing optional file is skipped with a warning.
func (e *Engine) patch(entry catalog.Entry, dest string, r *templates.Renderer, logger *log.Logger) (bool, error) {
	source := path.Clean(entry.Source)

	info, err := e.fs.Stat(e.real(source))
	if err != nil {
		if os.IsNotExist(err) && entry.Optional {
			logger.Warn("host file not found, skipping", "path", source)
			return true, nil
		}
		return false, oerrors.NewFilesystemError("reading host file", source, err)
	}

	data, err := afero.ReadFile(e.fs, e.real(source))
	if err != nil {
		return false, oerrors.NewFilesystemError("reading host file", source, err)
	}

	if err := afero.WriteFile(e.fs, e.real(source), r.Rewrite(data), info.Mode().Perm()); err != nil {
		return false, oerrors.NewFilesystemError("writing host file", source, err)
	}

	if entry.Kind == catalog.KindRename && dest != source {
		if err := e.mkdir(path.Dir(dest)); err != nil {
			return false, err
		}
		if err := e.fs.Rename(e.real(source), e.real(dest)); err != nil {
			return false, oerrors.NewFilesystemError("renaming host file", source, err)
		}
		logger.Debug("renamed host file", "from", source, "to", dest)
	} else {
		logger.Debug("patched host file", "path", dest)
	}

	if ext := path.Ext(dest); ext == ".yaml" || ext == ".yml" {
		e.checkYAML(dest, logger)
	}

	return false, nil
}

// checkYAML warns when a rewritten host file no longer parses as YAML.
func (e *Engine) checkYAML(rel string, logger *log.Logger) {
	data, err := afero.ReadFile(e.fs, e.real(rel))
	if err != nil {
		return
	}
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		logger.Warn("rewritten file is not valid YAML", "path", rel, "err", err)
	}
}

// real maps a project-relative slash path to a path on e.fs.
func (e *Engine) real(rel string) string {
	return filepath.FromSlash(path.Join("/", rel))
}
