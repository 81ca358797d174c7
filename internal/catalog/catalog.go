// Package catalog holds the declarative, ordered list of scaffold steps.
//
// The default catalog is embedded as CUE and validated against an embedded
// schema at load time. An override catalog may be supplied as CUE or YAML.
package catalog

import (
	"embed"
	"fmt"
	"path"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	oerrors "github.com/bundlesmith/cli/internal/errors"
)

//go:embed schema.cue catalog.cue
var catalogFS embed.FS

// Kind is the action an entry performs.
type Kind string

const (
	// KindDir creates a directory.
	KindDir Kind = "dir"

	// KindCopy copies a skeleton file and rewrites its placeholders.
	KindCopy Kind = "copy"

	// KindPatch rewrites a host project file in place.
	KindPatch Kind = "patch"

	// KindRename rewrites a host project file and moves it to its destination.
	KindRename Kind = "rename"
)

// Scope selects the directory an entry's destination is relative to.
type Scope string

const (
	// ScopeBundle resolves against the generated bundle root.
	ScopeBundle Scope = "bundle"

	// ScopeProject resolves against the host project root.
	ScopeProject Scope = "project"
)

// Value sources other than identity views.
const (
	ValueDescription = "description"
	ValueKeywords    = "keywords"
	ValueAuthorName  = "authorName"
	ValueAuthorEmail = "authorEmail"
	ValueYear        = "year"
	ValueLiteral     = "literal"
)

// Rule maps a placeholder token to a named value. Text is the replacement
// when Value is "literal".
type Rule struct {
	Token string `json:"token" yaml:"token"`
	Value string `json:"value" yaml:"value"`
	Text  string `json:"text,omitempty" yaml:"text,omitempty"`
}

// Entry is one scaffold step.
type Entry struct {
	Kind        Kind     `json:"kind" yaml:"kind"`
	Scope       Scope    `json:"scope" yaml:"scope"`
	Source      string   `json:"source,omitempty" yaml:"source,omitempty"`
	Destination string   `json:"destination" yaml:"destination"`
	Use         []string `json:"use" yaml:"use"`
	Rules       []Rule   `json:"rules" yaml:"rules"`
	Optional    bool     `json:"optional" yaml:"optional"`
	Description string   `json:"description" yaml:"description"`
}

// Catalog is the ordered scaffold plan plus its shared rule sets.
type Catalog struct {
	RuleSets map[string][]Rule `json:"ruleSets" yaml:"ruleSets"`
	Entries  []Entry           `json:"entries" yaml:"entries"`
}

// Load returns the embedded default catalog.
func Load() (*Catalog, error) {
	data, err := catalogFS.ReadFile("catalog.cue")
	if err != nil {
		return nil, fmt.Errorf("reading embedded catalog: %w", err)
	}
	return parse(data, "catalog.cue")
}

// LoadFile loads an override catalog from fsys. Files ending in .yaml or
// .yml are decoded as YAML; anything else is compiled as CUE.
func LoadFile(fsys afero.Fs, file string) (*Catalog, error) {
	data, err := afero.ReadFile(fsys, file)
	if err != nil {
		return nil, oerrors.NewFilesystemError("reading catalog file", file, err)
	}

	switch strings.ToLower(path.Ext(file)) {
	case ".yaml", ".yml":
		return parseYAML(data, file)
	default:
		return parse(data, file)
	}
}

func parse(data []byte, filename string) (*Catalog, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data, cue.Filename(filename))
	if v.Err() != nil {
		return nil, invalid(filename, v.Err())
	}
	return decode(ctx, v, filename)
}

func parseYAML(data []byte, filename string) (*Catalog, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, invalid(filename, err)
	}

	ctx := cuecontext.New()
	v := ctx.Encode(raw)
	if v.Err() != nil {
		return nil, invalid(filename, v.Err())
	}
	return decode(ctx, v, filename)
}

// decode unifies v with #Catalog, requires a concrete result and runs the
// cross-entry checks CUE cannot express.
func decode(ctx *cue.Context, v cue.Value, filename string) (*Catalog, error) {
	schemaData, err := catalogFS.ReadFile("schema.cue")
	if err != nil {
		return nil, fmt.Errorf("reading embedded schema: %w", err)
	}

	schema := ctx.CompileBytes(schemaData, cue.Filename("schema.cue"))
	if schema.Err() != nil {
		return nil, fmt.Errorf("compiling schema: %w", schema.Err())
	}

	unified := schema.LookupPath(cue.ParsePath("#Catalog")).Unify(v)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, invalid(filename, err)
	}

	var c Catalog
	if err := unified.Decode(&c); err != nil {
		return nil, invalid(filename, err)
	}

	if err := c.check(); err != nil {
		return nil, invalid(filename, err)
	}

	return &c, nil
}

func invalid(filename string, err error) error {
	return &oerrors.DetailError{
		Type:     "invalid catalog",
		Message:  err.Error(),
		Location: filename,
		Hint:     "Run 'bundlesmith catalog' to compare with the built-in catalog",
		Cause:    oerrors.ErrValidation,
	}
}

func (c *Catalog) check() error {
	for i, e := range c.Entries {
		if e.Kind != KindDir && e.Source == "" {
			return fmt.Errorf("entry %d (%s %s): source is required", i, e.Kind, e.Destination)
		}
		if e.Kind != KindCopy && e.Kind != KindDir && e.Scope != ScopeProject {
			return fmt.Errorf("entry %d (%s %s): host file entries must use project scope", i, e.Kind, e.Destination)
		}
		for _, name := range e.Use {
			if _, ok := c.RuleSets[name]; !ok {
				return fmt.Errorf("entry %d (%s): unknown rule set %q", i, e.Destination, name)
			}
		}
		seen := make(map[string]bool)
		for _, r := range c.RulesFor(e) {
			if seen[r.Token] {
				return fmt.Errorf("entry %d (%s): token %q declared twice", i, e.Destination, r.Token)
			}
			seen[r.Token] = true
		}
	}
	return nil
}

// RulesFor returns the rules that apply to e: its rule sets in declaration
// order followed by its own rules.
func (c *Catalog) RulesFor(e Entry) []Rule {
	var rules []Rule
	for _, name := range e.Use {
		rules = append(rules, c.RuleSets[name]...)
	}
	return append(rules, e.Rules...)
}

// Count returns the number of entries of each kind.
func (c *Catalog) Count() map[Kind]int {
	counts := make(map[Kind]int)
	for _, e := range c.Entries {
		counts[e.Kind]++
	}
	return counts
}
