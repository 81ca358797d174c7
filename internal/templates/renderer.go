package templates

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"text/template"
)

// Pair is one resolved placeholder substitution.
type Pair struct {
	Token string `json:"token" yaml:"token"`
	Value string `json:"value" yaml:"value"`
}

// Renderer rewrites template contents in a single pass.
// Longer tokens win over shorter ones sharing a prefix, and text produced by
// one substitution is never scanned again, so the result does not depend on
// the order pairs were declared in.
type Renderer struct {
	replacer *strings.Replacer
	pairs    []Pair
}

// NewRenderer builds a renderer for pairs. Empty tokens are ignored.
// When a token appears twice the first value wins.
func NewRenderer(pairs []Pair) *Renderer {
	seen := make(map[string]bool, len(pairs))
	sorted := make([]Pair, 0, len(pairs))
	for _, p := range pairs {
		if p.Token == "" || seen[p.Token] {
			continue
		}
		seen[p.Token] = true
		sorted = append(sorted, p)
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		if len(sorted[i].Token) != len(sorted[j].Token) {
			return len(sorted[i].Token) > len(sorted[j].Token)
		}
		return sorted[i].Token < sorted[j].Token
	})

	oldnew := make([]string, 0, len(sorted)*2)
	for _, p := range sorted {
		oldnew = append(oldnew, p.Token, p.Value)
	}

	return &Renderer{
		replacer: strings.NewReplacer(oldnew...),
		pairs:    sorted,
	}
}

// Pairs returns the substitutions in application priority order.
func (r *Renderer) Pairs() []Pair {
	out := make([]Pair, len(r.pairs))
	copy(out, r.pairs)
	return out
}

// Rewrite returns content with every token replaced.
func (r *Renderer) Rewrite(content []byte) []byte {
	if len(r.pairs) == 0 {
		return content
	}
	return []byte(r.replacer.Replace(string(content)))
}

// RenderPath renders a destination path template such as
// "Controller/{{.ShortName}}Controller.php" against data.
// Unknown keys are an error rather than an empty string.
func RenderPath(pathTmpl string, data any) (string, error) {
	tmpl, err := template.New("path").Option("missingkey=error").Parse(pathTmpl)
	if err != nil {
		return "", fmt.Errorf("parsing path template %q: %w", pathTmpl, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing path template %q: %w", pathTmpl, err)
	}

	return buf.String(), nil
}
