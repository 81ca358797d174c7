package naming

import (
	"path"

	oerrors "github.com/bundlesmith/cli/internal/errors"
	"github.com/bundlesmith/cli/internal/validator"
)

// BundleRoot is the project-relative directory that holds generated bundles.
const BundleRoot = "lib"

// Identity is the validated, sanitized name of one bundle together with all
// of its derived views. It is computed once and never mutated.
type Identity struct {
	// Domain is the sanitized vendor segment (e.g. "acme").
	Domain string

	// Bundle is the sanitized bundle segment, always "-bundle" terminated (e.g. "foo-bundle").
	Bundle string

	// FullName is the bundle class name (e.g. "AcmeFooBundle").
	FullName string

	// ShortName is FullName without the Bundle suffix (e.g. "AcmeFoo").
	ShortName string

	// DomainPascal is the PascalCase domain (e.g. "Acme").
	DomainPascal string

	// BundlePascal is the PascalCase bundle (e.g. "FooBundle").
	BundlePascal string

	// Snake is the underscore-separated short name (e.g. "acme_foo").
	Snake string

	// Kebab is the dash-separated short name (e.g. "acme-foo").
	Kebab string

	// Slashed is the slash-separated short name (e.g. "acme/foo").
	Slashed string

	// Human is the display name (e.g. "Acme Foo").
	Human string

	// LowerCamel is the lowerCamel short name (e.g. "acmeFoo").
	LowerCamel string

	// Package is the composer package name (e.g. "acme/foo-bundle").
	Package string

	// Dir is the project-relative bundle directory (e.g. "lib/acme/foo-bundle").
	Dir string
}

// NewIdentity validates raw domain and bundle names and derives every view.
func NewIdentity(rawDomain, rawBundle string) (Identity, error) {
	if _, err := validator.DomainName(rawDomain); err != nil {
		return Identity{}, err
	}
	if _, err := validator.BundleName(rawBundle); err != nil {
		return Identity{}, err
	}

	domain := SanitizeDomainName(rawDomain)
	if domain == "" {
		return Identity{}, oerrors.NewValidationError(
			"The domain name must contain at least one letter.", validator.FieldDomainName, "")
	}
	bundle := SanitizeBundleName(rawBundle)

	return newIdentity(domain, bundle), nil
}

func newIdentity(domain, bundle string) Identity {
	return Identity{
		Domain:       domain,
		Bundle:       bundle,
		FullName:     PascalCaseFullName(domain, bundle),
		ShortName:    PascalCaseShortName(domain, bundle),
		DomainPascal: PascalCase(domain),
		BundlePascal: PascalCase(bundle),
		Snake:        SeparatedCase(domain, bundle, "_"),
		Kebab:        SeparatedCase(domain, bundle, "-"),
		Slashed:      SeparatedCase(domain, bundle, "/"),
		Human:        HumanName(domain, bundle),
		LowerCamel:   LowerCamelName(domain, bundle),
		Package:      domain + "/" + bundle,
		Dir:          path.Join(BundleRoot, domain, bundle),
	}
}

// Views returns the named views used by catalog rewrite rules.
func (id Identity) Views() map[string]string {
	return map[string]string{
		"domain":       id.Domain,
		"bundle":       id.Bundle,
		"fullName":     id.FullName,
		"shortName":    id.ShortName,
		"domainPascal": id.DomainPascal,
		"bundlePascal": id.BundlePascal,
		"snake":        id.Snake,
		"kebab":        id.Kebab,
		"slashed":      id.Slashed,
		"human":        id.Human,
		"lowerCamel":   id.LowerCamel,
		"package":      id.Package,
		"dir":          id.Dir,
	}
}

// String returns the full bundle class name.
func (id Identity) String() string {
	return id.FullName
}
