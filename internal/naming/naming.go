// Package naming derives the casing variants of a bundle name used in
// generated file names and contents.
//
// All functions are pure: the same input always yields the same output.
package naming

import (
	"strings"

	"github.com/iancoleman/strcase"
)

// BundleSuffix is the literal that terminates every full bundle class name.
const BundleSuffix = "Bundle"

// bundleDirSuffix is the kebab-case form of BundleSuffix used in directory names.
const bundleDirSuffix = "-bundle"

// separate inserts a dash before every uppercase letter, collapses repeated
// dashes, strips one leading dash and lowercases the result.
func separate(raw string) string {
	var b strings.Builder
	b.Grow(len(raw) + 4)
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c >= 'A' && c <= 'Z' {
			b.WriteByte('-')
		}
		b.WriteByte(c)
	}

	out := b.String()
	for strings.Contains(out, "--") {
		out = strings.ReplaceAll(out, "--", "-")
	}
	out = strings.TrimPrefix(out, "-")

	return strings.ToLower(out)
}

// SanitizeDomainName converts a raw domain name to its kebab-case directory
// form, e.g. "AcmeCorp" -> "acme-corp".
func SanitizeDomainName(raw string) string {
	return separate(raw)
}

// SanitizeBundleName converts a raw bundle name to its kebab-case directory
// form and guarantees a "-bundle" suffix, e.g. "Foo" and "FooBundle" both
// become "foo-bundle".
//
// A name that contains "bundle" inside a word keeps a dash inserted in front
// of every occurrence: "bundled-assets" becomes "-bundled-assets". This quirk
// is kept so that existing directory layouts stay reproducible.
func SanitizeBundleName(raw string) string {
	name := separate(raw)

	if strings.Index(name, bundleDirSuffix) <= 0 {
		name = strings.ReplaceAll(name, " bundle", "bundle")
		name = strings.ReplaceAll(name, "bundle", bundleDirSuffix)
	}

	if strings.Index(name, "bundle") <= 0 {
		name += bundleDirSuffix
	}

	return name
}

// PascalCase uppercases the first letter of s and turns every "-x" run into
// "X", e.g. "foo-bundle" -> "FooBundle".
func PascalCase(s string) string {
	if s == "" {
		return s
	}

	s = upperFirst(s)

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '-' && i+1 < len(s) && s[i+1] >= 'a' && s[i+1] <= 'z' {
			b.WriteByte(s[i+1] - ('a' - 'A'))
			i++
			continue
		}
		b.WriteByte(s[i])
	}

	return b.String()
}

// PascalCaseFullName returns the canonical bundle class name,
// e.g. ("acme", "foo-bundle") -> "AcmeFooBundle".
func PascalCaseFullName(domain, bundle string) string {
	return PascalCase(upperFirst(domain) + upperFirst(bundle))
}

// PascalCaseShortName returns the full name without its BundleSuffix,
// e.g. ("acme", "foo-bundle") -> "AcmeFoo". A full name that does not end in
// the suffix is returned unchanged.
func PascalCaseShortName(domain, bundle string) string {
	return strings.TrimSuffix(PascalCaseFullName(domain, bundle), BundleSuffix)
}

// SeparatedCase lowercases the short name and places sep in front of every
// former uppercase letter, e.g. ("acme", "foo-bundle", "_") -> "acme_foo".
func SeparatedCase(domain, bundle, sep string) string {
	short := PascalCaseShortName(domain, bundle)

	var b strings.Builder
	b.Grow(len(short) * 2)
	for i := 0; i < len(short); i++ {
		c := short[i]
		if c >= 'A' && c <= 'Z' {
			b.WriteString(sep)
			c += 'a' - 'A'
		}
		b.WriteByte(c)
	}

	return strings.TrimPrefix(b.String(), sep)
}

// HumanName returns a display form of the short name, e.g. "Acme Foo".
func HumanName(domain, bundle string) string {
	words := strings.Fields(strcase.ToDelimited(PascalCaseShortName(domain, bundle), ' '))
	for i, w := range words {
		words[i] = upperFirst(w)
	}
	return strings.Join(words, " ")
}

// LowerCamelName returns the short name in lowerCamel form, e.g. "acmeFoo".
func LowerCamelName(domain, bundle string) string {
	return strcase.ToLowerCamel(SeparatedCase(domain, bundle, "-"))
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-('a'-'A')) + s[1:]
	}
	return s
}
