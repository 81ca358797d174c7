// Package testutil provides test helpers for CLI tests.
package testutil

import (
	"bytes"
	"path"
	"regexp"
	"testing"

	"github.com/spf13/afero"

	"github.com/bundlesmith/cli/internal/output"
)

// HostComposer is a host project composer.json whose autoload section still
// points at the placeholder bundle.
const HostComposer = `{
    "autoload": {
        "psr-4": {
            "App\\": "src/",
            "Acme\\FooBundle\\": "lib/acme/foo-bundle/"
        }
    }
}
`

// HostBundles is a host config/bundles.php with the placeholder bundle
// registered but commented out.
const HostBundles = `<?php

return [
    Symfony\Bundle\FrameworkBundle\FrameworkBundle::class => ['all' => true],
#    Acme\FooBundle\AcmeFooBundle::class => ['all' => true],
];
`

// HostPackage is the placeholder bundle's package configuration.
const HostPackage = `acme_foo:
    bar: ['acme_foo.ipsum', 'acme_foo.lorem']
    integer_foo: 2
    integer_bar: 50
`

var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*[A-Za-z]`)

// WriteFile creates a file with the given content under dir, creating parents.
func WriteFile(t *testing.T, fsys afero.Fs, dir, name, content string) string {
	t.Helper()
	p := path.Join(dir, name)
	if err := fsys.MkdirAll(path.Dir(p), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", p, err)
	}
	if err := afero.WriteFile(fsys, p, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", p, err)
	}
	return p
}

// WriteHostProject lays out the host files the catalog patches under dir.
func WriteHostProject(t *testing.T, fsys afero.Fs, dir string) {
	t.Helper()
	WriteFile(t, fsys, dir, "composer.json", HostComposer)
	WriteFile(t, fsys, dir, "config/bundles.php", HostBundles)
	WriteFile(t, fsys, dir, "config/packages/acme_foo.yaml", HostPackage)
}

// ReadFile returns the content of name or fails the test.
func ReadFile(t *testing.T, fsys afero.Fs, name string) string {
	t.Helper()
	data, err := afero.ReadFile(fsys, name)
	if err != nil {
		t.Fatalf("failed to read file %s: %v", name, err)
	}
	return string(data)
}

// CaptureOutput redirects output.Print and output.Println into the returned
// buffer until the test ends.
func CaptureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	restore := output.SetOutput(&buf)
	t.Cleanup(restore)
	return &buf
}

// StripANSI removes terminal color sequences.
func StripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}
