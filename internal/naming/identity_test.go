package naming

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/bundlesmith/cli/internal/errors"
)

func TestNewIdentity(t *testing.T) {
	id, err := NewIdentity("Acme", "FooBundle")
	require.NoError(t, err)

	assert.Equal(t, "acme", id.Domain)
	assert.Equal(t, "foo-bundle", id.Bundle)
	assert.Equal(t, "AcmeFooBundle", id.FullName)
	assert.Equal(t, "AcmeFoo", id.ShortName)
	assert.Equal(t, "Acme", id.DomainPascal)
	assert.Equal(t, "FooBundle", id.BundlePascal)
	assert.Equal(t, "acme_foo", id.Snake)
	assert.Equal(t, "acme-foo", id.Kebab)
	assert.Equal(t, "acme/foo", id.Slashed)
	assert.Equal(t, "Acme Foo", id.Human)
	assert.Equal(t, "acmeFoo", id.LowerCamel)
	assert.Equal(t, "lib/acme/foo-bundle", id.Dir)
	assert.Equal(t, "AcmeFooBundle", id.String())
}

func TestNewIdentity_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		domain string
		bundle string
	}{
		{"empty domain", "", "foo"},
		{"empty bundle", "acme", ""},
		{"digits in domain", "acme1", "foo"},
		{"underscore in bundle", "acme", "foo_bar"},
		{"dash only domain", "-", "foo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewIdentity(tt.domain, tt.bundle)
			require.Error(t, err)
			assert.True(t, errors.Is(err, oerrors.ErrValidation))
		})
	}
}

func TestIdentityViews(t *testing.T) {
	id, err := NewIdentity("acme", "foo-bundle")
	require.NoError(t, err)

	views := id.Views()
	assert.Equal(t, "AcmeFoo", views["shortName"])
	assert.Equal(t, "acme_foo", views["snake"])
	assert.Equal(t, "FooBundle", views["bundlePascal"])
	assert.Equal(t, "acme/foo-bundle", views["package"])
	assert.Len(t, views, 13)
}
