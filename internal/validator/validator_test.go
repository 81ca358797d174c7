package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/bundlesmith/cli/internal/errors"
)

func TestValidators(t *testing.T) {
	tests := []struct {
		name      string
		fn        Func
		input     string
		wantErr   bool
		wantField string
		wantMsg   string
	}{
		{"domain ok", DomainName, "Acme", false, "", ""},
		{"domain with dash", DomainName, "acme-corp", false, "", ""},
		{"domain empty", DomainName, "", true, FieldDomainName, "can not be empty"},
		{"domain digits", DomainName, "acme2", true, FieldDomainName, "latin characters and dashes"},
		{"domain space", DomainName, "acme corp", true, FieldDomainName, "latin characters and dashes"},
		{"bundle ok", BundleName, "FooBundle", false, "", ""},
		{"bundle underscore", BundleName, "foo_bundle", true, FieldBundleName, "latin characters and dashes"},
		{"bundle empty", BundleName, "", true, FieldBundleName, "can not be empty"},
		{"keywords ok", Keywords, `["foo", "bar"]`, false, "", ""},
		{"keywords single quoted", Keywords, `['foo']`, false, "", ""},
		{"keywords unquoted", Keywords, `[foo, bar]`, true, FieldKeywords, `["foo", "bar"]`},
		// Quotes and spaces are interchangeable around a word, so padded
		// unquoted tokens pass even though they are not valid JSON.
		{"keywords padded unquoted", Keywords, `[ foo , bar ]`, false, "", ""},
		{"keywords mixed quotes", Keywords, `["foo' ]`, false, "", ""},
		{"keywords no brackets", Keywords, `"foo", "bar"`, true, FieldKeywords, `["foo", "bar"]`},
		{"keywords empty", Keywords, "", true, FieldKeywords, "can not be empty"},
		{"email ok", Email, "john@example.com", false, "", ""},
		{"email missing at", Email, "john.example.com", true, FieldEmail, "real email"},
		{"email empty", Email, "", true, FieldEmail, "can not be empty"},
		{"password ok", Password, "secret1", false, "", ""},
		{"password short after trim", Password, "  abc  ", true, FieldPassword, "at least 6"},
		{"password empty", Password, "", true, FieldPassword, "can not be empty"},
		{"username ok", Username, "john_doe", false, "", ""},
		{"username uppercase", Username, "JohnDoe", true, FieldUsername, "lowercase"},
		{"full name ok", FullName, "John Doe", false, "", ""},
		{"full name empty", FullName, "", true, FieldFullName, "can not be empty"},
		{"description ok", Description, "This bundle adds support for foo", false, "", ""},
		{"description empty", Description, "", true, FieldDescription, "can not be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn(tt.input)
			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, tt.input, got, "valid input is returned unchanged")
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, oerrors.ErrValidation))
			assert.Empty(t, got)

			var detail *oerrors.DetailError
			require.True(t, errors.As(err, &detail))
			assert.Equal(t, tt.wantField, detail.Field)
			assert.Contains(t, detail.Message, tt.wantMsg)
		})
	}
}

func TestCreateFields(t *testing.T) {
	fields := CreateFields()
	require.Len(t, fields, 6)

	keys := make([]string, 0, len(fields))
	for _, f := range fields {
		keys = append(keys, f.Key)
		assert.NotNil(t, f.Validate, "field %s has no validator", f.Key)
		assert.NotEmpty(t, f.Prompt)
	}
	assert.Equal(t, []string{
		FieldDomainName, FieldBundleName, FieldDescription, FieldKeywords, FieldFullName, FieldEmail,
	}, keys)
}

func TestLookup(t *testing.T) {
	f, ok := Lookup(FieldEmail)
	require.True(t, ok)
	assert.True(t, f.Sensitive)

	_, ok = Lookup("nope")
	assert.False(t, ok)
}
