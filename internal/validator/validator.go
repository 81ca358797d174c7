// Package validator checks raw user input before it reaches the name
// transformer. Validators never normalize: they return the input unchanged
// or a validation error naming the field and the violated rule.
package validator

import (
	"regexp"
	"strings"
	"unicode/utf8"

	oerrors "github.com/bundlesmith/cli/internal/errors"
)

// Field keys, shared with the CLI argument names.
const (
	FieldDomainName  = "domain-name"
	FieldBundleName  = "bundle-name"
	FieldDescription = "bundle-description"
	FieldKeywords    = "bundle-keywords"
	FieldFullName    = "your-name"
	FieldEmail       = "your-email"
	FieldUsername    = "username"
	FieldPassword    = "password"
)

// MinPasswordLength is the minimum trimmed length of a password.
const MinPasswordLength = 6

var (
	nameRegex     = regexp.MustCompile(`^[A-Za-z-]+$`)
	usernameRegex = regexp.MustCompile(`^[a-z_]+$`)
	keywordsRegex = regexp.MustCompile(`^\[[\s'"]+\w+[\s'"]+(,[\s'"]+\w+[\s'"]+)*]$`)
)

// Func validates one raw input value.
type Func func(raw string) (string, error)

// DomainName accepts latin letters and dashes only.
func DomainName(raw string) (string, error) {
	if raw == "" {
		return "", oerrors.NewValidationError("The domain name can not be empty.", FieldDomainName, "")
	}
	if !nameRegex.MatchString(raw) {
		return "", oerrors.NewValidationError(
			"The domain name must contain only latin characters and dashes.", FieldDomainName, `e.g. "Acme"`)
	}
	return raw, nil
}

// BundleName accepts latin letters and dashes only.
func BundleName(raw string) (string, error) {
	if raw == "" {
		return "", oerrors.NewValidationError("The bundle name can not be empty.", FieldBundleName, "")
	}
	if !nameRegex.MatchString(raw) {
		return "", oerrors.NewValidationError(
			"The bundle name must contain only latin characters and dashes.", FieldBundleName, `e.g. "FooBundle"`)
	}
	return raw, nil
}

// Description accepts any non-empty text.
func Description(raw string) (string, error) {
	if raw == "" {
		return "", oerrors.NewValidationError("The bundle description can not be empty.", FieldDescription, "")
	}
	return raw, nil
}

// Keywords accepts a bracketed list of quoted words, e.g. ["foo", "bar"].
// Each word only needs quotes or whitespace around it, so "[ foo , bar ]"
// is accepted too.
func Keywords(raw string) (string, error) {
	if raw == "" {
		return "", oerrors.NewValidationError("The bundle keywords can not be empty.", FieldKeywords, "")
	}
	if !keywordsRegex.MatchString(raw) {
		return "", oerrors.NewValidationError(
			`The keywords must be like ["foo", "bar"].`, FieldKeywords, "Quote every keyword and separate them with commas.")
	}
	return raw, nil
}

// FullName accepts any non-empty text.
func FullName(raw string) (string, error) {
	if raw == "" {
		return "", oerrors.NewValidationError("The full name can not be empty.", FieldFullName, "")
	}
	return raw, nil
}

// Email requires an "@" somewhere in the value.
func Email(raw string) (string, error) {
	if raw == "" {
		return "", oerrors.NewValidationError("The email can not be empty.", FieldEmail, "")
	}
	if !strings.Contains(raw, "@") {
		return "", oerrors.NewValidationError("The email should look like a real email.", FieldEmail, "")
	}
	return raw, nil
}

// Username accepts lowercase latin letters and underscores.
func Username(raw string) (string, error) {
	if raw == "" {
		return "", oerrors.NewValidationError("The username can not be empty.", FieldUsername, "")
	}
	if !usernameRegex.MatchString(raw) {
		return "", oerrors.NewValidationError(
			"The username must contain only lowercase latin characters and underscores.", FieldUsername, "")
	}
	return raw, nil
}

// Password requires at least MinPasswordLength characters after trimming.
func Password(raw string) (string, error) {
	if raw == "" {
		return "", oerrors.NewValidationError("The password can not be empty.", FieldPassword, "")
	}
	if utf8.RuneCountInString(strings.TrimSpace(raw)) < MinPasswordLength {
		return "", oerrors.NewValidationError("The password must be at least 6 characters long.", FieldPassword, "")
	}
	return raw, nil
}
