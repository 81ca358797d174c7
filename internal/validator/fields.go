package validator

// Field describes one value collected by the create command.
type Field struct {
	// Key is the argument name (e.g. "domain-name").
	Key string

	// Prompt is the question shown by the interactive wizard.
	Prompt string

	// Validate checks the raw value.
	Validate Func

	// Sensitive values are masked in debug logs.
	Sensitive bool
}

// CreateFields returns the create command fields in argument order.
func CreateFields() []Field {
	return []Field{
		{Key: FieldDomainName, Prompt: "The domain name", Validate: DomainName},
		{Key: FieldBundleName, Prompt: "The bundle name", Validate: BundleName},
		{Key: FieldDescription, Prompt: "The bundle description", Validate: Description},
		{Key: FieldKeywords, Prompt: `The bundle keywords. Caution! Type it like this ["foo", "bar"]`, Validate: Keywords},
		{Key: FieldFullName, Prompt: "Your Full Name", Validate: FullName, Sensitive: true},
		{Key: FieldEmail, Prompt: "Your Email", Validate: Email, Sensitive: true},
	}
}

// Lookup returns the field with the given key.
func Lookup(key string) (Field, bool) {
	for _, f := range CreateFields() {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}
