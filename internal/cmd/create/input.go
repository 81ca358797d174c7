package create

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bundlesmith/cli/internal/config"
	oerrors "github.com/bundlesmith/cli/internal/errors"
	"github.com/bundlesmith/cli/internal/output"
	"github.com/bundlesmith/cli/internal/prompt"
	"github.com/bundlesmith/cli/internal/validator"
)

// configKeys maps the create fields that accept a configured default.
var configKeys = map[string]string{
	validator.FieldDescription: config.KeyDescription,
	validator.FieldKeywords:    config.KeyKeywords,
	validator.FieldFullName:    config.KeyAuthorName,
	validator.FieldEmail:       config.KeyAuthorEmail,
}

// defaults resolves the configured default of every field that has one.
func defaults(cfg *config.Config) map[string]string {
	out := make(map[string]string, len(configKeys))
	var resolved []config.ResolvedValue
	for field, key := range configKeys {
		r := config.Resolve(config.ResolveOptions{Key: key, ConfigValue: cfg.Lookup(key)})
		if r.Value == "" {
			continue
		}
		out[field] = r.Value
		if f, ok := validator.Lookup(field); ok && f.Sensitive {
			r.Value = prompt.Mask(r.Value)
		}
		resolved = append(resolved, r)
	}
	config.LogResolvedValues(resolved...)
	return out
}

type supplied struct {
	field validator.Field
	value string
}

// collect gathers one value per create field from args, then from
// configured defaults or the wizard. Non-interactive runs fail on the first
// missing or invalid value.
func collect(args []string, defs map[string]string, interactive bool) (map[string]string, error) {
	fields := validator.CreateFields()
	values := make(map[string]string, len(fields))

	var given []supplied
	var questions []prompt.Question

	for i, f := range fields {
		if i < len(args) {
			_, err := f.Validate(args[i])
			switch {
			case err == nil:
				values[f.Key] = args[i]
				given = append(given, supplied{field: f, value: args[i]})
				continue
			case !interactive:
				return nil, err
			}
			output.Debug("argument rejected, asking again", "field", f.Key)
			questions = append(questions, prompt.Question{Field: f, Default: defs[f.Key]})
			continue
		}

		def := defs[f.Key]
		if interactive {
			questions = append(questions, prompt.Question{Field: f, Default: def})
			continue
		}
		if def == "" {
			return nil, oerrors.NewValidationError(
				fmt.Sprintf("The %s argument is required.", f.Key),
				f.Key,
				"Pass it on the command line, set its default in the config file, or drop --no-interaction",
			)
		}
		if _, err := f.Validate(def); err != nil {
			return nil, err
		}
		values[f.Key] = def
	}

	if !interactive {
		return values, nil
	}

	output.Println(prompt.Intro(filepath.Base(os.Args[0])))
	for _, g := range given {
		output.Println(prompt.Echo(g.field, g.value))
	}

	if len(questions) == 0 {
		return values, nil
	}

	answers, err := ask(questions)
	if err != nil {
		return nil, err
	}
	for k, v := range answers {
		values[k] = v
	}
	return values, nil
}
