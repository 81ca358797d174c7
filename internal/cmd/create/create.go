// Package create implements the create command, which generates a bundle
// skeleton in a host project.
package create

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/bundlesmith/cli/internal/cmdtypes"
	"github.com/bundlesmith/cli/internal/cmdutil"
	"github.com/bundlesmith/cli/internal/config"
	oerrors "github.com/bundlesmith/cli/internal/errors"
	"github.com/bundlesmith/cli/internal/naming"
	"github.com/bundlesmith/cli/internal/output"
	"github.com/bundlesmith/cli/internal/prompt"
	"github.com/bundlesmith/cli/internal/scaffold"
	"github.com/bundlesmith/cli/internal/validator"
)

// Hooks replaced by tests.
var (
	stdinIsTTY = output.StdinIsTTY
	ask        = func(questions []prompt.Question) (map[string]string, error) {
		return prompt.Ask(questions)
	}
	now = time.Now
)

// NewCreateCmd creates the create command.
func NewCreateCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var pf cmdutil.ProjectFlags
	var noInteraction bool

	c := &cobra.Command{
		Use:   "create [domain-name] [bundle-name] [bundle-description] [bundle-keywords] [your-name] [your-email]",
		Short: "Create a Symfony bundle skeleton",
		Long: `Create the skeleton of a Symfony bundle under lib/<domain>/<bundle>/
of the host project and register it in the project.

Every argument is optional. Missing values are asked for one at a time;
values given on the command line are echoed masked. With --no-interaction,
or when stdin is not a terminal, a missing or invalid value aborts.

Defaults for the description, keywords, name and email questions come from
the config file (bundle.*, author.*) or BUNDLESMITH_* variables.

Examples:
  # Ask for everything
  bundlesmith create

  # Fully non-interactive
  bundlesmith create Acme FooBundle "Foo support" '["foo", "bar"]' "Jane Doe" jane@example.com --no-interaction

  # Generate into another project
  bundlesmith create Acme FooBundle --project-dir ../shop`,
		Args: cobra.MaximumNArgs(len(validator.CreateFields())),
		RunE: func(c *cobra.Command, args []string) error {
			return runCreate(c.Context(), args, cfg, &pf, noInteraction)
		},
	}

	pf.AddTo(c)
	c.Flags().BoolVarP(&noInteraction, "no-interaction", "n", false,
		"Never prompt; fail on missing or invalid values")

	return c
}

func runCreate(ctx context.Context, args []string, cfg *cmdtypes.GlobalConfig, pf *cmdutil.ProjectFlags, noInteraction bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	settings := cfg.Settings()

	interactive := !noInteraction && stdinIsTTY()
	values, err := collect(args, defaults(settings), interactive)
	if err != nil {
		if errors.Is(err, prompt.ErrCancelled) {
			return &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: err}
		}
		return cmdtypes.Exit(err)
	}

	id, err := naming.NewIdentity(values[validator.FieldDomainName], values[validator.FieldBundleName])
	if err != nil {
		return cmdtypes.Exit(err)
	}

	fsys := cfg.Filesystem()
	rp := pf.Resolve(settings)

	projectDir, err := projectRoot(fsys, rp.ProjectDir.Value)
	if err != nil {
		return cmdtypes.Exit(err)
	}

	src, err := cmdutil.LoadSources(fsys, rp)
	if err != nil {
		return cmdtypes.Exit(err)
	}

	engine := scaffold.NewEngine(afero.NewBasePathFs(fsys, projectDir), src.Skeleton, src.Catalog, now)
	steps, err := engine.Plan(id)
	if err != nil {
		return cmdtypes.Exit(err)
	}

	fields := scaffold.Fields{
		Description: values[validator.FieldDescription],
		Keywords:    values[validator.FieldKeywords],
		AuthorName:  values[validator.FieldFullName],
		AuthorEmail: values[validator.FieldEmail],
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	output.Debug("generating bundle", "bundle", id.Package, "project", projectDir, "entries", len(steps))

	var res *scaffold.Result
	err = output.RunWithSpinner(ctx, func(ctx context.Context) error {
		var genErr error
		res, genErr = engine.Generate(ctx, id, fields)
		return genErr
	}, output.WithTitle("Creating "+id.Package))
	if err != nil {
		if res != nil && len(res.Created)+len(res.Patched) > 0 {
			cmdutil.WriteResult(res, steps)
			output.Warn("generation stopped, files written so far were left in place", "root", res.Root)
		}
		return cmdtypes.Exit(err)
	}

	cmdutil.WriteResult(res, steps)
	output.Println("")
	output.Println(cmdutil.SuccessMessage(res))
	return nil
}

// projectRoot returns the absolute host project directory, which must exist.
func projectRoot(fsys afero.Fs, dir string) (string, error) {
	expanded, err := config.ExpandPath(dir)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", oerrors.NewFilesystemError("resolving project directory", expanded, err)
	}

	ok, err := afero.DirExists(fsys, abs)
	if err != nil {
		return "", oerrors.NewFilesystemError("checking project directory", abs, err)
	}
	if !ok {
		return "", oerrors.NewNotFoundError(
			"project directory does not exist",
			abs,
			fmt.Sprintf("Pass --project-dir or set %s", config.EnvVar(config.KeyProjectDir)),
		)
	}
	return abs, nil
}
