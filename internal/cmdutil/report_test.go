package cmdutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bundlesmith/cli/internal/catalog"
	"github.com/bundlesmith/cli/internal/output"
	"github.com/bundlesmith/cli/internal/scaffold"
	"github.com/bundlesmith/cli/internal/testutil"
)

func sampleRun() (*scaffold.Result, []scaffold.Step) {
	res := &scaffold.Result{
		Root: "lib/acme/foo-bundle",
		Created: []string{
			"lib/acme/foo-bundle",
			"lib/acme/foo-bundle/AcmeFooBundle.php",
			"lib/acme/foo-bundle/Controller",
			"lib/acme/foo-bundle/Controller/AcmeFooController.php",
		},
		Patched: []string{"composer.json", "config/packages/acme_foo.yaml"},
		Skipped: []string{"config/bundles.php"},
	}
	steps := []scaffold.Step{
		{Kind: catalog.KindDir, Path: "lib/acme/foo-bundle", Description: "Bundle root"},
		{Kind: catalog.KindCopy, Path: "lib/acme/foo-bundle/AcmeFooBundle.php", Description: "Bundle class"},
		{Kind: catalog.KindDir, Path: "lib/acme/foo-bundle/Controller"},
		{Kind: catalog.KindCopy, Path: "lib/acme/foo-bundle/Controller/AcmeFooController.php", Description: "Controller"},
		{Kind: catalog.KindPatch, Source: "composer.json", Path: "composer.json"},
		{Kind: catalog.KindPatch, Source: "config/bundles.php", Path: "config/bundles.php", Description: "Bundle registration"},
		{Kind: catalog.KindRename, Source: "config/packages/acme_foo.yaml", Path: "config/packages/acme_foo.yaml"},
	}
	return res, steps
}

func TestWriteResult(t *testing.T) {
	buf := testutil.CaptureOutput(t)

	res, steps := sampleRun()
	WriteResult(res, steps)

	out := testutil.StripANSI(buf.String())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	assert.Equal(t, "lib/acme/foo-bundle/", lines[0])
	assert.Contains(t, out, "├── Controller/")
	assert.Contains(t, out, "AcmeFooBundle.php")
	assert.Contains(t, out, "Bundle class")

	assert.Contains(t, out, "f:composer.json")
	assert.Regexp(t, `f:composer\.json\s+`+output.StatusPatched, out)
	assert.Regexp(t, `f:config/packages/acme_foo\.yaml\s+`+output.StatusRenamed, out)
	assert.Regexp(t, `f:config/bundles\.php\s+`+output.StatusSkipped+`\s+\(Bundle registration\)`, out)
}

func TestWriteResult_Nil(t *testing.T) {
	buf := testutil.CaptureOutput(t)
	WriteResult(nil, nil)
	assert.Empty(t, buf.String())
}

func TestResultTree_IgnoresPathsOutsideRoot(t *testing.T) {
	res := &scaffold.Result{
		Root:    "lib/acme/foo-bundle",
		Created: []string{"lib/acme/foo-bundle/README.md", "lib/acme/foo-bundle-extra/x.php"},
	}
	tree := testutil.StripANSI(ResultTree(res, nil))
	assert.Contains(t, tree, "README.md")
	assert.NotContains(t, tree, "x.php")
}

func TestSuccessMessage(t *testing.T) {
	msg := testutil.StripANSI(SuccessMessage(&scaffold.Result{Root: "lib/acme/foo-bundle"}))
	assert.Equal(t, "✔ The bundle skeleton was successfully created at: /lib/acme/foo-bundle", msg)
}
