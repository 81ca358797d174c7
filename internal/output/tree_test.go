package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderFileTree_Empty(t *testing.T) {
	assert.Empty(t, RenderFileTree("foo-bundle", nil))
}

func TestRenderFileTree(t *testing.T) {
	out := stripAnsi(RenderFileTree("foo-bundle", []TreeEntry{
		{Path: ".", Description: "Bundle root", IsDir: true},
		{Path: "AcmeFooBundle.php", Description: "Bundle class"},
		{Path: "Controller", IsDir: true},
		{Path: "Controller/AcmeFooController.php", Description: "Controller"},
		{Path: "Resources/public/css", IsDir: true},
	}))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Equal(t, "foo-bundle/", lines[0])

	// Directories sort before files.
	assert.True(t, strings.HasPrefix(lines[1], "├── Controller/"))
	assert.Contains(t, out, "│   └── AcmeFooController.php")
	assert.Contains(t, out, "Resources/")
	assert.Contains(t, out, "css/")
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], "└── AcmeFooBundle.php"))
}

func TestRenderFileTree_DescriptionsAligned(t *testing.T) {
	out := stripAnsi(RenderFileTree("root", []TreeEntry{
		{Path: "a.php", Description: "first"},
		{Path: "dir/nested.php", Description: "second"},
	}))

	var cols []int
	for _, line := range strings.Split(out, "\n") {
		for _, d := range []string{"first", "second"} {
			if i := strings.Index(line, d); i >= 0 {
				cols = append(cols, len([]rune(line[:i])))
			}
		}
	}
	if assert.Len(t, cols, 2) {
		assert.Equal(t, cols[0], cols[1])
	}
}
