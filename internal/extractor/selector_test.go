package extractor

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/dtsdoc/internal/models"
	"github.com/toyz/dtsdoc/internal/tsmodel"
	"github.com/toyz/dtsdoc/internal/utils"
)

func fakeFactory(files map[string][]models.SourceFile, calls *[]string, created *int) models.ProjectFactory {
	return func() models.Project {
		*created++
		return &fakeProject{files: files, calls: calls}
	}
}

func marked(comment string) []models.JSDoc {
	return []models.JSDoc{docBlock(comment, tag("doc", ""))}
}

func TestSelectorCollect(t *testing.T) {
	files := map[string][]models.SourceFile{
		"/root/a/*.d.ts": {
			fakeFile{
				path: "/root/a/one.d.ts",
				interfaces: []models.InterfaceDeclaration{
					fakeInterface{name: "First", docs: marked("first")},
					fakeInterface{name: "Hidden"},
				},
				typeAliases: []models.TypeAliasDeclaration{
					fakeAlias{name: "Kind", docs: marked(""), unions: []string{"'a'", "'b'"}},
					fakeAlias{name: "Private", unions: []string{"'x'", "'y'"}},
				},
				modules: []models.ModuleDeclaration{
					fakeModule{
						name:       "'pkg'",
						interfaces: []models.InterfaceDeclaration{fakeInterface{name: "InModule", docs: marked("")}},
					},
				},
			},
			fakeFile{
				path:       "/root/a/two.d.ts",
				interfaces: []models.InterfaceDeclaration{fakeInterface{name: "Second", docs: marked("")}},
			},
		},
		"/root/b.d.ts": {
			fakeFile{
				path:       "/root/b.d.ts",
				interfaces: []models.InterfaceDeclaration{fakeInterface{name: "Third", docs: marked("")}},
			},
		},
	}

	var calls []string
	var created int
	selector := NewSelector(fakeFactory(files, &calls, &created))

	result, err := selector.Collect([]string{"/root/a/*.d.ts", "/root/b.d.ts"})
	require.NoError(t, err)

	var interfaceNames []string
	for _, iface := range result.Interfaces {
		interfaceNames = append(interfaceNames, iface.Name)
	}
	assert.Equal(t, []string{"First", "InModule", "Second", "Third"}, interfaceNames)

	require.Len(t, result.TypeAliases, 1)
	assert.Equal(t, "Kind", result.TypeAliases[0].Name)
	assert.Equal(t, "'a' | 'b'", result.TypeAliases[0].Shape)

	assert.Equal(t, []string{"/root/a/*.d.ts", "/root/b.d.ts"}, calls)
	assert.Equal(t, 2, created, "every location gets its own project")
}

func TestSelectorCollectEmpty(t *testing.T) {
	var calls []string
	var created int
	selector := NewSelector(fakeFactory(map[string][]models.SourceFile{
		"/root/x.d.ts": {fakeFile{path: "/root/x.d.ts"}},
	}, &calls, &created))

	result, err := selector.Collect([]string{"/root/x.d.ts"})
	require.NoError(t, err)
	assert.True(t, result.IsEmpty())

	result, err = selector.Collect(nil)
	require.NoError(t, err)
	assert.True(t, result.IsEmpty())
}

func TestSelectorCollectPropagatesProviderErrors(t *testing.T) {
	var calls []string
	var created int
	selector := NewSelector(fakeFactory(map[string][]models.SourceFile{}, &calls, &created))

	_, err := selector.Collect([]string{"/root/missing.d.ts"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.d.ts")
}

func TestSelectorCollectFromDeclarationFile(t *testing.T) {
	var log bytes.Buffer
	selector := NewSelector(
		tsmodel.Factory(),
		WithDiagnostics(utils.NewBufferedDiagnostics(utils.DiagnosticVerbose, &log)),
	)

	result, err := selector.Collect([]string{filepath.Join("testdata", "scenario.d.ts")})
	require.NoError(t, err)

	require.Len(t, result.Interfaces, 2, "undocumented and overridden interfaces are skipped")

	expected := models.InterfaceDescriptor{
		Name:        "Person",
		Description: "Person record",
		Members: []models.MemberDescriptor{
			{Name: "name", Type: "string", Description: "Name", Required: true},
			{Name: "age", Type: "number", Description: "Age in years", Required: false, Default: "0"},
		},
	}
	assert.Equal(t, expected, result.Interfaces[0])
	assert.Equal(t, expected, result.Interfaces[1], "module block declarations render like top-level ones")

	require.Len(t, result.TypeAliases, 1)
	assert.Equal(t, models.TypeAliasDescriptor{
		Name:        "Kind",
		Description: "Person kinds",
		Shape:       "'adult' | 'child'",
	}, result.TypeAliases[0])

	assert.Contains(t, log.String(), "interface Person")
	assert.Contains(t, log.String(), "type Kind")
}

func TestSelectorLogsSkippedDeclarationsAtDebugLevel(t *testing.T) {
	var verbose, debug bytes.Buffer

	for level, buf := range map[utils.DiagnosticLevel]*bytes.Buffer{
		utils.DiagnosticVerbose: &verbose,
		utils.DiagnosticDebug:   &debug,
	} {
		selector := NewSelector(tsmodel.Factory(), WithDiagnostics(utils.NewBufferedDiagnostics(level, buf)))
		_, err := selector.Collect([]string{filepath.Join("testdata", "scenario.d.ts")})
		require.NoError(t, err)
	}

	assert.NotContains(t, verbose.String(), "skipping")
	assert.Contains(t, debug.String(), "skipping interface Undocumented: no @doc in its last JSDoc block")
	assert.Contains(t, debug.String(), "skipping interface Overridden")
}
