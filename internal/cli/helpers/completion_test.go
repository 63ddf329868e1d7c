package helpers_test

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"pstack.dev/pstack/internal/cli/helpers"
	"pstack.dev/pstack/testhelpers"
)

func newCommand(t *testing.T, dir string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String(helpers.DirectoryFlag, dir, "")
	return cmd
}

func TestCompletePatches(t *testing.T) {
	t.Parallel()

	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
	require.NoError(t, scene.Repo.CreateBranch("feature"))
	require.NoError(t, testhelpers.WriteSeries(scene.GitDir(), "main", testhelpers.SeriesFixture{
		Applied:   []testhelpers.SeriesPatch{{Name: "p1", Top: "x"}},
		Unapplied: []testhelpers.SeriesPatch{{Name: "p2", Top: "y"}},
	}))

	names, directive := helpers.CompletePatches(newCommand(t, scene.Dir), nil, "")
	require.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
	require.Equal(t, []string{"p1", "p2"}, names)

	names, _ = helpers.CompletePatches(newCommand(t, scene.Dir), nil, "p1@f")
	require.ElementsMatch(t, []string{"p1@main", "p1@feature"}, names)
}

func TestCompletePatches_NotARepository(t *testing.T) {
	t.Parallel()

	_, directive := helpers.CompletePatches(newCommand(t, t.TempDir()), nil, "")
	require.Equal(t, cobra.ShellCompDirectiveError, directive)
}
