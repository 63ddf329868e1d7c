package git_test

import (
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/require"

	"pstack.dev/pstack/internal/git"
	"pstack.dev/pstack/testhelpers"
)

const refSHA = "1111111111111111111111111111111111111111"

func TestProbeSlashedBranches(t *testing.T) {
	t.Parallel()

	t.Run("empty git directory", func(t *testing.T) {
		t.Parallel()
		slashed, err := git.ProbeSlashedBranches(memfs.New())
		require.NoError(t, err)
		require.False(t, slashed)
	})

	t.Run("flat loose branches", func(t *testing.T) {
		t.Parallel()
		fs := memfs.New()
		require.NoError(t, util.WriteFile(fs, "refs/heads/main", []byte(refSHA+"\n"), 0600))
		require.NoError(t, util.WriteFile(fs, "refs/heads/feature", []byte(refSHA+"\n"), 0600))

		slashed, err := git.ProbeSlashedBranches(fs)
		require.NoError(t, err)
		require.False(t, slashed)
	})

	t.Run("loose branch with slash", func(t *testing.T) {
		t.Parallel()
		fs := memfs.New()
		require.NoError(t, util.WriteFile(fs, "refs/heads/main", []byte(refSHA+"\n"), 0600))
		require.NoError(t, util.WriteFile(fs, "refs/heads/feature/x", []byte(refSHA+"\n"), 0600))

		slashed, err := git.ProbeSlashedBranches(fs)
		require.NoError(t, err)
		require.True(t, slashed)
	})

	t.Run("packed branch with slash", func(t *testing.T) {
		t.Parallel()
		fs := memfs.New()
		packed := "# pack-refs with: peeled fully-peeled sorted \n" +
			"1111111111111111111111111111111111111111 refs/heads/main\n" +
			"2222222222222222222222222222222222222222 refs/heads/team/feature\n"
		require.NoError(t, util.WriteFile(fs, "packed-refs", []byte(packed), 0600))

		slashed, err := git.ProbeSlashedBranches(fs)
		require.NoError(t, err)
		require.True(t, slashed)
	})

	t.Run("flat loose branches with a packed slashed branch", func(t *testing.T) {
		t.Parallel()
		fs := memfs.New()
		require.NoError(t, util.WriteFile(fs, "refs/heads/main", []byte(refSHA+"\n"), 0600))
		packed := "2222222222222222222222222222222222222222 refs/heads/release/v2\n"
		require.NoError(t, util.WriteFile(fs, "packed-refs", []byte(packed), 0600))

		slashed, err := git.ProbeSlashedBranches(fs)
		require.NoError(t, err)
		require.True(t, slashed)
	})

	t.Run("packed tags and remotes with slashes do not count", func(t *testing.T) {
		t.Parallel()
		fs := memfs.New()
		packed := "1111111111111111111111111111111111111111 refs/heads/main\n" +
			"2222222222222222222222222222222222222222 refs/tags/release/v1\n" +
			"^3333333333333333333333333333333333333333\n" +
			"4444444444444444444444444444444444444444 refs/remotes/origin/main\n"
		require.NoError(t, util.WriteFile(fs, "packed-refs", []byte(packed), 0600))

		slashed, err := git.ProbeSlashedBranches(fs)
		require.NoError(t, err)
		require.False(t, slashed)
	})
}

func TestProbeSlashedBranches_Repository(t *testing.T) {
	t.Parallel()

	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

	slashed, err := git.ProbeSlashedBranches(scene.GitDir())
	require.NoError(t, err)
	require.False(t, slashed)

	require.NoError(t, scene.Repo.CreateBranch("team/feature"))
	slashed, err = git.ProbeSlashedBranches(scene.GitDir())
	require.NoError(t, err)
	require.True(t, slashed)

	require.NoError(t, scene.Repo.PackRefs())
	slashed, err = git.ProbeSlashedBranches(scene.GitDir())
	require.NoError(t, err)
	require.True(t, slashed)
}
