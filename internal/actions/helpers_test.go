package actions_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"pstack.dev/pstack/internal/output"
	"pstack.dev/pstack/internal/runtime"
	"pstack.dev/pstack/testhelpers"
)

// seriesScene holds a repository with three commits and a series on main:
// p1 and p2 applied, p3 unapplied.
type seriesScene struct {
	*testhelpers.Scene
	shas map[string]string
}

func newSeriesScene(t *testing.T) *seriesScene {
	t.Helper()

	scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
		for _, msg := range []string{"base", "first", "second"} {
			if err := s.Repo.CreateChangeAndCommit(msg, msg); err != nil {
				return err
			}
		}
		return nil
	})

	shas := map[string]string{}
	for rev, key := range map[string]string{"HEAD~2": "base", "HEAD~1": "p1", "HEAD": "p2"} {
		sha, err := scene.Repo.GetRevision(rev)
		require.NoError(t, err)
		shas[key] = sha
	}

	require.NoError(t, testhelpers.WriteSeries(scene.GitDir(), "main", testhelpers.SeriesFixture{
		Applied: []testhelpers.SeriesPatch{
			{Name: "p1", Top: shas["p1"], Bottom: shas["base"]},
			{Name: "p2", Top: shas["p2"], Bottom: shas["p1"], OldTop: shas["p1"]},
		},
		Unapplied: []testhelpers.SeriesPatch{
			{Name: "p3", Top: shas["p2"], Bottom: shas["p1"]},
		},
		Base: shas["base"],
	}))

	return &seriesScene{Scene: scene, shas: shas}
}

// newContext opens dir and captures everything the action prints
func newContext(t *testing.T, dir string) (*runtime.Context, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer
	splog, err := output.NewSplogWithConfig(&out, &out, "")
	require.NoError(t, err)

	ctx, err := runtime.GetContext(dir, splog)
	require.NoError(t, err)
	return ctx, &out
}

// newBareContext captures output for actions that need no repository
func newBareContext(t *testing.T) (*runtime.Context, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer
	splog, err := output.NewSplogWithConfig(&out, &out, "")
	require.NoError(t, err)
	return runtime.NewContext(splog), &out
}
