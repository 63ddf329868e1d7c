package series_test

import (
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/require"

	pserrors "pstack.dev/pstack/internal/errors"
	"pstack.dev/pstack/internal/series"
	"pstack.dev/pstack/testhelpers"
)

func newFixture(t *testing.T, branch string) *series.Series {
	t.Helper()

	fs := memfs.New()
	err := testhelpers.WriteSeries(fs, branch, testhelpers.SeriesFixture{
		Applied: []testhelpers.SeriesPatch{
			{Name: "p1", Top: "t1", Bottom: "b1", OldTop: "ot1", OldBottom: "ob1"},
			{Name: "p2", Top: "t2", Bottom: "t1"},
		},
		Unapplied: []testhelpers.SeriesPatch{
			{Name: "p3", Top: "t3", Bottom: "t2"},
		},
		Base: "b1",
	})
	require.NoError(t, err)

	s, err := series.Open(fs, branch)
	require.NoError(t, err)
	return s
}

func TestOpen(t *testing.T) {
	t.Parallel()

	s := newFixture(t, "main")
	require.Equal(t, "main", s.Branch())
	require.Equal(t, []string{"p1", "p2"}, s.AppliedPatches())
	require.Equal(t, []string{"p3"}, s.UnappliedPatches())

	current, ok := s.CurrentPatch()
	require.True(t, ok)
	require.Equal(t, "p2", current)
}

func TestPatchIDs(t *testing.T) {
	t.Parallel()

	s := newFixture(t, "feature/x")

	tests := []struct {
		name     string
		read     func(string) (string, error)
		patch    string
		expected string
	}{
		{name: "top", read: s.PatchTop, patch: "p1", expected: "t1"},
		{name: "bottom", read: s.PatchBottom, patch: "p1", expected: "b1"},
		{name: "old top", read: s.PatchOldTop, patch: "p1", expected: "ot1"},
		{name: "old bottom", read: s.PatchOldBottom, patch: "p1", expected: "ob1"},
		{name: "unapplied top", read: s.PatchTop, patch: "p3", expected: "t3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := tt.read(tt.patch)
			require.NoError(t, err)
			require.Equal(t, tt.expected, id)
		})
	}

	base, err := s.BaseObjectID()
	require.NoError(t, err)
	require.Equal(t, "b1", base)
}

func TestPatchIDs_Missing(t *testing.T) {
	t.Parallel()

	s := newFixture(t, "main")

	_, err := s.PatchOldTop("p2")
	require.ErrorContains(t, err, "patch p2 has no top.old")

	_, err = s.PatchTop("nope")
	require.Error(t, err)
}

func TestOpen_NotInitialized(t *testing.T) {
	t.Parallel()

	_, err := series.Open(memfs.New(), "main")
	require.ErrorIs(t, err, pserrors.ErrSeriesNotInitialized)
}

func TestOpen_EmptySeries(t *testing.T) {
	t.Parallel()

	fs := memfs.New()
	require.NoError(t, fs.MkdirAll("patches/main", 0750))

	s, err := series.Open(fs, "main")
	require.NoError(t, err)
	require.Empty(t, s.AppliedPatches())
	require.Empty(t, s.UnappliedPatches())

	_, ok := s.CurrentPatch()
	require.False(t, ok)

	_, err = s.BaseObjectID()
	require.Error(t, err)
}

func TestOpen_IgnoresBlankLines(t *testing.T) {
	t.Parallel()

	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "patches/main/applied", []byte("p1\n\n  p2  \n"), 0600))

	s, err := series.Open(fs, "main")
	require.NoError(t, err)
	require.Equal(t, []string{"p1", "p2"}, s.AppliedPatches())
}

func TestOpener(t *testing.T) {
	t.Parallel()

	fs := memfs.New()
	require.NoError(t, testhelpers.WriteSeries(fs, "other", testhelpers.SeriesFixture{
		Applied: []testhelpers.SeriesPatch{{Name: "q1", Top: "tq1"}},
	}))

	opener := series.Opener{GitDir: fs}
	stack, err := opener.OpenStack("other")
	require.NoError(t, err)
	require.Equal(t, []string{"q1"}, stack.AppliedPatches())

	_, err = opener.OpenStack("missing")
	require.ErrorIs(t, err, pserrors.ErrSeriesNotInitialized)
}
