package actions_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"pstack.dev/pstack/internal/actions"
	pserrors "pstack.dev/pstack/internal/errors"
	"pstack.dev/pstack/testhelpers"
)

func TestSeriesAction(t *testing.T) {
	t.Parallel()

	s := newSeriesScene(t)
	ctx, out := newContext(t, s.Dir)

	require.NoError(t, actions.SeriesAction(ctx))
	require.Equal(t, "+ p1\n> p2\n- p3\n", out.String())
}

func TestSeriesAction_NoSeries(t *testing.T) {
	t.Parallel()

	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
	ctx, _ := newContext(t, scene.Dir)

	err := actions.SeriesAction(ctx)
	require.ErrorIs(t, err, pserrors.ErrSeriesNotInitialized)
}

func TestPatchesAction(t *testing.T) {
	t.Parallel()

	s := newSeriesScene(t)

	tests := []struct {
		name     string
		opts     actions.PatchesOptions
		expected string
	}{
		{name: "open range", opts: actions.PatchesOptions{Ranges: []string{".."}}, expected: "p1\np2\n"},
		{name: "descending range", opts: actions.PatchesOptions{Ranges: []string{"p2..p1"}}, expected: "p2\np1\n"},
		{name: "unapplied", opts: actions.PatchesOptions{Ranges: []string{"p3"}, Unapplied: true}, expected: "p3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, out := newContext(t, s.Dir)
			require.NoError(t, actions.PatchesAction(ctx, tt.opts))
			require.Equal(t, tt.expected, out.String())
		})
	}

	t.Run("unapplied patch is unknown among applied", func(t *testing.T) {
		ctx, _ := newContext(t, s.Dir)
		err := actions.PatchesAction(ctx, actions.PatchesOptions{Ranges: []string{"p3"}})
		require.ErrorIs(t, err, pserrors.ErrRange)
		require.EqualError(t, err, "unknown patch name: p3")
	})
}
