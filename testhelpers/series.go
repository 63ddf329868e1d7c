package testhelpers

import (
	"path"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// SeriesPatch describes one patch of a series fixture. Empty ids are not written.
type SeriesPatch struct {
	Name      string
	Top       string
	Bottom    string
	OldTop    string
	OldBottom string
}

// SeriesFixture describes the patch series of one branch.
type SeriesFixture struct {
	Applied   []SeriesPatch
	Unapplied []SeriesPatch
	Base      string
}

// WriteSeries writes fixture as the series of branch into gitDir, using the
// same layout the series package reads.
func WriteSeries(gitDir billy.Filesystem, branch string, fixture SeriesFixture) error {
	dir := path.Join("patches", branch)

	if err := writeLines(gitDir, path.Join(dir, "applied"), names(fixture.Applied)); err != nil {
		return err
	}
	if err := writeLines(gitDir, path.Join(dir, "unapplied"), names(fixture.Unapplied)); err != nil {
		return err
	}

	for _, p := range append(append([]SeriesPatch{}, fixture.Applied...), fixture.Unapplied...) {
		patchDir := path.Join(dir, "patches", p.Name)
		if err := gitDir.MkdirAll(patchDir, 0750); err != nil {
			return err
		}
		facets := map[string]string{
			"top":        p.Top,
			"bottom":     p.Bottom,
			"top.old":    p.OldTop,
			"bottom.old": p.OldBottom,
		}
		for file, id := range facets {
			if id == "" {
				continue
			}
			if err := util.WriteFile(gitDir, path.Join(patchDir, file), []byte(id+"\n"), 0600); err != nil {
				return err
			}
		}
	}

	if fixture.Base != "" {
		if err := util.WriteFile(gitDir, path.Join("refs", "bases", branch), []byte(fixture.Base+"\n"), 0600); err != nil {
			return err
		}
	}
	return nil
}

func names(patches []SeriesPatch) []string {
	out := make([]string, 0, len(patches))
	for _, p := range patches {
		out = append(out, p.Name)
	}
	return out
}

func writeLines(fs billy.Filesystem, name string, lines []string) error {
	content := strings.Join(lines, "\n")
	if len(lines) > 0 {
		content += "\n"
	}
	return util.WriteFile(fs, name, []byte(content), 0600)
}
