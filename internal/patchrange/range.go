// Package patchrange resolves patch names and "first..last" ranges against an
// ordered patch list, as accepted by commands that operate on several patches.
package patchrange

import (
	"slices"
	"strings"

	"github.com/emirpasic/gods/sets/linkedhashset"

	pserrors "pstack.dev/pstack/internal/errors"
	"pstack.dev/pstack/internal/utils"
)

// Separator splits the two ends of a range
const Separator = ".."

// Resolve returns the patches selected by tokens, in token order.
//
// A token is either a patch name or a range "a..b" where either end may be
// omitted: a missing start means the first patch of universe and a missing end
// the last one. Both ends are inclusive. When a comes after b the range is
// returned in reverse order, from a down to b.
//
// Every name must be in universe and no patch may be selected twice across
// all tokens; violations return a *errors.RangeError.
func Resolve(tokens []string, universe []string) ([]string, error) {
	selected := linkedhashset.New()

	for _, token := range tokens {
		names, err := expand(token, universe)
		if err != nil {
			return nil, err
		}
		for _, name := range names {
			if selected.Contains(name) {
				return nil, pserrors.NewRangeError(pserrors.RangeDuplicate, name)
			}
			selected.Add(name)
		}
	}

	result := make([]string, 0, selected.Size())
	for _, v := range selected.Values() {
		result = append(result, v.(string))
	}
	return result, nil
}

// expand returns the patches a single token selects
func expand(token string, universe []string) ([]string, error) {
	ends := strings.Split(token, Separator)
	for _, name := range ends {
		if name != "" && !utils.ContainsString(universe, name) {
			return nil, pserrors.NewRangeError(pserrors.RangeUnknownPatch, name)
		}
	}

	switch len(ends) {
	case 1:
		if token == "" {
			return nil, pserrors.NewRangeError(pserrors.RangeUnknownPatch, token)
		}
		return []string{token}, nil
	case 2:
		if len(universe) == 0 {
			return nil, nil
		}
		first := 0
		if ends[0] != "" {
			first = slices.Index(universe, ends[0])
		}
		last := len(universe)
		if ends[1] != "" {
			last = slices.Index(universe, ends[1]) + 1
		}

		if last > first {
			return slices.Clone(universe[first:last]), nil
		}
		// Descending range: walk the stack downwards from first to last.
		names := slices.Clone(universe[last-1 : first+1])
		slices.Reverse(names)
		return names, nil
	default:
		return nil, pserrors.NewRangeError(pserrors.RangeMalformed, token)
	}
}
