package moderation

import (
	"slices"

	"support-chat/errors"

	goahocorasick "github.com/anknown/ahocorasick"
)

// newMatcher builds the Aho-Corasick automaton.
// The underlying double-array trie expects sorted, unique keywords.
func newMatcher(words []string, normalize func(string) string) (*goahocorasick.Machine, error) {
	patterns := make([][]rune, 0, len(words))
	for _, word := range words {
		if word == "" {
			continue
		}
		patterns = append(patterns, []rune(normalize(word)))
	}
	if len(patterns) == 0 {
		return nil, errors.ErrEmptyWords
	}
	slices.SortFunc(patterns, slices.Compare[[]rune])
	patterns = slices.CompactFunc(patterns, slices.Equal[[]rune])

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return m, nil
}
