package domain

import (
	"fmt"
	"strings"
)

// Modifier vocabulary for generated names, in priority order: descriptive
// adjectives, state words, search suffixes.
var nameModifiers = []string{
	"beautiful", "amazing", "stunning", "gorgeous", "nice",
	"great", "perfect", "lovely", "wonderful",
	"new", "fresh", "original", "authentic", "unique",
	"classic", "modern", "vintage", "traditional", "famous",
	"photo", "image", "picture", "pic", "wallpaper",
	"background", "cover", "banner", "hd", "4k", "free", "stock",
}

var nameSeparators = []string{"-", "_"}

// NameGenerator produces unique file name stems from a set of keywords.
// Names are derived in phases: keyword permutations with each separator,
// then a modifier prefixed, then suffixed, then prefix and suffix pairs,
// finally a numeric fallback. Output is deterministic for a given input.
type NameGenerator struct {
	words     []string
	modifiers []string
}

func NewNameGenerator(words []string) *NameGenerator {
	cleaned := make([]string, 0, len(words))
	for _, word := range words {
		word = strings.ToLower(strings.TrimSpace(word))
		if word != "" {
			cleaned = append(cleaned, word)
		}
	}

	used := make(map[string]bool, len(cleaned))
	for _, word := range cleaned {
		used[word] = true
	}

	modifiers := make([]string, 0, len(nameModifiers))
	for _, modifier := range nameModifiers {
		if !used[modifier] {
			modifiers = append(modifiers, modifier)
		}
	}

	return &NameGenerator{words: cleaned, modifiers: modifiers}
}

func (g *NameGenerator) Generate(count int) []string {
	if count <= 0 {
		return nil
	}

	names := make([]string, 0, count)
	seen := make(map[string]bool)

	add := func(name string) bool {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
		return len(names) >= count
	}

	perms := permutations(g.words)

	for _, perm := range perms {
		for _, sep := range nameSeparators {
			if add(strings.Join(perm, sep)) {
				return names
			}
		}
	}

	for _, modifier := range g.modifiers {
		for _, perm := range perms {
			for _, sep := range nameSeparators {
				if add(modifier + sep + strings.Join(perm, sep)) {
					return names
				}
			}
		}
	}

	for _, modifier := range g.modifiers {
		for _, perm := range perms {
			for _, sep := range nameSeparators {
				if add(strings.Join(perm, sep) + sep + modifier) {
					return names
				}
			}
		}
	}

	for _, prefix := range g.modifiers {
		for _, suffix := range g.modifiers {
			if prefix == suffix {
				continue
			}
			for _, perm := range perms {
				for _, sep := range nameSeparators {
					if add(prefix + sep + strings.Join(perm, sep) + sep + suffix) {
						return names
					}
				}
			}
		}
	}

	base := strings.Join(g.words, "-")
	for counter := 1; len(names) < count; counter++ {
		add(fmt.Sprintf("%s_%d", base, counter))
	}

	return names
}

// EstimateCombinations returns the number of names available for a keyword
// count before the numeric fallback kicks in.
func EstimateCombinations(wordCount int) int {
	base := factorial(wordCount) * len(nameSeparators)
	m := len(nameModifiers)

	return base + base*m + base*m + base*m*(m-1)
}

func factorial(n int) int {
	result := 1
	for i := 2; i <= n; i++ {
		result *= i
	}

	return result
}

func permutations(words []string) [][]string {
	if len(words) <= 1 {
		single := make([]string, len(words))
		copy(single, words)
		return [][]string{single}
	}

	var perms [][]string
	for i := range words {
		rest := make([]string, 0, len(words)-1)
		rest = append(rest, words[:i]...)
		rest = append(rest, words[i+1:]...)

		for _, perm := range permutations(rest) {
			full := make([]string, 0, len(words))
			full = append(full, words[i])
			full = append(full, perm...)
			perms = append(perms, full)
		}
	}

	return perms
}
