package text

import "strings"

// Thesaurus maps a term to its hand-curated synonyms. Tables are flat:
// a synonym's own synonyms are never pulled in transitively, and a word
// may appear as a value under many keys.
type Thesaurus map[string][]string

// ExpandQuery broadens a raw query with synonyms from the thesaurus.
// The result starts with the original query verbatim, then each
// lowercased word followed by its synonyms, de-duplicated in first-seen
// order and joined with spaces. The expanded string feeds both the
// lexical tokenizer and the embedding model: it widens keyword overlap
// substantially while only mildly perturbing the embedding.
func ExpandQuery(query string, synonyms Thesaurus) string {
	words := strings.Fields(strings.ToLower(query))

	seen := make(map[string]bool, len(words)*4)
	expanded := make([]string, 0, len(words)*4)

	add := func(term string) {
		if term == "" || seen[term] {
			return
		}
		seen[term] = true
		expanded = append(expanded, term)
	}

	add(query)

	for _, word := range words {
		add(word)
		for _, syn := range synonyms[word] {
			add(syn)
		}
	}

	return strings.Join(expanded, " ")
}
