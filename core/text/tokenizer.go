package text

import (
	"strings"
	"unicode"
)

// Tokenize splits text into lowercase terms. Every rune that is not a
// letter, digit, or underscore acts as a separator and empty tokens are
// dropped, so punctuation never leaks into the term space. An empty
// input yields an empty token list.
func Tokenize(text string) []string {
	var tokens []string
	var currentToken strings.Builder

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			currentToken.WriteRune(unicode.ToLower(r))
			continue
		}
		if currentToken.Len() > 0 {
			tokens = append(tokens, currentToken.String())
			currentToken.Reset()
		}
	}

	if currentToken.Len() > 0 {
		tokens = append(tokens, currentToken.String())
	}

	return tokens
}
