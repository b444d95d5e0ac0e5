package embedding

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"unicode"
)

// Special WordPiece tokens.
const (
	tokenCLS = "[CLS]"
	tokenSEP = "[SEP]"
	tokenUNK = "[UNK]"
	tokenPAD = "[PAD]"
)

// WordPieceTokenizer converts text into BERT-style input IDs using a
// vocab.txt vocabulary with greedy longest-match sub-word splitting.
type WordPieceTokenizer struct {
	vocab map[string]int64

	clsID int64
	sepID int64
	unkID int64
	padID int64
}

// EncodedInput holds the padded model inputs for one batch.
type EncodedInput struct {
	InputIDs      []int64
	AttentionMask []int64
	TokenTypeIDs  []int64
	BatchSize     int
	SeqLength     int
}

// NewWordPieceTokenizer loads a WordPiece vocabulary (one token per
// line, line number = ID) from vocabPath.
func NewWordPieceTokenizer(vocabPath string) (*WordPieceTokenizer, error) {
	f, err := os.Open(vocabPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open vocabulary: %w", err)
	}
	defer f.Close()

	vocab := make(map[string]int64)
	scanner := bufio.NewScanner(f)
	var id int64
	for scanner.Scan() {
		vocab[strings.TrimRight(scanner.Text(), "\r\n")] = id
		id++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read vocabulary: %w", err)
	}

	t := &WordPieceTokenizer{vocab: vocab}
	for _, special := range []struct {
		token string
		id    *int64
	}{
		{tokenCLS, &t.clsID},
		{tokenSEP, &t.sepID},
		{tokenUNK, &t.unkID},
		{tokenPAD, &t.padID},
	} {
		tokenID, ok := vocab[special.token]
		if !ok {
			return nil, fmt.Errorf("vocabulary missing special token %s", special.token)
		}
		*special.id = tokenID
	}

	return t, nil
}

// EncodeBatch tokenizes texts and pads them to a common length capped
// at maxTokens (including [CLS] and [SEP]).
func (t *WordPieceTokenizer) EncodeBatch(texts []string, maxTokens int) EncodedInput {
	if maxTokens <= 2 {
		maxTokens = 512
	}

	sequences := make([][]int64, len(texts))
	seqLength := 0
	for i, text := range texts {
		ids := t.encode(text, maxTokens)
		sequences[i] = ids
		if len(ids) > seqLength {
			seqLength = len(ids)
		}
	}

	encoded := EncodedInput{
		InputIDs:      make([]int64, len(texts)*seqLength),
		AttentionMask: make([]int64, len(texts)*seqLength),
		TokenTypeIDs:  make([]int64, len(texts)*seqLength),
		BatchSize:     len(texts),
		SeqLength:     seqLength,
	}

	for i, ids := range sequences {
		offset := i * seqLength
		for j := 0; j < seqLength; j++ {
			if j < len(ids) {
				encoded.InputIDs[offset+j] = ids[j]
				encoded.AttentionMask[offset+j] = 1
			} else {
				encoded.InputIDs[offset+j] = t.padID
			}
		}
	}

	return encoded
}

// encode produces [CLS] tokens... [SEP] capped at maxTokens.
func (t *WordPieceTokenizer) encode(text string, maxTokens int) []int64 {
	ids := []int64{t.clsID}

	for _, word := range basicTokenize(text) {
		for _, id := range t.wordPiece(word) {
			if len(ids) == maxTokens-1 {
				break
			}
			ids = append(ids, id)
		}
	}

	return append(ids, t.sepID)
}

// wordPiece splits a single word using greedy longest-match against the
// vocabulary, with the "##" continuation prefix for sub-words.
func (t *WordPieceTokenizer) wordPiece(word string) []int64 {
	runes := []rune(word)
	var pieces []int64

	start := 0
	for start < len(runes) {
		end := len(runes)
		var pieceID int64
		found := false

		for end > start {
			piece := string(runes[start:end])
			if start > 0 {
				piece = "##" + piece
			}
			if id, ok := t.vocab[piece]; ok {
				pieceID = id
				found = true
				break
			}
			end--
		}

		if !found {
			// Whole word falls back to [UNK] rather than partial output.
			return []int64{t.unkID}
		}

		pieces = append(pieces, pieceID)
		start = end
	}

	return pieces
}

// basicTokenize lowercases and splits text on whitespace, treating each
// punctuation rune as its own token the way BERT's basic tokenizer does.
func basicTokenize(text string) []string {
	var tokens []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsSpace(r):
			flush()
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			flush()
			tokens = append(tokens, string(r))
		default:
			current.WriteRune(r)
		}
	}
	flush()

	return tokens
}
