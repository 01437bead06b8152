package trie

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Alphabet decides which characters can be stored in a [Tree], and which symbol each one is stored under.
type Alphabet interface {
	// Maps r to the symbol it is stored under. Returns false if r is not part of the alphabet.
	Symbol(r rune) (rune, bool)
}

// Normalizer is an optional interface for an [Alphabet] which needs to see the whole word (eg, for Unicode normalization) before individual characters are mapped to symbols.
type Normalizer interface {
	Normalize(word string) string
}

type lowercase struct{}

// Lowercase is the default alphabet: the 26 ASCII letters, case-insensitive. Words are stored (and returned) in lower case.
var Lowercase Alphabet = lowercase{}

func (lowercase) Symbol(r rune) (rune, bool) {
	switch {
	case 'a' <= r && r <= 'z':
		return r, true
	case 'A' <= r && r <= 'Z':
		return r + ('a' - 'A'), true
	}
	return 0, false
}

type alphanumeric struct{}

// Alphanumeric is [Lowercase] extended with the ASCII digits.
var Alphanumeric Alphabet = alphanumeric{}

func (alphanumeric) Symbol(r rune) (rune, bool) {
	if '0' <= r && r <= '9' {
		return r, true
	}
	return lowercase{}.Symbol(r)
}

type unicodeAlphabet struct{}

// Unicode accepts letters, combining marks, and digits from any script. Words are NFC-normalized and case-folded before being stored.
var Unicode Alphabet = unicodeAlphabet{}

func (unicodeAlphabet) Normalize(word string) string {
	// a cases.Caser is stateful, so one is created per call
	return norm.NFC.String(cases.Fold().String(word))
}

func (unicodeAlphabet) Symbol(r rune) (rune, bool) {
	if r == unicode.ReplacementChar {
		return 0, false
	}
	if unicode.IsLetter(r) || unicode.IsMark(r) || unicode.IsDigit(r) {
		return r, true
	}
	return 0, false
}

// Looks up an alphabet by the short names used in configuration: "lower", "alnum", or "unicode".
func AlphabetByName(name string) (Alphabet, bool) {
	switch name {
	case "", "lower", "lowercase":
		return Lowercase, true
	case "alnum", "alphanumeric":
		return Alphanumeric, true
	case "unicode":
		return Unicode, true
	}
	return nil, false
}
