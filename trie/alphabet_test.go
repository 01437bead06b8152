package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLowercaseSymbols(t *testing.T) {
	assert := assert.New(t)

	for r := 'a'; r <= 'z'; r++ {
		sym, ok := Lowercase.Symbol(r)
		assert.True(ok)
		assert.Equal(r, sym)

		sym, ok = Lowercase.Symbol(r - 'a' + 'A')
		assert.True(ok)
		assert.Equal(r, sym)
	}
	for _, r := range []rune{'0', '9', ' ', '-', '`', '{', '@', '[', 'é', 'ß'} {
		_, ok := Lowercase.Symbol(r)
		assert.False(ok, string(r))
	}
}

func TestAlphanumericSymbols(t *testing.T) {
	assert := assert.New(t)

	sym, ok := Alphanumeric.Symbol('7')
	assert.True(ok)
	assert.Equal('7', sym)

	sym, ok = Alphanumeric.Symbol('Q')
	assert.True(ok)
	assert.Equal('q', sym)

	_, ok = Alphanumeric.Symbol('_')
	assert.False(ok)
}

func TestUnicodeNormalize(t *testing.T) {
	assert := assert.New(t)

	n, ok := Unicode.(Normalizer)
	assert.True(ok)
	// decomposed and composed forms end up identical
	assert.Equal(n.Normalize("caf\u00e9"), n.Normalize("cafe\u0301"))
	assert.Equal("strasse", n.Normalize("STRASSE"))
	assert.Equal("strasse", n.Normalize("Straße"))

	_, ok = Unicode.Symbol(' ')
	assert.False(ok)
	_, ok = Unicode.Symbol('\uFFFD')
	assert.False(ok)
}

func TestAlphabetByName(t *testing.T) {
	assert := assert.New(t)

	a, ok := AlphabetByName("lower")
	assert.True(ok)
	assert.Equal(Lowercase, a)

	a, ok = AlphabetByName("alnum")
	assert.True(ok)
	assert.Equal(Alphanumeric, a)

	a, ok = AlphabetByName("unicode")
	assert.True(ok)
	assert.Equal(Unicode, a)

	_, ok = AlphabetByName("klingon")
	assert.False(ok)
}
