package vocab

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/bluesky-social/autocomplete/trie"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T, cacheSize int) *Store {
	s, err := NewStore(StoreConfig{SearchCacheSize: cacheSize})
	require.NoError(t, err)
	return s
}

func mustAdd(t *testing.T, s *Store, word string) {
	_, err := s.Add(word)
	require.NoError(t, err)
}

func TestStoreBasics(t *testing.T) {
	assert := assert.New(t)

	s := testStore(t, 0)
	added, err := s.Add("app")
	assert.NoError(err)
	assert.True(added)
	added, err = s.Add("APP")
	assert.NoError(err)
	assert.False(added)
	_, err = s.Add("apple")
	assert.NoError(err)
	_, err = s.Add("he1lo")
	assert.True(errors.Is(err, trie.ErrInvalidCharacter))
	_, err = s.Add("")
	assert.ErrorIs(err, trie.ErrEmptyWord)

	assert.True(s.Contains("app"))
	assert.False(s.Contains("appl"))
	assert.Equal([]string{"app", "apple"}, s.Search("app"))
	assert.Equal(Stats{Words: 2, Nodes: 6}, s.Stats())

	assert.True(s.Remove("app"))
	assert.False(s.Remove("app"))
	assert.Equal([]string{"apple"}, s.Search("app"))

	s.Clear()
	assert.Equal(Stats{Words: 0, Nodes: 1}, s.Stats())
	assert.Empty(s.Search(""))
}

func TestStoreSearchCache(t *testing.T) {
	for _, policy := range []CachePolicy{CacheLRU, CacheARC} {
		t.Run(string(policy), func(t *testing.T) {
			s, err := NewStore(StoreConfig{SearchCacheSize: 16, SearchCachePolicy: policy})
			require.NoError(t, err)
			testSearchCache(t, s)
		})
	}
}

func testSearchCache(t *testing.T, s *Store) {
	assert := assert.New(t)

	mustAdd(t, s, "band")
	mustAdd(t, s, "bandana")

	first := s.Search("ban")
	assert.Equal([]string{"band", "bandana"}, first)
	assert.Equal(1, s.cache.Len())

	// callers own the returned slice; mutating it must not poison the cache
	first[0] = "mutated"
	assert.Equal([]string{"band", "bandana"}, s.Search("ban"))

	// any change to the word set purges cached results
	mustAdd(t, s, "bandwidth")
	assert.Equal(0, s.cache.Len())
	assert.Equal([]string{"band", "bandana", "bandwidth"}, s.Search("ban"))

	s.Search("ba")
	assert.Equal(2, s.cache.Len())
	assert.True(s.Remove("band"))
	assert.Equal(0, s.cache.Len())
	assert.Equal([]string{"bandana", "bandwidth"}, s.Search("ban"))

	// re-adding an existing word is not a change
	s.Search("ban")
	mustAdd(t, s, "bandana")
	assert.Equal(1, s.cache.Len())

	s.Clear()
	assert.Equal(0, s.cache.Len())
	assert.Empty(s.Search("ban"))
}

func TestStoreInvalidCacheSize(t *testing.T) {
	_, err := NewStore(StoreConfig{SearchCacheSize: -1})
	assert.Error(t, err)
}

func TestStoreCachePolicy(t *testing.T) {
	assert := assert.New(t)

	policy, err := ParseCachePolicy("ARC")
	assert.NoError(err)
	assert.Equal(CacheARC, policy)
	policy, err = ParseCachePolicy("")
	assert.NoError(err)
	assert.Equal(CacheLRU, policy)
	_, err = ParseCachePolicy("fifo")
	assert.Error(err)

	_, err = NewStore(StoreConfig{SearchCacheSize: 4, SearchCachePolicy: "fifo"})
	assert.Error(err)
}

func TestStoreComplete(t *testing.T) {
	assert := assert.New(t)

	s := testStore(t, 8)
	for _, w := range []string{"candle", "candy", "cane"} {
		mustAdd(t, s, w)
	}
	completion, candidates, ok := s.Complete("ca")
	assert.True(ok)
	assert.Equal("can", completion)
	assert.Equal([]string{"candle", "candy", "cane"}, candidates)

	completion, candidates, ok = s.Complete("candl")
	assert.True(ok)
	assert.Equal("candle", completion)
	assert.Equal([]string{"candle"}, candidates)

	_, _, ok = s.Complete("x")
	assert.False(ok)
}

// completion and candidates come from the same snapshot, even while other goroutines churn the word set
func TestStoreCompleteConsistent(t *testing.T) {
	s := testStore(t, 8)
	mustAdd(t, s, "candle")
	mustAdd(t, s, "candy")

	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
			}
			s.Remove("candle")
			s.Remove("candy")
			s.Add("candy")
			s.Add("candle")
		}
	}()

	for i := 0; i < 2000; i++ {
		completion, candidates, ok := s.Complete("ca")
		if !ok {
			continue
		}
		if !assert.NotEmpty(t, candidates) {
			break
		}
		for _, w := range candidates {
			assert.True(t, strings.HasPrefix(w, completion), "%s does not extend %s", w, completion)
		}
	}
	close(stop)
	wg.Wait()
}

func TestStoreLoad(t *testing.T) {
	assert := assert.New(t)

	s := testStore(t, 8)
	res, err := s.LoadFile("testdata/words.txt")
	assert.NoError(err)
	assert.Equal(LoadResult{Added: 6, Invalid: 1}, res)
	assert.Equal([]string{"a", "ale", "always", "app", "appeal", "apple"}, s.Search(""))

	res, err = s.Load(strings.NewReader("zoo\nZOO\nzoom\n"))
	assert.NoError(err)
	assert.Equal(LoadResult{Added: 2}, res)
	assert.True(s.Contains("zoom"))

	_, err = s.LoadFile("testdata/does-not-exist.txt")
	assert.Error(err)
}

func TestStoreDisplay(t *testing.T) {
	assert := assert.New(t)

	s := testStore(t, 0)
	mustAdd(t, s, "ab")
	assert.Equal("\na\n  *ab*\n", s.Display(DisplayIndent))
	assert.Contains(s.Display(DisplayTree), "*ab*")

	style, err := ParseDisplayStyle("TREE")
	assert.NoError(err)
	assert.Equal(DisplayTree, style)
	style, err = ParseDisplayStyle("")
	assert.NoError(err)
	assert.Equal(DisplayIndent, style)
	_, err = ParseDisplayStyle("sideways")
	assert.Error(err)
}

func TestStoreConcurrentAccess(t *testing.T) {
	assert := assert.New(t)

	s := testStore(t, 32)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			letter := string(rune('a' + i))
			for j := 0; j < 50; j++ {
				word := letter + strings.Repeat("x", j%5+1) + string(rune('a'+j%26))
				if _, err := s.Add(word); err != nil {
					panic(fmt.Sprintf("unexpected error: %s", err))
				}
				s.Search(letter)
				s.Contains(word)
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < 8; i++ {
		letter := string(rune('a' + i))
		for _, w := range s.Search(letter) {
			assert.True(strings.HasPrefix(w, letter))
		}
	}
	assert.Equal(s.Stats().Words, len(s.Search("")))
}
