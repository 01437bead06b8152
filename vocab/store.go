package vocab

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/bluesky-social/autocomplete/trie"

	arc "github.com/hashicorp/golang-lru/arc/v2"
	lru "github.com/hashicorp/golang-lru/v2"
)

type DisplayStyle string

const (
	// Indented prefixes, with complete words in asterisks
	DisplayIndent DisplayStyle = "indent"
	// Box-drawing branches
	DisplayTree DisplayStyle = "tree"
)

func ParseDisplayStyle(raw string) (DisplayStyle, error) {
	switch DisplayStyle(strings.ToLower(raw)) {
	case "", DisplayIndent:
		return DisplayIndent, nil
	case DisplayTree:
		return DisplayTree, nil
	}
	return "", fmt.Errorf("unknown display style: %s", raw)
}

type CachePolicy string

const (
	CacheLRU CachePolicy = "lru"
	// Adaptive replacement: tracks frequency as well as recency, so a burst of one-off prefixes does not evict the popular ones
	CacheARC CachePolicy = "arc"
)

func ParseCachePolicy(raw string) (CachePolicy, error) {
	switch CachePolicy(strings.ToLower(raw)) {
	case "", CacheLRU:
		return CacheLRU, nil
	case CacheARC:
		return CacheARC, nil
	}
	return "", fmt.Errorf("unknown search cache policy: %s", raw)
}

type StoreConfig struct {
	// Defaults to [trie.Lowercase]
	Alphabet trie.Alphabet
	// Number of prefix search results to cache. Zero disables the cache.
	SearchCacheSize int
	// Defaults to [CacheLRU]
	SearchCachePolicy CachePolicy
	Logger            *slog.Logger
}

type searchCache interface {
	Get(prefix string) ([]string, bool)
	Add(prefix string, words []string)
	Len() int
	Purge()
}

type lruCache struct {
	*lru.Cache[string, []string]
}

func (c lruCache) Add(prefix string, words []string) {
	c.Cache.Add(prefix, words)
}

func newSearchCache(policy CachePolicy, size int) (searchCache, error) {
	switch policy {
	case "", CacheLRU:
		cache, err := lru.New[string, []string](size)
		if err != nil {
			return nil, err
		}
		return lruCache{cache}, nil
	case CacheARC:
		cache, err := arc.NewARC[string, []string](size)
		if err != nil {
			return nil, err
		}
		return cache, nil
	}
	return nil, fmt.Errorf("unknown search cache policy: %s", policy)
}

// Store is a [trie.Tree] which is safe for concurrent use. A single read/write lock guards the whole tree.
//
// Prefix search results are optionally cached. The cache is purged whenever the set of words changes.
type Store struct {
	mu     sync.RWMutex
	tree   *trie.Tree
	cache  searchCache
	logger *slog.Logger
}

func NewStore(config StoreConfig) (*Store, error) {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{
		tree:   trie.New(trie.WithAlphabet(config.Alphabet)),
		logger: logger.With("component", "vocab-store"),
	}
	if config.SearchCacheSize < 0 {
		return nil, fmt.Errorf("invalid search cache size: %d", config.SearchCacheSize)
	}
	if config.SearchCacheSize > 0 {
		cache, err := newSearchCache(config.SearchCachePolicy, config.SearchCacheSize)
		if err != nil {
			return nil, fmt.Errorf("creating search cache: %w", err)
		}
		s.cache = cache
	}
	return s, nil
}

// must be called with write lock held
func (s *Store) changed() {
	if s.cache != nil {
		s.cache.Purge()
	}
	storeWords.Set(float64(s.tree.Len()))
}

// Inserts a single word, returning true if it was not already present. Errors are from [trie.Tree.Insert].
func (s *Store) Add(word string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.add(word)
}

// must be called with write lock held
func (s *Store) add(word string) (bool, error) {
	before := s.tree.Len()
	if err := s.tree.Insert(word); err != nil {
		if errors.Is(err, trie.ErrInvalidCharacter) {
			wordsInvalid.Inc()
		}
		return false, err
	}
	if s.tree.Len() == before {
		return false, nil
	}
	wordsInserted.Inc()
	s.changed()
	return true, nil
}

// Removes a word, returning true if it was present.
func (s *Store) Remove(word string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.tree.Delete(word) {
		return false
	}
	wordsRemoved.Inc()
	s.changed()
	return true
}

func (s *Store) Contains(word string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Contains(word)
}

// Returns all words starting with prefix, in lexicographic order. The returned slice belongs to the caller.
func (s *Store) Search(prefix string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.search(prefix)
}

// must be called with at least the read lock held
func (s *Store) search(prefix string) []string {
	prefixSearches.Inc()
	if s.cache != nil {
		if words, ok := s.cache.Get(prefix); ok {
			searchCacheHits.Inc()
			return slices.Clone(words)
		}
		searchCacheMisses.Inc()
	}
	words := s.tree.Words(prefix)
	if s.cache != nil {
		// the read lock is still held, so no writer can have purged the cache since the walk
		s.cache.Add(prefix, slices.Clone(words))
	}
	return words
}

// Returns the longest completion of prefix, along with all candidate words. See [trie.Tree.LongestCompletion].
func (s *Store) Complete(prefix string) (string, []string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	completion, ok := s.tree.LongestCompletion(prefix)
	if !ok {
		return "", nil, false
	}
	return completion, s.search(prefix), true
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tree.Clear()
	s.changed()
}

func (s *Store) Display(style DisplayStyle) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if style == DisplayTree {
		return s.tree.TreePrint().String()
	}
	return s.tree.Display()
}

type Stats struct {
	Words int `json:"words"`
	Nodes int `json:"nodes"`
}

func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Stats{
		Words: s.tree.Len(),
		Nodes: s.tree.NodeCount(),
	}
}

type LoadResult struct {
	Added   int
	Invalid int
}

// Bulk loads a word list: one word per line. Surrounding whitespace is trimmed and blank lines are skipped. Lines which are not valid words are logged and counted, but do not stop the load.
//
// The write lock is held for the whole load.
func (s *Store) Load(r io.Reader) (LoadResult, error) {
	var res LoadResult
	s.mu.Lock()
	defer s.mu.Unlock()

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		added, err := s.add(word)
		if err != nil {
			s.logger.Warn("skipping invalid word", "line", lineNum, "word", word, "err", err)
			res.Invalid++
			continue
		}
		if added {
			res.Added++
		}
	}
	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("reading word list: %w", err)
	}
	s.logger.Info("loaded word list", "added", res.Added, "invalid", res.Invalid, "words", s.tree.Len())
	return res, nil
}

const stdIOPath = "-"

// Like [Store.Load], reading from a file path. The path "-" reads from stdin.
func (s *Store) LoadFile(path string) (LoadResult, error) {
	if path == stdIOPath {
		return s.Load(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return LoadResult{}, err
	}
	defer f.Close()
	return s.Load(f)
}
