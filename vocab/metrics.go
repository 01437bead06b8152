package vocab

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var commandsExecuted = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "autocomplete_commands_executed",
	Help: "Number of session commands executed, by command name",
}, []string{"command"})

var wordsInserted = promauto.NewCounter(prometheus.CounterOpts{
	Name: "autocomplete_words_inserted",
	Help: "Number of new words inserted",
})

var wordsInvalid = promauto.NewCounter(prometheus.CounterOpts{
	Name: "autocomplete_words_invalid",
	Help: "Number of words rejected for characters outside the alphabet",
})

var wordsRemoved = promauto.NewCounter(prometheus.CounterOpts{
	Name: "autocomplete_words_removed",
	Help: "Number of words removed",
})

var prefixSearches = promauto.NewCounter(prometheus.CounterOpts{
	Name: "autocomplete_prefix_searches",
	Help: "Number of prefix searches",
})

var searchCacheHits = promauto.NewCounter(prometheus.CounterOpts{
	Name: "autocomplete_search_cache_hits",
	Help: "Number of prefix searches answered from the cache",
})

var searchCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
	Name: "autocomplete_search_cache_misses",
	Help: "Number of prefix searches which walked the tree",
})

var storeWords = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "autocomplete_store_words",
	Help: "Number of words in the most recently mutated store",
})
