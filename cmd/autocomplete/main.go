package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bluesky-social/autocomplete/trie"
	"github.com/bluesky-social/autocomplete/vocab"

	"github.com/carlmjohnson/versioninfo"
	_ "github.com/joho/godotenv/autoload"
	cli "github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		slog.Error("exiting", "err", err)
		os.Exit(-1)
	}
}

func run(args []string) error {

	app := cli.App{
		Name:    "autocomplete",
		Usage:   "build a vocabulary and query it by prefix",
		Version: versioninfo.Short(),
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "log verbosity level (eg: warn, info, debug); defaults to info for the daemon and warn otherwise",
			EnvVars: []string{"AUTOCOMPLETE_LOG_LEVEL", "GO_LOG_LEVEL", "LOG_LEVEL"},
		},
		&cli.StringFlag{
			Name:    "alphabet",
			Usage:   "characters allowed in words: lower, alnum, or unicode",
			Value:   "lower",
			EnvVars: []string{"AUTOCOMPLETE_ALPHABET"},
		},
		&cli.StringFlag{
			Name:    "words-file",
			Usage:   "word list to load at startup, one word per line ('-' for stdin)",
			EnvVars: []string{"AUTOCOMPLETE_WORDS_FILE"},
		},
		&cli.IntFlag{
			Name:    "search-cache-size",
			Usage:   "number of prefix search results to cache (0 to disable)",
			Value:   1024,
			EnvVars: []string{"AUTOCOMPLETE_SEARCH_CACHE_SIZE"},
		},
		&cli.StringFlag{
			Name:    "search-cache-policy",
			Usage:   "eviction policy of the prefix search cache: lru or arc",
			Value:   "lru",
			EnvVars: []string{"AUTOCOMPLETE_SEARCH_CACHE_POLICY"},
		},
		&cli.StringFlag{
			Name:    "display-style",
			Usage:   "output format of the display command: indent or tree",
			Value:   "indent",
			EnvVars: []string{"AUTOCOMPLETE_DISPLAY_STYLE"},
		},
		&cli.BoolFlag{
			Name:    "no-prompt",
			Usage:   "don't print a prompt before each command (eg, when piping commands in)",
			EnvVars: []string{"AUTOCOMPLETE_NO_PROMPT"},
		},
	}

	app.Action = runSession

	app.Commands = []*cli.Command{
		cmdServe,
		cmdLoad,
	}

	return app.Run(args)
}

// An empty or unrecognized --log-level falls back to defaultLevel.
func configLogger(cctx *cli.Context, writer io.Writer, defaultLevel slog.Level) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cctx.String("log-level")) {
	case "error":
		level = slog.LevelError
	case "warn":
		level = slog.LevelWarn
	case "info":
		level = slog.LevelInfo
	case "debug":
		level = slog.LevelDebug
	default:
		level = defaultLevel
	}
	logger := slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}

// Creates the store from global flags, including loading the startup word list.
func configStore(cctx *cli.Context, logger *slog.Logger) (*vocab.Store, error) {
	alphabet, ok := trie.AlphabetByName(strings.ToLower(cctx.String("alphabet")))
	if !ok {
		return nil, fmt.Errorf("unknown alphabet: %s", cctx.String("alphabet"))
	}
	policy, err := vocab.ParseCachePolicy(cctx.String("search-cache-policy"))
	if err != nil {
		return nil, err
	}
	store, err := vocab.NewStore(vocab.StoreConfig{
		Alphabet:          alphabet,
		SearchCacheSize:   cctx.Int("search-cache-size"),
		SearchCachePolicy: policy,
		Logger:            logger,
	})
	if err != nil {
		return nil, err
	}
	if path := cctx.String("words-file"); path != "" {
		if _, err := store.LoadFile(path); err != nil {
			return nil, fmt.Errorf("loading words file: %w", err)
		}
	}
	return store, nil
}

func runSession(cctx *cli.Context) error {
	// stdout is reserved for command output
	logger := configLogger(cctx, os.Stderr, slog.LevelWarn)

	style, err := vocab.ParseDisplayStyle(cctx.String("display-style"))
	if err != nil {
		return err
	}
	store, err := configStore(cctx, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cctx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	sess := vocab.NewSession(store, os.Stdout, vocab.Config{
		HidePrompt:   cctx.Bool("no-prompt"),
		DisplayStyle: style,
		Logger:       logger,
	})
	err = sess.Run(ctx, os.Stdin)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

var cmdLoad = &cli.Command{
	Name:      "load",
	Usage:     "check word list files, reporting invalid words",
	ArgsUsage: "<file>...",
	Action: func(cctx *cli.Context) error {
		logger := configLogger(cctx, os.Stderr, slog.LevelWarn)
		if cctx.Args().Len() < 1 {
			return fmt.Errorf("need to provide at least one word list file")
		}
		store, err := configStore(cctx, logger)
		if err != nil {
			return err
		}
		for _, path := range cctx.Args().Slice() {
			res, err := store.LoadFile(path)
			if err != nil {
				return fmt.Errorf("loading %s: %w", path, err)
			}
			fmt.Printf("%s: loaded %d words (%d invalid)\n", path, res.Added, res.Invalid)
		}
		st := store.Stats()
		fmt.Printf("words: %d nodes: %d\n", st.Words, st.Nodes)
		return nil
	},
}
