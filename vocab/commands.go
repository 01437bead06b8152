package vocab

import (
	"context"
	"errors"
	"fmt"

	"github.com/bluesky-social/autocomplete/trie"
)

type command struct {
	run func(ctx context.Context, s *Session, args []string) error
}

var commands = map[string]command{
	"add":      {run: cmdAdd},
	"remove":   {run: cmdRemove},
	"search":   {run: cmdSearch},
	"contains": {run: cmdContains},
	"complete": {run: cmdComplete},
	"display":  {run: cmdDisplay},
	"clear":    {run: cmdClear},
	"load":     {run: cmdLoad},
	"stats":    {run: cmdStats},
	"help":     {run: cmdHelp},
	"quit":     {run: cmdQuit},
}

const helpText = `commands:
  add <word> [<word>...]    add words to the vocabulary
  remove <word> [<word>...] remove words
  search <prefix>           list all words starting with prefix
  contains <word>           check whether a word was added
  complete <prefix>         longest completion of prefix, and candidates
  display                   print the prefix tree
  clear                     remove all words
  load <file>               add one word per line from a file
  stats                     count words and tree nodes
  help                      show this message
  quit                      exit
`

func cmdAdd(ctx context.Context, s *Session, args []string) error {
	if len(args) == 0 {
		return missingArgument("must provide at least one word")
	}
	for _, word := range args {
		if _, err := s.store.Add(word); err != nil {
			if errors.Is(err, trie.ErrInvalidCharacter) || errors.Is(err, trie.ErrEmptyWord) {
				fmt.Fprintf(s.out, "invalid word %q: %s\n", word, err)
				continue
			}
			return err
		}
	}
	return nil
}

func cmdRemove(ctx context.Context, s *Session, args []string) error {
	if len(args) == 0 {
		return missingArgument("must provide a word to remove")
	}
	for _, word := range args {
		s.store.Remove(word)
	}
	return nil
}

func cmdSearch(ctx context.Context, s *Session, args []string) error {
	if len(args) == 0 {
		return missingArgument("must provide a search term")
	}
	for _, word := range s.store.Search(args[0]) {
		fmt.Fprintln(s.out, word)
	}
	return nil
}

func cmdContains(ctx context.Context, s *Session, args []string) error {
	if len(args) == 0 {
		return missingArgument("must provide a term")
	}
	if s.store.Contains(args[0]) {
		fmt.Fprintln(s.out, "True")
	} else {
		fmt.Fprintln(s.out, "False")
	}
	return nil
}

// Prints the longest completion on the first line. If it is ambiguous, the candidates follow, indented.
func cmdComplete(ctx context.Context, s *Session, args []string) error {
	if len(args) == 0 {
		return missingArgument("must provide a search term")
	}
	completion, candidates, ok := s.store.Complete(args[0])
	if !ok {
		return nil
	}
	fmt.Fprintln(s.out, completion)
	if len(candidates) > 1 {
		for _, word := range candidates {
			fmt.Fprintf(s.out, "  %s\n", word)
		}
	}
	return nil
}

func cmdDisplay(ctx context.Context, s *Session, args []string) error {
	fmt.Fprint(s.out, s.store.Display(s.config.DisplayStyle))
	return nil
}

func cmdClear(ctx context.Context, s *Session, args []string) error {
	s.store.Clear()
	return nil
}

func cmdLoad(ctx context.Context, s *Session, args []string) error {
	if len(args) == 0 {
		return missingArgument("must provide a file")
	}
	res, err := s.store.LoadFile(args[0])
	if err != nil {
		return fmt.Errorf("loading %s: %w", args[0], err)
	}
	fmt.Fprintf(s.out, "loaded %d words (%d invalid)\n", res.Added, res.Invalid)
	return nil
}

func cmdStats(ctx context.Context, s *Session, args []string) error {
	st := s.store.Stats()
	fmt.Fprintf(s.out, "words: %d nodes: %d\n", st.Words, st.Nodes)
	return nil
}

func cmdHelp(ctx context.Context, s *Session, args []string) error {
	fmt.Fprint(s.out, helpText)
	return nil
}

func cmdQuit(ctx context.Context, s *Session, args []string) error {
	return ErrQuit
}
