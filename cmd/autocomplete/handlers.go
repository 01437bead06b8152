package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/bluesky-social/autocomplete/trie"
	"github.com/bluesky-social/autocomplete/vocab"

	"github.com/labstack/echo/v4"
)

type GenericError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type GenericStatus struct {
	Daemon  string `json:"daemon"`
	Status  string `json:"status"`
	Message string `json:"msg,omitempty"`
}

type WordsOutput struct {
	Words []string `json:"words"`
}

type AddWordsInput struct {
	Words []string `json:"words"`
}

type AddWordsOutput struct {
	Added   int      `json:"added"`
	Invalid []string `json:"invalid"`
}

type ContainsOutput struct {
	Word     string `json:"word"`
	Contains bool   `json:"contains"`
}

type RemoveOutput struct {
	Word    string `json:"word"`
	Removed bool   `json:"removed"`
}

type CompleteOutput struct {
	Prefix     string   `json:"prefix"`
	Completion string   `json:"completion"`
	Words      []string `json:"words"`
}

func (srv *Server) errorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	errorName := "InternalError"
	var errorMessage string
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		errorName = http.StatusText(code)
		errorMessage = fmt.Sprintf("%s", he.Message)
	}
	if code >= 500 {
		slog.Warn("autocomplete-http-internal-error", "err", err)
	}
	c.JSON(code, GenericError{Error: errorName, Message: errorMessage})
}

func (srv *Server) HandleHealthCheck(c echo.Context) error {
	return c.JSON(200, GenericStatus{Status: "ok", Daemon: "autocomplete"})
}

func (srv *Server) HandleSearch(c echo.Context) error {
	return c.JSON(200, WordsOutput{Words: srv.store.Search(c.QueryParam("prefix"))})
}

func (srv *Server) HandleAddWords(c echo.Context) error {
	var body AddWordsInput
	if err := c.Bind(&body); err != nil {
		return c.JSON(400, GenericError{
			Error:   "InvalidRequest",
			Message: fmt.Sprintf("failed to parse request body: %s", err),
		})
	}
	if len(body.Words) == 0 {
		return c.JSON(400, GenericError{
			Error:   "MissingArgument",
			Message: "must provide at least one word",
		})
	}

	out := AddWordsOutput{Invalid: []string{}}
	for _, word := range body.Words {
		added, err := srv.store.Add(word)
		if err != nil {
			if errors.Is(err, trie.ErrInvalidCharacter) || errors.Is(err, trie.ErrEmptyWord) {
				out.Invalid = append(out.Invalid, word)
				continue
			}
			return err
		}
		if added {
			out.Added++
		}
	}
	return c.JSON(200, out)
}

func (srv *Server) HandleClear(c echo.Context) error {
	srv.store.Clear()
	return c.JSON(200, GenericStatus{Status: "ok", Daemon: "autocomplete"})
}

func (srv *Server) HandleContains(c echo.Context) error {
	word := c.Param("word")
	return c.JSON(200, ContainsOutput{Word: word, Contains: srv.store.Contains(word)})
}

func (srv *Server) HandleRemove(c echo.Context) error {
	word := c.Param("word")
	return c.JSON(200, RemoveOutput{Word: word, Removed: srv.store.Remove(word)})
}

func (srv *Server) HandleComplete(c echo.Context) error {
	prefix := c.QueryParam("prefix")
	if prefix == "" {
		return c.JSON(400, GenericError{
			Error:   "MissingArgument",
			Message: "must provide a search term",
		})
	}
	completion, words, ok := srv.store.Complete(prefix)
	if !ok {
		words = []string{}
	}
	return c.JSON(200, CompleteOutput{Prefix: prefix, Completion: completion, Words: words})
}

func (srv *Server) HandleDisplay(c echo.Context) error {
	style, err := vocab.ParseDisplayStyle(c.QueryParam("style"))
	if err != nil {
		return c.JSON(400, GenericError{
			Error:   "InvalidRequest",
			Message: err.Error(),
		})
	}
	return c.String(200, srv.store.Display(style))
}

func (srv *Server) HandleStats(c echo.Context) error {
	return c.JSON(200, srv.store.Stats())
}
