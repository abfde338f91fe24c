// Package parser turns raw command lines into typed commands. The
// interpreter core assumes well-formed input; everything about quoting,
// `#` prefixes, and keyword dispatch is settled here.
package parser

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Command is one parsed command line. The concrete type is one of Add,
// Done, or Search.
type Command interface {
	isCommand()
}

// Add creates a new todo from a quoted description and optional tags.
type Add struct {
	Description string
	Tags        []string
}

// Done marks the todo with the given id as completed.
type Done struct {
	ID int64
}

// Search queries the store with free-text words and tag filters.
type Search struct {
	Words []string
	Tags  []string
}

func (Add) isCommand()    {}
func (Done) isCommand()   {}
func (Search) isCommand() {}

// Token is one lexed unit of a command line. Quoted spans come back as a
// single token with the quotes stripped.
type Token struct {
	Text   string
	Quoted bool
}

// Tokenize splits a line on whitespace while keeping double-quoted spans
// together. There is no escape syntax; a quote always toggles quoting, and
// an unterminated quote is an error.
func Tokenize(line string) ([]Token, error) {
	var tokens []Token
	var current strings.Builder
	inQuote := false
	hasCurrent := false

	flush := func(quoted bool) {
		if !hasCurrent {
			return
		}
		tokens = append(tokens, Token{Text: current.String(), Quoted: quoted})
		current.Reset()
		hasCurrent = false
	}

	for _, r := range line {
		switch {
		case r == '"':
			if inQuote {
				// Closing quote ends the token even if empty: `""` is a
				// valid, empty quoted token.
				tokens = append(tokens, Token{Text: current.String(), Quoted: true})
				current.Reset()
				hasCurrent = false
				inQuote = false
			} else {
				flush(false)
				inQuote = true
			}
		case unicode.IsSpace(r) && !inQuote:
			flush(false)
		default:
			current.WriteRune(r)
			hasCurrent = true
		}
	}
	if inQuote {
		return nil, fmt.Errorf("unterminated quote")
	}
	flush(false)
	return tokens, nil
}

// Parse tokenizes a line and builds the typed command for it.
func Parse(line string) (Command, error) {
	tokens, err := Tokenize(line)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, fmt.Errorf("empty command")
	}

	keyword, args := tokens[0], tokens[1:]
	if keyword.Quoted {
		return nil, fmt.Errorf("quoted command keyword")
	}

	switch keyword.Text {
	case "add":
		return parseAdd(args)
	case "done":
		return parseDone(args)
	case "search":
		return parseSearch(args)
	}
	return nil, fmt.Errorf("unknown command %q", keyword.Text)
}

func parseAdd(args []Token) (Command, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("add: missing description")
	}
	if !args[0].Quoted {
		return nil, fmt.Errorf("add: description must be quoted")
	}
	cmd := Add{Description: args[0].Text}
	for _, tok := range args[1:] {
		tag, ok := tagToken(tok)
		if !ok {
			return nil, fmt.Errorf("add: expected #tag, got %q", tok.Text)
		}
		cmd.Tags = append(cmd.Tags, tag)
	}
	return cmd, nil
}

func parseDone(args []Token) (Command, error) {
	if len(args) != 1 || args[0].Quoted {
		return nil, fmt.Errorf("done: expected exactly one id")
	}
	id, err := strconv.ParseInt(args[0].Text, 10, 64)
	if err != nil || id < 0 {
		return nil, fmt.Errorf("done: invalid id %q", args[0].Text)
	}
	return Done{ID: id}, nil
}

func parseSearch(args []Token) (Command, error) {
	var cmd Search
	for _, tok := range args {
		if tag, ok := tagToken(tok); ok {
			cmd.Tags = append(cmd.Tags, tag)
			continue
		}
		cmd.Words = append(cmd.Words, tok.Text)
	}
	return cmd, nil
}

// tagToken reports whether the token is a `#tag` filter and returns the tag
// with the prefix stripped. Quoted tokens are never tags, and a bare `#` is
// not a tag either.
func tagToken(tok Token) (string, bool) {
	if tok.Quoted || len(tok.Text) < 2 || tok.Text[0] != '#' {
		return "", false
	}
	return tok.Text[1:], true
}
