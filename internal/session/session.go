// Package session runs one interpreter session: read the declared number of
// command lines, dispatch each to its handler, and write protocol output.
// Command failures never abort the session; every declared line is consumed.
package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/taskline/taskline/internal/logger"
	"github.com/taskline/taskline/internal/models"
	"github.com/taskline/taskline/internal/parser"
	"github.com/taskline/taskline/internal/search"
	"github.com/taskline/taskline/internal/store"
	"github.com/taskline/taskline/internal/validation"
)

// Session processes commands against one in-memory store. Protocol output
// goes to out; error markers go to errOut so out stays machine-readable.
type Session struct {
	store   *store.Store
	log     *zap.Logger
	out     io.Writer
	errOut  io.Writer
	maxLine int
}

// New creates a session with a fresh store. Every session gets its own id
// in the log fields so interleaved runs can be told apart.
func New(log *zap.Logger, out, errOut io.Writer, maxLine int) *Session {
	return &Session{
		store:   store.New(),
		log:     log.With(zap.String("session_id", uuid.NewString())),
		out:     out,
		errOut:  errOut,
		maxLine: maxLine,
	}
}

// Run reads the command count line, then that many command lines, handling
// each in order. Only a malformed count line or a short read is a hard
// error; per-command failures are reported on errOut and processing
// continues.
func (s *Session) Run(r io.Reader) error {
	br := bufio.NewReader(r)

	countLine, ok, err := s.readLine(br)
	if err != nil {
		return fmt.Errorf("read command count: %w", err)
	}
	if !ok {
		return errors.New("missing command count line")
	}
	count, err := strconv.Atoi(strings.TrimSpace(countLine))
	if err != nil || count < 0 {
		return fmt.Errorf("invalid command count %q", countLine)
	}
	s.log.Info("session_started", zap.Int("command_count", count))

	for i := 0; i < count; i++ {
		line, ok, err := s.readLine(br)
		if err != nil {
			return fmt.Errorf("read command %d: %w", i+1, err)
		}
		if !ok {
			return fmt.Errorf("expected %d commands, got %d", count, i)
		}
		s.Handle(line)
	}

	s.log.Info("session_finished", zap.Int("todos", s.store.Len()))
	return nil
}

// readLine reads one line of any length. Everything past maxLine+1 bytes is
// discarded while draining to the newline, so an overlong command costs
// bounded memory and gets rejected by Handle as a command-local error
// instead of ending the session. ok is false at a clean end of input.
func (s *Session) readLine(br *bufio.Reader) (line string, ok bool, err error) {
	var b strings.Builder
	sawData := false
	for {
		chunk, readErr := br.ReadSlice('\n')
		if len(chunk) > 0 {
			sawData = true
			if keep := s.maxLine + 1 - b.Len(); keep > 0 {
				if len(chunk) > keep {
					chunk = chunk[:keep]
				}
				b.Write(chunk)
			}
		}
		if readErr == nil {
			break
		}
		if errors.Is(readErr, bufio.ErrBufferFull) {
			continue
		}
		if errors.Is(readErr, io.EOF) {
			if !sawData {
				return "", false, nil
			}
			break
		}
		return "", false, readErr
	}
	line = strings.TrimSuffix(b.String(), "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, true, nil
}

// Handle parses and executes one command line.
func (s *Session) Handle(line string) {
	if len(line) > s.maxLine {
		s.fail(fmt.Errorf("command line exceeds %d bytes", s.maxLine))
		return
	}

	cmd, err := parser.Parse(line)
	if err != nil {
		s.log.Warn("parse_failed",
			zap.String("line", logger.SanitizeCommand(line)),
			zap.String("error", logger.SanitizeError(err)),
		)
		s.fail(err)
		return
	}

	switch c := cmd.(type) {
	case parser.Add:
		s.handleAdd(c)
	case parser.Done:
		s.handleDone(c)
	case parser.Search:
		s.handleSearch(c)
	default:
		s.fail(fmt.Errorf("unhandled command type %T", cmd))
	}
}

func (s *Session) handleAdd(cmd parser.Add) {
	if err := validation.ValidateAdd(cmd.Description, cmd.Tags); err != nil {
		s.log.Warn("add_rejected", zap.String("error", logger.SanitizeError(err)))
		s.fail(err)
		return
	}
	todo := s.store.Add(cmd.Description, cmd.Tags)
	s.log.Debug("todo_added",
		zap.Int64("id", todo.ID),
		zap.Int("tags", len(todo.Tags)),
	)
	fmt.Fprintf(s.out, "%d\n", todo.ID)
}

func (s *Session) handleDone(cmd parser.Done) {
	if err := s.store.Done(cmd.ID); err != nil {
		s.log.Warn("done_rejected", zap.Int64("id", cmd.ID))
		s.fail(errors.New("invalid index"))
		return
	}
	s.log.Debug("todo_completed", zap.Int64("id", cmd.ID))
	fmt.Fprintln(s.out, "done")
}

func (s *Session) handleSearch(cmd parser.Search) {
	query := search.Query{Words: cmd.Words, Tags: cmd.Tags}
	results := s.store.Search(query)
	s.log.Debug("search_executed",
		zap.Int("words", len(cmd.Words)),
		zap.Int("tags", len(cmd.Tags)),
		zap.Int("matches", len(results)),
	)
	fmt.Fprint(s.out, FormatResults(results))
}

// fail reports a command-local error. The marker goes to the error stream;
// the session keeps going.
func (s *Session) fail(err error) {
	fmt.Fprintf(s.errOut, "Error: %s\n", err)
}

// FormatResults renders a search result block: a count line, then one line
// per todo, newest first, description re-quoted verbatim and tags rendered
// as #tag in insertion order.
func FormatResults(results []*models.Todo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d item(s) found\n", len(results))
	for _, todo := range results {
		fmt.Fprintf(&b, "%d \"%s\"", todo.ID, todo.Description)
		for _, tag := range todo.Tags {
			b.WriteString(" #")
			b.WriteString(tag)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
