package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"todo/internal/exitcode"
)

// MaxLineSize is the longest command line a session accepts.
const MaxLineSize = 16 * 1024 * 1024

// Session reads command lines and dispatches each one.
// The dispatcher's task store lives for as long as the session does.
type Session struct {
	ID         string
	dispatcher *Dispatcher
	out        io.Writer
	errOut     io.Writer
	logger     *zap.Logger
}

// NewSession creates a session with a fresh ID.
// A nil logger disables session logging.
func NewSession(d *Dispatcher, out, errOut io.Writer, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	id := uuid.NewString()
	return &Session{
		ID:         id,
		dispatcher: d.With(zap.String("session", id)),
		out:        out,
		errOut:     errOut,
		logger:     logger.With(zap.String("session", id)),
	}
}

// Run dispatches lines from in until EOF, "exit"/"quit", or ctx is done.
// Blank lines and lines starting with # are skipped.
// Returns exitcode.Success when every command succeeded, exitcode.UserError
// when at least one failed, and exitcode.InputError when in could not be read.
func (s *Session) Run(ctx context.Context, in io.Reader) int {
	s.logger.Debug("session started")

	result := exitcode.Success
	lineNo := 0
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			s.logger.Debug("session cancelled", zap.Error(err))
			return result
		}
		lineNo++

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}

		code := s.dispatcher.Run(ctx, strings.Fields(line), s.out, s.errOut)
		if code != exitcode.Success {
			s.logger.Debug("command failed", zap.Int("line", lineNo), zap.Int("exit_code", code))
			result = exitcode.UserError
		}
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(s.errOut, "error: reading input: %v\n", err)
		return exitcode.InputError
	}

	s.logger.Debug("session ended", zap.Int("lines", lineNo))
	return result
}
