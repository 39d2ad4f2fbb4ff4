// Package stdio frames a continuous byte stream into discrete JSON-RPC
// messages and back, using newline delimiting on both sides.
package stdio

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log"
	"os"

	"github.com/axion-orbital/planetary-bridge/jsonrpc"
)

// maxLineSize bounds a single inbound line; lines are NDJSON so anything
// larger is a broken peer rather than legitimate traffic. An oversized line
// is dropped like an unparseable one, it never stops the loop.
const maxLineSize = 10 * 1024 * 1024

// Server reads newline-delimited JSON-RPC messages from in and dispatches
// them to a handler. Unparseable lines are dropped with a diagnostic on the
// side channel and never halt the loop.
type Server struct {
	handler jsonrpc.Handler
	in      io.Reader
	writer  *Writer
	logger  *log.Logger
}

// Option configures a server.
type Option func(s *Server)

// WithInput overrides the input stream (defaults to os.Stdin).
func WithInput(in io.Reader) Option {
	return func(s *Server) {
		s.in = in
	}
}

// WithWriter overrides the output writer (defaults to one over os.Stdout).
func WithWriter(writer *Writer) Option {
	return func(s *Server) {
		s.writer = writer
	}
}

// WithLogger overrides the diagnostic logger (defaults to stderr).
func WithLogger(logger *log.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// New creates a stdio server dispatching to handler.
func New(handler jsonrpc.Handler, options ...Option) *Server {
	ret := &Server{
		handler: handler,
		in:      os.Stdin,
		logger:  log.New(os.Stderr, "", log.LstdFlags),
	}
	for _, option := range options {
		option(ret)
	}
	if ret.writer == nil {
		ret.writer = NewWriter(os.Stdout)
	}
	return ret
}

// Writer exposes the outbound side so pushed frames from another transport
// can share the same atomic line writer.
func (s *Server) Writer() *Writer {
	return s.writer
}

// ListenAndServe runs the read loop until end of input or context
// cancellation. It returns nil on a clean end of stream. A line exceeding
// maxLineSize is drained to its newline and dropped so the next line is
// served normally.
func (s *Server) ListenAndServe(ctx context.Context) error {
	reader := bufio.NewReaderSize(s.in, 64*1024)
	var line []byte
	oversized := false
	for {
		if ctx.Err() != nil {
			return nil
		}
		chunk, err := reader.ReadSlice('\n')
		if !oversized {
			line = append(line, chunk...)
			if len(line) > maxLineSize {
				oversized = true
			}
		}
		if err == bufio.ErrBufferFull {
			if oversized {
				line = nil
			}
			continue
		}
		if oversized {
			s.logger.Printf("dropped oversized line exceeding %v bytes", maxLineSize)
			oversized = false
		} else if trimmed := bytes.TrimSpace(line); len(trimmed) > 0 {
			s.serveLine(ctx, trimmed)
		}
		line = nil
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
	}
}

func (s *Server) serveLine(ctx context.Context, line []byte) {
	// A failure on one line must never take down the loop.
	defer func() {
		if r := recover(); r != nil {
			s.logger.Printf("recovered from handler panic: %v", r)
		}
	}()
	message, err := jsonrpc.DecodeMessage(line)
	if err != nil {
		s.logger.Printf("dropped unparseable line: %v", err)
		return
	}
	switch message.Type {
	case jsonrpc.TypeRequest:
		response := jsonrpc.NewResponse(message.Request.Id)
		s.handler.Serve(ctx, message.Request, response)
		// An untouched response means the handler forwarded the call and the
		// reply arrives out of band.
		if response.Result == nil && response.Error == nil {
			return
		}
		if err := s.writer.Write(response); err != nil {
			s.logger.Printf("failed to write response: %v", err)
		}
	case jsonrpc.TypeNotification:
		s.handler.OnNotification(ctx, message.Notification)
	case jsonrpc.TypeResponse:
		if responses, ok := s.handler.(jsonrpc.ResponseHandler); ok {
			responses.OnResponse(ctx, message.Response)
			return
		}
		s.logger.Printf("dropped unexpected response envelope for id %v", message.Response.Id)
	}
}
