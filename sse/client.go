// Package sse implements the remote side of the bridge: a hanging GET whose
// pushed frames carry the session endpoint and all inbound results, paired
// with HTTP POSTs of outbound envelopes to the session submission URL.
package sse

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"sync"
	"time"

	"github.com/axion-orbital/planetary-bridge/stdio"
)

const endpointEvent = "endpoint"

// submissionPrefix recognizes endpoint frames from servers that omit the
// event name and only push the relative submission path.
const submissionPrefix = "/messages"

// Session is the server-assigned context scoping all later submissions.
type Session struct {
	ID            string
	SubmissionURL string
	CreatedAt     time.Time
}

// Client maintains one streaming connection. Lifecycle: Connecting (New) ->
// Streaming without a session -> Streaming with a session -> Closed when the
// stream ends. There is no reconnection; a new process starts a new session.
type Client struct {
	baseURL    string
	httpClient *http.Client
	output     *stdio.Writer
	logger     *log.Logger

	mux     sync.Mutex
	session *Session
	pending [][]byte

	done chan struct{}
}

// Option configures a client.
type Option func(c *Client)

// WithHTTPClient overrides the HTTP client used for the stream and the
// submissions; a bearer-injecting client goes here.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger overrides the diagnostic logger (defaults to stderr).
func WithLogger(logger *log.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New connects to baseURL and starts consuming the push stream. A connection
// failure or non-success status is fatal to the bridge and reported here;
// nothing retries it.
func New(ctx context.Context, baseURL string, output *stdio.Writer, options ...Option) (*Client, error) {
	ret := &Client{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
		output:     output,
		logger:     log.New(os.Stderr, "", log.LstdFlags),
		done:       make(chan struct{}),
	}
	for _, option := range options {
		option(ret)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Cache-Control", "no-cache")
	resp, err := ret.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to connect %v: %w", baseURL, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("failed to connect %v: unexpected status %v", baseURL, resp.StatusCode)
	}
	go ret.listen(ctx, resp)
	return ret, nil
}

// Done closes when the push stream ends.
func (c *Client) Done() <-chan struct{} {
	return c.done
}

// Session returns the current session, if established.
func (c *Client) Session() *Session {
	c.mux.Lock()
	defer c.mux.Unlock()
	return c.session
}

// Send submits one serialized envelope. Before a session exists the envelope
// is queued and flushed in arrival order on session establishment. Submission
// failures are logged, never fatal; the caller is left to its own id-based
// correlation (documented limitation).
func (c *Client) Send(ctx context.Context, data json.RawMessage) error {
	c.mux.Lock()
	if c.session == nil {
		body := make([]byte, len(data))
		copy(body, data)
		c.pending = append(c.pending, body)
		c.mux.Unlock()
		return nil
	}
	submissionURL := c.session.SubmissionURL
	c.mux.Unlock()
	return c.post(ctx, submissionURL, data)
}

func (c *Client) post(ctx context.Context, submissionURL string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, submissionURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("submission to %v returned status %v", submissionURL, resp.StatusCode)
	}
	return nil
}

// listen consumes the push stream: the first endpoint frame establishes the
// session, every later data frame is written verbatim to the stdio writer in
// stream order.
func (c *Client) listen(ctx context.Context, resp *http.Response) {
	defer close(c.done)
	defer resp.Body.Close()
	parser := &frameParser{}
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 64*1024), 10*1024*1024)
	for scanner.Scan() {
		frame, ok := parser.feed(scanner.Text())
		if !ok {
			continue
		}
		if c.Session() == nil && isEndpointFrame(frame) {
			if err := c.establishSession(ctx, frame.Data); err != nil {
				c.logger.Printf("failed to establish session: %v", err)
			}
			continue
		}
		if frame.Data == "" {
			continue
		}
		if err := c.output.WriteRaw([]byte(frame.Data)); err != nil {
			c.logger.Printf("failed to relay frame: %v", err)
		}
	}
	if err := scanner.Err(); err != nil {
		c.logger.Printf("event stream terminated: %v", err)
	}
}

func isEndpointFrame(frame *Frame) bool {
	if frame.Event == endpointEvent {
		return true
	}
	return len(frame.Data) > 0 && frame.Data[0] == '/' && len(frame.Data) >= len(submissionPrefix) &&
		frame.Data[:len(submissionPrefix)] == submissionPrefix
}

// establishSession resolves the pushed relative submission path against the
// stream URL and drains the pending queue in arrival order, exactly once.
// The lock stays held across the flush so a Send racing with session
// establishment cannot overtake requests queued before it.
func (c *Client) establishSession(ctx context.Context, submissionPath string) error {
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return err
	}
	ref, err := url.Parse(submissionPath)
	if err != nil {
		return fmt.Errorf("invalid submission path %q: %w", submissionPath, err)
	}
	resolved := base.ResolveReference(ref)
	session := &Session{
		ID:            resolved.Query().Get("sessionId"),
		SubmissionURL: resolved.String(),
		CreatedAt:     time.Now(),
	}
	c.mux.Lock()
	defer c.mux.Unlock()
	queued := c.pending
	c.pending = nil
	for _, body := range queued {
		if err := c.post(ctx, session.SubmissionURL, body); err != nil {
			c.logger.Printf("failed to flush queued request: %v", err)
		}
	}
	c.session = session
	c.logger.Printf("session %v established at %v", session.ID, session.SubmissionURL)
	return nil
}
