package sse

import "strings"

// Frame is one discrete event+data unit of the push stream.
type Frame struct {
	Event string
	Data  string
}

// parserState tracks the incremental frame parser position.
type parserState int

const (
	awaitingEvent parserState = iota
	awaitingData
)

// frameParser assembles frames from individual stream lines, so a frame
// spanning chunk boundaries is reconstructed rather than misparsed.
type frameParser struct {
	state parserState
	event string
	data  []string
}

// feed consumes one line; it returns a completed frame on the blank line
// terminating it.
func (p *frameParser) feed(line string) (*Frame, bool) {
	if line == "" {
		if p.state == awaitingEvent && len(p.data) == 0 {
			return nil, false
		}
		frame := &Frame{Event: p.event, Data: strings.Join(p.data, "\n")}
		if frame.Event == "" {
			frame.Event = "message"
		}
		p.state = awaitingEvent
		p.event = ""
		p.data = nil
		return frame, true
	}
	switch {
	case strings.HasPrefix(line, ":"):
		// comment line, keep-alive
	case strings.HasPrefix(line, "event:"):
		p.event = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		p.state = awaitingData
	case strings.HasPrefix(line, "data:"):
		p.data = append(p.data, strings.TrimSpace(strings.TrimPrefix(line, "data:")))
		p.state = awaitingData
	}
	return nil, false
}
