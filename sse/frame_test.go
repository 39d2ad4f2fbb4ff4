package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrameParser(t *testing.T) {
	var testCases = []struct {
		description string
		lines       []string
		expect      []Frame
	}{
		{
			description: "endpoint frame",
			lines:       []string{"event: endpoint", "data: /messages?sessionId=abc123", ""},
			expect:      []Frame{{Event: "endpoint", Data: "/messages?sessionId=abc123"}},
		},
		{
			description: "default event name",
			lines:       []string{`data: {"jsonrpc":"2.0","id":5,"result":{}}`, ""},
			expect:      []Frame{{Event: "message", Data: `{"jsonrpc":"2.0","id":5,"result":{}}`}},
		},
		{
			description: "multi line data",
			lines:       []string{"data: first", "data: second", ""},
			expect:      []Frame{{Event: "message", Data: "first\nsecond"}},
		},
		{
			description: "comments and keep-alives are ignored",
			lines:       []string{": keep-alive", "", "data: payload", ""},
			expect:      []Frame{{Event: "message", Data: "payload"}},
		},
		{
			description: "two frames",
			lines:       []string{"event: endpoint", "data: /messages?sessionId=s1", "", "data: hello", ""},
			expect: []Frame{
				{Event: "endpoint", Data: "/messages?sessionId=s1"},
				{Event: "message", Data: "hello"},
			},
		},
	}
	for _, testCase := range testCases {
		parser := &frameParser{}
		var actual []Frame
		for _, line := range testCase.lines {
			if frame, ok := parser.feed(line); ok {
				actual = append(actual, *frame)
			}
		}
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}

func TestIsEndpointFrame(t *testing.T) {
	assert.True(t, isEndpointFrame(&Frame{Event: "endpoint", Data: "/anything"}))
	assert.True(t, isEndpointFrame(&Frame{Event: "message", Data: "/messages?sessionId=x"}))
	assert.False(t, isEndpointFrame(&Frame{Event: "message", Data: `{"jsonrpc":"2.0","id":1,"result":{}}`}))
}
