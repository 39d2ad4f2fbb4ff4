// Package bridge implements the protocol bridge between a locally launched
// MCP client speaking newline-delimited JSON-RPC on stdin/stdout and a tool
// backend that is either the in-process registry or a remote server reachable
// over a POST-plus-server-sent-events session.
//
// In local mode the bridge owns the method table: initialize/initialized run
// the handshake, tools/list answers capability discovery from the registry,
// tools/call dispatches a validated handler invocation, prompts/list and
// resources/list answer empty. In remote mode the bridge is a pure relay:
// stdio envelopes are POSTed to the session submission endpoint and pushed
// frames are written back to stdout in stream order, with correlation left to
// the caller's ids.
//
// The bridge is a one-shot adapter: the session lives as long as the stream,
// there is no reconnection, no submission timeout and no cancellation.
package bridge
