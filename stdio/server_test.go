package stdio

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/axion-orbital/planetary-bridge/jsonrpc"
)

type recordingHandler struct {
	requests      []string
	notifications []string
	responses     []interface{}
	leaveEmpty    bool
}

func (h *recordingHandler) Serve(ctx context.Context, request *jsonrpc.Request, response *jsonrpc.Response) {
	h.requests = append(h.requests, request.Method)
	if h.leaveEmpty {
		return
	}
	response.Result = json.RawMessage(`{"ok":true}`)
}

func (h *recordingHandler) OnNotification(ctx context.Context, notification *jsonrpc.Notification) {
	h.notifications = append(h.notifications, notification.Method)
}

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestServer_MalformedLinesAreDropped(t *testing.T) {
	input := strings.Join([]string{
		`{"jsonrpc":"2.0","id":1,"method":"ping"}`,
		`this is not json`,
		``,
		`{"jsonrpc":"2.0","id":2,"method":"ping"}`,
	}, "\n") + "\n"

	handler := &recordingHandler{}
	out := &bytes.Buffer{}
	srv := New(handler,
		WithInput(strings.NewReader(input)),
		WithWriter(NewWriter(out)),
		WithLogger(discardLogger()))

	err := srv.ListenAndServe(context.Background())
	assert.NoError(t, err)
	// the bad line produced no response and did not halt the reader
	assert.Equal(t, []string{"ping", "ping"}, handler.requests)
	lines := nonEmptyLines(out.String())
	assert.Equal(t, 2, len(lines))
	assert.JSONEq(t, `{"jsonrpc":"2.0","id":1,"result":{"ok":true}}`, lines[0])
	assert.JSONEq(t, `{"jsonrpc":"2.0","id":2,"result":{"ok":true}}`, lines[1])
}

func TestServer_OversizedLineIsDropped(t *testing.T) {
	input := strings.Repeat("a", maxLineSize+2) + "\n" +
		`{"jsonrpc":"2.0","id":1,"method":"ping"}` + "\n"

	handler := &recordingHandler{}
	out := &bytes.Buffer{}
	srv := New(handler,
		WithInput(strings.NewReader(input)),
		WithWriter(NewWriter(out)),
		WithLogger(discardLogger()))

	err := srv.ListenAndServe(context.Background())
	assert.NoError(t, err)
	// the oversized line is drained and dropped, the next line is served
	assert.Equal(t, []string{"ping"}, handler.requests)
	lines := nonEmptyLines(out.String())
	assert.Equal(t, 1, len(lines))
	assert.JSONEq(t, `{"jsonrpc":"2.0","id":1,"result":{"ok":true}}`, lines[0])
}

func TestServer_OversizedFinalLineEndsCleanly(t *testing.T) {
	input := `{"jsonrpc":"2.0","id":1,"method":"ping"}` + "\n" +
		strings.Repeat("a", maxLineSize+2)

	handler := &recordingHandler{}
	out := &bytes.Buffer{}
	srv := New(handler,
		WithInput(strings.NewReader(input)),
		WithWriter(NewWriter(out)),
		WithLogger(discardLogger()))

	assert.NoError(t, srv.ListenAndServe(context.Background()))
	assert.Equal(t, []string{"ping"}, handler.requests)
	assert.Equal(t, 1, len(nonEmptyLines(out.String())))
}

func TestServer_Notification(t *testing.T) {
	handler := &recordingHandler{}
	out := &bytes.Buffer{}
	srv := New(handler,
		WithInput(strings.NewReader(`{"jsonrpc":"2.0","method":"notifications/initialized"}`+"\n")),
		WithWriter(NewWriter(out)),
		WithLogger(discardLogger()))
	assert.NoError(t, srv.ListenAndServe(context.Background()))
	assert.Equal(t, []string{"notifications/initialized"}, handler.notifications)
	// notifications never produce a response
	assert.Equal(t, "", out.String())
}

func TestServer_ForwardingHandlerWritesNothing(t *testing.T) {
	handler := &recordingHandler{leaveEmpty: true}
	out := &bytes.Buffer{}
	srv := New(handler,
		WithInput(strings.NewReader(`{"jsonrpc":"2.0","id":9,"method":"tools/call"}`+"\n")),
		WithWriter(NewWriter(out)),
		WithLogger(discardLogger()))
	assert.NoError(t, srv.ListenAndServe(context.Background()))
	assert.Equal(t, []string{"tools/call"}, handler.requests)
	assert.Equal(t, "", out.String())
}

func TestServer_UnexpectedResponseDropped(t *testing.T) {
	handler := &recordingHandler{}
	out := &bytes.Buffer{}
	srv := New(handler,
		WithInput(strings.NewReader(`{"jsonrpc":"2.0","id":4,"result":{}}`+"\n")),
		WithWriter(NewWriter(out)),
		WithLogger(discardLogger()))
	assert.NoError(t, srv.ListenAndServe(context.Background()))
	assert.Equal(t, "", out.String())
}

type panickyHandler struct{}

func (h *panickyHandler) Serve(ctx context.Context, request *jsonrpc.Request, response *jsonrpc.Response) {
	panic("handler exploded")
}

func (h *panickyHandler) OnNotification(ctx context.Context, notification *jsonrpc.Notification) {}

func TestServer_HandlerPanicDoesNotKillLoop(t *testing.T) {
	input := `{"jsonrpc":"2.0","id":1,"method":"ping"}` + "\n" +
		`{"jsonrpc":"2.0","id":2,"method":"ping"}` + "\n"
	out := &bytes.Buffer{}
	srv := New(&panickyHandler{},
		WithInput(strings.NewReader(input)),
		WithWriter(NewWriter(out)),
		WithLogger(discardLogger()))
	assert.NoError(t, srv.ListenAndServe(context.Background()))
	assert.Equal(t, "", out.String())
}

func TestWriter_ConcurrentWritesDoNotInterleave(t *testing.T) {
	out := &bytes.Buffer{}
	writer := NewWriter(out)
	waitGroup := sync.WaitGroup{}
	for i := 0; i < 50; i++ {
		waitGroup.Add(1)
		go func(i int) {
			defer waitGroup.Done()
			payload := fmt.Sprintf(`{"id":%v,"padding":"%v"}`, i, strings.Repeat("x", 256))
			assert.NoError(t, writer.WriteRaw([]byte(payload)))
		}(i)
	}
	waitGroup.Wait()

	lines := nonEmptyLines(out.String())
	assert.Equal(t, 50, len(lines))
	seen := map[float64]bool{}
	for _, line := range lines {
		var decoded map[string]interface{}
		assert.NoError(t, json.Unmarshal([]byte(line), &decoded), line)
		seen[decoded["id"].(float64)] = true
	}
	assert.Equal(t, 50, len(seen))
}

func nonEmptyLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
