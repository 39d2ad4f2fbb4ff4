package stdio

import (
	"encoding/json"
	"io"
	"sync"
)

// Writer serializes messages onto an NDJSON stream. Each message is written
// with its trailing newline in a single Write call so concurrent writers never
// interleave mid-line.
type Writer struct {
	mux sync.Mutex
	out io.Writer
}

// NewWriter creates a writer over out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Write marshals message and emits it as one line.
func (w *Writer) Write(message interface{}) error {
	data, err := json.Marshal(message)
	if err != nil {
		return err
	}
	return w.WriteRaw(data)
}

// WriteRaw emits an already serialized message as one line.
func (w *Writer) WriteRaw(data []byte) error {
	line := make([]byte, 0, len(data)+1)
	line = append(line, data...)
	line = append(line, '\n')
	w.mux.Lock()
	defer w.mux.Unlock()
	_, err := w.out.Write(line)
	return err
}
