package jsonrpc

import (
	"bytes"
	"encoding/json"
	"errors"
)

// MessageType discriminates the decoded envelope kinds.
type MessageType int

const (
	// TypeRequest is a call carrying an id.
	TypeRequest MessageType = iota
	// TypeNotification is a call without an id.
	TypeNotification
	// TypeResponse is a result or error envelope.
	TypeResponse
)

// Message is the tagged union of one decoded wire message; exactly one of
// Request, Notification or Response is set, per Type.
type Message struct {
	Type         MessageType
	Request      *Request
	Notification *Notification
	Response     *Response
}

// envelope is the permissive probe shape every inbound line is decoded into
// before classification.
type envelope struct {
	Jsonrpc string          `json:"jsonrpc"`
	Id      json.RawMessage `json:"id,omitempty"`
	Method  string          `json:"method,omitempty"`
	Params  json.RawMessage `json:"params,omitempty"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *Error          `json:"error,omitempty"`
}

// DecodeMessage classifies one wire line as request, notification or response.
func DecodeMessage(data []byte) (*Message, error) {
	env := &envelope{}
	if err := json.Unmarshal(data, env); err != nil {
		return nil, err
	}
	switch {
	case env.Method != "" && isNullId(env.Id):
		return &Message{
			Type:         TypeNotification,
			Notification: &Notification{Jsonrpc: env.Jsonrpc, Method: env.Method, Params: env.Params},
		}, nil
	case env.Method != "":
		id, err := decodeId(env.Id)
		if err != nil {
			return nil, err
		}
		return &Message{
			Type:    TypeRequest,
			Request: &Request{Jsonrpc: env.Jsonrpc, Id: id, Method: env.Method, Params: env.Params},
		}, nil
	case len(env.Result) > 0 || env.Error != nil:
		id, err := decodeId(env.Id)
		if err != nil {
			return nil, err
		}
		return &Message{
			Type:     TypeResponse,
			Response: &Response{Jsonrpc: env.Jsonrpc, Id: id, Result: env.Result, Error: env.Error},
		}, nil
	}
	return nil, errors.New("malformed json-rpc message: no method, result or error")
}

func isNullId(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

// decodeId preserves numeric ids as json.Number so they round-trip verbatim.
func decodeId(raw json.RawMessage) (interface{}, error) {
	if isNullId(raw) {
		return nil, nil
	}
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	var id interface{}
	if err := decoder.Decode(&id); err != nil {
		return nil, err
	}
	return id, nil
}
