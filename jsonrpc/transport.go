package jsonrpc

import "context"

// Handler serves decoded wire traffic. Serve populates the response for a
// request; a handler that forwards the call to another transport may leave the
// response untouched, signaling that the reply is delivered out of band.
type Handler interface {
	Serve(ctx context.Context, request *Request, response *Response)
	OnNotification(ctx context.Context, notification *Notification)
}

// ResponseHandler is implemented by handlers that also consume response
// envelopes arriving on the inbound stream (the remote relay does).
type ResponseHandler interface {
	OnResponse(ctx context.Context, response *Response)
}
