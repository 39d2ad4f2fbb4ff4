package bridge

import (
	"context"
	"encoding/json"
	"log"

	"github.com/axion-orbital/planetary-bridge/jsonrpc"
	"github.com/axion-orbital/planetary-bridge/sse"
)

// relay forwards every stdio envelope to the remote session client. It never
// populates responses itself: replies arrive on the push stream and reach
// stdout through the shared writer, correlated by the caller's own ids.
type relay struct {
	client *sse.Client
	logger *log.Logger
}

func (r *relay) Serve(ctx context.Context, request *jsonrpc.Request, response *jsonrpc.Response) {
	r.forward(ctx, request)
}

func (r *relay) OnNotification(ctx context.Context, notification *jsonrpc.Notification) {
	r.forward(ctx, notification)
}

func (r *relay) OnResponse(ctx context.Context, response *jsonrpc.Response) {
	r.forward(ctx, response)
}

// forward serializes the envelope and submits it; a failed submission leaves
// the caller without a response and is only logged.
func (r *relay) forward(ctx context.Context, message interface{}) {
	data, err := json.Marshal(message)
	if err != nil {
		r.logger.Printf("failed to serialize outbound envelope: %v", err)
		return
	}
	if err := r.client.Send(ctx, data); err != nil {
		r.logger.Printf("failed to submit envelope: %v", err)
	}
}
