package bridge

import (
	"context"
	"log"
	"net/http"
	"os"

	"golang.org/x/oauth2"

	"github.com/axion-orbital/planetary-bridge/jsonrpc"
	"github.com/axion-orbital/planetary-bridge/registry"
	"github.com/axion-orbital/planetary-bridge/schema"
	"github.com/axion-orbital/planetary-bridge/sse"
	"github.com/axion-orbital/planetary-bridge/stdio"
	"github.com/axion-orbital/planetary-bridge/tool"
)

const (
	serverName    = "planetary-bridge"
	serverVersion = "0.1"
)

// Service wires the stdio framer to either the local dispatcher or the
// remote session client.
type Service struct {
	stdio   *stdio.Server
	remote  *sse.Client
	handler jsonrpc.Handler
	logger  *log.Logger
}

// New constructs a bridge Service. With Options.URL set it bootstraps the
// streaming connection immediately; a broken remote here is fatal.
func New(ctx context.Context, options *Options) (*Service, error) {
	logger := log.New(os.Stderr, "[planetary-bridge] ", log.LstdFlags)
	writer := stdio.NewWriter(os.Stdout)
	ret := &Service{logger: logger}

	if options.URL != "" {
		httpClient := http.DefaultClient
		if options.Token != "" {
			source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: options.Token, TokenType: "Bearer"})
			httpClient = oauth2.NewClient(ctx, source)
		}
		remote, err := sse.New(ctx, options.URL, writer,
			sse.WithHTTPClient(httpClient),
			sse.WithLogger(logger))
		if err != nil {
			return nil, err
		}
		ret.remote = remote
		ret.handler = &relay{client: remote, logger: logger}
	} else {
		tools := registry.New()
		if err := tool.RegisterAll(ctx, tools,
			tool.WithClassifyScript(options.ClassifyScript),
			tool.WithExportBaseURL(options.ExportBaseURL)); err != nil {
			return nil, err
		}
		ret.handler = NewHandler(tools, schema.Implementation{Name: serverName, Version: serverVersion}, logger)
	}
	ret.stdio = stdio.New(ret.handler, stdio.WithWriter(writer), stdio.WithLogger(logger))
	return ret, nil
}

// ListenAndServe pumps stdio until end of input, interrupt, or - in remote
// mode - until the push stream closes. All of those are clean shutdowns.
func (s *Service) ListenAndServe(ctx context.Context) error {
	defer func() {
		if handler, ok := s.handler.(*Handler); ok {
			handler.Close()
		}
	}()
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.stdio.ListenAndServe(ctx)
	}()
	if s.remote != nil {
		select {
		case err := <-errCh:
			return err
		case <-s.remote.Done():
			s.logger.Printf("event stream closed, shutting down")
			return nil
		case <-ctx.Done():
			return nil
		}
	}
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return nil
	}
}
