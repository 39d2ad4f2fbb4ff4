package bridge

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"
	"github.com/viant/scy"

	"github.com/axion-orbital/planetary-bridge/config"
)

// Run parses args and serves the bridge until shutdown.
func Run(args []string) error {
	options := &Options{}
	if _, err := flags.ParseArgs(options, args); err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if options.Config != "" {
		cfg, err := config.Load(ctx, options.Config)
		if err != nil {
			return err
		}
		options.Apply(cfg)
	}
	if options.Token == "" && options.SecretURL != "" {
		token, err := loadToken(ctx, options)
		if err != nil {
			return err
		}
		options.Token = token
	}
	if err := options.Validate(); err != nil {
		return err
	}
	service, err := New(ctx, options)
	if err != nil {
		return err
	}
	return service.ListenAndServe(ctx)
}

// loadToken reads the opaque bearer credential from a scy secret resource.
func loadToken(ctx context.Context, options *Options) (string, error) {
	secrets := scy.New()
	resource := scy.NewResource("", options.SecretURL, options.SecretKey)
	secret, err := secrets.Load(ctx, resource)
	if err != nil {
		return "", err
	}
	return secret.String(), nil
}
