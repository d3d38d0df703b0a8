package embedding

import (
	"context"

	"go.uber.org/fx"

	"github.com/embedforge/embedkit/v1/logger"
)

// FXModule wires the embedding system into Fx.
//
// It provides:
//   - *Config          (NewConfig, from environment)
//   - Logger           (adapted from *logger.Logger)
//   - *Client          (NewClient)
//   - Lifecycle hook   (RegisterEmbeddingLifecycle)
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule,
//	    embedding.FXModule,
//	    fx.Invoke(func(c *embedding.Client) {
//	        // use embeddings
//	    }),
//	)
var FXModule = fx.Module(
	"embedding",

	fx.Provide(
		NewConfig, // -> *Config
		func(l *logger.Logger) Logger { return l },
		NewClient, // -> *Client
	),

	fx.Invoke(RegisterEmbeddingLifecycle),
)

// RegisterEmbeddingLifecycle ensures that the Client (and its provider)
// are properly cleaned up on application shutdown.
func RegisterEmbeddingLifecycle(lc fx.Lifecycle, client *Client) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
}
