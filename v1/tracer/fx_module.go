package tracer

import (
	"context"
	"log"

	"go.uber.org/fx"
)

// FXModule provides an Fx module that configures distributed tracing.
//
// The module:
//  1. Provides the tracer client through the NewClient constructor
//  2. Registers a shutdown hook that flushes and closes the tracer provider
//
// Usage:
//
//	app := fx.New(
//	    tracer.FXModule,
//	    // other modules...
//	)
var FXModule = fx.Module("tracer",
	fx.Provide(
		NewClient,
	),
	fx.Invoke(RegisterTracerLifecycle),
)

// RegisterTracerLifecycle registers shutdown hooks for the tracer with the
// Fx lifecycle, ensuring pending spans are flushed to exporters when the
// application terminates.
//
// This function is automatically invoked by FXModule and normally doesn't
// need to be called directly.
func RegisterTracerLifecycle(lc fx.Lifecycle, tracer *Tracer) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Println("INFO: shutting down tracer...")
			if tracer.tracer == nil {
				log.Println("INFO: tracer is nil, skipping shutdown")
				return nil
			}
			return tracer.tracer.Shutdown(ctx)
		},
	})
}
