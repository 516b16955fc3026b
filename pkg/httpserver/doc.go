// Package httpserver runs the listingd HTTP API with graceful shutdown.
//
// Run listens on the configured address and blocks until the context is
// cancelled or SIGINT/SIGTERM arrives. Shutdown then drains in-flight
// requests and runs the registered shutdown hooks within one deadline:
//
//	srv := httpserver.NewFromConfig(cfg,
//	    httpserver.WithLogger(log),
//	    httpserver.WithShutdownHook(api.Drain),
//	)
//	if err := srv.Run(ctx, api.Router()); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
//
// Start failures are joined with ErrStart and shutdown failures with
// ErrShutdown.
package httpserver
