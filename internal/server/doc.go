// Package server provides the HTTP server of skuledger.
//
// # Architecture Overview
//
//	┌───────────────────────────────────────────────────────────────┐
//	│                     HTTP Server (:HTTPPort)                   │
//	├───────────────────────────────────────────────────────────────┤
//	│  Recovery (ginzap.RecoveryWithZap)                            │
//	├───────────────────────────────────────────────────────────────┤
//	│  /healthz        liveness                                     │
//	│  /metrics        Prometheus exposition (MetricsEnabled)       │
//	├───────────────────────────────────────────────────────────────┤
//	│                       Router (/api/v1)                        │
//	│  ┌─────────────────────────────────────────────────────────┐  │
//	│  │  Logger (request/response logging)                      │  │
//	│  │  Authenticator (Auth.Enabled, mutating methods only)    │  │
//	│  │  Handlers (registered via callback)                     │  │
//	│  └─────────────────────────────────────────────────────────┘  │
//	├───────────────────────────────────────────────────────────────┤
//	│  NoRoute → 404 {"error": "not found"}                         │
//	└───────────────────────────────────────────────────────────────┘
//
// # Server Modes
//
// ServerMode "prod" runs gin in release mode; any other value runs it in debug
// mode. The listener is plain HTTP in both cases.
//
// # Server Lifecycle
//
//	srv, err := server.NewServer(cfg, func(router *gin.RouterGroup) {
//	    v1.RegisterHandlers(router, handler)
//	})
//
//	go func() { errCh <- srv.Start(ctx) }() // blocks, nil after Stop
//
//	<-ctx.Done()
//	srv.Stop(context.Background())          // waits up to 10s for in-flight requests
//
// # Middleware
//
// Logger (middlewares.Logger):
//   - logs request start at debug level
//   - logs request end with status and latency, at error level when the
//     handler recorded errors
//   - uses the "http" logger
//
// Authenticator (middlewares.Authenticator):
//   - GET and HEAD pass through
//   - other methods need "Authorization: Bearer <jwt>", HS256 signed with
//     Auth.JWTSecret and carrying an exp claim
//   - the token subject is stored in the gin context under "subject"
//   - failures answer 401 {"error": "..."}
package server
