// Package natsclient manages NATS connections for the UnitStream platform
// with circuit breaker protection and health monitoring.
//
// # Connection Management
//
// The Client wraps a nats.Conn with lifecycle management, reconnection
// handling, and a circuit breaker that opens after repeated connection
// failures. While the circuit is open, connection attempts fail fast with
// ErrCircuitOpen until the backoff window elapses. Backoff doubles per
// round up to a configurable maximum.
//
// Creating and connecting a client:
//
//	client, err := natsclient.NewClient("nats://localhost:4222",
//	    natsclient.WithName("unitstream"),
//	    natsclient.WithTimeout(5*time.Second),
//	)
//	if err != nil {
//	    return err
//	}
//	if err := client.Connect(ctx); err != nil {
//	    return err
//	}
//	defer client.Close(ctx)
//
// # Messaging
//
// Subscribe and Publish operate on core NATS subjects. Subscription
// handlers receive a per-message context with a 30-second timeout derived
// from the subscribe context. Request performs a request-reply exchange.
//
// # Health and Metrics
//
// With WithHealthInterval the client runs a background monitor that pings
// the server and invokes the health-change callback on transitions. When
// configured with WithMetrics, connection state and reconnect counts are
// recorded on the platform's core Prometheus metrics.
package natsclient
