// Package shutdown provides graceful shutdown for muDB.
//
// A Handler collects cleanup hooks (close the listener, stop the admin
// server, stop the config watcher) and runs them in reverse registration
// order once SIGINT or SIGTERM arrives, or Trigger is called, all within a
// single timeout.
//
// Usage:
//
//	h := shutdown.NewHandler(10 * time.Second)
//	h.OnShutdown(srv.Shutdown)
//	err := h.Wait()
package shutdown
