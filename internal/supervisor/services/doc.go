// Steamlens - Steam Game Review and Playtime Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

/*
Package services provides suture.Service wrappers for Steamlens components.

Each wrapper translates a component's lifecycle into suture's context-aware
Serve pattern and implements fmt.Stringer so the supervisor can name it in
log output.

# Available Services

HTTP Server (HTTPServerService):
  - Wraps *http.Server with graceful shutdown
  - Converts the ListenAndServe pattern to Serve
  - Configurable shutdown timeout for draining connections

Performance Report (PerformanceReportService):
  - Ticks at a configurable interval
  - Logs per-endpoint latency percentiles and slow endpoints
  - Refreshes the app_uptime_seconds gauge

The result cache janitor (*cache.Cache) already implements suture.Service and
is added to the tree directly.

# Error Handling

Return values determine supervisor behavior:

	nil         -> Service stopped cleanly, will not restart
	error       -> Service crashed, supervisor will restart
	ctx.Err()   -> Shutdown requested, normal termination
*/
package services
