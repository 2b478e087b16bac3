// Steamlens - Steam Game Review and Playtime Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

/*
Package supervisor provides process supervision for Steamlens using suture v4.

The tree groups long-running services into two layers so that a failing
background task never takes the query API down with it:

	RootSupervisor ("steamlens")
	├── APISupervisor ("api-layer")
	│   └── HTTPServerService
	└── MaintenanceSupervisor ("maintenance-layer")
	    ├── cache janitor (*cache.Cache)
	    └── PerformanceReportService

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfigFromConfig(cfg))
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPServerService(server, server.Addr, cfg.Server.ShutdownTimeout))
	tree.AddMaintenanceService(handler.Cache())
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    return err
	}

# Failure Handling

Each failure increments a counter that decays over FailureDecay seconds.
Once the counter passes FailureThreshold the supervisor waits
FailureBackoff before the next restart. Every restart is logged through
sutureslog and counted in supervisor_service_restarts_total.

# What Is NOT Supervised

The dataset is loaded once before the tree starts and is immutable
afterwards. DuckDB is only used during loading and export, so it has no
long-running component to supervise.
*/
package supervisor
