// Package logging constructs the slog loggers used across egrulfill.
//
// It centralizes handler selection (console or JSON), level parsing, optional
// mirroring to a log file, and the standardized attribute keys every component
// logs with. Obtain loggers through New or NewFromConfig so output stays
// uniform; use NewComponentLogger to tag a subsystem.
package logging
