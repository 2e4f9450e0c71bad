// Package logx centralizes the structured logger shared by the signature
// registry and the TRS mutation path. It is a thin wrapper over hclog so
// callers can inject their own logger without this module taking a direct
// dependency on how that logger is built.
package logx

import "github.com/hashicorp/go-hclog"

// Logger is the structured logger used on construction/mutation paths.
// It is never consulted on the unify/rewrite hot path (see package pkg/rewrite).
type Logger = hclog.Logger

// Noop returns a logger that discards everything, the default for every
// component in this module unless a caller injects a real one.
func Noop() Logger {
	return hclog.NewNullLogger()
}

// Named returns a child logger for one component, or Noop() if base is nil.
func Named(base Logger, name string) Logger {
	if base == nil {
		return Noop()
	}
	return base.Named(name)
}
