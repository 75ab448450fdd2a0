// Package errors defines the structured error taxonomy shared across the
// quote engine.
//
// Two classifications matter to callers: NOT_FOUND, the only error kind the
// estimation core produces (unknown service name, missing schedule), which is
// a normal outcome to branch on; and INVALID_DATA, raised when reference
// tables fail to load, which is fatal at startup. The remaining codes cover
// the HTTP surface.
package errors
