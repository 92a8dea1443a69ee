// Package fsops provides the operating-system implementation of the
// filesystem contract consumed by the flatten service.
package fsops
