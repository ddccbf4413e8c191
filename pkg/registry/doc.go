// Package registry provides an explicit, named registry with a reassignable
// default alias. It replaces process-wide machine lookup: callers own the
// registry and pass it where name resolution is needed.
package registry
