// Package metrics derives dashboard figures from a record snapshot.
//
// Every function is a pure computation over its arguments: nothing is
// cached between calls and no input slice is modified, so callers may
// share one snapshot across concurrent requests.
package metrics
