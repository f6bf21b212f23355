// Package username canonicalizes Instagram account identifiers.
//
// A canonical username is the input with surrounding whitespace removed and
// all letters lower-cased. Values that are empty after trimming are not
// usernames and are never stored by [Set].
//
// All functions are pure and safe for concurrent use. A [Set] value is not:
// guard it yourself if several goroutines share one.
package username
