// Package validation checks put inputs before they reach the wire.
//
// Host name rules for the bucket belong to the configuration loader; here
// the bucket only has to fit in one path segment. Keys carry the extension
// of a user supplied file name and are checked for encoding and control
// characters.
package validation
