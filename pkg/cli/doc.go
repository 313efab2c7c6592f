// Package cli implements the gsq command-line interface.
//
// Commands:
//
//	gsq protocols          list registered query protocols
//	gsq check <file>       validate a server collection file
//	gsq version            show build information
//
// Persistent flags configure logging (--log-level, --log-format) and
// output (--json).
package cli
