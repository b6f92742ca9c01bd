// Package is holds the presence predicates the rop types rely on. The core
// only ever asks two questions of an arbitrary value: is it absent, and is it
// an error.
package is
