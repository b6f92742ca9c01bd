// Package core contains the options shared by the rop packages. Options travel
// on the context so that async helpers deep in a chain pick them up without
// extra parameters.
package core
