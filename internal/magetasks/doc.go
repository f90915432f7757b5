// Package magetasks implements the build, test, and lint targets invoked
// from the Magefile.
package magetasks
