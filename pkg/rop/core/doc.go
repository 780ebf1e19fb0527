// Package core carries run options through a context: the name a run reports
// under and the observer it reports to. Explicit options given to a run take
// precedence over the values found here.
package core
