// Package rop holds the Result[T] value shared by the railway packages:
// a step either succeeds with a value or fails with an error, and the
// failure track carries that error unchanged to the end of the pipeline.
package rop
