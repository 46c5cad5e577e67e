// Package batch splits a slice into fixed-size chunks and hands each chunk
// to a callback, sequentially or on a bounded errgroup.
//
// Callbacks receive the offset of their chunk in the input so they can write
// results into a preallocated output slice; output order therefore never
// depends on scheduling. Progress is tracked across chunks for CLI and log
// reporting.
package batch
