// Package internal holds iterator helpers shared by the machine and its
// assembler.
package internal

import (
	"iter"
)

// IterSeqConcat yields every value of each sequence in turn.
func IterSeqConcat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for val := range seq {
				if !yield(val) {
					return
				}
			}
		}
	}
}

// IterSeq2Concat yields every pair of each sequence in turn. Later
// sequences win when collected into a map, so predefines can override
// machine defines.
func IterSeq2Concat[K any, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, seq := range seqs {
			for key, value := range seq {
				if !yield(key, value) {
					return
				}
			}
		}
	}
}
