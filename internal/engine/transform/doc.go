// Package transform provides the structural-edit log: steps that
// describe atomic document changes, step maps that translate positions
// across a change, and the Transform type that accumulates steps into
// an append-only log with a composed mapping.
//
// The transform package provides:
//
//   - Step: a reversible structural edit (currently ReplaceStep)
//   - StepMap: per-step position translation with insertion bias
//   - Mapping: composed step maps with O(1) sub-range slicing
//   - Transform: the append-only step log over a document
//
// Basic usage:
//
//	tr := transform.New(d)
//	if err := tr.Delete(2, 5); err != nil {
//	    // d did not change; tr is still usable
//	}
//	newDoc := tr.Doc()
//	pos := tr.Mapping().Map(7, -1)
//
// Position mapping:
//
// Every step contributes a StepMap. Mapping composes them, and
// Mapping.Slice gives a view over any contiguous sub-range of steps
// without copying, so a position valid at step i can be brought up to
// date by mapping through Slice(i, len) only. Deferred consumers such
// as the delta's cached selection rely on this.
package transform
