// Package state provides the editor-state snapshot that deltas are
// created from and applied to. It is the consumer side of the delta
// contract: a state hands out deltas, and applying a finished delta
// yields the next state while the old one stays valid.
//
//	st := state.New(d)
//	dl := st.NewDelta()
//	if err := dl.InsertText("hi"); err != nil {
//	    // handle
//	}
//	st = st.Apply(dl)
package state
