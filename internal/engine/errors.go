package engine

import (
	"errors"

	"github.com/dshills/quill/internal/engine/doc"
	"github.com/dshills/quill/internal/engine/selection"
)

// Errors returned by engine operations.
var (
	// ErrReadOnly indicates an operation was attempted on a read-only
	// engine.
	ErrReadOnly = errors.New("engine is read-only")

	// ErrPositionOutOfRange indicates a position outside the document.
	ErrPositionOutOfRange = doc.ErrPositionOutOfRange

	// ErrRangeInvalid indicates an invalid range (e.g., end < start).
	ErrRangeInvalid = doc.ErrRangeInvalid

	// ErrInvalidContent indicates content the target node type does
	// not accept.
	ErrInvalidContent = doc.ErrInvalidContent

	// ErrReplaceShape indicates a replacement whose slice depths do
	// not line up with the replaced range.
	ErrReplaceShape = doc.ErrReplaceShape

	// ErrInvalidSelection indicates a selection that does not fit the
	// document.
	ErrInvalidSelection = selection.ErrInvalidSelection
)
