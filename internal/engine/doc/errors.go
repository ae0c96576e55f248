package doc

import "errors"

// Errors returned by document operations.
var (
	// ErrPositionOutOfRange indicates a position outside the document.
	ErrPositionOutOfRange = errors.New("position out of range")

	// ErrRangeInvalid indicates an invalid range (e.g., end < start).
	ErrRangeInvalid = errors.New("invalid range")

	// ErrUnknownType indicates an unregistered node or mark type name.
	ErrUnknownType = errors.New("unknown type")

	// ErrInvalidContent indicates content that the target node type
	// does not accept (e.g., a block node inside a paragraph).
	ErrInvalidContent = errors.New("invalid content")

	// ErrReplaceShape indicates a replacement whose slice depths do not
	// line up with the replaced range.
	ErrReplaceShape = errors.New("replace shape mismatch")

	// ErrBadJSON indicates malformed document JSON.
	ErrBadJSON = errors.New("malformed document JSON")
)
