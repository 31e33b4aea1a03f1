package fixproto

import (
	"errors"
	"fmt"
)

// Sentinel parse failures. Every failure aborts the parse and discards
// partial state — there is no recoverable partial Message, only a complete
// one or an error. Check these with errors.Is; use [ParseError]'s fields
// when the failing record's position matters.
var (
	// ErrMalformedRecord signals a record with no "=" separator.
	ErrMalformedRecord = errors.New("fix: record has no '=' separator")

	// ErrMalformedTag signals a tag that is not a decimal integer in
	// [1, 65535].
	ErrMalformedTag = errors.New("fix: tag is not a positive integer")

	// ErrMalformedCount signals a count-tag value that is not a
	// non-negative integer.
	ErrMalformedCount = errors.New("fix: group count is not a non-negative integer")

	// ErrMissingMsgType signals a message with no tag 35.
	ErrMissingMsgType = errors.New("fix: message has no MsgType (tag 35)")

	// ErrGroupDepth signals repeating groups nested deeper than
	// MaxGroupDepth.
	ErrGroupDepth = errors.New("fix: repeating groups nested too deeply")
)

// ParseError reports a parse failure together with the position of the
// offending record.
type ParseError struct {
	// Err is one of the sentinel errors above.
	Err error
	// RecordIndex is the zero-based index of the record being processed
	// when Err occurred.
	RecordIndex int
	// Record is the raw record bytes, if available.
	Record string
}

// Error implements the builtin error interface.
func (e *ParseError) Error() string {
	if e.Record != "" {
		return fmt.Sprintf("fix: record %d (%q): %s", e.RecordIndex, e.Record, e.Err)
	}
	return fmt.Sprintf("fix: record %d: %s", e.RecordIndex, e.Err)
}

// Unwrap exposes the sentinel error for errors.Is/errors.As.
func (e *ParseError) Unwrap() error { return e.Err }
