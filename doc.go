// Package fixproto is a codec for FIXT 1.1 session-layer and FIX 5.0 SP2
// application-layer messages: a tokenizer, a context-sensitive
// repeating-group parser, and an encoder that re-serializes a structured
// message to wire format.
//
// # Scope
//
// This package converts a stream of tag=value records into a [Message] and
// back. It never interprets field values beyond what framing requires
// (BeginString, BodyLength, CheckSum, MsgType) and the entry counts of
// repeating groups, never validates business
// semantics, and never verifies an input checksum — it only produces a
// correct one on output. Per-message-type strongly-typed wrappers, session
// management, sequence numbering, and transport I/O are layers built on top
// of this package; none of that lives here.
//
// # Repeating groups
//
// Group boundaries are disambiguated with a [registry.Registry], keyed by
// the group's count tag and the enclosing message's MsgType. All group
// entries, at every nesting level, live in one flat arena owned by the
// Message and referenced by [EntryID].
package fixproto
