package fixproto

import "github.com/kclejeune/fixproto/registry"

// Tag is a FIX field number. Valid tags fall in [1, 65535]; zero is never
// used.
type Tag = registry.Tag

// Well-known tags the encoder treats specially. Apart from these, the core
// interprets no tag's value except a repeating group's count.
const (
	TagBeginString = Tag(8)
	TagBodyLength  = Tag(9)
	TagMsgType     = Tag(35)
	TagCheckSum    = Tag(10)

	// Standard-header tags the encoder orders ahead of everything else,
	// in this fixed sequence. TagMsgType leads; the remaining framing
	// tags (BeginString/BodyLength/CheckSum) are never part of the body
	// and are emitted separately by Encode.
	TagApplVerID     = Tag(1128)
	TagSenderCompID  = Tag(49)
	TagTargetCompID  = Tag(56)
	TagMsgSeqNum     = Tag(34)
	TagSendingTime   = Tag(52)
)

// headerOrder lists the standard-header tags in the fixed order the
// encoder must emit them when present, excluding the three framing tags
// (BeginString, BodyLength, CheckSum) which are handled outside the body.
var headerOrder = []Tag{
	TagMsgType,
	TagApplVerID,
	TagSenderCompID,
	TagTargetCompID,
	TagMsgSeqNum,
	TagSendingTime,
}

// maxTag is the largest valid tag value.
const maxTag = 65535
