package fixproto

import (
	"strconv"

	"github.com/kclejeune/fixproto/registry"
)

// MaxGroupDepth bounds how many repeating groups may be nested inside one
// another. Four levels cover every group in [registry.Standard]; eight leaves room
// for deeper custom registries without letting the context stack grow
// without bound on malformed or adversarial input.
const MaxGroupDepth = 8

// frame is one level of the parser's context stack. The bottom frame
// (depth 0) is always the top-level message; every frame above it
// represents a repeating group and, once its delimiter tag has been seen,
// the entry currently under construction within that group.
type frame struct {
	isMessage bool

	count         Tag
	delim         Tag
	members       map[Tag]bool
	nestedAllowed map[Tag]bool

	// Where freshly started entries of this group get recorded.
	parentIsMessage bool
	parentEntry     EntryID

	hasEntry bool
	entryID  EntryID
}

type parser struct {
	reg     *registry.Registry
	msg     *Message
	msgType string
	sawMsgType bool
	stack   []*frame
}

// Parse converts raw into a structured Message. delim selects the record
// delimiter; pass 0 to auto-detect between SOH and '|'. reg supplies the
// repeating-group bindings; a nil reg makes every count tag look like a
// plain field, the same conservative treatment given to any unregistered
// tag.
func Parse(raw []byte, delim byte, reg *registry.Registry) (*Message, error) {
	d := detectDelim(raw, delim)
	records, err := tokenize(raw, d)
	if err != nil {
		return nil, err
	}

	msg := New(d)
	p := &parser{
		reg: reg,
		msg: msg,
		stack: []*frame{{isMessage: true}},
	}

	for _, rec := range records {
		if err := p.feed(rec); err != nil {
			return nil, err
		}
	}

	if !p.sawMsgType {
		return nil, &ParseError{Err: ErrMissingMsgType, RecordIndex: len(records)}
	}
	return msg, nil
}

func (p *parser) top() *frame { return p.stack[len(p.stack)-1] }

// groupDepth counts the non-message frames currently open.
func (p *parser) groupDepth() int { return len(p.stack) - 1 }

// feed classifies one record against the context stack in order —
// nested group, delimiter, member, then close-and-retry — against
// progressively outer contexts until the record is consumed.
func (p *parser) feed(rec record) error {
	for {
		top := p.top()

		if top.isMessage {
			if rec.tag == TagMsgType {
				if !p.sawMsgType {
					// Only the first tag 35 seeds the snapshot used for
					// every subsequent registry lookup.
					p.msgType = rec.value
					p.sawMsgType = true
				}
				p.msg.SetField(rec.tag, rec.value)
				return nil
			}

			if p.reg.IsCountTag(rec.tag, p.msgType) {
				return p.openGroup(rec, true, 0)
			}

			p.msg.SetField(rec.tag, rec.value)
			return nil
		}

		// 1. Nested count-tag check: wins over closing this context, but
		// only once this group has an active entry to attach the nested
		// group to.
		if top.hasEntry && top.nestedAllowed[rec.tag] && p.reg.IsCountTag(rec.tag, p.msgType) {
			return p.openGroup(rec, false, top.entryID)
		}

		// 2. Delimiter-tag check: (re)starts an entry of this group,
		// whether we were awaiting the first entry or already inside one.
		if rec.tag == top.delim {
			e := newGroupEntry(rec.tag, rec.value)
			id := p.msg.arena.append(e)
			p.recordEntry(top, id)
			top.hasEntry = true
			top.entryID = id
			return nil
		}

		// 3. Member-tag check: field of the entry under construction.
		if top.hasEntry && top.members[rec.tag] {
			p.msg.arena.mutate(top.entryID).fields[rec.tag] = rec.value
			return nil
		}

		// 4. Group-close check: this context cannot accept the record;
		// close it and retry against the newly exposed context. This may
		// cascade through several nested groups for a single record.
		p.stack = p.stack[:len(p.stack)-1]
	}
}

// openGroup parses rec's value as the declared entry count, pushes a new
// group frame for rec.tag, and returns any MalformedCount/ErrGroupDepth
// failure.
func (p *parser) openGroup(rec record, parentIsMessage bool, parentEntry EntryID) error {
	rawRec := strconv.Itoa(int(rec.tag)) + "=" + rec.value
	if _, err := strconv.Atoi(rec.value); err != nil {
		return &ParseError{Err: ErrMalformedCount, RecordIndex: rec.index, Record: rawRec}
	}
	n, _ := strconv.Atoi(rec.value)
	if n < 0 {
		return &ParseError{Err: ErrMalformedCount, RecordIndex: rec.index, Record: rawRec}
	}

	if p.groupDepth() >= MaxGroupDepth {
		return &ParseError{Err: ErrGroupDepth, RecordIndex: rec.index, Record: rawRec}
	}

	delim, _ := p.reg.DelimiterTag(rec.tag, p.msgType)
	nested := p.reg.Nested(rec.tag, p.msgType)
	nestedAllowed := make(map[Tag]bool, len(nested))
	for _, t := range nested {
		nestedAllowed[t] = true
	}

	memberList := p.reg.Members(rec.tag, p.msgType)
	members := make(map[Tag]bool, len(memberList))
	for _, t := range memberList {
		members[t] = true
	}
	members[delim] = true // the delimiter tag is always a member of its own entry

	f := &frame{
		count:           rec.tag,
		delim:           delim,
		members:         members,
		nestedAllowed:   nestedAllowed,
		parentIsMessage: parentIsMessage,
		parentEntry:     parentEntry,
	}
	if parentIsMessage {
		p.msg.OpenGroup(rec.tag)
	}
	p.stack = append(p.stack, f)
	return nil
}

// recordEntry appends id to the group's entry list, either at the
// top-level message or nested within the parent entry, per frame f's
// recorded origin.
func (p *parser) recordEntry(f *frame, id EntryID) {
	if f.parentIsMessage {
		p.msg.groups[f.count] = append(p.msg.groups[f.count], id)
		return
	}
	parent := p.msg.arena.mutate(f.parentEntry)
	if parent.nested == nil {
		parent.nested = make(map[Tag][]EntryID)
	}
	parent.nested[f.count] = append(parent.nested[f.count], id)
}
