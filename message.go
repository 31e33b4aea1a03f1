package fixproto

// DefaultDelim is byte 0x01, the "SOH" character used as the canonical
// on-wire record delimiter.
const DefaultDelim byte = 1

// DebugDelim is the pipe character, a human-readable stand-in for
// DefaultDelim used for debugging and in this package's own tests.
const DebugDelim byte = '|'

// Message is the structured, top-level FIX message container: a map of
// top-level fields, a map of top-level repeating groups, the arena backing
// every group entry at every nesting level, and the delimiter the message
// was parsed with (or built with).
//
// A Message is produced by [Parse] (read path) or by [New] plus the
// builder methods (write path, used by typed per-message-type wrappers).
// Read accessors never fail; mutations always preserve the invariants
// documented on GroupEntry and arena.
type Message struct {
	fields map[Tag]string
	groups map[Tag][]EntryID
	arena  arena
	delim  byte
}

// New returns an empty Message ready for the builder API, using delim as
// its wire delimiter.
func New(delim byte) *Message {
	return &Message{
		fields: make(map[Tag]string),
		groups: make(map[Tag][]EntryID),
		delim:  delim,
	}
}

// Delimiter returns the delimiter this Message was parsed or built with.
func (m *Message) Delimiter() byte { return m.delim }

// GetField returns the value of a top-level field, and whether it was
// present.
func (m *Message) GetField(tag Tag) (string, bool) {
	v, ok := m.fields[tag]
	return v, ok
}

// MsgType returns the value of tag 35, and whether it was present. A
// successfully parsed Message always has it; a builder-constructed Message
// may not yet.
func (m *Message) MsgType() (string, bool) {
	return m.GetField(TagMsgType)
}

// GetGroup returns the ordered EntryIDs of a top-level repeating group,
// and whether that group is present.
func (m *Message) GetGroup(count Tag) ([]EntryID, bool) {
	ids, ok := m.groups[count]
	return ids, ok
}

// TopLevelGroups returns the count tags of every top-level group present
// in the message.
func (m *Message) TopLevelGroups() []Tag {
	tags := make([]Tag, 0, len(m.groups))
	for t := range m.groups {
		tags = append(tags, t)
	}
	return tags
}

// GetEntry returns a copy of the arena entry at id, and whether id is in
// bounds.
func (m *Message) GetEntry(id EntryID) (GroupEntry, bool) {
	if !m.arena.valid(id) {
		return GroupEntry{}, false
	}
	return m.arena.get(id), true
}

// SetField inserts or replaces a top-level field.
func (m *Message) SetField(tag Tag, value string) {
	if m.fields == nil {
		m.fields = make(map[Tag]string)
	}
	m.fields[tag] = value
}

// OpenGroup declares an empty top-level repeating group for count, ready
// for entries to be appended with AddEntry. Calling OpenGroup on a group
// that already exists is a no-op; it does not clear existing entries.
func (m *Message) OpenGroup(count Tag) {
	if m.groups == nil {
		m.groups = make(map[Tag][]EntryID)
	}
	if _, ok := m.groups[count]; !ok {
		m.groups[count] = nil
	}
}

// AddEntry appends a new entry to the top-level group count, with delim
// recorded as delimValue for the entry's delimiter field, and returns the
// new entry's EntryID. The group is implicitly opened if it was not
// already. An entry's delimiter value must be its first recorded field;
// AddEntry guarantees that by construction.
func (m *Message) AddEntry(count Tag, delim Tag, delimValue string) EntryID {
	m.OpenGroup(count)
	e := newGroupEntry(delim, delimValue)
	id := m.arena.append(e)
	m.groups[count] = append(m.groups[count], id)
	return id
}

// SetEntryField sets a field within an existing entry. It is a no-op if id
// is out of range.
func (m *Message) SetEntryField(id EntryID, tag Tag, value string) {
	if !m.arena.valid(id) {
		return
	}
	e := m.arena.mutate(id)
	if e.fields == nil {
		e.fields = make(map[Tag]string)
	}
	e.fields[tag] = value
}

// AddNestedEntry opens or extends a group nested within an existing entry.
// parent must be a valid EntryID (typically one returned from AddEntry or
// a previous AddNestedEntry); count is the nested group's count tag; delim
// and delimValue seed the new nested entry's delimiter field. It returns
// the new nested entry's EntryID, or false if parent is out of range.
func (m *Message) AddNestedEntry(parent EntryID, count Tag, delim Tag, delimValue string) (EntryID, bool) {
	if !m.arena.valid(parent) {
		return 0, false
	}
	e := newGroupEntry(delim, delimValue)
	id := m.arena.append(e)

	parentEntry := m.arena.mutate(parent)
	if parentEntry.nested == nil {
		parentEntry.nested = make(map[Tag][]EntryID)
	}
	parentEntry.nested[count] = append(parentEntry.nested[count], id)
	return id, true
}

// Clone returns a deep copy of m: independent field maps, group maps, and
// arena. A typed-wrapper layer above this package can use it to build a
// response message starting from a copy of a request's fields, without
// this package needing to know which tags are routing fields.
func (m *Message) Clone() *Message {
	clone := &Message{
		fields: make(map[Tag]string, len(m.fields)),
		groups: make(map[Tag][]EntryID, len(m.groups)),
		delim:  m.delim,
	}
	for k, v := range m.fields {
		clone.fields[k] = v
	}
	for k, ids := range m.groups {
		cp := make([]EntryID, len(ids))
		copy(cp, ids)
		clone.groups[k] = cp
	}
	clone.arena.entries = make([]GroupEntry, len(m.arena.entries))
	for i, e := range m.arena.entries {
		ce := GroupEntry{delimTag: e.delimTag, fields: make(map[Tag]string, len(e.fields))}
		for k, v := range e.fields {
			ce.fields[k] = v
		}
		if e.nested != nil {
			ce.nested = make(map[Tag][]EntryID, len(e.nested))
			for k, ids := range e.nested {
				cp := make([]EntryID, len(ids))
				copy(cp, ids)
				ce.nested[k] = cp
			}
		}
		clone.arena.entries[i] = ce
	}
	return clone
}
