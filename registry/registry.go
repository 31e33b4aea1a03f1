// Package registry provides the process-wide, immutable repeating-group
// lookup table used by the parser in package fixproto.
//
// A registry answers whether a numeric tag opens a repeating group, and if
// so, which tag delimits its entries, which tags belong to an entry, and
// which nested groups may occur inside an entry. Lookups take an optional
// message-type context: a binding scoped to a specific MsgType shadows the
// generic binding for the same count tag. A count tag with neither binding
// is not a group at all — the parser then treats it like any other field,
// which preserves unknown or mistakenly-grouped data instead of corrupting
// it.
package registry

// Tag is a FIX field number. Zero is not a valid tag.
type Tag int

// AnyMsgType is the context key for a group binding that applies
// regardless of the enclosing message's MsgType (tag 35).
const AnyMsgType = ""

// key identifies one registered group: a count tag within a message-type
// context, or within AnyMsgType for the generic binding.
type key struct {
	count   Tag
	msgType string
}

// group holds everything the parser needs once it recognizes count as a
// group-opening tag.
type group struct {
	delim   Tag
	members map[Tag]bool
	nested  []Tag
}

// Registry is an immutable table of group bindings. The zero value is an
// empty registry; use New to build one from a set of definitions.
type Registry struct {
	groups map[key]*group
}

// Def describes one repeating-group binding to register.
type Def struct {
	// Count is the "NoXXX" tag that declares the entry count.
	Count Tag
	// MsgType scopes the binding to one message type. Leave empty
	// (AnyMsgType) for a generic binding that applies to every message.
	MsgType string
	// Delim is the tag that starts each entry of the group.
	Delim Tag
	// Members lists the tags that belong to an entry of this group,
	// excluding Delim's nested groups and the count tag itself.
	Members []Tag
	// Nested lists count tags that, if encountered while parsing an
	// entry of this group, open a group nested inside that entry.
	Nested []Tag
}

// New builds a Registry from defs. Later defs for the same (Count,
// MsgType) pair replace earlier ones.
func New(defs []Def) *Registry {
	r := &Registry{groups: make(map[key]*group, len(defs))}
	for _, d := range defs {
		g := &group{
			delim:   d.Delim,
			members: make(map[Tag]bool, len(d.Members)),
		}
		for _, m := range d.Members {
			g.members[m] = true
		}
		g.members[d.Delim] = true
		g.nested = append(g.nested, d.Nested...)
		r.groups[key{d.Count, d.MsgType}] = g
	}
	return r
}

// lookup resolves count within msgType, falling back to the generic
// binding. It returns nil when count is not a registered group in either
// context.
func (r *Registry) lookup(count Tag, msgType string) *group {
	if r == nil {
		return nil
	}
	if g, ok := r.groups[key{count, msgType}]; ok {
		return g
	}
	if g, ok := r.groups[key{count, AnyMsgType}]; ok {
		return g
	}
	return nil
}

// IsCountTag reports whether count opens a repeating group in the context
// of msgType (falling back to the generic binding).
func (r *Registry) IsCountTag(count Tag, msgType string) bool {
	return r.lookup(count, msgType) != nil
}

// DelimiterTag returns the tag that starts each entry of the group opened
// by count, and whether count is a registered group at all.
func (r *Registry) DelimiterTag(count Tag, msgType string) (Tag, bool) {
	g := r.lookup(count, msgType)
	if g == nil {
		return 0, false
	}
	return g.delim, true
}

// IsMember reports whether tag belongs to an entry of the group opened by
// count.
func (r *Registry) IsMember(count Tag, msgType string, tag Tag) bool {
	g := r.lookup(count, msgType)
	return g != nil && g.members[tag]
}

// Members returns the tags that belong to an entry of the group opened by
// count, not including the count tag itself or nested groups' own tags.
// The delimiter tag is always included.
func (r *Registry) Members(count Tag, msgType string) []Tag {
	g := r.lookup(count, msgType)
	if g == nil {
		return nil
	}
	out := make([]Tag, 0, len(g.members))
	for t := range g.members {
		out = append(out, t)
	}
	return out
}

// Nested returns the count tags of groups that may be nested inside an
// entry of the group opened by count.
func (r *Registry) Nested(count Tag, msgType string) []Tag {
	g := r.lookup(count, msgType)
	if g == nil {
		return nil
	}
	return g.nested
}

// NestedAccepts reports whether candidate is among the nested group count
// tags declared for the group opened by count.
func (r *Registry) NestedAccepts(count Tag, msgType string, candidate Tag) bool {
	for _, n := range r.Nested(count, msgType) {
		if n == candidate {
			return true
		}
	}
	return false
}
