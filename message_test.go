package fixproto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageFieldAccessors(t *testing.T) {
	m := New(DebugDelim)
	m.SetField(TagMsgType, "D")
	m.SetField(55, "MSFT")

	v, ok := m.GetField(55)
	require.True(t, ok)
	assert.Equal(t, "MSFT", v)

	v, ok = m.MsgType()
	require.True(t, ok)
	assert.Equal(t, "D", v)

	_, ok = m.GetField(9999)
	assert.False(t, ok, "GetField on absent tag should report false")
}

func TestMessageGroupBuilding(t *testing.T) {
	m := New(DebugDelim)
	id1 := m.AddEntry(453, 448, "1")
	m.SetEntryField(id1, 447, "D")
	id2 := m.AddEntry(453, 448, "2")
	m.SetEntryField(id2, 447, "D")

	ids, ok := m.GetGroup(453)
	require.True(t, ok)
	require.Len(t, ids, 2)

	e0, ok := m.GetEntry(ids[0])
	require.True(t, ok)
	assert.Equal(t, Tag(448), e0.DelimiterTag())

	v, ok := e0.Field(448)
	require.True(t, ok)
	assert.Equal(t, "1", v)
}

func TestMessageNestedEntry(t *testing.T) {
	m := New(DebugDelim)
	parent := m.AddEntry(453, 448, "1")
	nested, ok := m.AddNestedEntry(parent, 802, 523, "CLIENT1")
	require.True(t, ok, "AddNestedEntry on valid parent should succeed")

	pe, _ := m.GetEntry(parent)
	nids, ok := pe.Nested(802)
	require.True(t, ok)
	assert.Equal(t, []EntryID{nested}, nids)

	ne, ok := m.GetEntry(nested)
	require.True(t, ok)
	assert.Equal(t, Tag(523), ne.DelimiterTag())
}

func TestMessageAddNestedEntryInvalidParent(t *testing.T) {
	m := New(DebugDelim)
	_, ok := m.AddNestedEntry(99, 802, 523, "x")
	assert.False(t, ok, "AddNestedEntry on an out-of-range parent should fail")
}

func TestMessageClone(t *testing.T) {
	m := New(DebugDelim)
	m.SetField(TagMsgType, "D")
	parent := m.AddEntry(453, 448, "1")
	m.AddNestedEntry(parent, 802, 523, "CLIENT1")

	clone := m.Clone()
	clone.SetField(TagMsgType, "8")
	clone.SetEntryField(parent, 447, "D")

	v, _ := m.MsgType()
	assert.Equal(t, "D", v, "mutating clone changed original MsgType")

	orig, _ := m.GetEntry(parent)
	_, ok := orig.Field(447)
	assert.False(t, ok, "mutating clone's entry changed original's entry")
}
