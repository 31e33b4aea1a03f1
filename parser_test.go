package fixproto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kclejeune/fixproto/registry"
)

func TestParseMinimalMessageNoGroups(t *testing.T) {
	raw := []byte("8=FIXT.1.1|9=5|35=0|10=000|")
	m, err := Parse(raw, DebugDelim, registry.Standard())
	require.NoError(t, err)

	v, ok := m.MsgType()
	require.True(t, ok)
	assert.Equal(t, "0", v)
}

func TestParseMissingMsgType(t *testing.T) {
	raw := []byte("8=FIXT.1.1|9=5|55=MSFT|10=000|")
	_, err := Parse(raw, DebugDelim, registry.Standard())
	assert.ErrorIs(t, err, ErrMissingMsgType)
}

func TestParseSimpleGroup(t *testing.T) {
	raw := []byte("8=FIXT.1.1|9=0|35=D|453=2|448=A|447=D|452=3|448=B|447=D|452=1|10=000|")
	m, err := Parse(raw, DebugDelim, registry.Standard())
	require.NoError(t, err)

	ids, ok := m.GetGroup(453)
	require.True(t, ok)
	require.Len(t, ids, 2)

	e0, ok := m.GetEntry(ids[0])
	require.True(t, ok)
	v, _ := e0.Field(448)
	assert.Equal(t, "A", v)

	e1, ok := m.GetEntry(ids[1])
	require.True(t, ok)
	v, _ = e1.Field(448)
	assert.Equal(t, "B", v)
}

func TestParseNestedGroup(t *testing.T) {
	raw := []byte("8=FIXT.1.1|9=0|35=D|453=1|448=A|447=D|452=3|802=2|523=SUB1|523=SUB2|10=000|")
	m, err := Parse(raw, DebugDelim, registry.Standard())
	require.NoError(t, err)

	ids, _ := m.GetGroup(453)
	e0, _ := m.GetEntry(ids[0])
	nested, ok := e0.Nested(802)
	require.True(t, ok)
	require.Len(t, nested, 2)

	sub0, _ := m.GetEntry(nested[0])
	v, _ := sub0.Field(523)
	assert.Equal(t, "SUB1", v)
}

func TestParseContextSensitiveCountTag(t *testing.T) {
	// Tag 73 is a repeating group only within MsgType E (ListOrder);
	// elsewhere it is an ordinary field.
	raw := []byte("8=FIXT.1.1|9=0|35=0|73=2|10=000|")
	m, err := Parse(raw, DebugDelim, registry.Standard())
	require.NoError(t, err)

	_, ok := m.GetGroup(73)
	assert.False(t, ok, "73 should not be treated as a group outside MsgType E")

	v, ok := m.GetField(73)
	require.True(t, ok)
	assert.Equal(t, "2", v)
}

func TestParseRepeatedDelimiterStartsNewEntry(t *testing.T) {
	raw := []byte("8=FIXT.1.1|9=0|35=D|453=2|448=A|448=B|10=000|")
	m, err := Parse(raw, DebugDelim, registry.Standard())
	require.NoError(t, err)

	ids, _ := m.GetGroup(453)
	assert.Len(t, ids, 2)
}

func TestParseRepeatedMemberTagOverwrites(t *testing.T) {
	raw := []byte("8=FIXT.1.1|9=0|35=D|453=1|448=A|447=D|447=P|452=3|10=000|")
	m, err := Parse(raw, DebugDelim, registry.Standard())
	require.NoError(t, err)

	ids, _ := m.GetGroup(453)
	e0, _ := m.GetEntry(ids[0])
	v, _ := e0.Field(447)
	assert.Equal(t, "P", v)
}

func TestParseMalformedCount(t *testing.T) {
	raw := []byte("8=FIXT.1.1|9=0|35=D|453=x|10=000|")
	_, err := Parse(raw, DebugDelim, registry.Standard())
	assert.ErrorIs(t, err, ErrMalformedCount)
}

func TestParseMalformedTag(t *testing.T) {
	raw := []byte("8=FIXT.1.1|9=0|35=D|abc=1|10=000|")
	_, err := Parse(raw, DebugDelim, registry.Standard())
	assert.ErrorIs(t, err, ErrMalformedTag)
}

func TestParseGroupDepthExceeded(t *testing.T) {
	defs := []registry.Def{
		{Count: 1, MsgType: registry.AnyMsgType, Delim: 2, Members: []registry.Tag{2}, Nested: []registry.Tag{1}},
	}
	reg := registry.New(defs)

	raw := []byte("35=D|1=1|2=a|1=1|2=a|1=1|2=a|1=1|2=a|1=1|2=a|1=1|2=a|1=1|2=a|1=1|2=a|1=1|2=a|")
	_, err := Parse(raw, DebugDelim, reg)
	assert.ErrorIs(t, err, ErrGroupDepth)
}

func TestParseUnknownTagPreserved(t *testing.T) {
	raw := []byte("8=FIXT.1.1|9=0|35=D|9999=whatever|10=000|")
	m, err := Parse(raw, DebugDelim, registry.Standard())
	require.NoError(t, err)

	v, ok := m.GetField(9999)
	require.True(t, ok)
	assert.Equal(t, "whatever", v)
}
