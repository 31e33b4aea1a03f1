package fixproto

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
)

// Encode serializes m to wire format using m.Delimiter() as the record
// separator. Encoding cannot fail on a Message built through this
// package's own read/write API: field ordering, body-length framing, and
// checksum are all recomputed from scratch, never carried over from a
// prior parse.
func Encode(m *Message) []byte {
	delim := m.delim
	if delim == 0 {
		delim = DefaultDelim
	}

	var body bytes.Buffer
	writeBody(&body, m, delim)

	var out bytes.Buffer
	writeRecord(&out, TagBeginString, m.fields[TagBeginString], delim)
	writeRecord(&out, TagBodyLength, strconv.Itoa(body.Len()), delim)
	out.Write(body.Bytes())

	sum := checksum(out.Bytes())
	writeRecord(&out, TagCheckSum, fmt.Sprintf("%03d", sum), delim)

	return out.Bytes()
}

// writeBody appends every field and group of m except the three framing
// tags (BeginString, BodyLength, CheckSum): fixed-order standard-header
// tags where present, then the remaining top-level fields ascending, then
// top-level groups ascending by count tag with each group's entries
// serialized in arena insertion order.
func writeBody(buf *bytes.Buffer, m *Message, delim byte) {
	written := map[Tag]bool{TagBeginString: true, TagBodyLength: true, TagCheckSum: true}

	for _, tag := range headerOrder {
		if v, ok := m.fields[tag]; ok {
			writeRecord(buf, tag, v, delim)
			written[tag] = true
		}
	}

	remaining := make([]Tag, 0, len(m.fields))
	for tag := range m.fields {
		if !written[tag] {
			remaining = append(remaining, tag)
		}
	}
	sort.Slice(remaining, func(i, j int) bool { return remaining[i] < remaining[j] })
	for _, tag := range remaining {
		writeRecord(buf, tag, m.fields[tag], delim)
	}

	groupTags := make([]Tag, 0, len(m.groups))
	for tag := range m.groups {
		groupTags = append(groupTags, tag)
	}
	sort.Slice(groupTags, func(i, j int) bool { return groupTags[i] < groupTags[j] })
	for _, tag := range groupTags {
		ids := m.groups[tag]
		writeRecord(buf, tag, strconv.Itoa(len(ids)), delim)
		for _, id := range ids {
			writeEntry(buf, m, id, delim)
		}
	}
}

// writeEntry recursively serializes the entry at id: its delimiter field
// first, then its remaining own fields ascending, then its nested groups
// ascending by count tag.
func writeEntry(buf *bytes.Buffer, m *Message, id EntryID, delim byte) {
	e := m.arena.get(id)

	writeRecord(buf, e.delimTag, e.fields[e.delimTag], delim)

	tags := make([]Tag, 0, len(e.fields))
	for tag := range e.fields {
		if tag == e.delimTag {
			continue
		}
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	for _, tag := range tags {
		writeRecord(buf, tag, e.fields[tag], delim)
	}

	nestedTags := make([]Tag, 0, len(e.nested))
	for tag := range e.nested {
		nestedTags = append(nestedTags, tag)
	}
	sort.Slice(nestedTags, func(i, j int) bool { return nestedTags[i] < nestedTags[j] })
	for _, tag := range nestedTags {
		nids := e.nested[tag]
		writeRecord(buf, tag, strconv.Itoa(len(nids)), delim)
		for _, nid := range nids {
			writeEntry(buf, m, nid, delim)
		}
	}
}

func writeRecord(buf *bytes.Buffer, tag Tag, value string, delim byte) {
	buf.WriteString(strconv.Itoa(int(tag)))
	buf.WriteByte('=')
	buf.WriteString(value)
	buf.WriteByte(delim)
}

// checksum sums every byte in data modulo 256.
func checksum(data []byte) int {
	sum := 0
	for _, b := range data {
		sum += int(b)
	}
	return sum % 256
}
