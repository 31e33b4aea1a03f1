package fixproto

import "strconv"

// record is a (tag, value) pair as it appears on the wire, plus its
// zero-based position in the input — used only for ParseError reporting.
type record struct {
	tag   Tag
	value string
	index int
}

// detectDelim chooses the record delimiter for raw. An explicit delim of 0
// requests auto-detection: if byte 1 (SOH) occurs anywhere in raw, it is
// used; otherwise the pipe character is used. Detection happens once per
// call and the chosen delimiter is not reconsidered mid-parse.
func detectDelim(raw []byte, explicit byte) byte {
	if explicit != 0 {
		return explicit
	}
	for _, b := range raw {
		if b == DefaultDelim {
			return DefaultDelim
		}
	}
	return DebugDelim
}

// tokenize splits raw into records on delim. A trailing delimiter produces
// no extra record. Every record must contain at least one '='; the tag
// portion (everything before the first '=') must be a non-empty decimal
// integer in [1, maxTag]. Values may contain any byte except delim and are
// never escaped.
func tokenize(raw []byte, delim byte) ([]record, error) {
	var records []record
	start := 0
	index := 0
	for start < len(raw) {
		end := start
		for end < len(raw) && raw[end] != delim {
			end++
		}
		if end == start {
			// Empty segment: a delimiter at the very start of input or
			// immediately following another (a single trailing delimiter
			// never gets here, since the loop condition ends first).
			// Treat as malformed — an empty segment has no '='.
			return nil, &ParseError{Err: ErrMalformedRecord, RecordIndex: index, Record: ""}
		}

		rawRec := raw[start:end]
		rec, err := parseRecord(rawRec, index)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)

		index++
		start = end + 1 // skip the delimiter; a trailing one ends the loop
	}
	return records, nil
}

// parseRecord splits one delimiter-free segment into a tag and a value.
func parseRecord(raw []byte, index int) (record, error) {
	eq := -1
	for i, b := range raw {
		if b == '=' {
			eq = i
			break
		}
	}
	if eq < 0 {
		return record{}, &ParseError{Err: ErrMalformedRecord, RecordIndex: index, Record: string(raw)}
	}

	tagBytes := raw[:eq]
	value := string(raw[eq+1:])

	if len(tagBytes) == 0 {
		return record{}, &ParseError{Err: ErrMalformedTag, RecordIndex: index, Record: string(raw)}
	}
	n, err := strconv.Atoi(string(tagBytes))
	if err != nil || n < 1 || n > maxTag {
		return record{}, &ParseError{Err: ErrMalformedTag, RecordIndex: index, Record: string(raw)}
	}

	return record{tag: Tag(n), value: value, index: index}, nil
}
