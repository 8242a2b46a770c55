package smf

// MaxVarLen is the largest value a variable-length quantity can hold:
// four bytes of seven payload bits each.
const MaxVarLen = 0x0FFFFFFF

// ReadVarLen decodes the variable-length quantity starting at data[pos]
// and returns its value together with the position just past it. A run
// of more than four bytes, or one that leaves the buffer, is a
// FormatError.
func ReadVarLen(data []byte, pos int) (v uint32, next int, err error) {
	next = pos
	for i := 0; i < 4; i++ {
		if next >= len(data) {
			return 0, pos, errorf(pos, "truncated variable-length quantity")
		}
		b := data[next]
		next++
		v = v<<7 | uint32(b&0x7F)
		if b < 0x80 {
			return v, next, nil
		}
	}
	return 0, pos, errorf(pos, "variable-length quantity longer than 4 bytes")
}

// AppendVarLen appends the shortest variable-length encoding of v to
// dst. Values above MaxVarLen are not representable; callers bound v
// first.
func AppendVarLen(dst []byte, v uint32) []byte {
	switch {
	case v < 1<<7:
		return append(dst, byte(v))
	case v < 1<<14:
		return append(dst, byte(v>>7)|0x80, byte(v&0x7F))
	case v < 1<<21:
		return append(dst, byte(v>>14)|0x80, byte(v>>7)|0x80, byte(v&0x7F))
	default:
		return append(dst, byte(v>>21)|0x80, byte(v>>14)|0x80, byte(v>>7)|0x80, byte(v&0x7F))
	}
}
