package smf

import "encoding/binary"

// Header is the parsed MThd chunk. Conversion copies header bytes
// through verbatim; the fields are informational.
type Header struct {
	Format    uint16
	NumTracks uint16
	Division  uint16
}

// ReadHeader validates the MThd chunk at the start of data and returns
// the parsed header together with the offset of the first track chunk.
func ReadHeader(data []byte) (h Header, next int, err error) {
	if len(data) < 8 || string(data[:4]) != "MThd" {
		return h, 0, errorf(0, "missing MThd header")
	}
	size := int(binary.BigEndian.Uint32(data[4:8]))
	next = 8 + size
	if next > len(data) {
		return h, 0, errorf(4, "header chunk runs past end of file")
	}
	if size >= 6 {
		h.Format = binary.BigEndian.Uint16(data[8:10])
		h.NumTracks = binary.BigEndian.Uint16(data[10:12])
		h.Division = binary.BigEndian.Uint16(data[12:14])
	}
	return h, next, nil
}

// Track is one MTrk chunk.
type Track struct {
	Data []byte
}

// NextTrack reads the track chunk at data[pos]. ok is false when the
// bytes there do not start another MTrk chunk; scanning stops at that
// point and any trailing bytes are ignored. A declared chunk length
// that leaves the buffer is a FormatError.
func NextTrack(data []byte, pos int) (tr Track, next int, ok bool, err error) {
	if pos+8 > len(data) || string(data[pos:pos+4]) != "MTrk" {
		return tr, pos, false, nil
	}
	size := int(binary.BigEndian.Uint32(data[pos+4 : pos+8]))
	start := pos + 8
	if start+size > len(data) {
		return tr, pos, false, errorf(pos+4, "track chunk runs past end of file")
	}
	return Track{Data: data[start : start+size]}, start + size, true, nil
}
