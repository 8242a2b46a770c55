package smf

// Status bytes that introduce non-channel events.
const (
	StatusSysEx     = 0xF0
	StatusSysExCont = 0xF7
	StatusMeta      = 0xFF
)

// Meta event types.
const (
	Sequence = 0x00 + iota
	Text
	Copyright
	TrackName
	InstrumentName
	Lyric
	Marker
	CuePoint
	ProgramName
	DeviceName
	ChannelPrefix = 0x20
	PortNumber    = 0x21
	EndOfTrack    = 0x2F
	Tempo         = 0x51
	SMPTEOffset   = 0x54
	TimeSignature = 0x58
	KeySignature  = 0x59
	Sequencer     = 0x7F
)

var MetaName = map[byte]string{
	Sequence:       "Sequence Number",
	Text:           "Text Event",
	Copyright:      "Copyright Notice",
	TrackName:      "Track Name",
	InstrumentName: "Instrument Name",
	Lyric:          "Lyric",
	Marker:         "Marker",
	CuePoint:       "Cue Point",
	ProgramName:    "Program Name",
	DeviceName:     "Device Name",
	ChannelPrefix:  "Channel Prefix",
	PortNumber:     "Port Number",
	EndOfTrack:     "End of Track",
	Tempo:          "Tempo",
	SMPTEOffset:    "SMPTE Offset",
	TimeSignature:  "Time Signature",
	KeySignature:   "Key Signature",
	Sequencer:      "Sequencer Specific",
}

// IsTextMeta reports whether meta type t carries human-readable text
// subject to charset conversion.
func IsTextMeta(t byte) bool {
	return t >= Text && t <= CuePoint
}

// dataBytes returns how many data bytes follow channel status s.
func dataBytes(s byte) int {
	switch s & 0xF0 {
	case 0x80, 0x90, 0xA0, 0xB0, 0xE0:
		return 2
	case 0xC0, 0xD0:
		return 1
	}
	return 0
}
