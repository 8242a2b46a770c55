package smf

// Kind classifies an event yielded by a Walker.
type Kind int

const (
	Meta Kind = iota
	SysEx
	Channel
	Running
	Orphan
)

// Event is one track event. Payload and Data alias the walker's input
// buffer and stay valid for the walker's lifetime.
//
// For Running events Status holds the channel status being continued
// and Data its data bytes. An Orphan is a lone data byte seen before
// any channel status; it passes through as-is.
type Event struct {
	Delta    uint32
	Kind     Kind
	Status   byte
	MetaType byte
	Payload  []byte
	Data     []byte
}

// Walker steps through a track's event stream one event at a time,
// tracking running status, in the manner of bufio.Scanner: Scan until
// it returns false, then check Err.
type Walker struct {
	data    []byte
	pos     int
	running byte
	ev      Event
	err     error
}

func NewWalker(data []byte) *Walker {
	return &Walker{data: data}
}

// Event returns the event read by the last successful Scan.
func (w *Walker) Event() Event { return w.ev }

// Err returns the first structural error encountered by Scan, or nil.
func (w *Walker) Err() error { return w.err }

// Scan advances to the next event. It returns false at the end of the
// track or on the first structural error.
func (w *Walker) Scan() bool {
	if w.err != nil || w.pos >= len(w.data) {
		return false
	}
	delta, pos, err := ReadVarLen(w.data, w.pos)
	if err != nil {
		w.err = err
		return false
	}
	if pos >= len(w.data) {
		w.err = errorf(pos, "track ends inside an event")
		return false
	}
	status := w.data[pos]
	w.ev = Event{Delta: delta, Status: status}
	switch {
	case status == StatusMeta:
		w.err = w.scanMeta(pos + 1)
	case status == StatusSysEx || status == StatusSysExCont:
		w.running = 0
		w.err = w.scanSysEx(pos + 1)
	case status&0x80 != 0:
		w.running = status
		w.err = w.scanChannel(pos + 1)
	default:
		w.err = w.scanRunning(pos)
	}
	return w.err == nil
}

func (w *Walker) scanMeta(pos int) error {
	if pos >= len(w.data) {
		return errorf(pos, "truncated meta event")
	}
	metaType := w.data[pos]
	n, pos, err := ReadVarLen(w.data, pos+1)
	if err != nil {
		return err
	}
	end := pos + int(n)
	if end > len(w.data) {
		return errorf(pos, "meta event payload runs past end of track")
	}
	w.ev.Kind = Meta
	w.ev.MetaType = metaType
	w.ev.Payload = w.data[pos:end]
	w.pos = end
	return nil
}

func (w *Walker) scanSysEx(pos int) error {
	n, pos, err := ReadVarLen(w.data, pos)
	if err != nil {
		return err
	}
	end := pos + int(n)
	if end > len(w.data) {
		return errorf(pos, "sysex payload runs past end of track")
	}
	w.ev.Kind = SysEx
	w.ev.Payload = w.data[pos:end]
	w.pos = end
	return nil
}

func (w *Walker) scanChannel(pos int) error {
	end := pos + dataBytes(w.ev.Status)
	if end > len(w.data) {
		return errorf(pos, "truncated channel message")
	}
	w.ev.Kind = Channel
	w.ev.Data = w.data[pos:end]
	w.pos = end
	return nil
}

func (w *Walker) scanRunning(pos int) error {
	n := 1
	if w.running != 0 && dataBytes(w.running) == 2 {
		n = 2
	}
	end := pos + n
	if end > len(w.data) {
		return errorf(pos, "truncated channel message")
	}
	if w.running != 0 {
		w.ev.Kind = Running
		w.ev.Status = w.running
	} else {
		w.ev.Kind = Orphan
		w.ev.Status = 0
	}
	w.ev.Data = w.data[pos:end]
	w.pos = end
	return nil
}
