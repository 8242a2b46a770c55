// Package convert rewrites the text meta events inside Standard MIDI
// Files from one character set to another, leaving every other byte of
// the file untouched.
package convert

import (
	"bytes"
	"encoding/binary"

	"github.com/mason369/midi-encoding-converter/charset"
	"github.com/mason369/midi-encoding-converter/smf"
)

// Report carries the statistics of one conversion pass. Converted
// counts every text meta event seen; Errors counts the subset whose
// payload kept its original bytes because conversion failed.
type Report struct {
	Tracks     int
	Converted  int
	Errors     int
	InputSize  int
	OutputSize int
}

// Converter rewrites text meta events between two charsets. It holds
// only configuration, so one Converter may convert any number of files.
type Converter struct {
	transcoder *charset.Transcoder

	// OnText, when set, observes each text payload that actually
	// changed: the 1-based track number, the meta type, and the
	// payload before and after rewriting.
	OnText func(track int, metaType byte, before, after []byte)
}

// New returns a Converter from one named charset to another. Unknown
// names do not fail here; every text payload then falls back to its
// original bytes and is counted in Report.Errors.
func New(from, to string) *Converter {
	return &Converter{transcoder: charset.NewTranscoder(from, to)}
}

// Convert rewrites data in a single pass and returns the new file
// image. Structural damage yields a FormatError and no output.
// Transcoding trouble never fails the call; it only shows up in the
// report.
func (c *Converter) Convert(data []byte) ([]byte, Report, error) {
	_, pos, err := smf.ReadHeader(data)
	if err != nil {
		return nil, Report{}, err
	}
	rep := Report{InputSize: len(data)}
	out := make([]byte, 0, len(data)+len(data)/8)
	out = append(out, data[:pos]...)
	for pos < len(data) {
		tr, next, ok, err := smf.NextTrack(data, pos)
		if err != nil {
			return nil, Report{}, err
		}
		if !ok {
			break
		}
		rep.Tracks++
		out = append(out, data[pos:pos+8]...)
		lenOff := len(out) - 4
		bodyStart := len(out)
		w := smf.NewWalker(tr.Data)
		for w.Scan() {
			ev := w.Event()
			out = smf.AppendVarLen(out, ev.Delta)
			switch ev.Kind {
			case smf.Meta:
				payload := ev.Payload
				if smf.IsTextMeta(ev.MetaType) {
					rep.Converted++
					payload = c.rewriteText(&rep, ev.MetaType, payload)
				}
				out = append(out, smf.StatusMeta, ev.MetaType)
				out = smf.AppendVarLen(out, uint32(len(payload)))
				out = append(out, payload...)
			case smf.SysEx:
				out = append(out, ev.Status)
				out = smf.AppendVarLen(out, uint32(len(ev.Payload)))
				out = append(out, ev.Payload...)
			case smf.Channel:
				out = append(out, ev.Status)
				out = append(out, ev.Data...)
			default:
				out = append(out, ev.Data...)
			}
		}
		if err := w.Err(); err != nil {
			return nil, Report{}, err
		}
		binary.BigEndian.PutUint32(out[lenOff:], uint32(len(out)-bodyStart))
		pos = next
	}
	rep.OutputSize = len(out)
	return out, rep, nil
}

func (c *Converter) rewriteText(rep *Report, metaType byte, payload []byte) []byte {
	converted, err := c.transcoder.Transcode(payload)
	if err != nil || len(converted) > smf.MaxVarLen {
		rep.Errors++
		return payload
	}
	if c.OnText != nil && !bytes.Equal(converted, payload) {
		c.OnText(rep.Tracks, metaType, payload, converted)
	}
	return converted
}
