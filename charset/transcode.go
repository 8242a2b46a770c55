package charset

import "golang.org/x/text/encoding"

// Transcoder rewrites byte payloads from one charset to another.
type Transcoder struct {
	src    encoding.Encoding
	dst    encoding.Encoding
	srcErr error
	dstErr error
}

// NewTranscoder resolves both charset names. Resolution failures do not
// surface here; Transcode reports them per payload, so a bad name
// behaves like any other unconvertible payload.
func NewTranscoder(from, to string) *Transcoder {
	t := &Transcoder{}
	t.src, t.srcErr = Resolve(from)
	t.dst, t.dstErr = Resolve(to)
	return t
}

// Transcode decodes p under the source charset and re-encodes it under
// the destination charset. Byte sequences that form no valid character
// decode to U+FFFD rather than failing; runes the destination cannot
// represent fail the whole payload. On failure Transcode returns p
// unchanged along with the reason, so the result is always writable.
func (t *Transcoder) Transcode(p []byte) ([]byte, error) {
	if t.srcErr != nil {
		return p, t.srcErr
	}
	if t.dstErr != nil {
		return p, t.dstErr
	}
	text, err := t.src.NewDecoder().Bytes(p)
	if err != nil {
		return p, err
	}
	out, err := t.dst.NewEncoder().Bytes(text)
	if err != nil {
		return p, err
	}
	return out, nil
}
