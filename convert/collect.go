package convert

import "github.com/mason369/midi-encoding-converter/smf"

// CollectText gathers the payloads of every text meta event in file
// order, as one byte slice for charset detection. A file without text
// events yields an empty result.
func CollectText(data []byte) ([]byte, error) {
	_, pos, err := smf.ReadHeader(data)
	if err != nil {
		return nil, err
	}
	var text []byte
	for pos < len(data) {
		tr, next, ok, err := smf.NextTrack(data, pos)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		w := smf.NewWalker(tr.Data)
		for w.Scan() {
			ev := w.Event()
			if ev.Kind == smf.Meta && smf.IsTextMeta(ev.MetaType) {
				text = append(text, ev.Payload...)
			}
		}
		if err := w.Err(); err != nil {
			return nil, err
		}
		pos = next
	}
	return text, nil
}
