package convert

import (
	"bytes"
	"testing"

	"github.com/mason369/midi-encoding-converter/charset"
	"github.com/mason369/midi-encoding-converter/smf"
)

func TestCollectText(t *testing.T) {
	name := encode(t, "shift_jis", "トラック名")
	lyric := encode(t, "shift_jis", "さくら")
	first := append([]byte{}, metaEvent(0, smf.TrackName, name)...)
	first = append(first, noteOnOff...)
	first = append(first, endOfTrack...)
	second := append([]byte{}, metaEvent(0, smf.Lyric, lyric)...)
	second = append(second, endOfTrack...)

	text, err := CollectText(midiFile(1, 480, first, second))
	if err != nil {
		t.Fatalf("CollectText: %v", err)
	}
	want := append(append([]byte{}, name...), lyric...)
	if !bytes.Equal(text, want) {
		t.Fatalf("got % X, want % X", text, want)
	}
}

func TestCollectTextNone(t *testing.T) {
	track := append(append([]byte{}, noteOnOff...), endOfTrack...)
	text, err := CollectText(midiFile(0, 480, track))
	if err != nil {
		t.Fatalf("CollectText: %v", err)
	}
	if len(text) != 0 {
		t.Fatalf("got % X, want nothing", text)
	}
	if g := charset.Classify(text); g != nil {
		t.Fatalf("Classify of no text: got %v, want nil", g)
	}
}

func TestCollectTextNotMIDI(t *testing.T) {
	if _, err := CollectText([]byte("RIFF not midi")); err == nil {
		t.Fatal("expected error for non-MIDI input")
	}
}

func TestCollectTextSkipsNonText(t *testing.T) {
	track := append([]byte{}, metaEvent(0, smf.Tempo, []byte{0x07, 0xA1, 0x20})...)
	track = append(track, metaEvent(0, smf.Marker, []byte("verse"))...)
	track = append(track, []byte{0x00, 0xF0, 0x02, 0x01, 0xF7}...)
	track = append(track, endOfTrack...)

	text, err := CollectText(midiFile(0, 480, track))
	if err != nil {
		t.Fatalf("CollectText: %v", err)
	}
	if string(text) != "verse" {
		t.Fatalf("got %q, want %q", text, "verse")
	}
}
