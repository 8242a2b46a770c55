// Package charset resolves character-set names to codecs, rewrites
// text between them and guesses the charset of unknown text.
//
// Name resolution rides on the WHATWG encoding index, so the spellings
// accepted by web tooling (shift_jis, sjis, windows-31j, gbk, euc-kr,
// big5, latin1, ...) all work, plus a few codepage aliases common
// around MIDI files.
package charset

import (
	"fmt"
	"strings"

	htmlcharset "golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
)

// aliases maps spellings the WHATWG index does not list onto labels it
// does. Mostly Windows codepage names and the names the detector
// reports.
var aliases = map[string]string{
	"cp932":    "shift_jis",
	"shiftjis": "shift_jis",
	"sjs":      "shift_jis",
	"cp936":    "gbk",
	"cp949":    "euc-kr",
	"uhc":      "euc-kr",
	"cp950":    "big5",
	"gb-18030": "gb18030",
}

// Resolve maps a charset name to its codec. Matching is
// case-insensitive and ignores surrounding whitespace.
func Resolve(name string) (encoding.Encoding, error) {
	label := strings.ToLower(strings.TrimSpace(name))
	if a, ok := aliases[label]; ok {
		label = a
	}
	e, _ := htmlcharset.Lookup(label)
	if e == nil {
		return nil, fmt.Errorf("unsupported charset %q", name)
	}
	return e, nil
}
