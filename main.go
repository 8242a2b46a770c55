package main

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/mason369/midi-encoding-converter/charset"
	"github.com/mason369/midi-encoding-converter/convert"
	"github.com/mason369/midi-encoding-converter/smf"
)

const version = "1.1.0"

func main() {
	var (
		from    string
		to      string
		output  string
		detect  bool
		verbose bool
		ver     bool
	)
	flag.StringVar(&from, "from", "shift_jis", "charset of the text events in the input")
	flag.StringVar(&to, "to", "utf-8", "charset to convert text events to")
	flag.StringVar(&output, "o", "", "output file (default: input name with _converted)")
	flag.BoolVar(&detect, "detect", false, "detect the text charset and exit")
	flag.BoolVar(&verbose, "verbose", false, "log every rewritten text event")
	flag.BoolVar(&ver, "version", false, "print version and exit")
	flag.Parse()
	if ver {
		fmt.Println("midi-encoding-converter " + version)
		return
	}
	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: midi-encoding-converter [flags] <input.mid>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
	input := flag.Arg(0)
	data, err := read(input)
	if err != nil {
		log.Fatal(err)
	}
	if detect {
		log.Info("detecting", "input", input)
		listGuesses(data)
		return
	}
	if output == "" {
		output = defaultOutput(input)
	}
	c := convert.New(from, to)
	if verbose {
		c.OnText = func(track int, metaType byte, before, after []byte) {
			log.Debug("rewrote "+smf.MetaName[metaType], "track", track, "text", clip(after, 40))
		}
	}
	log.Info("converting", "input", input, "from", from, "to", to)
	out, rep, err := c.Convert(data)
	if err != nil {
		log.Fatal(err)
	}
	err = os.WriteFile(output, out, 0o644)
	if err != nil {
		log.Fatal(err)
	}
	log.Info("done", "output", output,
		"tracks", rep.Tracks, "converted", rep.Converted,
		"bytes", fmt.Sprintf("%d -> %d", rep.InputSize, rep.OutputSize))
	if rep.Errors > 0 {
		log.Warn("some text events kept their original bytes", "errors", rep.Errors)
	}
}

func read(file string) ([]byte, error) {
	u, err := url.Parse(file)
	if err != nil {
		return nil, err
	}
	switch u.Scheme {
	case "file":
		return os.ReadFile(u.Path)
	case "http", "https":
		r, err := http.Get(file)
		if err != nil {
			return nil, err
		}
		defer func() {
			_ = r.Body.Close()
		}()
		if r.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("get %s: %s", file, r.Status)
		}
		return io.ReadAll(r.Body)
	default:
		return os.ReadFile(file)
	}
}

func listGuesses(data []byte) {
	text, err := convert.CollectText(data)
	if err != nil {
		log.Fatal(err)
	}
	guesses := charset.Classify(text)
	if len(guesses) == 0 {
		log.Info("no charset detected, the file may contain no text events")
		return
	}
	fmt.Println("Detected charsets:")
	for _, g := range guesses {
		fmt.Printf("  %s: %.1f%%\n", g.Charset, g.Confidence*100)
	}
}

// defaultOutput derives "<name>_converted<ext>" next to a local input,
// or in the working directory for a URL.
func defaultOutput(input string) string {
	if u, err := url.Parse(input); err == nil {
		switch u.Scheme {
		case "http", "https":
			input = path.Base(u.Path)
		case "file":
			input = u.Path
		}
	}
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + "_converted" + ext
}

func clip(b []byte, n int) string {
	r := []rune(string(b))
	if len(r) > n {
		r = r[:n]
	}
	return string(r)
}
