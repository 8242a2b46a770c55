package charset

import "github.com/saintfish/chardet"

// Guess is one ranked candidate from charset detection.
type Guess struct {
	Charset    string
	Confidence float64
}

// Classify ranks candidate charsets for a text sample, most confident
// first, with confidence scaled to [0, 1]. An empty sample yields no
// guesses without consulting the detector, and a sample the detector
// cannot place yields none either.
func Classify(sample []byte) []Guess {
	if len(sample) == 0 {
		return nil
	}
	results, err := chardet.NewTextDetector().DetectAll(sample)
	if err != nil {
		return nil
	}
	guesses := make([]Guess, 0, len(results))
	for _, r := range results {
		if r.Charset == "" {
			continue
		}
		guesses = append(guesses, Guess{
			Charset:    r.Charset,
			Confidence: float64(r.Confidence) / 100,
		})
	}
	return guesses
}
