package otocomplete

import (
	"strings"

	"github.com/kotaroooo0/gojaconv/jaconv"
	"github.com/SeaOfBirds/roma-otocomplete/morphology"
)

// Reader turns text into the hiragana reading to romanize.
type Reader interface {
	Read(string) string
}

// KanaReader passes text through; it must already be hiragana.
type KanaReader struct{}

func NewKanaReader() KanaReader {
	return KanaReader{}
}

func (r KanaReader) Read(s string) string {
	return s
}

// MorphologicalReader reads kanji and katakana through a morphological analyzer.
type MorphologicalReader struct {
	morphology morphology.Morphology
}

func NewMorphologicalReader(morphology morphology.Morphology) *MorphologicalReader {
	return &MorphologicalReader{
		morphology: morphology,
	}
}

func (r *MorphologicalReader) Read(s string) string {
	var b strings.Builder
	for _, t := range r.morphology.Analyze(s) {
		b.WriteString(jaconv.KatakanaToHiragana(t.Kana))
	}
	return b.String()
}
