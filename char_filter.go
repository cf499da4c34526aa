package otocomplete

import (
	"strings"

	"github.com/kotaroooo0/gojaconv/jaconv"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

type CharFilter interface {
	Filter(string) string
}

type MappingCharFilter struct {
	mapper map[string]string // key->valueにマッピングする
}

func NewMappingCharFilter(mapper map[string]string) *MappingCharFilter {
	return &MappingCharFilter{mapper: mapper}
}

func (c *MappingCharFilter) Filter(s string) string {
	pairs := make([]string, 0, len(c.mapper)*2)
	for k, v := range c.mapper {
		pairs = append(pairs, k, v)
	}
	return strings.NewReplacer(pairs...).Replace(s)
}

// DelimiterMapping maps look-alike punctuation onto the segment delimiters
// and the long vowel mark.
var DelimiterMapping = map[string]string{
	"　": " ",
	"･": "・",
	"=": "＝",
	"〜": "ー",
	"～": "ー",
}

// KatakanaCharFilter converts katakana to hiragana.
type KatakanaCharFilter struct{}

func NewKatakanaCharFilter() KatakanaCharFilter {
	return KatakanaCharFilter{}
}

func (c KatakanaCharFilter) Filter(s string) string {
	return jaconv.KatakanaToHiragana(s)
}

// NFCCharFilter composes voiced marks, e.g. "\u304b\u3099" into "が".
// NFKC is not used because it folds "＝" into "=".
type NFCCharFilter struct{}

func NewNFCCharFilter() NFCCharFilter {
	return NFCCharFilter{}
}

func (c NFCCharFilter) Filter(s string) string {
	return norm.NFC.String(s)
}

// WidthFoldCharFilter folds full-width latin, as typed through an IME, to ASCII.
type WidthFoldCharFilter struct{}

func NewWidthFoldCharFilter() WidthFoldCharFilter {
	return WidthFoldCharFilter{}
}

func (c WidthFoldCharFilter) Filter(s string) string {
	return width.Fold.String(s)
}

type LowercaseCharFilter struct{}

func NewLowercaseCharFilter() LowercaseCharFilter {
	return LowercaseCharFilter{}
}

func (c LowercaseCharFilter) Filter(s string) string {
	return strings.ToLower(s)
}

// FilterAll applies filters in order.
func FilterAll(s string, filters []CharFilter) string {
	for _, f := range filters {
		s = f.Filter(s)
	}
	return s
}
