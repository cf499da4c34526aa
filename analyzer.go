package otocomplete

import "github.com/SeaOfBirds/roma-otocomplete/morphology"

type Analyzer struct {
	charFilters []CharFilter
	reader      Reader
}

func NewAnalyzer(charFilters []CharFilter, reader Reader) Analyzer {
	return Analyzer{
		charFilters: charFilters,
		reader:      reader,
	}
}

// NewKanaAnalyzer normalizes katakana, look-alike delimiters and combining
// marks before romanizing.
func NewKanaAnalyzer() Analyzer {
	return NewAnalyzer([]CharFilter{
		NewNFCCharFilter(),
		NewMappingCharFilter(DelimiterMapping),
		NewKatakanaCharFilter(),
	}, NewKanaReader())
}

// NewMorphologicalAnalyzer reads kanji through m. Delimiters are mapped first
// so that they survive tokenization.
func NewMorphologicalAnalyzer(m morphology.Morphology) Analyzer {
	return NewAnalyzer([]CharFilter{
		NewNFCCharFilter(),
		NewMappingCharFilter(DelimiterMapping),
	}, NewMorphologicalReader(m))
}

func (a Analyzer) Analyze(s string) (*Text, error) {
	s = FilterAll(s, a.charFilters)
	if a.reader != nil {
		s = a.reader.Read(s)
	}
	return RomanizeToText(s)
}

// AnalyzerExtractor extracts items through a, using text to get the string
// to analyze.
func AnalyzerExtractor[T any](a Analyzer, text func(T) string) Extractor[T] {
	return func(item T) (*Text, error) {
		return a.Analyze(text(item))
	}
}
