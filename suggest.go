package otocomplete

import "fmt"

// Extractor builds the text an item is matched against.
type Extractor[T any] func(T) (*Text, error)

// Suggestion is an item whose text matched the query.
type Suggestion[T any] struct {
	Index int   // items内の位置
	Item  T
	View  *View // 一致したスタイルを選択済みのビュー
}

// DefaultExtractor accepts *Text, Kana and string items. Any other item
// yields an *ExtractorError.
func DefaultExtractor[T any](item T) (*Text, error) {
	switch v := any(item).(type) {
	case *Text:
		return v, nil
	case Kana:
		return RomanizeToText(string(v))
	case string:
		return RomanizeToText(v)
	}
	return nil, &ExtractorError{Item: item}
}

// Suggest returns the items matching query in input order. A nil extract
// uses DefaultExtractor. The first extraction error aborts the whole call.
func Suggest[T any](query string, items []T, extract Extractor[T]) ([]Suggestion[T], error) {
	if extract == nil {
		extract = DefaultExtractor[T]
	}
	var suggestions []Suggestion[T]
	for i, item := range items {
		t, err := extract(item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		if v := MatchView(query, NewView(t)); v != nil {
			suggestions = append(suggestions, Suggestion[T]{Index: i, Item: item, View: v})
		}
	}
	return suggestions, nil
}
