package otocomplete

import "fmt"

// LookupError is returned when a kana sequence has no romanization.
type LookupError struct {
	Key string // 引けなかった文字列
	Pos int    // 入力中のルーン位置
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("otocomplete: no romanization for %q at %d", e.Key, e.Pos)
}

// ExtractorError is returned by the default extractor for items that are
// neither kana strings nor texts.
type ExtractorError struct {
	Item any
}

func (e *ExtractorError) Error() string {
	return fmt.Sprintf("otocomplete: a custom extractor is required for %T", e.Item)
}
