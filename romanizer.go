package otocomplete

const sokuon = 'っ'

func isDelimiter(r rune) bool {
	return r == ' ' || r == '・' || r == '＝'
}

func isSutegana(r rune) bool {
	return r == 'ゃ' || r == 'ゅ' || r == 'ょ'
}

func isKanaVowel(r rune) bool {
	switch r {
	case 'あ', 'い', 'う', 'え', 'お', 'ー':
		return true
	}
	return false
}

// RomanizeToText splits a hiragana string into moras and segments.
// Delimiters (space, "・", "＝") start a new segment and are not rendered.
func RomanizeToText(kana string) (*Text, error) {
	runes := []rune(kana)
	moras := make([]*Mora, 0, len(runes))
	var sokuonIndexes []int
	var boundaries []int

	for pos := 0; pos < len(runes); pos++ {
		r := runes[pos]
		if isDelimiter(r) {
			boundaries = append(boundaries, len(moras))
			continue
		}
		start := pos
		key := string(r)
		switch {
		case pos+1 < len(runes) && isSutegana(runes[pos+1]):
			pos++
			key += string(runes[pos])
		case pos > 0 && len(moras) > 0 && isKanaVowel(r):
			// 直前のモーラの母音と合わせて長音として引けるか
			if v, ok := moras[len(moras)-1].Vowel(); ok {
				if _, ok := moraTable[string(v)+key]; ok {
					key = string(v) + key
				}
			}
		}

		if key == string(sokuon) {
			sokuonIndexes = append(sokuonIndexes, len(moras))
			moras = append(moras, newMora([]string{"xtu", "ltu"}, false, false))
			continue
		}

		m, ok := moraTable[key]
		if !ok {
			return nil, &LookupError{Key: key, Pos: start}
		}
		moras = append(moras, m)
	}

	// 促音は次のモーラの子音を重ねる
	for _, i := range sokuonIndexes {
		if i+1 >= len(moras) {
			continue
		}
		s := moras[i]
		styles := make([]string, 0, len(moras[i+1].firstChars)+len(s.styles))
		for _, c := range moras[i+1].firstChars {
			styles = append(styles, string(c))
		}
		styles = append(styles, s.styles...)
		moras[i] = newMora(styles, false, false)
	}

	return newText(moras, segmentLengths(boundaries)), nil
}

// Romanize renders kana in the default style of every mora.
func Romanize(kana string) (string, error) {
	t, err := RomanizeToText(kana)
	if err != nil {
		return "", err
	}
	return t.String(), nil
}

func segmentLengths(boundaries []int) []int {
	lengths := make([]int, len(boundaries))
	prev := 0
	for i, b := range boundaries {
		lengths[i] = b - prev
		prev = b
	}
	return lengths
}
