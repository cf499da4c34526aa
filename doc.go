// Package otocomplete romanizes hiragana and tells whether a romaji query,
// typed in any mix of common romanization styles (shi/si, tsu/tu, "-" or a
// doubled vowel for long vowels), is a prefix of a text. It is meant for
// incremental autocomplete.
//
//	v, _ := otocomplete.Match("oig", otocomplete.Kana("ぷりんつ・おいげん"))
//	fmt.Println(v) // purintsuoigen
package otocomplete
