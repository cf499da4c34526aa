package otocomplete

// Mora is one phonetic unit with its candidate romanizations.
// Styles are ordered; the first one is the default rendering and wins ties.
type Mora struct {
	styles     []string
	syllable   bool
	vowel      byte
	firstChars []byte
}

func newMora(styles []string, syllable bool, hasVowel bool) *Mora {
	m := &Mora{
		styles:   styles,
		syllable: syllable,
	}
	if hasVowel {
		if s := styles[0]; s != "" && isVowel(s[len(s)-1]) {
			m.vowel = s[len(s)-1]
		}
	}
	// 空のスタイルは頭文字を持たない
	seen := make(map[byte]struct{}, len(styles))
	for _, s := range styles {
		if s == "" {
			continue
		}
		if _, ok := seen[s[0]]; ok {
			continue
		}
		seen[s[0]] = struct{}{}
		m.firstChars = append(m.firstChars, s[0])
	}
	return m
}

// Styles returns the candidate spellings. The slice must not be modified.
func (m *Mora) Styles() []string {
	return m.styles
}

// IsSyllable reports whether the mora stands on its own, as opposed to a
// small vowel, a long vowel merge or a sokuon.
func (m *Mora) IsSyllable() bool {
	return m.syllable
}

// Vowel returns the trailing vowel of the default style.
func (m *Mora) Vowel() (byte, bool) {
	return m.vowel, m.vowel != 0
}

// FirstChars returns the distinct first characters of the non-empty styles.
func (m *Mora) FirstChars() []byte {
	return m.firstChars
}

func (m *Mora) String() string {
	return m.styles[0]
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'i', 'u', 'e', 'o':
		return true
	}
	return false
}
