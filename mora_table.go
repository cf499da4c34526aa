package otocomplete

var hiraganaToRomaji = map[string][]string{
	"あ": {"a"}, "い": {"i"}, "う": {"u"}, "え": {"e"}, "お": {"o"},
	"か": {"ka"}, "き": {"ki"}, "く": {"ku"}, "け": {"ke"}, "こ": {"ko"},
	"さ": {"sa"}, "し": {"shi", "si"}, "す": {"su"}, "せ": {"se"}, "そ": {"so"},
	"た": {"ta"}, "ち": {"chi", "ti"}, "つ": {"tsu", "tu"}, "て": {"te"}, "と": {"to"},
	"な": {"na"}, "に": {"ni"}, "ぬ": {"nu"}, "ね": {"ne"}, "の": {"no"},
	"は": {"ha"}, "ひ": {"hi"}, "ふ": {"fu", "hu"}, "へ": {"he"}, "ほ": {"ho"},
	"ま": {"ma"}, "み": {"mi"}, "む": {"mu"}, "め": {"me"}, "も": {"mo"},
	"や": {"ya"}, "ゆ": {"yu"}, "よ": {"yo"},
	"ら": {"ra"}, "り": {"ri"}, "る": {"ru"}, "れ": {"re"}, "ろ": {"ro"},
	"わ": {"wa"}, "ゐ": {"i", "wi"}, "ゑ": {"e", "we"}, "を": {"o", "wo"},
	"ん": {"n", "nn"},
	"が": {"ga"}, "ぎ": {"gi"}, "ぐ": {"gu"}, "げ": {"ge"}, "ご": {"go"},
	"ざ": {"za"}, "じ": {"ji", "zi"}, "ず": {"zu"}, "ぜ": {"ze"}, "ぞ": {"zo"},
	"だ": {"da"}, "ぢ": {"ji", "di", "zi"}, "づ": {"zu", "du"}, "で": {"de"}, "ど": {"do"},
	"ば": {"ba"}, "び": {"bi"}, "ぶ": {"bu"}, "べ": {"be"}, "ぼ": {"bo"},
	"ぱ": {"pa"}, "ぴ": {"pi"}, "ぷ": {"pu"}, "ぺ": {"pe"}, "ぽ": {"po"},
}

// 拗音
var youonToRomaji = map[string][]string{
	"きゃ": {"kya"}, "きゅ": {"kyu"}, "きょ": {"kyo"},
	"しゃ": {"sha", "sya"}, "しゅ": {"shu", "syu"}, "しょ": {"sho", "syo"},
	"ちゃ": {"cha", "tya", "cya"}, "ちゅ": {"chu", "tyu", "cyu"}, "ちょ": {"cho", "tyo", "cyo"},
	"にゃ": {"nya"}, "にゅ": {"nyu"}, "にょ": {"nyo"},
	"ひゃ": {"hya"}, "ひゅ": {"hyu"}, "ひょ": {"hyo"},
	"みゃ": {"mya"}, "みゅ": {"myu"}, "みょ": {"myo"},
	"りゃ": {"rya"}, "りゅ": {"ryu"}, "りょ": {"ryo"},
	"ぎゃ": {"gya"}, "ぎゅ": {"gyu"}, "ぎょ": {"gyo"},
	"じゃ": {"ja", "zya"}, "じゅ": {"ju", "zyu"}, "じょ": {"jo", "zyo"},
	"ぢゃ": {"ja", "dya", "zya"}, "ぢゅ": {"ju", "dyu", "zyu"}, "ぢょ": {"jo", "dyo", "zyo"},
	"びゃ": {"bya"}, "びゅ": {"byu"}, "びょ": {"byo"},
	"ぴゃ": {"pya"}, "ぴゅ": {"pyu"}, "ぴょ": {"pyo"},
}

// 捨て仮名の母音。つぇ -> tsue になるよう素の母音を先頭に置く
var smallVowelToRomaji = map[string][]string{
	"ぁ": {"a", "xa", "la"},
	"ぃ": {"i", "xi", "li"},
	"ぅ": {"u", "xu", "lu"},
	"ぇ": {"e", "xe", "le"},
	"ぉ": {"o", "xo", "lo"},
}

// 長音。キーは直前のモーラの母音 + 現在の文字
var longVowelToRomaji = map[string][]string{
	"aあ": {"a", "-", ""}, "aー": {"-", "a", ""},
	"iい": {"i", "-", ""}, "iー": {"-", "i", ""},
	"uう": {"u", "-", ""}, "uー": {"-", "u", ""},
	"eえ": {"e", "-", ""}, "eー": {"-", "e", ""},
	"oお": {"o", "-", ""}, "oー": {"-", "o", ""},
	"eい": {"i", "-", "e", ""},
	"oう": {"u", "-", "o", ""},
}

var moraTable = buildMoraTable()

func buildMoraTable() map[string]*Mora {
	table := make(map[string]*Mora)
	register := func(m map[string][]string, syllable bool) {
		for k, styles := range m {
			table[k] = newMora(styles, syllable, true)
		}
	}
	register(hiraganaToRomaji, true)
	register(youonToRomaji, true)
	register(smallVowelToRomaji, false)
	register(longVowelToRomaji, false)
	return table
}

// LookupMora returns the shared mora registered for a kana, a youon digraph
// or a long vowel key such as "oう".
func LookupMora(key string) (*Mora, bool) {
	m, ok := moraTable[key]
	return m, ok
}
