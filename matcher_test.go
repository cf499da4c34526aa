package otocomplete

import (
	"fmt"
	"testing"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		query string
		kana  string
		want  string // 一致しない場合は空
	}{
		{query: "ryuujou", kana: "りゅうじょう", want: "ryuujou"},
		{query: "rj", kana: "りゅうじょう", want: "ryujou"},
		{query: "ryuuhou", kana: "りゅうじょう"},
		{query: "choukai", kana: "ちょうかい", want: "choukai"},
		{query: "tyokai", kana: "ちょうかい", want: "tyokai"},
		{query: "cho-kai", kana: "ちょうかい", want: "cho-kai"},
		{query: "tyookai", kana: "ちょうかい", want: "tyookai"},
		{query: "maya", kana: "ちょうかい"},
		{query: "siratuyu", kana: "しらつゆ", want: "siratuyu"},
		{query: "shiratsuyu", kana: "しらつゆ", want: "shiratsuyu"},
		{query: "shirauyu", kana: "しらつゆ", want: "shiratsuyu"},
		{query: "srty", kana: "しらつゆ", want: "shiratsuyu"},
		{query: "graahu", kana: "ぐらーふ", want: "guraahu"},
		{query: "grafu", kana: "ぐらーふ", want: "gurafu"},
		{query: "graaaafu", kana: "ぐらーふ"},
		{query: "tuepp", kana: "つぇっぺりん", want: "tuepperin"},
		{query: "tuepperin", kana: "つぇっぺりん", want: "tuepperin"},
		{query: "textuein", kana: "つぇっぺりん", want: "tsuextuperin"},
		{query: "puri", kana: "ぷりんつ・おいげん", want: "purintsuoigen"},
		{query: "oig", kana: "ぷりんつ・おいげん", want: "purintsuoigen"},
		{query: "oignn", kana: "ぷりんつ・おいげん", want: "purintsuoigenn"},
		{query: "gurapperin", kana: "ぐらーふ つぇっぺりん", want: "gurafutsuepperin"},
		{query: "tsueppe", kana: "ぐらーふ＝つぇっぺりん", want: "gura-futsuepperin"},
		{query: "", kana: "あ"},
		{query: "a", kana: ""},
		{query: "a", kana: "・"},
		{query: "a", kana: "・あ", want: "a"},
		{query: "i", kana: "あ・・い", want: "ai"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("query = %v, kana = %v, want = %v", tt.query, tt.kana, tt.want), func(t *testing.T) {
			v, err := Match(tt.query, Kana(tt.kana))
			if err != nil {
				t.Fatal(err)
			}
			if tt.want == "" {
				if v != nil {
					t.Errorf("Match() = %v, want nil", v)
				}
				return
			}
			if v == nil {
				t.Fatalf("Match() = nil, want %v", tt.want)
			}
			if got := v.String(); got != tt.want {
				t.Errorf("Match().String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMatch_Targets(t *testing.T) {
	text, err := RomanizeToText("ぷりんつ・おいげん")
	if err != nil {
		t.Fatal(err)
	}
	view := NewView(text)

	tests := []struct {
		name   string
		target Target
	}{
		{name: "kana", target: Kana("ぷりんつ・おいげん")},
		{name: "text", target: text},
		{name: "view", target: view},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Match("oig", tt.target)
			if err != nil {
				t.Fatal(err)
			}
			if v == nil {
				t.Fatal("Match() = nil")
			}
			if got := v.String(); got != "purintsuoigen" {
				t.Errorf("Match().String() = %v, want purintsuoigen", got)
			}
		})
	}

	if v, _ := Match("oig", view); v != view {
		t.Error("matching a view must return the same view")
	}
	if _, err := Match("a", Kana("漢字")); err == nil {
		t.Error("Match() must fail on unknown kana")
	}
}

func TestMatch_SkippedSegmentKeepsStyles(t *testing.T) {
	text, err := RomanizeToText("しらつゆ・おしお")
	if err != nil {
		t.Fatal(err)
	}
	view := NewView(text)
	view.SetStyleAt(0, 1)

	if v := MatchView("osi", view); v != view {
		t.Fatalf("MatchView() = %v, want the root view", v)
	}
	if got := view.String(); got != "siratsuyuosio" {
		t.Errorf("String() = %v, want siratsuyuosio", got)
	}
	if got := view.Next().String(); got != "osio" {
		t.Errorf("Next().String() = %v, want osio", got)
	}
}

func TestMatch_SelfMatch(t *testing.T) {
	kanas := []string{
		"こんにちは", "ぐらーふ", "つぇっぺりん", "ちぢむ", "がっこう",
		"せんせい", "おちゃ", "まっちゃ", "おおい", "ぷりんつ・おいげん",
	}
	for _, kana := range kanas {
		t.Run(fmt.Sprintf("kana = %v", kana), func(t *testing.T) {
			romaji, err := Romanize(kana)
			if err != nil {
				t.Fatal(err)
			}
			v, err := Match(romaji, Kana(kana))
			if err != nil {
				t.Fatal(err)
			}
			if v == nil {
				t.Errorf("Match(%v) = nil", romaji)
			}
		})
	}
}

func TestMatch_Prefixes(t *testing.T) {
	tests := []struct {
		query string
		kana  string
	}{
		{query: "ryuujou", kana: "りゅうじょう"},
		{query: "shiratsuyu", kana: "しらつゆ"},
		{query: "tuepperin", kana: "つぇっぺりん"},
		{query: "cho-kai", kana: "ちょうかい"},
		{query: "purintsuoigen", kana: "ぷりんつ・おいげん"},
	}
	for _, tt := range tests {
		for i := 1; i <= len(tt.query); i++ {
			q := tt.query[:i]
			t.Run(fmt.Sprintf("query = %v, kana = %v", q, tt.kana), func(t *testing.T) {
				v, err := Match(q, Kana(tt.kana))
				if err != nil {
					t.Fatal(err)
				}
				if v == nil {
					t.Errorf("Match(%v) = nil", q)
				}
			})
		}
	}
}

func TestConsume(t *testing.T) {
	tests := []struct {
		style string
		query string
		want  int
	}{
		{style: "shi", query: "si", want: 2},
		{style: "shi", query: "sh", want: 2},
		{style: "tsu", query: "tuyu", want: 2},
		{style: "xtu", query: "pp", want: 0},
		{style: "", query: "a", want: 0},
		{style: "ryu", query: "r", want: 1},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("style = %v, query = %v", tt.style, tt.query), func(t *testing.T) {
			if got := consume(tt.style, tt.query); got != tt.want {
				t.Errorf("consume() = %v, want %v", got, tt.want)
			}
		})
	}
}
