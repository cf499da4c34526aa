package otocomplete

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestInitials(t *testing.T) {
	tests := []struct {
		kana string
		want []byte
	}{
		{kana: "ぷりんつ・おいげん", want: []byte{'p', 'o'}},
		{kana: "ちょうかい", want: []byte{'c', 't'}},
		{kana: "しお・しろ", want: []byte{'s'}},
		{kana: "っぱ", want: []byte{'p', 'x', 'l'}},
		{kana: "・", want: nil},
		{kana: "", want: nil},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("kana = %v, want = %v", tt.kana, tt.want), func(t *testing.T) {
			text, err := RomanizeToText(tt.kana)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(Initials(text), tt.want); diff != "" {
				t.Errorf("Diff: (-got +want)\n%s", diff)
			}
		})
	}
}

func TestPostingList_insert(t *testing.T) {
	tests := []struct {
		list PostingList
		id   CandidateID
		want PostingList
	}{
		{list: nil, id: 3, want: PostingList{3}},
		{list: PostingList{1, 5}, id: 3, want: PostingList{1, 3, 5}},
		{list: PostingList{1, 5}, id: 7, want: PostingList{1, 5, 7}},
		{list: PostingList{1, 5}, id: 0, want: PostingList{0, 1, 5}},
		{list: PostingList{1, 5}, id: 5, want: PostingList{1, 5}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("list = %v, id = %v", tt.list, tt.id), func(t *testing.T) {
			if diff := cmp.Diff(tt.list.insert(tt.id), tt.want); diff != "" {
				t.Errorf("Diff: (-got +want)\n%s", diff)
			}
		})
	}
}

func TestInvertedIndex_Add(t *testing.T) {
	idx := make(InvertedIndex)
	for i, kana := range []string{"しょうかく", "ちょうかい", "しらつゆ・ちとせ"} {
		text, err := RomanizeToText(kana)
		if err != nil {
			t.Fatal(err)
		}
		idx.Add(CandidateID(i+1), text)
	}
	want := InvertedIndex{
		's': {1, 3},
		'c': {2, 3},
		't': {2, 3},
	}
	if diff := cmp.Diff(idx, want); diff != "" {
		t.Errorf("Diff: (-got +want)\n%s", diff)
	}
	if got := idx.Lookup('x').Size(); got != 0 {
		t.Errorf("Lookup('x').Size() = %v, want 0", got)
	}
}
