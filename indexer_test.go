package otocomplete

import (
	"errors"
	"testing"

	gomock "github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
)

func TestIndexer_AddCandidate(t *testing.T) {
	// Mock
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	mockStorage := NewMockStorage(mockCtrl)

	// Given
	indexer := NewIndexer(mockStorage, NewKanaAnalyzer(), make(InvertedIndex))
	gomock.InOrder(
		mockStorage.EXPECT().AddCandidate(NewCandidate("龍驤", "りゅうじょう")).Return(CandidateID(1), nil),
		mockStorage.EXPECT().AddCandidate(NewCandidate("プリンツ・オイゲン", "プリンツ・オイゲン")).Return(CandidateID(2), nil),
	)

	// When
	for _, c := range []Candidate{
		NewCandidate("龍驤", "りゅうじょう"),
		NewCandidate("プリンツ・オイゲン", "プリンツ・オイゲン"),
	} {
		if _, err := indexer.AddCandidate(c); err != nil {
			t.Fatal(err)
		}
	}

	// Then
	want := InvertedIndex{'r': {1}, 'p': {2}, 'o': {2}}
	if diff := cmp.Diff(indexer.InvertedIndex, want); diff != "" {
		t.Errorf("Diff: (-got +want)\n%s", diff)
	}
}

func TestIndexer_AddCandidate_LookupError(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	mockStorage := NewMockStorage(mockCtrl)

	// ストレージは呼ばれない
	indexer := NewIndexer(mockStorage, NewKanaAnalyzer(), make(InvertedIndex))
	_, err := indexer.AddCandidate(NewCandidate("漢字", "漢字"))
	var lookupErr *LookupError
	if !errors.As(err, &lookupErr) {
		t.Errorf("AddCandidate() error = %v, want *LookupError", err)
	}
	if len(indexer.InvertedIndex) != 0 {
		t.Errorf("InvertedIndex = %v, want empty", indexer.InvertedIndex)
	}
}

func TestIndexer_Load(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	mockStorage := NewMockStorage(mockCtrl)

	idx := InvertedIndex{'z': {9}}
	indexer := NewIndexer(mockStorage, NewKanaAnalyzer(), idx)
	mockStorage.EXPECT().GetAllCandidates().Return([]Candidate{
		{ID: 1, Label: "鳥海", Kana: "ちょうかい"},
		{ID: 2, Label: "翔鶴", Kana: "しょうかく"},
	}, nil)

	if err := indexer.Load(); err != nil {
		t.Fatal(err)
	}
	want := InvertedIndex{'c': {1}, 't': {1}, 's': {2}}
	if diff := cmp.Diff(idx, want); diff != "" {
		t.Errorf("Diff: (-got +want)\n%s", diff)
	}
}

func TestIndexer_Load_StorageError(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	mockStorage := NewMockStorage(mockCtrl)

	boom := errors.New("boom")
	indexer := NewIndexer(mockStorage, NewKanaAnalyzer(), make(InvertedIndex))
	mockStorage.EXPECT().GetAllCandidates().Return(nil, boom)

	if err := indexer.Load(); !errors.Is(err, boom) {
		t.Errorf("Load() error = %v, want %v", err, boom)
	}
}
