package otocomplete

import "fmt"

type Indexer struct {
	Storage       Storage       // 永続化層
	Analyzer      Analyzer      // 候補をローマ字化するアナライザ
	InvertedIndex InvertedIndex // 頭文字からの転置インデックス(メモリ上)
}

func NewIndexer(storage Storage, analyzer Analyzer, invertedIndex InvertedIndex) *Indexer {
	return &Indexer{
		Storage:       storage,
		Analyzer:      analyzer,
		InvertedIndex: invertedIndex,
	}
}

// AddCandidate stores c and posts it. Candidates that cannot be romanized are
// rejected before being stored.
func (i *Indexer) AddCandidate(c Candidate) (CandidateID, error) {
	t, err := i.Analyzer.Analyze(c.Kana)
	if err != nil {
		return 0, fmt.Errorf("analyzing %q: %w", c.Kana, err)
	}
	id, err := i.Storage.AddCandidate(c)
	if err != nil {
		return 0, err
	}
	i.InvertedIndex.Add(id, t)
	return id, nil
}

// Load rebuilds the in-memory index from storage.
func (i *Indexer) Load() error {
	candidates, err := i.Storage.GetAllCandidates()
	if err != nil {
		return err
	}
	// 参照を共有しているSearcherのためにマップ自体は差し替えない
	for c := range i.InvertedIndex {
		delete(i.InvertedIndex, c)
	}
	for _, c := range candidates {
		t, err := i.Analyzer.Analyze(c.Kana)
		if err != nil {
			return fmt.Errorf("analyzing candidate %d: %w", c.ID, err)
		}
		i.InvertedIndex.Add(c.ID, t)
	}
	return nil
}
