package otocomplete

type Searcher interface {
	Search(query string) ([]Suggestion[Candidate], error)
}

// MatchAllSearcher returns every stored candidate regardless of the query.
type MatchAllSearcher struct {
	Storage Storage
}

func NewMatchAllSearcher(storage Storage) MatchAllSearcher {
	return MatchAllSearcher{
		Storage: storage,
	}
}

func (s MatchAllSearcher) Search(query string) ([]Suggestion[Candidate], error) {
	candidates, err := s.Storage.GetAllCandidates()
	if err != nil {
		return nil, err
	}
	suggestions := make([]Suggestion[Candidate], len(candidates))
	for i, c := range candidates {
		suggestions[i] = Suggestion[Candidate]{Index: i, Item: c}
	}
	return suggestions, nil
}

// PrefixSearcher suggests the stored candidates a romaji query is a prefix of.
// The index narrows the candidates down by the query's first character
// before matching.
type PrefixSearcher struct {
	Storage       Storage
	Analyzer      Analyzer
	InvertedIndex InvertedIndex
}

func NewPrefixSearcher(storage Storage, analyzer Analyzer, invertedIndex InvertedIndex) PrefixSearcher {
	return PrefixSearcher{
		Storage:       storage,
		Analyzer:      analyzer,
		InvertedIndex: invertedIndex,
	}
}

// Search returns matching candidates in ascending ID order.
func (s PrefixSearcher) Search(query string) ([]Suggestion[Candidate], error) {
	if query == "" {
		return nil, nil
	}
	ids := s.InvertedIndex.Lookup(query[0])
	if ids.Size() == 0 {
		return nil, nil
	}
	candidates, err := s.Storage.GetCandidates(ids)
	if err != nil {
		return nil, err
	}
	return Suggest(query, candidates, AnalyzerExtractor(s.Analyzer, candidateKana))
}
