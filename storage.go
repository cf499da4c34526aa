package otocomplete

type Storage interface {
	CountCandidates() (int, error)                    // 候補数を返す
	GetAllCandidates() ([]Candidate, error)           // 全ての候補をID順に返す
	GetCandidates([]CandidateID) ([]Candidate, error) // 複数IDから複数候補をID順に返す
	AddCandidate(Candidate) (CandidateID, error)      // 候補を挿入する。挿入した候補のIDを返す。
}
