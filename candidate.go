package otocomplete

type CandidateID uint64

// Candidate is a stored suggestion target. Kana is what gets romanized; Label
// is what gets shown.
type Candidate struct {
	ID    CandidateID `db:"id"`
	Label string      `db:"label"`
	Kana  string      `db:"kana"`
}

func NewCandidate(label, kana string) Candidate {
	return Candidate{
		Label: label,
		Kana:  kana,
	}
}

func candidateKana(c Candidate) string {
	return c.Kana
}
