package otocomplete

import "sort"

// PostingList is a list of candidate IDs in ascending order.
type PostingList []CandidateID

func (p PostingList) Size() int {
	return len(p)
}

// insert adds id keeping the list sorted and free of duplicates.
func (p PostingList) insert(id CandidateID) PostingList {
	i := sort.Search(len(p), func(i int) bool { return p[i] >= id })
	if i < len(p) && p[i] == id {
		return p
	}
	p = append(p, 0)
	copy(p[i+1:], p[i:])
	p[i] = id
	return p
}

// InvertedIndex maps a query initial to the candidates it can match.
type InvertedIndex map[byte]PostingList

// Initials returns every first query character that passes the entry check
// of some segment of t.
func Initials(t *Text) []byte {
	var initials []byte
	seen := make(map[byte]struct{})
	for s := t; s != nil; s = s.Next() {
		if len(s.moras) == 0 {
			continue
		}
		for _, st := range s.moras[0].styles {
			if st == "" {
				continue
			}
			if _, ok := seen[st[0]]; ok {
				continue
			}
			seen[st[0]] = struct{}{}
			initials = append(initials, st[0])
		}
	}
	return initials
}

// Add posts id under every initial of t.
func (idx InvertedIndex) Add(id CandidateID, t *Text) {
	for _, c := range Initials(t) {
		idx[c] = idx[c].insert(id)
	}
}

// Lookup returns the candidates a query starting with c may match.
func (idx InvertedIndex) Lookup(c byte) PostingList {
	return idx[c]
}
