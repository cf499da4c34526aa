package otocomplete

const (
	matchScore    = 10
	completeBonus = 5
)

// Target is something a query can be matched against: a Kana string, a
// *Text or a *View.
type Target interface {
	view() (*View, error)
}

// Kana is a hiragana string to be romanized before matching.
type Kana string

func (k Kana) view() (*View, error) {
	t, err := RomanizeToText(string(k))
	if err != nil {
		return nil, err
	}
	return NewView(t), nil
}

func (t *Text) view() (*View, error) {
	return NewView(t), nil
}

func (v *View) view() (*View, error) {
	return v, nil
}

// Match reports whether query is a prefix of some romanization of target.
// On a match it returns the view with the best style of every consumed mora
// selected; it returns nil without an error when the query does not match.
func Match(query string, target Target) (*View, error) {
	v, err := target.view()
	if err != nil {
		return nil, err
	}
	return MatchView(query, v), nil
}

// MatchView matches query against v, updating the selected styles in place.
// A query whose first character does not start the current segment is tried
// against the following segments. The returned view is v itself.
func MatchView(query string, v *View) *View {
	if query == "" {
		return nil
	}
	for s := v; s != nil; s = s.Next() {
		if !acceptsInitial(s.text.moras, query[0]) {
			continue
		}
		if align(query, s) {
			return v
		}
		return nil
	}
	return nil
}

func acceptsInitial(moras []*Mora, c byte) bool {
	if len(moras) == 0 {
		return false
	}
	for _, s := range moras[0].styles {
		if s != "" && s[0] == c {
			return true
		}
	}
	return false
}

// align assigns each mora the style that consumes the most of the remaining
// query, mora by mora without backtracking.
func align(query string, v *View) bool {
	q := 0
	for i, m := range v.text.moras {
		if q >= len(query) {
			break
		}
		best, bestScore, bestConsumed := 0, -1, 0
		for j, style := range m.styles {
			consumed := consume(style, query[q:])
			score := matchScore * consumed
			if consumed == len(style) {
				score += completeBonus
			}
			if score > bestScore {
				best, bestScore, bestConsumed = j, score, consumed
			}
		}
		v.SetStyleAt(i, best)
		q += bestConsumed
	}
	return q >= len(query)
}

// consume walks style and counts the query characters it matches in order.
// Style characters that do not match the next query character are skipped.
func consume(style, query string) int {
	n := 0
	for i := 0; i < len(style) && n < len(query); i++ {
		if style[i] == query[n] {
			n++
		}
	}
	return n
}
