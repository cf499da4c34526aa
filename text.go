package otocomplete

import "strings"

// Text is a romanized text split into segments. Each node holds the moras
// from the start of its segment to the end of the whole text, so Next
// yields successively shorter suffixes. A Text is immutable.
type Text struct {
	moras      []*Mora
	segmentLen int
	next       *Text
}

func newText(moras []*Mora, segmentLengths []int) *Text {
	root := &Text{moras: moras, segmentLen: len(moras)}
	t := root
	for _, l := range segmentLengths {
		t.segmentLen = l
		t.next = &Text{moras: t.moras[l:]}
		t = t.next
		t.segmentLen = len(t.moras)
	}
	return root
}

// Moras returns the moras from this segment to the end of the text.
func (t *Text) Moras() []*Mora {
	return t.moras
}

// SegmentLen returns the number of moras in this node's own segment.
func (t *Text) SegmentLen() int {
	return t.segmentLen
}

// Next returns the text starting at the following segment, or nil.
func (t *Text) Next() *Text {
	return t.next
}

// String renders every mora in its default style.
func (t *Text) String() string {
	var b strings.Builder
	for _, m := range t.moras {
		b.WriteString(m.styles[0])
	}
	return b.String()
}
