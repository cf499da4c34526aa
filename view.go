package otocomplete

import "strings"

// selection is the style index of every mora of a root text, shared by the
// root view and all of its suffix views.
type selection struct {
	indexes []int
}

// View renders a Text with one selected style per mora. Suffix views returned
// by Next share the selection with their root, so a style set through any of
// them is visible through all of them. A View must not be shared between
// concurrent matches.
type View struct {
	text   *Text
	sel    *selection
	offset int
	next   *View
}

// NewView returns a root view over t with every mora in its default style.
func NewView(t *Text) *View {
	return &View{
		text: t,
		sel:  &selection{indexes: make([]int, len(t.moras))},
	}
}

// Text returns the underlying text.
func (v *View) Text() *Text {
	return v.text
}

// Moras returns the moras from this view's segment to the end of the text.
func (v *View) Moras() []*Mora {
	return v.text.moras
}

// Offset returns the position of this view's first mora in the root text.
func (v *View) Offset() int {
	return v.offset
}

// Next returns the view of the following segment, or nil.
func (v *View) Next() *View {
	if v.next == nil && v.text.next != nil {
		v.next = &View{
			text:   v.text.next,
			sel:    v.sel,
			offset: v.offset + v.text.segmentLen,
		}
	}
	return v.next
}

// SetStyleAt selects a style for the mora at index i of this view.
func (v *View) SetStyleAt(i, style int) {
	v.sel.indexes[v.offset+i] = style
}

// StyleAt returns the selected style index of the mora at index i.
func (v *View) StyleAt(i int) int {
	return v.sel.indexes[v.offset+i]
}

// Styles returns the selected spelling of every mora of this view.
func (v *View) Styles() []string {
	styles := make([]string, len(v.text.moras))
	for i, m := range v.text.moras {
		styles[i] = m.styles[v.StyleAt(i)]
	}
	return styles
}

// String renders every mora in its selected style.
func (v *View) String() string {
	var b strings.Builder
	for i, m := range v.text.moras {
		b.WriteString(m.styles[v.StyleAt(i)])
	}
	return b.String()
}
