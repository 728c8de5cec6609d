// Package gedcom renders historic events as GEDCOM EVEN fragments, the
// four-line form the host's historic events parser reads:
//
//	1 EVEN <title>
//	2 TYPE <category>
//	2 DATE <date-spec>
//	2 NOTE <note>
//
// Lines are joined with a single line feed and there is no trailing newline.
package gedcom

import "strings"

// Line prefixes of an EVEN fragment, in emission order.
const (
	TagEvent = "1 EVEN "
	TagType  = "2 TYPE "
	TagDate  = "2 DATE "
	TagNote  = "2 NOTE "
)

// Record is one historic event.
type Record struct {
	Title string
	Type  string
	Date  DateSpec
	Note  string
}

// String renders the record as an EVEN fragment.
func (r Record) String() string {
	var b strings.Builder
	b.Grow(len(r.Title) + len(r.Type) + len(r.Note) + 64)
	b.WriteString(TagEvent)
	b.WriteString(oneLine(r.Title))
	b.WriteByte('\n')
	b.WriteString(TagType)
	b.WriteString(oneLine(r.Type))
	b.WriteByte('\n')
	b.WriteString(TagDate)
	b.WriteString(r.Date.String())
	b.WriteByte('\n')
	b.WriteString(TagNote)
	b.WriteString(oneLine(r.Note))
	return b.String()
}

// oneLine keeps a field from breaking the four-line structure.
func oneLine(s string) string {
	if !strings.ContainsAny(s, "\r\n") {
		return s
	}
	return strings.Join(strings.Fields(strings.NewReplacer("\r", " ", "\n", " ").Replace(s)), " ")
}
