package report

import "time"

// ElementKind identifies how an Element is drawn
type ElementKind string

const (
	KindHeading   ElementKind = "heading"
	KindLine      ElementKind = "line"
	KindParagraph ElementKind = "paragraph"
	KindTable     ElementKind = "table"
	KindSpacer    ElementKind = "spacer"
)

// Cell alignments understood by fpdf
const (
	AlignLeft   = "L"
	AlignCenter = "C"
	AlignRight  = "R"
)

// Font specifies a core font face
type Font struct {
	Family string
	Style  string // "", "B", "I" or "BI"
	Size   float64
}

// Margins in document units
type Margins struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64 // page break threshold
}

// Column is one column of a table element. Width 0 means fitted to the header.
type Column struct {
	Header string
	Width  float64
	Align  string
}

// Element is a single block of the document, drawn top to bottom
type Element struct {
	Kind   ElementKind
	Text   string
	Align  string
	Font   Font
	Height float64 // line height, or vertical gap for spacers

	// Table
	Columns      []Column
	Rows         [][]string
	HeaderFont   Font
	FitToHeaders bool
	Padding      float64
}

// Document is the complete layout plan of a report
type Document struct {
	Title       string
	Subject     string
	Author      string
	Creator     string
	CreatedAt   time.Time
	Orientation string
	Unit        string
	PageSize    string
	Margins     Margins
	Elements    []Element
}

// Tables returns the table elements in document order
func (d *Document) Tables() []Element {
	var tables []Element
	for _, el := range d.Elements {
		if el.Kind == KindTable {
			tables = append(tables, el)
		}
	}
	return tables
}

// Headers returns the column headers of a table element
func (e Element) Headers() []string {
	headers := make([]string, len(e.Columns))
	for i, c := range e.Columns {
		headers[i] = c.Header
	}
	return headers
}
