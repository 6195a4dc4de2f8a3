// Package report renders the sales performance PDF.
//
// Rendering happens in two phases. BuildDocument turns the records and the
// analysis result into a Document, a flat list of Elements with their text,
// fonts and table data. The Renderer then draws that plan with fpdf into
// memory and writes the finished file in a single write.
//
// Tables either carry fixed column widths or are marked FitToHeaders, in which
// case widths are resolved at draw time with FitColumnWidths against the
// printable width of the page.
package report
