package report

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/go-pdf/fpdf"

	apperrors "salesreport/internal/errors"
	"salesreport/pkg/contracts/domain"
)

// Options configures a Renderer
type Options struct {
	Layout LayoutOptions
	// Now supplies the report date; defaults to time.Now
	Now func() time.Time
}

// Renderer lays out and writes the PDF report
type Renderer struct {
	opts   Options
	logger *slog.Logger
}

// NewRenderer creates a renderer with the given options
func NewRenderer(logger *slog.Logger, opts Options) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	opts.Layout = opts.Layout.withDefaults()
	return &Renderer{
		opts:   opts,
		logger: logger.With(slog.String("component", "renderer")),
	}
}

// Render builds the report for records and result and writes it to path.
// Any failure is logged and returned as a RENDER error; a partially written
// file is removed.
func (r *Renderer) Render(ctx context.Context, path string, records []domain.Record, result *domain.AnalysisResult) error {
	if result == nil {
		err := apperrors.NewRenderError("no analysis result to render", nil).WithContext("path", path)
		r.logger.ErrorContext(ctx, "Report not generated", slog.String("error", err.Error()))
		return err
	}

	doc := BuildDocument(records, result, r.opts.Now(), r.opts.Layout)

	var buf bytes.Buffer
	if err := Draw(doc, &buf); err != nil {
		appErr := apperrors.NewRenderError("failed to lay out report", err).WithContext("path", path)
		r.logger.ErrorContext(ctx, "Report not generated", slog.String("error", appErr.Error()))
		return appErr
	}

	if err := writeFile(path, buf.Bytes()); err != nil {
		appErr := apperrors.NewRenderError("failed to write report", err).WithContext("path", path)
		r.logger.ErrorContext(ctx, "Report not generated",
			slog.String("path", path),
			slog.String("error", appErr.Error()))
		return appErr
	}

	r.logger.InfoContext(ctx, "Report generated successfully",
		slog.String("path", path),
		slog.Int("bytes", buf.Len()),
		slog.Int("sample_rows", len(SampleRows(records, r.opts.Layout.SampleRows))))

	return nil
}

// Draw renders doc as PDF into w
func Draw(doc *Document, w io.Writer) error {
	pdf := fpdf.New(doc.Orientation, doc.Unit, doc.PageSize, "")
	pdf.SetTitle(doc.Title, true)
	pdf.SetSubject(doc.Subject, true)
	pdf.SetAuthor(doc.Author, true)
	pdf.SetCreator(doc.Creator, true)
	if !doc.CreatedAt.IsZero() {
		pdf.SetCreationDate(doc.CreatedAt)
	}

	pdf.SetMargins(doc.Margins.Left, doc.Margins.Top, doc.Margins.Right)
	pdf.SetAutoPageBreak(true, doc.Margins.Bottom)
	pdf.AddPage()

	for i, el := range doc.Elements {
		if err := drawElement(pdf, el); err != nil {
			return fmt.Errorf("element %d (%s): %w", i, el.Kind, err)
		}
		if pdf.Err() {
			return fmt.Errorf("element %d (%s): %w", i, el.Kind, pdf.Error())
		}
	}

	return pdf.Output(w)
}

func setFont(pdf *fpdf.Fpdf, f Font) {
	pdf.SetFont(f.Family, f.Style, f.Size)
}

func drawElement(pdf *fpdf.Fpdf, el Element) error {
	switch el.Kind {
	case KindHeading, KindLine:
		setFont(pdf, el.Font)
		pdf.CellFormat(0, el.Height, el.Text, "", 1, el.Align, false, 0, "")
	case KindParagraph:
		setFont(pdf, el.Font)
		pdf.MultiCell(0, el.Height, el.Text, "", el.Align, false)
	case KindSpacer:
		pdf.Ln(el.Height)
	case KindTable:
		drawTable(pdf, el)
	default:
		return fmt.Errorf("unknown element kind %q", el.Kind)
	}
	return nil
}

func drawTable(pdf *fpdf.Fpdf, el Element) {
	setFont(pdf, el.HeaderFont)
	widths := columnWidths(pdf, el)

	for i, c := range el.Columns {
		pdf.CellFormat(widths[i], el.Height, c.Header, "1", 0, AlignCenter, false, 0, "")
	}
	pdf.Ln(el.Height)

	setFont(pdf, el.Font)
	for _, row := range el.Rows {
		for i, c := range el.Columns {
			text := ""
			if i < len(row) {
				text = row[i]
			}
			pdf.CellFormat(widths[i], el.Height, text, "1", 0, c.Align, false, 0, "")
		}
		pdf.Ln(el.Height)
	}
}

// columnWidths must be called with the header font selected
func columnWidths(pdf *fpdf.Fpdf, el Element) []float64 {
	if el.FitToHeaders {
		return FitColumnWidths(el.Headers(), pdf.GetStringWidth, el.Padding, printableWidth(pdf))
	}
	widths := make([]float64, len(el.Columns))
	for i, c := range el.Columns {
		widths[i] = c.Width
	}
	return widths
}

func printableWidth(pdf *fpdf.Fpdf) float64 {
	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	return pageWidth - left - right
}

func writeFile(path string, data []byte) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	_, err = file.Write(data)
	return err
}
