// Package export writes parsed debt bases to CSV, YAML and XLSX so operators
// can inspect them outside the fixed-width format.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"fjacquet/siro-files/internal/fileutils"
	"fjacquet/siro-files/internal/layout"
	"fjacquet/siro-files/internal/logging"
	"fjacquet/siro-files/internal/models"
)

// Format is an export target.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatYAML Format = "yaml"
	FormatXLSX Format = "xlsx"
)

// Sheet names of the XLSX export.
const (
	SheetHeader  = "header"
	SheetDetails = "details"
	SheetFooter  = "footer"
	SheetErrors  = "errors"
)

// ParseFormat resolves a format name, case-insensitively. "yml" is accepted
// for YAML.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "csv":
		return FormatCSV, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "xlsx", "excel":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("unknown export format '%s' (expected csv, yaml or xlsx)", name)
	}
}

// Extension returns the file extension of the format, with the dot.
func (f Format) Extension() string {
	return "." + string(f)
}

// Exporter writes parsed files in any supported Format.
type Exporter struct {
	logger    logging.Logger
	delimiter rune
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithDelimiter sets the CSV field separator.
func WithDelimiter(delim rune) Option {
	return func(e *Exporter) {
		if delim != 0 {
			e.delimiter = delim
		}
	}
}

// NewExporter creates an Exporter. The CSV delimiter defaults to ','.
func NewExporter(logger logging.Logger, opts ...Option) *Exporter {
	e := &Exporter{
		logger:    logging.OrDefault(logger),
		delimiter: ',',
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export writes file to w in the given format.
func (e *Exporter) Export(w io.Writer, file *models.ParsedFile, format Format) error {
	if file == nil {
		return fmt.Errorf("nothing to export")
	}

	var err error
	switch format {
	case FormatCSV:
		err = WriteCSV(w, file.Details, e.delimiter)
	case FormatYAML:
		err = WriteYAML(w, file)
	case FormatXLSX:
		err = WriteXLSX(w, file)
	default:
		err = fmt.Errorf("unknown export format '%s'", format)
	}
	if err != nil {
		e.logger.WithError(err).Error("Export failed",
			logging.Field{Key: logging.FieldFile, Value: file.FileName},
			logging.Field{Key: logging.FieldFormat, Value: string(format)})
		return err
	}

	e.logger.Info("Exported debt base",
		logging.Field{Key: logging.FieldFile, Value: file.FileName},
		logging.Field{Key: logging.FieldFormat, Value: string(format)},
		logging.Field{Key: logging.FieldCount, Value: len(file.Details)})
	return nil
}

// ExportFile writes file to path. An empty path writes to stdout, which is
// only allowed for the text formats.
func (e *Exporter) ExportFile(path string, file *models.ParsedFile, format Format, stdout io.Writer) error {
	if path == "" && format == FormatXLSX {
		return fmt.Errorf("xlsx export needs an output file")
	}

	var buf bytes.Buffer
	if err := e.Export(&buf, file, format); err != nil {
		return err
	}
	if err := fileutils.WriteOutput(path, buf.String(), stdout); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	if path != "" {
		e.logger.Debug("Wrote export file", logging.Field{Key: logging.FieldOutputFile, Value: path})
	}
	return nil
}

// WriteCSV writes one row per detail, headed by the csv tag names.
func WriteCSV(w io.Writer, details []models.Detail, delim rune) error {
	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = delim

	if err := gocsv.MarshalCSV(details, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

type yamlDocument struct {
	models.ParsedFile `yaml:",inline"`
	Errors            []string `yaml:"errors,omitempty"`
}

// WriteYAML writes the whole parsed file, structural errors included.
func WriteYAML(w io.Writer, file *models.ParsedFile) error {
	doc := yamlDocument{ParsedFile: *file, Errors: file.ErrorMessages()}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("error writing YAML data: %w", err)
	}
	return enc.Close()
}

// WriteXLSX writes a workbook with one sheet per record kind and one for the
// structural errors. Detail columns follow the FULL detail layout.
func WriteXLSX(w io.Writer, file *models.ParsedFile) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetHeader); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	for _, name := range []string{SheetDetails, SheetFooter, SheetErrors} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}

	sheets := []struct {
		name string
		rows [][]string
	}{
		{SheetHeader, headerRows(file.Header)},
		{SheetDetails, detailRows(file.Details)},
		{SheetFooter, footerRows(file.Footer)},
		{SheetErrors, errorRows(file)},
	}
	for _, s := range sheets {
		if err := writeSheet(f, s.name, s.rows, bold); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write Excel file: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, rows [][]string, headerStyle int) error {
	for rowIdx, row := range rows {
		for colIdx, value := range row {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return err
			}
			// Cells are strings: leading zeros are part of the data.
			if err := f.SetCellStr(sheet, cell, value); err != nil {
				return fmt.Errorf("failed to set %s!%s: %w", sheet, cell, err)
			}
		}
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil
	}

	last, err := excelize.CoordinatesToCellName(len(rows[0]), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("failed to style %s: %w", sheet, err)
	}
	for i, title := range rows[0] {
		col, _ := excelize.ColumnNumberToName(i + 1)
		width := float64(len(title) + 4)
		if width < 12 {
			width = 12
		}
		_ = f.SetColWidth(sheet, col, col, width)
	}
	return nil
}

func headerRows(h *models.Header) [][]string {
	rows := [][]string{{"line", "record_type", "network_code", "company_code", "file_date"}}
	if h != nil {
		rows = append(rows, []string{fmt.Sprint(h.Line), h.RecordType, h.NetworkCode, h.CompanyCode, h.FileDate})
	}
	return rows
}

func detailRows(details []models.Detail) [][]string {
	fields := layout.FullDetail.Fields
	title := make([]string, 0, len(fields)+1)
	title = append(title, "Line")
	for _, fl := range fields {
		title = append(title, fl.Name)
	}

	rows := [][]string{title}
	for _, d := range details {
		values := detailValues(d)
		row := make([]string, 0, len(title))
		row = append(row, fmt.Sprint(d.Line))
		for _, fl := range fields {
			row = append(row, values[fl.Key])
		}
		rows = append(rows, row)
	}
	return rows
}

func detailValues(d models.Detail) map[string]string {
	return map[string]string{
		layout.KeyRecordType:      d.RecordType,
		layout.KeyReferenceNumber: d.ReferenceNumber,
		layout.KeyInvoiceID:       d.InvoiceID,
		layout.KeyCurrencyCode:    d.CurrencyCode,
		layout.KeyFirstDueDate:    d.FirstDueDate,
		layout.KeyFirstAmount:     d.FirstAmount,
		layout.KeySecondDueDate:   d.SecondDueDate,
		layout.KeySecondAmount:    d.SecondAmount,
		layout.KeyThirdDueDate:    d.ThirdDueDate,
		layout.KeyThirdAmount:     d.ThirdAmount,
		layout.KeyFiller1:         d.Filler1,
		layout.KeyReferenceRepeat: d.ReferenceRepeat,
		layout.KeyTicketMessage:   d.TicketMessage,
		layout.KeyScreenMessage:   d.ScreenMessage,
		layout.KeyBarcode:         d.Barcode,
		layout.KeyFiller2:         d.Filler2,
	}
}

func footerRows(f *models.Footer) [][]string {
	rows := [][]string{{"line", "record_type", "network_code", "company_code", "file_date", "record_count", "total_amount"}}
	if f != nil {
		rows = append(rows, []string{
			fmt.Sprint(f.Line), f.RecordType, f.NetworkCode, f.CompanyCode, f.FileDate, f.RecordCount, f.TotalAmount,
		})
	}
	return rows
}

func errorRows(file *models.ParsedFile) [][]string {
	rows := [][]string{{"line", "kind", "message"}}
	for _, e := range file.Errors {
		rows = append(rows, []string{fmt.Sprint(e.Line), string(e.Kind), e.Error()})
	}
	return rows
}
