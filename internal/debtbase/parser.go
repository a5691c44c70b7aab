// Package debtbase reads uploaded debt-base files. Only the FULL dialect is
// parsed into records; both dialects can be sniffed for the rendition builder.
package debtbase

import (
	"io"

	"fjacquet/siro-files/internal/fileutils"
	"fjacquet/siro-files/internal/fixedwidth"
	"fjacquet/siro-files/internal/layout"
	"fjacquet/siro-files/internal/logging"
	"fjacquet/siro-files/internal/models"
	"fjacquet/siro-files/internal/parser"
	"fjacquet/siro-files/internal/parsererror"
)

// Parser classifies FULL lines by length and record marker.
type Parser struct {
	parser.BaseParser
	encoding string
}

// Option configures a Parser.
type Option func(*Parser)

// WithEncoding sets the encoding uploaded content is decoded from.
func WithEncoding(encoding string) Option {
	return func(p *Parser) {
		p.encoding = encoding
	}
}

// NewParser creates a Parser. A nil logger falls back to the default one.
func NewParser(logger logging.Logger, opts ...Option) *Parser {
	p := &Parser{
		BaseParser: parser.NewBaseParser(logger),
		encoding:   fileutils.EncodingUTF8,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var _ parser.FullParser = (*Parser)(nil)

// Parse reads r completely and parses it.
func (p *Parser) Parse(r io.Reader, name string) (*models.ParsedFile, error) {
	content, err := fileutils.ReadText(r, p.encoding)
	if err != nil {
		p.GetLogger().WithError(err).Error("Failed to read debt base",
			logging.Field{Key: logging.FieldFile, Value: name})
		return nil, &parsererror.ReadError{FilePath: name, Err: err}
	}
	return p.ParseContent(name, content), nil
}

// ParseFile parses the debt base stored at path.
func (p *Parser) ParseFile(path string) (*models.ParsedFile, error) {
	content, err := fileutils.ReadTextFile(path, p.encoding)
	if err != nil {
		p.GetLogger().WithError(err).Error("Failed to read debt base",
			logging.Field{Key: logging.FieldFile, Value: path})
		return nil, err
	}
	return p.ParseContent(path, content), nil
}

// ParseContent parses in-memory text. Structural problems never abort the
// parse; they are collected on the result next to whatever records parsed.
func (p *Parser) ParseContent(name, content string) *models.ParsedFile {
	logger := p.GetLogger().WithField(logging.FieldFile, name)
	lines := fileutils.SplitLines(content)

	result := &models.ParsedFile{
		FileName:     name,
		Details:      []models.Detail{},
		TotalRecords: len(lines),
	}

	for i, line := range lines {
		lineNo := i + 1
		if len(line) == 0 {
			continue
		}

		width := fixedwidth.Width(line)
		marker := fixedwidth.Marker(line)
		if width != layout.FullWidth {
			p.addError(logger, result, &parsererror.StructuralError{
				Line:     lineNo,
				Kind:     parsererror.KindWrongLength,
				Length:   width,
				Expected: layout.FullWidth,
				Marker:   marker,
			})
			continue
		}

		switch marker {
		case layout.FullHeaderMarker:
			if result.Header != nil {
				p.addError(logger, result, &parsererror.StructuralError{
					Line: lineNo, Kind: parsererror.KindDuplicateHeader, Length: width, Marker: marker,
				})
				continue
			}
			result.Header = models.NewHeader(lineNo, fixedwidth.ExtractAll(line, layout.FullHeader))
		case layout.FullDetailMarker:
			result.Details = append(result.Details,
				models.NewDetail(lineNo, line, fixedwidth.ExtractAll(line, layout.FullDetail)))
		case layout.FullFooterMarker:
			if result.Footer != nil {
				p.addError(logger, result, &parsererror.StructuralError{
					Line: lineNo, Kind: parsererror.KindDuplicateFooter, Length: width, Marker: marker,
				})
				continue
			}
			result.Footer = models.NewFooter(lineNo, fixedwidth.ExtractAll(line, layout.FullFooter))
		default:
			p.addError(logger, result, &parsererror.StructuralError{
				Line: lineNo, Kind: parsererror.KindUnknownRecord, Length: width, Marker: marker,
			})
		}
	}

	logger.Info("Parsed debt base",
		logging.Field{Key: logging.FieldCount, Value: len(result.Details)},
		logging.Field{Key: logging.FieldErrorCount, Value: len(result.Errors)})
	return result
}

func (p *Parser) addError(logger logging.Logger, result *models.ParsedFile, err *parsererror.StructuralError) {
	result.Errors = append(result.Errors, err)
	logger.Warn(err.Error(),
		logging.Field{Key: logging.FieldLine, Value: err.Line},
		logging.Field{Key: logging.FieldRecord, Value: string(err.Kind)})
}
