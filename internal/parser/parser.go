// Package parser defines the interfaces implemented by debt-base readers.
package parser

import (
	"io"

	"fjacquet/siro-files/internal/logging"
	"fjacquet/siro-files/internal/models"
)

// Parser reads one debt base from r. name is recorded as the file name of
// the result. Structural problems are collected in the result; the error
// return is reserved for read failures.
type Parser interface {
	Parse(r io.Reader, name string) (*models.ParsedFile, error)
}

// FileParser parses a debt base from disk.
type FileParser interface {
	ParseFile(path string) (*models.ParsedFile, error)
}

// LoggerConfigurable is implemented by components whose logger can be
// replaced after construction.
type LoggerConfigurable interface {
	SetLogger(logger logging.Logger)
}

// FullParser combines every parser capability.
type FullParser interface {
	Parser
	FileParser
	LoggerConfigurable
}
