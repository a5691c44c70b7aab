// Package fileutils reads uploaded debt bases and writes generated files.
package fileutils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"fjacquet/siro-files/internal/models"
	"fjacquet/siro-files/internal/parsererror"
)

// Supported input encodings.
const (
	EncodingUTF8        = "utf-8"
	EncodingLatin1      = "latin1"
	EncodingWindows1252 = "windows-1252"
)

// SupportedEncodings lists the accepted input.encoding values.
var SupportedEncodings = []string{EncodingUTF8, EncodingLatin1, EncodingWindows1252}

// NormalizeEncoding maps common aliases onto a supported encoding name.
func NormalizeEncoding(name string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return EncodingUTF8, nil
	case "latin1", "latin-1", "iso-8859-1", "iso8859-1":
		return EncodingLatin1, nil
	case "windows-1252", "cp1252":
		return EncodingWindows1252, nil
	}
	return "", fmt.Errorf("unsupported encoding %q", name)
}

// DecodeReader wraps r so that it yields UTF-8 text.
func DecodeReader(r io.Reader, encoding string) (io.Reader, error) {
	enc, err := NormalizeEncoding(encoding)
	if err != nil {
		return nil, err
	}
	switch enc {
	case EncodingLatin1:
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	case EncodingWindows1252:
		return transform.NewReader(r, charmap.Windows1252.NewDecoder()), nil
	default:
		return r, nil
	}
}

// ReadText reads the whole of r as text in the given encoding.
func ReadText(r io.Reader, encoding string) (string, error) {
	dr, err := DecodeReader(r, encoding)
	if err != nil {
		return "", err
	}
	data, err := io.ReadAll(dr)
	if err != nil {
		return "", fmt.Errorf("failed to read content: %w", err)
	}
	return string(data), nil
}

// ReadTextFile reads a file as text in the given encoding.
func ReadTextFile(filePath, encoding string) (string, error) {
	f, err := OpenFile(filePath)
	if err != nil {
		return "", &parsererror.ReadError{FilePath: filePath, Err: err}
	}
	defer f.Close()

	text, err := ReadText(f, encoding)
	if err != nil {
		return "", &parsererror.ReadError{FilePath: filePath, Err: err}
	}
	return text, nil
}

// SplitLines splits content on '\n' and strips one carriage return per line.
// Empty lines are kept so that line numbers match the input.
func SplitLines(content string) []string {
	lines := strings.Split(content, "\n")
	for i, l := range lines {
		lines[i] = strings.Replace(l, "\r", "", 1)
	}
	return lines
}

// NonEmptyLines returns the lines of content whose trimmed form is not empty.
func NonEmptyLines(content string) []string {
	var out []string
	for _, l := range SplitLines(content) {
		if strings.TrimSpace(l) != "" {
			out = append(out, l)
		}
	}
	return out
}

// FileExists checks if a file exists and is not a directory
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

// DirectoryExists checks if a directory exists
func DirectoryExists(dirPath string) bool {
	info, err := os.Stat(dirPath)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && info.IsDir()
}

// EnsureDirectoryExists creates a directory if it doesn't exist
func EnsureDirectoryExists(dirPath string) error {
	if !DirectoryExists(dirPath) {
		if err := os.MkdirAll(dirPath, models.PermissionDirectory); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	return nil
}

// WriteFile writes data to a file, creating the file if it doesn't exist
// and creating any parent directories if needed
func WriteFile(filePath string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(filePath)
	if err := EnsureDirectoryExists(dir); err != nil {
		return err
	}

	if err := os.WriteFile(filePath, data, perm); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// WriteOutput writes text to filePath, or to w when filePath is empty.
func WriteOutput(filePath, text string, w io.Writer) error {
	if filePath == "" {
		if _, err := io.WriteString(w, text); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		if !strings.HasSuffix(text, "\n") {
			_, _ = io.WriteString(w, "\n")
		}
		return nil
	}
	return WriteFile(filePath, []byte(text), models.PermissionOutputFile)
}

// OpenFile opens a file for reading, returning an error if the file doesn't exist
func OpenFile(filePath string) (*os.File, error) {
	if !FileExists(filePath) {
		return nil, fmt.Errorf("file does not exist: %s", filePath)
	}

	file, err := os.Open(filePath) // #nosec G304 -- operator-supplied path
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	return file, nil
}

// CreateFile creates a file for writing, creating parent directories if needed
func CreateFile(filePath string) (*os.File, error) {
	dir := filepath.Dir(filePath)
	if err := EnsureDirectoryExists(dir); err != nil {
		return nil, err
	}

	file, err := os.Create(filePath) // #nosec G304 -- operator-supplied path
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}

	return file, nil
}
