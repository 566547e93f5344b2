package input

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// MaxUploadSize bounds how much of a file is read into the console.
const MaxUploadSize = 16 << 20

// ErrTooLarge is returned for inputs above MaxUploadSize.
var ErrTooLarge = errors.New("input exceeds maximum upload size")

// Normalize strips every carriage return, turning CRLF line endings into LF.
func Normalize(text string) string {
	return strings.ReplaceAll(text, "\r", "")
}

// Load reads r completely and returns its normalized text. Invalid UTF-8
// sequences are replaced with U+FFFD.
func Load(r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxUploadSize+1))
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	if len(data) > MaxUploadSize {
		return "", ErrTooLarge
	}
	return Normalize(strings.ToValidUTF8(string(data), "�")), nil
}

// ReadFile is the file-to-text capability used by the upload paths.
func ReadFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory", path)
	}

	text, err := Load(f)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return text, nil
}
