// Package pdfdoc checks a local PDF before it is uploaded for summarization.
package pdfdoc

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/ledongthuc/pdf"
)

// MaxUploadBytes caps the size of a document sent to the backend.
const MaxUploadBytes int64 = 10 << 20

// Chunking parameters used by the backend when it splits extracted text.
const (
	ChunkSize    = 2000
	ChunkOverlap = 200
)

var (
	ErrNotPDF    = errors.New("only PDF files are supported")
	ErrEmptyFile = errors.New("file is empty")
	ErrTooLarge  = errors.New("file exceeds upload limit")
	ErrNoText    = errors.New("no text content found in PDF")
)

// Info describes a document that passed inspection.
type Info struct {
	Path       string
	Name       string
	Size       int64
	Pages      int
	Characters int
	Chunks     int
}

// HumanSize renders Size for display.
func (i Info) HumanSize() string {
	return humanize.IBytes(uint64(i.Size))
}

// Inspect validates path and extracts enough text to know the upload will
// not be rejected for lacking content.
func Inspect(path string) (Info, error) {
	path = strings.TrimSpace(path)
	info := Info{Path: path, Name: filepath.Base(path)}
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return info, fmt.Errorf("%s: %w", info.Name, ErrNotPDF)
	}
	stat, err := os.Stat(path)
	if err != nil {
		return info, err
	}
	if stat.IsDir() {
		return info, fmt.Errorf("%s is a directory", path)
	}
	info.Size = stat.Size()
	switch {
	case info.Size == 0:
		return info, fmt.Errorf("%s: %w", info.Name, ErrEmptyFile)
	case info.Size > MaxUploadBytes:
		return info, fmt.Errorf("%s is %s: %w (%s)", info.Name, info.HumanSize(), ErrTooLarge, humanize.IBytes(uint64(MaxUploadBytes)))
	}

	file, reader, err := pdf.Open(path)
	if err != nil {
		return info, fmt.Errorf("failed to open pdf: %w", err)
	}
	defer file.Close()
	info.Pages = reader.NumPage()

	text, err := pageText(reader)
	if err != nil {
		return info, err
	}
	if text == "" {
		return info, fmt.Errorf("%s: %w", info.Name, ErrNoText)
	}
	info.Characters = utf8.RuneCountInString(text)
	info.Chunks = len(Chunk(text))
	return info, nil
}

// pageText assembles the document text the way the backend does before
// chunking: each non-blank page is prefixed with a "--- Page N ---" marker and
// whitespace inside pages is left untouched.
func pageText(reader *pdf.Reader) (string, error) {
	var builder strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to extract text from page %d: %w", i, err)
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		fmt.Fprintf(&builder, "\n--- Page %d ---\n%s\n", i, text)
	}
	return strings.TrimSpace(builder.String()), nil
}

// Read returns the document bytes after Inspect accepts it.
func Read(path string) (Info, []byte, error) {
	info, err := Inspect(path)
	if err != nil {
		return info, nil, err
	}
	data, err := os.ReadFile(info.Path)
	if err != nil {
		return info, nil, err
	}
	return info, data, nil
}

// Chunk splits text into the sections the backend summarizes. Lengths are in
// code points. A window ends on the last "." in its final 200 characters, or
// else on the last space in its final 100. Every window, the last included,
// is followed by one starting ChunkOverlap characters before its end, so a
// short overlap-only section trails when the text runs past that point.
func Chunk(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	runes := []rune(text)
	n := len(runes)
	var chunks []string
	start := 0
	for start < n {
		end := start + ChunkSize
		if end < n {
			if dot := lastIndexRune(runes[start:end], '.'); dot >= 0 && dot > ChunkSize-200 {
				end = start + dot + 1
			} else if space := lastIndexRune(runes[start:end], ' '); space >= 0 && space > ChunkSize-100 {
				end = start + space
			}
		}
		if chunk := strings.TrimSpace(string(runes[start:min(end, n)])); chunk != "" {
			chunks = append(chunks, chunk)
		}
		start = end - ChunkOverlap
	}
	return chunks
}

func lastIndexRune(runes []rune, r rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] == r {
			return i
		}
	}
	return -1
}
