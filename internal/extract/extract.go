// Package extract turns uploaded study material into prompt-ready text
// or image payloads. Text files are read directly, PDFs go through the
// ledongthuc/pdf plain-text reader, and images are sniffed and passed
// through untouched for multimodal providers.
package extract

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/wcfjeffrey/jeffreywoo-study-ai-model/internal/providers"
	"github.com/wcfjeffrey/jeffreywoo-study-ai-model/internal/util"
)

const minTextRunes = 10

var (
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrNoText          = errors.New("no extractable text")
	ErrTooShort        = errors.New("extracted text too short")
)

// Result holds exactly one of Text or Image.
type Result struct {
	Text  string
	Image *providers.ImageData
}

// FromFile extracts material from a file on disk. budget caps the text
// length in runes; oversized uploads are truncated, not rejected.
func FromFile(path string, budget int) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("read upload: %w", err)
	}
	return FromBytes(filepath.Base(path), data, budget)
}

// FromBytes extracts material from an in-memory upload. The filename's
// extension picks the decoder; unknown extensions fall back to content
// sniffing so pasted files without extensions still work.
func FromBytes(name string, data []byte, budget int) (Result, error) {
	if len(data) == 0 {
		return Result{}, ErrNoText
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt", ".md", ".markdown":
		return textResult(string(data), budget)
	case ".pdf":
		return pdfResult(data, budget)
	}

	mime := http.DetectContentType(data)
	switch {
	case strings.HasPrefix(mime, "image/"):
		return Result{Image: &providers.ImageData{Data: data, MIMEType: mime}}, nil
	case mime == "application/pdf":
		return pdfResult(data, budget)
	case strings.HasPrefix(mime, "text/"):
		return textResult(string(data), budget)
	}
	return Result{}, fmt.Errorf("%w: %s", ErrUnsupportedType, mime)
}

func textResult(raw string, budget int) (Result, error) {
	text := util.SanitizeText(raw)
	if text == "" {
		return Result{}, ErrNoText
	}
	if len([]rune(text)) < minTextRunes {
		return Result{}, ErrTooShort
	}
	return Result{Text: util.TruncateRunes(text, budget)}, nil
}

func pdfResult(data []byte, budget int) (Result, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Result{}, fmt.Errorf("open pdf: %w", err)
	}
	reader, err := r.GetPlainText()
	if err != nil {
		return Result{}, fmt.Errorf("extract pdf text: %w", err)
	}
	buf := new(strings.Builder)
	if _, err := io.Copy(buf, reader); err != nil {
		return Result{}, fmt.Errorf("read extracted text: %w", err)
	}
	return textResult(buf.String(), budget)
}
