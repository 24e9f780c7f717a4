package uploads

import (
	"bytes"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Candidate is a file proposed for upload, before validation.
type Candidate struct {
	Filename    string
	ContentType string
	Size        int64
	Data        []byte
	PageCount   *int
}

// ReadCandidate loads a file from disk and determines its media type from
// the extension, sniffing the content when the extension is unknown.
func ReadCandidate(path string) (Candidate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Candidate{}, fmt.Errorf("read %s: %w", path, err)
	}

	return Candidate{
		Filename:    filepath.Base(path),
		ContentType: detectContentType(path, data),
		Size:        int64(len(data)),
		Data:        data,
	}, nil
}

// extensionTypes covers the document formats the service accepts; the
// platform mime table does not register the Word extensions everywhere.
var extensionTypes = map[string]string{
	".pdf":  "application/pdf",
	".txt":  "text/plain",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

func detectContentType(path string, data []byte) string {
	ext := strings.ToLower(filepath.Ext(path))
	if mt, ok := extensionTypes[ext]; ok {
		return mt
	}

	if mt := mime.TypeByExtension(ext); mt != "" {
		if media, _, err := mime.ParseMediaType(mt); err == nil {
			return media
		}
	}

	sniffed := http.DetectContentType(data)
	if media, _, err := mime.ParseMediaType(sniffed); err == nil {
		return media
	}
	return sniffed
}

// pdfPageCount extracts the page count of a PDF payload. The count is
// informational queue metadata; extraction failures leave it unset.
func pdfPageCount(data []byte) (*int, error) {
	count, err := api.PageCount(bytes.NewReader(data), model.NewDefaultConfiguration())
	if err != nil {
		return nil, err
	}
	return &count, nil
}

// isPDF reports whether the candidate declares a PDF media type.
func (c Candidate) isPDF() bool {
	return strings.EqualFold(c.ContentType, "application/pdf")
}
