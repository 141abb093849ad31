package content

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ExtractPDF returns the text of every page that has any, joined with newlines
func ExtractPDF(r io.ReaderAt, size int64) (text string, err error) {
	// the pdf reader panics on some malformed documents
	defer func() {
		if rec := recover(); rec != nil {
			text, err = "", fmt.Errorf("pdf reading failed: %v", rec)
		}
	}()

	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return "", fmt.Errorf("pdf reading failed: %w", err)
	}

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			log.Printf("[DEBUG] skip pdf page %d: %v", i, err)
			continue
		}
		if pageText = strings.TrimSpace(pageText); pageText == "" {
			continue
		}
		pages = append(pages, pageText)
	}

	if len(pages) == 0 {
		return "", errors.New("no text extracted from PDF")
	}
	return strings.Join(pages, "\n"), nil
}
