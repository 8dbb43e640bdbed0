// Package extract turns special file formats into plain text.
//
// Dispatch is by file extension: PDFs go through a text walk of the
// document, spreadsheets are flattened sheet by sheet, images go through
// an OCR subprocess, and anything else is read raw (with a content sniff
// to catch mis-extensioned images).
package extract

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/ledongthuc/pdf"
	"github.com/xuri/excelize/v2"
)

// ReadSpecialFile extracts text from the file at path. The path must
// exist; parse failures surface as errors rather than partial output.
func ReadSpecialFile(ctx context.Context, path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("file not found: %s", path)
		}
		return "", fmt.Errorf("failed to access %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return readPDF(path)
	case ".xlsx", ".xlsm":
		return readWorkbook(path)
	case ".png", ".jpg", ".jpeg", ".tiff", ".bmp", ".gif":
		return runOCR(ctx, path)
	default:
		return readRaw(ctx, path)
	}
}

// readPDF extracts the plain text of every page.
func readPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to parse PDF %s: %w", path, err)
	}
	defer f.Close()

	text, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract PDF text from %s: %w", path, err)
	}

	var sb strings.Builder
	if _, err := io.Copy(&sb, text); err != nil {
		return "", fmt.Errorf("failed to read PDF text from %s: %w", path, err)
	}
	return sb.String(), nil
}

// readWorkbook flattens every sheet into tab-separated rows.
func readWorkbook(path string) (string, error) {
	wb, err := excelize.OpenFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer wb.Close()

	var sb strings.Builder
	for _, sheet := range wb.GetSheetList() {
		rows, err := wb.GetRows(sheet)
		if err != nil {
			return "", fmt.Errorf("failed to read sheet %q in %s: %w", sheet, path, err)
		}

		sb.WriteString("## " + sheet + "\n")
		for _, row := range rows {
			sb.WriteString(strings.Join(row, "\t"))
			sb.WriteByte('\n')
		}
	}
	return sb.String(), nil
}

// runOCR recognizes text in an image via the tesseract binary.
func runOCR(ctx context.Context, path string) (string, error) {
	out, err := exec.CommandContext(ctx, "tesseract", path, "stdout").CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("ocr failed for %s: %v: %s", path, err, strings.TrimSpace(string(out)))
	}
	return string(out), nil
}

// readRaw returns file contents as-is, routing mis-extensioned images to
// OCR based on a content sniff.
func readRaw(ctx context.Context, path string) (string, error) {
	if mt, err := mimetype.DetectFile(path); err == nil && strings.HasPrefix(mt.String(), "image/") {
		return runOCR(ctx, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}
