package pdf

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/custodia-labs/lexaudit-cli/internal/core/domain"
	"github.com/custodia-labs/lexaudit-cli/internal/core/ports/driven"
)

// DefaultOCRDPI is the rasterisation resolution for OCR.
const DefaultOCRDPI = 300

// OCR re-extracts a PDF by rasterising each page with pdftoppm and
// running tesseract over the images, one segment per page.
type OCR struct {
	runner driven.CommandRunner
	dpi    int
}

// NewOCR creates an OCR fallback. A dpi of 0 uses the default.
func NewOCR(runner driven.CommandRunner, dpi int) *OCR {
	if runner == nil {
		runner = ExecRunner{}
	}
	if dpi <= 0 {
		dpi = DefaultOCRDPI
	}
	return &OCR{runner: runner, dpi: dpi}
}

// CheckOCRAvailable verifies the OCR toolchain is installed.
// Called once at startup; absence disables the fallback.
func CheckOCRAvailable() error {
	for _, tool := range []string{"pdftoppm", "tesseract"} {
		if _, err := exec.LookPath(tool); err != nil {
			return fmt.Errorf("%w: %s not found in PATH", domain.ErrOCRUnavailable, tool)
		}
	}
	return nil
}

// Extract rasterises the PDF and OCRs every page, emitting one segment
// per page with a 1-based page number.
func (o *OCR) Extract(ctx context.Context, pdfPath string) ([]domain.Segment, error) {
	tmpDir, err := os.MkdirTemp("", "lexaudit-ocr-")
	if err != nil {
		return nil, fmt.Errorf("create OCR temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	prefix := filepath.Join(tmpDir, "page")
	if _, err := o.runner.Run(ctx, "pdftoppm", "-r", strconv.Itoa(o.dpi), "-png", pdfPath, prefix); err != nil {
		return nil, fmt.Errorf("pdftoppm failed: %w", err)
	}

	images, err := filepath.Glob(prefix + "-*.png")
	if err != nil || len(images) == 0 {
		return nil, fmt.Errorf("%w: %s rasterised to no pages", domain.ErrExtraction, pdfPath)
	}
	sortByPageNumber(images)

	segments := make([]domain.Segment, 0, len(images))
	usable := 0
	for i, img := range images {
		out, err := o.runner.Run(ctx, "tesseract", img, "stdout")
		if err != nil {
			return nil, fmt.Errorf("tesseract failed on page %d: %w", i+1, err)
		}
		text := string(out)
		if strings.TrimSpace(text) != "" {
			usable++
		}
		segments = append(segments, domain.Segment{
			Text:   text,
			Source: pdfPath,
			Page:   i + 1,
		})
	}

	if usable == 0 {
		return nil, fmt.Errorf("%w: OCR found no text in %s", domain.ErrExtraction, pdfPath)
	}
	return segments, nil
}

// sortByPageNumber orders pdftoppm output files by their numeric page
// suffix. Lexical order misplaces page-10 before page-2 when padding
// widths differ across runs.
func sortByPageNumber(images []string) {
	sort.Slice(images, func(i, j int) bool {
		return pageNumber(images[i]) < pageNumber(images[j])
	})
}

func pageNumber(path string) int {
	base := strings.TrimSuffix(filepath.Base(path), ".png")
	idx := strings.LastIndex(base, "-")
	if idx < 0 {
		return 0
	}
	n, err := strconv.Atoi(base[idx+1:])
	if err != nil {
		return 0
	}
	return n
}
