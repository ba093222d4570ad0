package slidespdf

import (
	"bytes"
	"errors"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Assemble builds a PDF document with one page per captured slide, in
// input order. Each page takes the pixel dimensions of its image, so
// the original aspect ratio is preserved.
func Assemble(images []SlideImage) (*Result, error) {
	if len(images) == 0 {
		return nil, &AssemblyError{Err: errors.New("no slide images")}
	}

	readers := make([]io.Reader, len(images))
	for i, img := range images {
		readers[i] = bytes.NewReader(img.PNG)
	}

	var buf bytes.Buffer
	if err := api.ImportImages(nil, &buf, readers, nil, nil); err != nil {
		return nil, &AssemblyError{Err: err}
	}
	return &Result{data: buf.Bytes(), slides: len(images)}, nil
}
