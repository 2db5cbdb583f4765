package validation

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// CountPDFPages returns the number of pages in an in-memory PDF.
func CountPDFPages(data []byte) (count int, err error) {
	if len(data) == 0 {
		return 0, &Error{Message: "empty PDF"}
	}

	defer func() {
		if rec := recover(); rec != nil {
			count, err = 0, &Error{Message: "malformed PDF", Cause: fmt.Errorf("%v", rec)}
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0, &Error{Message: "failed to open PDF", Cause: err}
	}
	return r.NumPage(), nil
}

// CheckPageLimit fails with a *PageLimitError when data has more than maxPages pages.
// A maxPages of zero or less disables the check.
func CheckPageLimit(data []byte, maxPages int) error {
	if maxPages <= 0 {
		return nil
	}
	pages, err := CountPDFPages(data)
	if err != nil {
		return err
	}
	if pages > maxPages {
		return &PageLimitError{Pages: pages, Max: maxPages}
	}
	return nil
}
