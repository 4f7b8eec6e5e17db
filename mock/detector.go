package mock

import "github.com/fwojciec/catalog"

var _ catalog.LayoutDetector = (*LayoutDetector)(nil)

// LayoutDetector is a mock implementation of catalog.LayoutDetector.
type LayoutDetector struct {
	DetectFn func(html string) string
}

func (d *LayoutDetector) Detect(html string) string {
	return d.DetectFn(html)
}
