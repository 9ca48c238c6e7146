package chart

import (
	"fmt"

	"github.com/ytget/hr-diagram/internal/hrd"
	"github.com/ytget/hr-diagram/internal/platform"
)

// ExportPrefix starts every exported chart file name
const ExportPrefix = "hr_diagram_"

// FileName returns the export file name for a figure
func FileName(fig *hrd.Figure, format Format) string {
	return ExportPrefix + fig.Metallicity.String() + format.Extension()
}

// Export writes every figure of the pass into dir and returns the written
// paths in figure order. It stops at the first failure.
func Export(out hrd.Output, dir string, format Format, opts Options) ([]string, error) {
	figs := out.Figures()
	if len(figs) == 0 {
		return nil, fmt.Errorf("pass %s has no charts to export", out.PassID)
	}

	paths := make([]string, 0, len(figs))
	for _, fig := range figs {
		data, err := Render(fig, opts, format)
		if err != nil {
			return paths, fmt.Errorf("chart for metallicity %s: %w", fig.Metallicity, err)
		}
		path, err := platform.WriteFile(dir, FileName(fig, format), data)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
