package seq_plot

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"fasta_buddy_go/tools/seq_stats"
)

// FileName is the SVG written next to <id>.fasta
func FileName(dir, id string) string {
	name := id + "_composition.svg"
	if dir == "" {
		return name
	}
	return filepath.Join(dir, name)
}

// CompositionBarChart renders the A/C/G/T percentages of comp as an SVG bar chart
func CompositionBarChart(w io.Writer, title string, comp seq_stats.Composition) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Nucleotide"
	p.Y.Label.Text = "Content (%)"
	p.Y.Min = 0
	p.Y.Max = 100
	p.Add(plotter.NewGrid())

	values := make(plotter.Values, len(seq_stats.Symbols))
	names := make([]string, len(seq_stats.Symbols))
	for i, sym := range seq_stats.Symbols {
		values[i] = comp.Percent[i]
		names[i] = string(sym)
	}

	bars, err := plotter.NewBarChart(values, vg.Points(40))
	if err != nil {
		return err
	}
	bars.Color = color.RGBA{R: 50, G: 100, B: 200, A: 255}
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX(names...)

	gcLine, err := plotter.NewLine(plotter.XYs{{X: -0.5, Y: comp.GC}, {X: 3.5, Y: comp.GC}})
	if err != nil {
		return err
	}
	gcLine.Color = color.RGBA{R: 255, G: 100, B: 100, A: 255}
	gcLine.Width = vg.Points(2)
	gcLine.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	p.Add(gcLine)
	p.Legend.Add(fmt.Sprintf("%%CG %.1f", comp.GC), gcLine)
	p.Legend.Top = true

	writer, err := p.WriterTo(5*vg.Inch, 4*vg.Inch, "svg")
	if err != nil {
		return err
	}
	_, err = writer.WriteTo(w)
	return err
}

// SaveComposition writes the chart for comp to path, replacing any previous chart
func SaveComposition(path, title string, comp seq_stats.Composition) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create plot file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close plot file: %w", cerr)
		}
	}()

	if err := CompositionBarChart(f, title, comp); err != nil {
		return fmt.Errorf("failed to render plot: %w", err)
	}
	return nil
}
