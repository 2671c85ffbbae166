package figure

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgeps"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

var formats = map[string]bool{
	".svg": true, ".pdf": true, ".eps": true,
	".png": true, ".jpg": true, ".jpeg": true, ".tif": true, ".tiff": true,
}

// Supported reports whether Export can write files with extension ext.
func Supported(ext string) bool { return formats[strings.ToLower(ext)] }

type canvas interface {
	vg.CanvasSizer
	io.WriterTo
}

func (f *Figure) canvasFor(ext string) (canvas, error) {
	w, h := f.RC.size()
	switch strings.ToLower(ext) {
	case ".svg":
		return vgsvg.NewWith(vgsvg.UseWH(w, h), vgsvg.EmbedFonts(f.RC.EmbedFonts)), nil
	case ".pdf":
		c := vgpdf.New(w, h)
		c.EmbedFonts(f.RC.EmbedFonts)
		return c, nil
	case ".eps":
		return vgeps.New(w, h), nil
	case ".png":
		return vgimg.PngCanvas{Canvas: f.rasterCanvas(w, h)}, nil
	case ".jpg", ".jpeg":
		return vgimg.JpegCanvas{Canvas: f.rasterCanvas(w, h)}, nil
	case ".tif", ".tiff":
		return vgimg.TiffCanvas{Canvas: f.rasterCanvas(w, h)}, nil
	default:
		return nil, fmt.Errorf("figure: unsupported output format %q", ext)
	}
}

func (f *Figure) rasterCanvas(w, h vg.Length) *vgimg.Canvas {
	return vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(f.RC.DPI))
}

// WriteFormat draws the figure in the format named by ext (".svg", ".png", ...)
// and writes it to w.
func (f *Figure) WriteFormat(w io.Writer, ext string) error {
	c, err := f.canvasFor(ext)
	if err != nil {
		return err
	}
	f.Plot().Draw(draw.New(c))
	if _, err := c.WriteTo(w); err != nil {
		return fmt.Errorf("figure: write %s: %w", ext, err)
	}
	return nil
}

// Export writes the figure to path, choosing the format from the extension.
func (f *Figure) Export(path string) error {
	ext := filepath.Ext(path)
	if !Supported(ext) {
		return fmt.Errorf("figure: unsupported output format %q", ext)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("figure: create %q: %w", path, err)
	}
	if err := f.WriteFormat(out, ext); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("figure: close %q: %w", path, err)
	}
	return nil
}
