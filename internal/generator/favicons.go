package generator

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"html"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Favicon artifact names emitted into the output directory.
const (
	FaviconSVGFile   = "favicon.svg"
	FaviconICOFile   = "favicon.ico"
	AppleTouchFile   = "apple-touch-icon.png"
	appleTouchSize   = 180
	faviconRasterDim = 32
)

// writeFavicons renders the favicon set from the first character of the site
// title: an SVG, a 180x180 apple-touch PNG and a 32x32 ICO.
func writeFavicons(title, outputDir string) error {
	initial := siteInitial(title)

	svg := fmt.Sprintf(`<svg viewBox="0 0 100 100" xmlns="http://www.w3.org/2000/svg">
    <circle cx="50" cy="50" r="48" fill="white" stroke="rgba(0,0,0,0.1)" stroke-width="2"/>
    <text x="50%%" y="50%%" dy=".35em" text-anchor="middle" font-family="sans-serif" font-size="100" font-weight="bold" fill="black">%s</text>
</svg>`, html.EscapeString(initial))

	if err := os.WriteFile(filepath.Join(outputDir, FaviconSVGFile), []byte(svg), 0o644); err != nil {
		return fmt.Errorf("generator: write favicon.svg: %w", err)
	}

	touch, err := renderIconPNG(initial, appleTouchSize)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(outputDir, AppleTouchFile), touch, 0o644); err != nil {
		return fmt.Errorf("generator: write apple-touch-icon.png: %w", err)
	}

	small, err := renderIconPNG(initial, faviconRasterDim)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(outputDir, FaviconICOFile), encodeICO(small, faviconRasterDim), 0o644); err != nil {
		return fmt.Errorf("generator: write favicon.ico: %w", err)
	}

	return nil
}

// siteInitial picks the uppercased first rune of the title, falling back to a
// filled circle when the title is empty.
func siteInitial(title string) string {
	for _, r := range title {
		return strings.ToUpper(string(r))
	}
	return "●"
}

// renderIconPNG draws the icon raster: a white disc with a light rim and the
// initial centered in the Go bold face. Glyphs outside letters and digits are
// skipped; the disc alone is the icon then.
func renderIconPNG(initial string, size int) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	center := float64(size) / 2
	radius := float64(size) * 0.48
	rim := math.Max(float64(size)*0.02, 1)

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dist := math.Hypot(float64(x)+0.5-center, float64(y)+0.5-center)
			switch {
			case dist <= radius-rim:
				img.Set(x, y, color.White)
			case dist <= radius:
				img.Set(x, y, color.RGBA{R: 230, G: 230, B: 230, A: 255})
			}
		}
	}

	if r := []rune(initial); len(r) > 0 && (unicode.IsLetter(r[0]) || unicode.IsDigit(r[0])) {
		if err := drawInitial(img, initial, size); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("generator: encode icon png: %w", err)
	}
	return buf.Bytes(), nil
}

func drawInitial(img *image.RGBA, initial string, size int) error {
	parsed, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return fmt.Errorf("generator: parse icon font: %w", err)
	}

	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    float64(size) * 0.72,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return fmt.Errorf("generator: build icon face: %w", err)
	}
	defer face.Close()

	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: face,
	}

	width := drawer.MeasureString(initial)
	metrics := face.Metrics()
	drawer.Dot = fixed.Point26_6{
		X: (fixed.I(size) - width) / 2,
		Y: (fixed.I(size) + metrics.CapHeight) / 2,
	}
	drawer.DrawString(initial)
	return nil
}

// encodeICO wraps an already-encoded PNG in a single-image ICO container.
// Modern browsers accept PNG-compressed entries directly, so no BMP
// conversion is required.
func encodeICO(pngData []byte, size int) []byte {
	dim := uint8(size)
	if size >= 256 {
		dim = 0
	}

	var buf bytes.Buffer
	write := func(v any) { _ = binary.Write(&buf, binary.LittleEndian, v) }

	write(uint16(0)) // reserved
	write(uint16(1)) // image type: icon
	write(uint16(1)) // image count

	buf.WriteByte(dim) // width
	buf.WriteByte(dim) // height
	buf.WriteByte(0)   // palette size
	buf.WriteByte(0)   // reserved
	write(uint16(1))   // color planes
	write(uint16(32))  // bits per pixel
	write(uint32(len(pngData)))
	write(uint32(22)) // data offset: directory header is fixed-size

	buf.Write(pngData)
	return buf.Bytes()
}
