package generator

import (
	"bytes"
	"encoding/binary"
	"image/png"
	"testing"
)

func TestSiteInitial(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"my blog", "M"},
		{"ángulo", "Á"},
		{"日記", "日"},
		{"", "●"},
	}
	for _, tc := range cases {
		if got := siteInitial(tc.title); got != tc.want {
			t.Fatalf("siteInitial(%q): expected %q, got %q", tc.title, tc.want, got)
		}
	}
}

func TestRenderIconPNG(t *testing.T) {
	data, err := renderIconPNG("M", 32)
	if err != nil {
		t.Fatalf("renderIconPNG: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 32 || bounds.Dy() != 32 {
		t.Fatalf("expected 32x32 raster, got %dx%d", bounds.Dx(), bounds.Dy())
	}

	// Center of the disc must be opaque, the corners transparent.
	if _, _, _, a := img.At(16, 16).RGBA(); a == 0 {
		t.Fatalf("expected an opaque disc center")
	}
	if _, _, _, a := img.At(0, 0).RGBA(); a != 0 {
		t.Fatalf("expected transparent corners")
	}
}

func TestRenderIconPNG_NonLetterInitial(t *testing.T) {
	data, err := renderIconPNG("●", 32)
	if err != nil {
		t.Fatalf("renderIconPNG: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(data)); err != nil {
		t.Fatalf("decode png: %v", err)
	}
}

func TestEncodeICO(t *testing.T) {
	payload := []byte("png-bytes")
	data := encodeICO(payload, 32)

	if len(data) != 22+len(payload) {
		t.Fatalf("expected 22 byte header plus payload, got %d bytes", len(data))
	}
	if typ := binary.LittleEndian.Uint16(data[2:4]); typ != 1 {
		t.Fatalf("expected icon resource type 1, got %d", typ)
	}
	if count := binary.LittleEndian.Uint16(data[4:6]); count != 1 {
		t.Fatalf("expected a single image entry, got %d", count)
	}
	if data[6] != 32 || data[7] != 32 {
		t.Fatalf("expected 32x32 dimensions, got %dx%d", data[6], data[7])
	}
	if size := binary.LittleEndian.Uint32(data[14:18]); size != uint32(len(payload)) {
		t.Fatalf("expected payload size %d, got %d", len(payload), size)
	}
	if offset := binary.LittleEndian.Uint32(data[18:22]); offset != 22 {
		t.Fatalf("expected payload offset 22, got %d", offset)
	}
	if !bytes.Equal(data[22:], payload) {
		t.Fatalf("expected payload appended verbatim")
	}
}
