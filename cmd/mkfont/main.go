// Command mkfont bakes a TrueType font into the packed column-major bitmap
// table format used by the font package, emitted as Go source.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"image"
	"os"
	"strings"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

const (
	firstChar = ' '
	charCount = 96 // printable ASCII, space through tilde
)

func main() {
	nameFlag := flag.String("name", "", "Font name (default: derived from size)")
	sizeFlag := flag.Float64("size", 14, "Point size at 72 DPI")
	pkgFlag := flag.String("pkg", "font", "Package name for the generated source")
	outFlag := flag.String("out", "", "Output file (default: stdout)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <font.ttf>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fatal(err)
	}
	ttf, err := truetype.Parse(data)
	if err != nil {
		fatal(err)
	}

	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    *sizeFlag,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	name := *nameFlag
	if name == "" {
		name = fmt.Sprintf("tt%d", int(*sizeFlag))
	}

	widths, bits, height := bake(face)

	src, err := render(*pkgFlag, name, height, widths, bits)
	if err != nil {
		fatal(err)
	}

	if *outFlag == "" {
		os.Stdout.Write(src)
		return
	}
	if err = os.WriteFile(*outFlag, src, 0o644); err != nil {
		fatal(err)
	}
}

// bake rasterizes every glyph onto a grayscale strip and packs it into
// column-major bytes, bit 0 at the top row.
func bake(face font.Face) (widths, bits []byte, height int) {
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	height = ascent + metrics.Descent.Ceil()
	bpc := (height + 7) / 8

	for ch := firstChar; ch < firstChar+charCount; ch++ {
		advance, ok := face.GlyphAdvance(rune(ch))
		if !ok {
			advance, _ = face.GlyphAdvance(' ')
		}
		width := advance.Ceil()
		widths = append(widths, byte(width))

		img := image.NewGray(image.Rect(0, 0, width, height))
		d := font.Drawer{
			Dst:  img,
			Src:  image.White,
			Face: face,
			Dot:  fixed.P(0, ascent),
		}
		d.DrawString(string(rune(ch)))

		for col := 0; col < width; col++ {
			packed := make([]byte, bpc)
			for row := 0; row < height; row++ {
				if img.GrayAt(col, row).Y > 127 {
					packed[row/8] |= 1 << uint(row%8)
				}
			}
			bits = append(bits, packed...)
		}
	}
	return widths, bits, height
}

// render emits the baked tables as gofmt'ed Go source.
func render(pkg, name string, height int, widths, bits []byte) ([]byte, error) {
	ident := strings.ToUpper(name[:1]) + name[1:]

	var b bytes.Buffer
	fmt.Fprintf(&b, "// Code generated by mkfont; DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	fmt.Fprintf(&b, "// %s is a %d pixel high variable-width font.\n", ident, height)
	fmt.Fprintf(&b, "var %s = New(%q, %d, %q,\n", ident, name, height, firstChar)
	fmt.Fprintf(&b, "\t[]byte{")
	for i, w := range widths {
		if i%16 == 0 {
			fmt.Fprintf(&b, "\n\t\t")
		}
		fmt.Fprintf(&b, "%d, ", w)
	}
	fmt.Fprintf(&b, "\n\t},\n\t[]byte{")
	for i, v := range bits {
		if i%12 == 0 {
			fmt.Fprintf(&b, "\n\t\t")
		}
		fmt.Fprintf(&b, "0x%02X, ", v)
	}
	fmt.Fprintf(&b, "\n\t})\n")

	return format.Source(b.Bytes())
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
