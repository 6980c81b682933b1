// Command img2rgb565 converts an image into the raw big-endian RGB565 format
// that Display.BlitRGB565 streams straight into panel memory.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"

	"github.com/rprouse/AvalancheForecast/pixel"
)

func main() {
	outFlag := flag.String("out", "", "Output file (default: <input>.bin)")
	widthFlag := flag.Int("width", 0, "Scale to width (default: keep)")
	heightFlag := flag.Int("height", 0, "Scale to height (default: keep)")
	rotFlag := flag.Int("rot", 0, "Rotate output by rot*90 degrees clockwise (0-3)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <input image>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}
	if *rotFlag < 0 || *rotFlag > 3 {
		fatal(fmt.Errorf("invalid rotation %d, expected 0-3", *rotFlag))
	}

	input := flag.Arg(0)
	output := *outFlag
	if output == "" {
		output = input + ".bin"
	}

	src, err := decode(input)
	if err != nil {
		fatal(err)
	}

	img := scale(src, *widthFlag, *heightFlag)
	for i := 0; i < *rotFlag; i++ {
		img = rotate90(img)
	}

	if err = write(output, img); err != nil {
		fatal(err)
	}

	size := img.Bounds().Size()
	fmt.Printf("wrote %s: %dx%d, %d bytes\n", output, size.X, size.Y, size.X*size.Y*2)
}

func decode(name string) (image.Image, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	return img, err
}

// scale resizes to width x height. A zero dimension is computed from the
// source aspect ratio; both zero keeps the source size.
func scale(src image.Image, width, height int) image.Image {
	size := src.Bounds().Size()
	if width == 0 && height == 0 {
		return src
	}
	if width == 0 {
		width = size.X * height / size.Y
	}
	if height == 0 {
		height = size.Y * width / size.X
	}
	if width == size.X && height == size.Y {
		return src
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// rotate90 returns src rotated a quarter turn clockwise.
func rotate90(src image.Image) image.Image {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dy(), b.Dx()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dst.Set(b.Max.Y-1-y, x-b.Min.X, src.At(x, y))
		}
	}
	return dst
}

// write emits the pixels row-major, two bytes per pixel, high byte first.
func write(name string, img image.Image) error {
	b := img.Bounds()
	buf := make([]byte, 0, b.Dx()*b.Dy()*2)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			v := pixel.New(uint8(r>>8), uint8(g>>8), uint8(bl>>8))
			buf = append(buf, v.Hi(), v.Lo())
		}
	}
	return os.WriteFile(name, buf, 0o644)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
