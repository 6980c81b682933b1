// Command forecast-display shows the Avalanche Canada danger ratings for a
// location on a SPI TFT panel and refreshes them periodically.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/beevik/ntp"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/rprouse/AvalancheForecast/forecast"
	"github.com/rprouse/AvalancheForecast/pixel"
	"github.com/rprouse/AvalancheForecast/tft"
)

func main() {
	driverFlag := flag.String("driver", "ili9341", "Display driver (ili9341, st7796s)")
	widthFlag := flag.Int("width", 0, "Display width")
	heightFlag := flag.Int("height", 0, "Display height")
	spiBusFlag := flag.Int("spi-bus", 0, "SPI bus")
	spiDeviceFlag := flag.Int("spi-dev", 0, "SPI device")
	speedFlag := flag.Uint("speed", 0, "SPI speed in Hz (default: 40MHz)")
	resetPinFlag := flag.String("reset", "GPIO25", "Reset GPIO pin")
	dcPinFlag := flag.String("dc", "GPIO24", "Data/Command GPIO pin (DC)")
	cePinFlag := flag.String("ce", "GPIO8", "Chip enable GPIO pin")
	blPinFlag := flag.String("bl", "GPIO19", "Backlight GPIO pin")
	rotateFlag := flag.String("rotate", "90", "Display rotation")
	bgrFlag := flag.Bool("bgr", false, "Panel uses BGR subpixel order")
	invertFlag := flag.Bool("invert", false, "Panel needs display inversion")
	latFlag := flag.Float64("lat", 49.6825, "Forecast latitude")
	lonFlag := flag.Float64("lon", -122.9310, "Forecast longitude")
	ntpFlag := flag.String("ntp", "pool.ntp.org", "NTP server for the clock line (empty: use system time)")
	refreshFlag := flag.Duration("refresh", time.Hour, "Forecast refresh interval")
	flag.Parse()

	var rotation tft.Rotation
	switch *rotateFlag {
	case "", "no", "0":
		rotation = tft.NoRotation
	case "90", "right", "cw":
		rotation = tft.Rotate90
	case "180", "flip":
		rotation = tft.Rotate180
	case "270", "left", "ccw":
		rotation = tft.Rotate270
	default:
		fatal(fmt.Errorf("invalid rotation %q specified", *rotateFlag))
	}

	if _, err := host.Init(); err != nil {
		fatal(err)
	}

	conn, err := tft.OpenSPI(&tft.SPIConfig{
		Bus:     *spiBusFlag,
		Device:  *spiDeviceFlag,
		SpeedHz: uint32(*speedFlag),
		Reset:   gpioreg.ByName(*resetPinFlag),
		DC:      gpioreg.ByName(*dcPinFlag),
		CE:      gpioreg.ByName(*cePinFlag),
	})
	if err != nil {
		fatal(err)
	}
	fmt.Printf("using connection: %s\n", conn)

	config := &tft.Config{
		Width:     *widthFlag,
		Height:    *heightFlag,
		Rotation:  rotation,
		BGR:       *bgrFlag,
		Invert:    *invertFlag,
		Backlight: gpioreg.ByName(*blPinFlag),
	}

	var output *tft.Display
	switch driver := strings.ToLower(*driverFlag); driver {
	case "ili9341":
		output, err = tft.ILI9341(conn, config)
	case "st7796s":
		output, err = tft.ST7796S(conn, config)
	default:
		err = fmt.Errorf("unsupported driver %q", driver)
	}
	if err != nil {
		fatal(err)
	}
	defer output.Close()
	fmt.Printf("using driver: %s\n", output)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, output, *latFlag, *lonFlag, *ntpFlag, *refreshFlag); err != nil && ctx.Err() == nil {
		fatal(err)
	}

	_ = output.Erase()
	_ = output.Text("Done.", 10, 10, pixel.White)
}

func run(ctx context.Context, d *tft.Display, lat, lon float64, ntpServer string, refresh time.Duration) error {
	client := &forecast.Client{}
	view := forecast.NewView(d)

	ticker := time.NewTicker(refresh)
	defer ticker.Stop()

	for {
		if err := update(ctx, d, view, client, lat, lon, ntpServer); err != nil {
			// Network hiccups should not kill a wall-mounted display;
			// show the error and retry on the next tick.
			fmt.Fprintln(os.Stderr, "update failed:", err)
			_ = d.Text("Update failed, retrying...", 10, d.Height()-12, pixel.White)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func update(ctx context.Context, d *tft.Display, view *forecast.View, client *forecast.Client, lat, lon float64, ntpServer string) error {
	if err := d.Erase(); err != nil {
		return err
	}
	if err := d.Text("Fetching forecast...", 10, 10, pixel.White); err != nil {
		return err
	}

	now := time.Now()
	if ntpServer != "" {
		if t, err := ntp.Time(ntpServer); err == nil {
			now = t.Local()
		} else {
			fmt.Fprintln(os.Stderr, "ntp failed:", err)
		}
	}

	fctx, cancel := context.WithTimeout(ctx, forecast.Timeout)
	defer cancel()
	f, err := client.Point(fctx, lat, lon)
	if err != nil {
		return err
	}

	if err = d.Erase(); err != nil {
		return err
	}
	if err = d.Text(now.Format("Updated Mon 15:04"), 10, d.Height()-12, pixel.White); err != nil {
		return err
	}
	_, err = view.Draw(f, 10)
	return err
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
