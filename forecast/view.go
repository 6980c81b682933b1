package forecast

import (
	"github.com/rprouse/AvalancheForecast/font"
	"github.com/rprouse/AvalancheForecast/pixel"
	"github.com/rprouse/AvalancheForecast/tft"
)

// View renders a forecast as a stack of daily rating cards.
type View struct {
	display *tft.Display
}

// NewView returns a renderer for d.
func NewView(d *tft.Display) *View {
	return &View{display: d}
}

// Draw renders all danger ratings starting at vertical offset y and returns
// the offset below the last card.
func (v *View) Draw(f *Forecast, y int) (int, error) {
	for _, r := range f.Report.DangerRatings {
		var err error
		y, err = v.drawDay(&r, y)
		if err != nil {
			return y, err
		}
	}
	return y, nil
}

// drawDay renders one day: a date heading followed by three band rows.
func (v *View) drawDay(r *DangerRating, y int) (int, error) {
	d := v.display

	d.SetFont(font.Font10x14)
	if err := d.Text(r.Date.Display, 10, y, pixel.White); err != nil {
		return y, err
	}
	d.SetFont(font.Default)

	rows := []struct {
		label string
		color pixel.RGB565
		band  Band
	}{
		{"Alpine", Alpine, r.Ratings.Alpine},
		{"Treeline", Treeline, r.Ratings.Treeline},
		{"Below Treeline", BelowTreeline, r.Ratings.BelowTreeline},
	}
	ry := y + 18
	for _, row := range rows {
		if err := v.drawBand(row.label, row.color, row.band, ry); err != nil {
			return y, err
		}
		ry += 18
	}
	return y + 78, nil
}

// drawBand renders one elevation band row: the band label on its band color
// next to the rating text on the danger scale color.
func (v *View) drawBand(label string, c pixel.RGB565, b Band, y int) error {
	d := v.display

	if err := d.FillRect(10, y, 100, 16, c); err != nil {
		return err
	}
	if err := d.Text(label, 14, y+4, pixel.Black); err != nil {
		return err
	}

	bg, fg := DangerColors(b.Rating.Value)
	if err := d.FillRect(112, y, 100, 16, bg); err != nil {
		return err
	}
	return d.Text(b.Rating.Display, 116, y+4, fg)
}
