package forecast

import (
	"testing"

	"github.com/rprouse/AvalancheForecast/tft"
	"github.com/rprouse/AvalancheForecast/tft/tfttest"
)

func oneDayForecast() *Forecast {
	return &Forecast{
		Report: Report{
			Title: "Sea to Sky",
			DangerRatings: []DangerRating{
				{
					Date: DisplayDate{Display: "Sat, Jan 11"},
					Ratings: BandRatings{
						Alpine:        Band{Rating{Value: "high", Display: "High"}},
						Treeline:      Band{Rating{Value: "moderate", Display: "Moderate"}},
						BelowTreeline: Band{Rating{Value: "low", Display: "Low"}},
					},
				},
			},
		},
	}
}

func TestViewDraw(t *testing.T) {
	rc := &tfttest.RecordConn{}
	d, err := tft.ILI9341(rc, nil)
	if err != nil {
		t.Fatal(err)
	}
	rc.Ops = nil

	v := NewView(d)
	y, err := v.Draw(oneDayForecast(), 10)
	if err != nil {
		t.Fatal(err)
	}
	if y != 88 {
		t.Errorf("next offset = %d, expected 88", y)
	}

	// One day means six color bars (three band labels, three ratings), each
	// a windowed fill, plus the per-pixel text writes.
	var ramwr int
	for _, c := range rc.Commands() {
		if c == 0x2C {
			ramwr++
		}
	}
	if ramwr < 6 {
		t.Errorf("got %d memory writes, expected at least 6", ramwr)
	}
	if rc.DataLen() == 0 {
		t.Error("no pixel data written")
	}
}

func TestViewDrawTwoDaysStack(t *testing.T) {
	rc := &tfttest.RecordConn{}
	d, err := tft.ILI9341(rc, nil)
	if err != nil {
		t.Fatal(err)
	}

	f := oneDayForecast()
	f.Report.DangerRatings = append(f.Report.DangerRatings, DangerRating{
		Date: DisplayDate{Display: "Sun, Jan 12"},
		Ratings: BandRatings{
			Alpine:        Band{Rating{Value: "extreme", Display: "Extreme"}},
			Treeline:      Band{Rating{Value: "high", Display: "High"}},
			BelowTreeline: Band{Rating{Value: "considerable", Display: "Considerable"}},
		},
	})

	y, err := NewView(d).Draw(f, 0)
	if err != nil {
		t.Fatal(err)
	}
	if y != 156 {
		t.Errorf("next offset = %d, expected 156", y)
	}
}
