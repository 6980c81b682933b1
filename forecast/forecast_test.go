package forecast

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rprouse/AvalancheForecast/pixel"
)

const sampleForecast = `{
  "report": {
    "title": "Sea to Sky",
    "dangerRatings": [
      {
        "date": {"display": "Sat, Jan 11"},
        "ratings": {
          "alp": {"rating": {"value": "considerable", "display": "Considerable"}},
          "tln": {"rating": {"value": "moderate", "display": "Moderate"}},
          "btl": {"rating": {"value": "low", "display": "Low"}}
        }
      },
      {
        "date": {"display": "Sun, Jan 12"},
        "ratings": {
          "alp": {"rating": {"value": "high", "display": "High"}},
          "tln": {"rating": {"value": "considerable", "display": "Considerable"}},
          "btl": {"rating": {"value": "moderate", "display": "Moderate"}}
        }
      }
    ]
  }
}`

func TestPoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/forecasts/en/products/point" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("lat"); got != "49.6825" {
			t.Errorf("lat = %q", got)
		}
		if got := r.URL.Query().Get("long"); got != "-122.93" {
			t.Errorf("long = %q", got)
		}
		w.Write([]byte(sampleForecast))
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL}
	f, err := c.Point(context.Background(), 49.6825, -122.93)
	if err != nil {
		t.Fatal(err)
	}

	if f.Report.Title != "Sea to Sky" {
		t.Errorf("title = %q", f.Report.Title)
	}
	if len(f.Report.DangerRatings) != 2 {
		t.Fatalf("got %d danger ratings, expected 2", len(f.Report.DangerRatings))
	}
	day := f.Report.DangerRatings[0]
	if day.Date.Display != "Sat, Jan 11" {
		t.Errorf("date = %q", day.Date.Display)
	}
	if day.Ratings.Alpine.Rating.Value != "considerable" {
		t.Errorf("alpine = %q", day.Ratings.Alpine.Rating.Value)
	}
	if day.Ratings.BelowTreeline.Rating.Display != "Low" {
		t.Errorf("below treeline = %q", day.Ratings.BelowTreeline.Rating.Display)
	}
}

func TestPointError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL}
	if _, err := c.Point(context.Background(), 0, 0); err == nil {
		t.Fatal("expected error on 502 response")
	}
}

func TestPointBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL}
	if _, err := c.Point(context.Background(), 0, 0); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestDangerColors(t *testing.T) {
	tests := []struct {
		value  string
		bg, fg pixel.RGB565
	}{
		{"low", pixel.New(0x50, 0xB8, 0x48), pixel.Black},
		{"moderate", pixel.New(0xFF, 0xF2, 0x00), pixel.Black},
		{"considerable", pixel.New(0xF7, 0x94, 0x1E), pixel.Black},
		{"high", pixel.New(0xED, 0x1C, 0x24), pixel.Black},
		{"extreme", pixel.New(0x23, 0x1F, 0x20), pixel.White},
		{"norating", gray, pixel.Black},
		{"", gray, pixel.Black},
	}
	for _, tt := range tests {
		bg, fg := DangerColors(tt.value)
		if bg != tt.bg || fg != tt.fg {
			t.Errorf("DangerColors(%q) = %04X/%04X, expected %04X/%04X",
				tt.value, uint16(bg), uint16(fg), uint16(tt.bg), uint16(tt.fg))
		}
	}
}
