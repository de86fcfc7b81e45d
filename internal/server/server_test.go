package server

import (
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/maax3v3/hexrgb/internal/pipeline"
	"github.com/maax3v3/hexrgb/internal/swatch"
)

func newTestServer(t *testing.T, cfg Config) *httptest.Server {
	t.Helper()
	runner := &pipeline.Runner{Cache: swatch.New(t.TempDir(), swatch.WithSize(4))}
	srv := httptest.NewServer(NewRouter(runner, cfg))
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, rawURL string) Response {
	t.Helper()
	resp, err := http.Get(rawURL)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status: got %d", resp.StatusCode)
	}
	var body Response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	return body
}

func TestQuery_HexToRGB(t *testing.T) {
	srv := newTestServer(t, Config{})

	body := getJSON(t, srv.URL+"/v1/hex2rgb?q="+url.QueryEscape("#ff0080"))
	if body.Direction != "hex2rgb" {
		t.Errorf("direction: got %q", body.Direction)
	}
	if len(body.Results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(body.Results))
	}
	if body.Results[0].Copy != "RGB(255, 0, 128)" {
		t.Errorf("primary: got %q", body.Results[0].Copy)
	}
	icon := body.Results[0].IcoPath
	if icon != "/swatches/color_255_0_128.png" {
		t.Fatalf("icon: got %q", icon)
	}

	resp, err := http.Get(srv.URL + icon)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("swatch status: got %d", resp.StatusCode)
	}
	img, err := png.Decode(resp.Body)
	if err != nil {
		t.Fatalf("swatch is not a PNG: %v", err)
	}
	if img.Bounds().Dx() != 4 {
		t.Errorf("swatch width: got %d", img.Bounds().Dx())
	}
}

func TestQuery_RGBToHexFailureUsesDefaultIcon(t *testing.T) {
	srv := newTestServer(t, Config{})

	body := getJSON(t, srv.URL+"/v1/rgb?q="+url.QueryEscape("300,0,0"))
	if len(body.Results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(body.Results))
	}
	if body.Results[0].IcoPath != swatch.DefaultIcon {
		t.Errorf("icon: got %q", body.Results[0].IcoPath)
	}
	if body.Results[0].Copy != "" {
		t.Errorf("failure result must not carry a value, got %q", body.Results[0].Copy)
	}
}

func TestRoutes_NotFound(t *testing.T) {
	srv := newTestServer(t, Config{})
	for _, path := range []string{
		"/v1/hsl?q=1",
		"/swatches/passwd",
		"/swatches/color_1_2_3.png",
	} {
		resp, err := http.Get(srv.URL + path)
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("%s: got %d, want 404", path, resp.StatusCode)
		}
	}
}

func TestRateLimit(t *testing.T) {
	srv := newTestServer(t, Config{RateLimit: 0.001, Burst: 1})

	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		resp, err := http.Get(srv.URL + "/v1/rgb?q=1,2,3")
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		codes = append(codes, resp.StatusCode)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusTooManyRequests {
		t.Errorf("status codes: got %v, want [200 429]", codes)
	}

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("healthz must not be rate limited, got %d", resp.StatusCode)
	}
}

func TestIconURL(t *testing.T) {
	dir := "/tmp/previews"
	tests := []struct {
		in, want string
	}{
		{"/tmp/previews/color_1_2_3.png", "/swatches/color_1_2_3.png"},
		{"/tmp/previews/color_1_2_3_128.png", "/swatches/color_1_2_3_128.png"},
		{swatch.DefaultIcon, swatch.DefaultIcon},
		{"/elsewhere/color_1_2_3.png", "/elsewhere/color_1_2_3.png"},
	}
	for _, tt := range tests {
		if got := iconURL(dir, tt.in); got != tt.want {
			t.Errorf("iconURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
