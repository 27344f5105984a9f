package webd

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rotblauer/pintour/common"
	"github.com/rotblauer/pintour/testing/testdata"
	"github.com/tidwall/gjson"
)

func TestWebDaemon_ping(t *testing.T) {
	req := httptest.NewRequest("GET", "http://pintour.local/ping", nil)
	w := httptest.NewRecorder()
	pingPong(w, req)
	resp := w.Result()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != 200 {
		t.Fatalf("status code not 200")
	}
	if string(body) != "pong" {
		t.Errorf("body is not pong: %s", string(body))
	}
}

func readFixture(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile(testdata.Path(testdata.Source_Pins))
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func do(t *testing.T, router http.Handler, method, target string, body []byte) (*http.Response, []byte) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	resp := w.Result()
	b, _ := io.ReadAll(resp.Body)
	return resp, b
}

func TestWebDaemon_statusReport(t *testing.T) {
	d, teardown := newTestWebDaemon("")
	defer teardown()
	router := d.NewRouter()

	resp, body := do(t, router, "GET", "http://pintour.local/status", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	status := webDaemonStatus{}
	if err := json.Unmarshal(body, &status); err != nil {
		t.Fatal(err)
	}
	if status.Uptime == "" {
		t.Fatal("uptime is empty")
	}
	if status.Locations != 0 || status.Tour == nil || status.Tour.MaxStops != 15 {
		t.Errorf("status: %s", body)
	}
}

func TestWebDaemon_region(t *testing.T) {
	d, teardown := newTestWebDaemon("")
	defer teardown()
	router := d.NewRouter()

	resp, body := do(t, router, "GET", "http://pintour.local/region?lat=40.7128&lng=-74.0060", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d: %s", resp.StatusCode, body)
	}
	res := gjson.ParseBytes(body)
	if res.Get("code").String() != "NAM-EAST" || res.Get("name").String() != "Eastern North America" {
		t.Errorf("body: %s", body)
	}
	if km := res.Get("distanceKm").Float(); km < 2000 || km > 2100 {
		// New York to Lebanon, KS.
		t.Errorf("distance: %v", km)
	}

	for _, target := range []string{"/region", "/region?lat=91&lng=0", "/region?lat=10&lng=abc"} {
		resp, _ := do(t, router, "GET", "http://pintour.local"+target, nil)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("%s: status %d", target, resp.StatusCode)
		}
	}
}

func TestWebDaemon_populateAndTour(t *testing.T) {
	defer common.SlogResetLevel(slog.LevelWarn)()
	d, teardown := newTestWebDaemon("")
	defer teardown()
	router := d.NewRouter()

	// Empty history: an empty tour, not an error.
	resp, body := do(t, router, "GET", "http://pintour.local/tour", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	if n := gjson.GetBytes(body, "stops.#").Int(); n != 0 {
		t.Errorf("stops: %d", n)
	}

	resp, body = do(t, router, "POST", "http://pintour.local/populate", readFixture(t))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("populate status %d: %s", resp.StatusCode, body)
	}
	if got := gjson.GetBytes(body, "received").Int(); got != 21 {
		t.Errorf("received: %d", got)
	}
	if got := gjson.GetBytes(body, "stored").Int(); got != 17 {
		t.Errorf("stored: %d", got)
	}

	resp, body = do(t, router, "GET", "http://pintour.local/tour", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("tour status %d", resp.StatusCode)
	}
	res := gjson.ParseBytes(body)
	if res.Get("stops.#").Int() != 8 || res.Get("locations").Int() != 17 {
		t.Fatalf("tour: %s", body)
	}
	if got := res.Get("stops.0.description").String(); got != "Central North America (2 viewers)" {
		t.Errorf("first stop: %s", got)
	}

	resp, body = do(t, router, "GET", "http://pintour.local/tour.geojson", nil)
	if resp.StatusCode != http.StatusOK || resp.Header.Get("Content-Type") != "application/geo+json" {
		t.Fatalf("geojson status %d %s", resp.StatusCode, resp.Header.Get("Content-Type"))
	}
	if gjson.GetBytes(body, "type").String() != "FeatureCollection" || gjson.GetBytes(body, "features.#").Int() != 8 {
		t.Errorf("geojson: %s", body)
	}
}

func TestWebDaemon_postTour(t *testing.T) {
	defer common.SlogResetLevel(slog.LevelWarn)()
	d, teardown := newTestWebDaemon("")
	defer teardown()
	router := d.NewRouter()

	body := []byte(`[
		{"id":"a","latitude":40.7128,"longitude":-74.0060,"description":"New York"},
		{"id":"b","latitude":42.3601,"longitude":-71.0589,"description":"Boston"},
		{"id":"c","latitude":35.6762,"longitude":139.6503,"description":"Tokyo"}
	]`)
	resp, got := do(t, router, "POST", "http://pintour.local/tour", body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d: %s", resp.StatusCode, got)
	}
	res := gjson.ParseBytes(got)
	if res.Get("stops.#").Int() != 2 {
		t.Fatalf("tour: %s", got)
	}
	if res.Get("stops.1.description").String() != "Tokyo" || res.Get("stops.1.zoom").Int() != 8 {
		t.Errorf("second stop: %s", res.Get("stops.1").Raw)
	}
	// Ad-hoc tours are not stored.
	if n, _ := d.store.Count(); n != 0 {
		t.Errorf("stored %d", n)
	}

	resp, _ = do(t, router, "POST", "http://pintour.local/tour", []byte("not json"))
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("bad body status %d", resp.StatusCode)
	}
}

func TestWebDaemon_token(t *testing.T) {
	defer common.SlogResetLevel(slog.LevelError)()
	d, teardown := newTestWebDaemon("")
	defer teardown()
	d.Config.Token = "s3cret"
	router := d.NewRouter()

	pin := []byte(`{"id":"a","latitude":40.7128,"longitude":-74.0060}`)
	resp, _ := do(t, router, "POST", "http://pintour.local/populate", pin)
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("no token: status %d", resp.StatusCode)
	}
	resp, _ = do(t, router, "POST", "http://pintour.local/populate?token=s3cret", pin)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("query token: status %d", resp.StatusCode)
	}

	req := httptest.NewRequest("POST", "http://pintour.local/populate", bytes.NewReader(pin))
	req.Header.Set("Authorization", "Bearer s3cret")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("bearer token: status %d", w.Code)
	}

	// Reads are open.
	resp, _ = do(t, router, "GET", "http://pintour.local/tour", nil)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("tour: status %d", resp.StatusCode)
	}
}

func TestWebDaemon_socket(t *testing.T) {
	defer common.SlogResetLevel(slog.LevelWarn)()
	d, teardown := newTestWebDaemon("")
	defer teardown()
	server := httptest.NewServer(d.NewRouter())
	defer server.Close()

	// Generate a tour so there is one to replay.
	resp, err := http.Post(server.URL+"/tour", "application/json",
		strings.NewReader(`[{"id":"s1","latitude":-33.8688,"longitude":151.2093,"description":"Sydney"}]`))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http")+"/socket", nil)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatal(err)
	}
	res := gjson.ParseBytes(msg)
	if res.Get("action").String() != "tour" {
		t.Fatalf("message: %s", msg)
	}
	if res.Get("tour.stops.0.description").String() != "Sydney" {
		t.Errorf("replayed tour: %s", msg)
	}
}
