package location

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/rotblauer/pintour/conceptual"
	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

// Field paths, tried in order. Pins arrive from chat bots, the web client,
// and history exports, which do not agree on naming.
var (
	idPaths          = []string{"id", "Id", "ID", "uuid", "UUID"}
	latitudePaths    = []string{"latitude", "Latitude", "lat"}
	longitudePaths   = []string{"longitude", "Longitude", "lng", "lon"}
	descriptionPaths = []string{"description", "Description", "locationName", "name", "Name"}
	servicePaths     = []string{"service", "Service"}
	userRolePaths    = []string{"userRole", "UserRole", "role"}
	timestampPaths   = []string{"timestamp", "Timestamp", "time", "Time", "UnixTime"}
)

func first(res gjson.Result, paths []string) gjson.Result {
	for _, p := range paths {
		if v := res.Get(p); v.Exists() {
			return v
		}
	}
	return gjson.Result{}
}

func decimalOf(v gjson.Result) (decimal.Decimal, error) {
	switch v.Type {
	case gjson.Number:
		return decimal.NewFromString(v.Raw)
	case gjson.String:
		return decimal.NewFromString(v.Str)
	}
	return decimal.Decimal{}, ErrMissingCoordinates
}

// unixMillisThreshold separates epoch seconds from epoch milliseconds.
// 1e12 seconds is tens of thousands of years out; 1e12 millis is 2001.
const unixMillisThreshold = 1e12

func timeOf(v gjson.Result) time.Time {
	switch v.Type {
	case gjson.Number:
		if n := v.Int(); n >= unixMillisThreshold || n <= -unixMillisThreshold {
			return time.UnixMilli(n).UTC()
		}
		return time.Unix(v.Int(), 0).UTC()
	case gjson.String:
		return v.Time()
	}
	return time.Time{}
}

// DecodeRecord decodes a single pin from JSON.
// Plain objects ({"id":..,"latitude":..,"longitude":..}) and
// GeoJSON point features (coordinates + properties) are both accepted.
func DecodeRecord(data []byte) (Record, error) {
	if !gjson.ValidBytes(data) {
		return Record{}, errors.New("invalid json")
	}
	root := gjson.ParseBytes(data)
	props := root
	var lat, lng decimal.Decimal
	var err error

	if coords := root.Get("geometry.coordinates"); coords.IsArray() {
		props = root.Get("properties")
		if lng, err = decimalOf(coords.Get("0")); err != nil {
			return Record{}, fmt.Errorf("longitude: %w", err)
		}
		if lat, err = decimalOf(coords.Get("1")); err != nil {
			return Record{}, fmt.Errorf("latitude: %w", err)
		}
	} else {
		if lat, err = decimalOf(first(root, latitudePaths)); err != nil {
			return Record{}, fmt.Errorf("latitude: %w", err)
		}
		if lng, err = decimalOf(first(root, longitudePaths)); err != nil {
			return Record{}, fmt.Errorf("longitude: %w", err)
		}
	}

	id := first(root, idPaths)
	if !id.Exists() {
		id = first(props, idPaths)
	}
	var rid string
	if id.Type == gjson.Number {
		rid = id.Raw
	} else {
		rid = id.String()
	}

	return Record{
		ID:          conceptual.LocationID(rid),
		Latitude:    lat,
		Longitude:   lng,
		Description: sanitizeDescription(first(props, descriptionPaths).String()),
		Service:     first(props, servicePaths).String(),
		UserRole:    first(props, userRolePaths).String(),
		Timestamp:   timeOf(first(props, timestampPaths)),
	}, nil
}

// DecodeRecords decodes a batch of pins from any of
// a JSON array, a GeoJSON FeatureCollection, or newline-delimited JSON.
// Undecodable elements are skipped; an error is returned only if nothing decodes.
func DecodeRecords(data []byte) ([]Record, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, errors.New("empty input")
	}
	var elements []gjson.Result
	switch {
	case gjson.ValidBytes(data) && gjson.GetBytes(data, "type").String() == "FeatureCollection":
		elements = gjson.GetBytes(data, "features").Array()
	case gjson.ValidBytes(data) && data[0] == '[':
		elements = gjson.ParseBytes(data).Array()
	default:
		sc := bufio.NewScanner(bytes.NewReader(data))
		sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
		for sc.Scan() {
			line := bytes.TrimSpace(sc.Bytes())
			if len(line) == 0 {
				continue
			}
			elements = append(elements, gjson.ParseBytes(append([]byte(nil), line...)))
		}
		if err := sc.Err(); err != nil {
			return nil, err
		}
	}

	out := make([]Record, 0, len(elements))
	var lastErr error
	for _, el := range elements {
		r, err := DecodeRecord([]byte(el.Raw))
		if err != nil {
			lastErr = err
			continue
		}
		out = append(out, r)
	}
	if len(out) == 0 && lastErr != nil {
		return nil, lastErr
	}
	return out, nil
}
