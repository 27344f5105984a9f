package location

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/paulmach/orb"
	"github.com/rotblauer/pintour/common"
	"github.com/rotblauer/pintour/conceptual"
	"github.com/shopspring/decimal"
)

// Record is a viewer location pin.
// It is an immutable value; identity is the ID and only the ID.
// Coordinates are decimals so that a pin stored as 40.7128 stays 40.7128,
// they are converted to float64 only for geometry.
type Record struct {
	ID          conceptual.LocationID
	Latitude    decimal.Decimal
	Longitude   decimal.Decimal
	Description string
	Service     string
	UserRole    string
	Timestamp   time.Time
}

// UnknownID is the id of the Unknown sentinel.
const UnknownID conceptual.LocationID = "unknown"

// Unknown is the reserved "we don't know where this viewer is" pin.
// It is never usable for clustering.
var Unknown = Record{
	ID:          UnknownID,
	Description: "Unknown",
}

var (
	ErrMissingCoordinates = errors.New("missing coordinates")
	ErrMissingID          = errors.New("missing id")
)

// NewRecord creates a record from float coordinates,
// rounded to common.GPSPrecision6 decimal places.
func NewRecord(id conceptual.LocationID, lat, lng float64, description string) Record {
	return Record{
		ID:          id,
		Latitude:    decimal.NewFromFloat(lat).Round(common.GPSPrecision6),
		Longitude:   decimal.NewFromFloat(lng).Round(common.GPSPrecision6),
		Description: description,
	}
}

// WithMeta returns a copy of the record with its service, role and time set.
func (r Record) WithMeta(service, role string, ts time.Time) Record {
	r.Service = service
	r.UserRole = role
	r.Timestamp = ts
	return r
}

func (r Record) Lat() float64 {
	return r.Latitude.InexactFloat64()
}

func (r Record) Lng() float64 {
	return r.Longitude.InexactFloat64()
}

// Point returns the record as an orb.Point, which is [lng, lat].
func (r Record) Point() orb.Point {
	return orb.Point{r.Lng(), r.Lat()}
}

// IsUnknown tells if the record is the Unknown sentinel.
func (r Record) IsUnknown() bool {
	return r.ID == UnknownID
}

func (r Record) String() string {
	return fmt.Sprintf("%s(%s,%s)", r.ID, r.Latitude.String(), r.Longitude.String())
}

const ellipsis = "..."

// TruncateDescription cuts s to at most max runes.
// A cut string keeps its first max-3 runes and ends with "...".
func TruncateDescription(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 0 {
		return ""
	}
	if max <= len(ellipsis) {
		return string(runes[:max])
	}
	return string(runes[:max-len(ellipsis)]) + ellipsis
}

type recordJSON struct {
	ID          conceptual.LocationID `json:"id"`
	Latitude    json.Number           `json:"latitude"`
	Longitude   json.Number           `json:"longitude"`
	Description string                `json:"description,omitempty"`
	Service     string                `json:"service,omitempty"`
	UserRole    string                `json:"userRole,omitempty"`
	Timestamp   time.Time             `json:"timestamp"`
}

// MarshalJSON writes coordinates as JSON numbers, exactly as stored.
func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(recordJSON{
		ID:          r.ID,
		Latitude:    json.Number(r.Latitude.String()),
		Longitude:   json.Number(r.Longitude.String()),
		Description: r.Description,
		Service:     r.Service,
		UserRole:    r.UserRole,
		Timestamp:   r.Timestamp,
	})
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// It accepts every shape DecodeRecord accepts.
func (r *Record) UnmarshalJSON(data []byte) error {
	rec, err := DecodeRecord(data)
	if err != nil {
		return err
	}
	*r = rec
	return nil
}

// Equal compares records by identity.
func (r Record) Equal(other Record) bool {
	return r.ID == other.ID
}

func sanitizeDescription(s string) string {
	return strings.TrimSpace(s)
}
