// Package catalog queries a STAC-style search endpoint for Sentinel-2
// products over a region and time window. Results carry the object-store
// locator of each product, ready to hand to the resolve layer.
package catalog

import (
	"encoding/json"
	"fmt"
	"time"
)

// Collection names exposed by the catalog.
const (
	CollectionL1C = "sentinel-2-l1c"
	CollectionL2A = "sentinel-2-l2a"
)

// BBox is a WGS-84 bounding box.
type BBox struct {
	MinLon float64
	MinLat float64
	MaxLon float64
	MaxLat float64
}

// Slice returns the box in the [min lon, min lat, max lon, max lat] order
// used on the wire.
func (b BBox) Slice() [4]float64 {
	return [4]float64{b.MinLon, b.MinLat, b.MaxLon, b.MaxLat}
}

func (b BBox) String() string {
	return fmt.Sprintf("%g,%g,%g,%g", b.MinLon, b.MinLat, b.MaxLon, b.MaxLat)
}

// Query describes one catalog search.
type Query struct {
	Collection string
	BBox       BBox
	Start      time.Time
	End        time.Time
	Limit      int // page size hint; 0 uses the server default
}

// Record is one catalog hit: a single product acquisition.
type Record struct {
	ID        string          `json:"id"`
	Timestamp time.Time       `json:"timestamp"`
	Geometry  json.RawMessage `json:"geometry"`
	DataURI   string          `json:"data_uri"` // s3 locator of the product container
}

// UniqueBBoxes removes repeated boxes, preserving first-seen order. Queries
// over many shapes commonly repeat boxes; deduplicating avoids redundant
// searches.
func UniqueBBoxes(boxes []BBox) []BBox {
	seen := make(map[BBox]struct{}, len(boxes))
	out := make([]BBox, 0, len(boxes))
	for _, b := range boxes {
		if _, ok := seen[b]; ok {
			continue
		}
		seen[b] = struct{}{}
		out = append(out, b)
	}
	return out
}
