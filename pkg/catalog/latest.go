package catalog

import (
	"github.com/sirupsen/logrus"

	"github.com/glorpus-work/eofetch/pkg/logger"
	"github.com/glorpus-work/eofetch/pkg/safename"
)

// LatestBaseline collapses reprocessed renditions of the same acquisition.
// Records are grouped by (tile, sensing start) and only the record with the
// highest processing baseline survives per group. Records whose ID does not
// parse as a product identifier pass through untouched. Input order of the
// surviving records is preserved.
func LatestBaseline(records []Record) []Record {
	type slot struct {
		index    int
		baseline *safename.ProductID
	}
	best := make(map[[2]string]slot)
	keep := make([]bool, len(records))

	for i, r := range records {
		id, err := safename.ParseProductID(r.ID)
		if err != nil {
			logger.Debug("record id is not a compact product identifier, keeping as-is",
				logrus.Fields{"id": r.ID})
			keep[i] = true
			continue
		}
		key := [2]string{id.Tile, id.SensingStart}

		current, seen := best[key]
		if !seen {
			keep[i] = true
			best[key] = slot{index: i, baseline: &id}
			continue
		}

		newer, err := baselineGreater(id, *current.baseline)
		if err != nil {
			// Unparseable baselines cannot be ranked; first record wins.
			continue
		}
		if newer {
			keep[current.index] = false
			keep[i] = true
			best[key] = slot{index: i, baseline: &id}
		}
	}

	out := make([]Record, 0, len(records))
	for i, r := range records {
		if keep[i] {
			out = append(out, r)
		}
	}
	return out
}

func baselineGreater(a, b safename.ProductID) (bool, error) {
	va, err := a.BaselineVersion()
	if err != nil {
		return false, err
	}
	vb, err := b.BaselineVersion()
	if err != nil {
		return false, err
	}
	return va.GreaterThan(vb), nil
}
