// Package safename implements the Sentinel-2 compact naming convention: the
// structure of product identifiers and the flat band filenames stored inside
// a .SAFE product container.
//
// See https://sentinels.copernicus.eu/web/sentinel/user-guides/sentinel-2-msi/naming-convention
package safename

import (
	"fmt"
	"strconv"
	"strings"

	version "github.com/hashicorp/go-version"

	"github.com/glorpus-work/eofetch/pkg/errors"
)

// Container and payload extensions used by the SAFE layout.
const (
	// ExtSAFE is the product container suffix.
	ExtSAFE = ".SAFE"
	// ExtJP2 is the imagery (raster band) extension.
	ExtJP2 = ".jp2"
	// ExtXML is the metadata extension.
	ExtXML = ".xml"

	// MetadataFilename is the tile metadata file present once per product.
	// It carries the viewing/sun angle grids.
	MetadataFilename = "MTD_TL.xml"
)

const productIDFields = 7

// ProductID holds the seven fields of a compact Sentinel-2 product
// identifier, e.g. S2A_MSIL1C_20230101T100000_N0500_R001_T32TQM_20230101T120000.
type ProductID struct {
	Mission       string // e.g. S2A
	Level         string // e.g. MSIL1C
	SensingStart  string // datatake sensing start, e.g. 20230101T100000
	Baseline      string // processing baseline, e.g. N0500
	Orbit         string // relative orbit, e.g. R001
	Tile          string // tile number field, e.g. T32TQM
	Discriminator string // product discriminator timestamp
}

// ParseProductID parses a compact product identifier. A trailing .SAFE
// container suffix is stripped before splitting. Only field arity is
// validated; interpreting individual fields is left to the consumer.
func ParseProductID(id string) (ProductID, error) {
	id = strings.TrimSuffix(id, ExtSAFE)

	fields := strings.Split(id, "_")
	if len(fields) != productIDFields {
		return ProductID{}, errors.Wrapf(errors.ErrFormat,
			"product id %q: expected %d underscore-delimited fields, got %d", id, productIDFields, len(fields))
	}

	return ProductID{
		Mission:       fields[0],
		Level:         fields[1],
		SensingStart:  fields[2],
		Baseline:      fields[3],
		Orbit:         fields[4],
		Tile:          fields[5],
		Discriminator: fields[6],
	}, nil
}

// BaselineVersion converts the processing baseline field (e.g. N0500) into a
// comparable version (5.0.0). Reprocessing campaigns bump the baseline, so
// the highest version is the freshest rendition of an acquisition.
func (p ProductID) BaselineVersion() (*version.Version, error) {
	b := p.Baseline
	if len(b) != 5 || b[0] != 'N' {
		return nil, errors.Wrapf(errors.ErrFormat, "processing baseline %q", b)
	}
	major, err := strconv.Atoi(b[1:3])
	if err != nil {
		return nil, errors.Wrapf(errors.ErrFormat, "processing baseline %q", b)
	}
	minor, err := strconv.Atoi(b[3:5])
	if err != nil {
		return nil, errors.Wrapf(errors.ErrFormat, "processing baseline %q", b)
	}
	v, err := version.NewVersion(fmt.Sprintf("%d.%d", major, minor))
	if err != nil {
		return nil, errors.Wrapf(errors.ErrFormat, "processing baseline %q: %v", b, err)
	}
	return v, nil
}
