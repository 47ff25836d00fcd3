package safename

import (
	"strings"

	"github.com/glorpus-work/eofetch/pkg/errors"
)

// BandFile holds the decoded fields of a flat band filename such as
// T32TQM_20230101T100000_B02.jp2 (L1C) or
// T32TQM_20230101T100000_B02_10m.jp2 (L2A).
type BandFile struct {
	Tile         string
	SensingStart string
	Band         string
	Resolution   string // empty for L1C
	Ext          string // includes the dot
}

// Filename re-encodes the fields into the flat filename form.
func (b BandFile) Filename() string {
	suffix := ""
	if b.Resolution != "" {
		suffix = "_" + b.Resolution
	}
	return b.Tile + "_" + b.SensingStart + "_" + b.Band + suffix + b.Ext
}

// EncodeBandFilename builds the flat filename of one band of a product.
// For FamilyL2A the band's native resolution suffix is appended; a band
// outside the L2A classification fails with ErrUnsupportedBand.
func EncodeBandFilename(tile, sensingStart, band, ext string, family Family) (string, error) {
	suffix, err := family.resolutionSuffix(band)
	if err != nil {
		return "", err
	}
	return tile + "_" + sensingStart + "_" + band + suffix + ext, nil
}

// DecodeBandFilename parses a flat band filename back into its fields.
// The family determines the expected segment arity: three underscore-delimited
// segments for L1C, four for L2A where the trailing segment must be a known
// resolution token.
func DecodeBandFilename(name string, family Family) (BandFile, error) {
	dot := strings.LastIndex(name, ".")
	if dot < 0 {
		return BandFile{}, errors.Wrapf(errors.ErrFormat, "band filename %q has no extension", name)
	}
	base, ext := name[:dot], name[dot:]

	segments := strings.Split(base, "_")
	switch family {
	case FamilyL1C:
		if len(segments) != 3 {
			return BandFile{}, errors.Wrapf(errors.ErrFormat,
				"band filename %q: expected 3 segments, got %d", name, len(segments))
		}
		return BandFile{
			Tile:         segments[0],
			SensingStart: segments[1],
			Band:         segments[2],
			Ext:          ext,
		}, nil
	case FamilyL2A:
		if len(segments) != 4 {
			return BandFile{}, errors.Wrapf(errors.ErrFormat,
				"band filename %q: expected 4 segments, got %d", name, len(segments))
		}
		res := segments[3]
		if res != Resolution10m && res != Resolution20m {
			return BandFile{}, errors.Wrapf(errors.ErrFormat,
				"band filename %q: unrecognized resolution token %q", name, res)
		}
		return BandFile{
			Tile:         segments[0],
			SensingStart: segments[1],
			Band:         segments[2],
			Resolution:   res,
			Ext:          ext,
		}, nil
	default:
		return BandFile{}, errors.Wrapf(errors.ErrUnknownFamily, "family %q", string(family))
	}
}
