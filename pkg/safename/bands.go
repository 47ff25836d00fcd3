package safename

import (
	"github.com/glorpus-work/eofetch/pkg/errors"
)

// Family identifies a Sentinel-2 product family. The family governs which
// bands exist and whether band filenames carry a resolution suffix.
type Family string

// Supported product families.
const (
	// FamilyL1C is Sentinel-2 Level-1C (top-of-atmosphere reflectance).
	FamilyL1C Family = "l1c"
	// FamilyL2A is Sentinel-2 Level-2A (bottom-of-atmosphere reflectance).
	FamilyL2A Family = "l2a"
)

// Spectral band codes.
const (
	BandB01 = "B01"
	BandB02 = "B02"
	BandB03 = "B03"
	BandB04 = "B04"
	BandB05 = "B05"
	BandB06 = "B06"
	BandB07 = "B07"
	BandB08 = "B08"
	BandB8A = "B8A"
	BandB09 = "B09"
	BandB10 = "B10"
	BandB11 = "B11"
	BandB12 = "B12"
	BandSCL = "SCL"
)

var l1cBands = []string{
	BandB01, BandB02, BandB03, BandB04, BandB05, BandB06, BandB07,
	BandB08, BandB8A, BandB09, BandB10, BandB11, BandB12,
}

var l2aBands = []string{
	BandB01, BandB02, BandB03, BandB04, BandB05, BandB06, BandB07,
	BandB08, BandB8A, BandB09, BandB11, BandB12, BandSCL,
}

// L2A band filenames carry the native resolution of the band.
var l2aResolutions = map[string]string{
	BandB01: Resolution20m,
	BandB05: Resolution20m,
	BandB06: Resolution20m,
	BandB07: Resolution20m,
	BandB8A: Resolution20m,
	BandB09: Resolution20m,
	BandB11: Resolution20m,
	BandB12: Resolution20m,
	BandSCL: Resolution20m,
	BandB02: Resolution10m,
	BandB03: Resolution10m,
	BandB04: Resolution10m,
	BandB08: Resolution10m,
}

// Resolution tokens used in L2A band filenames.
const (
	Resolution10m = "10m"
	Resolution20m = "20m"
)

// Bands returns the full band set of the family.
func (f Family) Bands() ([]string, error) {
	switch f {
	case FamilyL1C:
		return l1cBands, nil
	case FamilyL2A:
		return l2aBands, nil
	default:
		return nil, errors.Wrapf(errors.ErrUnknownFamily, "family %q", string(f))
	}
}

// HasBand reports whether band belongs to the family's band set.
func (f Family) HasBand(band string) (bool, error) {
	bands, err := f.Bands()
	if err != nil {
		return false, err
	}
	for _, b := range bands {
		if b == band {
			return true, nil
		}
	}
	return false, nil
}

// resolutionSuffix returns the filename suffix for band, including the
// leading underscore. L1C filenames carry no suffix. An L2A band outside the
// classification table is a configuration error, not a retryable one.
func (f Family) resolutionSuffix(band string) (string, error) {
	switch f {
	case FamilyL1C:
		return "", nil
	case FamilyL2A:
		res, ok := l2aResolutions[band]
		if !ok {
			return "", errors.Wrapf(errors.ErrUnsupportedBand, "band %q has no L2A resolution", band)
		}
		return "_" + res, nil
	default:
		return "", errors.Wrapf(errors.ErrUnknownFamily, "family %q", string(f))
	}
}

// ParseFamily validates a family name supplied by config or CLI flags.
func ParseFamily(s string) (Family, error) {
	switch Family(s) {
	case FamilyL1C:
		return FamilyL1C, nil
	case FamilyL2A:
		return FamilyL2A, nil
	default:
		return "", errors.Wrapf(errors.ErrUnknownFamily, "family %q", s)
	}
}
