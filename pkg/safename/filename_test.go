package safename

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glorpus-work/eofetch/pkg/errors"
)

func TestEncodeBandFilename(t *testing.T) {
	tests := []struct {
		name        string
		band        string
		family      Family
		expected    string
		expectedErr error
	}{
		{
			name:     "l1c band has no resolution suffix",
			band:     BandB02,
			family:   FamilyL1C,
			expected: "T32TQM_20230101T100000_B02.jp2",
		},
		{
			name:     "l2a 10m band",
			band:     BandB03,
			family:   FamilyL2A,
			expected: "T32TQM_20230101T100000_B03_10m.jp2",
		},
		{
			name:     "l2a 20m band",
			band:     BandB11,
			family:   FamilyL2A,
			expected: "T32TQM_20230101T100000_B11_20m.jp2",
		},
		{
			name:     "l2a scene classification layer",
			band:     BandSCL,
			family:   FamilyL2A,
			expected: "T32TQM_20230101T100000_SCL_20m.jp2",
		},
		{
			name:        "l2a band outside classification",
			band:        BandB10,
			family:      FamilyL2A,
			expectedErr: errors.ErrUnsupportedBand,
		},
		{
			name:        "unknown family",
			band:        BandB02,
			family:      Family("l3x"),
			expectedErr: errors.ErrUnknownFamily,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeBandFilename("T32TQM", "20230101T100000", tt.band, ExtJP2, tt.family)
			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDecodeBandFilename(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		family      Family
		expected    BandFile
		expectedErr error
	}{
		{
			name:     "l1c filename",
			filename: "T32TQM_20230101T100000_B02.jp2",
			family:   FamilyL1C,
			expected: BandFile{
				Tile:         "T32TQM",
				SensingStart: "20230101T100000",
				Band:         "B02",
				Ext:          ".jp2",
			},
		},
		{
			name:     "l2a filename with resolution",
			filename: "T32TQM_20230101T100000_B11_20m.jp2",
			family:   FamilyL2A,
			expected: BandFile{
				Tile:         "T32TQM",
				SensingStart: "20230101T100000",
				Band:         "B11",
				Resolution:   "20m",
				Ext:          ".jp2",
			},
		},
		{
			name:        "no extension separator",
			filename:    "T32TQM_20230101T100000_B02",
			family:      FamilyL1C,
			expectedErr: errors.ErrFormat,
		},
		{
			name:        "l1c wrong arity",
			filename:    "T32TQM_20230101T100000_B02_10m.jp2",
			family:      FamilyL1C,
			expectedErr: errors.ErrFormat,
		},
		{
			name:        "l2a wrong arity",
			filename:    "T32TQM_20230101T100000_B02.jp2",
			family:      FamilyL2A,
			expectedErr: errors.ErrFormat,
		},
		{
			name:        "l2a unrecognized resolution token",
			filename:    "T32TQM_20230101T100000_B02_60m.jp2",
			family:      FamilyL2A,
			expectedErr: errors.ErrFormat,
		},
		{
			name:        "unknown family",
			filename:    "T32TQM_20230101T100000_B02.jp2",
			family:      Family("l3x"),
			expectedErr: errors.ErrUnknownFamily,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeBandFilename(tt.filename, tt.family)
			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestBandFilename_RoundTrip(t *testing.T) {
	for _, family := range []Family{FamilyL1C, FamilyL2A} {
		bands, err := family.Bands()
		require.NoError(t, err)
		for _, band := range bands {
			encoded, err := EncodeBandFilename("T32TQM", "20230101T100000", band, ExtJP2, family)
			require.NoError(t, err, "family %s band %s", family, band)

			decoded, err := DecodeBandFilename(encoded, family)
			require.NoError(t, err, "family %s band %s", family, band)

			assert.Equal(t, "T32TQM", decoded.Tile)
			assert.Equal(t, "20230101T100000", decoded.SensingStart)
			assert.Equal(t, band, decoded.Band)
			assert.Equal(t, encoded, decoded.Filename(), "decode(encode) must re-encode identically")
		}
	}
}

func TestFamily_HasBand(t *testing.T) {
	ok, err := FamilyL1C.HasBand(BandB10)
	require.NoError(t, err)
	assert.True(t, ok, "B10 exists in L1C")

	ok, err = FamilyL2A.HasBand(BandB10)
	require.NoError(t, err)
	assert.False(t, ok, "B10 is absent from L2A")

	ok, err = FamilyL2A.HasBand(BandSCL)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = Family("l3x").HasBand(BandB02)
	require.ErrorIs(t, err, errors.ErrUnknownFamily)
}

func TestParseFamily(t *testing.T) {
	f, err := ParseFamily("l1c")
	require.NoError(t, err)
	assert.Equal(t, FamilyL1C, f)

	f, err = ParseFamily("l2a")
	require.NoError(t, err)
	assert.Equal(t, FamilyL2A, f)

	_, err = ParseFamily("landsat8")
	require.ErrorIs(t, err, errors.ErrUnknownFamily)
}
