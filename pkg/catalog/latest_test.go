package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(id string) Record {
	return Record{ID: id, DataURI: "s3://eodata/" + id + ".SAFE/"}
}

func TestLatestBaseline(t *testing.T) {
	tests := []struct {
		name     string
		records  []Record
		expected []string
	}{
		{
			name: "newer baseline replaces older",
			records: []Record{
				record("S2A_MSIL1C_20230101T100000_N0400_R001_T32TQM_20230101T110000"),
				record("S2A_MSIL1C_20230101T100000_N0500_R001_T32TQM_20230101T120000"),
			},
			expected: []string{"S2A_MSIL1C_20230101T100000_N0500_R001_T32TQM_20230101T120000"},
		},
		{
			name: "older baseline arriving later is dropped",
			records: []Record{
				record("S2A_MSIL1C_20230101T100000_N0500_R001_T32TQM_20230101T120000"),
				record("S2A_MSIL1C_20230101T100000_N0400_R001_T32TQM_20230101T110000"),
			},
			expected: []string{"S2A_MSIL1C_20230101T100000_N0500_R001_T32TQM_20230101T120000"},
		},
		{
			name: "distinct acquisitions are all kept",
			records: []Record{
				record("S2A_MSIL1C_20230101T100000_N0500_R001_T32TQM_20230101T120000"),
				record("S2A_MSIL1C_20230104T100000_N0500_R001_T32TQM_20230104T120000"),
				record("S2A_MSIL1C_20230101T100000_N0500_R001_T33TUH_20230101T120000"),
			},
			expected: []string{
				"S2A_MSIL1C_20230101T100000_N0500_R001_T32TQM_20230101T120000",
				"S2A_MSIL1C_20230104T100000_N0500_R001_T32TQM_20230104T120000",
				"S2A_MSIL1C_20230101T100000_N0500_R001_T33TUH_20230101T120000",
			},
		},
		{
			name: "unparseable ids pass through",
			records: []Record{
				record("not-a-product-id"),
				record("S2A_MSIL1C_20230101T100000_N0500_R001_T32TQM_20230101T120000"),
			},
			expected: []string{
				"not-a-product-id",
				"S2A_MSIL1C_20230101T100000_N0500_R001_T32TQM_20230101T120000",
			},
		},
		{
			name:     "empty input",
			records:  nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := LatestBaseline(tt.records)
			var ids []string
			for _, r := range out {
				ids = append(ids, r.ID)
			}
			require.Len(t, ids, len(tt.expected))
			assert.Equal(t, tt.expected, ids)
		})
	}
}
