package resolve

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/glorpus-work/eofetch/pkg/errors"
	"github.com/glorpus-work/eofetch/pkg/safename"
	"github.com/glorpus-work/eofetch/pkg/store"
	"github.com/glorpus-work/eofetch/pkg/store/mocks"
)

const (
	testRootURI = "s3://eodata/Sentinel-2/MSI/L1C/2023/01/01/S2A_MSIL1C_20230101T100000_N0500_R001_T32TQM_20230101T120000.SAFE/"
	testGranule = "Sentinel-2/MSI/L1C/2023/01/01/S2A_MSIL1C_20230101T100000_N0500_R001_T32TQM_20230101T120000.SAFE/GRANULE/L1C_T32TQM_A012345_20230101T100000"
)

func listing(keys ...string) []store.ObjectInfo {
	infos := make([]store.ObjectInfo, 0, len(keys))
	for _, k := range keys {
		infos = append(infos, store.ObjectInfo{Bucket: "eodata", Key: k, Size: 1})
	}
	return infos
}

func TestResolver_Resolve(t *testing.T) {
	ctrl := gomock.NewController(t)
	lister := mocks.NewMockLister(ctrl)

	root, err := store.ParseLocator(testRootURI)
	require.NoError(t, err)

	lister.EXPECT().List(gomock.Any(), root).Return(listing(
		testGranule+"/IMG_DATA/T32TQM_20230101T100000_B02.jp2",
		testGranule+"/IMG_DATA/T32TQM_20230101T100000_B03.jp2",
		testGranule+"/IMG_DATA/T32TQM_20230101T100000_B04.jp2",
		testGranule+"/QI_DATA/T32TQM_20230101T100000_PVI.jp2",
		testGranule+"/MTD_TL.xml",
	), nil)

	r := New(lister)
	resolved, err := r.Resolve(context.Background(), testRootURI, Options{
		Bands:    []string{safename.BandB02, safename.BandB03},
		Family:   safename.FamilyL1C,
		DestRoot: "/data",
	})
	require.NoError(t, err)
	require.Len(t, resolved, 3, "two bands plus one metadata file")

	destDir := filepath.Join("/data",
		"Sentinel-2/MSI/L1C/2023/01/01/S2A_MSIL1C_20230101T100000_N0500_R001_T32TQM_20230101T120000")

	byLocal := map[string]store.Locator{}
	for _, obj := range resolved {
		byLocal[obj.LocalPath] = obj.Locator
	}
	assert.Contains(t, byLocal, filepath.Join(destDir, "B02.jp2"))
	assert.Contains(t, byLocal, filepath.Join(destDir, "B03.jp2"))
	assert.Contains(t, byLocal, filepath.Join(destDir, "MTD_TL.xml"), "metadata keeps its original filename")
	assert.NotContains(t, byLocal, filepath.Join(destDir, "B04.jp2"), "unrequested bands are skipped")

	assert.Equal(t, "eodata", byLocal[filepath.Join(destDir, "B02.jp2")].Bucket)
	assert.Equal(t, testGranule+"/IMG_DATA/T32TQM_20230101T100000_B02.jp2",
		byLocal[filepath.Join(destDir, "B02.jp2")].Prefix)
}

func TestResolver_Resolve_EmptyBandsMeansAllBands(t *testing.T) {
	ctrl := gomock.NewController(t)
	lister := mocks.NewMockLister(ctrl)

	lister.EXPECT().List(gomock.Any(), gomock.Any()).Return(listing(
		testGranule+"/IMG_DATA/T32TQM_20230101T100000_B02.jp2",
		testGranule+"/IMG_DATA/T32TQM_20230101T100000_B03.jp2",
		testGranule+"/MTD_TL.xml",
	), nil)

	r := New(lister)
	resolved, err := r.Resolve(context.Background(), testRootURI, Options{
		Family:   safename.FamilyL1C,
		DestRoot: "/data",
	})
	require.NoError(t, err)
	require.Len(t, resolved, 3, "every listed band plus the metadata file")

	var locals []string
	for _, obj := range resolved {
		locals = append(locals, filepath.Base(obj.LocalPath))
	}
	assert.ElementsMatch(t, []string{"B02.jp2", "B03.jp2", "MTD_TL.xml"}, locals)
}

func TestResolver_Resolve_L2AResolutionSuffixes(t *testing.T) {
	ctrl := gomock.NewController(t)
	lister := mocks.NewMockLister(ctrl)

	rootURI := "s3://eodata/Sentinel-2/MSI/L2A/2024/06/15/S2B_MSIL2A_20240615T103629_N0510_R008_T31TFJ_20240615T124254.SAFE"
	granule := "Sentinel-2/MSI/L2A/2024/06/15/S2B_MSIL2A_20240615T103629_N0510_R008_T31TFJ_20240615T124254.SAFE/GRANULE/L2A_T31TFJ_A038000_20240615T103629"

	lister.EXPECT().List(gomock.Any(), gomock.Any()).Return(listing(
		granule+"/IMG_DATA/R10m/T31TFJ_20240615T103629_B02_10m.jp2",
		granule+"/IMG_DATA/R20m/T31TFJ_20240615T103629_B11_20m.jp2",
		granule+"/MTD_TL.xml",
	), nil)

	r := New(lister)
	resolved, err := r.Resolve(context.Background(), rootURI, Options{
		Bands:    []string{safename.BandB02, safename.BandB11},
		Family:   safename.FamilyL2A,
		DestRoot: "/data",
	})
	require.NoError(t, err)
	require.Len(t, resolved, 3)

	var locals []string
	for _, obj := range resolved {
		locals = append(locals, filepath.Base(obj.LocalPath))
	}
	assert.ElementsMatch(t, []string{"B02.jp2", "B11.jp2", "MTD_TL.xml"}, locals,
		"resolution suffixes are dropped from local filenames")
}

func TestResolver_Resolve_UppercaseStoreRoot(t *testing.T) {
	ctrl := gomock.NewController(t)
	lister := mocks.NewMockLister(ctrl)

	upper := "s3://EODATA/" + strings.TrimPrefix(testRootURI, RootPrefix)
	root, err := store.ParseLocator(testRootURI)
	require.NoError(t, err)

	// The lister sees the canonical lowercase root.
	lister.EXPECT().List(gomock.Any(), root).Return(listing(
		testGranule+"/IMG_DATA/T32TQM_20230101T100000_B02.jp2",
		testGranule+"/MTD_TL.xml",
	), nil)

	r := New(lister)
	resolved, err := r.Resolve(context.Background(), upper, Options{
		Bands:    []string{safename.BandB02},
		Family:   safename.FamilyL1C,
		DestRoot: "/data",
	})
	require.NoError(t, err)
	require.Len(t, resolved, 2)
	for _, obj := range resolved {
		assert.Equal(t, "eodata", obj.Locator.Bucket)
	}
}

func TestResolver_Resolve_UnsupportedBandFailsBeforeListing(t *testing.T) {
	ctrl := gomock.NewController(t)
	// No List expectation: any listing call fails the test.
	lister := mocks.NewMockLister(ctrl)

	r := New(lister)
	_, err := r.Resolve(context.Background(), testRootURI, Options{
		Bands:    []string{safename.BandB02, "B42"},
		Family:   safename.FamilyL1C,
		DestRoot: "/data",
	})
	require.ErrorIs(t, err, errors.ErrUnsupportedBand)
}

func TestResolver_Resolve_InvalidRootURI(t *testing.T) {
	tests := []struct {
		name string
		uri  string
	}{
		{name: "wrong prefix", uri: "s3://other-bucket/product.SAFE/"},
		{name: "http scheme", uri: "https://eodata/product.SAFE/"},
		{name: "missing container suffix", uri: "s3://eodata/Sentinel-2/MSI/L1C/2023/01/01/product"},
	}

	ctrl := gomock.NewController(t)
	lister := mocks.NewMockLister(ctrl)
	r := New(lister)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Resolve(context.Background(), tt.uri, Options{
				Bands:    []string{safename.BandB02},
				Family:   safename.FamilyL1C,
				DestRoot: "/data",
			})
			require.ErrorIs(t, err, errors.ErrInvalidLocator)
		})
	}
}

func TestResolver_Resolve_ListerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	lister := mocks.NewMockLister(ctrl)
	lister.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, assert.AnError)

	r := New(lister)
	_, err := r.Resolve(context.Background(), testRootURI, Options{
		Bands:    []string{safename.BandB02},
		Family:   safename.FamilyL1C,
		DestRoot: "/data",
	})
	require.ErrorIs(t, err, assert.AnError)
}
