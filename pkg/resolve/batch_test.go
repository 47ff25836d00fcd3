package resolve

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/glorpus-work/eofetch/pkg/safename"
	"github.com/glorpus-work/eofetch/pkg/store"
	"github.com/glorpus-work/eofetch/pkg/store/mocks"
)

func testOptions() Options {
	return Options{
		Bands:    []string{safename.BandB02},
		Family:   safename.FamilyL1C,
		DestRoot: "/data",
	}
}

func TestResolveAll_DeduplicatesRoots(t *testing.T) {
	ctrl := gomock.NewController(t)
	lister := mocks.NewMockLister(ctrl)

	// The same root twice in the input must produce exactly one listing.
	lister.EXPECT().List(gomock.Any(), gomock.Any()).Times(1).Return(listing(
		testGranule+"/IMG_DATA/T32TQM_20230101T100000_B02.jp2",
		testGranule+"/MTD_TL.xml",
	), nil)

	r := New(lister)
	resolved, rootErrs, err := r.ResolveAll(context.Background(),
		[]string{testRootURI, testRootURI}, testOptions(), BatchOptions{Workers: 1})
	require.NoError(t, err)
	assert.Empty(t, rootErrs)
	assert.Len(t, resolved, 2)
}

func TestResolveAll_CollectAllIsolatesFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	lister := mocks.NewMockLister(ctrl)

	goodRoot := testRootURI
	badRoot := "s3://eodata/Sentinel-2/MSI/L1C/2023/01/02/S2A_MSIL1C_20230102T100000_N0500_R001_T32TQM_20230102T120000.SAFE/"

	goodLoc, err := store.ParseLocator(goodRoot)
	require.NoError(t, err)
	badLoc, err := store.ParseLocator(badRoot)
	require.NoError(t, err)

	lister.EXPECT().List(gomock.Any(), goodLoc).Return(listing(
		testGranule+"/IMG_DATA/T32TQM_20230101T100000_B02.jp2",
		testGranule+"/MTD_TL.xml",
	), nil)
	lister.EXPECT().List(gomock.Any(), badLoc).Return(nil, assert.AnError)

	r := New(lister)
	resolved, rootErrs, err := r.ResolveAll(context.Background(),
		[]string{goodRoot, badRoot}, testOptions(), BatchOptions{Workers: 1, Mode: CollectAll})
	require.NoError(t, err, "collect-all batches never raise")
	assert.Len(t, resolved, 2, "healthy roots still resolve")
	require.Len(t, rootErrs, 1)
	assert.Equal(t, badRoot, rootErrs[0].RootURI)
	assert.ErrorIs(t, rootErrs[0].Err, assert.AnError)
}

func TestResolveAll_FailFastAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	lister := mocks.NewMockLister(ctrl)

	lister.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, assert.AnError).MinTimes(1)

	r := New(lister)
	resolved, rootErrs, err := r.ResolveAll(context.Background(),
		[]string{testRootURI}, testOptions(), BatchOptions{Workers: 1, Mode: FailFast})
	require.ErrorIs(t, err, assert.AnError)
	assert.Nil(t, resolved)
	assert.Nil(t, rootErrs)
}

func TestResolveAll_PreservesPerRootOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	lister := mocks.NewMockLister(ctrl)

	lister.EXPECT().List(gomock.Any(), gomock.Any()).Return(listing(
		testGranule+"/IMG_DATA/T32TQM_20230101T100000_B02.jp2",
		testGranule+"/IMG_DATA/T32TQM_20230101T100000_B03.jp2",
		testGranule+"/MTD_TL.xml",
	), nil)

	r := New(lister)
	opts := testOptions()
	opts.Bands = []string{safename.BandB02, safename.BandB03}
	resolved, _, err := r.ResolveAll(context.Background(), []string{testRootURI}, opts, BatchOptions{Workers: 4})
	require.NoError(t, err)
	require.Len(t, resolved, 3)
	// Within a single root the listing order is kept.
	assert.Contains(t, resolved[0].Locator.Prefix, "B02")
	assert.Contains(t, resolved[1].Locator.Prefix, "B03")
	assert.Contains(t, resolved[2].Locator.Prefix, "MTD_TL.xml")
}

func TestDedupe(t *testing.T) {
	out := dedupe([]string{"a", "b", "a", "c", "b"})
	assert.Equal(t, []string{"a", "b", "c"}, out)
}
