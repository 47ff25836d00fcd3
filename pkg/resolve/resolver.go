// Package resolve turns Sentinel-2 product locators into per-band object
// keys and matching local download destinations.
package resolve

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/glorpus-work/eofetch/pkg/errors"
	"github.com/glorpus-work/eofetch/pkg/safename"
	"github.com/glorpus-work/eofetch/pkg/store"
)

// RootPrefix is the required URI prefix of a product container locator.
const RootPrefix = store.Scheme + "eodata/"

// ResolvedObject pairs one object locator with the local path it downloads to.
type ResolvedObject struct {
	Locator   store.Locator
	LocalPath string
}

// Options control a single product resolution.
type Options struct {
	Bands    []string
	Family   safename.Family
	DestRoot string
}

// Resolver enumerates the store under a product container and computes
// download destinations for the requested bands plus the tile metadata file.
type Resolver struct {
	lister store.Lister
}

// New creates a Resolver backed by the given store lister.
func New(lister store.Lister) *Resolver {
	return &Resolver{lister: lister}
}

// Resolve maps one product container URI to the object keys of the requested
// bands and their local destinations. An empty band list means every band of
// the family. Band membership in the family is checked for the whole request
// before any store I/O; a single unknown band fails the call. The store is
// listed once, with a single prefix call.
func (r *Resolver) Resolve(ctx context.Context, rootURI string, opts Options) ([]ResolvedObject, error) {
	rootURI = normalizeRootURI(rootURI)
	if err := validateRootURI(rootURI); err != nil {
		return nil, err
	}
	if len(opts.Bands) == 0 {
		bands, err := opts.Family.Bands()
		if err != nil {
			return nil, err
		}
		opts.Bands = bands
	}
	if err := validateBands(opts.Bands, opts.Family); err != nil {
		return nil, err
	}

	root, err := store.ParseLocator(rootURI)
	if err != nil {
		return nil, err
	}

	id, err := productIDFromLocator(root)
	if err != nil {
		return nil, err
	}

	wanted, err := expectedFilenames(id, opts.Bands, opts.Family)
	if err != nil {
		return nil, err
	}

	infos, err := r.lister.List(ctx, root)
	if err != nil {
		return nil, err
	}

	destDir := destinationDir(rootURI, opts.DestRoot)

	var resolved []ResolvedObject
	for _, info := range infos {
		filename := keyFilename(info.Key)
		if !matchesAny(info.Key, wanted) {
			continue
		}
		var local string
		switch {
		case strings.HasSuffix(filename, safename.ExtJP2):
			band, err := safename.DecodeBandFilename(filename, opts.Family)
			if err != nil {
				return nil, err
			}
			local = filepath.Join(destDir, band.Band+band.Ext)
		case strings.HasSuffix(filename, safename.ExtXML):
			// Metadata keeps its original filename.
			local = filepath.Join(destDir, filename)
		default:
			continue
		}
		resolved = append(resolved, ResolvedObject{
			Locator:   store.Locator{Bucket: info.Bucket, Prefix: info.Key},
			LocalPath: local,
		})
	}

	return resolved, nil
}

// normalizeRootURI lowercases the store root of the URI. Catalog hrefs spell
// the bucket both eodata and EODATA.
func normalizeRootURI(rootURI string) string {
	if len(rootURI) >= len(RootPrefix) && strings.EqualFold(rootURI[:len(RootPrefix)], RootPrefix) {
		return RootPrefix + rootURI[len(RootPrefix):]
	}
	return rootURI
}

// validateRootURI checks the product container URI shape: the fixed store
// root prefix and the .SAFE container suffix (with or without a trailing
// separator).
func validateRootURI(rootURI string) error {
	if !strings.HasPrefix(rootURI, RootPrefix) {
		return errors.Wrapf(errors.ErrInvalidLocator, "%q: must start with %q", rootURI, RootPrefix)
	}
	if !strings.HasSuffix(rootURI, safename.ExtSAFE) && !strings.HasSuffix(rootURI, safename.ExtSAFE+"/") {
		return errors.Wrapf(errors.ErrInvalidLocator, "%q: must end with %q or %q", rootURI, safename.ExtSAFE, safename.ExtSAFE+"/")
	}
	return nil
}

// validateBands rejects the whole request when any band falls outside the
// family's band set. Runs before any store I/O.
func validateBands(bands []string, family safename.Family) error {
	var invalid []string
	for _, band := range bands {
		ok, err := family.HasBand(band)
		if err != nil {
			return err
		}
		if !ok {
			invalid = append(invalid, band)
		}
	}
	if len(invalid) > 0 {
		return errors.Wrapf(errors.ErrUnsupportedBand, "bands %v not in family %q", invalid, string(family))
	}
	return nil
}

// productIDFromLocator finds the .SAFE path segment and parses it.
func productIDFromLocator(root store.Locator) (safename.ProductID, error) {
	for _, segment := range strings.Split(root.Prefix, "/") {
		if strings.Contains(segment, safename.ExtSAFE) {
			return safename.ParseProductID(segment)
		}
	}
	return safename.ProductID{}, errors.Wrapf(errors.ErrInvalidLocator,
		"%q: no %s segment", root.URI(), safename.ExtSAFE)
}

// expectedFilenames computes the deduplicated set of filenames to keep from
// the listing: one per requested band plus the tile metadata file.
func expectedFilenames(id safename.ProductID, bands []string, family safename.Family) (map[string]struct{}, error) {
	wanted := make(map[string]struct{}, len(bands)+1)
	for _, band := range bands {
		filename, err := safename.EncodeBandFilename(id.Tile, id.SensingStart, band, safename.ExtJP2, family)
		if err != nil {
			return nil, err
		}
		wanted[filename] = struct{}{}
	}
	wanted[safename.MetadataFilename] = struct{}{}
	return wanted, nil
}

// destinationDir derives the per-product download directory: the locator path
// between the store root and the container suffix, nested under destRoot.
func destinationDir(rootURI, destRoot string) string {
	subpath := strings.TrimPrefix(rootURI, RootPrefix)
	subpath = strings.TrimSuffix(subpath, "/")
	subpath = strings.TrimSuffix(subpath, safename.ExtSAFE)
	parts := append([]string{destRoot}, strings.Split(subpath, "/")...)
	return filepath.Join(parts...)
}

func keyFilename(key string) string {
	segments := strings.Split(key, "/")
	return segments[len(segments)-1]
}

func matchesAny(key string, wanted map[string]struct{}) bool {
	for w := range wanted {
		if strings.Contains(key, w) {
			return true
		}
	}
	return false
}
