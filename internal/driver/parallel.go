package driver

import (
	"context"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"minim/internal/diag"
	"minim/internal/source"
)

// CheckOptions configures a batch check.
type CheckOptions struct {
	MaxDiagnostics int
	Jobs           int        // <= 0 means GOMAXPROCS
	Cache          *DiskCache // nil disables caching
}

// CheckFiles checks the given files in parallel. Results come back in path
// order regardless of scheduling; every path gets a result even when it
// fails to load. Each file owns its builder, interner, and symbol table,
// so workers never share mutable state.
func CheckFiles(ctx context.Context, paths []string, opts CheckOptions) (*source.FileSet, []CheckResult, error) {
	sorted := make([]string, len(paths))
	copy(sorted, paths)
	sort.Strings(sorted)

	fileSet := source.NewFileSet()
	fileIDs := make(map[string]source.FileID, len(sorted))
	loadErrors := make(map[string]error, len(sorted))
	for _, path := range sorted {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	if len(sorted) == 0 {
		return fileSet, nil, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	if jobs > len(sorted) {
		jobs = len(sorted)
	}

	results := make([]CheckResult, len(sorted))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range sorted {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			if loadErr, bad := loadErrors[path]; bad {
				bag := diag.NewBag(opts.MaxDiagnostics)
				bag.Add(diag.Diagnostic{
					Severity: diag.SevError,
					Code:     diag.IOLoadFileError,
					Message:  "failed to load file: " + loadErr.Error(),
				})
				results[i] = CheckResult{Path: path, Bag: bag}
				return nil
			}

			fileID := fileIDs[path]
			file := fileSet.Get(fileID)

			if opts.Cache != nil {
				var payload DiskPayload
				hit, err := opts.Cache.Get(file.Hash, &payload)
				if err == nil && hit {
					results[i] = CheckResult{
						Path:   file.Path,
						FileID: fileID,
						Bag:    payloadToBag(&payload, fileID, opts.MaxDiagnostics),
						Cached: true,
					}
					return nil
				}
			}

			res := CheckFile(fileSet, fileID, opts.MaxDiagnostics)
			results[i] = res

			if opts.Cache != nil {
				// Best effort: a failed write just means a re-check next run.
				_ = opts.Cache.Put(file.Hash, bagToPayload(file.Path, res.Bag))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

// MergeBags combines per-file bags into one, preserving result order.
func MergeBags(results []CheckResult, maxDiagnostics int) *diag.Bag {
	merged := diag.NewBag(maxDiagnostics)
	for i := range results {
		merged.Merge(results[i].Bag)
	}
	return merged
}
