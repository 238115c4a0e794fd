// ABOUTME: Builds staging descriptors for local paths by stat-ing them concurrently
// ABOUTME: Names are NFC-normalised so the same file picked twice keys identically; Verify re-checks keys

package staging

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/unicode/norm"
)

const describeConcurrency = 8

// Describe stats each path and returns one File per path, in input order.
// Directories and missing files are errors.
func Describe(ctx context.Context, paths []string) ([]File, error) {
	files := make([]File, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(describeConcurrency)
	for i, p := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f, err := describeOne(p)
			if err != nil {
				return err
			}
			files[i] = f
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return files, nil
}

// Verify stats each staged file again and splits them into those whose key
// still matches the file on disk and those that changed or vanished since
// they were staged. Order is preserved within each slice.
func Verify(ctx context.Context, files []File) (fresh, stale []File) {
	current := make([]bool, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(describeConcurrency)
	for i, f := range files {
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			now, err := describeOne(f.Path)
			current[i] = err == nil && now.Key == f.Key
			return nil
		})
	}
	_ = g.Wait()

	for i, f := range files {
		if current[i] {
			fresh = append(fresh, f)
		} else {
			stale = append(stale, f)
		}
	}
	return fresh, stale
}

func describeOne(path string) (File, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return File{}, fmt.Errorf("resolving %s: %w", path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return File{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return File{}, fmt.Errorf("%s is a directory", path)
	}
	return File{
		Key: Key{
			Name:         norm.NFC.String(filepath.Base(abs)),
			Size:         info.Size(),
			LastModified: info.ModTime().UnixMilli(),
		},
		Path: abs,
	}, nil
}
