package ingestion

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mlaranja/fuelpulse/internal/logger"
	"github.com/mlaranja/fuelpulse/internal/storage"
)

const (
	fileSuffix       = ".csv"
	defaultBatchSize = 5000
)

// repoCtor is an indirection for creating the repository; tests can override this.
var repoCtor = func(db *sql.DB) storage.FuelRepository {
	return storage.NewFuelRepository(db)
}

// ProcessDirectory imports every .csv file in dir as fill-up records.
//
// Behavior:
//   - Files are processed concurrently with a CPU-bounded limit.
//   - Each file is parsed with a strict header check and inserted in
//     batches via the repository.
//   - A file already present in the import log is skipped unless force
//     is set; force first deletes the rows previously loaded from it.
//   - If any file returns an error, the rest are cancelled and that
//     error is returned.
func ProcessDirectory(ctx context.Context, dir string, db *sql.DB, parallel int, force bool) error {
	// use indirection to allow tests to swap repository constructor
	repo := repoCtor(db)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read dir %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), fileSuffix) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)

	if len(files) == 0 {
		return fmt.Errorf("no %s files found in %s", fileSuffix, dir)
	}

	logger.L().Info().Int("files", len(files)).Str("dir", dir).Msg("import start")

	// Concurrency: default to NumCPU, or use provided value when positive.
	maxParallel := runtime.NumCPU()
	if parallel > 0 {
		maxParallel = parallel
	}
	if maxParallel > len(files) {
		maxParallel = len(files)
	}

	logger.L().Info().Int("max_parallel", maxParallel).Msg("import configured")

	// errgroup will cancel siblings on first error.
	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, maxParallel)

	for i, file := range files {
		idx := i
		f := file
		sem <- struct{}{}

		g.Go(func() error {
			defer func() { <-sem }()
			start := time.Now()
			base := filepath.Base(f)
			logger.L().Info().Int("idx", idx+1).Int("total", len(files)).Str("file", base).Msg("file start")

			// Idempotency: skip if already imported, unless force
			exists, err := repo.HasImportForFile(base)
			if err != nil {
				logger.L().Error().Str("file", base).Err(err).Msg("check import log failed")
				return fmt.Errorf("file %s: check import log: %w", f, err)
			}
			if exists && !force {
				logger.L().Info().Int("idx", idx+1).Int("total", len(files)).Str("file", base).Bool("skipped", true).Msg("already imported")
				return nil
			}
			if exists && force {
				// Delete rows previously loaded from this file and reprocess
				if err := repo.DeleteFuelRecordsBySource(base); err != nil {
					logger.L().Error().Str("file", base).Err(err).Msg("delete existing failed")
					return fmt.Errorf("file %s: delete existing: %w", f, err)
				}
			}

			total, err := parseAndPersistFile(gctx, f, repo, defaultBatchSize)
			if err != nil {
				logger.L().Error().Str("file", base).Dur("elapsed", time.Since(start)).Err(err).Msg("file failed")
				return fmt.Errorf("file %s: %w", f, err)
			}
			if err := repo.UpsertImportLog(base, total); err != nil {
				logger.L().Error().Str("file", base).Err(err).Msg("update import log failed")
				return fmt.Errorf("file %s: upsert import log: %w", f, err)
			}
			logger.L().Info().Int("idx", idx+1).Int("total", len(files)).Str("file", base).Int("rows", total).Dur("elapsed", time.Since(start)).Bool("force", force).Msg("file done")
			return nil
		})
	}

	return g.Wait()
}
