// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"efdkeys/internal/extract"
	"efdkeys/internal/keymatch"
	"efdkeys/internal/keyset"
)

// Config controls the parallel extraction run.
type Config struct {
	Threads int         // worker goroutines (0 = all CPUs)
	Log     *zap.Logger // nil disables logging
}

// ExtractAll runs extract.File concurrently over files and unions every
// per-file key set into one. Each file's set is private to its worker until
// it is handed to the single collector goroutine, so the merged content is
// deterministic regardless of scheduling.
//
// On the first failure the remaining files are no longer scheduled and the
// error, annotated with its file, is returned; in-flight files finish on
// their own. Which of several concurrent errors wins is unspecified.
func ExtractAll(ctx context.Context, cfg Config, files []string, m *keymatch.Matcher) (keyset.Set, error) {
	log := cfg.Log
	if log == nil {
		log = zap.NewNop()
	}
	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	if len(files) > 0 && threads > len(files) {
		threads = len(files)
	}

	jobs := make(chan string)
	results := make(chan keyset.Set, threads)

	g, gctx := errgroup.WithContext(ctx)

	// Feeder: stops scheduling as soon as any worker fails.
	g.Go(func() error {
		defer close(jobs)
		for _, f := range files {
			select {
			case jobs <- f:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < threads; w++ {
		g.Go(func() error {
			for f := range jobs {
				keys, err := extract.File(f, m)
				if err != nil {
					return err
				}
				log.Debug("file extracted",
					zap.String("file", f),
					zap.Int("keys", keys.Len()))
				select {
				case results <- keys:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			return nil
		})
	}

	// Single-threaded merge; union is commutative and associative.
	merged := keyset.New()
	collected := make(chan struct{})
	go func() {
		defer close(collected)
		for keys := range results {
			merged.Union(keys)
		}
	}()

	err := g.Wait()
	close(results)
	<-collected

	if err != nil {
		return nil, err
	}
	log.Debug("extraction finished",
		zap.Int("files", len(files)),
		zap.Int("keys", merged.Len()))
	return merged, nil
}
