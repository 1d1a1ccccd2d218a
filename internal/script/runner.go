package script

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/eapache/queue"
	"golang.org/x/sync/errgroup"

	"github.com/larynjahor/lists/container"
)

func New(defaultSize int, separator string, parallelism int) *Runner {
	return &Runner{
		defaultSize: defaultSize,
		separator:   separator,
		parallelism: max(parallelism, 1),
	}
}

// Runner executes scripts. Every script gets its own containers, so scripts
// may run in parallel while each container is only touched by one goroutine.
type Runner struct {
	defaultSize int
	separator   string
	parallelism int
}

// Exec applies the ops of s in order. Container failures such as an invalid
// position are recorded in the op's Result; malformed scripts abort.
func (r *Runner) Exec(ctx context.Context, s *Script) ([]Result, error) {
	if err := s.validateVersion(); err != nil {
		return nil, err
	}

	names := container.NewSet[string](len(s.Containers))
	targets := make(map[string]target, len(s.Containers))

	for _, d := range s.Containers {
		if !names.Add(d.Name) {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, d.Name)
		}

		t, err := newTarget(d, r.defaultSize, r.separator)
		if err != nil {
			return nil, fmt.Errorf("declare %q: %w", d.Name, err)
		}

		targets[d.Name] = t
	}

	slog.DebugContext(ctx, "declared containers", slog.Any("names", container.Sorted(names)))

	pending := queue.New()
	for _, op := range s.Ops {
		pending.Add(op)
	}

	results := make([]Result, 0, len(s.Ops))

	for pending.Length() > 0 {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		op := pending.Remove().(Op)

		t, ok := targets[op.Target]
		if !ok {
			return results, fmt.Errorf("op %d: %w: %q", len(results), ErrUnknownContainer, op.Target)
		}

		res := Result{
			Target: op.Target,
			Op:     op.Op,
		}

		if err := t.apply(op, &res); err != nil {
			return results, fmt.Errorf("op %d: %w", len(results), err)
		}

		if res.Error != "" {
			slog.DebugContext(ctx, "op failed",
				slog.String("target", op.Target),
				slog.String("op", op.Op),
				slog.Int("pos", op.Pos),
				slog.String("err", res.Error),
			)
		}

		results = append(results, res)
	}

	return results, nil
}

// Run executes scripts concurrently. Reports keep the order of scripts; the
// returned error is the first script that aborted.
func (r *Runner) Run(ctx context.Context, scripts ...*Script) ([]Report, error) {
	reports := make([]Report, len(scripts))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(r.parallelism)

	for i, s := range scripts {
		eg.Go(func() error {
			logger := slog.With(slog.String("script", s.Name))
			logger.InfoContext(ctx, "running script", slog.Int("ops", len(s.Ops)))

			results, err := r.Exec(ctx, s)

			reports[i] = Report{
				Name:    s.Name,
				Results: results,
			}

			if err != nil {
				logger.ErrorContext(ctx, "script aborted", slog.Any("err", err))
				reports[i].Error = err.Error()

				return fmt.Errorf("script %s: %w", s.Name, err)
			}

			logger.InfoContext(ctx, "script finished", slog.Int("results", len(results)))

			return nil
		})
	}

	return reports, eg.Wait()
}
