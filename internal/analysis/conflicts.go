package analysis

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Conflict is an unordered pair of patterns where one negates the
// other's equivalent base rule. A and B keep input order.
type Conflict struct {
	A string
	B string
}

// FindConflicts compares every unordered pair of patterns once and
// returns the conflicting pairs in first-seen order. The O(n^2) scan is
// fine at ignore-file scale (hundreds of lines).
func (az *Analyzer) FindConflicts(patterns []string) []Conflict {
	var conflicts []Conflict
	for i, p1 := range patterns {
		for _, p2 := range patterns[i+1:] {
			if az.AreConflicting(p1, p2) {
				conflicts = append(conflicts, Conflict{A: p1, B: p2})
			}
		}
	}
	return conflicts
}

// FindConflictsParallel partitions the pairwise scan across workers.
// Each comparison is independent and side-effect-free, so partitioning by
// first-index range needs no synchronization; the final merge is a stable
// concatenation in partition order, giving the same result order as the
// sequential scan.
func (az *Analyzer) FindConflictsParallel(ctx context.Context, patterns []string, workers int) ([]Conflict, error) {
	n := len(patterns)
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}
	if n < 2 || workers == 1 {
		return az.FindConflicts(patterns), nil
	}

	partitions := make([][]Conflict, workers)
	g, ctx := errgroup.WithContext(ctx)

	chunk := (n + workers - 1) / workers
	for w := 0; w < workers; w++ {
		w := w
		lo := w * chunk
		hi := min(lo+chunk, n)
		if lo >= hi {
			break
		}
		g.Go(func() error {
			var found []Conflict
			for i := lo; i < hi; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				for j := i + 1; j < n; j++ {
					if az.AreConflicting(patterns[i], patterns[j]) {
						found = append(found, Conflict{A: patterns[i], B: patterns[j]})
					}
				}
			}
			partitions[w] = found
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var merged []Conflict
	for _, part := range partitions {
		merged = append(merged, part...)
	}
	return merged, nil
}
