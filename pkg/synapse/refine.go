package synapse

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/go-synapse/synapse/internal/logx"
	"github.com/go-synapse/synapse/internal/workerpool"
)

// RefineConfig tunes the refinement loop: Eps is the convergence
// tolerance and tie-window, and MaxWorkers bounds per-round goroutine
// concurrency (0 defers to workerpool's GOMAXPROCS default). It has no
// level knob: enumeration depth is passed to Enumerate before Refine runs.
type RefineConfig struct {
	Eps        float64
	MaxWorkers int
}

// skeletonEntry is a skeleton paired with the leaf parameter pools needed
// to fill it.
type skeletonEntry struct {
	id      int
	skel    *Connection
	pools   [][]Value
}

// Refine runs the refinement engine over an already enumerated skeleton
// set against one or more targets, returning one best Connection per
// target, or a nil entry for a target whose frontier emptied out. A
// target that cannot be satisfied is not an error: the corresponding
// result entry is simply nil.
func Refine(ctx context.Context, result EnumerationResult, targets []Value, cfg RefineConfig) ([]*Connection, error) {
	eps := cfg.Eps
	if eps <= 0 {
		eps = 1e-6
	}

	// Phase A: associate each skeleton with its leaf parameter pools,
	// dropping any skeleton with an empty pool at some hole position.
	entries := buildSkeletonEntries(result)
	if len(entries) == 0 {
		return make([]*Connection, len(targets)), nil
	}

	pool := workerpool.New(cfg.MaxWorkers)
	pool.Start()
	defer pool.Stop()

	out := make([]*Connection, len(targets))
	g, gctx := errgroup.WithContext(ctx)
	for j := range targets {
		j := j
		g.Go(func() error {
			best, err := refineOneTarget(gctx, entries, targets[j], eps, pool)
			if err != nil {
				return err
			}
			out[j] = best
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func buildSkeletonEntries(result EnumerationResult) []*skeletonEntry {
	entries := make([]*skeletonEntry, 0, len(result.Skeletons))
	for i, skel := range result.Skeletons {
		holes := skel.InputTypes()
		pools := make([][]Value, len(holes))
		usable := true
		for k, tag := range holes {
			leaves, ok := result.Parameters[tag]
			if !ok || len(leaves) == 0 {
				usable = false
				break
			}
			pools[k] = make([]Value, len(leaves))
			for li, leaf := range leaves {
				pools[k][li] = NewConnectionValue(leaf)
			}
		}
		if !usable {
			continue
		}
		entries = append(entries, &skeletonEntry{id: i, skel: skel, pools: pools})
	}
	return entries
}

// refineOneTarget runs the seed-then-iterate refinement loop for a single
// target, using one paramEnumerator per skeleton dedicated to this
// target — an independent parameter enumerator per (skeleton, target)
// pair so targets never contend over enumerator state.
func refineOneTarget(ctx context.Context, entries []*skeletonEntry, target Value, eps float64, pool *workerpool.Pool) (*Connection, error) {
	enumerators := make(map[int]*paramEnumerator, len(entries))
	byID := make(map[int]*skeletonEntry, len(entries))
	for _, e := range entries {
		byID[e.id] = e
	}
	fr := newFrontier()

	// Phase B: one initial candidate per skeleton with a usable pool.
	for _, e := range entries {
		if len(e.pools) == 0 {
			candidate := e.skel.Clone()
			if err := seedFrontier(fr, e, candidate, target); err != nil {
				return nil, err
			}
			continue
		}
		pe := newParamEnumerator(e.pools)
		enumerators[e.id] = pe
		tuple, ok := pe.Advance()
		if !ok {
			continue
		}
		candidate := e.skel.Clone()
		if err := candidate.ApplyInputs(tuple); err != nil {
			return nil, err
		}
		if err := seedFrontier(fr, e, candidate, target); err != nil {
			return nil, err
		}
	}

	if fr.Len() == 0 {
		return nil, nil
	}

	// Phase C: iterate rounds to convergence.
	for round := 0; ; round++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		ordered := fr.Ordered()
		if best, ok := fr.Best(); ok && best.CostH < eps {
			break
		}

		logx.DEBUG("refine: round %d, frontier size %d", round, len(ordered))

		// process is a single flag shared by every task dispatched this
		// round: the first task to improve on its baseline clears it,
		// short-circuiting every sibling task still enumerating so a
		// round's wasted work is bounded by the first winner, not by the
		// slowest skeleton's parameter pool.
		process := int32(1)

		next := newFrontier()
		var mu sync.Mutex
		var wg sync.WaitGroup
		var firstErr error
		var errOnce sync.Once

		for _, baseline := range ordered {
			baseline := baseline
			pe := enumerators[baseline.SkeletonID]
			entry := byID[baseline.SkeletonID]
			wg.Add(1)
			pool.Submit(func() {
				defer wg.Done()
				improved, err := refineEntry(pe, entry, baseline, target, eps, &process)
				if err != nil {
					errOnce.Do(func() { firstErr = err })
					return
				}
				mu.Lock()
				next.set(improved)
				mu.Unlock()
			})
		}
		wg.Wait()
		if firstErr != nil {
			return nil, firstErr
		}

		converged := fr.equalAsMultiset(next)
		fr = next
		if converged {
			logx.DEBUG("refine: converged after round %d", round)
			break
		}
	}

	return selectBest(fr, eps), nil
}

func seedFrontier(fr *frontier, e *skeletonEntry, candidate *Connection, target Value) error {
	out, err := candidate.Output()
	if err != nil {
		return err
	}
	fr.set(Pair{
		CostH:      Heuristic(out, target),
		CostStruct: e.skel.Cost(),
		SkeletonID: e.id,
		Filled:     candidate,
	})
	return nil
}

// refineEntry is the per-frontier-entry parallel task body: while process
// is set and the enumerator has tuples left, try the next tuple; on an
// improvement, clear process (signalling every sibling task dispatched
// this round, across all skeletons, to stop) and return it.
func refineEntry(pe *paramEnumerator, entry *skeletonEntry, baseline Pair, target Value, eps float64, process *int32) (Pair, error) {
	if pe == nil {
		return baseline, nil
	}
	for atomic.LoadInt32(process) != 0 {
		tuple, ok := pe.Advance()
		if !ok {
			break
		}
		candidate := entry.skel.Clone()
		if err := candidate.ApplyInputs(tuple); err != nil {
			return Pair{}, err
		}
		out, err := candidate.Output()
		if err != nil {
			return Pair{}, err
		}
		h := Heuristic(out, target)
		if h < baseline.CostH+eps {
			atomic.StoreInt32(process, 0)
			return Pair{
				CostH:      h,
				CostStruct: entry.skel.Cost(),
				SkeletonID: baseline.SkeletonID,
				Filled:     candidate,
			}, nil
		}
	}
	return baseline, nil
}

// selectBest picks the eps-tie set around the frontier's best entry,
// cheapest structural cost first.
func selectBest(f *frontier, eps float64) *Connection {
	best, ok := f.Best()
	if !ok {
		return nil
	}
	tied := make([]Pair, 0)
	for _, p := range f.Ordered() {
		if p.CostH < best.CostH+eps {
			tied = append(tied, p)
		}
	}
	sort.SliceStable(tied, func(i, j int) bool { return tied[i].CostStruct < tied[j].CostStruct })
	return tied[0].Filled
}
