package region

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/acr/grid"
)

// job is one child seed scheduled for concurrent growth.
type job struct {
	seed   grid.Point
	parent int // arena index of the issuing region
	order  int
	id     int
}

type outcome struct {
	reg       Region
	dropped   int
	err       error
	cancelled bool
}

// expandLevels grows the tree one depth at a time. Every seed of a level is
// grown on a bounded pool of workers; ids are reserved in seed order before
// launch and results are appended to the arena in that same order, so only
// the geometry, not the arena layout, depends on scheduling.
func (b *builder) expandLevels(level []int) error {
	t := b.tree
	for len(level) > 0 {
		var jobs []job
		for _, idx := range level {
			parent := t.Regions[idx]
			order := parent.Order + 1
			if len(parent.ChildSeeds) > 0 && order-b.cfg.RootOrder > b.cfg.MaxDepth {
				b.truncate(fmt.Sprintf("depth budget of %d reached", b.cfg.MaxDepth))
				continue
			}
			for _, seed := range parent.ChildSeeds {
				jobs = append(jobs, job{seed: seed, parent: idx, order: order})
			}
		}
		if room := b.cfg.MaxRegions - len(t.Regions); len(jobs) > room {
			jobs = jobs[:room]
			b.truncate(fmt.Sprintf("region budget of %d reached", b.cfg.MaxRegions))
		}
		if len(jobs) == 0 {
			return nil
		}
		if err := b.ctx.Err(); err != nil {
			b.truncate("cancelled")
			return err
		}
		for i := range jobs {
			jobs[i].id = b.nextID
			b.nextID++
		}

		results := b.run(jobs)

		level = level[:0:0]
		for i, res := range results {
			j := jobs[i]
			if res.cancelled {
				continue
			}
			if res.err != nil {
				b.skip(j.seed, j.order, t.Regions[j.parent].ID, res.err)
				continue
			}
			child := b.finalize(res.reg, res.dropped)
			t.Regions[j.parent].Children = append(t.Regions[j.parent].Children, child)
			level = append(level, child)
		}
		if err := b.ctx.Err(); err != nil {
			b.truncate("cancelled")
			return err
		}
	}
	return nil
}

// run grows jobs on at most cfg.Workers goroutines and returns outcomes in job order.
func (b *builder) run(jobs []job) []outcome {
	results := make([]outcome, len(jobs))
	sem := make(chan struct{}, b.cfg.Workers)
	var wg sync.WaitGroup

	for i := range jobs {
		if b.ctx.Err() != nil {
			results[i].cancelled = true
			continue
		}
		sem <- struct{}{}
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()

			j := jobs[i]
			parentID := b.tree.Regions[j.parent].ID
			reg, dropped, err := b.grow(j.seed, j.order, parentID, j.id)
			results[i] = outcome{reg: reg, dropped: dropped, err: err}
		}(i)
	}
	wg.Wait()
	return results
}
