package region

import (
	"context"
	"fmt"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/google/uuid"

	"github.com/katalvlaran/acr/grid"
)

// Build decomposes the free area around hill into a region tree, claiming
// cells in g as regions are finalized.
//
// Growth is depth-first: a region is probed, trimmed, and claimed, then each
// of its child seeds is grown in edge-scan order before the next sibling.
// With WithParallel(n>1) all seeds of one depth are grown concurrently instead.
//
// A child branch whose region cannot be grown is recorded in Tree.Skipped and
// left out; the rest of the tree is unaffected. Hitting MaxRegions or MaxDepth
// sets Tree.Truncated and ends recursion without an error.
//
// Cancellation is checked before every region. On cancellation the partial
// tree is returned with ctx.Err(); regions already claimed stay valid.
//
// Errors:
//   - ErrNilGrid: g is nil.
//   - *BranchError wrapping ErrInvalidSeed, ErrRegionCreation or
//     ErrRegionTooSmall when the root region itself cannot be grown.
//   - ctx.Err() on cancellation (with the partial tree).
//
// g is mutated and must not be used by anyone else until Build returns.
func Build(ctx context.Context, g *grid.Grid, hill grid.Point, opts ...Option) (*Tree, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	t := &Tree{
		BuildID:   uuid.New(),
		Hill:      hill,
		Reachable: g.ReachableFrom(hill),
		byID:      make(map[int]int),
	}
	b := &builder{ctx: ctx, g: g, cfg: cfg, tree: t}

	reg, dropped, err := b.grow(hill, cfg.RootOrder, 0, 1)
	if err != nil {
		return nil, &BranchError{Seed: hill, Order: cfg.RootOrder, Err: err}
	}
	t.Root = b.finalize(reg, dropped)
	b.nextID = 2

	if cfg.Workers > 1 {
		err = b.expandLevels([]int{t.Root})
	} else {
		err = b.descend(t.Root)
	}

	logs.WithTag(buildIDTag, b.tree.BuildID.String()).
		WithTag("regions", len(t.Regions)).
		WithTag("skipped", len(t.Skipped)).
		WithTag("truncated", t.Truncated).
		Info("region tree built")
	return t, err
}

const buildIDTag = "build_id"

type builder struct {
	ctx    context.Context
	g      *grid.Grid
	cfg    Options
	tree   *Tree
	nextID int
	stop   bool
}

// grow runs feelers, shrink and claim for one seed and computes its child seeds.
// It reads only the builder's configuration and grid, so parallel workers may
// call it concurrently.
func (b *builder) grow(seed grid.Point, order, parent, id int) (Region, int, error) {
	feeler, origin, err := Feel(b.g, seed, b.cfg.MaxNookRetries)
	if err != nil {
		return Region{}, 0, err
	}
	rect, err := b.claim(feeler, origin, id)
	if err != nil {
		return Region{}, 0, err
	}
	seeds, dropped := ChildSeeds(b.g, rect, b.cfg.MaxSeeds)

	return Region{
		ID:         id,
		Order:      order,
		Parent:     parent,
		Rect:       rect,
		Seed:       seed,
		Origin:     origin,
		ChildSeeds: seeds,
	}, dropped, nil
}

// claim trims the feeler rectangle and claims it for id. In parallel mode a
// lost race re-runs the shrink, which now sees the rival's cells as claimed.
func (b *builder) claim(feeler grid.Rect, origin grid.Point, id int) (grid.Rect, error) {
	if b.cfg.Workers <= 1 {
		rect, err := Shrink(b.g, feeler, origin)
		if err != nil {
			return grid.Rect{}, err
		}
		return rect, b.g.Claim(rect, id)
	}

	var lost []grid.Point
	for attempt := 0; attempt <= b.cfg.MaxClaimRetries; attempt++ {
		if !b.g.Free(origin) {
			return grid.Rect{}, fmt.Errorf("%w: %s claimed by a concurrent region", ErrInvalidSeed, origin)
		}
		rect, err := Shrink(b.g, feeler, origin)
		if err != nil {
			return grid.Rect{}, err
		}
		if lost, err = b.g.TryClaim(rect, id); err == nil {
			return rect, nil
		}
	}
	return grid.Rect{}, fmt.Errorf("%w: %d cells lost after %d retries", grid.ErrClaimConflict, len(lost), b.cfg.MaxClaimRetries)
}

// finalize appends a grown region to the arena and returns its index.
func (b *builder) finalize(reg Region, dropped int) int {
	t := b.tree
	idx := len(t.Regions)
	t.Regions = append(t.Regions, reg)
	t.byID[reg.ID] = idx

	regionsBuilt.Inc()
	regionArea.Observe(float64(reg.Rect.Area()))
	logs.WithTag(buildIDTag, b.tree.BuildID.String()).
		WithTag("region", reg.ID).
		WithTag("order", reg.Order).
		WithTag("rect", reg.Rect.String()).
		WithTag("seeds", len(reg.ChildSeeds)).
		Debug("region claimed")

	if dropped > 0 {
		seedOverflow.Add(float64(dropped))
		t.Warnings = append(t.Warnings, fmt.Sprintf("region %d: %d child seeds over the cap of %d dropped", reg.ID, dropped, b.cfg.MaxSeeds))
		logs.WithTag(buildIDTag, b.tree.BuildID.String()).Warn(errors.New("child seed overflow").
			WithTag("region", reg.ID).
			WithTag("kept", len(reg.ChildSeeds)).
			WithTag("dropped", dropped))
	}
	return idx
}

// skip records a branch whose region could not be grown.
func (b *builder) skip(seed grid.Point, order, parent int, err error) {
	b.tree.Skipped = append(b.tree.Skipped, BranchError{Seed: seed, Order: order, Parent: parent, Err: err})

	why := reason(err)
	branchesSkipped.WithLabelValues(why).Inc()
	entry := logs.WithTag(buildIDTag, b.tree.BuildID.String()).
		WithTag("seed", seed.String()).
		WithTag("order", order).
		WithTag("parent", parent)
	skipped := errors.New("region branch skipped").
		WithTag(reasonLabel, why).
		Wrap(err)
	if why == "invalid_seed" {
		// a sibling grown earlier already covers the seed
		entry.Debug(skipped)
		return
	}
	entry.Warn(skipped)
}

// truncate marks the tree as cut short, warning once per cause.
func (b *builder) truncate(cause string) {
	t := b.tree
	t.Truncated = true
	msg := "build truncated: " + cause
	for _, w := range t.Warnings {
		if w == msg {
			return
		}
	}
	t.Warnings = append(t.Warnings, msg)
	logs.WithTag(buildIDTag, b.tree.BuildID.String()).
		WithTag("regions", len(t.Regions)).
		Warn(errors.New("region tree truncated").WithTag("cause", cause))
}

// descend grows the children of the region at idx depth-first.
func (b *builder) descend(idx int) error {
	parent := b.tree.Regions[idx]
	order := parent.Order + 1
	for _, seed := range parent.ChildSeeds {
		if b.stop {
			return nil
		}
		if err := b.ctx.Err(); err != nil {
			b.truncate("cancelled")
			return err
		}
		if order-b.cfg.RootOrder > b.cfg.MaxDepth {
			b.truncate(fmt.Sprintf("depth budget of %d reached", b.cfg.MaxDepth))
			return nil
		}
		if len(b.tree.Regions) >= b.cfg.MaxRegions {
			b.truncate(fmt.Sprintf("region budget of %d reached", b.cfg.MaxRegions))
			b.stop = true
			return nil
		}

		reg, dropped, err := b.grow(seed, order, parent.ID, len(b.tree.Regions)+1)
		if err != nil {
			b.skip(seed, order, parent.ID, err)
			continue
		}
		child := b.finalize(reg, dropped)
		b.tree.Regions[idx].Children = append(b.tree.Regions[idx].Children, child)

		if err := b.descend(child); err != nil {
			return err
		}
	}
	return nil
}
