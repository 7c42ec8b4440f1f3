package pregen

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/matryer/is"

	lootgen "github.com/reoring/lootgen"
	"github.com/reoring/lootgen/loot"
	"github.com/reoring/lootgen/pack"
)

func TestPool_RunsEveryRoutine(t *testing.T) {
	is := is.New(t)
	mem := pack.NewMemory()
	p := New(WithWorkers(3))
	for i := range 10 {
		id, err := lootgen.NewIdentifier("mod", fmt.Sprintf("blocks/ore_%d", i))
		is.NoErr(err)
		p.Submit(id.String(), func(context.Context) error {
			table := loot.NewTable(loot.BlockTableType).Pool(loot.NewPool().
				Entry(loot.NewEntryOf(loot.ItemEntryType).Name(id)))
			_, err := pack.AddLootTable(mem, id, table)
			return err
		})
	}
	is.Equal(p.Len(), 10)
	is.NoErr(p.Run(context.Background()))
	is.Equal(len(mem.Paths()), 10)
}

func TestPool_RespectsWorkerLimit(t *testing.T) {
	is := is.New(t)
	var running, peak atomic.Int32
	p := New(WithWorkers(2))
	for range 8 {
		p.Submit("sleep", func(context.Context) error {
			n := running.Add(1)
			for {
				old := peak.Load()
				if n <= old || peak.CompareAndSwap(old, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			running.Add(-1)
			return nil
		})
	}
	is.NoErr(p.Run(context.Background()))
	is.True(peak.Load() <= 2)
}

func TestPool_FirstErrorCancelsOthers(t *testing.T) {
	is := is.New(t)
	boom := errors.New("boom")
	p := New(WithWorkers(2))
	p.Submit("fails", func(context.Context) error { return boom })
	p.Submit("waits", func(ctx context.Context) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(5 * time.Second):
			return errors.New("not cancelled")
		}
	})

	err := p.Run(context.Background())
	is.True(errors.Is(err, boom))
	is.Equal(err.Error(), "pregen: fails: boom")
}
