package beamgrid

import (
	"sync"
)

type Category uint8

const (
	Pass    Category = iota // beam continued straight
	Split                   // beam split in two on a splitter
	Reflect                 // beam turned on a mirror
	Exit                    // beam left the grid
	Loop                    // beam reached an already visited state
	numCategories
)

var categoryNames = [numCategories]string{"pass", "split", "reflect", "exit", "loop"}

func (c Category) String() string {
	if c < numCategories {
		return categoryNames[c]
	}
	return "unknown"
}

type BeamLog struct {
	Category Category
	State    State
}

type BeamLogCache struct {
	mu     sync.Mutex
	counts [numCategories]int
	events []BeamLog // capped at MaxBeamLogEvents
}

var cache = &BeamLogCache{}

func logBeam(category Category, st State) {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	cache.counts[category]++
	if len(cache.events) < MaxBeamLogEvents {
		cache.events = append(cache.events, BeamLog{Category: category, State: st})
	}
}

// classify names what tile t did to a beam that left it along outs.
func classify(t Tile, outs []Direction) Category {
	switch {
	case len(outs) == 2:
		return Split
	case t == MirrorSlash || t == MirrorBackslash:
		return Reflect
	}
	return Pass
}

func resetBeamLog() {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	cache.counts = [numCategories]int{}
	cache.events = nil
}

func beamStats() {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	for c := Category(0); c < numCategories; c++ {
		logger.Debug("beam events", "category", c.String(), "count", cache.counts[c])
	}
	logger.Debug("beam events kept", "count", len(cache.events))
	for _, ev := range cache.events {
		logger.Debug("beam event", "category", ev.Category.String(), "state", ev.State.String())
	}
}
