// Package queue implements the work queue of script regions waiting to be decoded.
package queue

import (
	"fmt"

	"github.com/retroenv/retrogolib/set"
)

// DefaultCapacity is the maximum number of regions a queue holds by default.
const DefaultCapacity = 50

// Status is the result of an enqueue operation.
type Status int

const (
	StatusAdded     Status = iota // region was registered
	StatusDuplicate               // a region with the same start offset exists
	StatusFull                    // queue is at capacity, region was dropped
)

func (s Status) String() string {
	switch s {
	case StatusAdded:
		return "added"
	case StatusDuplicate:
		return "duplicate"
	case StatusFull:
		return "full"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Region is a contiguous byte range of the ROM that contains one script.
type Region struct {
	Start   uint32 // start rom offset
	End     uint32 // end rom offset, exclusive
	Decoded bool
}

func (r Region) String() string {
	return fmt.Sprintf("%08X-%08X", r.Start, r.End)
}

// Queue is an append-only list of regions with a fixed capacity.
// Start offsets are unique, which prevents endless reprocessing of
// scripts that reference each other.
type Queue struct {
	capacity int
	regions  []Region
	starts   set.Set[uint32]
}

// New returns a new queue. A capacity of 0 or less uses DefaultCapacity.
func New(capacity int) *Queue {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Queue{
		capacity: capacity,
		regions:  make([]Region, 0, capacity),
		starts:   set.New[uint32](),
	}
}

// Enqueue registers the region [start, end) unless a region with the same
// start offset exists or the queue is full.
func (q *Queue) Enqueue(start, end uint32) Status {
	if q.starts.Contains(start) {
		return StatusDuplicate
	}
	if len(q.regions) >= q.capacity {
		return StatusFull
	}

	q.starts.Add(start)
	q.regions = append(q.regions, Region{
		Start: start,
		End:   end,
	})
	return StatusAdded
}

// Next returns the first region in insertion order that is not decoded yet.
func (q *Queue) Next() (Region, bool) {
	for _, region := range q.regions {
		if !region.Decoded {
			return region, true
		}
	}
	return Region{}, false
}

// MarkDecoded flags the region with the given start offset as decoded.
// It returns false if no such region is registered.
func (q *Queue) MarkDecoded(start uint32) bool {
	for i := range q.regions {
		if q.regions[i].Start == start {
			q.regions[i].Decoded = true
			return true
		}
	}
	return false
}

// Pending returns the number of regions that are not decoded yet.
func (q *Queue) Pending() int {
	var count int
	for _, region := range q.regions {
		if !region.Decoded {
			count++
		}
	}
	return count
}

// Len returns the number of registered regions.
func (q *Queue) Len() int {
	return len(q.regions)
}

// Capacity returns the maximum number of regions.
func (q *Queue) Capacity() int {
	return q.capacity
}

// Regions returns a copy of all registered regions in insertion order.
func (q *Queue) Regions() []Region {
	regions := make([]Region, len(q.regions))
	copy(regions, q.regions)
	return regions
}
