// SPDX-FileCopyrightText: Copyright 2026 The wotengine Authors
// SPDX-License-Identifier: Apache-2.0

package trust

import (
	"container/heap"

	"github.com/revtrust/wotengine/pkg/ids"
)

// visit is one frontier item: (effective trust level, distance, id). The
// frontier always extracts the highest trust level first, breaking ties
// by smaller distance, then by Id, giving deterministic, stable pop order
// regardless of insertion sequence.
type visit struct {
	level    ids.TrustLevel
	distance uint64
	id       ids.Id
}

// less reports whether a should be popped before b.
func (a visit) less(b visit) bool {
	if a.level != b.level {
		return a.level > b.level
	}
	if a.distance != b.distance {
		return a.distance < b.distance
	}
	return a.id.Compare(b.id) < 0
}

// frontier is a container/heap priority queue of visits. It is an
// ordered-set substitute: Go has no built-in ordered set, and
// container/heap gives the one property actually required, deterministic
// stable extraction of the minimum (here: best) tuple, without pulling in
// a tree library nothing in this module's dependency pack provides.
type frontier []visit

func (f frontier) Len() int            { return len(f) }
func (f frontier) Less(i, j int) bool  { return f[i].less(f[j]) }
func (f frontier) Swap(i, j int)       { f[i], f[j] = f[j], f[i] }
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(visit)) }
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}

func newFrontier() *frontier {
	f := frontier{}
	heap.Init(&f)
	return &f
}

func (f *frontier) push(v visit) {
	heap.Push(f, v)
}

func (f *frontier) pop() (visit, bool) {
	if f.Len() == 0 {
		return visit{}, false
	}
	return heap.Pop(f).(visit), true
}
