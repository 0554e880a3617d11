// SPDX-FileCopyrightText: Copyright 2026 The wotengine Authors
// SPDX-License-Identifier: Apache-2.0

package trust

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"

	"github.com/revtrust/wotengine/pkg/ids"
)

// EdgeSource is the one thing the trust engine needs from the proof
// store: a snapshot of one identity's outgoing trust edges. Keeping this
// as a narrow interface rather than depending on *store.Store directly
// keeps the traversal testable against a handful of literal edges.
type EdgeSource interface {
	TrustEdgesFrom(id ids.Id) map[ids.Id]ids.TrustLevel
}

// CounterSource exposes the store's insertion counter, used to key the
// memoized TrustSet cache: any successful package-review ingestion can in
// principle add a new trust-relevant review, so a cached result is only
// valid as long as the counter it was computed under hasn't moved.
type CounterSource interface {
	InsertionCounter() uint64
}

// Source is what Engine needs from the proof store: edges to traverse,
// and a counter to know when a cached TrustSet has gone stale.
type Source interface {
	EdgeSource
	CounterSource
}

type trustSetCacheKey struct {
	root    ids.Id
	params  TrustDistanceParams
	counter uint64
}

// cacheSize bounds how many (root, params, counter) TrustSets are kept
// around at once; a stale entry is never evicted by invalidation (its key
// simply stops being requested once the counter moves on), only by LRU
// pressure, so a modest bound keeps memory flat under repeated queries
// against a slowly-growing store.
const cacheSize = 256

// Engine computes TrustSets by walking the edges exposed by a Source, and
// memoizes the result per (root, params, insertion counter) so repeated
// queries against a quiescent store don't re-walk the graph.
type Engine struct {
	edges   EdgeSource
	counter CounterSource
	cache   *lru.Cache[trustSetCacheKey, *TrustSet]
}

// NewEngine returns an Engine reading trust edges and the insertion
// counter from src.
func NewEngine(src Source) *Engine {
	cache, err := lru.New[trustSetCacheKey, *TrustSet](cacheSize)
	if err != nil {
		// Only returns an error for a non-positive size, which cacheSize
		// never is.
		panic(err)
	}
	return &Engine{edges: src, counter: src, cache: cache}
}

// Calculate computes the TrustSet reachable from root under params,
// serving a memoized result when the store hasn't ingested anything new
// since it was computed.
func (e *Engine) Calculate(ctx context.Context, root ids.Id, params TrustDistanceParams) *TrustSet {
	key := trustSetCacheKey{root: root, params: params, counter: e.counter.InsertionCounter()}
	if cached, ok := e.cache.Get(key); ok {
		return cached
	}
	ts := e.calculate(ctx, root, params)
	e.cache.Add(key, ts)
	return ts
}

// calculate runs the restart loop from scratch. It
// restarts the traversal whenever a pass discovers distrust the previous
// pass didn't know about, so that a low-trust ban encountered late in one
// pass is honored from the very start of the next. The loop always
// terminates: each restart's banned set only ever grows, bounded by the
// number of known identities.
func (e *Engine) calculate(ctx context.Context, root ids.Id, params TrustDistanceParams) *TrustSet {
	banned := map[ids.Id]*DistrustedEntry{}
	for {
		ts := e.traverse(root, params, banned)
		if len(ts.Distrusted) <= len(banned) {
			return ts
		}
		zerolog.Ctx(ctx).Debug().
			Int("previously_banned", len(banned)).
			Int("now_banned", len(ts.Distrusted)).
			Msg("restarting trust traversal after new distrust")
		banned = ts.Distrusted
	}
}

// traverse runs one pass of the frontier algorithm, seeded with the bans
// already known from a previous restart.
func (e *Engine) traverse(root ids.Id, params TrustDistanceParams, banned map[ids.Id]*DistrustedEntry) *TrustSet {
	ts := newTrustSet()
	for id, entry := range banned {
		reportedBy := make(map[ids.Id]struct{}, len(entry.ReportedBy))
		for r := range entry.ReportedBy {
			reportedBy[r] = struct{}{}
		}
		ts.Distrusted[id] = &DistrustedEntry{ReportedBy: reportedBy}
	}

	f := newFrontier()
	f.push(visit{level: ids.High, distance: 0, id: root})
	ts.Trusted[root] = &TrustedEntry{
		Distance:            0,
		EffectiveTrustLevel: ids.High,
		ReportedBy:          map[ids.Id]ids.TrustLevel{root: ids.High},
	}

	prevLevel := ids.High
	newBansThisPass := false

	for {
		cur, ok := f.pop()
		if !ok {
			break
		}
		if cur.level < prevLevel && newBansThisPass {
			break
		}
		prevLevel = cur.level

		for candidateID, directTrust := range e.edges.TrustEdgesFrom(cur.id) {
			if ts.IsDistrusted(candidateID) {
				continue
			}

			if directTrust == ids.Distrust {
				if ts.recordDistrustedID(candidateID, cur.id) {
					newBansThisPass = true
				}
				continue
			}

			eff := ids.Min(directTrust, cur.level)
			dist, traversable := params.distanceFor(eff)
			if !traversable {
				continue
			}

			d := cur.distance + dist
			if d > params.MaxDistance {
				continue
			}

			if ts.recordTrustedID(candidateID, cur.id, d, eff) {
				f.push(visit{level: eff, distance: d, id: candidateID})
			}
		}
	}

	return ts
}
