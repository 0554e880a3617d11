// SPDX-FileCopyrightText: Copyright 2026 The wotengine Authors
// SPDX-License-Identifier: Apache-2.0

package timestamped

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeFromNewerWins(t *testing.T) {
	t.Parallel()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ts := Of(base, "old")

	changed := ts.MergeFrom(Of(base.Add(time.Hour), "new"))
	require.True(t, changed)
	assert.Equal(t, "new", ts.Value)
	assert.Equal(t, base.Add(time.Hour), ts.Date)
}

func TestMergeFromOlderLoses(t *testing.T) {
	t.Parallel()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ts := Of(base, "current")

	changed := ts.MergeFrom(Of(base.Add(-time.Hour), "stale"))
	require.False(t, changed)
	assert.Equal(t, "current", ts.Value)
}

func TestMergeFromEqualTimestampOverwrites(t *testing.T) {
	t.Parallel()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ts := Of(base, "first")

	// The documented tie-break: on an exact timestamp match the later
	// call wins, not the earlier one.
	changed := ts.MergeFrom(Of(base, "second"))
	require.True(t, changed)
	assert.Equal(t, "second", ts.Value)
}
