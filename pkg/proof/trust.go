// SPDX-FileCopyrightText: Copyright 2026 The wotengine Authors
// SPDX-License-Identifier: Apache-2.0

package proof

import (
	"time"

	"github.com/revtrust/wotengine/pkg/ids"
)

// TrustProof is a multi-subject trust statement: `from` asserts `trust`
// about every identity in `Ids`.
type TrustProof struct {
	From  ids.PublicID
	Date  time.Time
	Trust ids.TrustLevel
	Ids   []ids.PublicID
}
