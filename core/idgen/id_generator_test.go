// Copyright 2025 - 2026, the loctool contributors
// SPDX-License-Identifier: AGPL-3.0-only

package idgen

import (
	"testing"
	"time"
)

func TestGenerate(t *testing.T) {
	t.Parallel()

	now := time.Now()

	if now.Format("20060102")+"-"+now.Format("150405") != maketime(now) {
		t.Error("time part incorrect")
	}

	id := Make()
	if len(id) != len("20060102-150405")+4 {
		t.Errorf("id length = %d", len(id))
	}
}
