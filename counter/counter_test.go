// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/offerd/counter"
)

func TestCounter(t *testing.T) {
	var c counter.Counter

	assert.True(t, c.IsZero(), "initial value not zero")

	wg := sync.WaitGroup{}
	for i := 0; i < 10; i += 1 {
		wg.Add(1)
		go func() {
			for j := 0; j < 100; j += 1 {
				c.Increment()
			}
			wg.Done()
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(1000), c.Uint64(), "wrong count")

	c.Decrement()
	assert.Equal(t, uint64(999), c.Uint64(), "wrong count after decrement")
	assert.False(t, c.IsZero(), "unexpected zero")
}
