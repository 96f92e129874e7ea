// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 EduChain Vietnam
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/educhain-vn/eduledgerd/fault"
)

// test that each class predicate only matches its own class
func TestErrorClasses(t *testing.T) {

	items := []struct {
		err          error
		exists       bool
		invalid      bool
		notFound     bool
		state        bool
		unauthorized bool
		funds        bool
		process      bool
	}{
		{fault.SeatAlreadyExists, true, false, false, false, false, false, false},
		{fault.ProgressOutOfRange, false, true, false, false, false, false, false},
		{fault.TokenNotFound, false, false, true, false, false, false, false},
		{fault.EscrowAlreadyReleased, false, false, false, true, false, false, false},
		{fault.NotTokenOwner, false, false, false, false, true, false, false},
		{fault.InsufficientFunds, false, false, false, false, false, true, false},
		{fault.AlreadyInitialised, false, false, false, false, false, false, true},
	}

	for i, item := range items {
		if fault.IsErrExists(item.err) != item.exists {
			t.Errorf("%d: IsErrExists(%q) != %v", i, item.err, item.exists)
		}
		if fault.IsErrInvalid(item.err) != item.invalid {
			t.Errorf("%d: IsErrInvalid(%q) != %v", i, item.err, item.invalid)
		}
		if fault.IsErrNotFound(item.err) != item.notFound {
			t.Errorf("%d: IsErrNotFound(%q) != %v", i, item.err, item.notFound)
		}
		if fault.IsErrState(item.err) != item.state {
			t.Errorf("%d: IsErrState(%q) != %v", i, item.err, item.state)
		}
		if fault.IsErrUnauthorized(item.err) != item.unauthorized {
			t.Errorf("%d: IsErrUnauthorized(%q) != %v", i, item.err, item.unauthorized)
		}
		if fault.IsErrFunds(item.err) != item.funds {
			t.Errorf("%d: IsErrFunds(%q) != %v", i, item.err, item.funds)
		}
		if fault.IsErrProcess(item.err) != item.process {
			t.Errorf("%d: IsErrProcess(%q) != %v", i, item.err, item.process)
		}
	}
}
