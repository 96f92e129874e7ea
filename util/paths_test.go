// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 EduChain Vietnam
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"testing"

	"github.com/educhain-vn/eduledgerd/util"
)

func TestEnsureAbsolute(t *testing.T) {
	testData := []struct {
		directory string
		path      string
		expected  string
	}{
		{"/var/lib/eduledgerd", "data", "/var/lib/eduledgerd/data"},
		{"/var/lib/eduledgerd", "/etc/rpc.crt", "/etc/rpc.crt"},
		{"/var/lib/eduledgerd", "./log", "/var/lib/eduledgerd/log"},
		{"/var/lib", "../x", "/var/x"},
	}

	for i, item := range testData {
		actual := util.EnsureAbsolute(item.directory, item.path)
		if actual != item.expected {
			t.Errorf("%d: EnsureAbsolute(%q, %q) = %q  expected: %q", i, item.directory, item.path, actual, item.expected)
		}
	}
}
