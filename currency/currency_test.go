// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 EduChain Vietnam
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package currency_test

import (
	"encoding/json"
	"testing"

	"github.com/educhain-vn/eduledgerd/currency"
	"github.com/educhain-vn/eduledgerd/fault"
)

func TestString(t *testing.T) {
	if s := currency.EVND.String(); s != "evnd" {
		t.Errorf("EVND string: %q  expected: %q", s, "evnd")
	}
	if s := currency.Research.String(); s != "research" {
		t.Errorf("Research string: %q  expected: %q", s, "research")
	}
}

func TestFromString(t *testing.T) {
	c, err := currency.FromString("EVND")
	if nil != err {
		t.Fatalf("FromString error: %s", err)
	}
	if c != currency.EVND {
		t.Errorf("parsed: %#v  expected: %#v", c, currency.EVND)
	}

	_, err = currency.FromString("dogecoin")
	if fault.InvalidCurrency != err {
		t.Errorf("error: %v  expected: %v", err, fault.InvalidCurrency)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	buffer, err := json.Marshal(currency.Research)
	if nil != err {
		t.Fatalf("marshal error: %s", err)
	}
	if string(buffer) != `"research"` {
		t.Errorf("marshal: %s  expected: %q", buffer, `"research"`)
	}

	var c currency.Currency
	err = json.Unmarshal(buffer, &c)
	if nil != err {
		t.Fatalf("unmarshal error: %s", err)
	}
	if c != currency.Research {
		t.Errorf("unmarshal: %#v  expected: %#v", c, currency.Research)
	}
}
