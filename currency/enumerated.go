// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 EduChain Vietnam
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// the token denominations accepted by the ledgers
//
// eVND pays for courses and escrowed tuition, RESEARCH rewards
// plagiarism bounties
package currency

import (
	"fmt"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/educhain-vn/eduledgerd/fault"
)

// Currency - denomination enumeration
type Currency uint64

// possible currency values
const (
	Nothing      Currency = iota // this must be the first value
	EVND         Currency = iota
	Research     Currency = iota
	maximumValue Currency = iota // this must be the last value
	First        Currency = Nothing + 1
	Last         Currency = maximumValue - 1
	Count        int      = int(Last) // count of currencies
)

// internal conversion
func toString(c Currency) ([]byte, error) {
	switch c {
	case Nothing:
		return []byte{}, nil
	case EVND:
		return []byte("evnd"), nil
	case Research:
		return []byte("research"), nil
	default:
		return []byte{}, fault.InvalidCurrency
	}
}

// convert a string to a currency
func fromString(in string) (Currency, error) {
	switch strings.ToLower(in) {
	case "":
		return Nothing, nil
	case "evnd":
		return EVND, nil
	case "research":
		return Research, nil
	default:
		return Nothing, fault.InvalidCurrency
	}
}

// String - convert a currency to its denomination string
func (currency Currency) String() string {
	s, err := toString(currency)
	if nil != err {
		logger.Panicf("invalid currency enumeration: %d", currency)
	}
	return string(s)
}

// GoString - enum value and denomination, for debugging
func (currency Currency) GoString() string {
	return fmt.Sprintf("<Currency#%d:%q>", currency, currency.String())
}

// IsValid - valid currency if in range of First to Last
//
// Nothing is not considered as valid
func (currency Currency) IsValid() bool {
	return currency >= First && currency <= Last
}

// FromString - parse a denomination string
func FromString(in string) (Currency, error) {
	return fromString(in)
}
