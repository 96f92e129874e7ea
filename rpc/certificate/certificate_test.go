// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 EduChain Vietnam
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/educhain-vn/eduledgerd/rpc/certificate"
	"github.com/educhain-vn/eduledgerd/rpc/fixtures"
)

func TestGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	config, fin, err := certificate.Get(
		logger.New(fixtures.LogCategory),
		"test",
		fixtures.Certificate(),
		fixtures.Key(),
	)
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, 1, len(config.Certificates), "wrong certificate count")
	assert.NotEqual(t, [32]byte{}, fin, "empty fingerprint")
}

func TestGetWhenInvalidKeyPair(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_, _, err := certificate.Get(
		logger.New(fixtures.LogCategory),
		"test",
		"not a certificate",
		"not a key",
	)
	assert.NotNil(t, err, "missing keypair error")
}
