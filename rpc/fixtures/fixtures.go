// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 EduChain Vietnam
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}

var (
	certOnce    sync.Once
	certificate []byte
	key         []byte
)

func generate() {
	var err error
	validUntil := time.Now().Add(time.Hour)
	certificate, key, err = certgen.NewTLSCertPair("testing", validUntil, false, nil)
	if nil != err {
		logger.Panicf("generate certificate error: %s", err)
	}
}

// Certificate - PEM encoded self-signed test certificate
func Certificate() string {
	certOnce.Do(generate)
	return string(certificate)
}

// Key - PEM encoded private key matching Certificate
func Key() string {
	certOnce.Do(generate)
	return string(key)
}
