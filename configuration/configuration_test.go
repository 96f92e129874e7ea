// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 EduChain Vietnam
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/educhain-vn/eduledgerd/configuration"
)

type testConfiguration struct {
	Chain   string   `gluamapper:"chain"`
	Listen  []string `gluamapper:"listen"`
	Clients uint64   `gluamapper:"maximum_connections"`
}

const script = `
local M = {}
M.chain = "testing"
M.listen = { "127.0.0.1:2130", "[::1]:2130" }
M.maximum_connections = 50
return M
`

func TestParseConfigurationFile(t *testing.T) {
	f, err := ioutil.TempFile("", "configuration-*.lua")
	if nil != err {
		t.Fatalf("temp file error: %s", err)
	}
	defer os.Remove(f.Name())

	_, err = f.WriteString(script)
	if nil != err {
		t.Fatalf("write error: %s", err)
	}
	f.Close()

	var config testConfiguration
	err = configuration.ParseConfigurationFile(f.Name(), &config)
	assert.Nil(t, err, "wrong ParseConfigurationFile")
	assert.Equal(t, "testing", config.Chain, "wrong chain")
	assert.Equal(t, []string{"127.0.0.1:2130", "[::1]:2130"}, config.Listen, "wrong listen")
	assert.Equal(t, uint64(50), config.Clients, "wrong maximum connections")
}

func TestParseConfigurationFileWhenMissing(t *testing.T) {
	var config testConfiguration
	err := configuration.ParseConfigurationFile("no-such-file.lua", &config)
	assert.NotNil(t, err, "missing file error")
}
