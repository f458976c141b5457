// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Shopledger Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"fmt"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/shopledger/shopd/fault"
	"github.com/shopledger/shopd/storage"
)

const (
	databaseFileName = "test.leveldb"
	logDirectory     = "testing"
)

// remove all files created by test
func removeFiles() {
	os.RemoveAll(databaseFileName)
	os.RemoveAll(logDirectory)
}

// configure for testing
func setup(t *testing.T) {
	removeFiles()

	err := storage.Initialise(databaseFileName)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

// post test cleanup
func teardown(t *testing.T) {
	storage.Finalise()
	removeFiles()
}

// main entry point for tests in this package
func TestMain(m *testing.M) {
	removeFiles()
	os.Mkdir(logDirectory, 0o700)

	logging := logger.Configuration{
		Directory: logDirectory,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	err := logger.Initialise(logging)
	if nil != err {
		fmt.Printf("logger setup failed with error: %s\n", err)
		os.Exit(1)
	}
	_ = fault.Initialise()

	result := m.Run()

	fault.Finalise()
	logger.Finalise()
	removeFiles()
	os.Exit(result)
}
