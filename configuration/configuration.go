// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Shopledger Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/shopledger/shopd/host"
)

// basic defaults (directories and files are relative to the "DataDirectory" from the configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLevelDBDirectory = "data"
	defaultDatabase         = "shop.leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "shopd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// DatabaseType - where the record store lives
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// ShopConfiguration - the full daemon configuration
type ShopConfiguration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string               `gluamapper:"pidfile" json:"pidfile"`
	Transfer      string               `gluamapper:"transfer" json:"transfer"`
	Database      DatabaseType         `gluamapper:"database" json:"database"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// TransferKind - the ledger selected for sale payments
func (config *ShopConfiguration) TransferKind() (host.TransferKind, error) {
	return host.KindFromString(config.Transfer)
}

// DatabaseFile - resolved path of the record store
func (config *ShopConfiguration) DatabaseFile() string {
	return filepath.Join(config.Database.Directory, config.Database.Name)
}

// GetConfiguration - read, decode and verify the configuration
func GetConfiguration(configurationFileName string) (*ShopConfiguration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	options := &ShopConfiguration{
		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default
		Transfer:      host.Native.String(),

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultDatabase,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{
				logger.DefaultTag: "critical",
			},
		},
	}

	if err := ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	options.DataDirectory = strings.TrimSpace(options.DataDirectory)
	if "" == options.DataDirectory {
		return nil, fmt.Errorf("data_directory cannot be blank")
	}

	// ensure absolute data directory
	options.DataDirectory, err = filepath.Abs(filepath.Clean(options.DataDirectory))
	if nil != err {
		return nil, fmt.Errorf("data_directory: %q does not resolve to absolute path", options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	fileInfo, err := os.Stat(options.DataDirectory)
	if nil != err {
		return nil, err
	}
	if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path: %q is not a directory", options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = ensureAbsolute(options.DataDirectory, *f)
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.PidFile,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = ensureAbsolute(options.DataDirectory, *f)
		}
	}

	// the transfer kind must be recognised
	_, err = options.TransferKind()
	if nil != err {
		return nil, fmt.Errorf("transfer: %q is not a recognised ledger kind", options.Transfer)
	}

	return options, nil
}

// ensureAbsolute - ensure the path is absolute
//
// if not, prepend the directory to make absolute path
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}
