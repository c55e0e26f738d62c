// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package catalog

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

type MembersConfig struct {
	MaxBorrowedBooks int `yaml:"max_borrowed_books"`
}

type TitlesConfig struct {
	CacheTTL        time.Duration `yaml:"cache_ttl"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

type AuthorsConfig struct {
	FilterBits   uint `yaml:"filter_bits"`
	FilterHashes uint `yaml:"filter_hashes"`
}

// Config holds the tunables of a Library.
type Config struct {
	Members MembersConfig `yaml:"members"`
	Titles  TitlesConfig  `yaml:"titles"`
	Authors AuthorsConfig `yaml:"authors"`
}

var defaultConfig = Config{
	Members: MembersConfig{
		MaxBorrowedBooks: 5,
	},
	Titles: TitlesConfig{
		CacheTTL:        defaultTitleCacheExpiration,
		CleanupInterval: defaultTitleCacheCleanup,
	},
	Authors: AuthorsConfig{
		FilterBits:   1 << 13,
		FilterHashes: 4,
	},
}

// DefaultConfig returns a copy of the built-in configuration.
func DefaultConfig() *Config {
	c := defaultConfig
	return &c
}

// LoadConfig reads a YAML config from path on fs. A missing file yields the
// defaults. Fields left out of the file keep their default values.
func LoadConfig(fs FileSystem, path string) (*Config, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, errors.Wrapf(err, "read config %s", path)
	}

	config := DefaultConfig()
	if err = yaml.Unmarshal(data, config); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	config.fillDefaults()

	return config, nil
}

// WriteDefaultConfig stores the default configuration at path.
func WriteDefaultConfig(fs FileSystem, path string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return errors.Wrap(err, "marshal default config")
	}

	if err = afero.WriteFile(fs, path, data, 0644); err != nil {
		return errors.Wrapf(err, "write config %s", path)
	}

	return nil
}

func (c *Config) fillDefaults() {
	if c.Members.MaxBorrowedBooks <= 0 {
		c.Members.MaxBorrowedBooks = defaultConfig.Members.MaxBorrowedBooks
	}
	if c.Titles.CacheTTL <= 0 {
		c.Titles.CacheTTL = defaultConfig.Titles.CacheTTL
	}
	if c.Titles.CleanupInterval <= 0 {
		c.Titles.CleanupInterval = defaultConfig.Titles.CleanupInterval
	}
	if c.Authors.FilterBits == 0 {
		c.Authors.FilterBits = defaultConfig.Authors.FilterBits
	}
	if c.Authors.FilterHashes == 0 {
		c.Authors.FilterHashes = defaultConfig.Authors.FilterHashes
	}
}
