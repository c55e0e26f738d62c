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
	"io"
	"log/slog"

	"github.com/spf13/afero"
)

type options struct {
	// Borrow limit, title cache timing and author filter sizing.
	config *Config

	// The file system books.csv is read from and written to. The default
	// file system is implemented by os package.
	fs FileSystem

	// Receives load summaries, duplicate and rejected rows.
	logger *slog.Logger

	// When set, CSV loads draw a progress bar here.
	progress io.Writer
}

func defaultOptions() *options {
	return &options{
		config: DefaultConfig(),
		fs:     afero.NewOsFs(),
		logger: defaultLogger(),
	}
}

type Option interface {
	apply(*options)
}

type funcOption struct {
	fn func(*options)
}

func (funcOpt funcOption) apply(o *options) {
	funcOpt.fn(o)
}

func newFuncOption(fn func(*options)) *funcOption {
	return &funcOption{
		fn: fn,
	}
}

// WithConfig replaces the default configuration. Zero fields fall back to
// their defaults.
func WithConfig(config *Config) Option {
	return newFuncOption(func(o *options) {
		if config == nil {
			return
		}
		c := *config
		c.fillDefaults()
		o.config = &c
	})
}

// WithFileSystem set the file system to access.
func WithFileSystem(fs FileSystem) Option {
	return newFuncOption(func(o *options) {
		o.fs = fs
	})
}

// WithLogger set the logger used for load reports.
func WithLogger(logger *slog.Logger) Option {
	return newFuncOption(func(o *options) {
		o.logger = logger
	})
}

// WithProgress makes CSV loads render a progress bar on w.
func WithProgress(w io.Writer) Option {
	return newFuncOption(func(o *options) {
		o.progress = w
	})
}
