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

import "github.com/pkg/errors"

var (
	ErrInvalidBook       = errors.New("invalid book record")
	ErrBookExists        = errors.New("book already exists")
	ErrBookNotFound      = errors.New("book not found")
	ErrBookOnLoan        = errors.New("book is on loan")
	ErrMemberExists      = errors.New("member already exists")
	ErrMemberNotFound    = errors.New("member not found")
	ErrBorrowLimit       = errors.New("member reached the borrow limit")
	ErrAlreadyBorrowed   = errors.New("member already holds this book")
	ErrNoCopiesAvailable = errors.New("no copies available")
	ErrNotBorrowed       = errors.New("member does not hold this book")

	// ErrMissingColumn is returned when a CSV header lacks a required column.
	ErrMissingColumn = errors.New("missing csv column")
)
