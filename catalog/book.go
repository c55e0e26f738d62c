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
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Book is the record stored under its ISBN.
type Book struct {
	ISBN            string
	Title           string
	Author          string
	Year            int
	Category        string
	AvailableCopies int
}

// String formats the book on one line.
func (b Book) String() string {
	return fmt.Sprintf("%s %q by %s (%d, %s) copies=%d",
		b.ISBN, b.Title, b.Author, b.Year, b.Category, b.AvailableCopies)
}

func (b Book) validate() error {
	if b.ISBN == "" {
		return errors.Wrap(ErrInvalidBook, "empty isbn")
	}
	if b.AvailableCopies < 0 {
		return errors.Wrapf(ErrInvalidBook, "isbn %s: negative copies %d", b.ISBN, b.AvailableCopies)
	}
	return nil
}

// normalize lower-cases s and collapses runs of whitespace, so that
// "  Jane   AUSTEN " and "jane austen" compare equal.
func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
