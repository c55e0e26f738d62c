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

import "slices"

// Member is a registered borrower.
type Member struct {
	ID       string
	Name     string
	Borrowed []string // ISBNs currently held, in borrow order
}

// CanBorrow reports whether the member holds fewer than limit books.
func (m *Member) CanBorrow(limit int) bool {
	return len(m.Borrowed) < limit
}

// Holds reports whether the member currently has isbn.
func (m *Member) Holds(isbn string) bool {
	return slices.Contains(m.Borrowed, isbn)
}

func (m *Member) release(isbn string) bool {
	i := slices.Index(m.Borrowed, isbn)
	if i < 0 {
		return false
	}
	m.Borrowed = slices.Delete(m.Borrowed, i, i+1)
	return true
}

func (m *Member) clone() Member {
	c := *m
	c.Borrowed = slices.Clone(m.Borrowed)
	return c
}
