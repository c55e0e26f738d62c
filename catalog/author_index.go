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
	"github.com/willf/bloom"
)

// AuthorIndex maps normalised author names to the ISBNs of their books.
//
// A bloom filter sits in front of the table so that lookups of authors that
// were never added are answered without touching it. Bits are never cleared,
// so an author whose last book was removed still passes the filter and is
// then resolved by the table.
type AuthorIndex struct {
	table  map[string]*isbnList
	filter *bloom.BloomFilter
}

// NewAuthorIndex creates an index whose filter has the given number of bits
// and hash functions.
func NewAuthorIndex(filterBits, filterHashes uint) *AuthorIndex {
	return &AuthorIndex{
		table:  make(map[string]*isbnList),
		filter: bloom.New(filterBits, filterHashes),
	}
}

// Add records isbn under author. It reports false when the pair was already
// present.
func (ai *AuthorIndex) Add(author, isbn string) bool {
	key := normalize(author)

	list, ok := ai.table[key]
	if !ok {
		list = &isbnList{}
		ai.table[key] = list
		ai.filter.AddString(key)
	}
	if list.contains(isbn) {
		return false
	}
	list.insertHead(isbn)
	return true
}

// Remove drops isbn from author's list and forgets the author once the list
// is empty.
func (ai *AuthorIndex) Remove(author, isbn string) bool {
	key := normalize(author)

	list, ok := ai.table[key]
	if !ok || !list.remove(isbn) {
		return false
	}
	if list.len() == 0 {
		delete(ai.table, key)
	}
	return true
}

// ISBNs returns the ISBNs recorded for author, most recently added first, or
// nil when the author is unknown.
func (ai *AuthorIndex) ISBNs(author string) []string {
	key := normalize(author)
	if !ai.filter.TestString(key) {
		return nil
	}
	list, ok := ai.table[key]
	if !ok {
		return nil
	}
	return list.slice()
}

// MayContain reports whether author could be in the index. False is definite.
func (ai *AuthorIndex) MayContain(author string) bool {
	return ai.filter.TestString(normalize(author))
}

// Len returns the number of distinct authors.
func (ai *AuthorIndex) Len() int {
	return len(ai.table)
}
