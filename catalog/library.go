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
	"log/slog"
	"slices"
	"strings"

	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"

	"github.com/cybrota/shelfindex/avl"
)

// Library ties the ISBN index, the author index and the member registry
// together.
type Library struct {
	books   *avl.Tree[string, Book]
	authors *AuthorIndex
	members map[string]*Member
	titles  *cache.Cache

	opts *options
}

// New creates an empty library.
func New(opts ...Option) *Library {
	o := defaultOptions()
	for _, opt := range opts {
		opt.apply(o)
	}

	return &Library{
		books:   avl.New[string, Book](),
		authors: NewAuthorIndex(o.config.Authors.FilterBits, o.config.Authors.FilterHashes),
		members: make(map[string]*Member),
		titles:  newTitleCache(o.config.Titles.CacheTTL, o.config.Titles.CleanupInterval),
		opts:    o,
	}
}

// Len returns the number of books in the catalogue.
func (l *Library) Len() int {
	return l.books.Len()
}

// AddBook adds b to the catalogue. A book whose ISBN is already present is
// rejected with ErrBookExists and the stored record is left as it was.
func (l *Library) AddBook(b Book) error {
	b.ISBN = strings.TrimSpace(b.ISBN)
	if err := b.validate(); err != nil {
		return err
	}

	if !l.books.Insert(b.ISBN, b) {
		return errors.Wrapf(ErrBookExists, "isbn %s", b.ISBN)
	}
	l.authors.Add(b.Author, b.ISBN)
	forgetTitle(l.titles, b.Title)

	return nil
}

// RemoveBook drops a book that no member currently holds.
func (l *Library) RemoveBook(isbn string) error {
	isbn = strings.TrimSpace(isbn)
	b, ok := l.books.Search(isbn)
	if !ok {
		return errors.Wrapf(ErrBookNotFound, "isbn %s", isbn)
	}
	for _, m := range l.members {
		if m.Holds(isbn) {
			return errors.Wrapf(ErrBookOnLoan, "isbn %s held by member %s", isbn, m.ID)
		}
	}

	l.books.Delete(isbn)
	l.authors.Remove(b.Author, isbn)
	forgetTitle(l.titles, b.Title)

	return nil
}

// FindByISBN returns the book stored under isbn.
func (l *Library) FindByISBN(isbn string) (Book, error) {
	b, ok := l.books.Search(strings.TrimSpace(isbn))
	if !ok {
		return Book{}, errors.Wrapf(ErrBookNotFound, "isbn %s", isbn)
	}
	return b, nil
}

// FindByTitle returns the lowest-ISBN book whose title matches, ignoring
// case and extra whitespace.
func (l *Library) FindByTitle(title string) (Book, error) {
	want := normalize(title)

	if isbn, ok := cachedTitle(l.titles, want); ok {
		if b, ok := l.books.Search(isbn); ok && normalize(b.Title) == want {
			return b, nil
		}
		forgetTitle(l.titles, want)
	}

	for _, b := range l.books.All() {
		if normalize(b.Title) == want {
			cacheTitle(l.titles, want, b.ISBN)
			return b, nil
		}
	}

	return Book{}, errors.Wrapf(ErrBookNotFound, "title %q", title)
}

// FindByAuthor returns the author's books in ISBN order.
func (l *Library) FindByAuthor(author string) []Book {
	isbns := l.authors.ISBNs(author)
	slices.Sort(isbns)

	books := make([]Book, 0, len(isbns))
	for _, isbn := range isbns {
		if b, ok := l.books.Search(isbn); ok {
			books = append(books, b)
		}
	}
	return books
}

// ISBNPrefix returns, in ISBN order, every book whose ISBN starts with prefix.
func (l *Library) ISBNPrefix(prefix string) []Book {
	if prefix == "" {
		return l.Books()
	}
	entries := l.books.Ascend(prefix, prefix+"\uffff")
	books := make([]Book, 0, len(entries))
	for _, e := range entries {
		books = append(books, e.Value)
	}
	return books
}

// Books lists the whole catalogue in ISBN order.
func (l *Library) Books() []Book {
	books := make([]Book, 0, l.books.Len())
	for _, b := range l.books.All() {
		books = append(books, b)
	}
	return books
}

// AddMember registers a borrower.
func (l *Library) AddMember(id, name string) error {
	id = strings.TrimSpace(id)
	if _, ok := l.members[id]; ok {
		return errors.Wrapf(ErrMemberExists, "member %s", id)
	}
	l.members[id] = &Member{ID: id, Name: name}
	return nil
}

// Member returns a snapshot of the member with the given id.
func (l *Library) Member(id string) (Member, error) {
	m, ok := l.members[strings.TrimSpace(id)]
	if !ok {
		return Member{}, errors.Wrapf(ErrMemberNotFound, "member %s", id)
	}
	return m.clone(), nil
}

// Borrow lends one copy of isbn to the member.
func (l *Library) Borrow(memberID, isbn string) error {
	memberID, isbn = strings.TrimSpace(memberID), strings.TrimSpace(isbn)
	m, ok := l.members[memberID]
	if !ok {
		return errors.Wrapf(ErrMemberNotFound, "member %s", memberID)
	}
	b, ok := l.books.Search(isbn)
	if !ok {
		return errors.Wrapf(ErrBookNotFound, "isbn %s", isbn)
	}
	if m.Holds(isbn) {
		return errors.Wrapf(ErrAlreadyBorrowed, "member %s isbn %s", memberID, isbn)
	}
	if !m.CanBorrow(l.opts.config.Members.MaxBorrowedBooks) {
		return errors.Wrapf(ErrBorrowLimit, "member %s holds %d books", memberID, len(m.Borrowed))
	}
	if b.AvailableCopies <= 0 {
		return errors.Wrapf(ErrNoCopiesAvailable, "isbn %s", isbn)
	}

	l.books.Update(isbn, func(b *Book) { b.AvailableCopies-- })
	m.Borrowed = append(m.Borrowed, isbn)

	l.opts.logger.Debug("book borrowed",
		slog.String("member", memberID), slog.String("isbn", isbn))
	return nil
}

// Return takes back a copy of isbn from the member.
func (l *Library) Return(memberID, isbn string) error {
	memberID, isbn = strings.TrimSpace(memberID), strings.TrimSpace(isbn)
	m, ok := l.members[memberID]
	if !ok {
		return errors.Wrapf(ErrMemberNotFound, "member %s", memberID)
	}
	if !m.release(isbn) {
		return errors.Wrapf(ErrNotBorrowed, "member %s isbn %s", memberID, isbn)
	}

	l.books.Update(isbn, func(b *Book) { b.AvailableCopies++ })

	l.opts.logger.Debug("book returned",
		slog.String("member", memberID), slog.String("isbn", isbn))
	return nil
}
