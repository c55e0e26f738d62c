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

package catalog_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/suite"

	"github.com/cybrota/shelfindex/catalog"
)

var sampleBooks = []catalog.Book{
	{ISBN: "9780141439518", Title: "Pride and Prejudice", Author: "Jane Austen", Year: 1813, Category: "Novel", AvailableCopies: 2},
	{ISBN: "9780141439587", Title: "Emma", Author: "Jane Austen", Year: 1815, Category: "Novel", AvailableCopies: 1},
	{ISBN: "9780486282114", Title: "Frankenstein", Author: "Mary Shelley", Year: 1818, Category: "Gothic", AvailableCopies: 0},
	{ISBN: "9780262033848", Title: "Introduction to Algorithms", Author: "Cormen", Year: 2009, Category: "CS", AvailableCopies: 6},
}

type libraryTestSuite struct {
	suite.Suite

	lib *catalog.Library
}

func (su *libraryTestSuite) SetupTest() {
	su.lib = catalog.New(
		catalog.WithFileSystem(afero.NewMemMapFs()),
		catalog.WithLogger(catalog.DiscardLogger()),
		catalog.WithConfig(&catalog.Config{Members: catalog.MembersConfig{MaxBorrowedBooks: 2}}),
	)
	for _, b := range sampleBooks {
		su.Require().NoError(su.lib.AddBook(b))
	}
	su.Require().NoError(su.lib.AddMember("m1", "Ada"))
}

func (su *libraryTestSuite) Test_AddBook_Duplicate() {
	dup := sampleBooks[0]
	dup.Title = "Overwritten"

	err := su.lib.AddBook(dup)
	su.True(errors.Is(err, catalog.ErrBookExists))

	got, err := su.lib.FindByISBN(dup.ISBN)
	su.NoError(err)
	su.Equal("Pride and Prejudice", got.Title)
	su.Equal(len(sampleBooks), su.lib.Len())
}

func (su *libraryTestSuite) Test_AddBook_Invalid() {
	err := su.lib.AddBook(catalog.Book{ISBN: "  "})
	su.True(errors.Is(err, catalog.ErrInvalidBook))

	err = su.lib.AddBook(catalog.Book{ISBN: "1", AvailableCopies: -1})
	su.True(errors.Is(err, catalog.ErrInvalidBook))
	su.Equal(len(sampleBooks), su.lib.Len())
}

func (su *libraryTestSuite) Test_Books_Ordered() {
	books := su.lib.Books()
	su.Len(books, len(sampleBooks))
	for i := 1; i < len(books); i++ {
		su.Less(books[i-1].ISBN, books[i].ISBN)
	}
}

func (su *libraryTestSuite) Test_FindByISBN() {
	got, err := su.lib.FindByISBN(" 9780141439587 ")
	su.NoError(err)
	su.Equal("Emma", got.Title)

	_, err = su.lib.FindByISBN("0000")
	su.True(errors.Is(err, catalog.ErrBookNotFound))
}

func (su *libraryTestSuite) Test_FindByTitle() {
	got, err := su.lib.FindByTitle("  frankenstein ")
	su.NoError(err)
	su.Equal("9780486282114", got.ISBN)

	// Second lookup is served from the cache and must agree.
	got, err = su.lib.FindByTitle("FRANKENSTEIN")
	su.NoError(err)
	su.Equal("9780486282114", got.ISBN)

	su.NoError(su.lib.RemoveBook("9780486282114"))
	_, err = su.lib.FindByTitle("Frankenstein")
	su.True(errors.Is(err, catalog.ErrBookNotFound))
}

func (su *libraryTestSuite) Test_FindByAuthor() {
	books := su.lib.FindByAuthor("JANE   austen")
	su.Len(books, 2)
	su.Equal("9780141439518", books[0].ISBN)
	su.Equal("9780141439587", books[1].ISBN)

	su.Empty(su.lib.FindByAuthor("Nobody"))
}

func (su *libraryTestSuite) Test_ISBNPrefix() {
	books := su.lib.ISBNPrefix("978014")
	su.Len(books, 2)
	su.Equal("Pride and Prejudice", books[0].Title)

	su.Len(su.lib.ISBNPrefix(""), len(sampleBooks))
	su.Empty(su.lib.ISBNPrefix("123"))
}

func (su *libraryTestSuite) Test_Members() {
	err := su.lib.AddMember("m1", "Someone Else")
	su.True(errors.Is(err, catalog.ErrMemberExists))

	m, err := su.lib.Member("m1")
	su.NoError(err)
	su.Equal("Ada", m.Name)
	su.Empty(m.Borrowed)

	_, err = su.lib.Member("m9")
	su.True(errors.Is(err, catalog.ErrMemberNotFound))
}

func (su *libraryTestSuite) Test_BorrowReturn() {
	isbn := "9780141439518"

	su.NoError(su.lib.Borrow("m1", isbn))
	got, _ := su.lib.FindByISBN(isbn)
	su.Equal(1, got.AvailableCopies)

	m, _ := su.lib.Member("m1")
	su.Equal([]string{isbn}, m.Borrowed)

	err := su.lib.Borrow("m1", isbn)
	su.True(errors.Is(err, catalog.ErrAlreadyBorrowed))

	err = su.lib.RemoveBook(isbn)
	su.True(errors.Is(err, catalog.ErrBookOnLoan))

	su.NoError(su.lib.Return("m1", isbn))
	got, _ = su.lib.FindByISBN(isbn)
	su.Equal(2, got.AvailableCopies)

	err = su.lib.Return("m1", isbn)
	su.True(errors.Is(err, catalog.ErrNotBorrowed))
}

func (su *libraryTestSuite) Test_BorrowFailures() {
	su.True(errors.Is(su.lib.Borrow("m9", "9780141439518"), catalog.ErrMemberNotFound))
	su.True(errors.Is(su.lib.Borrow("m1", "0000"), catalog.ErrBookNotFound))
	su.True(errors.Is(su.lib.Borrow("m1", "9780486282114"), catalog.ErrNoCopiesAvailable))
	su.True(errors.Is(su.lib.Return("m9", "9780141439518"), catalog.ErrMemberNotFound))

	su.NoError(su.lib.Borrow("m1", "9780141439518"))
	su.NoError(su.lib.Borrow("m1", "9780141439587"))
	err := su.lib.Borrow("m1", "9780262033848")
	su.True(errors.Is(err, catalog.ErrBorrowLimit))

	got, _ := su.lib.FindByISBN("9780262033848")
	su.Equal(6, got.AvailableCopies)
}

func (su *libraryTestSuite) Test_RemoveBook() {
	su.NoError(su.lib.RemoveBook("9780141439587"))
	su.Equal(len(sampleBooks)-1, su.lib.Len())
	su.Len(su.lib.FindByAuthor("Jane Austen"), 1)

	err := su.lib.RemoveBook("9780141439587")
	su.True(errors.Is(err, catalog.ErrBookNotFound))
}

func (su *libraryTestSuite) Test_FindByTitle_LowerISBNAddedLater() {
	su.Require().NoError(su.lib.AddBook(catalog.Book{ISBN: "9780300000000", Title: "Persuasion", Author: "Jane Austen"}))
	got, err := su.lib.FindByTitle("Persuasion")
	su.NoError(err)
	su.Equal("9780300000000", got.ISBN)

	su.Require().NoError(su.lib.AddBook(catalog.Book{ISBN: "9780100000000", Title: "persuasion", Author: "Jane Austen"}))
	got, err = su.lib.FindByTitle("Persuasion")
	su.NoError(err)
	su.Equal("9780100000000", got.ISBN)
}

func (su *libraryTestSuite) Test_PaddedIDs() {
	isbn := "9780141439518"
	su.Require().NoError(su.lib.AddMember(" m2 ", "Grace"))

	_, err := su.lib.Member(" m2 ")
	su.NoError(err)

	su.NoError(su.lib.Borrow(" m2 ", " "+isbn+" "))
	m, _ := su.lib.Member("m2")
	su.Equal([]string{isbn}, m.Borrowed)
	got, _ := su.lib.FindByISBN(isbn)
	su.Equal(1, got.AvailableCopies)

	su.True(errors.Is(su.lib.RemoveBook(" "+isbn), catalog.ErrBookOnLoan))

	su.NoError(su.lib.Return("m2 ", isbn+" "))
	got, _ = su.lib.FindByISBN(isbn)
	su.Equal(2, got.AvailableCopies)

	su.NoError(su.lib.RemoveBook(" " + isbn + " "))
	_, err = su.lib.FindByISBN(isbn)
	su.True(errors.Is(err, catalog.ErrBookNotFound))
}

func Test_Library(t *testing.T) {
	suite.Run(t, new(libraryTestSuite))
}
