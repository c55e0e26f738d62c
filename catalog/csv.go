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
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
)

// Column layout of books.csv.
var csvHeader = []string{"ISBN", "Title", "Author", "Year", "Category", "Copies"}

// RowError describes a CSV row that could not be turned into a book.
type RowError struct {
	Line int
	ISBN string
	Err  error
}

func (e RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// LoadReport summarises one CSV load.
type LoadReport struct {
	Loaded     int
	Duplicates []string // ISBNs already in the catalogue, in file order
	Rejected   []RowError
}

// LoadCSV reads books from the file at path. See ReadCSV.
func (l *Library) LoadCSV(path string) (LoadReport, error) {
	f, err := l.opts.fs.Open(path)
	if err != nil {
		return LoadReport{}, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	report, err := l.ReadCSV(f)
	if err != nil {
		return report, errors.Wrapf(err, "load %s", path)
	}
	return report, nil
}

// ReadCSV adds one book per data row of r. The first row must name the
// columns ISBN, Title, Author, Year, Category and Copies in any order and
// case. Rows whose ISBN is already catalogued are listed in
// LoadReport.Duplicates and malformed rows in LoadReport.Rejected; both are
// logged and neither stops the load.
func (l *Library) ReadCSV(r io.Reader) (LoadReport, error) {
	var report LoadReport
	logger := l.opts.logger

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return report, errors.Wrap(ErrMissingColumn, "empty input")
	}
	if err != nil {
		return report, errors.Wrap(err, "read header")
	}
	columns, err := columnIndex(header)
	if err != nil {
		return report, err
	}

	bar := l.newProgressBar()
	defer func() { _ = bar.Finish() }()

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return report, errors.Wrap(err, "read row")
		}
		line, _ := reader.FieldPos(0)
		_ = bar.Add(1)

		if isBlank(record) {
			continue
		}

		book, err := parseBook(record, columns)
		if err == nil {
			err = l.AddBook(book)
		}
		switch {
		case err == nil:
			report.Loaded++
		case errors.Is(err, ErrBookExists):
			report.Duplicates = append(report.Duplicates, book.ISBN)
			logger.Warn("duplicate isbn skipped",
				slog.Int("line", line), slog.String("isbn", book.ISBN))
		default:
			report.Rejected = append(report.Rejected, RowError{Line: line, ISBN: book.ISBN, Err: err})
			logger.Warn("row rejected",
				slog.Int("line", line), slog.Any("error", err))
		}
	}

	logger.Info("books loaded",
		slog.Int("loaded", report.Loaded),
		slog.Int("duplicates", len(report.Duplicates)),
		slog.Int("rejected", len(report.Rejected)),
		slog.Int("total", l.books.Len()))
	return report, nil
}

// SaveCSV writes the catalogue to path in ISBN order using the books.csv
// column layout.
func (l *Library) SaveCSV(path string) (err error) {
	f, err := l.opts.fs.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "close %s", path)
		}
	}()

	if err = l.WriteCSV(f); err != nil {
		return errors.Wrapf(err, "save %s", path)
	}
	return nil
}

// WriteCSV writes the catalogue to w in ISBN order.
func (l *Library) WriteCSV(w io.Writer) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return errors.Wrap(err, "write header")
	}
	for _, b := range l.books.All() {
		row := []string{
			b.ISBN,
			b.Title,
			b.Author,
			strconv.Itoa(b.Year),
			b.Category,
			strconv.Itoa(b.AvailableCopies),
		}
		if err := writer.Write(row); err != nil {
			return errors.Wrapf(err, "write isbn %s", b.ISBN)
		}
	}
	writer.Flush()
	return errors.Wrap(writer.Error(), "flush csv")
}

func (l *Library) newProgressBar() *progressbar.ProgressBar {
	if l.opts.progress == nil {
		return progressbar.DefaultSilent(-1)
	}
	return progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(l.opts.progress),
		progressbar.OptionSetDescription("loading books"),
		progressbar.OptionShowCount(),
	)
}

// columnIndex maps each csvHeader column to its position in header.
func columnIndex(header []string) (map[string]int, error) {
	found := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimPrefix(name, "\ufeff")
		found[strings.ToLower(strings.TrimSpace(name))] = i
	}

	columns := make(map[string]int, len(csvHeader))
	for _, name := range csvHeader {
		key := strings.ToLower(name)
		i, ok := found[key]
		if !ok {
			return nil, errors.Wrapf(ErrMissingColumn, "column %s", name)
		}
		columns[key] = i
	}
	return columns, nil
}

func parseBook(record []string, columns map[string]int) (Book, error) {
	field := func(name string) string {
		i := columns[name]
		if i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	b := Book{
		ISBN:     field("isbn"),
		Title:    field("title"),
		Author:   field("author"),
		Category: field("category"),
	}

	year, err := strconv.Atoi(field("year"))
	if err != nil {
		return b, errors.Wrapf(ErrInvalidBook, "isbn %s: year %q", b.ISBN, field("year"))
	}
	b.Year = year

	copies, err := strconv.Atoi(field("copies"))
	if err != nil {
		return b, errors.Wrapf(ErrInvalidBook, "isbn %s: copies %q", b.ISBN, field("copies"))
	}
	b.AvailableCopies = copies

	return b, nil
}

func isBlank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
