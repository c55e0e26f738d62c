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

type listNode struct {
	data string
	next *listNode
}

// isbnList is a singly-linked list of ISBNs, newest first.
type isbnList struct {
	head *listNode
	n    int
}

func (l *isbnList) len() int { return l.n }

func (l *isbnList) insertHead(isbn string) {
	l.head = &listNode{data: isbn, next: l.head}
	l.n++
}

func (l *isbnList) contains(isbn string) bool {
	for cur := l.head; cur != nil; cur = cur.next {
		if cur.data == isbn {
			return true
		}
	}
	return false
}

func (l *isbnList) remove(isbn string) bool {
	for pp := &l.head; *pp != nil; pp = &(*pp).next {
		if (*pp).data == isbn {
			*pp = (*pp).next
			l.n--
			return true
		}
	}
	return false
}

func (l *isbnList) slice() []string {
	out := make([]string, 0, l.n)
	for cur := l.head; cur != nil; cur = cur.next {
		out = append(out, cur.data)
	}
	return out
}
