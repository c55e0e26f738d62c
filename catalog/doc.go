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

// Package catalog keeps a lending library's books, authors and members.
//
// Books are indexed by ISBN in an avl.Tree; an AuthorIndex maps normalised
// author names to the ISBNs they wrote. Records can be bulk loaded from a
// books.csv file, where duplicate ISBNs are reported rather than silently
// dropped.
//
// A Library is not safe for concurrent use.
package catalog
