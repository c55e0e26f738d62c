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
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_isbnList(t *testing.T) {
	var l isbnList
	assert.Equal(t, 0, l.len())
	assert.Empty(t, l.slice())

	l.insertHead("a")
	l.insertHead("b")
	l.insertHead("c")
	assert.Equal(t, 3, l.len())
	assert.Equal(t, []string{"c", "b", "a"}, l.slice())
	assert.True(t, l.contains("b"))
	assert.False(t, l.contains("z"))

	assert.True(t, l.remove("b"))
	assert.False(t, l.remove("b"))
	assert.Equal(t, []string{"c", "a"}, l.slice())

	assert.True(t, l.remove("c"))
	assert.True(t, l.remove("a"))
	assert.Equal(t, 0, l.len())
	assert.Nil(t, l.head)
}
