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
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	// Resolved titles are kept for 30 minutes.
	defaultTitleCacheExpiration = 30 * time.Minute
	// Clean up expired entries every 5 minutes
	defaultTitleCacheCleanup = 5 * time.Minute
)

// newTitleCache creates the cache mapping normalised titles to ISBNs.
func newTitleCache(expiration, cleanup time.Duration) *cache.Cache {
	return cache.New(expiration, cleanup)
}

func cacheTitle(c *cache.Cache, title, isbn string) {
	c.Set(normalize(title), isbn, cache.DefaultExpiration)
}

func cachedTitle(c *cache.Cache, title string) (string, bool) {
	val, ok := c.Get(normalize(title))
	if !ok {
		return "", false
	}
	isbn, ok := val.(string)
	return isbn, ok
}

func forgetTitle(c *cache.Cache, title string) {
	c.Delete(normalize(title))
}
