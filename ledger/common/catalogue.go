// Copyright 2026 Blink Labs Software
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

package common

// Catalogue maps constructor tags to constructor names for one rule
// level of an era's predicate failure hierarchy
type Catalogue map[uint64]string

// Name returns the constructor name for a tag, and whether the tag is
// known at this level
func (c Catalogue) Name(tag uint64) (string, bool) {
	name, ok := c[tag]
	return name, ok
}
