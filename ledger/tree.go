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

package ledger

import (
	"fmt"
	"strings"

	"github.com/blinklabs-io/txrej/cbor"
	"github.com/blinklabs-io/txrej/ledger/common"
)

// TaggedTree is an untyped view of a decoded predicate failure: tagged
// sums become interior nodes and everything else becomes a leaf. It
// preserves the full nesting structure of the wire encoding without
// interpreting any tags.
type TaggedTree interface {
	isTaggedTree()
	String() string
}

// SumTree is an interior node holding a recognized tagged sum. Children
// are built from the sum's fields in wire order: fields that are
// themselves tagged sums become nested SumTree nodes, everything else
// becomes a LeafTree.
type SumTree struct {
	Sum      cbor.TaggedSum
	Children []TaggedTree
}

func (SumTree) isTaggedTree() {}

func (t SumTree) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d(", t.Sum.Tag)
	for idx, child := range t.Children {
		if idx > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(child.String())
	}
	sb.WriteString(")")
	return sb.String()
}

// LeafTree is a terminal node holding a term that was not recognized as
// a tagged sum
type LeafTree struct {
	Term cbor.Term
}

func (LeafTree) isTaggedTree() {}

func (t LeafTree) String() string {
	return cbor.DumpTermStructure(t.Term)
}

// DecodePredicateFailure decodes CBOR into an untyped tree of tagged
// sums. The top-level term must be a tagged sum. The tree is built
// eagerly, so the returned structure is fully materialized.
func DecodePredicateFailure(data []byte) (TaggedTree, error) {
	term, _, err := cbor.DecodeTerm(data)
	if err != nil {
		return nil, common.NewCborError(err)
	}
	sum, ok := cbor.AsTaggedSum(term)
	if !ok {
		return nil, common.NewMalformedError("expected a tagged sum")
	}
	return buildSumTree(sum), nil
}

func buildSumTree(sum cbor.TaggedSum) SumTree {
	children := make([]TaggedTree, 0, len(sum.Fields))
	for _, field := range sum.Fields {
		if childSum, ok := cbor.AsTaggedSum(field); ok {
			children = append(children, buildSumTree(childSum))
		} else {
			children = append(children, LeafTree{Term: field})
		}
	}
	return SumTree{
		Sum:      sum,
		Children: children,
	}
}
