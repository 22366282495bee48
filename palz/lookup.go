package palz

import (
	"fmt"

	"github.com/armon/go-radix"
)

// scanLimit bounds the distinct words collected by the first encoder pass.
const scanLimit = 1 << 24

// LookupTable maps tokens to codes while encoding one file.
//
// Words are registered during the scan and receive codes only when Assign
// walks the radix tree, whose in-order traversal is byte-wise lexicographic.
type LookupTable struct {
	tree     *radix.Tree
	words    int
	assigned bool
}

// NewLookupTable returns an empty table.
func NewLookupTable() *LookupTable {
	return &LookupTable{tree: radix.New()}
}

// Register records word on first sight and reports whether it was new.
func (t *LookupTable) Register(word string) (bool, error) {
	if t.assigned {
		return false, fmt.Errorf("lookup table already assigned")
	}
	if _, ok := t.tree.Get(word); ok {
		return false, nil
	}
	if t.words == scanLimit {
		return false, fmt.Errorf("%w: more than %d distinct words", ErrBigDictionary, scanLimit)
	}
	t.tree.Insert(word, uint32(0))
	t.words++
	return true, nil
}

// WordCount returns the number of distinct words registered.
func (t *LookupTable) WordCount() int {
	return t.words
}

// Assign gives every word the code rank+15, registers the separators with
// codes 1-14 and returns the words in code order.
func (t *LookupTable) Assign() []string {
	sorted := make([]string, 0, t.words)
	if !t.assigned {
		t.tree.Walk(func(word string, _ interface{}) bool {
			sorted = append(sorted, word)
			return false
		})
		for i, word := range sorted {
			t.tree.Insert(word, uint32(i+FirstWordCode))
		}
		for i := 0; i < len(Separators); i++ {
			t.tree.Insert(Separators[i:i+1], uint32(i+1))
		}
		t.assigned = true
		return sorted
	}
	t.tree.Walk(func(token string, v interface{}) bool {
		if v.(uint32) >= FirstWordCode {
			sorted = append(sorted, token)
		}
		return false
	})
	return sorted
}

// Code returns the code of token. Only assigned tables resolve codes.
func (t *LookupTable) Code(token string) (uint32, bool) {
	if !t.assigned {
		return 0, false
	}
	v, ok := t.tree.Get(token)
	if !ok {
		return 0, false
	}
	return v.(uint32), true
}
