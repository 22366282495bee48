package palz

import "fmt"

// Separators lists the fixed separator bytes. The separator at index i has
// code i+1.
const Separators = "\n\t\r ?!.;,:+-*/"

const (
	// SeparatorCount is the number of fixed separator codes.
	SeparatorCount = 14
	// FirstWordCode is the code of the first dictionary word.
	FirstWordCode = SeparatorCount + 1
	// RepeatCode is the escape that repeats the previous token.
	RepeatCode = 0
)

// separatorCodes maps a byte to its separator code, 0 for non-separators.
var separatorCodes = func() (t [256]uint32) {
	for i := 0; i < len(Separators); i++ {
		t[Separators[i]] = uint32(i + 1)
	}
	return t
}()

// separatorTokens is the read-only baseline shared by every Dictionary.
var separatorTokens = func() (t [SeparatorCount][]byte) {
	for i := range t {
		t[i] = []byte{Separators[i]}
	}
	return t
}()

// IsSeparator reports whether b is one of the fixed separators.
func IsSeparator(b byte) bool {
	return separatorCodes[b] != 0
}

// SeparatorCode returns the code of separator b, or 0 if b is not a separator.
func SeparatorCode(b byte) uint32 {
	return separatorCodes[b]
}

// Dictionary is the ordered code to token table used while decoding.
//
// Codes 1-14 always resolve to the fixed separators; words added with Add get
// the following codes. A Dictionary is not safe for concurrent use; every
// decode task owns its own.
type Dictionary struct {
	words [][]byte
	freed bool
}

// NewDictionary returns a dictionary holding only the fixed separators.
func NewDictionary() *Dictionary {
	return &Dictionary{}
}

// Add appends token with code Len()+1 and returns that code.
func (d *Dictionary) Add(token []byte) uint32 {
	d.freed = false
	d.words = append(d.words, token)
	return uint32(d.Len())
}

// Restart drops every word, leaving the 14 separators.
func (d *Dictionary) Restart() {
	clear(d.words)
	d.words = d.words[:0]
	d.freed = false
}

// Free releases every entry. A freed dictionary resolves no codes until a
// word is added or it is restarted.
func (d *Dictionary) Free() {
	d.words = nil
	d.freed = true
}

// Len returns the number of entries, separators included.
func (d *Dictionary) Len() int {
	if d.freed {
		return 0
	}
	return SeparatorCount + len(d.words)
}

// WordCount returns the number of file specific words.
func (d *Dictionary) WordCount() int {
	return len(d.words)
}

// Token returns the token for code. Code 0 and codes past Len() are invalid.
func (d *Dictionary) Token(code uint32) ([]byte, error) {
	if code == RepeatCode || int64(code) > int64(d.Len()) {
		return nil, fmt.Errorf("%w: code %d outside dictionary of %d entries", ErrCorrupted, code, d.Len())
	}
	if code <= SeparatorCount {
		return separatorTokens[code-1], nil
	}
	return d.words[code-FirstWordCode], nil
}
