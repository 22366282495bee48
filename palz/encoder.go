package palz

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

const (
	// Magic is the first line of every .palz file.
	Magic = "PALZ\n"
	// Extension is the suffix of compressed files.
	Extension = ".palz"
)

// Stats describes an encoded stream.
type Stats struct {
	Words int // distinct words in the header
	Width int // bytes per code field
	Codes int // code fields in the body, escapes and counts included
}

// Encode compresses src and writes the .palz container to w.
func Encode(src []byte, w io.Writer) (Stats, error) {
	var stats Stats

	table := NewLookupTable()
	if err := scanWords(src, table); err != nil {
		return stats, err
	}
	stats.Words = table.WordCount()

	width, err := ByteWidth(uint64(stats.Words + SeparatorCount))
	if err != nil {
		return stats, err
	}
	stats.Width = width

	bw := bufio.NewWriter(w)
	words := table.Assign()
	writeHeader(bw, words)

	e := &emitter{w: bw, width: width}
	err = e.body(src, table)
	stats.Codes = e.codes
	if err != nil {
		return stats, err
	}

	if err := bw.Flush(); err != nil {
		return stats, err
	}
	return stats, nil
}

// scanWords registers every distinct word of src in first seen order.
func scanWords(src []byte, table *LookupTable) error {
	start := -1
	for i, b := range src {
		if !IsSeparator(b) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			if _, err := table.Register(string(src[start:i])); err != nil {
				return err
			}
			start = -1
		}
	}
	if start >= 0 {
		if _, err := table.Register(string(src[start:])); err != nil {
			return err
		}
	}
	return nil
}

func writeHeader(w *bufio.Writer, words []string) {
	w.WriteString(Magic)
	w.WriteString(strconv.Itoa(len(words)))
	w.WriteByte('\n')
	for _, word := range words {
		w.WriteString(word)
		w.WriteByte('\n')
	}
}

// emitter writes fixed width code fields. Write errors are sticky in the
// underlying bufio.Writer and surface on Flush.
type emitter struct {
	w     *bufio.Writer
	width int
	codes int
	buf   [3]byte
}

func (e *emitter) emit(code uint32) {
	putField(e.buf[:], code, e.width)
	e.w.Write(e.buf[:e.width])
	e.codes++
}

// flushRun writes a repeat count, splitting it into max sized chunks joined
// by an extra escape.
func (e *emitter) flushRun(run uint64) {
	limit := uint64(maxField[e.width])
	for run > limit {
		e.emit(uint32(limit))
		e.emit(RepeatCode)
		run -= limit
	}
	e.emit(uint32(run))
}

// body runs the second pass over src. Every word must already have a code
// in table.
func (e *emitter) body(src []byte, table *LookupTable) error {
	const noSeparator = -1

	last := noSeparator
	var run uint64
	start := -1

	for i := 0; i <= len(src); i++ {
		end := i == len(src)
		if !end && !IsSeparator(src[i]) {
			last = noSeparator
			if start < 0 {
				start = i
			}
			continue
		}

		if !end && int(src[i]) == last {
			if run == 0 {
				e.emit(RepeatCode)
			}
			run++
			continue
		}

		if run != 0 {
			e.flushRun(run)
			run = 0
			last = noSeparator
		}
		if start >= 0 {
			code, ok := table.Code(string(src[start:i]))
			if !ok {
				return fmt.Errorf("word %q has no code", src[start:i])
			}
			e.emit(code)
			start = -1
		}
		if end {
			return nil
		}
		e.emit(SeparatorCode(src[i]))
		last = int(src[i])
	}
	return nil
}
