package palz

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Decode expands the .palz container read from r and writes the original
// bytes to w. dict is restarted and then filled with the header words, so it
// must not be shared with a concurrent Decode.
func Decode(r io.Reader, w io.Writer, dict *Dictionary) (Stats, error) {
	var stats Stats
	dict.Restart()

	br := bufio.NewReader(r)
	if err := readMagic(br); err != nil {
		return stats, err
	}

	count, err := readWordCount(br)
	if err != nil {
		return stats, err
	}
	if count > MaxWords {
		return stats, fmt.Errorf("%w: header declares %d words", ErrBigDictionary, count)
	}
	for i := uint64(0); i < count; i++ {
		word, err := br.ReadBytes('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				return stats, fmt.Errorf("%w: header ends after %d of %d words", ErrCorrupted, i, count)
			}
			return stats, err
		}
		dict.Add(word[:len(word)-1])
	}
	stats.Words = int(count)

	width, err := ByteWidth(count + SeparatorCount)
	if err != nil {
		return stats, err
	}
	stats.Width = width

	bw := bufio.NewWriter(w)
	codes, err := expand(br, bw, dict, width)
	stats.Codes = codes
	if err != nil {
		return stats, err
	}
	return stats, bw.Flush()
}

func readMagic(br *bufio.Reader) error {
	line, err := br.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	if line == "" {
		return fmt.Errorf("%w: empty file", ErrCorrupted)
	}
	if line != Magic {
		return ErrExtension
	}
	return nil
}

func readWordCount(br *bufio.Reader) (uint64, error) {
	line, err := br.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, err
	}
	if line == "" {
		return 0, fmt.Errorf("%w: missing word count line", ErrCorrupted)
	}
	text := strings.TrimSuffix(line, "\n")

	// A sign is accepted as long as the value is not negative.
	digits, negative := text, false
	switch {
	case strings.HasPrefix(text, "+"):
		digits = text[1:]
	case strings.HasPrefix(text, "-"):
		digits, negative = text[1:], true
	}
	if digits == "" || digits[0] < '0' || digits[0] > '9' {
		return 0, fmt.Errorf("%w: invalid word count %q", ErrCorrupted, text)
	}

	count, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) && !negative {
			return 0, fmt.Errorf("%w: word count %q out of range", ErrBigDictionary, text)
		}
		return 0, fmt.Errorf("%w: invalid word count %q", ErrCorrupted, text)
	}
	if negative && count != 0 {
		return 0, fmt.Errorf("%w: negative word count %q", ErrCorrupted, text)
	}
	return count, nil
}

// expand decodes the body, one width byte code at a time, until EOF.
func expand(r io.Reader, w io.Writer, dict *Dictionary, width int) (int, error) {
	var (
		buf   [3]byte
		prev  uint32
		codes int
	)
	limit := uint32(dict.Len())

	for {
		_, err := io.ReadFull(r, buf[:width])
		if errors.Is(err, io.EOF) {
			return codes, nil
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return codes, fmt.Errorf("%w: truncated code after %d codes", ErrCorrupted, codes)
		}
		if err != nil {
			return codes, err
		}
		codes++

		code := field(buf[:width])
		if code > limit {
			return codes, fmt.Errorf("%w: code %d exceeds dictionary of %d entries", ErrCorrupted, code, limit)
		}

		if code != RepeatCode {
			token, err := dict.Token(code)
			if err != nil {
				return codes, err
			}
			if _, err := w.Write(token); err != nil {
				return codes, err
			}
			prev = code
			continue
		}

		if prev == 0 {
			return codes, fmt.Errorf("%w: repeat escape without a previous token", ErrCorrupted)
		}
		if _, err := io.ReadFull(r, buf[:width]); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return codes, fmt.Errorf("%w: repeat escape without a count", ErrCorrupted)
			}
			return codes, err
		}
		codes++

		repeat := field(buf[:width])
		if repeat == 0 {
			return codes, fmt.Errorf("%w: repeat count of zero", ErrCorrupted)
		}
		token, err := dict.Token(prev)
		if err != nil {
			return codes, err
		}
		for ; repeat > 0; repeat-- {
			if _, err := w.Write(token); err != nil {
				return codes, err
			}
		}
	}
}
