// Package palz implements the palz word-dictionary codec.
//
// A palz file replaces every word of a text file with a numeric code taken
// from a dictionary stored in the file header, and every separator with one
// of fourteen fixed codes. Runs of the same separator are collapsed with an
// escape code followed by a repeat count.
//
// Container layout:
//
//	PALZ\n
//	<word count>\n
//	<word>\n              (word count lines, sorted on encode)
//	<body>                (W-byte little-endian codes)
//
// W is the number of bytes needed to represent word count + 14 and is one of
// 1, 2 or 3. Code 0 is the repeat escape, codes 1-14 are the separators
// "\n \t \r space ? ! . ; , : + - * /" and codes from 15 on are the header
// words in order.
//
// Encoding and decoding of a single file is single-threaded; the batch
// package runs many files concurrently.
package palz
