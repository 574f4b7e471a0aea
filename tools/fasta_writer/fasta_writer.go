// Package fasta_writer appends generated records to per-ID FASTA files.
package fasta_writer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/seq/linear"
)

// DefaultWidth is the number of sequence characters per body line
const DefaultWidth = 60

// Extension is appended to the sequence ID to name its file
const Extension = ".fasta"

// FileName derives the output file for id. The ID is used literally,
// so IDs containing path separators or invalid characters fail at open time.
func FileName(dir, id string) string {
	name := id + Extension
	if dir == "" {
		return name
	}
	return filepath.Join(dir, name)
}

// NewRecord wraps a labeled sequence and its identity into a biogo sequence.
// The label may hold letters outside the DNA alphabet; nothing validates them.
func NewRecord(id, desc, labeled string) *linear.Seq {
	rec := linear.NewSeq(id, alphabet.BytesToLetters([]byte(labeled)), alphabet.DNA)
	rec.Desc = desc
	return rec
}

// WrapFasta breaks seq into lines of at most width characters (runes, not
// bytes), each terminated by a newline
func WrapFasta(seq string, width int) string {
	return WrapLetters(alphabet.BytesToLetters([]byte(seq)), width)
}

// WrapLetters wraps the letters of a sequence body at width characters.
// Letters are UTF-8 bytes, so a multi-byte label character is never split
// across two lines and counts as one column. width must be positive.
func WrapLetters(l alphabet.Letters, width int) string {
	var out strings.Builder
	out.Grow(len(l) + len(l)/width + 1)
	col := 0
	for _, c := range l {
		if utf8.RuneStart(byte(c)) {
			if col == width {
				out.WriteByte('\n')
				col = 0
			}
			col++
		}
		out.WriteByte(byte(c))
	}
	if len(l) > 0 {
		out.WriteByte('\n')
	}
	return out.String()
}

// WriteRecord formats rec as one FASTA block:
//
//	><ID> <description>
//	<body wrapped at width>
func WriteRecord(w io.Writer, rec *linear.Seq, width int) error {
	if width <= 0 {
		return fmt.Errorf("invalid line width %d", width)
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, ">%s %s\n", rec.Name(), rec.Description())
	bw.WriteString(WrapLetters(rec.Seq, width))
	return bw.Flush()
}

// AppendRecord opens path in append mode, creating it when missing, and
// writes rec to it. The file is closed on every return path.
func AppendRecord(path string, rec *linear.Seq, width int) (err error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close %s: %w", path, cerr))
		}
	}()

	if err := WriteRecord(f, rec, width); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
