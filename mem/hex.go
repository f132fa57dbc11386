package mem

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"
)

// RenderGroup renders up to GROUP_SIZE image bytes as a .mem line, last byte
// first. Missing bytes of a short final group render as zero.
func RenderGroup(group []byte) string {
	var word [GROUP_SIZE]byte
	copy(word[:], group)

	return fmt.Sprintf("%02X%02X%02X%02X", word[3], word[2], word[1], word[0])
}

// Lines returns an iterator over the .mem lines of an image.
func Lines(data []byte) iter.Seq[string] {
	return func(yield func(line string) bool) {
		for base := 0; base < len(data); base += GROUP_SIZE {
			end := min(base+GROUP_SIZE, len(data))
			if !yield(RenderGroup(data[base:end])) {
				return
			}
		}
	}
}

// WriteHex writes an image as a .mem listing.
func WriteHex(w io.Writer, data []byte) (err error) {
	bw := bufio.NewWriter(w)

	for line := range Lines(data) {
		_, err = fmt.Fprintln(bw, line)
		if err != nil {
			return
		}
	}

	err = bw.Flush()
	return
}

// WriteFile creates (or truncates) the named file and writes the image to it
// as a .mem listing. A failed write leaves a truncated file behind.
func WriteFile(name string, data []byte) (err error) {
	ouf, err := os.Create(name)
	if err != nil {
		return
	}
	defer func() {
		cerr := ouf.Close()
		if err == nil {
			err = cerr
		}
	}()

	err = WriteHex(ouf, data)
	return
}

// ParseGroup parses a .mem line back into its four image bytes.
func ParseGroup(line string) (group [GROUP_SIZE]byte, err error) {
	if len(line) != GROUP_SIZE*2 {
		err = ErrHexLength
		return
	}

	var word [GROUP_SIZE]byte
	_, err = hex.Decode(word[:], []byte(line))
	if err != nil {
		err = ErrHexDigit
		return
	}

	for n := range GROUP_SIZE {
		group[n] = word[GROUP_SIZE-1-n]
	}

	return
}

// ReadHex reads a .mem listing back into an image. Blank lines are ignored.
func ReadHex(r io.Reader) (data []byte, err error) {
	scanner := bufio.NewScanner(r)

	var lineno int
	for scanner.Scan() {
		lineno++

		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}

		var group [GROUP_SIZE]byte
		group, err = ParseGroup(line)
		if err != nil {
			err = &ErrHexLine{LineNo: lineno, Line: line, Err: err}
			return
		}

		data = append(data, group[:]...)
	}

	err = scanner.Err()
	return
}

// ReadFile reads a .mem listing file.
func ReadFile(name string) (data []byte, err error) {
	inf, err := os.Open(name)
	if err != nil {
		return
	}
	defer inf.Close()

	data, err = ReadHex(inf)
	return
}
