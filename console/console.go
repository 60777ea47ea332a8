// Package console adapts standard input and output to the game's line
// oriented boundary.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

type Reader struct {
	r *bufio.Reader
}

func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// ReadLine returns the next line without its line ending, however long it
// is. A final line without a newline is returned before io.EOF.
func (r *Reader) ReadLine() (string, error) {
	line, err := r.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		return "", fmt.Errorf("console.ReadLine: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Writer prints to w. Write errors are kept and reported by Err.
type Writer struct {
	w   io.Writer
	err error
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (w *Writer) Print(text string) {
	w.write(text)
}

func (w *Writer) Println(text string) {
	w.write(text + "\n")
}

func (w *Writer) Newline() {
	w.write("\n")
}

// Err returns the first write error, if any.
func (w *Writer) Err() error {
	return w.err
}

func (w *Writer) write(text string) {
	if w.err != nil {
		return
	}
	if _, err := io.WriteString(w.w, text); err != nil {
		w.err = fmt.Errorf("console.Write: %w", err)
	}
}
