package game

// Reader is the line-oriented input boundary. ReadLine blocks until a full
// line is available and returns it without the trailing newline.
type Reader interface {
	ReadLine() (string, error)
}

// Writer is the output boundary: text fragments, full lines and blank lines.
type Writer interface {
	Print(text string)
	Println(text string)
	Newline()
}
