package game

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// LineIO is the controller's view of the terminal: one line in, one line
// out. Injecting it keeps the round controller free of process-wide
// stdin/stdout state and testable without a terminal.
type LineIO interface {
	ReadLine() (string, error)
	WriteLine(s string) error
}

type stdIO struct {
	r *bufio.Reader
	w io.Writer
}

// NewStdIO wraps a reader/writer pair as a LineIO. Pass os.Stdin and
// os.Stdout for interactive play.
func NewStdIO(r io.Reader, w io.Writer) LineIO {
	return &stdIO{r: bufio.NewReader(r), w: w}
}

func (s *stdIO) ReadLine() (string, error) {
	line, err := s.r.ReadString('\n')
	if err != nil {
		// A final unterminated line still counts as input
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (s *stdIO) WriteLine(line string) error {
	_, err := fmt.Fprintln(s.w, line)
	return err
}
