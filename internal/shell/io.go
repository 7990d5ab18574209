package shell

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

func (s *Shell) println(args ...any) {
	fmt.Fprintln(s.out, args...)
}

// readLine blocks for the next input line. io.EOF means the input stream is
// gone and every enclosing loop should unwind.
func (s *Shell) readLine() (string, error) {
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.in.Text(), nil
}

// prompt prints a label and reads the reply on the same line.
func (s *Shell) prompt(label string) (string, error) {
	s.printf("%s", label)
	return s.readLine()
}

// readChoice re-prompts until the input parses as an integer. Bad input never
// aborts anything, it only re-prompts.
func (s *Shell) readChoice() (int, error) {
	for {
		line, err := s.prompt("\nPlease make your choice: ")
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			s.println("Your input is invalid!")
			continue
		}
		return n, nil
	}
}
