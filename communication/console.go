package communication

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Console prompts on a writer and reads answers line by line from a reader.
type Console struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (c *Console) Prompt(query string) (string, error) {
	if _, err := fmt.Fprint(c.out, query); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimRight(c.scanner.Text(), "\r\n"), nil
}
