package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"jotbook/internal/model"
)

// readPassword is a test seam for term.ReadPassword. In tests, replace
// it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// promptLine prints a prompt to w and reads a single line from reader,
// trimming surrounding whitespace. If EOF occurs after some input was
// read, the partial line is returned.
func promptLine(reader *bufio.Reader, w io.Writer, prompt string) (string, error) {
	if _, err := fmt.Fprint(w, prompt+": "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptPassword reads a password from the terminal without echo. A
// newline is printed after the read to keep the output tidy.
func promptPassword(w io.Writer, prompt string) (string, error) {
	if _, err := fmt.Fprint(w, prompt+": "); err != nil {
		return "", err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

// promptMultiline reads lines until an empty line is entered and joins
// them with '\n'. EOF ends the input, keeping what was read so far;
// any other read error is returned so a truncated note is never saved
// silently.
func promptMultiline(reader *bufio.Reader, w io.Writer, prompt string) (string, error) {
	if _, err := fmt.Fprintln(w, prompt+" (press Enter on an empty line to finish):"); err != nil {
		return "", err
	}

	var lines []string
	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", err
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}
		lines = append(lines, line)
		if err != nil {
			break
		}
	}
	return strings.Join(lines, "\n"), nil
}

// promptCategory reads a category, re-prompting until the input names
// one of the fixed set. An empty answer picks the supplied default.
func promptCategory(reader *bufio.Reader, w io.Writer, def model.Category) (model.Category, error) {
	names := make([]string, len(model.Categories))
	for i, c := range model.Categories {
		names[i] = string(c)
	}
	prompt := fmt.Sprintf("Category [%s] (default %s)", strings.Join(names, "/"), def)

	for {
		answer, err := promptLine(reader, w, prompt)
		if err != nil {
			return "", err
		}
		if answer == "" {
			return def, nil
		}
		c := model.Category(strings.ToLower(answer))
		if c.Valid() {
			return c, nil
		}
		fmt.Fprintf(w, "Unknown category %q.\n", answer)
	}
}
