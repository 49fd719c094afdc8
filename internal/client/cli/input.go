package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dmitrijs2005/registerface/internal/face"
	"github.com/dmitrijs2005/registerface/internal/filex"
	"golang.org/x/term"
)

// Terminal seams. Tests replace them to avoid touching a real terminal.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The trailing newline is trimmed. If EOF occurs after some input was read,
// the partial line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
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

// GetFaceData asks for a face descriptor. The answer is either the
// descriptor itself or the path of a file holding a descriptor or a JSON
// detection. On a terminal the input is read without echo.
func GetFaceData(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	fd := int(os.Stdin.Fd())

	var raw string
	if isTerminal(fd) {
		if _, err := fmt.Fprint(w, prompt+" (descriptor or file path, hidden)\n> "); err != nil {
			return "", err
		}
		b, err := readPassword(fd)
		fmt.Fprintln(w)
		if err != nil {
			return "", err
		}
		raw = strings.TrimSpace(string(b))
	} else {
		s, err := GetSimpleText(reader, prompt+" (descriptor or file path)", w)
		if err != nil {
			return "", err
		}
		raw = s
	}

	return resolveFaceInput(raw)
}

// resolveFaceInput reads the descriptor from s when s names a regular file.
// A file holding a JSON detection is normalized into a descriptor.
func resolveFaceInput(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	st, err := os.Stat(s)
	if err != nil || !st.Mode().IsRegular() {
		return s, nil
	}

	content, err := filex.ReadDescriptor(s)
	if err != nil {
		return "", err
	}
	if strings.HasPrefix(content, "{") {
		return face.DescriptorFromJSON([]byte(content))
	}
	return content, nil
}
