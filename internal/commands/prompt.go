package commands

import (
	"fmt"
	"io"
	"strings"
)

// prompt writes a label to errOut and reads one line of input.
func prompt(in io.Reader, errOut io.Writer, label string) string {
	fmt.Fprint(errOut, label)
	return readLine(in)
}

// readLine reads up to the next newline without buffering past it, so
// consecutive prompts on the same stream each get their own line.
func readLine(in io.Reader) string {
	if in == nil {
		return ""
	}
	var line []byte
	buf := make([]byte, 1)
	for {
		n, err := in.Read(buf)
		if n > 0 {
			if buf[0] == '\n' {
				break
			}
			line = append(line, buf[0])
		}
		if err != nil {
			break
		}
	}
	return strings.TrimSpace(string(line))
}
