package panel

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"
)

// ReadQuery reads a query sequence file. Plain text is trimmed of
// surrounding whitespace; FASTA input yields the first record's sequence.
func ReadQuery(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read query %s: %w", path, err)
	}
	return ParseQuery(data)
}

// ParseQuery decodes uploaded query bytes the same way as ReadQuery.
func ParseQuery(data []byte) (string, error) {
	text := strings.TrimSpace(string(data))
	if !strings.HasPrefix(text, ">") {
		return text, nil
	}

	var (
		seq     strings.Builder
		scanner = bufio.NewScanner(bytes.NewReader([]byte(text)))
		header  bool
	)
	scanner.Buffer(make([]byte, 0, 64*1024), len(data)+1)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, ">") {
			if header {
				break
			}
			header = true
			continue
		}
		seq.WriteString(line)
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	if seq.Len() == 0 {
		return "", ErrEmptyQuery
	}
	return seq.String(), nil
}
