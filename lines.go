package strkit

import (
	"bufio"
	"io"
	"regexp"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

const scanBufSize = 1024 * 1024

var matchEmptyLines = regexp.MustCompile(`^\s*$`)

var bufPool = &sync.Pool{
	New: func() interface{} {
		return make([]byte, scanBufSize)
	},
}

// ReadValues reads one value per line from r. Blank lines and lines starting
// with '#' are skipped, surrounding white space is trimmed.
func ReadValues(r io.Reader) ([]string, error) {
	scanBuf := bufPool.Get().([]byte)
	defer bufPool.Put(scanBuf)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(scanBuf, scanBufSize)

	var values []string
	for scanner.Scan() {
		line := scanner.Text()

		// Ignore empty lines and comments.
		if matchEmptyLines.MatchString(line) || strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}

		values = append(values, strings.TrimSpace(line))
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to scan values")
	}

	return values, nil
}
