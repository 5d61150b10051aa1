package steam

import (
	"bufio"
	"io"
	"strings"
)

// FieldValue extracts the quoted value from a `"key"  "value"` line.
// found is false when the trimmed line does not start with the quoted key.
func FieldValue(line, key string) (value string, found bool, err error) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, `"`+key+`"`) {
		return "", false, nil
	}
	parts := strings.Split(line, `"`)
	if len(parts) < 4 {
		return "", true, ErrMalformedLine
	}
	return parts[3], true, nil
}

// FirstValue scans r line by line and returns the value of the first line
// carrying key.
func FirstValue(r io.Reader, key string) (string, bool, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		v, found, err := FieldValue(sc.Text(), key)
		if found {
			return v, true, err
		}
	}
	return "", false, sc.Err()
}

// UnescapePath undoes the doubled backslashes Steam writes in Windows paths.
func UnescapePath(s string) string {
	return strings.ReplaceAll(s, `\\`, `\`)
}
