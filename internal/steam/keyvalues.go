package steam

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/andygrunwald/vdf"
)

// keyValues is a parsed KeyValues document. Nested sections are
// map[string]interface{}, leaves are strings.
type keyValues map[string]interface{}

// readKeyValues parses the KeyValues file at path.
func readKeyValues(path string) (keyValues, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := vdf.NewParser(f).Parse()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return keyValues(m), nil
}

// child returns the value under key. Steam is not consistent about key case
// across versions, so an exact match wins and a case-insensitive one is the
// fallback.
func (kv keyValues) child(key string) (interface{}, bool) {
	if v, ok := kv[key]; ok {
		return v, true
	}
	for k, v := range kv {
		if strings.EqualFold(k, key) {
			return v, true
		}
	}
	return nil, false
}

// section walks path and returns the section it names.
func (kv keyValues) section(path ...string) (keyValues, bool) {
	cur := kv
	for _, key := range path {
		v, ok := cur.child(key)
		if !ok {
			return nil, false
		}
		m, ok := v.(map[string]interface{})
		if !ok {
			return nil, false
		}
		cur = keyValues(m)
	}
	return cur, true
}

// str returns the string leaf under key.
func (kv keyValues) str(key string) (string, bool) {
	v, ok := kv.child(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// numbered returns the children whose keys are decimal indexes, in index
// order.
func (kv keyValues) numbered() []interface{} {
	type entry struct {
		n int
		v interface{}
	}
	var entries []entry
	for k, v := range kv {
		n, err := strconv.Atoi(k)
		if err != nil || n < 0 {
			continue
		}
		entries = append(entries, entry{n, v})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].n < entries[j].n })
	out := make([]interface{}, len(entries))
	for i, e := range entries {
		out[i] = e.v
	}
	return out
}
