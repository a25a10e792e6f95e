package logging

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Tail returns the last n lines of the log at path whose level is at least
// minLevel. Lines without a recognizable level are kept. n <= 0 returns
// every matching line, and a missing file yields no lines.
func Tail(path string, n int, minLevel slog.Level) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	var ring []string
	if n > 0 {
		ring = make([]string, n)
	}
	var all []string
	count, idx := 0, 0

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if level, ok := lineLevel(line); ok && level < minLevel {
			continue
		}
		if n <= 0 {
			all = append(all, line)
			continue
		}
		ring[idx] = line
		idx = (idx + 1) % n
		if count < n {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	if n <= 0 {
		return all, nil
	}

	lines := make([]string, count)
	if count == n {
		for i := range count {
			lines[i] = ring[(idx+i)%n]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// lineLevel extracts the level key of a slog text or JSON record. Text
// records are scanned key by key up to msg, so attribute values that happen
// to contain "level=" are never read.
func lineLevel(line string) (slog.Level, bool) {
	var raw string
	if strings.HasPrefix(strings.TrimSpace(line), "{") {
		var rec struct {
			Level string `json:"level"`
		}
		if err := json.Unmarshal([]byte(line), &rec); err != nil || rec.Level == "" {
			return 0, false
		}
		raw = rec.Level
	} else {
		for _, field := range strings.Fields(line) {
			if v, ok := strings.CutPrefix(field, "level="); ok {
				raw = v
				break
			}
			if strings.HasPrefix(field, "msg=") {
				break
			}
		}
		if raw == "" {
			return 0, false
		}
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return 0, false
	}
	return level, true
}
