// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_lexicon

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

const fieldSeparator = "|"

var (
	errNoSeparator = errors.New("missing '|' separator")
	errEmptyKey    = errors.New("empty key")
)

// readTable parses "key|value" lines. Blank lines and lines starting with '#'
// are skipped. Foreign keys are lower-cased so lookups can fold case.
func readTable(kind Kind, r io.Reader) (*Table, error) {
	table := newTable(kind)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if lineNo == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		if strings.TrimSpace(line) == "" || strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		key, value, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("(%s): line %d %q: %w", kind, lineNo, line, err)
		}
		if kind == KindForeign {
			key = strings.ToLower(key)
		}
		if err := table.add(key, value); err != nil {
			return nil, fmt.Errorf("(%s): line %d: %w", kind, lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("(%s): %w", kind, err)
	}
	return table, nil
}

func parseLine(line string) (string, string, error) {
	idx := strings.Index(line, fieldSeparator)
	if idx < 0 {
		return "", "", errNoSeparator
	}
	key := strings.TrimSpace(line[:idx])
	value := strings.TrimSpace(line[idx+len(fieldSeparator):])
	if key == "" {
		return "", "", errEmptyKey
	}
	return key, value, nil
}
