package domainlist

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/sirupsen/logrus"

	"github.com/kevinflint-cs2/watchtower/internal/match"
)

// LoadFile reads a domain list, picking the parser from the file extension:
// markdown tables for .md and .markdown, CSV for .csv, otherwise one domain
// per line. Entries come back raw; canonicalization happens downstream.
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open domain list: %w", err)
	}
	defer f.Close()

	var domains []string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		domains, err = ParseMarkdown(f)
	case ".csv":
		domains, err = ParseCSV(f)
	default:
		domains, err = ParseLines(f)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}

	logrus.WithFields(logrus.Fields{
		"path":    path,
		"domains": len(domains),
	}).Info("domain list loaded")
	return domains, nil
}

// ParseMarkdown extracts domains from a markdown table. The header row
// locates the Domain column; without a recognizable header the parser
// assumes column index 1, the first cell of a leading-pipe row. Backticked
// cells are unquoted, digit-only cells (row numbers) are skipped and
// duplicates collapse in first-seen order.
func ParseMarkdown(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read markdown: %w", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")

	col, headerIdx := -1, -1
	for i, line := range lines {
		if strings.Contains(line, "|") && strings.Contains(strings.ToLower(line), "domain") {
			for idx, cell := range strings.Split(line, "|") {
				if strings.Contains(strings.ToLower(strings.TrimSpace(cell)), "domain") {
					col, headerIdx = idx, i
					break
				}
			}
			break
		}
	}
	if col < 0 {
		logrus.Warn("no domain column header found, assuming column index 1")
		col = 1
	}

	seen := match.NewSet()
	for i, line := range lines {
		if i == headerIdx {
			continue
		}
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.Contains(line, "---") {
			continue
		}
		if !strings.Contains(line, "|") {
			continue
		}
		cells := strings.Split(line, "|")
		if len(cells) <= col {
			continue
		}
		cell := strings.TrimSpace(strings.Trim(strings.TrimSpace(cells[col]), "`"))
		if cell == "" || allDigits(cell) {
			continue
		}
		seen.Add(cell)
	}
	return seen.Items(), nil
}

// ParseCSV reads one domain per row, sniffing the first record for a
// domain-like column header and defaulting to the first column.
func ParseCSV(r io.Reader) ([]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	col := -1
	headerProcessed := false
	seen := match.NewSet()
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		if len(record) == 0 {
			continue
		}

		if !headerProcessed {
			headerProcessed = true
			col = detectDomainColumn(record)
			if col >= 0 {
				continue
			}
			col = 0
		}
		if col >= len(record) {
			col = 0
		}

		value := strings.TrimSpace(record[col])
		value = strings.TrimPrefix(value, "\ufeff")
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		seen.Add(value)
	}
	return seen.Items(), nil
}

// ParseLines reads one domain per line, ignoring blanks and # comments.
func ParseLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	seen := match.NewSet()
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		seen.Add(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read lines: %w", err)
	}
	return seen.Items(), nil
}

func detectDomainColumn(record []string) int {
	for idx, value := range record {
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "domain", "domains", "url", "hostname", "host":
			return idx
		}
	}
	return -1
}

func allDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
