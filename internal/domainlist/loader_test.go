package domainlist

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestParseMarkdownDomainColumn(t *testing.T) {
	table := `# Approved Domains

| # | Domain | Registrar |
|---|--------|-----------|
| 1 | ` + "`example.com`" + ` | GoDaddy |
| 2 | contoso.com | Namecheap |
| 3 | 12345 | bogus row number |
| 4 | example.com | duplicate |
`
	got, err := ParseMarkdown(strings.NewReader(table))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"example.com", "contoso.com"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestParseMarkdownFallbackColumn(t *testing.T) {
	table := `| alpha.com | some note |
| beta.org | another note |
`
	got, err := ParseMarkdown(strings.NewReader(table))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"alpha.com", "beta.org"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestParseMarkdownHeaderOnly(t *testing.T) {
	table := `| Domain |
|--------|
`
	got, err := ParseMarkdown(strings.NewReader(table))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no domains, got %v", got)
	}
}

func TestParseCSVWithHeader(t *testing.T) {
	got, err := ParseCSV(strings.NewReader("domain,owner\nexample.com,it\ncontoso.com,hr\nexample.com,dup\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"example.com", "contoso.com"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestParseCSVWithoutHeader(t *testing.T) {
	got, err := ParseCSV(strings.NewReader("example.com,x\ncontoso.com,y\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"example.com", "contoso.com"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestParseCSVNamedColumn(t *testing.T) {
	got, err := ParseCSV(strings.NewReader("id,hostname,seen\n1,example.com,today\n2,\ufeffcontoso.com,today\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"example.com", "contoso.com"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestParseLines(t *testing.T) {
	input := `# observed this week

example.com
contoso.com
example.com
`
	got, err := ParseLines(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"example.com", "contoso.com"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestLoadFileDispatch(t *testing.T) {
	testCases := []struct {
		name    string
		file    string
		content string
		want    []string
	}{
		{"markdown", "list.md", "| Domain |\n|---|\n| example.com |\n", []string{"example.com"}},
		{"csv", "list.csv", "domain\nexample.com\n", []string{"example.com"}},
		{"plain", "list.txt", "example.com\n", []string{"example.com"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, tc.file, tc.content)
			got, err := LoadFile(path)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.md")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
