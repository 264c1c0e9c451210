package main

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testCatalog = `cards:
  - id: ml
    title: Intro to ML
    description: basics
    tags: [AI, Python]
    category: tech
  - id: bread
    title: Bread
    tags: [Cooking]
    category: food
posts:
  - id: tech-trends
    title: Tech Trends
    category: tech
  - id: travel-notes
    title: Travel Notes
    category: travel
`

const testPage = `<html><body>
<div class="content-card" id="ml"><h3 class="card-title">Intro to ML</h3>
<p class="card-description">basics</p><span class="tag">AI</span></div>
<article class="blog-card" data-category="travel"><h2 class="blog-title">Travel Notes</h2></article>
</body></html>`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestFilter(t *testing.T) {
	catalog := writeFile(t, "catalog.yaml", testCatalog)

	tests := []struct {
		name    string
		args    []string
		want    []string
		notWant []string
	}{
		{"cards by text", []string{"--q", "python"}, []string{"Intro to ML", "1 matched"}, []string{"Bread"}},
		{"cards by category", []string{"--category", "food"}, []string{"Bread"}, []string{"Intro to ML"}},
		{"posts by category", []string{"--kind", "post", "--category", "travel"}, []string{"Travel Notes"}, []string{"Tech Trends"}},
		{"posts all", []string{"--kind", "post", "--category", "all"}, []string{"Travel Notes", "Tech Trends", "2 matched"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, append([]string{"filter", "--catalog", catalog}, tt.args...)...)
			if err != nil {
				t.Fatalf("filter: %v", err)
			}
			for _, s := range tt.want {
				if !strings.Contains(out, s) {
					t.Errorf("output missing %q:\n%s", s, out)
				}
			}
			for _, s := range tt.notWant {
				if strings.Contains(out, s) {
					t.Errorf("output must not contain %q:\n%s", s, out)
				}
			}
		})
	}
}

func TestFilter_UnknownKind(t *testing.T) {
	catalog := writeFile(t, "catalog.yaml", testCatalog)
	if _, err := run(t, "filter", "--catalog", catalog, "--kind", "page"); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

func TestExtract(t *testing.T) {
	page := writeFile(t, "page.html", testPage)
	out := filepath.Join(t.TempDir(), "catalog.yaml")

	if _, err := run(t, "extract", "--out", out, page); err != nil {
		t.Fatalf("extract: %v", err)
	}

	// The extracted catalog feeds straight back into filter.
	got, err := run(t, "filter", "--catalog", out, "--kind", "post")
	if err != nil {
		t.Fatalf("filter extracted catalog: %v", err)
	}
	if !strings.Contains(got, "Travel Notes") {
		t.Errorf("extracted catalog missing post:\n%s", got)
	}
}

func TestExport_CSV(t *testing.T) {
	catalog := writeFile(t, "catalog.yaml", testCatalog)
	out := filepath.Join(t.TempDir(), "records.csv")

	if _, err := run(t, "export", "--catalog", catalog, "--out", out, "--category", "tech"); err != nil {
		t.Fatalf("export: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	// header + Intro to ML + Tech Trends
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3: %v", len(rows), rows)
	}
}

func TestExport_RejectsUnknownFormat(t *testing.T) {
	catalog := writeFile(t, "catalog.yaml", testCatalog)
	if _, err := run(t, "export", "--catalog", catalog, "--out", "records.json"); err == nil {
		t.Fatal("expected error for .json output")
	}
}

func TestExtract_ReportsWriteFailure(t *testing.T) {
	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("/dev/full not available")
	}
	page := writeFile(t, "page.html", testPage)
	if _, err := run(t, "extract", "--out", "/dev/full", page); err == nil {
		t.Fatal("expected error when the catalog cannot be written")
	}
}

func TestExtract_Stdout(t *testing.T) {
	page := writeFile(t, "page.html", testPage)
	out, err := run(t, "extract", page)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if !strings.Contains(out, "title: Intro to ML") {
		t.Errorf("catalog not written to stdout:\n%s", out)
	}
}
