package internal

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/iksnae/legislation-tracker/testutil"
)

func TestLoadItems_TagsSource(t *testing.T) {
	dir := testutil.CreateDataDir(t, map[string]string{
		"a.json":     `[{"title":"X Act","status":"Enacted","tags":["privacy"]}]`,
		"b.json":     `[{"name":"Y Framework"},{"title":"Z Bill","state":"Utah"}]`,
		"notes.txt":  `not data`,
		"empty.json": `[]`,
	})

	items, err := LoadItems(dir)
	if err != nil {
		t.Fatalf("LoadItems() error = %v", err)
	}

	var got [][2]string
	for _, item := range items {
		got = append(got, [2]string{item.DisplayTitle, item.Source})
	}
	want := [][2]string{
		{"X Act", "a"},
		{"Y Framework", "b"},
		{"Z Bill", "b"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LoadItems() mismatch (-want +got):\n%s", diff)
	}
	if items[2].Location != "Utah" {
		t.Errorf("Location = %q, want Utah", items[2].Location)
	}
}

func TestLoadItems_EmptyDirectory(t *testing.T) {
	items, err := LoadItems(t.TempDir())
	if err != nil {
		t.Fatalf("LoadItems() error = %v", err)
	}
	if len(items) != 0 {
		t.Errorf("LoadItems() returned %d items, want 0", len(items))
	}
}

func TestLoadItems_MissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")

	_, err := LoadItems(dir)
	var dirErr *DataDirError
	if !errors.As(err, &dirErr) {
		t.Fatalf("LoadItems() error = %v, want *DataDirError", err)
	}
	if dirErr.Path != dir {
		t.Errorf("DataDirError.Path = %q, want %q", dirErr.Path, dir)
	}
}

func TestLoadItems_PathIsFile(t *testing.T) {
	path := testutil.WriteDataFile(t, t.TempDir(), "data", "[]")

	_, err := LoadItems(path)
	var dirErr *DataDirError
	if !errors.As(err, &dirErr) {
		t.Fatalf("LoadItems() error = %v, want *DataDirError", err)
	}
}

func TestLoadItems_MalformedFileFails(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "truncated", content: `[{"title": "X"`},
		{name: "object instead of array", content: `{"title": "X"}`},
		{name: "wrong field type", content: `[{"title": "X", "tags": "privacy"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := testutil.CreateDataDir(t, map[string]string{
				"good.json": `[{"title":"Fine"}]`,
				"bad.json":  tt.content,
			})

			_, err := LoadItems(dir)
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("LoadItems() error = %v, want *ParseError", err)
			}
			if filepath.Base(parseErr.Key) != "bad.json" {
				t.Errorf("ParseError.Key = %q, want the bad file", parseErr.Key)
			}
		})
	}
}

func TestLoadFile_SkipsNullRecords(t *testing.T) {
	path := testutil.WriteDataFile(t, t.TempDir(), "a.json", `[null, {"title":"X"}]`)

	items, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if len(items) != 1 || items[0].DisplayTitle != "X" {
		t.Errorf("LoadFile() = %+v, want one record titled X", items)
	}
}

func TestLoadDataset(t *testing.T) {
	dir := testutil.CreateSampleDataDir(t)

	ds, err := LoadDataset(dir)
	if err != nil {
		t.Fatalf("LoadDataset() error = %v", err)
	}

	wantNames := []string{"international_frameworks", "us_federal_actions", "us_state_bills"}
	if diff := cmp.Diff(wantNames, ds.Names); diff != "" {
		t.Errorf("Dataset.Names mismatch (-want +got):\n%s", diff)
	}
	if got := len(ds.Get("us_state_bills")); got != 3 {
		t.Errorf("len(us_state_bills) = %d, want 3", got)
	}
	if got := ds.Get("us_state_bills")[0].Source; got != "" {
		t.Errorf("LoadDataset() should leave Source empty, got %q", got)
	}
	if got := ds.Get("missing"); got == nil || len(got) != 0 {
		t.Errorf("Get(missing) = %v, want empty slice", got)
	}
}

func TestDataset_NilSafe(t *testing.T) {
	var ds *Dataset
	if ds.Len() != 0 {
		t.Error("nil Dataset Len() should be 0")
	}
	if len(ds.Get("us_state_bills")) != 0 {
		t.Error("nil Dataset Get() should be empty")
	}
}

func TestFileStem(t *testing.T) {
	if got := FileStem("/data/us_state_bills.json"); got != "us_state_bills" {
		t.Errorf("FileStem() = %q, want us_state_bills", got)
	}
}
