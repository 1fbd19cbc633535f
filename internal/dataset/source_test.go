package dataset

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "employees.csv")
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return p
}

func TestSource_LoadsOnce(t *testing.T) {
	p := writeCSV(t, sampleCSV)
	src := NewSource(p)

	first, err := src.Records()
	if err != nil {
		t.Fatalf("Records: %v", err)
	}
	if len(first) != 3 {
		t.Fatalf("records: got %d, want 3", len(first))
	}

	// Deleting the file after the first load must not matter: the cache is
	// immutable for the process lifetime.
	if err := os.Remove(p); err != nil {
		t.Fatalf("remove: %v", err)
	}
	second, err := src.Records()
	if err != nil {
		t.Fatalf("Records after remove: %v", err)
	}
	if &first[0] != &second[0] {
		t.Error("Records: second call returned a different slice")
	}
}

func TestSource_RecordsAreEnriched(t *testing.T) {
	src := NewSource(writeCSV(t, sampleCSV))
	records, err := src.Records()
	if err != nil {
		t.Fatalf("Records: %v", err)
	}
	if records[0].OverTimeFlag != FlagYes {
		t.Errorf("OverTimeFlag: got %v, want FlagYes", records[0].OverTimeFlag)
	}
	if !records[0].EngagementKnown() {
		t.Error("EngagementIndex should be defined")
	}
}

func TestSource_MissingFile_StickyError(t *testing.T) {
	src := NewSource(filepath.Join(t.TempDir(), "nope.csv"))
	if _, err := src.Records(); err == nil {
		t.Fatal("Records: expected error for missing file")
	}
	if _, err := src.Records(); err == nil {
		t.Fatal("Records: error must be sticky on retry")
	}
}

func TestSource_Departments_FirstAppearanceOrder(t *testing.T) {
	src := NewSource(writeCSV(t, sampleCSV))
	depts, err := src.Departments()
	if err != nil {
		t.Fatalf("Departments: %v", err)
	}
	want := []string{"Sales", "Research & Development"}
	if len(depts) != len(want) {
		t.Fatalf("departments: got %v, want %v", depts, want)
	}
	for i := range want {
		if depts[i] != want[i] {
			t.Errorf("departments[%d]: got %q, want %q", i, depts[i], want[i])
		}
	}
}

func TestSource_ConcurrentFirstUse(t *testing.T) {
	src := NewSource(writeCSV(t, sampleCSV))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := src.Records(); err != nil {
				t.Errorf("Records: %v", err)
			}
		}()
	}
	wg.Wait()
}
