package storage_test

import (
	"os"
	"strings"
	"testing"

	"github.com/pajakdesk/pajakdesk/internal/storage"
)

func newTestStore(t *testing.T) *storage.Store {
	store, err := storage.New(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	return store
}

// TestSaveAndOpen verifies a stored object round-trips and keeps only the
// extension of the original name.
func TestSaveAndOpen(t *testing.T) {
	store := newTestStore(t)

	object, size, err := store.Save(strings.NewReader("spt masa content"), "SPT Masa PPh 21 - Juni 2025.pdf")
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if size != int64(len("spt masa content")) {
		t.Errorf("Expected size %d, got %d", len("spt masa content"), size)
	}
	if !strings.HasSuffix(object, ".pdf") {
		t.Errorf("Expected .pdf suffix on object name, got %q", object)
	}
	if strings.Contains(object, " ") {
		t.Errorf("Object name must not carry the original filename, got %q", object)
	}

	f, err := store.Open(object)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer f.Close()

	buf := make([]byte, size)
	if _, err := f.Read(buf); err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if string(buf) != "spt masa content" {
		t.Errorf("Round-trip mismatch: %q", string(buf))
	}
}

// TestRemoveIdempotent verifies removing a missing object is not an error.
func TestRemoveIdempotent(t *testing.T) {
	store := newTestStore(t)

	object, _, err := store.Save(strings.NewReader("x"), "scan.jpg")
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Remove(object); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if err := store.Remove(object); err != nil {
		t.Errorf("Second Remove should be a no-op, got %v", err)
	}
	if _, err := store.Stat(object); !os.IsNotExist(err) {
		t.Errorf("Expected object gone, got %v", err)
	}
}

// TestPathTraversalRejected verifies object paths cannot escape the root.
func TestPathTraversalRejected(t *testing.T) {
	store := newTestStore(t)

	for _, object := range []string{"../etc/passwd", "/etc/passwd", ".."} {
		if _, err := store.Path(object); err == nil {
			t.Errorf("Expected rejection for %q", object)
		}
	}
}

// TestUsage verifies byte and object counts over the root.
func TestUsage(t *testing.T) {
	store := newTestStore(t)

	if _, _, err := store.Save(strings.NewReader("aaaa"), "a.pdf"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, _, err := store.Save(strings.NewReader("bb"), "b.xlsx"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	bytes, count, err := store.Usage()
	if err != nil {
		t.Fatalf("Usage failed: %v", err)
	}
	if bytes != 6 || count != 2 {
		t.Errorf("Usage = (%d bytes, %d objects), want (6, 2)", bytes, count)
	}
}
