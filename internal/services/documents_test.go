package services_test

import (
	"strings"
	"testing"

	"github.com/pajakdesk/pajakdesk/internal/models"
	"github.com/pajakdesk/pajakdesk/internal/services"
	"github.com/pajakdesk/pajakdesk/internal/storage"
)

func setupTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.New(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create test store: %v", err)
	}
	return store
}

func TestCreateDocumentStoresFileAndRecord(t *testing.T) {
	db := setupTestDB(t)
	store := setupTestStore(t)
	client := createTestClient(t, db, "Doc Co")

	doc, err := services.CreateDocument(db, store, services.DocumentInput{
		Name:     "SPT Masa Jan.pdf",
		ClientID: client.ID,
		Type:     "SPT Masa",
		Category: "Tax Return",
	}, strings.NewReader("pdf bytes"), "SPT Masa Jan.pdf")
	if err != nil {
		t.Fatalf("CreateDocument failed: %v", err)
	}

	if doc.FilePath == "" {
		t.Fatal("Expected a stored object name")
	}
	if doc.FileSize != int64(len("pdf bytes")) {
		t.Errorf("Expected size %d, got %d", len("pdf bytes"), doc.FileSize)
	}
	// Status defaults to Final
	if doc.Status != models.DocumentStatusFinal {
		t.Errorf("Expected default Final status, got %q", doc.Status)
	}
	if size, err := store.Stat(doc.FilePath); err != nil || size != doc.FileSize {
		t.Errorf("Stored object missing or size mismatch: %v %d", err, size)
	}
}

func TestCreateDocumentRequiresExistingClient(t *testing.T) {
	db := setupTestDB(t)
	store := setupTestStore(t)

	_, err := services.CreateDocument(db, store, services.DocumentInput{
		Name:     "orphan.pdf",
		ClientID: "no-such-client",
		Type:     "SPT Masa",
		Category: "Tax Return",
	}, strings.NewReader("x"), "orphan.pdf")
	if err == nil {
		t.Fatal("Expected referenced-client error")
	}

	// Validation runs before the binary is written, nothing is orphaned
	if _, count, err := store.Usage(); err != nil || count != 0 {
		t.Errorf("Expected empty store, got count=%d err=%v", count, err)
	}
}

func TestUpdateDocumentReplacesFile(t *testing.T) {
	db := setupTestDB(t)
	store := setupTestStore(t)
	client := createTestClient(t, db, "Doc Co")

	doc, err := services.CreateDocument(db, store, services.DocumentInput{
		Name:     "report.pdf",
		ClientID: client.ID,
		Type:     "Report",
		Category: "Financial",
	}, strings.NewReader("v1"), "report.pdf")
	if err != nil {
		t.Fatalf("CreateDocument failed: %v", err)
	}
	oldObject := doc.FilePath

	updated, err := services.UpdateDocument(db, store, doc.ID, services.DocumentInput{
		Name:     "report-final.pdf",
		ClientID: client.ID,
		Type:     "Report",
		Category: "Financial",
		Status:   models.DocumentStatusFinal,
	}, strings.NewReader("v2 longer"), "report-final.pdf")
	if err != nil {
		t.Fatalf("UpdateDocument failed: %v", err)
	}

	if updated.ID != doc.ID {
		t.Errorf("Expected id preserved, got %s", updated.ID)
	}
	if updated.FilePath == oldObject {
		t.Error("Expected a new object name after replacement")
	}
	// Old binary is gone, new one exists
	if _, err := store.Stat(oldObject); err == nil {
		t.Error("Expected old object removed")
	}
	if size, err := store.Stat(updated.FilePath); err != nil || size != int64(len("v2 longer")) {
		t.Errorf("New object missing or size mismatch: %v %d", err, size)
	}
}

func TestUpdateDocumentWithoutFileKeepsBinary(t *testing.T) {
	db := setupTestDB(t)
	store := setupTestStore(t)
	client := createTestClient(t, db, "Doc Co")

	doc, err := services.CreateDocument(db, store, services.DocumentInput{
		Name:     "notes.docx",
		ClientID: client.ID,
		Type:     "Notes",
		Category: "Internal",
	}, strings.NewReader("content"), "notes.docx")
	if err != nil {
		t.Fatalf("CreateDocument failed: %v", err)
	}

	updated, err := services.UpdateDocument(db, store, doc.ID, services.DocumentInput{
		Name:     "notes.docx",
		ClientID: client.ID,
		Type:     "Notes",
		Category: "Internal",
		Status:   models.DocumentStatusDraft,
	}, nil, "")
	if err != nil {
		t.Fatalf("UpdateDocument failed: %v", err)
	}

	if updated.FilePath != doc.FilePath {
		t.Error("Expected unchanged object without a replacement file")
	}
	if updated.Status != models.DocumentStatusDraft {
		t.Errorf("Expected Draft status, got %q", updated.Status)
	}
	if _, err := store.Stat(doc.FilePath); err != nil {
		t.Errorf("Original object should survive: %v", err)
	}
}

func TestListDocumentsJoinsClientName(t *testing.T) {
	db := setupTestDB(t)
	store := setupTestStore(t)
	client := createTestClient(t, db, "Join Co")

	if _, err := services.CreateDocument(db, store, services.DocumentInput{
		Name:     "invoice.xlsx",
		ClientID: client.ID,
		Type:     "Invoice",
		Category: "Financial",
	}, strings.NewReader("x"), "invoice.xlsx"); err != nil {
		t.Fatalf("CreateDocument failed: %v", err)
	}

	rows, err := services.ListDocuments(db, "", "all", "all")
	if err != nil {
		t.Fatalf("ListDocuments failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("Expected 1 document, got %d", len(rows))
	}
	if rows[0].ClientName != "Join Co" {
		t.Errorf("Expected joined client name, got %q", rows[0].ClientName)
	}
	if rows[0].FileKind != "excel" {
		t.Errorf("Expected excel file kind, got %q", rows[0].FileKind)
	}

	// Free text matches the client name too
	byClient, err := services.ListDocuments(db, "join co", "", "")
	if err != nil {
		t.Fatalf("ListDocuments failed: %v", err)
	}
	if len(byClient) != 1 {
		t.Errorf("Expected client-name match, got %d rows", len(byClient))
	}
}

func TestDocumentStats(t *testing.T) {
	db := setupTestDB(t)
	store := setupTestStore(t)
	client := createTestClient(t, db, "Stat Co")

	if _, err := services.CreateDocument(db, store, services.DocumentInput{
		Name:     "a.pdf",
		ClientID: client.ID,
		Type:     "Report",
		Category: "Financial",
		Status:   models.DocumentStatusDraft,
	}, strings.NewReader("aaaa"), "a.pdf"); err != nil {
		t.Fatalf("CreateDocument failed: %v", err)
	}
	if _, err := services.CreateDocument(db, store, services.DocumentInput{
		Name:     "b.pdf",
		ClientID: client.ID,
		Type:     "Report",
		Category: "Financial",
		Status:   models.DocumentStatusReview,
	}, strings.NewReader("bb"), "b.pdf"); err != nil {
		t.Fatalf("CreateDocument failed: %v", err)
	}

	stats, err := services.GetDocumentStats(db, store)
	if err != nil {
		t.Fatalf("GetDocumentStats failed: %v", err)
	}
	if stats.Total != 2 || stats.Drafts != 1 || stats.InReview != 1 {
		t.Errorf("Count breakdown wrong: %+v", stats)
	}
	if stats.StorageBytes != 6 {
		t.Errorf("Expected 6 storage bytes, got %d", stats.StorageBytes)
	}
	if stats.UploadsToday != 2 {
		t.Errorf("Expected 2 uploads today, got %d", stats.UploadsToday)
	}
}
