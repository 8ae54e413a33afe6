package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/clearstone-io/tradematch/internal/domain"
)

func writeFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("stub"), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestList_FiltersByExtension(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "agreement-a.pdf")
	b := writeFile(t, dir, "AGREEMENT-B.PDF")
	writeFile(t, dir, "terms.xlsx")
	writeFile(t, dir, "notes.txt")
	if err := os.Mkdir(filepath.Join(dir, "nested.pdf"), 0o750); err != nil {
		t.Fatal(err)
	}

	got, err := New().List(context.Background(), dir, ".pdf")
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	want := []string{b, a} // sorted: uppercase before lowercase
	if !reflect.DeepEqual(got, want) {
		t.Errorf("List = %v, want %v", got, want)
	}
}

func TestList_MissingFolder(t *testing.T) {
	_, err := New().List(context.Background(), filepath.Join(t.TempDir(), "absent"), ".pdf")
	if !errors.Is(err, domain.ErrFolderNotFound) {
		t.Errorf("err = %v, want ErrFolderNotFound", err)
	}
}

func TestList_EmptyFolder(t *testing.T) {
	got, err := New().List(context.Background(), t.TempDir(), ".xlsx")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("List = %v, want empty", got)
	}
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	if err := New().Check(context.Background(), dir); err != nil {
		t.Errorf("Check(existing dir) = %v", err)
	}

	if err := New().Check(context.Background(), filepath.Join(dir, "absent")); !errors.Is(err, domain.ErrFolderNotFound) {
		t.Errorf("Check(missing dir) = %v, want ErrFolderNotFound", err)
	}

	file := writeFile(t, dir, "plain.pdf")
	if err := New().Check(context.Background(), file); !errors.Is(err, domain.ErrFolderNotFound) {
		t.Errorf("Check(file) = %v, want ErrFolderNotFound", err)
	}
}
