package migration

import (
	"testing"
	"testing/fstest"
)

func TestLoadMigrations_SortsAndChecksums(t *testing.T) {
	fsys := fstest.MapFS{
		"V2__freelancers.sql": {Data: []byte("CREATE TABLE freelancers (id UUID PRIMARY KEY);")},
		"V1__clients.sql":     {Data: []byte("CREATE TABLE clients (id UUID PRIMARY KEY);")},
		"notes.txt":           {Data: []byte("ignored")},
	}

	migs, err := loadMigrations(fsys)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(migs) != 2 {
		t.Fatalf("expected 2 migrations, got %d", len(migs))
	}
	if migs[0].Version != 1 || migs[1].Version != 2 {
		t.Fatalf("wrong order: %+v", migs)
	}
	if migs[0].Name != "clients" {
		t.Fatalf("wrong name: %s", migs[0].Name)
	}
	if migs[0].Checksum == "" || migs[0].Checksum == migs[1].Checksum {
		t.Fatalf("bad checksums: %s vs %s", migs[0].Checksum, migs[1].Checksum)
	}
}

func TestLoadMigrations_DuplicateVersion(t *testing.T) {
	fsys := fstest.MapFS{
		"V1__a.sql": {Data: []byte("SELECT 1;")},
		"V1__b.sql": {Data: []byte("SELECT 2;")},
	}
	if _, err := loadMigrations(fsys); err == nil {
		t.Fatal("expected duplicate version error")
	}
}

func TestLoadMigrations_EmptyFile(t *testing.T) {
	fsys := fstest.MapFS{
		"V1__a.sql": {Data: []byte("   \n")},
	}
	if _, err := loadMigrations(fsys); err == nil {
		t.Fatal("expected empty file error")
	}
}
