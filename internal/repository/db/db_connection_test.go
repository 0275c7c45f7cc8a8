package db

import (
	"path/filepath"
	"testing"
)

func TestInitDB_CreatesSchemaAndSeedsClosedVent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gnroof.db")

	conn, err := InitDB(path)
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	defer conn.Close()

	var vent string
	var rain, smoke bool
	if err := conn.QueryRow(`SELECT vent, rain, smoke FROM vent_state WHERE id = 1`).Scan(&vent, &rain, &smoke); err != nil {
		t.Fatalf("select seeded state: %v", err)
	}
	if vent != "CLOSE" || rain || smoke {
		t.Fatalf("unexpected seed: vent=%s rain=%v smoke=%v", vent, rain, smoke)
	}

	var samples int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM hazard_log`).Scan(&samples); err != nil {
		t.Fatalf("count hazard_log: %v", err)
	}
	if samples != 2 {
		t.Fatalf("expected one seed sample per hazard, got %d", samples)
	}
}

func TestEnsureSchema_IsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gnroof.db")

	conn, err := InitDB(path)
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	defer conn.Close()

	if _, err := conn.Exec(`UPDATE vent_state SET vent = 'OPEN' WHERE id = 1`); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := EnsureSchema(conn); err != nil {
		t.Fatalf("second EnsureSchema: %v", err)
	}

	var vent string
	if err := conn.QueryRow(`SELECT vent FROM vent_state WHERE id = 1`).Scan(&vent); err != nil {
		t.Fatalf("select: %v", err)
	}
	if vent != "OPEN" {
		t.Fatalf("re-seeding must not overwrite state, got %s", vent)
	}
	var samples int
	_ = conn.QueryRow(`SELECT COUNT(*) FROM hazard_log`).Scan(&samples)
	if samples != 2 {
		t.Fatalf("re-seeding must not duplicate samples, got %d", samples)
	}
}
