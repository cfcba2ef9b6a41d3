package sqltime

import (
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`
		CREATE TABLE events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			occurred_at INTEGER NOT NULL,
			archived_at INTEGER,
			due_on TEXT NOT NULL
		)
	`)
	if err != nil {
		t.Fatalf("failed to create table: %v", err)
	}
	return db
}

func TestTimeRoundTrip(t *testing.T) {
	db := setupTestDB(t)

	occurred := Time{Time: time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)}
	due := Date{Year: 2026, Month: time.April, Day: 1}

	if _, err := db.Exec(`INSERT INTO events (occurred_at, archived_at, due_on) VALUES (?, NULL, ?)`, occurred, due); err != nil {
		t.Fatalf("insert: %v", err)
	}

	var gotOccurred Time
	var gotArchived NullTime
	var gotDue Date
	row := db.QueryRow(`SELECT occurred_at, archived_at, due_on FROM events WHERE id = 1`)
	if err := row.Scan(&gotOccurred, &gotArchived, &gotDue); err != nil {
		t.Fatalf("scan: %v", err)
	}

	if !gotOccurred.Equal(occurred.Time) {
		t.Errorf("occurred_at = %v, want %v", gotOccurred.Time, occurred.Time)
	}
	if gotArchived.Valid {
		t.Errorf("archived_at = %+v, want NULL", gotArchived)
	}
	if gotDue != due {
		t.Errorf("due_on = %+v, want %+v", gotDue, due)
	}
}

func TestNullTimeRoundTrip(t *testing.T) {
	db := setupTestDB(t)

	archived := NullTime{Time: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), Valid: true}
	if _, err := db.Exec(`INSERT INTO events (occurred_at, archived_at, due_on) VALUES (?, ?, ?)`,
		Time{Time: time.Now()}, archived, Date{Year: 2026, Month: time.January, Day: 2}); err != nil {
		t.Fatalf("insert: %v", err)
	}

	var got NullTime
	if err := db.QueryRow(`SELECT archived_at FROM events WHERE id = 1`).Scan(&got); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if !got.Valid || !got.Time.Equal(archived.Time) {
		t.Errorf("archived_at = %+v, want %+v", got, archived)
	}
}

func TestTimeScanSources(t *testing.T) {
	tests := []struct {
		name    string
		src     any
		want    time.Time
		wantErr bool
	}{
		{name: "millis", src: int64(1700000000000), want: time.UnixMilli(1700000000000).UTC()},
		{name: "native time", src: time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC), want: time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC)},
		{name: "nil resets", src: nil, want: time.Time{}},
		{name: "unsupported", src: 3.14, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v Time
			err := v.Scan(tt.src)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Scan() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && !v.Time.Equal(tt.want) {
				t.Errorf("Scan() = %v, want %v", v.Time, tt.want)
			}
		})
	}
}

func TestDateScanAndFormat(t *testing.T) {
	var d Date
	if err := d.Scan("2026-08-23"); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if d.String() != "2026-08-23" {
		t.Errorf("String() = %q", d.String())
	}
	if got := d.In(time.UTC); got != time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC) {
		t.Errorf("In(UTC) = %v", got)
	}

	if err := d.Scan("not a date"); err == nil {
		t.Error("expected parse error")
	}
}
