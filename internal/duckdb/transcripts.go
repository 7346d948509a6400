package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	goduckdb "github.com/marcboeker/go-duckdb"

	"github.com/genebe/gbid/internal/transcriptid"
)

// TranscriptRecord maps a packed transcript id to its accession string.
type TranscriptRecord struct {
	ID        transcriptid.ID
	Accession string
}

// WriteTranscripts batch-inserts transcript records using the Appender
// API, deduplicating by packed id first. The packed value always fits a
// signed 64-bit column: the top bit is the reserved OMIT flag.
func (s *Store) WriteTranscripts(records []TranscriptRecord) error {
	if len(records) == 0 {
		return nil
	}

	seen := make(map[transcriptid.ID]bool, len(records))
	deduped := make([]TranscriptRecord, 0, len(records))
	for _, r := range records {
		if !seen[r.ID] {
			seen[r.ID] = true
			deduped = append(deduped, r)
		}
	}

	conn, err := s.db.Conn(context.Background())
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	var appender *goduckdb.Appender
	if err := conn.Raw(func(driverConn any) error {
		var err error
		appender, err = goduckdb.NewAppenderFromConn(driverConn.(driver.Conn), "", "transcripts")
		return err
	}); err != nil {
		return fmt.Errorf("create appender: %w", err)
	}
	defer appender.Close()

	for _, r := range deduped {
		if err := appender.AppendRow(int64(r.ID), r.Accession); err != nil {
			return fmt.Errorf("append transcript: %w", err)
		}
	}

	return appender.Flush()
}

// LookupTranscript returns the accession stored for a packed id, or
// ok == false when absent.
func (s *Store) LookupTranscript(id transcriptid.ID) (string, bool, error) {
	row := s.db.QueryRow(`SELECT accession FROM transcripts WHERE id = ?`, int64(id))

	var accession string
	if err := row.Scan(&accession); err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, fmt.Errorf("scan transcript: %w", err)
	}
	return accession, true, nil
}

// LookupAccession returns the packed id stored for an accession, or
// ok == false when absent.
func (s *Store) LookupAccession(accession string) (transcriptid.ID, bool, error) {
	row := s.db.QueryRow(`SELECT id FROM transcripts WHERE accession = ?`, accession)

	var packed int64
	if err := row.Scan(&packed); err != nil {
		if err == sql.ErrNoRows {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("scan transcript: %w", err)
	}
	return transcriptid.ID(packed), true, nil
}
