package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	goduckdb "github.com/marcboeker/go-duckdb"

	"github.com/genebe/gbid/internal/gbid"
)

// VariantRecord maps a GBID back to the VCF-style variant it encodes.
type VariantRecord struct {
	ID    gbid.GBID
	Chrom string
	Pos   int64 // 1-based position
	Ref   string
	Alt   string
}

// WriteVariants batch-inserts variant records using the Appender API.
// Records sharing a GBID are deduplicated before writing.
func (s *Store) WriteVariants(records []VariantRecord) error {
	if len(records) == 0 {
		return nil
	}

	seen := make(map[gbid.GBID]bool, len(records))
	deduped := make([]VariantRecord, 0, len(records))
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
		appender, err = goduckdb.NewAppenderFromConn(driverConn.(driver.Conn), "", "variants")
		return err
	}); err != nil {
		return fmt.Errorf("create appender: %w", err)
	}
	defer appender.Close()

	for _, r := range deduped {
		if err := appender.AppendRow(r.ID.String(), r.Chrom, r.Pos, r.Ref, r.Alt); err != nil {
			return fmt.Errorf("append variant: %w", err)
		}
	}

	return appender.Flush()
}

// LookupVariant returns the record stored for a GBID, or nil when the
// GBID is not in the index.
func (s *Store) LookupVariant(id gbid.GBID) (*VariantRecord, error) {
	row := s.db.QueryRow(
		`SELECT chrom, pos, ref, alt FROM variants WHERE gbid = ?`,
		id.String())

	r := VariantRecord{ID: id}
	if err := row.Scan(&r.Chrom, &r.Pos, &r.Ref, &r.Alt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan variant: %w", err)
	}
	return &r, nil
}

// SearchByRegion returns all indexed variants on a chromosome within
// the 1-based position range [start, end].
func (s *Store) SearchByRegion(chrom string, start, end int64) ([]VariantRecord, error) {
	rows, err := s.db.Query(
		`SELECT gbid, chrom, pos, ref, alt FROM variants
		WHERE chrom = ? AND pos >= ? AND pos <= ?
		ORDER BY pos`,
		chrom, start, end)
	if err != nil {
		return nil, fmt.Errorf("query region: %w", err)
	}
	defer rows.Close()

	var records []VariantRecord
	for rows.Next() {
		var r VariantRecord
		var packed string
		if err := rows.Scan(&packed, &r.Chrom, &r.Pos, &r.Ref, &r.Alt); err != nil {
			return nil, fmt.Errorf("scan variant: %w", err)
		}
		if r.ID, err = gbid.Parse(packed); err != nil {
			return nil, fmt.Errorf("stored gbid: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate variants: %w", err)
	}
	return records, nil
}

// ClearVariants removes all indexed variants.
func (s *Store) ClearVariants() error {
	_, err := s.db.Exec("DELETE FROM variants")
	return err
}
