package duckdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genebe/gbid/internal/gbid"
	"github.com/genebe/gbid/internal/transcriptid"
)

func openInMemory(t *testing.T) *Store {
	t.Helper()
	s, err := Open("")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func encodeVCF(t *testing.T, chrom string, pos int64, ref, alt string) gbid.GBID {
	t.Helper()
	id, err := gbid.NewCodec().EncodeVCF(chrom, pos, ref, alt)
	require.NoError(t, err)
	return id
}

func TestOpenClose(t *testing.T) {
	s := openInMemory(t)
	assert.NotNil(t, s.DB())
}

func TestWriteAndLookupVariants(t *testing.T) {
	s := openInMemory(t)

	snv := encodeVCF(t, "12", 25245350, "C", "A")
	ins := encodeVCF(t, "1", 16044378, "C", "CACACACACAT")

	records := []VariantRecord{
		{ID: snv, Chrom: "12", Pos: 25245350, Ref: "C", Alt: "A"},
		{ID: ins, Chrom: "1", Pos: 16044378, Ref: "C", Alt: "CACACACACAT"},
		// Duplicate of the first record, dropped before writing.
		{ID: snv, Chrom: "12", Pos: 25245350, Ref: "C", Alt: "A"},
	}
	require.NoError(t, s.WriteVariants(records))

	got, err := s.LookupVariant(snv)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "12", got.Chrom)
	assert.Equal(t, int64(25245350), got.Pos)
	assert.Equal(t, "C", got.Ref)
	assert.Equal(t, "A", got.Alt)

	// The hash-encoded GBID round-trips through its stored record even
	// though the codec cannot invert it.
	got, err = s.LookupVariant(ins)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "CACACACACAT", got.Alt)

	missing, err := s.LookupVariant(gbid.GBID{Lo: 12345})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSearchByRegion(t *testing.T) {
	s := openInMemory(t)

	records := []VariantRecord{
		{ID: encodeVCF(t, "7", 100, "A", "C"), Chrom: "7", Pos: 100, Ref: "A", Alt: "C"},
		{ID: encodeVCF(t, "7", 300, "G", "T"), Chrom: "7", Pos: 300, Ref: "G", Alt: "T"},
		{ID: encodeVCF(t, "7", 500, "C", "G"), Chrom: "7", Pos: 500, Ref: "C", Alt: "G"},
		{ID: encodeVCF(t, "8", 300, "G", "T"), Chrom: "8", Pos: 300, Ref: "G", Alt: "T"},
	}
	require.NoError(t, s.WriteVariants(records))

	got, err := s.SearchByRegion("7", 100, 300)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(100), got[0].Pos)
	assert.Equal(t, int64(300), got[1].Pos)
	assert.Equal(t, records[0].ID, got[0].ID)

	got, err = s.SearchByRegion("7", 600, 700)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestClearVariants(t *testing.T) {
	s := openInMemory(t)

	id := encodeVCF(t, "1", 1000, "A", "G")
	require.NoError(t, s.WriteVariants([]VariantRecord{
		{ID: id, Chrom: "1", Pos: 1000, Ref: "A", Alt: "G"},
	}))
	require.NoError(t, s.ClearVariants())

	got, err := s.LookupVariant(id)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestWriteAndLookupTranscripts(t *testing.T) {
	s := openInMemory(t)

	enst, err := transcriptid.Encode("ENST00000404276.6")
	require.NoError(t, err)
	nm, err := transcriptid.Encode("NM_001234567.3")
	require.NoError(t, err)

	require.NoError(t, s.WriteTranscripts([]TranscriptRecord{
		{ID: enst, Accession: "ENST00000404276.6"},
		{ID: nm, Accession: "NM_001234567.3"},
		{ID: enst, Accession: "ENST00000404276.6"}, // deduplicated
	}))

	accession, ok, err := s.LookupTranscript(enst)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "ENST00000404276.6", accession)

	id, ok, err := s.LookupAccession("NM_001234567.3")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, nm, id)

	_, ok, err = s.LookupTranscript(transcriptid.ID(999))
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = s.LookupAccession("ENST00000000001")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestWriteVariantsEmpty(t *testing.T) {
	s := openInMemory(t)
	require.NoError(t, s.WriteVariants(nil))
	require.NoError(t, s.WriteTranscripts(nil))
}
