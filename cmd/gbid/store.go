package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/genebe/gbid/internal/duckdb"
	"github.com/genebe/gbid/internal/gbid"
	"github.com/genebe/gbid/internal/transcriptid"
)

func newStoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Maintain the local identifier index",
		Long: `Encode identifiers and keep them in a local DuckDB index so hash-encoded
GBIDs can be mapped back to their variants later. The index location is
the store.path config key (default ~/.gbid/gbid.duckdb).`,
	}

	cmd.AddCommand(newStoreAddCmd())
	cmd.AddCommand(newStoreLookupCmd())
	cmd.AddCommand(newStoreAddTranscriptCmd())
	cmd.AddCommand(newStoreLookupTranscriptCmd())

	return cmd
}

// storePath resolves the index location from config.
func storePath() string {
	if p := viper.GetString("store.path"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "gbid.duckdb"
	}
	return filepath.Join(home, ".gbid", "gbid.duckdb")
}

func openStore() (*duckdb.Store, error) {
	return duckdb.Open(storePath())
}

func newStoreAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <chrom> <pos> <ref> <alt>",
		Short: "Encode a variant and record it in the index",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid position %q", args[1])
			}
			id, err := newCodec().EncodeVCF(args[0], pos, args[2], args[3])
			if err != nil {
				return err
			}

			s, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.WriteVariants([]duckdb.VariantRecord{{
				ID: id, Chrom: args[0], Pos: pos, Ref: args[2], Alt: args[3],
			}}); err != nil {
				return err
			}
			fmt.Println(id)
			return nil
		},
	}
}

func newStoreLookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <gbid>",
		Short: "Look up the variant recorded for a GBID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := gbid.Parse(args[0])
			if err != nil {
				return err
			}

			s, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			r, err := s.LookupVariant(id)
			if err != nil {
				return err
			}
			if r == nil {
				return fmt.Errorf("GBID %s is not in the index", id)
			}
			fmt.Printf("%s:%d:%s:%s\n", r.Chrom, r.Pos, r.Ref, r.Alt)
			return nil
		},
	}
}

func newStoreAddTranscriptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add-transcript <accession>",
		Short: "Encode an accession and record it in the index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := transcriptid.Encode(args[0])
			if err != nil {
				return err
			}

			s, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.WriteTranscripts([]duckdb.TranscriptRecord{{
				ID: id, Accession: args[0],
			}}); err != nil {
				return err
			}
			fmt.Println(uint64(id))
			return nil
		},
	}
}

func newStoreLookupTranscriptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup-transcript <id>",
		Short: "Look up the accession recorded for a transcript id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			packed, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid transcript id %q", args[0])
			}

			s, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			accession, ok, err := s.LookupTranscript(transcriptid.ID(packed))
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("transcript id %d is not in the index", packed)
			}
			fmt.Println(accession)
			return nil
		},
	}
}
