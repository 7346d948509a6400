package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/genebe/gbid/internal/transcriptid"
)

func newTranscriptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transcript",
		Short: "Encode and decode transcript accessions",
	}

	cmd.AddCommand(&cobra.Command{
		Use:     "encode <accession>",
		Short:   "Encode an accession string as a 64-bit id",
		Example: `  gbid transcript encode ENST00000404276.6`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := transcriptid.Encode(args[0])
			if err != nil {
				return err
			}
			fmt.Println(uint64(id))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:     "decode <id>",
		Short:   "Decode a 64-bit id back to its accession string",
		Example: `  gbid transcript decode 105978527750`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			packed, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid transcript id %q", args[0])
			}
			ident, err := transcriptid.Decode(transcriptid.ID(packed))
			if err != nil {
				return err
			}
			fmt.Println(ident)
			return nil
		},
	})

	return cmd
}
