package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/genebe/gbid/internal/gbid"
	"github.com/genebe/gbid/internal/genome"
)

func newEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <chrom> <pos> <ref> <alt>",
		Short: "Encode a VCF-style variant (1-based position) as a GBID",
		Example: `  gbid encode 1 16044378 C CACACACACAT
  gbid encode chr12 25245350 C A`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid position %q", args[1])
			}
			id, err := newCodec().EncodeVCF(args[0], pos, args[2], args[3])
			if err != nil {
				return err
			}
			fmt.Println(id)
			return nil
		},
	}
}

func newEncodeSPDICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode-spdi <chrom> <pos> <del-length> [insertion]",
		Short: "Encode an SPDI variant (0-based anchor) as a GBID",
		Example: `  gbid encode-spdi 1 16044377 0 ACACACACAT
  gbid encode-spdi 1 16044377 3          # pure deletion`,
		Args: cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid position %q", args[1])
			}
			delLen, err := strconv.ParseInt(args[2], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid deletion length %q", args[2])
			}
			var ins string
			if len(args) == 4 {
				ins = args[3]
			}
			id, err := newCodec().EncodeSPDI(args[0], pos, delLen, ins)
			if err != nil {
				return err
			}
			fmt.Println(id)
			return nil
		},
	}
}

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <gbid>",
		Short: "Decode a direct-path GBID back to its SPDI form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := gbid.Parse(args[0])
			if err != nil {
				return err
			}
			v, ok := gbid.Decode(id)
			if !ok {
				return fmt.Errorf("GBID %s is hash-encoded and cannot be decoded", id)
			}
			fmt.Printf("%s:%d:%d:%s\n", v.Chrom, v.Position, v.DelLength, v.Ins)
			return nil
		},
	}
}

func newPositionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "position <chrom> <pos>",
		Short: "Map a 1-based chromosome position to the linear genome coordinate",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid position %q", args[1])
			}
			enc := genome.NewPositionEncoder()
			enc.SetLogger(newLogger())
			gp := enc.Encode(args[0], pos)
			switch gp {
			case genome.ChrNotSupported:
				return fmt.Errorf("chromosome %q is not supported", args[0])
			case genome.WrongChrPosition:
				return fmt.Errorf("position %d is outside chromosome %s", pos, args[0])
			}
			fmt.Println(gp)
			return nil
		},
	}
}
