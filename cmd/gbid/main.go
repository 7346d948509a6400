// Package main provides the gbid command-line tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/genebe/gbid/internal/gbid"
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var verbose bool

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gbid",
		Short: "Encode and decode GeneBe genomic identifiers",
		Long: `gbid packs genomic variants and transcript accessions into fixed-width
integers (GBIDs) and turns them back into canonical strings.`,
		Version:      fmt.Sprintf("%s (%s) built %s", version, commit, date),
		SilenceUsage: true,
	}

	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable diagnostic logging")
	cobra.OnInitialize(initConfig)

	root.AddCommand(newEncodeCmd())
	root.AddCommand(newEncodeSPDICmd())
	root.AddCommand(newDecodeCmd())
	root.AddCommand(newPositionCmd())
	root.AddCommand(newTranscriptCmd())
	root.AddCommand(newStoreCmd())
	root.AddCommand(newConfigCmd())

	return root
}

func initConfig() {
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigName(".gbid")
		viper.SetConfigType("yaml")
	}
	viper.SetEnvPrefix("GBID")
	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}

// newLogger returns a development logger when --verbose is set, a nop
// logger otherwise.
func newLogger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return l
}

// newCodec builds the variant codec shared by the commands.
func newCodec() *gbid.Codec {
	c := gbid.NewCodec()
	c.SetLogger(newLogger())
	return c
}
