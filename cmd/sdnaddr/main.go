package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/0xsequence/sdnaddr"
)

var (
	sdnPath    string
	formats    []string
	outputPath string
)

var rootCmd = &cobra.Command{
	Use:       "sdnaddr [asset...]",
	Short:     "Extract sanctioned digital currency addresses from the OFAC SDN list",
	Long:      "Extracts the digital currency addresses published in the OFAC advanced SDN list\nand writes per-asset address lists, with the owning party names, as TXT and/or JSON.",
	Args:      cobra.OnlyValidArgs,
	ValidArgs: sdnaddr.PossibleAssets,

	SilenceUsage:  true,
	SilenceErrors: true,

	RunE: run,
}

func init() {
	rootCmd.Flags().StringVar(&sdnPath, "sdn", "./sdn_advanced.xml", "path to sdn_advanced.xml")
	rootCmd.Flags().StringSliceVarP(&formats, "format", "f", []string{string(sdnaddr.FormatTXT)}, "output format(s): TXT, JSON")
	rootCmd.Flags().StringVar(&outputPath, "output-path", ".", "output directory")
}

func run(cmd *cobra.Command, args []string) error {
	assets := args
	if len(assets) == 0 {
		assets = sdnaddr.PossibleAssets[:1]
	}

	outputFormats := make([]sdnaddr.Format, 0, len(formats))
	for _, raw := range formats {
		format, err := sdnaddr.ParseFormat(raw)
		if err != nil {
			return err
		}
		outputFormats = append(outputFormats, format)
	}

	if _, err := os.Stat(sdnPath); err != nil {
		return fmt.Errorf("input file %s not found", sdnPath)
	}

	doc, err := sdnaddr.LoadFile(sdnPath, nil)
	if err != nil {
		return err
	}

	for _, asset := range assets {
		featureTypeID, err := doc.FeatureTypeID(asset)
		if err != nil {
			log.Warn().Err(err).Str("asset", asset).Msg("skipping asset")
			continue
		}

		records := sdnaddr.Dedupe(doc.SanctionedAddresses(featureTypeID))

		if err := sdnaddr.WriteAddresses(records, asset, outputFormats, outputPath); err != nil {
			log.Warn().Err(err).Str("asset", asset).Msg("skipping writes for asset")
			continue
		}

		log.Info().Str("asset", asset).Int("addresses", len(records)).Msg("wrote sanctioned addresses")
	}

	return nil
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("sdnaddr failed")
		os.Exit(1)
	}
}
