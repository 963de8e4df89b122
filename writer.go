package sdnaddr

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

type Format string

const (
	FormatTXT  Format = "TXT"
	FormatJSON Format = "JSON"
)

// OutputFormats lists every supported output format.
var OutputFormats = []Format{FormatTXT, FormatJSON}

// ParseFormat validates a format name. Matching is case-sensitive.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatTXT, FormatJSON:
		return Format(s), nil
	}
	return "", fmt.Errorf("sdnaddr: invalid output format %q (choose from TXT, JSON)", s)
}

const outputFilePrefix = "sanctioned_addresses_"

// WriteAddresses writes records to <dir>/sanctioned_addresses_<asset>.<ext>
// for each requested format, creating dir (and missing parents) first and
// overwriting existing files. Records are written in the order given.
func WriteAddresses(records []AddressRecord, asset string, formats []Format, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("sdnaddr: create output directory %s: %w", dir, err)
	}

	base := filepath.Join(dir, outputFilePrefix+asset)

	for _, format := range formats {
		switch format {
		case FormatTXT:
			if err := writeTXT(records, base+".txt"); err != nil {
				return err
			}
		case FormatJSON:
			if err := writeJSON(records, base+".json"); err != nil {
				return err
			}
		default:
			return fmt.Errorf("sdnaddr: unknown output format %q", format)
		}
	}

	return nil
}

// writeTXT emits one "address;name" line per record. Names that contain the
// ";" separator come out quoted, same as the published lists.
func writeTXT(records []AddressRecord, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("sdnaddr: create %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	w.Comma = ';'
	for _, rec := range records {
		if err := w.Write([]string{rec.Address, rec.Name}); err != nil {
			f.Close()
			return fmt.Errorf("sdnaddr: write %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("sdnaddr: write %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("sdnaddr: close %s: %w", path, err)
	}
	return nil
}

// writeJSON emits the records as a 2-space-indented array of
// {address, name} objects. Non-ASCII characters are written literally.
func writeJSON(records []AddressRecord, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("sdnaddr: create %s: %w", path, err)
	}

	if records == nil {
		records = []AddressRecord{}
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(records); err != nil {
		f.Close()
		return fmt.Errorf("sdnaddr: write %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("sdnaddr: close %s: %w", path, err)
	}
	return nil
}
