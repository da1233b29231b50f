package reshape

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"projreorg/pkg/reshape/models"
)

// encodingsByName maps supported encoding names to their decoders.
// cp1252 is the default because the legacy form exports were produced
// by regional Windows installs.
var encodingsByName = map[string]encoding.Encoding{
	"cp1252":       charmap.Windows1252,
	"windows-1252": charmap.Windows1252,
	"latin1":       charmap.ISO8859_1,
	"iso-8859-1":   charmap.ISO8859_1,
	"utf-8":        unicode.UTF8,
	"utf8":         unicode.UTF8,
	"utf-8-sig":    unicode.UTF8BOM,
}

// SupportedEncodings returns the accepted encoding names, sorted.
func SupportedEncodings() []string {
	names := make([]string, 0, len(encodingsByName))
	for name := range encodingsByName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookupEncoding(name string) (encoding.Encoding, error) {
	enc, ok := encodingsByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w %q (supported: %s)",
			ErrUnknownEncoding, name, strings.Join(SupportedEncodings(), ", "))
	}
	return enc, nil
}

// ReadTable reads a delimited file into a Table, decoding it from the
// named encoding. The first row is taken as the header row.
func ReadTable(path, encodingName string) (*models.Table, error) {
	enc, err := lookupEncoding(encodingName)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(transform.NewReader(f, enc.NewDecoder()))
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot parse %s as %s-encoded CSV: %w (retry with another --encoding value)",
			path, encodingName, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("input file %s is empty", path)
	}

	return &models.Table{
		Headers: records[0],
		Rows:    records[1:],
	}, nil
}
