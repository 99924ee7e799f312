package roster

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/samber/lo"
)

// bom is the byte-order mark spreadsheet tools prepend to UTF-8 CSV files.
const bom = '\uFEFF'

var separators = regexp.MustCompile(`[\n,]+`)

// ParseNames splits text on newlines and commas, trims each token and drops empties.
func ParseNames(text string) []string {
	return clean(separators.Split(text, -1))
}

// ParseCSV flattens every cell of every record into a single slice of names.
//
// Records that fail to parse are skipped. Only read failures from r are returned.
func ParseCSV(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)
	if rn, _, err := br.ReadRune(); err == nil && rn != bom {
		_ = br.UnreadRune()
	}

	reader := csv.NewReader(br)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	var records [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				continue
			}
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}
		records = append(records, record)
	}

	return clean(lo.Flatten(records)), nil
}

func clean(tokens []string) []string {
	return lo.FilterMap(tokens, func(s string, _ int) (string, bool) {
		s = strings.TrimSpace(s)
		return s, s != ""
	})
}
