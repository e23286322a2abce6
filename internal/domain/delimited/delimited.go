// Package delimited tokenizes pasted spreadsheet text into rows of fields.
//
// The format is RFC4180-like but deliberately lenient: commas and tabs are
// both treated as separators (decided per character, so a single paste may
// mix them), fields may be double-quoted with "" as the escaped quote, and
// malformed quoting never raises an error since the input is hand-pasted
// from Excel or Sheets.
package delimited

import "strings"

// Parse splits text into rows of trimmed fields.
//
// A leading byte-order-mark is stripped and \r\n is normalized to \n before
// scanning. Rows whose every field trims to the empty string are dropped, so
// blank lines in the paste never surface as malformed short rows. An
// unterminated quote is absorbed at end of input.
func Parse(text string) [][]string {
	clean := strings.TrimPrefix(text, "\uFEFF")
	clean = strings.ReplaceAll(clean, "\r\n", "\n")

	var rows [][]string
	var row []string
	var field strings.Builder
	inQuotes := false

	endField := func() {
		row = append(row, strings.TrimSpace(field.String()))
		field.Reset()
	}
	endRow := func() {
		endField()
		for _, f := range row {
			if f != "" {
				rows = append(rows, row)
				break
			}
		}
		row = nil
	}

	runes := []rune(clean)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(runes) && runes[i+1] == '"' {
				field.WriteRune('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case (c == ',' || c == '\t') && !inQuotes:
			endField()
		case c == '\n' && !inQuotes:
			endRow()
		default:
			field.WriteRune(c)
		}
	}
	// Trailing row without a final newline.
	if field.Len() > 0 || len(row) > 0 {
		endRow()
	}
	return rows
}
