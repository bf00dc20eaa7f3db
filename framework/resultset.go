package framework

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

type Format int32

const (
	FormatDefault Format = iota + 1
	FormatPlain
	FormatJSON
	FormatTable
	FormatLine
)

var name2Format = map[string]Format{
	"default": FormatDefault,
	"plain":   FormatPlain,
	"json":    FormatJSON,
	"table":   FormatTable,
	"line":    FormatLine,
}

// FormatNames lists the accepted format names.
const FormatNames = "default,plain,json,table,line"

// ResultSet is the interface for command result set.
type ResultSet interface {
	PrintAs(Format) string
	Entities() any
}

// PresetResultSet implements Stringer and "memorize" output format.
type PresetResultSet struct {
	ResultSet
	format Format
}

func (rs *PresetResultSet) String() string {
	if rs.format < FormatDefault {
		return rs.PrintAs(FormatDefault)
	}
	return rs.PrintAs(rs.format)
}

func NewPresetResultSet(rs ResultSet, format Format) *PresetResultSet {
	return &PresetResultSet{
		ResultSet: rs,
		format:    format,
	}
}

// NameFormat name to format mapping tool function.
func NameFormat(name string) Format {
	f, ok := name2Format[name]
	if !ok {
		return FormatDefault
	}
	return f
}

// IsFormatName reports whether name is a known format name.
func IsFormatName(name string) bool {
	_, ok := name2Format[name]
	return ok
}

type ListResultSet[T any] struct {
	Data []T
}

func (rs *ListResultSet[T]) Entities() any {
	return rs.Data
}

func (rs *ListResultSet[T]) SetData(data []T) {
	rs.Data = data
}

func NewListResult[LRS any, P interface {
	*LRS
	SetData([]E)
}, E any](data []E) *LRS {
	var t LRS
	var p P = &t
	p.SetData(data)
	return &t
}

// Table is a header plus rows, rendered by PrintTable.
type Table struct {
	Header []string
	Rows   [][]any
}

// PrintTable renders t in format. Default and table render a go-pretty
// table, line prints one `key: value` block per row, plain joins cells with
// tabs and json emits a list of objects.
func PrintTable(t Table, format Format) string {
	switch format {
	case FormatJSON:
		objects := make([]map[string]any, 0, len(t.Rows))
		for _, row := range t.Rows {
			object := make(map[string]any, len(t.Header))
			for i, h := range t.Header {
				if i < len(row) {
					object[h] = row[i]
				}
			}
			objects = append(objects, object)
		}
		return MarshalJSON(objects)
	case FormatLine:
		sb := &strings.Builder{}
		for _, row := range t.Rows {
			for i, h := range t.Header {
				if i < len(row) {
					fmt.Fprintf(sb, "%s: %v\n", h, row[i])
				}
			}
			sb.WriteString("\n")
		}
		return sb.String()
	case FormatPlain:
		sb := &strings.Builder{}
		for _, row := range t.Rows {
			cells := make([]string, 0, len(row))
			for _, cell := range row {
				cells = append(cells, fmt.Sprint(cell))
			}
			sb.WriteString(strings.Join(cells, "\t"))
			sb.WriteString("\n")
		}
		return sb.String()
	default:
		w := table.NewWriter()
		header := make(table.Row, 0, len(t.Header))
		for _, h := range t.Header {
			header = append(header, h)
		}
		w.AppendHeader(header)
		for _, row := range t.Rows {
			w.AppendRow(table.Row(row))
		}
		if format == FormatTable {
			w.SetStyle(table.StyleLight)
		}
		return w.Render()
	}
}

// MarshalJSON is a helper function for JSON serialization.
// It returns a pretty-printed JSON string of the given value.
func MarshalJSON(v any) string {
	bs, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(bs)
}
