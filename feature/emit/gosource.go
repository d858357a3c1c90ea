package emit

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"strconv"
	"strings"
	"text/template"

	"currency-registry/core/reconcile"
)

type genRecord struct {
	Ident string
	reconcile.Record
}

type genKey struct {
	Key   string
	Ident string
}

type genCountry struct {
	Country string
	Idents  []string
}

type sourceData struct {
	Package        string
	Records        []genRecord
	Numeric        []genKey
	Countries      []genCountry
	Codes          []string
	Names          []string
	ActiveCodes    []string
	FundsCodes     []string
	HistoricCodes  []string
	Numerics       []int
	NumericStrings []string
}

// GenerateGo renders the registry as a gofmt'd Go source file declaring one
// Currency var per code plus the lookup maps and code lists.
func GenerateGo(reg *reconcile.Registry, pkg string) ([]byte, error) {
	if !token.IsIdentifier(pkg) {
		return nil, fmt.Errorf("invalid package name %q", pkg)
	}

	data := sourceData{
		Package:        pkg,
		Codes:          reg.Codes(),
		Names:          reg.Names(),
		ActiveCodes:    reg.ActiveCodes(),
		FundsCodes:     reg.FundsCodes(),
		HistoricCodes:  reg.HistoricCodes(),
		Numerics:       reg.Numerics(),
		NumericStrings: reg.NumericStrings(),
	}

	idents := make(map[string]string, reg.Len())
	for _, rec := range reg.All() {
		id := identFor(rec.Code)
		idents[rec.Code] = id
		data.Records = append(data.Records, genRecord{Ident: id, Record: rec})
	}

	numeric := reg.NumericKeys()
	for _, key := range data.NumericStrings {
		data.Numeric = append(data.Numeric, genKey{Key: key, Ident: idents[numeric[key]]})
	}

	countries := reg.CountryKeys()
	for _, country := range reg.Countries() {
		entry := genCountry{Country: country}
		for _, code := range countries[country] {
			entry.Idents = append(entry.Idents, idents[code])
		}
		data.Countries = append(data.Countries, entry)
	}

	var buf bytes.Buffer
	if err := sourceTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w", err)
	}
	return formatted, nil
}

func identFor(code string) string {
	if token.IsIdentifier(code) && token.IsExported(code) {
		return code
	}
	return "Currency" + strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, code)
}

// nameLiteral quotes a registry name for Go source. Registry names carry
// escaped double quotes, which are unescaped first so the literal's value is
// the display name.
func nameLiteral(name string) string {
	return strconv.Quote(strings.ReplaceAll(name, `\"`, `"`))
}

func nameSlice(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = nameLiteral(s)
	}
	return "[]string{" + strings.Join(quoted, ", ") + "}"
}

func stringSlice(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = strconv.Quote(s)
	}
	return "[]string{" + strings.Join(quoted, ", ") + "}"
}

func intSlice(items []int) string {
	parts := make([]string, len(items))
	for i, n := range items {
		parts[i] = strconv.Itoa(n)
	}
	return "[]int{" + strings.Join(parts, ", ") + "}"
}

func refSlice(idents []string) string {
	parts := make([]string, len(idents))
	for i, id := range idents {
		parts[i] = "&" + id
	}
	return "[]*Currency{" + strings.Join(parts, ", ") + "}"
}

var sourceTemplate = template.Must(template.New("currencies").Funcs(template.FuncMap{
	"strings": stringSlice,
	"name":    nameLiteral,
	"names":   nameSlice,
	"ints":    intSlice,
	"refs":    refSlice,
}).Parse(`// Code generated by currency-registry build. DO NOT EDIT.

package {{.Package}}

// Currency is an ISO 4217 currency. Numeric and MinorUnit are -1 when absent.
type Currency struct {
	Code      string
	Name      string
	Numeric   int
	MinorUnit int
	Category  string
	Countries []string
}

var (
{{- range .Records}}
	{{.Ident}} = Currency{Code: {{printf "%q" .Code}}, Name: {{name .Name}}, Numeric: {{.Numeric}}, MinorUnit: {{.MinorUnit}}, Category: {{printf "%q" .Category}}, Countries: {{strings .Countries}}}
{{- end}}
)

// ByCode indexes every currency by alphabetic code.
var ByCode = map[string]*Currency{
{{- range .Records}}
	{{printf "%q" .Code}}: &{{.Ident}},
{{- end}}
}

// ByNumeric indexes currencies by zero-padded numeric code.
var ByNumeric = map[string]*Currency{
{{- range .Numeric}}
	{{printf "%q" .Key}}: &{{.Ident}},
{{- end}}
}

// ByCountry lists the currencies of each ISO 3166 alpha-3 country.
var ByCountry = map[string][]*Currency{
{{- range .Countries}}
	{{printf "%q" .Country}}: {{refs .Idents}},
{{- end}}
}

var (
	AllCodes          = {{strings .Codes}}
	AllNames          = {{names .Names}}
	AllActiveCodes    = {{strings .ActiveCodes}}
	AllFundsCodes     = {{strings .FundsCodes}}
	AllHistoricCodes  = {{strings .HistoricCodes}}
	AllNumeric        = {{ints .Numerics}}
	AllNumericStrings = {{strings .NumericStrings}}
)
`))
