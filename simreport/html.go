// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simreport

import (
	"io"

	"github.com/google/safehtml/template"
)

const htmlReport = `<!DOCTYPE html>
<html>
<head><title>cache sweep {{.Pattern}}</title></head>
<body>
{{- range .Tables}}
<h2>{{.Title}}</h2>
<table class='cacheplot'>
<tr><th>program{{range .Descs}}<th>{{.}}{{end}}
<tr><th>{{range .Sizes}}<th>{{.}}{{end}}
{{range .Rows -}}
<tr><td>{{.Program}}{{range .Values}}<td>{{.}}{{end}}
{{end -}}
<tr class='geomean'><td>geomean{{range .Geomean}}<td>{{.}}{{end}}
</table>
{{- end}}
</body>
</html>
`

var htmlTemplate = template.Must(template.New("report").Parse(htmlReport))

type htmlTable struct {
	Title   string
	Descs   []string
	Sizes   []string
	Rows    []htmlRow
	Geomean []string
}

type htmlRow struct {
	Program string
	Values  []string
}

func writeHTML(w io.Writer, r *Report) error {
	data := struct {
		Pattern string
		Tables  []htmlTable
	}{Pattern: r.Pattern}

	for _, s := range r.Sections {
		for _, t := range s.complete() {
			ht := htmlTable{Title: t.Title(), Descs: t.Descs()}
			for j, b := range t.Buckets {
				ht.Sizes = append(ht.Sizes, sizeLabel(b.Desc))
				ht.Geomean = append(ht.Geomean, formatValue(Geomean(t, j)))
			}
			for i, prog := range t.Programs {
				row := htmlRow{Program: prog}
				for j := range t.Buckets {
					row.Values = append(row.Values, formatValue(t.Value(j, i)))
				}
				ht.Rows = append(ht.Rows, row)
			}
			data.Tables = append(data.Tables, ht)
		}
	}
	return htmlTemplate.Execute(w, data)
}
