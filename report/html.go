package report

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"

	"minitest/unit"
)

// htmlTemplate lays the result body out on a single line; only the document
// skeleton is indented. Names and messages pass through the usual HTML
// escaping.
const htmlTemplate = `<!DOCTYPE html>
<html>
    <head>
        <title>Unit Test Report</title>
    </head>
    <body>
        <h1>Unit Test Report &ndash; {{.Project}}</h1><hr/>        <p><b>Framework Version:</b> minitest {{.Version}}<br/>           <b>Test run completed at:</b> {{.Timestamp}}</p>
{{range .Sections}}{{if .Module}}<h2>{{.Module}}</h2>{{end}}{{range .Groups}}{{if .Name}}<h3>{{.Name}}</h3>{{end}}<table border="1"><tr><th>Nr.</th><th>Name</th><th>File</th><th>Result</th><th>Message</th></tr>{{range .Rows}}<tr><td>{{.Num}}</td><td>{{.Name}}</td><td><a href="{{.Link}}">{{.Link}}</a></td><td style="background-color: {{.Color}}">{{.Result}}</td><td>{{.Message}}</td></tr>{{end}}</table>{{end}}{{end}}        <hr/><p>{{.Stats.Total}} runs, {{.Stats.Passed}} passes, {{.Stats.Failed}} fails
</p>    </body>
</html>`

var htmlTmpl = template.Must(template.New("report").Parse(htmlTemplate))

// htmlReport is the fully resolved view model handed to the template.
type htmlReport struct {
	Project   string
	Version   string
	Timestamp string
	Sections  []htmlSection
	Stats     unit.Stats
}

// htmlSection is one top-level entity: modules carry a heading and one
// table per group, groups carry a heading and one table, bare cases carry a
// single-row table without a heading.
type htmlSection struct {
	Module string
	Groups []htmlGroup
}

type htmlGroup struct {
	Name string
	Rows []htmlRow
}

type htmlRow struct {
	Num     int
	Name    string
	Link    string
	Color   string
	Result  string
	Message string
}

// WriteHTML renders the report document for reg to w.
func WriteHTML(w io.Writer, reg *unit.Registry, timestamp string) error {
	return htmlTmpl.Execute(w, buildHTMLReport(reg, timestamp))
}

// Generate renders the report document into a file at path, creating parent
// directories as needed.
func Generate(reg *unit.Registry, timestamp, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()
	if err := WriteHTML(f, reg, timestamp); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}

func buildHTMLReport(reg *unit.Registry, timestamp string) *htmlReport {
	rep := &htmlReport{
		Project:   reg.Project(),
		Version:   unit.Version,
		Timestamp: timestamp,
		Stats:     reg.Stats(),
	}

	// Row numbering is continuous across the whole document.
	num := 0
	row := func(c *unit.Case) htmlRow {
		num++
		r := htmlRow{Num: num, Name: c.Name()}
		switch c.Result() {
		case unit.Pass:
			r.Color, r.Result = "lime", "pass"
			r.Link = lineLink(c.Location())
		case unit.Fail:
			r.Color, r.Result = "red", "fail"
			r.Link = lineLink(c.MessageLocation())
			r.Message = c.Message()
		default:
			r.Color, r.Result = "silver", "invalid"
			r.Link = lineLink(c.Location())
		}
		return r
	}

	for _, e := range reg.Items() {
		var sec htmlSection
		switch v := e.(type) {
		case *unit.Case:
			sec.Groups = []htmlGroup{{Rows: []htmlRow{row(v)}}}
		case *unit.Group:
			sec.Groups = []htmlGroup{{Name: v.Name(), Rows: groupRows(v, row)}}
		case *unit.Module:
			sec.Module = v.Name()
			for _, g := range v.Groups() {
				sec.Groups = append(sec.Groups, htmlGroup{Name: g.Name(), Rows: groupRows(g, row)})
			}
		}
		rep.Sections = append(rep.Sections, sec)
	}
	return rep
}

func groupRows(g *unit.Group, row func(*unit.Case) htmlRow) []htmlRow {
	var rows []htmlRow
	for _, c := range g.Cases() {
		rows = append(rows, row(c))
	}
	return rows
}

// lineLink builds the file#Lline fragment understood by code hosters and
// most editors.
func lineLink(loc unit.Location) string {
	return fmt.Sprintf("%s#L%d", loc.File, loc.Line)
}
