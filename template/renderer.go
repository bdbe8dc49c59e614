// Package template renders the report mail with html/template.
//
// Extracted text fields are escaped for their HTML context. The snippet is
// taken from the shop page and embedded verbatim as trusted markup; wire a
// freelearn.Sanitizer upstream when the page cannot be trusted.
package template

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/fwojciec/freelearn"
)

// Ensure Renderer implements freelearn.Renderer at compile time.
var _ freelearn.Renderer = (*Renderer)(nil)

var reportTmpl = template.Must(template.New("report").Parse(`
<html>
  <head>
    <style>
      table {
        border-collapse: collapse;
        width: 100%;
      }
      th, td {
        border: 1px solid #ddd;
        padding: 8px;
        text-align: left;
      }
      th {
        background-color: #f2f2f2;
      }
      tr:nth-child(even) {
        background-color: #f9f9f9;
      }
      tr:hover {
        background-color: #ddd;
      }
      .product-info__rating {
        background-color: #333;
        color: #fff;
        padding: 10px;
        border-radius: 5px;
      }
    </style>
  </head>
  <body>
    <h2><a href="{{.HeadingURL}}">Today at PacktPub Free Learning:</a></h2>
    {{.Snippet}}
    <p/>
    <table>
      <tr>
        <th>Title</th>
        <th>Author</th>
        <th>Publication Year</th>
        <th>Description</th>
        <th>Labels</th>
        <th>Publisher</th>
        <th>Formats</th>
        <th>Date</th>
        <th>Source</th>
        <th>Price</th>
      </tr>
      <tr>
        {{- range .Cells}}
        <td>{{.}}</td>
        {{- end}}
      </tr>
    </table>
    <p/>
    <textarea rows="5" cols="150">{{.Details}}</textarea>
  </body>
</html>
`))

type reportData struct {
	HeadingURL string
	Snippet    template.HTML
	Cells      []string
	Details    string
}

// Renderer renders the HTML report and the tab-separated detail line.
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render substitutes the product, labels and date into the report templates.
func (r *Renderer) Render(in freelearn.RenderInput) (*freelearn.Report, error) {
	if in.Product == nil {
		return nil, freelearn.Errorf(freelearn.EINVALID, "product required")
	}
	if in.Date.IsZero() {
		return nil, freelearn.Errorf(freelearn.EINVALID, "report date required")
	}

	cells := Cells(in.Product, in.Labels, in.Date.Format(freelearn.DateLayout))
	details := DetailsLine(cells)

	var buf bytes.Buffer
	if err := reportTmpl.Execute(&buf, reportData{
		HeadingURL: freelearn.HeadingURL,
		Snippet:    template.HTML(in.Snippet),
		Cells:      cells,
		Details:    details,
	}); err != nil {
		return nil, freelearn.Errorf(freelearn.EINTERNAL, "render report: %v", err)
	}

	return &freelearn.Report{
		HTML:    buf.String(),
		Details: details,
		Snippet: in.Snippet,
		Product: in.Product,
		Labels:  in.Labels,
		Date:    in.Date,
	}, nil
}

// Cells returns the summary table row in column order.
func Cells(p *freelearn.Product, labels, date string) []string {
	return []string{
		p.Title,
		p.Author,
		p.PublicationYear,
		p.Description,
		labels,
		freelearn.Publisher,
		freelearn.Formats,
		date,
		freelearn.Source,
		freelearn.Price,
	}
}

// DetailsLine joins cells with tabs. Tabs and line breaks inside a cell are
// replaced with spaces so the line stays one record.
func DetailsLine(cells []string) string {
	fields := make([]string, len(cells))
	for i, c := range cells {
		fields[i] = tsvReplacer.Replace(c)
	}
	return strings.Join(fields, "\t")
}

var tsvReplacer = strings.NewReplacer("\t", " ", "\r\n", " ", "\n", " ", "\r", " ")
