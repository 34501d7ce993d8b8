package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/shopspring/decimal"

	"github.com/fin-tools/report-atlas/pkg/models/domain"
)

// Reporter renders a filtered view to the console in a formatted text form
type Reporter struct {
	writer io.Writer
}

// NewReporter creates a new console reporter
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (c *Reporter) Handle(view *domain.FilteredView) error {
	funcMap := template.FuncMap{
		"money": func(d decimal.Decimal) string {
			return d.StringFixed(2)
		},
		"bar": func(amount, total decimal.Decimal) string {
			if total.IsZero() {
				return ""
			}
			width, _ := amount.Div(total).Mul(decimal.NewFromInt(40)).Float64()
			if width < 0 {
				width = 0
			}
			return strings.Repeat("#", int(width))
		},
	}

	tmpl := `
Region: {{if .Selection.Region}}{{.Selection.Region}}{{else}}(any){{end}}
Period: {{.Selection.Period}}{{if .Selection.KBK}}
KBK: {{.Selection.KBK}}{{end}}

Files: {{len .Files}}
Rows: {{len .Rows}}
Total: {{money .Total}}
Unique taxpayers: {{.UniqueTaxpayers}}

=== Top taxpayers ({{printf "%.1f" .Top10Share}}% of total) ===
{{range .Top10}}
- {{.TaxpayerID}}: {{money .Amount}}
{{- end}}

=== Monthly breakdown ===
{{- $total := .Total}}
{{range .Months}}
{{printf "%-9s" .Label}} {{money .Amount}} {{bar .Amount $total}}
{{- end}}
`
	t, err := template.New("view").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, view)
}
