package terminal

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/de-tools/growth-scorecard/pkg/models/domain"
)

// Reporter outputs reports to the console in a formatted text form
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

const plainTemplate = `
{{.Title}} ({{.Period.Duration}} days)
Period: {{.Period.Start.Format "2006-01-02"}} to {{.Period.End.Format "2006-01-02"}}
{{.Headline}}
{{range .Sections}}
=== {{.Title}} ===
{{range $key, $value := .Summary}}{{$key}}: {{$value}}
{{end}}{{range .Details}}- {{.Name}}: {{.Value}}{{if .Unit}} ({{.Unit}}){{end}}
{{if .Description}}  {{.Description}}
{{end}}{{end}}{{end}}`

var plain = template.Must(template.New("report").Parse(plainTemplate))

func (c *Reporter) Handle(report *domain.Report) error {
	if err := plain.Execute(c.writer, report); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}
