package report

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	"ai-hunter/internal/domain"
)

//go:embed template.html
var templateFS embed.FS

var reportTemplate = template.Must(
	template.New("template.html").Funcs(template.FuncMap{
		// percentual inteiro de uma dimensão 0-10, para as barras do radar
		"pct": func(v float64) int { return int(v * 10) },
		"score1": func(v float64) string {
			return fmt.Sprintf("%.1f", v)
		},
	}).ParseFS(templateFS, "template.html"),
)

type templateData struct {
	domain.Report
	DataGeracao string
	AnoAtual    int
}

// HTMLRenderer renderiza o relatório com o template embutido.
type HTMLRenderer struct{}

func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{}
}

// Render devolve o HTML completo do relatório. Erro aqui é fatal para a
// requisição: sem HTML não há corpo de resposta.
func (r *HTMLRenderer) Render(rep domain.Report) (string, error) {
	now := time.Now()
	data := templateData{
		Report:      rep,
		DataGeracao: now.Format("02/01/2006"),
		AnoAtual:    now.Year(),
	}

	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executar template do relatório: %w", err)
	}
	return buf.String(), nil
}
