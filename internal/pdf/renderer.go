package pdf

import (
	"errors"
	"fmt"
	"strings"

	wkhtmltopdf "github.com/SebastiaanKlippert/go-wkhtmltopdf"
)

// Renderer converte o HTML do relatório em bytes de PDF.
type Renderer interface {
	Enabled() bool
	Render(htmlContent string) ([]byte, error)
}

// wkhtmlRenderer usa o binário wkhtmltopdf. Trabalha inteiramente em
// memória: nenhum arquivo temporário fica para trás em nenhum caminho.
type wkhtmlRenderer struct{}

func NewWkhtmlRenderer() Renderer {
	return &wkhtmlRenderer{}
}

func (r *wkhtmlRenderer) Enabled() bool { return true }

func (r *wkhtmlRenderer) Render(htmlContent string) ([]byte, error) {
	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("wkhtmltopdf indisponível: %w", err)
	}

	page := wkhtmltopdf.NewPageReader(strings.NewReader(htmlContent))
	pdfg.AddPage(page)
	pdfg.Dpi.Set(96)
	pdfg.PageSize.Set(wkhtmltopdf.PageSizeA4)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("gerar pdf: %w", err)
	}
	return pdfg.Bytes(), nil
}

type disabledRenderer struct {
	reason string
}

// NewDisabledRenderer devolve um Renderer inerte para quando a conversão
// de PDF não está configurada.
func NewDisabledRenderer(reason string) Renderer {
	return &disabledRenderer{reason: reason}
}

func (r *disabledRenderer) Enabled() bool { return false }

func (r *disabledRenderer) Render(string) ([]byte, error) {
	if r.reason == "" {
		return nil, errors.New("pdf renderer disabled")
	}
	return nil, errors.New(r.reason)
}
