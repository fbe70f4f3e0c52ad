package webhook

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"ai-hunter/internal/domain"
	"ai-hunter/internal/pdf"
)

// DeliveryPayload é o corpo enviado ao webhook de notificação. Os campos do
// formulário saem com os mesmos aliases públicos da entrada.
type DeliveryPayload struct {
	FormData    domain.LeadProfile `json:"form_data"`
	HTMLContent string             `json:"html_content"`
	PDFData     *PDFData           `json:"pdf_data,omitempty"`
	Metadata    Metadata           `json:"metadata"`
}

type PDFData struct {
	Filename    string `json:"filename"`
	Content     string `json:"content"` // base64
	ContentType string `json:"content_type"`
}

type Metadata struct {
	GeneratedAt string `json:"generated_at"`
	Timestamp   string `json:"timestamp"`
	ClientName  string `json:"client_name"`
	ClientEmail string `json:"client_email"`
}

// Dispatcher entrega o relatório pronto ao endpoint externo em background.
// Toda falha é apenas logada: a entrega acontece depois da resposta HTTP e
// nunca é retentada.
type Dispatcher struct {
	url    string
	client *resty.Client
	pdf    pdf.Renderer
	logger *zap.Logger
}

func NewDispatcher(url string, pdfRenderer pdf.Renderer, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		url:    url,
		client: resty.New().SetTimeout(30 * time.Second),
		pdf:    pdfRenderer,
		logger: logger,
	}
}

// DispatchAsync agenda a entrega e retorna imediatamente. A goroutine é dona
// de cópias de tudo que precisa; nada fica preso ao ciclo de vida da
// requisição e o resultado não é aguardado.
func (d *Dispatcher) DispatchAsync(lead domain.LeadProfile, htmlContent string) {
	go d.dispatch(lead, htmlContent)
}

func (d *Dispatcher) dispatch(lead domain.LeadProfile, htmlContent string) {
	now := time.Now()
	payload := DeliveryPayload{
		FormData:    lead,
		HTMLContent: htmlContent,
		Metadata: Metadata{
			GeneratedAt: now.Format(time.RFC3339),
			Timestamp:   now.Format("20060102_150405"),
			ClientName:  lead.Name,
			ClientEmail: lead.Email,
		},
	}

	if d.pdf != nil && d.pdf.Enabled() {
		pdfBytes, err := d.pdf.Render(htmlContent)
		if err != nil {
			// Sem PDF não há entrega: a conversão estava habilitada e falhou.
			d.logger.Error("conversão para PDF falhou, entrega abortada", zap.Error(err))
			return
		}
		payload.PDFData = &PDFData{
			Filename:    fmt.Sprintf("diagnostico_%s.pdf", payload.Metadata.Timestamp),
			Content:     base64.StdEncoding.EncodeToString(pdfBytes),
			ContentType: "application/pdf",
		}
	}

	resp, err := d.client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(d.url)
	if err != nil {
		d.logger.Error("envio ao webhook falhou", zap.Error(err))
		return
	}
	if resp.IsError() {
		d.logger.Error("webhook respondeu com erro",
			zap.Int("status", resp.StatusCode()),
			zap.String("body", resp.String()),
		)
		return
	}

	d.logger.Info("relatório entregue ao webhook",
		zap.Int("status", resp.StatusCode()),
		zap.String("client_email", lead.Email),
	)
}
