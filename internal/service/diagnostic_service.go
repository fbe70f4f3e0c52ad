package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"ai-hunter/internal/domain"
	"ai-hunter/internal/report"
	"ai-hunter/internal/repository"
)

// ReportRenderer transforma o relatório agregado em HTML.
type ReportRenderer interface {
	Render(rep domain.Report) (string, error)
}

// Dispatcher agenda a entrega do relatório sem bloquear a resposta.
type Dispatcher interface {
	DispatchAsync(lead domain.LeadProfile, htmlContent string)
}

// DiagnosticService executa o fluxo completo: scoring determinístico,
// geração com fallback, montagem, persistência best-effort, render e
// despacho em background.
type DiagnosticService struct {
	recommender *RecommendationService
	leads       repository.LeadRepository // nil = executando sem banco
	renderer    ReportRenderer
	dispatcher  Dispatcher
	logger      *zap.Logger
}

func NewDiagnosticService(
	recommender *RecommendationService,
	leads repository.LeadRepository,
	renderer ReportRenderer,
	dispatcher Dispatcher,
	logger *zap.Logger,
) *DiagnosticService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DiagnosticService{
		recommender: recommender,
		leads:       leads,
		renderer:    renderer,
		dispatcher:  dispatcher,
		logger:      logger,
	}
}

// Run devolve o HTML do relatório. Falha de persistência nunca muda a
// resposta; só a renderização do HTML é fatal.
func (s *DiagnosticService) Run(ctx context.Context, lead domain.LeadProfile) (string, error) {
	scores, finalScore := CalculateScores(lead)
	s.logger.Info("scores calculados",
		zap.String("email", lead.Email),
		zap.Float64("score_final", finalScore),
	)

	recs := s.recommender.Generate(ctx, lead)
	rep := report.Assemble(lead.Name, scores, finalScore, recs.Introduction, recs.Opportunities)

	if s.leads != nil {
		if id, err := s.leads.Save(ctx, lead, rep); err != nil {
			s.logger.Warn("falha ao salvar lead no banco", zap.Error(err))
		} else {
			s.logger.Info("lead salvo", zap.String("id", id))
		}
	}

	html, err := s.renderer.Render(rep)
	if err != nil {
		return "", fmt.Errorf("renderizar relatório: %w", err)
	}

	if s.dispatcher != nil {
		s.dispatcher.DispatchAsync(lead, html)
	}
	return html, nil
}
