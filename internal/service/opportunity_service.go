package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"ai-hunter/internal/domain"
	"ai-hunter/internal/llm"
)

// opportunityCount é o contrato de forma: todo relatório carrega exatamente
// três oportunidades, geradas ou de fallback.
const opportunityCount = 3

// Recommendations junta a saída das duas gerações independentes.
type Recommendations struct {
	Opportunities []domain.Opportunity
	Introduction  string
}

// RecommendationService orquestra as duas gerações de texto com fallback
// fixo. Nenhum caminho devolve erro: falha de geração vira substituto
// determinístico, nunca é retentada.
type RecommendationService struct {
	llmClient llm.LLMClient
	logger    *zap.Logger
}

func NewRecommendationService(llmClient llm.LLMClient, logger *zap.Logger) *RecommendationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecommendationService{llmClient: llmClient, logger: logger}
}

// Generate roda as duas subtarefas em paralelo e espera ambas; não há
// dependência de ordem entre elas.
func (s *RecommendationService) Generate(ctx context.Context, lead domain.LeadProfile) Recommendations {
	var (
		wg    sync.WaitGroup
		opps  []domain.Opportunity
		intro string
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		opps = s.generateOpportunities(ctx, lead)
	}()
	go func() {
		defer wg.Done()
		intro = s.generateIntroduction(ctx, lead)
	}()
	wg.Wait()

	return Recommendations{Opportunities: opps, Introduction: intro}
}

func (s *RecommendationService) generateOpportunities(ctx context.Context, lead domain.LeadProfile) []domain.Opportunity {
	if s.llmClient == nil {
		return fallbackOpportunities(lead)
	}

	raw, err := s.llmClient.Generate(ctx, buildOpportunityPrompt(lead))
	if err != nil {
		s.logger.Warn("geração de oportunidades falhou, usando fallback", zap.Error(err))
		return fallbackOpportunities(lead)
	}

	opps, err := parseOpportunities(raw)
	if err != nil {
		s.logger.Warn("resposta de oportunidades inválida, usando fallback", zap.Error(err))
		return fallbackOpportunities(lead)
	}
	return opps
}

func (s *RecommendationService) generateIntroduction(ctx context.Context, lead domain.LeadProfile) string {
	if s.llmClient == nil {
		return fallbackIntroduction(lead)
	}

	raw, err := s.llmClient.Generate(ctx, buildIntroPrompt(lead))
	if err != nil {
		s.logger.Warn("geração da introdução falhou, usando fallback", zap.Error(err))
		return fallbackIntroduction(lead)
	}

	intro := strings.TrimSpace(cleanLLMResponse(raw))
	if intro == "" {
		s.logger.Warn("introdução vazia, usando fallback")
		return fallbackIntroduction(lead)
	}
	return intro
}

// parseOpportunities valida o contrato de forma: objeto JSON com exatamente
// três oportunidades, todas com título e descrição preenchidos.
func parseOpportunities(raw string) ([]domain.Opportunity, error) {
	obj := extractJSONObject(cleanLLMResponse(raw))
	if obj == "" {
		return nil, errors.New("nenhum objeto JSON na resposta")
	}

	var out struct {
		Opportunities []domain.Opportunity `json:"opportunities"`
	}
	if err := json.Unmarshal([]byte(obj), &out); err != nil {
		return nil, fmt.Errorf("parse oportunidades: %w", err)
	}

	if len(out.Opportunities) != opportunityCount {
		return nil, fmt.Errorf("esperava %d oportunidades, veio %d", opportunityCount, len(out.Opportunities))
	}
	for i, opp := range out.Opportunities {
		if strings.TrimSpace(opp.Titulo) == "" || strings.TrimSpace(opp.Descricao) == "" {
			return nil, fmt.Errorf("oportunidade %d sem título ou descrição", i+1)
		}
	}
	return out.Opportunities, nil
}

// fallbackOpportunities é o substituto terminal quando a geração falha:
// três oportunidades pré-escritas ancoradas na área crítica do lead.
// Não toca rede e passa no mesmo contrato de forma do caminho feliz.
func fallbackOpportunities(lead domain.LeadProfile) []domain.Opportunity {
	area := strings.TrimSpace(lead.CriticalArea)
	if area == "" {
		area = strings.TrimSpace(lead.MainPain)
	}
	if area == "" {
		area = "sua operação"
	}

	return []domain.Opportunity{
		{
			Titulo:     "Automação Inteligente de Processos",
			Descricao:  fmt.Sprintf("Mapeamento e automação dos fluxos de trabalho ligados a %s, eliminando tarefas manuais e liberando a equipe para atividades de maior valor.", area),
			ROI:        "Redução de 30-50% no tempo gasto em tarefas operacionais",
			Prioridade: "alta",
			Case:       "Grupo Exame aumentou em 40% a produtividade editorial com pipelines de IA.",
		},
		{
			Titulo:     "Análise de Dados com IA para Decisão",
			Descricao:  fmt.Sprintf("Consolidação dos dados já existentes na empresa em painéis com insights automáticos, trazendo previsibilidade para as decisões que hoje dependem de %s.", area),
			ROI:        "Decisões 2-3x mais rápidas com base em dados",
			Prioridade: "media",
			Case:       "Base39 reduziu em 96% o custo de análise de crédito com IA generativa.",
		},
		{
			Titulo:     "Assistente Virtual para Atendimento e Vendas",
			Descricao:  "Implantação de um assistente de IA para responder dúvidas frequentes e qualificar contatos 24/7, sem aumentar o time.",
			ROI:        "Atendimento de 60-80% das solicitações sem intervenção humana",
			Prioridade: "media",
			Case:       "A Loggi resolve 80% das solicitações com o chatbot LIA.",
		},
	}
}

// fallbackIntroduction interpola setor, porte e dor principal em prosa fixa.
func fallbackIntroduction(lead domain.LeadProfile) string {
	return fmt.Sprintf(
		"O setor de %s vive um momento decisivo na adoção de inteligência artificial no Brasil. "+
			"Empresas de porte %s que enfrentam desafios como %s já colhem ganhos concretos de produtividade "+
			"ao aplicar IA de forma dirigida, começando pelos gargalos de maior impacto. "+
			"O diagnóstico a seguir mostra onde estão as oportunidades mais promissoras para a sua operação.",
		lead.Sector, lead.CompanySize, lead.MainPain,
	)
}
