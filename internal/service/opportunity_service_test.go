package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"ai-hunter/internal/domain"
	"ai-hunter/internal/llm"
)

const validOpportunitiesJSON = `{
  "opportunities": [
    {"titulo": "Automação de Propostas", "descricao": "Geração automática de propostas comerciais.", "roi": "Redução de 40% no ciclo de venda", "prioridade": "alta", "case": "Case A"},
    {"titulo": "Chatbot de Qualificação", "descricao": "Triagem de leads 24/7.", "roi": "60% das dúvidas sem humano", "prioridade": "media", "case": "Case B"},
    {"titulo": "Previsão de Demanda", "descricao": "Modelos preditivos sobre o histórico de pedidos.", "roi": "Queda de 20% em estoque parado", "prioridade": "media", "case": "Case C"}
  ]
}`

// routedLLM responde de acordo com a subtarefa: o prompt de oportunidades
// carrega o nome do agente, o de introdução não.
type routedLLM struct {
	opportunities string
	intro         string
	oppErr        error
	introErr      error
}

func (m *routedLLM) Generate(_ context.Context, prompt string) (string, error) {
	if strings.Contains(prompt, "OpportunityTracker") {
		return m.opportunities, m.oppErr
	}
	return m.intro, m.introErr
}

func TestGenerateHappyPath(t *testing.T) {
	client := &routedLLM{
		opportunities: validOpportunitiesJSON,
		intro:         "O setor vive um momento único de adoção de IA.",
	}
	svc := NewRecommendationService(client, zap.NewNop())

	recs := svc.Generate(context.Background(), perfectLead())

	if len(recs.Opportunities) != 3 {
		t.Fatalf("expected 3 opportunities, got %d", len(recs.Opportunities))
	}
	if recs.Opportunities[0].Titulo != "Automação de Propostas" {
		t.Fatalf("unexpected first opportunity: %+v", recs.Opportunities[0])
	}
	if recs.Introduction != "O setor vive um momento único de adoção de IA." {
		t.Fatalf("unexpected introduction: %q", recs.Introduction)
	}
}

func TestGenerateOpportunitiesFencedJSON(t *testing.T) {
	client := &routedLLM{
		opportunities: "```json\n" + validOpportunitiesJSON + "\n```",
		intro:         "introdução",
	}
	svc := NewRecommendationService(client, zap.NewNop())

	recs := svc.Generate(context.Background(), perfectLead())

	if len(recs.Opportunities) != 3 || recs.Opportunities[2].Titulo != "Previsão de Demanda" {
		t.Fatalf("fenced JSON not parsed: %+v", recs.Opportunities)
	}
}

func TestGenerateFallbackOnClientError(t *testing.T) {
	client := &llm.MockClient{Err: errors.New("timeout")}
	svc := NewRecommendationService(client, zap.NewNop())

	lead := perfectLead()
	lead.CriticalArea = "Vendas/Marketing"
	recs := svc.Generate(context.Background(), lead)

	if len(recs.Opportunities) != 3 {
		t.Fatalf("fallback must keep 3 opportunities, got %d", len(recs.Opportunities))
	}
	for i, opp := range recs.Opportunities {
		if opp.Titulo == "" || opp.Descricao == "" {
			t.Fatalf("fallback opportunity %d incomplete: %+v", i+1, opp)
		}
	}
	if !strings.Contains(recs.Opportunities[0].Descricao, "Vendas/Marketing") {
		t.Fatalf("fallback must anchor on critical area, got %q", recs.Opportunities[0].Descricao)
	}
	if !strings.Contains(recs.Introduction, lead.Sector) {
		t.Fatalf("fallback intro must mention the sector, got %q", recs.Introduction)
	}
}

func TestGenerateOpportunitiesFallbackOnBadShape(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"resposta vazia", ""},
		{"prosa sem json", "Desculpe, não consigo responder em JSON."},
		{"json malformado", `{"opportunities": [`},
		{"quantidade errada", `{"opportunities": [{"titulo": "Só uma", "descricao": "x"}]}`},
		{"titulo vazio", `{"opportunities": [{"titulo": "", "descricao": "a"}, {"titulo": "b", "descricao": "b"}, {"titulo": "c", "descricao": "c"}]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := &routedLLM{opportunities: tc.raw, intro: "introdução"}
			svc := NewRecommendationService(client, zap.NewNop())

			recs := svc.Generate(context.Background(), perfectLead())
			if len(recs.Opportunities) != 3 {
				t.Fatalf("expected fallback with 3 opportunities, got %d", len(recs.Opportunities))
			}
			if recs.Opportunities[0].Titulo != "Automação Inteligente de Processos" {
				t.Fatalf("expected fallback content, got %+v", recs.Opportunities[0])
			}
		})
	}
}

func TestGenerateIntroductionFallback(t *testing.T) {
	lead := perfectLead()

	t.Run("erro do cliente", func(t *testing.T) {
		client := &routedLLM{opportunities: validOpportunitiesJSON, introErr: errors.New("boom")}
		svc := NewRecommendationService(client, zap.NewNop())

		recs := svc.Generate(context.Background(), lead)
		if !strings.Contains(recs.Introduction, lead.Sector) || !strings.Contains(recs.Introduction, lead.MainPain) {
			t.Fatalf("fallback intro must mention sector and main pain: %q", recs.Introduction)
		}
	})

	t.Run("resposta vazia", func(t *testing.T) {
		client := &routedLLM{opportunities: validOpportunitiesJSON, intro: "   "}
		svc := NewRecommendationService(client, zap.NewNop())

		recs := svc.Generate(context.Background(), lead)
		if !strings.Contains(recs.Introduction, lead.CompanySize) {
			t.Fatalf("fallback intro must mention company size: %q", recs.Introduction)
		}
	})
}

func TestGenerateWithoutClient(t *testing.T) {
	svc := NewRecommendationService(nil, zap.NewNop())

	lead := perfectLead()
	recs := svc.Generate(context.Background(), lead)

	if len(recs.Opportunities) != 3 {
		t.Fatalf("expected 3 fallback opportunities, got %d", len(recs.Opportunities))
	}
	if recs.Introduction == "" {
		t.Fatal("expected fallback introduction, got empty string")
	}
}

func TestFallbackOpportunitiesAnchorChain(t *testing.T) {
	lead := domain.LeadProfile{CriticalArea: "", MainPain: "Custos operacionais muito altos"}
	opps := fallbackOpportunities(lead)
	if !strings.Contains(opps[0].Descricao, lead.MainPain) {
		t.Fatalf("expected main pain as anchor, got %q", opps[0].Descricao)
	}

	opps = fallbackOpportunities(domain.LeadProfile{})
	if !strings.Contains(opps[0].Descricao, "sua operação") {
		t.Fatalf("expected generic anchor, got %q", opps[0].Descricao)
	}
}
