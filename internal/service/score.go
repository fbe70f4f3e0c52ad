package service

import (
	"math"
	"strings"

	"ai-hunter/internal/domain"
)

// Categorias do questionário pontuado.
const (
	CategorySector       = "sector"
	CategorySize         = "size"
	CategoryRole         = "role"
	CategoryPain         = "pain"
	CategoryQuantifyPain = "quantifyPain"
	CategoryMaturity     = "maturity"
	CategoryInvestment   = "investment"
	CategoryUrgency      = "urgency"
)

// scoreEntry liga um trecho de resposta à sua pontuação. O casamento é por
// substring com a primeira chave declarada vencendo, então a tabela precisa
// ser um slice: um map mudaria o comportamento silenciosamente.
type scoreEntry struct {
	key    string
	points float64
}

var scoreTable = map[string][]scoreEntry{
	CategorySector: {
		{"Indústria/Manufatura", 1}, {"Varejo/E-commerce", 1}, {"Serviços Profissionais", 1},
		{"Saúde/Medicina", 1}, {"Educação", 1}, {"Financeiro/Fintech", 1},
		{"Logística/Supply Chain", 1}, {"Construção/Imobiliário", 1}, {"Tecnologia/Software", 1},
		{"Alimentação/Restaurantes", 1}, {"Marketing/Agências", 1}, {"Recursos Humanos", 1},
		{"Consultoria Empresarial", 1}, {"Agronegócios", 1}, {"Manutenção/Serviços Técnicos", 1},
		{"Outros", 1},
	},
	CategorySize: {
		{"1-10 funcionários", 1}, {"11-50 funcionários", 2}, {"51-250 funcionários", 3},
		{"251-500 funcionários", 4}, {"+500 funcionários", 5},
	},
	CategoryRole: {
		{"Sócio(a)/CEO/Fundador(a)", 3}, {"Diretor(a)/C-Level", 2.5}, {"Gerente/Coordenador(a)", 2},
		{"Analista/Especialista", 1}, {"Estagiário/Trainee", 0.5}, {"Consultor/Freelancer", 1.5},
	},
	CategoryPain: {
		{"Processos manuais e repetitivos", 2}, {"Perda de oportunidades de venda", 2},
		{"Custos operacionais muito altos", 2}, {"Dificuldade em entender clientes", 2},
		{"Tomada de decisão lenta ou baseada em 'achismo'", 2}, {"Atendimento ao cliente demorado/ineficiente", 2},
		{"Dificuldade em contratar ou reter bons talentos", 1}, {"Problemas de compliance/regulamentação", 1},
		{"Não temos grandes gargalos no momento", 0},
	},
	CategoryQuantifyPain: {
		{"Sim, é um custo significativo (>R$ 10k/mês)", 3}, {"Sim, é um custo moderado (<R$ 10k/mês)", 2.5},
		{"Temos uma estimativa do tempo perdido", 2.5}, {"Não consigo medir, mas o impacto é alto", 2},
	},
	CategoryMaturity: {
		{"Principalmente na intuição", 0}, {"Usamos relatórios básicos e planilhas", 0.5},
		{"Temos sistemas centralizados (CRM/ERP)", 1}, {"Temos cultura de dados, com dashboards e BI", 1.5},
		{"Já usamos alguns insights automatizados/IA", 2},
	},
	CategoryInvestment: {
		{"Estamos em fase de estudo, sem orçamento", 0.5}, {"Até R$ 30.000", 1},
		{"Entre R$ 30.000 e R$ 100.000", 2}, {"Entre R$ 100.000 e R$ 300.000", 2.5},
		{"Acima de R$ 300.000", 3}, {"Dependeria do ROI demonstrado", 1.5},
	},
	CategoryUrgency: {
		{"Crítica! Para ontem", 2}, {"Alta - Próximos 3 meses", 1.5},
		{"Média - Próximos 6-12 meses", 1}, {"Baixa - Apenas pesquisando", 0.5},
		{"Vai depender da proposta", 1},
	},
}

// Pesos do score final e máximo teórico da soma ponderada.
const (
	weightRole         = 0.2
	weightPain         = 0.25
	weightQuantifyPain = 0.1
	weightMaturity     = 0.15
	weightInvestment   = 0.2
	weightUrgency      = 0.1

	finalScoreMax = 2.5
)

// pointsFor devolve a pontuação da primeira chave contida na resposta.
// Resposta vazia ou sem chave correspondente vale 0, nunca erro.
func pointsFor(category, answer string) float64 {
	if answer == "" {
		return 0
	}
	for _, entry := range scoreTable[category] {
		if strings.Contains(answer, entry.key) {
			return entry.points
		}
	}
	return 0
}

// CalculateScores mapeia as respostas cruas para as cinco dimensões do radar
// e o score final ponderado. Função pura, segura para chamadas concorrentes.
func CalculateScores(lead domain.LeadProfile) (domain.Scores, float64) {
	scores := domain.Scores{
		PoderDeDecisao:        round1(pointsFor(CategoryRole, lead.Role) * 10 / 3),
		CulturaETalentos:      round1(pointsFor(CategoryMaturity, lead.DigitalMaturity) * 10 / 2),
		ProcessosEAutomacao:   round1(pointsFor(CategoryPain, lead.MainPain) * 10 / 2),
		InovacaoDeProdutos:    round1(pointsFor(CategoryInvestment, lead.Investment) * 10 / 3),
		InteligenciaDeMercado: round1(pointsFor(CategoryUrgency, lead.Urgency) * 10 / 2),
	}

	weighted := pointsFor(CategoryRole, lead.Role)*weightRole +
		pointsFor(CategoryPain, lead.MainPain)*weightPain +
		pointsFor(CategoryQuantifyPain, lead.PainQuant)*weightQuantifyPain +
		pointsFor(CategoryMaturity, lead.DigitalMaturity)*weightMaturity +
		pointsFor(CategoryInvestment, lead.Investment)*weightInvestment +
		pointsFor(CategoryUrgency, lead.Urgency)*weightUrgency

	return scores, round1(weighted / finalScoreMax * 10)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
