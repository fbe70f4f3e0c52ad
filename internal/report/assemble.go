package report

import (
	"strings"

	"ai-hunter/internal/domain"
)

// defaultCompanyName aparece quando o formulário não traz o nome.
const defaultCompanyName = "Sua Empresa"

// staticRisks são conteúdo fixo: entram em todo relatório, nunca derivam
// das respostas.
func staticRisks() []domain.Risk {
	return []domain.Risk{
		{
			Titulo:    "Segurança de Dados",
			Descricao: "A implementação de IA exige atenção redobrada à segurança dos dados e conformidade com a LGPD.",
		},
		{
			Titulo:    "Gestão da Mudança",
			Descricao: "A adoção de novas tecnologias requer uma comunicação clara e treinamento para garantir a adesão da equipe.",
		},
	}
}

// Assemble consolida scores, introdução e oportunidades no relatório final.
// Agregação pura: sempre sucede com entradas bem tipadas.
func Assemble(companyName string, scores domain.Scores, finalScore float64, introduction string, opportunities []domain.Opportunity) domain.Report {
	name := strings.TrimSpace(companyName)
	if name == "" {
		name = defaultCompanyName
	}

	return domain.Report{
		Empresa:       domain.Company{Nome: name},
		ScoresRadar:   scores,
		ScoreFinal:    finalScore,
		Introduction:  introduction,
		Oportunidades: opportunities,
		Riscos:        staticRisks(),
	}
}
