package domain

// Scores são as cinco dimensões do radar, normalizadas para 0-10
// com uma casa decimal.
type Scores struct {
	PoderDeDecisao        float64 `json:"poder_de_decisao"`
	CulturaETalentos      float64 `json:"cultura_e_talentos"`
	ProcessosEAutomacao   float64 `json:"processos_e_automacao"`
	InovacaoDeProdutos    float64 `json:"inovacao_de_produtos"`
	InteligenciaDeMercado float64 `json:"inteligencia_de_mercado"`
}

// Opportunity é uma iniciativa de IA recomendada para o lead.
type Opportunity struct {
	Titulo     string `json:"titulo"`
	Descricao  string `json:"descricao"`
	ROI        string `json:"roi"`
	Prioridade string `json:"prioridade"`
	Case       string `json:"case"`
}

// Risk é um alerta fixo incluído em todo relatório.
type Risk struct {
	Titulo    string `json:"titulo"`
	Descricao string `json:"descricao"`
}

type Company struct {
	Nome string `json:"nome"`
}

// Report é o agregado final: persistido como JSON e renderizado em HTML.
// Os nomes dos campos seguem a coluna ai_full_report_json.
type Report struct {
	Empresa       Company       `json:"empresa"`
	ScoresRadar   Scores        `json:"scores_radar"`
	ScoreFinal    float64       `json:"score_final"`
	Introduction  string        `json:"introduction"`
	Oportunidades []Opportunity `json:"relatorio_oportunidades"`
	Riscos        []Risk        `json:"relatorio_riscos"`
}
