package domain

// LeadProfile é a resposta crua do questionário enviada pelo formulário.
// Os nomes JSON são o contrato público com o frontend; nunca é mutado
// depois de recebido.
type LeadProfile struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone"`
	Sector          string `json:"sector" binding:"required"`
	CompanySize     string `json:"company_size" binding:"required"`
	Role            string `json:"role" binding:"required"`
	MainPain        string `json:"main_pain" binding:"required"`
	CriticalArea    string `json:"critical_area"`
	PainQuant       string `json:"pain_quantification"`
	DigitalMaturity string `json:"digital_maturity" binding:"required"`
	Investment      string `json:"investment_capacity" binding:"required"`
	Urgency         string `json:"urgency" binding:"required"`
}
