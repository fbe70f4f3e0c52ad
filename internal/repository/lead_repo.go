package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"ai-hunter/internal/domain"
)

// LeadRepository persiste o questionário junto com o relatório gerado.
type LeadRepository interface {
	Save(ctx context.Context, lead domain.LeadProfile, report domain.Report) (string, error)
}

const statusCompleted = "COMPLETED"

type PgLeadRepository struct {
	pool *pgxpool.Pool
}

func NewPgLeadRepository(pool *pgxpool.Pool) *PgLeadRepository {
	return &PgLeadRepository{pool: pool}
}

// Save grava uma linha por diagnóstico: respostas cruas, status, score final
// e os dois blobs JSON (scores do radar e relatório completo).
func (r *PgLeadRepository) Save(ctx context.Context, lead domain.LeadProfile, report domain.Report) (string, error) {
	scoresJSON, err := json.Marshal(report.ScoresRadar)
	if err != nil {
		return "", fmt.Errorf("marshal scores: %w", err)
	}
	reportJSON, err := json.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}

	const query = `
		INSERT INTO lead_profiles (
			id, created_at, lead_email, lead_phone, name,
			raw_p1_sector, raw_p2_company_size, raw_p3_role,
			raw_p4_main_pain, raw_p5_critical_area, raw_p6_pain_quant,
			raw_p7_digital_maturity, raw_p8_investment, raw_p9_urgency,
			status, ai_score_final, ai_scores_json, ai_full_report_json
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING id
	`

	var id string
	err = r.pool.QueryRow(ctx, query,
		uuid.NewString(),
		time.Now().UTC(),
		lead.Email,
		lead.Phone,
		lead.Name,
		lead.Sector,
		lead.CompanySize,
		lead.Role,
		lead.MainPain,
		lead.CriticalArea,
		lead.PainQuant,
		lead.DigitalMaturity,
		lead.Investment,
		lead.Urgency,
		statusCompleted,
		report.ScoreFinal,
		scoresJSON,
		reportJSON,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("insert lead profile: %w", err)
	}
	return id, nil
}
