package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"ai-hunter/internal/config"
)

// NewPool constrói e devolve um pool de conexões configurado.
func NewPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	// Pool pequeno: o Supabase limita conexões por projeto.
	poolCfg.MaxConns = 5
	poolCfg.MinConns = 1
	poolCfg.MaxConnLifetime = 30 * time.Minute
	poolCfg.MaxConnIdleTime = 5 * time.Minute
	poolCfg.HealthCheckPeriod = 30 * time.Second
	poolCfg.ConnConfig.ConnectTimeout = 5 * time.Second
	poolCfg.ConnConfig.RuntimeParams["application_name"] = "ai-hunter-backend"

	return pgxpool.NewWithConfig(ctx, poolCfg)
}

// Ping verifica conectividade com a base de dados.
func Ping(ctx context.Context, pool *pgxpool.Pool) error {
	return pool.Ping(ctx)
}

// Health devolve o timestamp do servidor; usado pelo endpoint /test-db.
func Health(ctx context.Context, pool *pgxpool.Pool) (time.Time, error) {
	var now time.Time
	err := pool.QueryRow(ctx, `SELECT NOW()`).Scan(&now)
	return now, err
}

// Info agrega dados de diagnóstico da conexão para /db-info.
type Info struct {
	Database               string `json:"database"`
	User                   string `json:"user"`
	Version                string `json:"version"`
	LeadProfilesTableExist bool   `json:"table_lead_profiles_exists"`
	PoolTotalConns         int32  `json:"pool_total_conns"`
	PoolMaxConns           int32  `json:"pool_max_conns"`
}

// CollectInfo consulta metadados básicos do banco.
func CollectInfo(ctx context.Context, pool *pgxpool.Pool) (Info, error) {
	var info Info
	err := pool.QueryRow(ctx, `SELECT current_database(), current_user, version()`).
		Scan(&info.Database, &info.User, &info.Version)
	if err != nil {
		return Info{}, err
	}

	const tableQuery = `
		SELECT EXISTS (
			SELECT FROM information_schema.tables
			WHERE table_schema = 'public' AND table_name = 'lead_profiles'
		)
	`
	if err := pool.QueryRow(ctx, tableQuery).Scan(&info.LeadProfilesTableExist); err != nil {
		return Info{}, err
	}

	stat := pool.Stat()
	info.PoolTotalConns = stat.TotalConns()
	info.PoolMaxConns = stat.MaxConns()
	return info, nil
}
