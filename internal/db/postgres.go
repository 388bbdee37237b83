package db

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/waris/faraid-engine/pkg/models"
)

// PostgresStore persists calculation and batch history. The faraid
// engine itself is a pure value computation; this store is the
// external collaborator that sits outside the core.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// Connect initializes the connection pool to PostgreSQL using pgx.
func Connect(connStr string) (*PostgresStore, error) {
	pool, err := pgxpool.New(context.Background(), connStr)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %v", err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("ping failed: %v", err)
	}

	log.Println("Successfully connected to PostgreSQL for calculation history")
	return &PostgresStore{pool: pool}, nil
}

// Close gracefully closes the connection pool.
func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// InitSchema loads and executes the schema.sql file.
func (s *PostgresStore) InitSchema() error {
	schemaBytes, err := os.ReadFile("internal/db/schema.sql")
	if err != nil {
		return fmt.Errorf("failed to read schema file: %v", err)
	}

	_, err = s.pool.Exec(context.Background(), string(schemaBytes))
	if err != nil {
		return fmt.Errorf("failed to execute schema migrations: %v", err)
	}

	log.Println("Calculation history schema initialized")
	return nil
}

// HistoryRecord is one persisted calculation, as returned to API
// clients browsing past computations.
type HistoryRecord struct {
	ID          string                   `json:"id"`
	Tirkah      string                   `json:"tirkah"`
	Heirs       []models.HeirInput       `json:"heirs"`
	Result      models.CalculationResult `json:"result"`
	Status      string                   `json:"status"`
	VariantName string                   `json:"variantName,omitempty"`
}

// SaveCalculation persists a single completed calculation and returns
// the history ID it was stored under.
func (s *PostgresStore) SaveCalculation(ctx context.Context, heirs []models.HeirInput, result models.CalculationResult) (string, error) {
	heirsJSON, err := json.Marshal(heirs)
	if err != nil {
		return "", fmt.Errorf("failed to marshal heirs: %v", err)
	}
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("failed to marshal result: %v", err)
	}

	id := uuid.NewString()
	insertSQL := `
		INSERT INTO calculation_history (id, tirkah, heirs, result, status, variant_name)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err = s.pool.Exec(ctx, insertSQL, id, result.Tirkah.String(), heirsJSON, resultJSON,
		string(result.Status), result.VariantName)
	if err != nil {
		return "", fmt.Errorf("failed to insert calculation_history: %v", err)
	}
	return id, nil
}

// GetHistory retrieves a single persisted calculation by ID.
func (s *PostgresStore) GetHistory(ctx context.Context, id string) (*HistoryRecord, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT id, tirkah, heirs, result, status, variant_name
		FROM calculation_history WHERE id = $1;
	`, id)

	var rec HistoryRecord
	var heirsJSON, resultJSON []byte
	var variantName *string
	if err := row.Scan(&rec.ID, &rec.Tirkah, &heirsJSON, &resultJSON, &rec.Status, &variantName); err != nil {
		return nil, err
	}
	if variantName != nil {
		rec.VariantName = *variantName
	}
	if err := json.Unmarshal(heirsJSON, &rec.Heirs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal heirs: %v", err)
	}
	if err := json.Unmarshal(resultJSON, &rec.Result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal result: %v", err)
	}
	return &rec, nil
}

// ListHistory returns a page of persisted calculations, most recent
// first, along with the total row count for pagination.
func (s *PostgresStore) ListHistory(ctx context.Context, page, limit int) ([]HistoryRecord, int, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	var totalCount int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM calculation_history`).Scan(&totalCount); err != nil {
		return nil, 0, err
	}

	rows, err := s.pool.Query(ctx, `
		SELECT id, tirkah, heirs, result, status, variant_name
		FROM calculation_history
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;
	`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var records []HistoryRecord
	for rows.Next() {
		var rec HistoryRecord
		var heirsJSON, resultJSON []byte
		var variantName *string
		if err := rows.Scan(&rec.ID, &rec.Tirkah, &heirsJSON, &resultJSON, &rec.Status, &variantName); err != nil {
			return nil, 0, err
		}
		if variantName != nil {
			rec.VariantName = *variantName
		}
		if err := json.Unmarshal(heirsJSON, &rec.Heirs); err != nil {
			return nil, 0, fmt.Errorf("failed to unmarshal heirs: %v", err)
		}
		if err := json.Unmarshal(resultJSON, &rec.Result); err != nil {
			return nil, 0, fmt.Errorf("failed to unmarshal result: %v", err)
		}
		records = append(records, rec)
	}
	if records == nil {
		records = []HistoryRecord{}
	}
	return records, totalCount, nil
}

// SaveBatch persists a batch (Gharqa/Munasakhot) job's final state.
func (s *PostgresStore) SaveBatch(ctx context.Context, id, kind, status string, input, results any) error {
	inputJSON, err := json.Marshal(input)
	if err != nil {
		return fmt.Errorf("failed to marshal batch input: %v", err)
	}
	resultsJSON, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("failed to marshal batch results: %v", err)
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO batch_history (id, kind, status, input, results)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET status = EXCLUDED.status, results = EXCLUDED.results, updated_at = NOW();
	`, id, kind, status, inputJSON, resultsJSON)
	if err != nil {
		return fmt.Errorf("failed to upsert batch_history: %v", err)
	}
	return nil
}

// GetPool exposes the connection pool for callers that need direct
// access (migrations, admin tooling).
func (s *PostgresStore) GetPool() *pgxpool.Pool {
	return s.pool
}
