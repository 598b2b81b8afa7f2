package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/workout-api/internal/domain"
	"github.com/phrazzld/workout-api/internal/platform/logger"
	"github.com/phrazzld/workout-api/internal/store"
)

// athleteColumns is the select list shared by every athlete read. Reads join
// the referenced category and training center so the read model carries
// their names.
const athleteColumns = `
	a.id, a.name, a.cpf, a.age, a.weight, a.height, a.sex,
	a.category_id, a.training_center_id, a.created_at,
	c.name AS category_name, t.name AS training_center_name
`

const athleteFromClause = `
	FROM athletes a
	JOIN categories c ON c.id = a.category_id
	JOIN training_centers t ON t.id = a.training_center_id
`

// PostgresAthleteStore implements the store.AthleteStore interface
// using a PostgreSQL database as the storage backend.
type PostgresAthleteStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAthleteStore creates a new PostgreSQL implementation of the AthleteStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresAthleteStore(db store.DBTX, logger *slog.Logger) *PostgresAthleteStore {
	// Validate inputs
	if db == nil {
		panic("db cannot be nil")
	}

	// Use provided logger or create default
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresAthleteStore{
		db:     db,
		logger: logger.With(slog.String("component", "athlete_store")),
	}
}

// Ensure PostgresAthleteStore implements store.AthleteStore interface
var _ store.AthleteStore = (*PostgresAthleteStore)(nil)

// WithTx implements store.AthleteStore.WithTx
// It returns a new store bound to the given transaction.
func (s *PostgresAthleteStore) WithTx(tx *sql.Tx) store.AthleteStore {
	return &PostgresAthleteStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.AthleteStore.Create
// It saves a new athlete to the database, handling domain validation.
// Returns store.ErrCPFExists if an athlete with the same CPF already exists.
// Returns store.ErrInvalidEntity if a referenced row no longer exists
// (foreign key violation).
func (s *PostgresAthleteStore) Create(ctx context.Context, athlete *domain.Athlete) error {
	// Get the logger from context or use default
	log := logger.FromContextOrDefault(ctx, s.logger)

	// Validate athlete data
	if err := athlete.Validate(); err != nil {
		log.Warn("athlete validation failed during create",
			slog.String("error", err.Error()),
			slog.String("athlete_id", athlete.ID.String()))
		return err
	}

	query := `
		INSERT INTO athletes
			(id, name, cpf, age, weight, height, sex, category_id, training_center_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		athlete.ID,
		athlete.Name,
		athlete.CPF,
		athlete.Age,
		athlete.Weight,
		athlete.Height,
		athlete.Sex,
		athlete.CategoryID,
		athlete.TrainingCenterID,
		athlete.CreatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case uniqueViolationCode:
				log.Warn("unique violation during athlete creation",
					slog.String("error", err.Error()),
					slog.String("athlete_id", athlete.ID.String()),
					slog.String("constraint", pgErr.ConstraintName))
				return store.ErrCPFExists
			case foreignKeyViolationCode:
				log.Warn("foreign key violation during athlete creation",
					slog.String("error", err.Error()),
					slog.String("athlete_id", athlete.ID.String()),
					slog.String("constraint", pgErr.ConstraintName))
				return athleteFKError(pgErr)
			}
		}

		log.Error("failed to create athlete",
			slog.String("error", err.Error()),
			slog.String("athlete_id", athlete.ID.String()))
		return err
	}

	log.Info("athlete created successfully",
		slog.String("athlete_id", athlete.ID.String()),
		slog.String("category_id", athlete.CategoryID.String()),
		slog.String("training_center_id", athlete.TrainingCenterID.String()))
	return nil
}

// athleteFKError maps an athlete foreign key violation to the sentinel for
// the reference that vanished, so callers can report which entity is gone.
// The constraint names are set by the schema migrations.
func athleteFKError(pgErr *pgconn.PgError) error {
	switch pgErr.ConstraintName {
	case "athletes_category_id_fkey":
		return store.ErrCategoryRefMissing
	case "athletes_training_center_id_fkey":
		return store.ErrTrainingCenterRefMissing
	default:
		return fmt.Errorf("%w: %s", store.ErrInvalidEntity, pgErr.ConstraintName)
	}
}

// GetByID implements store.AthleteStore.GetByID
// It retrieves an athlete by its unique ID, joining the referenced
// category and training center names.
// Returns store.ErrAthleteNotFound if the athlete does not exist.
func (s *PostgresAthleteStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Athlete, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving athlete by ID", slog.String("athlete_id", id.String()))

	query := `SELECT ` + athleteColumns + athleteFromClause + ` WHERE a.id = $1`

	athlete, err := scanAthlete(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("athlete not found", slog.String("athlete_id", id.String()))
			return nil, store.ErrAthleteNotFound
		}
		log.Error("failed to get athlete by ID",
			slog.String("error", err.Error()),
			slog.String("athlete_id", id.String()))
		return nil, err
	}

	return athlete, nil
}

// List implements store.AthleteStore.List
// It retrieves all athletes in a stable order (creation time, then ID),
// joining the referenced category and training center names.
func (s *PostgresAthleteStore) List(ctx context.Context) ([]*domain.Athlete, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + athleteColumns + athleteFromClause + ` ORDER BY a.created_at, a.id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list athletes", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Error("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	athletes := make([]*domain.Athlete, 0)
	for rows.Next() {
		athlete, err := scanAthlete(rows)
		if err != nil {
			log.Error("failed to scan athlete row", slog.String("error", err.Error()))
			return nil, err
		}
		athletes = append(athletes, athlete)
	}

	if err := rows.Err(); err != nil {
		log.Error("error iterating athlete rows", slog.String("error", err.Error()))
		return nil, err
	}

	log.Debug("athletes listed successfully", slog.Int("count", len(athletes)))
	return athletes, nil
}

// Update implements store.AthleteStore.Update
// It persists the current state of an athlete's own columns. The category
// and training center references are immutable after creation and are not
// written here.
// Returns store.ErrAthleteNotFound if the athlete does not exist.
// Returns store.ErrCPFExists if the update would duplicate another athlete's CPF.
func (s *PostgresAthleteStore) Update(ctx context.Context, athlete *domain.Athlete) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// Validate athlete data
	if err := athlete.Validate(); err != nil {
		log.Warn("athlete validation failed during update",
			slog.String("error", err.Error()),
			slog.String("athlete_id", athlete.ID.String()))
		return err
	}

	query := `
		UPDATE athletes
		SET name = $2, cpf = $3, age = $4, weight = $5, height = $6, sex = $7
		WHERE id = $1
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		athlete.ID,
		athlete.Name,
		athlete.CPF,
		athlete.Age,
		athlete.Weight,
		athlete.Height,
		athlete.Sex,
	)

	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("unique violation during athlete update",
				slog.String("error", err.Error()),
				slog.String("athlete_id", athlete.ID.String()))
			return store.ErrCPFExists
		}
		log.Error("failed to update athlete",
			slog.String("error", err.Error()),
			slog.String("athlete_id", athlete.ID.String()))
		return err
	}

	if err := CheckRowsAffected(result, "athlete"); err != nil {
		log.Debug("athlete not found during update",
			slog.String("athlete_id", athlete.ID.String()))
		return store.ErrAthleteNotFound
	}

	log.Info("athlete updated successfully", slog.String("athlete_id", athlete.ID.String()))
	return nil
}

// Delete implements store.AthleteStore.Delete
// It removes an athlete from the store by its ID.
// Returns store.ErrAthleteNotFound if the athlete does not exist.
func (s *PostgresAthleteStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM athletes WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete athlete",
			slog.String("error", err.Error()),
			slog.String("athlete_id", id.String()))
		return err
	}

	if err := CheckRowsAffected(result, "athlete"); err != nil {
		log.Debug("athlete not found during delete", slog.String("athlete_id", id.String()))
		return store.ErrAthleteNotFound
	}

	log.Info("athlete deleted successfully", slog.String("athlete_id", id.String()))
	return nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanAthlete reads one athlete row produced by athleteColumns.
func scanAthlete(row rowScanner) (*domain.Athlete, error) {
	var athlete domain.Athlete
	err := row.Scan(
		&athlete.ID,
		&athlete.Name,
		&athlete.CPF,
		&athlete.Age,
		&athlete.Weight,
		&athlete.Height,
		&athlete.Sex,
		&athlete.CategoryID,
		&athlete.TrainingCenterID,
		&athlete.CreatedAt,
		&athlete.CategoryName,
		&athlete.TrainingCenterName,
	)
	if err != nil {
		return nil, err
	}
	return &athlete, nil
}
