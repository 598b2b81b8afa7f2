package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/workout-api/internal/domain"
	"github.com/phrazzld/workout-api/internal/platform/logger"
	"github.com/phrazzld/workout-api/internal/store"
)

// PostgresTrainingCenterStore implements the store.TrainingCenterStore
// interface using a PostgreSQL database as the storage backend.
type PostgresTrainingCenterStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTrainingCenterStore creates a new PostgreSQL implementation of the TrainingCenterStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresTrainingCenterStore(db store.DBTX, logger *slog.Logger) *PostgresTrainingCenterStore {
	// Validate inputs
	if db == nil {
		panic("db cannot be nil")
	}

	// Use provided logger or create default
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTrainingCenterStore{
		db:     db,
		logger: logger.With(slog.String("component", "training_center_store")),
	}
}

// Ensure PostgresTrainingCenterStore implements store.TrainingCenterStore interface
var _ store.TrainingCenterStore = (*PostgresTrainingCenterStore)(nil)

// WithTx implements store.TrainingCenterStore.WithTx
// It returns a new store bound to the given transaction.
func (s *PostgresTrainingCenterStore) WithTx(tx *sql.Tx) store.TrainingCenterStore {
	return &PostgresTrainingCenterStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.TrainingCenterStore.Create
// It saves a new training center to the database, handling domain validation.
// Returns store.ErrDuplicate if a training center with the same name already exists.
func (s *PostgresTrainingCenterStore) Create(ctx context.Context, center *domain.TrainingCenter) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// Validate training center data
	if err := center.Validate(); err != nil {
		log.Warn("training center validation failed during create",
			slog.String("error", err.Error()),
			slog.String("training_center_id", center.ID.String()))
		return err
	}

	query := `INSERT INTO training_centers (id, name, address, owner) VALUES ($1, $2, $3, $4)`
	_, err := s.db.ExecContext(ctx, query, center.ID, center.Name, center.Address, center.Owner)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("unique violation during training center creation",
				slog.String("error", err.Error()),
				slog.String("name", center.Name))
			return MapError(err)
		}
		log.Error("failed to create training center",
			slog.String("error", err.Error()),
			slog.String("training_center_id", center.ID.String()))
		return err
	}

	log.Info("training center created successfully",
		slog.String("training_center_id", center.ID.String()),
		slog.String("name", center.Name))
	return nil
}

// GetByID implements store.TrainingCenterStore.GetByID
// Returns store.ErrTrainingCenterNotFound if the training center does not exist.
func (s *PostgresTrainingCenterStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.TrainingCenter, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT id, name, address, owner FROM training_centers WHERE id = $1`

	var center domain.TrainingCenter
	err := s.db.QueryRowContext(ctx, query, id).
		Scan(&center.ID, &center.Name, &center.Address, &center.Owner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("training center not found", slog.String("training_center_id", id.String()))
			return nil, store.ErrTrainingCenterNotFound
		}
		log.Error("failed to get training center by ID",
			slog.String("error", err.Error()),
			slog.String("training_center_id", id.String()))
		return nil, err
	}

	return &center, nil
}

// GetByName implements store.TrainingCenterStore.GetByName
// Returns store.ErrTrainingCenterNotFound if the training center does not exist.
func (s *PostgresTrainingCenterStore) GetByName(ctx context.Context, name string) (*domain.TrainingCenter, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT id, name, address, owner FROM training_centers WHERE name = $1`

	var center domain.TrainingCenter
	err := s.db.QueryRowContext(ctx, query, name).
		Scan(&center.ID, &center.Name, &center.Address, &center.Owner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("training center not found by name", slog.String("name", name))
			return nil, store.ErrTrainingCenterNotFound
		}
		log.Error("failed to get training center by name",
			slog.String("error", err.Error()),
			slog.String("name", name))
		return nil, err
	}

	return &center, nil
}

// List implements store.TrainingCenterStore.List
// It retrieves all training centers in a stable order (name, then ID).
func (s *PostgresTrainingCenterStore) List(ctx context.Context) ([]*domain.TrainingCenter, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT id, name, address, owner FROM training_centers ORDER BY name, id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list training centers", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Error("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	centers := make([]*domain.TrainingCenter, 0)
	for rows.Next() {
		var center domain.TrainingCenter
		if err := rows.Scan(&center.ID, &center.Name, &center.Address, &center.Owner); err != nil {
			log.Error("failed to scan training center row", slog.String("error", err.Error()))
			return nil, err
		}
		centers = append(centers, &center)
	}

	if err := rows.Err(); err != nil {
		log.Error("error iterating training center rows", slog.String("error", err.Error()))
		return nil, err
	}

	log.Debug("training centers listed successfully", slog.Int("count", len(centers)))
	return centers, nil
}
