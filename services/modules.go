package services

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/business-launch/modules-api/models"
)

// Store adapter errors. Handlers translate these to status codes; nothing
// structured crosses the HTTP boundary beyond that.
var (
	ErrNotFound         = errors.New("module not found")
	ErrStoreUnavailable = errors.New("module store unavailable")
)

// ModuleStore is the CRUD boundary to the module collection, scoped by the
// owning user. Implementations are constructed explicitly and injected into
// handlers; there are no package-level store handles.
type ModuleStore interface {
	ListByOwner(userID string) ([]models.BusinessModule, error)
	GetByID(id string) (models.BusinessModule, error)
	Create(draft models.BusinessModule) (models.BusinessModule, error)
	Update(id string, record models.BusinessModule) error
	Delete(id string) error
}

// moduleDoc is the JSONB document body; id, owner and creation time live in
// their own columns.
type moduleDoc struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Type        models.ModuleType `json:"type"`
	Income      models.Income     `json:"income"`
	Tasks       []models.Task     `json:"tasks"`
}

// PostgresModuleStore persists each module as a whole JSON document in the
// modules table. Updates are full-document overwrites, last write wins.
type PostgresModuleStore struct {
	DB *sql.DB
}

func NewPostgresModuleStore(db *sql.DB) *PostgresModuleStore {
	return &PostgresModuleStore{DB: db}
}

func (s *PostgresModuleStore) ListByOwner(userID string) ([]models.BusinessModule, error) {
	rows, err := s.DB.Query(`
		SELECT id, user_id, data, created_at
		FROM modules
		WHERE user_id = $1
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	defer rows.Close()

	modules := []models.BusinessModule{}
	for rows.Next() {
		var (
			id, owner string
			raw       []byte
			createdAt sql.NullTime
		)
		if err := rows.Scan(&id, &owner, &raw, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		m, err := hydrate(id, owner, raw, createdAt)
		if err != nil {
			return nil, err
		}
		modules = append(modules, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return modules, nil
}

func (s *PostgresModuleStore) GetByID(id string) (models.BusinessModule, error) {
	var (
		owner     string
		raw       []byte
		createdAt sql.NullTime
	)
	err := s.DB.QueryRow(`
		SELECT user_id, data, created_at
		FROM modules
		WHERE id = $1
	`, id).Scan(&owner, &raw, &createdAt)

	if err == sql.ErrNoRows {
		return models.BusinessModule{}, ErrNotFound
	}
	if err != nil {
		return models.BusinessModule{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return hydrate(id, owner, raw, createdAt)
}

// Create persists a draft and returns the canonical record with the
// store-assigned id and creation timestamp. Single INSERT, so either the
// record exists afterwards or nothing was written.
func (s *PostgresModuleStore) Create(draft models.BusinessModule) (models.BusinessModule, error) {
	raw, err := json.Marshal(docOf(draft))
	if err != nil {
		return models.BusinessModule{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	record := draft
	err = s.DB.QueryRow(`
		INSERT INTO modules (user_id, data)
		VALUES ($1, $2)
		RETURNING id, created_at
	`, draft.UserID, raw).Scan(&record.ID, &record.CreatedAt)

	if err != nil {
		return models.BusinessModule{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if record.Tasks == nil {
		record.Tasks = []models.Task{}
	}
	return record, nil
}

// Update replaces the stored document wholesale; any field missing from the
// given record is dropped. Callers must hand in a fully populated record.
func (s *PostgresModuleStore) Update(id string, record models.BusinessModule) error {
	raw, err := json.Marshal(docOf(record))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	result, err := s.DB.Exec(`
		UPDATE modules
		SET data = $1
		WHERE id = $2
	`, raw, id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresModuleStore) Delete(id string) error {
	result, err := s.DB.Exec(`DELETE FROM modules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func docOf(m models.BusinessModule) moduleDoc {
	tasks := m.Tasks
	if tasks == nil {
		tasks = []models.Task{}
	}
	return moduleDoc{
		Name:        m.Name,
		Description: m.Description,
		Type:        m.Type,
		Income:      m.Income,
		Tasks:       tasks,
	}
}

func hydrate(id, owner string, raw []byte, createdAt sql.NullTime) (models.BusinessModule, error) {
	var doc moduleDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return models.BusinessModule{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if doc.Tasks == nil {
		doc.Tasks = []models.Task{}
	}
	m := models.BusinessModule{
		ID:          id,
		UserID:      owner,
		Name:        doc.Name,
		Description: doc.Description,
		Type:        doc.Type,
		Income:      doc.Income,
		Tasks:       doc.Tasks,
	}
	if createdAt.Valid {
		m.CreatedAt = createdAt.Time
	}
	return m, nil
}
