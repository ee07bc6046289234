package repositories

import (
	"database/sql"
	"time"

	"package-tracker/internal/apperrors"
	"package-tracker/internal/models"
)

// PackageRecord pairs a package row with its joined assignee, if any.
// Assignee is nil when delivery_person_id is null or dangling.
type PackageRecord struct {
	Package  *models.Package
	Assignee *models.User
}

type PackageRepository struct {
	db *sql.DB
}

func NewPackageRepository(db *sql.DB) *PackageRepository {
	return &PackageRepository{db: db}
}

const packageJoinColumns = `
	p.id, p.destinatario, p.direccion, p.delivery_person_id, p.status, p.created_at, p.delivered_at,
	u.id, u.name, u.phone, u.status
`

// Create inserts a new package
func (r *PackageRepository) Create(pkg *models.Package) error {
	query := `
		INSERT INTO packages (
			id, destinatario, direccion, delivery_person_id, status, created_at
		) VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		pkg.ID, pkg.Destinatario, pkg.Direccion, nullableString(pkg.DeliveryPersonID),
		pkg.Status, pkg.CreatedAt,
	)
	if err != nil {
		return apperrors.NewStoreError("insert package", err)
	}
	return nil
}

// GetByID retrieves a package by ID together with its assignee via LEFT JOIN.
// Returns sql.ErrNoRows when the package does not exist.
func (r *PackageRepository) GetByID(id string) (*PackageRecord, error) {
	query := `
		SELECT ` + packageJoinColumns + `
		FROM packages p
		LEFT JOIN users u ON u.id = p.delivery_person_id
		WHERE p.id = ?
	`

	record, err := scanPackageRecord(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, apperrors.NewStoreError("select package", err)
	}
	return record, nil
}

// GetAll retrieves all packages with their assignees, newest created first
func (r *PackageRepository) GetAll() ([]*PackageRecord, error) {
	query := `
		SELECT ` + packageJoinColumns + `
		FROM packages p
		LEFT JOIN users u ON u.id = p.delivery_person_id
		ORDER BY p.created_at DESC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, apperrors.NewStoreError("select packages", err)
	}
	defer rows.Close()

	return collectPackageRecords(rows)
}

// GetByStatus retrieves all packages in the given status with their assignees
func (r *PackageRepository) GetByStatus(status models.PackageStatus) ([]*PackageRecord, error) {
	query := `
		SELECT ` + packageJoinColumns + `
		FROM packages p
		LEFT JOIN users u ON u.id = p.delivery_person_id
		WHERE p.status = ?
		ORDER BY p.created_at DESC
	`

	rows, err := r.db.Query(query, status)
	if err != nil {
		return nil, apperrors.NewStoreError("select packages by status", err)
	}
	defer rows.Close()

	return collectPackageRecords(rows)
}

// Update overwrites the mutable fields of a package
func (r *PackageRepository) Update(pkg *models.Package) error {
	query := `
		UPDATE packages SET
			destinatario = ?, direccion = ?, delivery_person_id = ?, status = ?, delivered_at = ?
		WHERE id = ?
	`

	_, err := r.db.Exec(query,
		pkg.Destinatario, pkg.Direccion, nullableString(pkg.DeliveryPersonID),
		pkg.Status, nullableTime(pkg.DeliveredAt), pkg.ID,
	)
	if err != nil {
		return apperrors.NewStoreError("update package", err)
	}
	return nil
}

// Delete removes a package by ID and reports how many rows were deleted
func (r *PackageRepository) Delete(id string) (int64, error) {
	result, err := r.db.Exec(`DELETE FROM packages WHERE id = ?`, id)
	if err != nil {
		return 0, apperrors.NewStoreError("delete package", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, apperrors.NewStoreError("delete package", err)
	}
	return affected, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPackageRecord(row rowScanner) (*PackageRecord, error) {
	pkg := &models.Package{}
	var deliveryPersonID sql.NullString
	var deliveredAt sql.NullTime
	var assigneeID, assigneeName, assigneePhone, assigneeStatus sql.NullString

	err := row.Scan(
		&pkg.ID, &pkg.Destinatario, &pkg.Direccion, &deliveryPersonID,
		&pkg.Status, &pkg.CreatedAt, &deliveredAt,
		&assigneeID, &assigneeName, &assigneePhone, &assigneeStatus,
	)
	if err != nil {
		return nil, err
	}

	if deliveryPersonID.Valid {
		pkg.DeliveryPersonID = &deliveryPersonID.String
	}
	if deliveredAt.Valid {
		t := deliveredAt.Time
		pkg.DeliveredAt = &t
	}

	record := &PackageRecord{Package: pkg}
	if assigneeID.Valid {
		record.Assignee = &models.User{
			ID:     assigneeID.String,
			Name:   assigneeName.String,
			Phone:  assigneePhone.String,
			Status: assigneeStatus.String,
		}
	}
	return record, nil
}

func collectPackageRecords(rows *sql.Rows) ([]*PackageRecord, error) {
	var records []*PackageRecord
	for rows.Next() {
		record, err := scanPackageRecord(rows)
		if err != nil {
			return nil, apperrors.NewStoreError("scan package", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStoreError("scan packages", err)
	}
	return records, nil
}

func nullableString(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

func nullableTime(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return *t
}
