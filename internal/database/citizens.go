package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"waste-management-backend/internal/models"
)

const citizenSelect = `SELECT c.citizen_id, c.name, c.address, c.contact, c.area_id, c.created_at, a.area_name
	FROM citizens c
	LEFT JOIN areas a ON a.area_id = c.area_id`

// ListCitizens returns citizens newest first, optionally scoped to one area
func ListCitizens(ctx context.Context, db *sqlx.DB, areaID *int64) ([]models.Citizen, error) {
	citizens := []models.Citizen{}
	query := citizenSelect
	args := []interface{}{}
	if areaID != nil {
		query += ` WHERE c.area_id = ?`
		args = append(args, *areaID)
	}
	query += ` ORDER BY c.citizen_id DESC`

	if err := db.SelectContext(ctx, &citizens, db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list citizens: %w", err)
	}
	return citizens, nil
}

func GetCitizen(ctx context.Context, db *sqlx.DB, id int64) (*models.Citizen, error) {
	var citizen models.Citizen
	if err := getOne(ctx, db, &citizen, "Citizen", citizenSelect+` WHERE c.citizen_id = ?`, id); err != nil {
		return nil, err
	}
	return &citizen, nil
}

func CreateCitizen(ctx context.Context, db *sqlx.DB, req models.CitizenRequest) (int64, error) {
	if err := checkReferences(ctx, db, areaRef(int64(req.AreaID))); err != nil {
		return 0, err
	}
	id, err := insertReturningID(ctx, db,
		`INSERT INTO citizens (name, address, contact, area_id, created_at)
		 VALUES (?, ?, ?, ?, ?) RETURNING citizen_id`,
		req.Name, req.Address, req.Contact, int64(req.AreaID), time.Now().Unix(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create citizen: %w", err)
	}
	return id, nil
}

func UpdateCitizen(ctx context.Context, db *sqlx.DB, id int64, req models.CitizenRequest) error {
	if err := checkReferences(ctx, db, areaRef(int64(req.AreaID))); err != nil {
		return err
	}
	return execAffecting(ctx, db, "Citizen",
		`UPDATE citizens SET name = ?, address = ?, contact = ?, area_id = ? WHERE citizen_id = ?`,
		req.Name, req.Address, req.Contact, int64(req.AreaID), id,
	)
}

// DeleteCitizen refuses while the citizen still has bills
func DeleteCitizen(ctx context.Context, db *sqlx.DB, id int64) error {
	n, err := countRows(ctx, db, `SELECT COUNT(*) FROM bills WHERE citizen_id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to count bills: %w", err)
	}
	if n > 0 {
		return &ConflictError{Message: "Cannot delete citizen with bills. Delete bills first."}
	}

	if _, err := db.ExecContext(ctx, db.Rebind(`DELETE FROM citizens WHERE citizen_id = ?`), id); err != nil {
		return fmt.Errorf("failed to delete citizen: %w", err)
	}
	return nil
}
