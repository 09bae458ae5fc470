package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"waste-management-backend/internal/models"
)

// CrewDefaults fill schedule_id and team_id when a new crew omits them and
// nothing in its area can supply one.
type CrewDefaults struct {
	ScheduleID int64
	TeamID     int64
}

const crewSelect = `SELECT cr.crew_id, cr.crew_name, cr.contact, cr.area_id, cr.schedule_id, cr.team_id, cr.created_at,
		a.area_name, s.schedule_date
	FROM crew cr
	LEFT JOIN areas a ON a.area_id = cr.area_id
	LEFT JOIN collection_schedules s ON s.schedule_id = cr.schedule_id`

func ListCrew(ctx context.Context, db *sqlx.DB, areaID *int64) ([]models.Crew, error) {
	crew := []models.Crew{}
	query := crewSelect
	args := []interface{}{}
	if areaID != nil {
		query += ` WHERE cr.area_id = ?`
		args = append(args, *areaID)
	}
	query += ` ORDER BY cr.crew_id DESC`

	if err := db.SelectContext(ctx, &crew, db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list crew: %w", err)
	}
	return crew, nil
}

func GetCrew(ctx context.Context, db *sqlx.DB, id int64) (*models.Crew, error) {
	var member models.Crew
	if err := getOne(ctx, db, &member, "Crew", crewSelect+` WHERE cr.crew_id = ?`, id); err != nil {
		return nil, err
	}
	return &member, nil
}

func CreateCrew(ctx context.Context, db *sqlx.DB, req models.CreateCrewRequest, defaults CrewDefaults) (int64, error) {
	areaID := int64(req.AreaID)
	if err := checkReferences(ctx, db, areaRef(areaID)); err != nil {
		return 0, err
	}

	scheduleID := req.ScheduleID.Int64(0)
	if scheduleID == 0 {
		var err error
		if scheduleID, err = firstID(ctx, db,
			`SELECT schedule_id FROM collection_schedules WHERE area_id = ? ORDER BY schedule_id ASC LIMIT 1`,
			areaID, defaults.ScheduleID,
		); err != nil {
			return 0, fmt.Errorf("failed to resolve schedule: %w", err)
		}
	}

	teamID := req.TeamID.Int64(0)
	if teamID == 0 {
		var err error
		if teamID, err = firstID(ctx, db,
			`SELECT team_id FROM crew WHERE area_id = ? ORDER BY crew_id ASC LIMIT 1`,
			areaID, defaults.TeamID,
		); err != nil {
			return 0, fmt.Errorf("failed to resolve team: %w", err)
		}
	}

	id, err := insertReturningID(ctx, db,
		`INSERT INTO crew (crew_name, contact, area_id, schedule_id, team_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?) RETURNING crew_id`,
		req.CrewName, req.Contact, areaID, scheduleID, teamID, time.Now().Unix(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create crew: %w", err)
	}
	return id, nil
}

// UpdateCrew always replaces name and contact; ids change only when supplied
func UpdateCrew(ctx context.Context, db *sqlx.DB, id int64, req models.UpdateCrewRequest) error {
	query := `UPDATE crew SET crew_name = ?, contact = ?`
	args := []interface{}{req.CrewName, req.Contact}

	if areaID := req.AreaID.Int64(0); areaID != 0 {
		if err := checkReferences(ctx, db, areaRef(areaID)); err != nil {
			return err
		}
		query += `, area_id = ?`
		args = append(args, areaID)
	}
	if scheduleID := req.ScheduleID.Int64(0); scheduleID != 0 {
		query += `, schedule_id = ?`
		args = append(args, scheduleID)
	}
	if teamID := req.TeamID.Int64(0); teamID != 0 {
		query += `, team_id = ?`
		args = append(args, teamID)
	}

	query += ` WHERE crew_id = ?`
	args = append(args, id)

	return execAffecting(ctx, db, "Crew", query, args...)
}

func DeleteCrew(ctx context.Context, db *sqlx.DB, id int64) error {
	if _, err := db.ExecContext(ctx, db.Rebind(`DELETE FROM crew WHERE crew_id = ?`), id); err != nil {
		return fmt.Errorf("failed to delete crew: %w", err)
	}
	return nil
}

func firstID(ctx context.Context, db *sqlx.DB, query string, arg interface{}, fallback int64) (int64, error) {
	var id int64
	err := db.GetContext(ctx, &id, db.Rebind(query), arg)
	if errors.Is(err, sql.ErrNoRows) {
		return fallback, nil
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}
