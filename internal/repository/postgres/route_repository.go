package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/senda-infinita/internal/domain"
	"github.com/senda-infinita/internal/domain/repository"
	"github.com/senda-infinita/internal/pkg/errors"
	"go.uber.org/zap"
)

type routeRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewRouteRepository(db *DB) repository.RouteRepository {
	return &routeRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

const routeColumns = `
	id, title, slug, description, difficulty, distance_km, ascent_m, source,
	start_lat, start_lng, end_lat, end_lng, created_at, updated_at
`

func scanRoute(row interface{ Scan(...interface{}) error }) (*domain.Route, error) {
	var r domain.Route
	err := row.Scan(
		&r.ID, &r.Title, &r.Slug, &r.Description, &r.Difficulty,
		&r.DistanceKm, &r.AscentM, &r.Source,
		&r.StartLat, &r.StartLng, &r.EndLat, &r.EndLng,
		&r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *routeRepository) List(
	ctx context.Context,
	filter domain.RouteFilter,
	limit, offset int,
) ([]*domain.RouteSummary, int, error) {
	where := make([]string, 0, 2)
	args := make([]interface{}, 0, 4)
	argIdx := 1

	if filter.Q != "" {
		where = append(where, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", argIdx, argIdx))
		args = append(args, "%"+filter.Q+"%")
		argIdx++
	}
	if filter.Difficulty != "" {
		where = append(where, fmt.Sprintf("difficulty = $%d", argIdx))
		args = append(args, filter.Difficulty)
		argIdx++
	}

	whereClause := ""
	if len(where) > 0 {
		whereClause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM routes" + whereClause
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.logger.Error("Failed to count routes", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	query := fmt.Sprintf(`
		SELECT id, title, slug, description, distance_km, ascent_m, difficulty, source, created_at
		FROM routes%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, whereClause, argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to list routes", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}
	defer rows.Close()

	routes := make([]*domain.RouteSummary, 0, limit)
	for rows.Next() {
		var s domain.RouteSummary
		err := rows.Scan(
			&s.ID, &s.Title, &s.Slug, &s.Description,
			&s.DistanceKm, &s.AscentM, &s.Difficulty, &s.Source, &s.CreatedAt,
		)
		if err != nil {
			r.logger.Error("Failed to scan route summary", zap.Error(err))
			return nil, 0, errors.ErrDatabaseError
		}
		routes = append(routes, &s)
	}

	return routes, total, nil
}

func (r *routeRepository) ListAll(ctx context.Context) ([]*domain.Route, error) {
	query := "SELECT " + routeColumns + " FROM routes ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to list all routes", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	var routes []*domain.Route
	for rows.Next() {
		route, err := scanRoute(rows)
		if err != nil {
			r.logger.Error("Failed to scan route", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		routes = append(routes, route)
	}

	return routes, nil
}

func (r *routeRepository) GetByID(ctx context.Context, id int64) (*domain.Route, error) {
	query := "SELECT " + routeColumns + " FROM routes WHERE id = $1"

	route, err := scanRoute(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.ErrRouteNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get route by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return route, nil
}

func (r *routeRepository) GetBySlug(ctx context.Context, slug string) (*domain.Route, error) {
	query := "SELECT " + routeColumns + " FROM routes WHERE slug = $1"

	route, err := scanRoute(r.db.QueryRowContext(ctx, query, slug))
	if err == sql.ErrNoRows {
		return nil, errors.ErrRouteNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get route by slug", zap.String("slug", slug), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return route, nil
}

func (r *routeRepository) ListWaypoints(ctx context.Context, routeID int64) ([]domain.Waypoint, error) {
	query := `
		SELECT id, route_id, position, lat, lng, elevation
		FROM waypoints
		WHERE route_id = $1
		ORDER BY position ASC
	`

	rows, err := r.db.QueryContext(ctx, query, routeID)
	if err != nil {
		r.logger.Error("Failed to list waypoints", zap.Int64("route_id", routeID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	waypoints := make([]domain.Waypoint, 0)
	for rows.Next() {
		var w domain.Waypoint
		if err := rows.Scan(&w.ID, &w.RouteID, &w.Position, &w.Lat, &w.Lng, &w.Elevation); err != nil {
			r.logger.Error("Failed to scan waypoint", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		waypoints = append(waypoints, w)
	}

	return waypoints, nil
}

func (r *routeRepository) CreateWithWaypoints(
	ctx context.Context,
	route *domain.Route,
	waypoints []domain.Waypoint,
) (*domain.Route, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin import transaction", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer tx.Rollback()

	query := `
		INSERT INTO routes (
			title, slug, description, difficulty, distance_km, ascent_m, source,
			start_lat, start_lng, end_lat, end_lng
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + routeColumns

	created, err := scanRoute(tx.QueryRowContext(ctx, query,
		route.Title, route.Slug, route.Description, route.Difficulty,
		route.DistanceKm, route.AscentM, route.Source,
		route.StartLat, route.StartLng, route.EndLat, route.EndLng,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if stderrors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, errors.ErrSlugConflict
		}
		r.logger.Error("Failed to insert route", zap.String("slug", route.Slug), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	if len(waypoints) > 0 {
		rows := make([]map[string]interface{}, 0, len(waypoints))
		for _, w := range waypoints {
			rows = append(rows, map[string]interface{}{
				"route_id":  created.ID,
				"position":  w.Position,
				"lat":       w.Lat,
				"lng":       w.Lng,
				"elevation": w.Elevation,
			})
		}

		_, err = tx.NamedExecContext(ctx, `
			INSERT INTO waypoints (route_id, position, lat, lng, elevation)
			VALUES (:route_id, :position, :lat, :lng, :elevation)
		`, rows)
		if err != nil {
			r.logger.Error("Failed to insert waypoints",
				zap.Int64("route_id", created.ID),
				zap.Int("count", len(waypoints)),
				zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit import transaction", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return created, nil
}

func (r *routeRepository) Update(ctx context.Context, id int64, patch domain.RoutePatch) (*domain.Route, error) {
	set := make([]string, 0, 10)
	args := make([]interface{}, 0, 11)
	argIdx := 1

	add := func(column string, value interface{}) {
		set = append(set, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Slug != nil {
		add("slug", *patch.Slug)
	}
	if patch.Description != nil {
		if *patch.Description == "" {
			set = append(set, "description = NULL")
		} else {
			add("description", *patch.Description)
		}
	}
	if patch.Difficulty != nil {
		add("difficulty", *patch.Difficulty)
	}
	if patch.DistanceKm != nil {
		add("distance_km", *patch.DistanceKm)
	}
	if patch.AscentM != nil {
		add("ascent_m", *patch.AscentM)
	}
	if patch.StartLat != nil {
		add("start_lat", *patch.StartLat)
	}
	if patch.StartLng != nil {
		add("start_lng", *patch.StartLng)
	}
	if patch.EndLat != nil {
		add("end_lat", *patch.EndLat)
	}
	if patch.EndLng != nil {
		add("end_lng", *patch.EndLng)
	}

	set = append(set, "updated_at = NOW()")

	query := fmt.Sprintf(
		"UPDATE routes SET %s WHERE id = $%d RETURNING %s",
		strings.Join(set, ", "), argIdx, routeColumns,
	)
	args = append(args, id)

	route, err := scanRoute(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, errors.ErrRouteNotFound
	}
	if err != nil {
		var pgErr *pgconn.PgError
		if stderrors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, errors.ErrSlugConflict
		}
		r.logger.Error("Failed to update route", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return route, nil
}

// Delete removes the route and every dependent row, children first, in one
// transaction so readers never observe a partially deleted route.
func (r *routeRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin delete transaction", zap.Error(err))
		return errors.ErrDatabaseError
	}
	defer tx.Rollback()

	for _, stmt := range []string{
		"DELETE FROM favorites WHERE route_id = $1",
		"DELETE FROM reviews WHERE route_id = $1",
		"DELETE FROM photos WHERE route_id = $1",
		"DELETE FROM waypoints WHERE route_id = $1",
	} {
		if _, err := tx.ExecContext(ctx, stmt, id); err != nil {
			r.logger.Error("Failed to delete route children", zap.Int64("id", id), zap.Error(err))
			return errors.ErrDatabaseError
		}
	}

	result, err := tx.ExecContext(ctx, "DELETE FROM routes WHERE id = $1", id)
	if err != nil {
		r.logger.Error("Failed to delete route", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("Failed to read delete result", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrRouteNotFound
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit delete transaction", zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}
