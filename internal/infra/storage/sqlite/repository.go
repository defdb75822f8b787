// Package sqlite implements the storage contract on an embedded file
// database via mattn/go-sqlite3, used for local and single-machine
// deployments.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/fcja/agendamentos/internal/domain"
	"github.com/fcja/agendamentos/internal/infra/storage"
)

// squirrel with the default '?' placeholders sqlite expects
var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

var (
	visitorCols = []string{
		"id", "nome", "genero", "email", "telefone", "endereco",
		"COALESCE(qtd_pessoas, 1)", "data", "turno",
		"COALESCE(horario_chegada, '')", "COALESCE(duracao, '')", "COALESCE(observacao, '')",
	}
	schoolCols = []string{
		"id", "nome_escola", "representante", "email", "telefone", "endereco",
		"COALESCE(num_alunos, 0)", "data", "turno",
		"COALESCE(horario_chegada, '')", "COALESCE(duracao, '')", "COALESCE(observacao, '')",
	}
	institutionCols = []string{
		"id", "nome_ies", "representante", "email", "telefone", "endereco",
		"COALESCE(num_alunos, 0)", "data", "turno",
		"COALESCE(horario_chegada, '')", "COALESCE(duracao, '')", "COALESCE(observacao, '')",
	}
	researcherCols = []string{
		"id", "nome", "genero", "email", "telefone", "instituicao",
		"pesquisa", "data", "turno",
		"COALESCE(horario_chegada, '')", "COALESCE(duracao, '')", "COALESCE(observacao, '')",
	}
)

// Repository SQLite implementation of storage.Store
type Repository struct {
	db *sql.DB
}

// NewRepository wraps an open sqlite handle.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Close() error {
	return r.db.Close()
}

// InsertVisitor stores a visitor booking and returns it with the assigned id.
func (r *Repository) InsertVisitor(ctx context.Context, v *domain.Visitor) (*domain.Visitor, error) {
	query, args, err := qb.Insert("visitante").
		Columns("nome", "genero", "email", "telefone", "endereco", "qtd_pessoas",
			"data", "turno", "horario_chegada", "duracao", "observacao").
		Values(v.Name, v.Gender, v.Email, v.Phone, v.Address, v.PartySize,
			v.VisitDate, v.Shift, v.ArrivalTime, v.Duration, v.Notes).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: InsertVisitor - build insert: %v", ErrBuildQuery, err)
	}

	id, err := r.execInsert(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("%w: InsertVisitor - execute insert: %v", ErrExecQuery, err)
	}
	v.ID = id
	return v, nil
}

// InsertSchool stores a school booking and returns it with the assigned id.
func (r *Repository) InsertSchool(ctx context.Context, s *domain.School) (*domain.School, error) {
	query, args, err := qb.Insert("escola").
		Columns("nome_escola", "representante", "email", "telefone", "endereco", "num_alunos",
			"data", "turno", "horario_chegada", "duracao", "observacao").
		Values(s.SchoolName, s.Representative, s.Email, s.Phone, s.Address, s.StudentCount,
			s.VisitDate, s.Shift, s.ArrivalTime, s.Duration, s.Notes).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: InsertSchool - build insert: %v", ErrBuildQuery, err)
	}

	id, err := r.execInsert(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("%w: InsertSchool - execute insert: %v", ErrExecQuery, err)
	}
	s.ID = id
	return s, nil
}

// InsertInstitution stores a higher-education booking and returns it with the
// assigned id.
func (r *Repository) InsertInstitution(ctx context.Context, i *domain.Institution) (*domain.Institution, error) {
	query, args, err := qb.Insert("ies").
		Columns("nome_ies", "representante", "email", "telefone", "endereco", "num_alunos",
			"data", "turno", "horario_chegada", "duracao", "observacao").
		Values(i.InstitutionName, i.Representative, i.Email, i.Phone, i.Address, i.StudentCount,
			i.VisitDate, i.Shift, i.ArrivalTime, i.Duration, i.Notes).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: InsertInstitution - build insert: %v", ErrBuildQuery, err)
	}

	id, err := r.execInsert(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("%w: InsertInstitution - execute insert: %v", ErrExecQuery, err)
	}
	i.ID = id
	return i, nil
}

// InsertResearcher stores a researcher booking and returns it with the
// assigned id.
func (r *Repository) InsertResearcher(ctx context.Context, p *domain.Researcher) (*domain.Researcher, error) {
	query, args, err := qb.Insert("pesquisador").
		Columns("nome", "genero", "email", "telefone", "instituicao", "pesquisa",
			"data", "turno", "horario_chegada", "duracao", "observacao").
		Values(p.Name, p.Gender, p.Email, p.Phone, p.Institution, p.ResearchTopic,
			p.VisitDate, p.Shift, p.ArrivalTime, p.Duration, p.Notes).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: InsertResearcher - build insert: %v", ErrBuildQuery, err)
	}

	id, err := r.execInsert(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("%w: InsertResearcher - execute insert: %v", ErrExecQuery, err)
	}
	p.ID = id
	return p, nil
}

// ListVisitors lists visitor bookings per the filter ordering contract.
func (r *Repository) ListVisitors(ctx context.Context, f domain.ListFilter) ([]*domain.Visitor, error) {
	rows, err := r.queryList(ctx, domain.CategoryVisitor, visitorCols, f)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*domain.Visitor, 0)
	for rows.Next() {
		var v domain.Visitor
		if err := rows.Scan(&v.ID, &v.Name, &v.Gender, &v.Email, &v.Phone, &v.Address,
			&v.PartySize, &v.VisitDate, &v.Shift, &v.ArrivalTime, &v.Duration, &v.Notes); err != nil {
			return nil, fmt.Errorf("%w: ListVisitors - scan row: %v", ErrScanRow, err)
		}
		out = append(out, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListVisitors - rows error: %v", ErrScanRow, err)
	}
	return out, nil
}

// ListSchools lists school bookings per the filter ordering contract.
func (r *Repository) ListSchools(ctx context.Context, f domain.ListFilter) ([]*domain.School, error) {
	rows, err := r.queryList(ctx, domain.CategorySchool, schoolCols, f)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*domain.School, 0)
	for rows.Next() {
		var s domain.School
		if err := rows.Scan(&s.ID, &s.SchoolName, &s.Representative, &s.Email, &s.Phone, &s.Address,
			&s.StudentCount, &s.VisitDate, &s.Shift, &s.ArrivalTime, &s.Duration, &s.Notes); err != nil {
			return nil, fmt.Errorf("%w: ListSchools - scan row: %v", ErrScanRow, err)
		}
		out = append(out, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListSchools - rows error: %v", ErrScanRow, err)
	}
	return out, nil
}

// ListInstitutions lists higher-education bookings per the filter ordering
// contract.
func (r *Repository) ListInstitutions(ctx context.Context, f domain.ListFilter) ([]*domain.Institution, error) {
	rows, err := r.queryList(ctx, domain.CategoryInstitution, institutionCols, f)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*domain.Institution, 0)
	for rows.Next() {
		var i domain.Institution
		if err := rows.Scan(&i.ID, &i.InstitutionName, &i.Representative, &i.Email, &i.Phone, &i.Address,
			&i.StudentCount, &i.VisitDate, &i.Shift, &i.ArrivalTime, &i.Duration, &i.Notes); err != nil {
			return nil, fmt.Errorf("%w: ListInstitutions - scan row: %v", ErrScanRow, err)
		}
		out = append(out, &i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListInstitutions - rows error: %v", ErrScanRow, err)
	}
	return out, nil
}

// ListResearchers lists researcher bookings per the filter ordering contract.
func (r *Repository) ListResearchers(ctx context.Context, f domain.ListFilter) ([]*domain.Researcher, error) {
	rows, err := r.queryList(ctx, domain.CategoryResearcher, researcherCols, f)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*domain.Researcher, 0)
	for rows.Next() {
		var p domain.Researcher
		if err := rows.Scan(&p.ID, &p.Name, &p.Gender, &p.Email, &p.Phone, &p.Institution,
			&p.ResearchTopic, &p.VisitDate, &p.Shift, &p.ArrivalTime, &p.Duration, &p.Notes); err != nil {
			return nil, fmt.Errorf("%w: ListResearchers - scan row: %v", ErrScanRow, err)
		}
		out = append(out, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListResearchers - rows error: %v", ErrScanRow, err)
	}
	return out, nil
}

// CountByDateRange counts rows with data between start and end, inclusive.
func (r *Repository) CountByDateRange(ctx context.Context, cat domain.Category, start, end time.Time) (int64, error) {
	query, args, err := qb.Select("COUNT(*)").
		From(cat.Table()).
		Where(squirrel.GtOrEq{"data": start.Format(domain.DateFormat)}).
		Where(squirrel.LtOrEq{"data": end.Format(domain.DateFormat)}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountByDateRange - build query: %v", ErrBuildQuery, err)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: CountByDateRange - execute query: %v", ErrExecQuery, err)
	}
	return total, nil
}

// CountByShift splits rows of one exact date by shift value.
func (r *Repository) CountByShift(ctx context.Context, cat domain.Category, date time.Time) (int64, int64, error) {
	morning, err := r.countShift(ctx, cat, date, domain.ShiftMorning)
	if err != nil {
		return 0, 0, err
	}
	afternoon, err := r.countShift(ctx, cat, date, domain.ShiftAfternoon)
	if err != nil {
		return 0, 0, err
	}
	return morning, afternoon, nil
}

func (r *Repository) countShift(ctx context.Context, cat domain.Category, date time.Time, shift domain.Shift) (int64, error) {
	query, args, err := qb.Select("COUNT(*)").
		From(cat.Table()).
		Where(squirrel.Eq{"data": date.Format(domain.DateFormat), "turno": shift}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: countShift - build query: %v", ErrBuildQuery, err)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: countShift - execute query: %v", ErrExecQuery, err)
	}
	return total, nil
}

// GetActiveUser fetches an active operator account by username.
func (r *Repository) GetActiveUser(ctx context.Context, username string) (*domain.User, error) {
	query, args, err := qb.Select("id", "username", "password", "ativo").
		From("usuarios").
		Where(squirrel.Eq{"username": username, "ativo": 1}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveUser - build query: %v", ErrBuildQuery, err)
	}

	var (
		u     domain.User
		ativo int
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&u.ID, &u.Username, &u.PasswordHash, &ativo)
	if err == sql.ErrNoRows {
		return nil, storage.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveUser - scan row: %v", ErrScanRow, err)
	}
	u.Active = ativo != 0
	return &u, nil
}

// ListUsers lists every operator account, newest first.
func (r *Repository) ListUsers(ctx context.Context) ([]*domain.User, error) {
	query, args, err := qb.Select("id", "username", "password", "ativo").
		From("usuarios").
		OrderBy("id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListUsers - build query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListUsers - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	out := make([]*domain.User, 0)
	for rows.Next() {
		var (
			u     domain.User
			ativo int
		)
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &ativo); err != nil {
			return nil, fmt.Errorf("%w: ListUsers - scan row: %v", ErrScanRow, err)
		}
		u.Active = ativo != 0
		out = append(out, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListUsers - rows error: %v", ErrScanRow, err)
	}
	return out, nil
}

// CreateUser stores a new operator account with an already-hashed password.
func (r *Repository) CreateUser(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	query, args, err := qb.Insert("usuarios").
		Columns("username", "password", "ativo").
		Values(username, passwordHash, 1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateUser - build insert: %v", ErrBuildQuery, err)
	}

	id, err := r.execInsert(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateUser - execute insert: %v", ErrExecQuery, err)
	}
	return &domain.User{ID: id, Username: username, PasswordHash: passwordHash, Active: true}, nil
}

// execInsert runs an insert and returns the sqlite rowid.
func (r *Repository) execInsert(ctx context.Context, query string, args []interface{}) (int64, error) {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// queryList builds and runs a filtered category listing. Free-text search is
// lowered on both sides because sqlite's LIKE is only case-insensitive for
// ASCII by default.
func (r *Repository) queryList(ctx context.Context, cat domain.Category, cols []string, f domain.ListFilter) (*sql.Rows, error) {
	builder := qb.Select(cols...).From(cat.Table())

	if f.Search != "" {
		pattern := "%" + strings.ToLower(f.Search) + "%"
		or := squirrel.Or{}
		for _, col := range domain.SearchColumns[cat] {
			or = append(or, squirrel.Like{"lower(" + col + ")": pattern})
		}
		builder = builder.Where(or)
	}
	if f.StartDate != nil {
		builder = builder.Where(squirrel.GtOrEq{"data": f.StartDate.Format(domain.DateFormat)})
	}
	if f.EndDate != nil {
		builder = builder.Where(squirrel.LtOrEq{"data": f.EndDate.Format(domain.DateFormat)})
	}

	if f.HasDateBound() {
		builder = builder.OrderBy("data DESC", "id DESC")
	} else {
		builder = builder.OrderBy("id DESC")
	}
	builder = builder.Limit(f.EffectiveLimit())

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: queryList - build query: %v", ErrBuildQuery, err)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: queryList - execute query: %v", ErrExecQuery, err)
	}
	return rows, nil
}
