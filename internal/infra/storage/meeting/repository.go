package meeting

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
	"github.com/m04kA/SMC-MeetingRoomService/pkg/dbmetrics"
	"github.com/m04kA/SMC-MeetingRoomService/pkg/psqlbuilder"
)

var meetingColumns = []string{
	"id",
	"calendar",
	"start_at",
	"end_at",
	"client_name",
	"phone",
	"reason",
	"assigned_by",
	"title",
	"notes",
	"equipment",
	"owner_id",
	"support_status",
	"support_notes",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронями переговорных
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория броней
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create вставляет новую бронь. ID генерируется на уровне сервиса.
// Если в контексте передана активная транзакция, использует её.
func (r *Repository) Create(ctx context.Context, m *domain.Meeting) (*domain.Meeting, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("meetings").
		Columns(
			"id",
			"calendar",
			"start_at",
			"end_at",
			"client_name",
			"phone",
			"reason",
			"assigned_by",
			"title",
			"notes",
			"equipment",
			"owner_id",
			"support_status",
			"support_notes",
		).
		Values(
			m.ID,
			m.Calendar,
			m.Start,
			m.End,
			m.ClientName,
			m.Phone,
			m.Reason,
			m.AssignedBy,
			m.Title,
			m.Notes,
			pq.Array(equipmentStrings(m.Equipment)),
			m.OwnerID,
			m.SupportStatus,
			m.SupportNotes,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	m.CreatedAt = createdAt.Time
	m.UpdatedAt = updatedAt.Time

	return m, nil
}

// Update полностью заменяет поля существующей брони по id
func (r *Repository) Update(ctx context.Context, m *domain.Meeting) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("meetings").
		Set("calendar", m.Calendar).
		Set("start_at", m.Start).
		Set("end_at", m.End).
		Set("client_name", m.ClientName).
		Set("phone", m.Phone).
		Set("reason", m.Reason).
		Set("assigned_by", m.AssignedBy).
		Set("title", m.Title).
		Set("notes", m.Notes).
		Set("equipment", pq.Array(equipmentStrings(m.Equipment))).
		Set("owner_id", m.OwnerID).
		Set("support_status", m.SupportStatus).
		Set("support_notes", m.SupportNotes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": m.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrMeetingNotFound
	}

	return nil
}

// GetByID получает бронь по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Meeting, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(meetingColumns...).
		From("meetings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	m, err := scanMeeting(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrMeetingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan meeting: %v", ErrScanRow, err)
	}

	return m, nil
}

// ListByRoom получает все брони комнаты по возрастанию времени начала.
// Внутри транзакции добавляет FOR UPDATE - этим пользуется usecase
// сохранения, чтобы проверка пересечений и запись были атомарны.
func (r *Repository) ListByRoom(ctx context.Context, room domain.RoomKey) ([]*domain.Meeting, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(meetingColumns...).
		From("meetings").
		Where(squirrel.Eq{"calendar": room}).
		OrderBy("start_at ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByRoom - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByRoom - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanMeetings(rows)
}

// ListRequiringSupport получает брони с непустым оборудованием,
// которые ещё не закончились к filter.NotEndedBefore, по возрастанию начала.
// Используется дашбордом поддержки.
func (r *Repository) ListRequiringSupport(ctx context.Context, filter domain.SupportFilter) ([]*domain.Meeting, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(meetingColumns...).
		From("meetings").
		Where("cardinality(equipment) > 0").
		Where(squirrel.GtOrEq{"end_at": filter.NotEndedBefore}).
		OrderBy("start_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListRequiringSupport - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRequiringSupport - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanMeetings(rows)
}

// Delete удаляет бронь по id
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("meetings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrMeetingNotFound
	}

	return nil
}

// scanMeeting сканирует одну строку в модель брони
func scanMeeting(scan func(dest ...interface{}) error) (*domain.Meeting, error) {
	var m domain.Meeting
	var equipment []string
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&m.ID,
		&m.Calendar,
		&m.Start,
		&m.End,
		&m.ClientName,
		&m.Phone,
		&m.Reason,
		&m.AssignedBy,
		&m.Title,
		&m.Notes,
		pq.Array(&equipment),
		&m.OwnerID,
		&m.SupportStatus,
		&m.SupportNotes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	m.Equipment = equipmentValues(equipment)
	m.CreatedAt = createdAt.Time
	m.UpdatedAt = updatedAt.Time

	return &m, nil
}

// scanMeetings сканирует результаты запроса в слайс броней
func scanMeetings(rows *sql.Rows) ([]*domain.Meeting, error) {
	meetings := make([]*domain.Meeting, 0)

	for rows.Next() {
		m, err := scanMeeting(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: scanMeetings - scan row: %v", ErrScanRow, err)
		}
		meetings = append(meetings, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanMeetings - rows error: %v", ErrScanRow, err)
	}

	return meetings, nil
}

func equipmentStrings(items []domain.Equipment) []string {
	out := make([]string, len(items))
	for i, e := range items {
		out[i] = string(e)
	}
	return out
}

func equipmentValues(items []string) []domain.Equipment {
	out := make([]domain.Equipment, len(items))
	for i, e := range items {
		out[i] = domain.Equipment(e)
	}
	return out
}
