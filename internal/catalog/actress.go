package catalog

import (
	"context"
	"fmt"

	"github.com/avdex/avdex/internal/gateway"
	"github.com/avdex/avdex/internal/media"
)

const actressColumns = `actress_id, actress_name, date_of_birth, height, cup,
	personal_rate, personal_comment`

// FindActresses returns id+name refs whose name contains substr,
// case-insensitively.
func (s *Store) FindActresses(ctx context.Context, substr string, limit int) ([]media.ActressRef, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT actress_id, actress_name FROM actress WHERE instr(lower(actress_name), lower(?)) > 0 ORDER BY actress_id LIMIT ?",
		substr, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("find actresses: %w", mapSQLiteError(err))
	}
	defer func() { _ = rows.Close() }()

	var out []media.ActressRef
	for rows.Next() {
		var a media.ActressRef
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, fmt.Errorf("scan actress: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// ActressRefs batch-loads id+name+birth-date refs for the given ids.
func (s *Store) ActressRefs(ctx context.Context, ids []int64) ([]media.ActressRef, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := fmt.Sprintf(
		"SELECT actress_id, actress_name, date_of_birth FROM actress WHERE actress_id IN (%s) ORDER BY actress_id",
		placeholders(len(ids)),
	)
	rows, err := s.db.QueryContext(ctx, query, int64Args(ids)...)
	if err != nil {
		return nil, fmt.Errorf("actress refs: %w", mapSQLiteError(err))
	}
	defer func() { _ = rows.Close() }()

	var out []media.ActressRef
	for rows.Next() {
		var a media.ActressRef
		if err := rows.Scan(&a.ID, &a.Name, &a.DateOfBirth); err != nil {
			return nil, fmt.Errorf("scan actress ref: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// GetActress loads one full actress row.
func (s *Store) GetActress(ctx context.Context, id int64) (*media.Actress, error) {
	var a media.Actress
	err := s.db.QueryRowContext(ctx,
		fmt.Sprintf("SELECT %s FROM actress WHERE actress_id = ?", actressColumns), id,
	).Scan(&a.ID, &a.Name, &a.DateOfBirth, &a.Height, &a.Cup, &a.PersonalRate, &a.PersonalComment)
	if err != nil {
		return nil, fmt.Errorf("get actress %d: %w", id, mapSQLiteError(err))
	}
	return &a, nil
}

// InsertActress creates an actress row and sets its ID.
func (s *Store) InsertActress(ctx context.Context, a *media.Actress) error {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO actress (actress_name, date_of_birth, height, cup, personal_rate, personal_comment)
		VALUES (?, ?, ?, ?, ?, ?)`,
		a.Name, a.DateOfBirth, a.Height, a.Cup, a.PersonalRate, a.PersonalComment,
	)
	if err != nil {
		return fmt.Errorf("insert actress: %w", mapSQLiteError(err))
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}
	a.ID = id
	return nil
}

// UpdateActress rewrites an actress's scalar columns.
func (s *Store) UpdateActress(ctx context.Context, a *media.Actress) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE actress SET actress_name = ?, date_of_birth = ?, height = ?, cup = ?,
			personal_rate = ?, personal_comment = ?
		WHERE actress_id = ?`,
		a.Name, a.DateOfBirth, a.Height, a.Cup, a.PersonalRate, a.PersonalComment, a.ID,
	)
	if err != nil {
		return fmt.Errorf("update actress %d: %w", a.ID, mapSQLiteError(err))
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return gateway.ErrNotFound
	}
	return nil
}
