package catalog

import (
	"context"
	"fmt"

	"github.com/avdex/avdex/internal/gateway"
	"github.com/avdex/avdex/internal/media"
)

func (s *Store) queryLinks(ctx context.Context, rel gateway.Relation, byColumn string, ids []int64, limit int) ([]gateway.Link, error) {
	if rel.LinkTable() == "" {
		return nil, fmt.Errorf("relation %s has no link table", rel)
	}
	if len(ids) == 0 {
		return nil, nil
	}
	query := fmt.Sprintf(
		"SELECT video_id, %s FROM %s WHERE %s IN (%s) ORDER BY video_id, %s LIMIT ?",
		rel.LinkColumn(), rel.LinkTable(), byColumn, placeholders(len(ids)), rel.LinkColumn(),
	)
	args := append(int64Args(ids), limit)
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("links for %s: %w", rel, mapSQLiteError(err))
	}
	defer func() { _ = rows.Close() }()

	var out []gateway.Link
	for rows.Next() {
		var l gateway.Link
		if err := rows.Scan(&l.VideoID, &l.TargetID); err != nil {
			return nil, fmt.Errorf("scan link: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// LinksByVideo batch-loads membership rows for the given video ids.
func (s *Store) LinksByVideo(ctx context.Context, rel gateway.Relation, videoIDs []int64, limit int) ([]gateway.Link, error) {
	return s.queryLinks(ctx, rel, "video_id", videoIDs, limit)
}

// LinksByTarget batch-loads membership rows for the given target ids.
func (s *Store) LinksByTarget(ctx context.Context, rel gateway.Relation, targetIDs []int64, limit int) ([]gateway.Link, error) {
	return s.queryLinks(ctx, rel, rel.LinkColumn(), targetIDs, limit)
}

// Names resolves display names for the given lookup ids. Unknown ids
// are absent from the result.
func (s *Store) Names(ctx context.Context, rel gateway.Relation, ids []int64) (map[int64]string, error) {
	if len(ids) == 0 {
		return map[int64]string{}, nil
	}
	query := fmt.Sprintf(
		"SELECT %s, %s FROM %s WHERE %s IN (%s)",
		rel.IDColumn(), rel.NameColumn(), rel.Table(), rel.IDColumn(), placeholders(len(ids)),
	)
	rows, err := s.db.QueryContext(ctx, query, int64Args(ids)...)
	if err != nil {
		return nil, fmt.Errorf("names for %s: %w", rel, mapSQLiteError(err))
	}
	defer func() { _ = rows.Close() }()

	out := make(map[int64]string, len(ids))
	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("scan name: %w", err)
		}
		out[id] = name
	}
	return out, rows.Err()
}

// Options lists a lookup table's id+name rows, ordered by name.
func (s *Store) Options(ctx context.Context, rel gateway.Relation) ([]media.LookupOption, error) {
	query := fmt.Sprintf(
		"SELECT %s, %s FROM %s ORDER BY %s",
		rel.IDColumn(), rel.NameColumn(), rel.Table(), rel.NameColumn(),
	)
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("options for %s: %w", rel, mapSQLiteError(err))
	}
	defer func() { _ = rows.Close() }()

	var out []media.LookupOption
	for rows.Next() {
		var o media.LookupOption
		if err := rows.Scan(&o.ID, &o.Name); err != nil {
			return nil, fmt.Errorf("scan option: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// ReplaceLinks swaps the relation's membership rows for one video:
// delete all, then reinsert, in a single transaction.
func (s *Store) ReplaceLinks(ctx context.Context, rel gateway.Relation, videoID int64, targetIDs []int64) error {
	if rel.LinkTable() == "" {
		return fmt.Errorf("relation %s has no link table", rel)
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		fmt.Sprintf("DELETE FROM %s WHERE video_id = ?", rel.LinkTable()), videoID,
	); err != nil {
		return fmt.Errorf("clear links for %s: %w", rel, mapSQLiteError(err))
	}

	insert := fmt.Sprintf(
		"INSERT INTO %s (video_id, %s) VALUES (?, ?)",
		rel.LinkTable(), rel.LinkColumn(),
	)
	for _, id := range targetIDs {
		if _, err := tx.ExecContext(ctx, insert, videoID, id); err != nil {
			return fmt.Errorf("insert link %s=%d: %w", rel, id, mapSQLiteError(err))
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit links for %s: %w", rel, err)
	}
	return nil
}
