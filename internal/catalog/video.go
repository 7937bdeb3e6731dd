package catalog

import (
	"context"
	"fmt"

	"github.com/avdex/avdex/internal/gateway"
	"github.com/avdex/avdex/internal/media"
)

const videoColumns = `video_id, video_name, content_id, publish_date, censored, has_special,
	publisher_id, length, video_personal_rate, personal_sex_rate,
	overall_actress_personal_rate, personal_acting_rate, personal_voice_rate,
	storyline, special, personal_comment`

func scanVideo(row interface{ Scan(...any) error }) (media.Video, error) {
	var v media.Video
	err := row.Scan(
		&v.ID, &v.Name, &v.ContentID, &v.PublishDate, &v.Censored, &v.HasSpecial,
		&v.PublisherID, &v.Length, &v.Rates.Video, &v.Rates.Sex,
		&v.Rates.Actress, &v.Rates.Acting, &v.Rates.Voice,
		&v.Storyline, &v.Special, &v.PersonalComment,
	)
	return v, err
}

func queryVideos(ctx context.Context, q querier, query string, args ...any) ([]media.Video, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapSQLiteError(err)
	}
	defer func() { _ = rows.Close() }()

	var out []media.Video
	for rows.Next() {
		v, err := scanVideo(rows)
		if err != nil {
			return nil, fmt.Errorf("scan video: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// FindVideos returns videos whose selected text column contains substr,
// case-insensitively, ordered by id for deterministic assembly.
func (s *Store) FindVideos(ctx context.Context, col gateway.VideoTextColumn, substr string, limit int) ([]media.Video, error) {
	column := "video_name"
	if col == gateway.VideoByCode {
		column = "content_id"
	}
	// instr avoids LIKE wildcard injection from user-typed queries
	query := fmt.Sprintf(
		"SELECT %s FROM video WHERE %s IS NOT NULL AND instr(lower(%s), lower(?)) > 0 ORDER BY video_id LIMIT ?",
		videoColumns, column, column,
	)
	videos, err := queryVideos(ctx, s.db, query, substr, limit)
	if err != nil {
		return nil, fmt.Errorf("find videos by %s: %w", column, err)
	}
	return videos, nil
}

// VideosByID batch-loads videos for the given id set.
func (s *Store) VideosByID(ctx context.Context, ids []int64, limit int) ([]media.Video, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := fmt.Sprintf(
		"SELECT %s FROM video WHERE video_id IN (%s) ORDER BY video_id LIMIT ?",
		videoColumns, placeholders(len(ids)),
	)
	args := append(int64Args(ids), limit)
	videos, err := queryVideos(ctx, s.db, query, args...)
	if err != nil {
		return nil, fmt.Errorf("videos by id: %w", err)
	}
	return videos, nil
}

// GetVideo loads one full video row.
func (s *Store) GetVideo(ctx context.Context, id int64) (*media.Video, error) {
	query := fmt.Sprintf("SELECT %s FROM video WHERE video_id = ?", videoColumns)
	v, err := scanVideo(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get video %d: %w", id, mapSQLiteError(err))
	}
	return &v, nil
}

// InsertVideo creates a video row and sets its ID.
func (s *Store) InsertVideo(ctx context.Context, v *media.Video) error {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO video (video_name, content_id, publish_date, censored, has_special,
			publisher_id, length, video_personal_rate, personal_sex_rate,
			overall_actress_personal_rate, personal_acting_rate, personal_voice_rate,
			storyline, special, personal_comment)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		v.Name, v.ContentID, v.PublishDate, v.Censored, v.HasSpecial,
		v.PublisherID, v.Length, v.Rates.Video, v.Rates.Sex,
		v.Rates.Actress, v.Rates.Acting, v.Rates.Voice,
		v.Storyline, v.Special, v.PersonalComment,
	)
	if err != nil {
		return fmt.Errorf("insert video: %w", mapSQLiteError(err))
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}
	v.ID = id
	return nil
}

// UpdateVideo rewrites a video's scalar columns.
func (s *Store) UpdateVideo(ctx context.Context, v *media.Video) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE video SET video_name = ?, content_id = ?, publish_date = ?, censored = ?,
			has_special = ?, publisher_id = ?, length = ?, video_personal_rate = ?,
			personal_sex_rate = ?, overall_actress_personal_rate = ?,
			personal_acting_rate = ?, personal_voice_rate = ?,
			storyline = ?, special = ?, personal_comment = ?
		WHERE video_id = ?`,
		v.Name, v.ContentID, v.PublishDate, v.Censored,
		v.HasSpecial, v.PublisherID, v.Length, v.Rates.Video,
		v.Rates.Sex, v.Rates.Actress,
		v.Rates.Acting, v.Rates.Voice,
		v.Storyline, v.Special, v.PersonalComment,
		v.ID,
	)
	if err != nil {
		return fmt.Errorf("update video %d: %w", v.ID, mapSQLiteError(err))
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
