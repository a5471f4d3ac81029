package sqlite

import (
	"context"
	"database/sql"

	"github.com/lumenlab/whisperbox/internal/domain"
	"github.com/lumenlab/whisperbox/internal/store"
)

type messagesRepo struct {
	db dbtx
}

func (r *messagesRepo) Append(ctx context.Context, m domain.Message) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO messages (id, account_id, content, created_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)`,
		m.ID, m.AccountID, m.Content,
	)
	return mapConstraint(err)
}

func (r *messagesRepo) ListByAccount(ctx context.Context, accountID string) ([]domain.Message, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, account_id, content, created_at
		FROM messages
		WHERE account_id = ?
		ORDER BY created_at DESC, id DESC`,
		accountID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Message
	for rows.Next() {
		var m domain.Message
		if err := rows.Scan(&m.ID, &m.AccountID, &m.Content, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *messagesRepo) Delete(ctx context.Context, accountID, messageID string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM messages WHERE id = ? AND account_id = ?`,
		messageID, accountID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *messagesRepo) CountByAccount(ctx context.Context, accountID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM messages WHERE account_id = ?`, accountID,
	).Scan(&count)
	return count, err
}

// requireRow converts a zero-row UPDATE/DELETE into store.ErrNotFound.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
