package sqlite

import (
	"context"
	"time"

	"github.com/lumenlab/whisperbox/internal/domain"
)

type accountsRepo struct {
	db dbtx
}

const accountColumns = `id, username, email, password_hash, verify_code,
	verify_code_expiry, verified, accepting_messages, created_at, updated_at`

func (r *accountsRepo) scanAccount(ctx context.Context, query string, args ...any) (domain.Account, error) {
	var a domain.Account
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&a.ID,
		&a.Username,
		&a.Email,
		&a.PasswordHash,
		&a.VerifyCode,
		&a.VerifyCodeExpiry,
		&a.Verified,
		&a.AcceptingMessages,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return domain.Account{}, mapNotFound(err)
	}
	return a, nil
}

func (r *accountsRepo) GetByID(ctx context.Context, id string) (domain.Account, error) {
	return r.scanAccount(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE id = ?`, id)
}

func (r *accountsRepo) GetByUsername(ctx context.Context, username string) (domain.Account, error) {
	return r.scanAccount(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE username = ?`, username)
}

func (r *accountsRepo) GetByEmail(ctx context.Context, email string) (domain.Account, error) {
	return r.scanAccount(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE email = ?`, email)
}

func (r *accountsRepo) GetByLogin(ctx context.Context, identifier string) (domain.Account, error) {
	return r.scanAccount(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE username = ? OR email = ?`,
		identifier, identifier)
}

func (r *accountsRepo) Create(ctx context.Context, a domain.Account) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO accounts (
			id, username, email, password_hash, verify_code,
			verify_code_expiry, verified, accepting_messages,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)`,
		a.ID,
		a.Username,
		a.Email,
		a.PasswordHash,
		a.VerifyCode,
		a.VerifyCodeExpiry,
		a.Verified,
		a.AcceptingMessages,
	)
	return mapConstraint(err)
}

func (r *accountsRepo) UpdateForResignup(
	ctx context.Context,
	accountID, passwordHash, code string,
	codeExpiry time.Time,
) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE accounts
		SET password_hash = ?, verify_code = ?, verify_code_expiry = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		passwordHash, code, codeExpiry, accountID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *accountsRepo) MarkVerified(ctx context.Context, accountID string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE accounts
		SET verified = 1, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		accountID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *accountsRepo) SetAcceptingMessages(ctx context.Context, accountID string, accepting bool) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE accounts
		SET accepting_messages = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		accepting, accountID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *accountsRepo) ClearVerifyCode(ctx context.Context, accountID string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE accounts
		SET verify_code = '', updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND verified = 1`,
		accountID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *accountsRepo) ScrubVerifiedCodes(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE accounts
		SET verify_code = '', updated_at = CURRENT_TIMESTAMP
		WHERE verified = 1 AND verify_code != ''`,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *accountsRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM accounts`).Scan(&count)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}
