package storage

import (
	"context"
	"fmt"
	"photo-portfolio/internal/models"
	"photo-portfolio/internal/utils"
	"time"

	"github.com/avct/uasurfer"
)

// RecordLoginAttempt appends an entry to the login audit log.
func (p *DatabaseProvider) RecordLoginAttempt(ctx context.Context, ipAddress, rawUserAgent string, userAgent uasurfer.UserAgent, succeeded bool) error {
	query := `
		INSERT INTO login_attempts (ip_address, user_agent, browser_name, browser_version, os_name, os_version, device_type, succeeded, attempted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, CURRENT_TIMESTAMP)
	`

	result, err := p.pool.Exec(ctx, query,
		ipAddress, rawUserAgent,
		userAgent.Browser.Name.String(),
		nullIfEmpty(utils.UserAgentVersionToString(userAgent.Browser.Version)),
		userAgent.OS.Name.String(),
		nullIfEmpty(utils.UserAgentVersionToString(userAgent.OS.Version)),
		userAgent.DeviceType.String(),
		succeeded,
	)
	if err != nil {
		return fmt.Errorf("failed to insert login attempt: %w", err)
	}
	if result.RowsAffected() != 1 {
		return fmt.Errorf("failed to insert login attempt: %d rows inserted", result.RowsAffected())
	}

	return nil
}

func (p *DatabaseProvider) PruneLoginAttempts(ctx context.Context, before time.Time) (int64, error) {
	query := `DELETE FROM login_attempts WHERE attempted_at < $1`

	result, err := p.pool.Exec(ctx, query, before)
	if err != nil {
		return 0, fmt.Errorf("failed to prune login attempts: %w", err)
	}

	return result.RowsAffected(), nil
}

func (p *DatabaseProvider) ListLoginAttempts(ctx context.Context, limit int) ([]*models.LoginAttempt, error) {
	query := `
		SELECT id, ip_address, user_agent,
			COALESCE(browser_name, ''), COALESCE(browser_version, ''),
			COALESCE(os_name, ''), COALESCE(os_version, ''), COALESCE(device_type, ''),
			succeeded, attempted_at
		FROM login_attempts
		ORDER BY attempted_at DESC, id DESC
		LIMIT $1
	`

	rows, err := p.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query login attempts: %w", err)
	}
	defer rows.Close()

	attempts := make([]*models.LoginAttempt, 0)
	for rows.Next() {
		var a models.LoginAttempt
		err := rows.Scan(
			&a.ID,
			&a.IPAddress,
			&a.UserAgent,
			&a.BrowserName,
			&a.BrowserVersion,
			&a.OSName,
			&a.OSVersion,
			&a.DeviceType,
			&a.Succeeded,
			&a.AttemptedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan login attempt: %w", err)
		}
		attempts = append(attempts, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate login attempts: %w", err)
	}

	return attempts, nil
}
