package repo

import (
	"context"
	"database/sql"
	"time"
)

type Profile struct {
	ID          int    `json:"id"`
	Login       string `json:"login"`
	Email       string `json:"email"`
	Description string `json:"description"`
	AvatarURL   string `json:"avatar_url"`
}

// Analysis is one saved slope run: echoed input plus the critical circle.
type Analysis struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	InputJSON string    `json:"input_json"`
	Found     bool      `json:"found"`
	FS        float64   `json:"fs"`
	XcM       float64   `json:"xc_m"`
	YcM       float64   `json:"yc_m"`
	RM        float64   `json:"r_m"`
	CreatedAt time.Time `json:"created_at"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetBylogin(ctx context.Context, login string) (int, string, error)
	GetProfileByID(ctx context.Context, id int) (Profile, error)
	UpdateProfile(ctx context.Context, id int, login, description string) (Profile, error)
	UpdateAvatar(ctx context.Context, id int, avatarURL string) error
	SaveAnalysis(ctx context.Context, a Analysis) (int, error)
	ListAnalyses(ctx context.Context, userID, limit int) ([]Analysis, error)
}

type PostgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserDB(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresUserRepository) GetBylogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresUserRepository) GetProfileByID(ctx context.Context, id int) (Profile, error) {
	var p Profile
	query := "SELECT id, login, email, COALESCE(description, ''), COALESCE(avatar_url, '') FROM users WHERE id=$1"
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Login, &p.Email, &p.Description, &p.AvatarURL)
	return p, err
}

func (r *PostgresUserRepository) UpdateProfile(ctx context.Context, id int, login, description string) (Profile, error) {
	query := "UPDATE users SET login=$2, description=$3 WHERE id=$1"
	if _, err := r.db.ExecContext(ctx, query, id, login, description); err != nil {
		return Profile{}, err
	}
	return r.GetProfileByID(ctx, id)
}

func (r *PostgresUserRepository) UpdateAvatar(ctx context.Context, id int, avatarURL string) error {
	query := "UPDATE users SET avatar_url=$2 WHERE id=$1"
	_, err := r.db.ExecContext(ctx, query, id, avatarURL)
	return err
}

func (r *PostgresUserRepository) SaveAnalysis(ctx context.Context, a Analysis) (int, error) {
	var id int
	query := `INSERT INTO analyses (user_id, input_json, found, fs, xc_m, yc_m, r_m)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		a.UserID, a.InputJSON, a.Found, a.FS, a.XcM, a.YcM, a.RM).Scan(&id)
	return id, err
}

func (r *PostgresUserRepository) ListAnalyses(ctx context.Context, userID, limit int) ([]Analysis, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `SELECT id, user_id, input_json, found, fs, xc_m, yc_m, r_m, created_at
	          FROM analyses WHERE user_id=$1 ORDER BY created_at DESC LIMIT $2`
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Analysis
	for rows.Next() {
		var a Analysis
		if err := rows.Scan(&a.ID, &a.UserID, &a.InputJSON, &a.Found, &a.FS, &a.XcM, &a.YcM, &a.RM, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
