package repos

import (
	"finanzas/internal/domain"

	"github.com/jmoiron/sqlx"
)

type UserRepo struct{ DB *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{DB: db} }

func (r *UserRepo) ByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT id,email,name,password_hash,role FROM users WHERE LOWER(email)=LOWER(?)`, email)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) ByID(id string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT id,email,name,password_hash,role FROM users WHERE id=?`, id)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user row (signup path; role is always 'user' there).
func (r *UserRepo) Create(u *domain.User) error {
	_, err := r.DB.Exec(`
		INSERT INTO users(id,email,name,password_hash,role)
		VALUES(?,?,?,?,?)`, u.ID, u.Email, u.Name, u.Hash, u.Role)
	return err
}

// List returns every user projected without secrets, ordered by name.
func (r *UserRepo) List() ([]domain.UserProjection, error) {
	out := []domain.UserProjection{}
	err := r.DB.Select(&out, `SELECT id,name,email,role FROM users ORDER BY name ASC`)
	return out, err
}

func (r *UserRepo) Projection(id string) (*domain.UserProjection, error) {
	var p domain.UserProjection
	err := r.DB.Get(&p, `SELECT id,name,email,role FROM users WHERE id=?`, id)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateNameRole applies an admin edit and returns the stored projection.
func (r *UserRepo) UpdateNameRole(id, name, role string) (*domain.UserProjection, error) {
	if _, err := r.DB.Exec(`UPDATE users SET name=?,role=?,updated_at=CURRENT_TIMESTAMP WHERE id=?`, name, role, id); err != nil {
		return nil, err
	}
	return r.Projection(id)
}

// UpdateNameEmail applies a self-service profile edit.
func (r *UserRepo) UpdateNameEmail(id, name, email string) (*domain.UserProjection, error) {
	if _, err := r.DB.Exec(`UPDATE users SET name=?,email=?,updated_at=CURRENT_TIMESTAMP WHERE id=?`, name, email, id); err != nil {
		return nil, err
	}
	return r.Projection(id)
}

func (r *UserRepo) BindSession(sid, userID string) error {
	_, err := r.DB.Exec(`INSERT INTO sessions(id,user_id,last_seen)
                          VALUES(?,?,CURRENT_TIMESTAMP)
                          ON CONFLICT(id) DO UPDATE SET user_id=excluded.user_id,last_seen=CURRENT_TIMESTAMP`, sid, userID)
	return err
}

func (r *UserRepo) SessionUser(sid string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `
      SELECT u.id,u.email,u.name,u.password_hash,u.role
      FROM sessions s
      JOIN users u ON u.id=s.user_id
      WHERE s.id=?`, sid)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) UnbindSession(sid string) error {
	_, err := r.DB.Exec(`UPDATE sessions SET user_id=NULL,last_seen=CURRENT_TIMESTAMP WHERE id=?`, sid)
	return err
}
