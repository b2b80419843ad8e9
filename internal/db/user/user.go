package user

import (
	"context"
	"errors"
	c "finschool/internal/core/domain/common"
	e "finschool/internal/core/domain/errors"
	"finschool/internal/core/domain/user"
	"finschool/internal/db"
	"strings"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

const PG_UNIQUE_CONSTRAINT_ERR_CODE = "23505"
const LOGIN_CONSTRAINT_NAME = "user_login_idx"
const EMAIL_CONSTRAINT_NAME = "user_email_idx"

const userColumns = `id, name, surname, login, email, password_hash, is_admin, registered_at`

func prefixedUserColumns(alias string) string {
	cols := strings.Split(userColumns, ", ")
	for ix, col := range cols {
		cols[ix] = alias + "." + col
	}
	return strings.Join(cols, ", ")
}

type PgxUserRepository struct {
	db db.Querier
}

func NewPgxRepository(db db.Querier) *PgxUserRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxUserRepository{db: db}
}

func (r *PgxUserRepository) Create(ctx context.Context, input user.CreateUserInput) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO "user" (name, surname, login, email, password_hash, is_admin, registered_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+userColumns,
		input.Name,
		input.Surname,
		string(input.Login),
		string(input.Email),
		string(input.PasswordHash),
		input.IsAdmin,
		input.RegisteredAt,
	)
	u, err = scanUser(row)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == PG_UNIQUE_CONSTRAINT_ERR_CODE {
		switch pgErr.ConstraintName {
		case LOGIN_CONSTRAINT_NAME:
			return u, user.ErrLoginAlreadyExists
		case EMAIL_CONSTRAINT_NAME:
			return u, user.ErrEmailAlreadyExists
		}
	}
	if err != nil {
		return u, err
	}
	if err := u.Validate(); err != nil {
		return u, err
	}
	return u, nil
}

func (r *PgxUserRepository) GetByID(ctx context.Context, id user.ID) (u user.User, err error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM "user" WHERE id = $1`, int64(id))
	return r.getOne(row)
}

func (r *PgxUserRepository) GetByLogin(ctx context.Context, login user.Login) (u user.User, err error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM "user" WHERE login = $1`, string(login))
	return r.getOne(row)
}

func (r *PgxUserRepository) GetByEmail(ctx context.Context, email c.Email) (u user.User, err error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM "user" WHERE email = $1`, string(email))
	return r.getOne(row)
}

func (r *PgxUserRepository) List(ctx context.Context) ([]user.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM "user" ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]user.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *PgxUserRepository) SetPassword(ctx context.Context, id user.ID, password user.PasswordHash) error {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE "user" SET password_hash = $1 WHERE id = $2`,
		string(password),
		int64(id),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserDoesNotExist
	}
	return nil
}

func (r *PgxUserRepository) Delete(ctx context.Context, id user.ID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM "user" WHERE id = $1`, int64(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserDoesNotExist
	}
	return nil
}

func (r *PgxUserRepository) getOne(row pgx.Row) (u user.User, err error) {
	u, err = scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	if err != nil {
		return u, err
	}
	if err := u.Validate(); err != nil {
		return u, err
	}
	return u, nil
}

func scanUser(row pgx.Row) (u user.User, err error) {
	var (
		id           int64
		login        string
		email        string
		passwordHash string
	)
	err = row.Scan(&id, &u.Name, &u.Surname, &login, &email, &passwordHash, &u.IsAdmin, &u.RegisteredAt)
	if err != nil {
		return u, err
	}
	u.ID = user.ID(id)
	u.Login = user.Login(login)
	u.Email = c.Email(email)
	u.PasswordHash = user.PasswordHash(passwordHash)
	return u, nil
}
