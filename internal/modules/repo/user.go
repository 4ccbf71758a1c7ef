package repo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/contracts-electrical/tracker/internal/modules/model"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepo interface {
	List(ctx context.Context) ([]model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	Append(ctx context.Context, u *model.User) error
}

type userRepo struct {
	path string
	log  *zap.Logger
}

// NewUserRepo opens the users workbook at path, creating it with a header
// row when it does not exist yet.
func NewUserRepo(path string, log *zap.Logger) (UserRepo, error) {
	r := &userRepo{path: path, log: log}
	if err := r.ensureWorkbook(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *userRepo) ensureWorkbook() error {
	if _, err := os.Stat(r.path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat users file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	header := make([]interface{}, 0, len(model.UserColumns))
	for _, c := range model.UserColumns {
		header = append(header, c)
	}
	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write users header: %w", err)
	}
	if err := f.SaveAs(r.path); err != nil {
		return fmt.Errorf("save users file: %w", err)
	}
	r.log.Sugar().Infow("created users workbook", "path", r.path)
	return nil
}

func (r *userRepo) open() (*excelize.File, string, [][]string, error) {
	f, err := excelize.OpenFile(r.path)
	if err != nil {
		return nil, "", nil, fmt.Errorf("open users file: %w", err)
	}
	sheet := f.GetSheetName(0)
	if sheet == "" {
		f.Close()
		return nil, "", nil, fmt.Errorf("users file %s has no sheets", r.path)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		f.Close()
		return nil, "", nil, fmt.Errorf("read users sheet: %w", err)
	}
	return f, sheet, rows, nil
}

func (r *userRepo) List(ctx context.Context) ([]model.User, error) {
	ctx, span := tracer.Start(ctx, "UserRepo.List")
	defer span.End()
	defer observe("users", "list", time.Now())

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, _, rows, err := r.open()
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	defer f.Close()

	users := rowsToUsers(rows)
	span.SetAttributes(attribute.Int("users.count", len(users)))
	return users, nil
}

func (r *userRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == username {
			return &users[i], nil
		}
	}
	return nil, ErrUserNotFound
}

// Append adds u after the last row and rewrites the whole workbook. There is
// no lock: two concurrent appends can lose one of the rows.
func (r *userRepo) Append(ctx context.Context, u *model.User) error {
	ctx, span := tracer.Start(ctx, "UserRepo.Append")
	defer span.End()
	defer observe("users", "append", time.Now())

	if err := ctx.Err(); err != nil {
		return err
	}

	f, sheet, rows, err := r.open()
	if err != nil {
		span.RecordError(err)
		return err
	}
	defer f.Close()

	cell, err := excelize.CoordinatesToCellName(1, len(rows)+1)
	if err != nil {
		return err
	}
	row := []interface{}{u.Username, u.FirstName, u.Password, u.Role}
	if err := f.SetSheetRow(sheet, cell, &row); err != nil {
		return fmt.Errorf("write user row: %w", err)
	}
	if err := f.Save(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("save users file: %w", err)
	}
	return nil
}

// rowsToUsers skips the header row and blank rows. Missing trailing cells
// read as empty; an empty role reads as the default role.
func rowsToUsers(rows [][]string) []model.User {
	if len(rows) <= 1 {
		return []model.User{}
	}
	users := make([]model.User, 0, len(rows)-1)
	for _, row := range rows[1:] {
		cells := make([]string, len(model.UserColumns))
		copy(cells, row)
		if isBlank(cells) {
			continue
		}
		u := model.User{
			Username:  cells[0],
			FirstName: cells[1],
			Password:  cells[2],
			Role:      cells[3],
		}
		if u.Role == "" {
			u.Role = model.RoleUser
		}
		users = append(users, u)
	}
	return users
}

func isBlank(cells []string) bool {
	for _, c := range cells {
		if c != "" {
			return false
		}
	}
	return true
}
