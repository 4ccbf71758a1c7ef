package repo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/contracts-electrical/tracker/internal/metrics"
	"github.com/contracts-electrical/tracker/internal/modules/model"
	"github.com/contracts-electrical/tracker/internal/pkg/utils"
)

var (
	ErrProjectNotFound    = errors.New("project not found")
	ErrInvalidProjectCode = errors.New("project code must not contain path separators")
)

const projectExt = ".json"

type ProjectRepo interface {
	// Create writes a new document and returns its path.
	Create(ctx context.Context, p *model.Project) (string, error)
	List(ctx context.Context) (*ListProjectsResult, error)
	// FindByPrefix returns the first document, in file name order, whose
	// file stem starts with id.
	FindByPrefix(ctx context.Context, id string) (*model.StoredProject, error)
	Update(ctx context.Context, id string, p *model.Project) error
	Delete(ctx context.Context, id string) error
}

type ListProjectsResult struct {
	Items   []*model.StoredProject
	Skipped int
}

type projectRepo struct {
	dir string
	log *zap.Logger
	now func() time.Time
}

func NewProjectRepo(dir string, log *zap.Logger) (ProjectRepo, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create projects directory: %w", err)
	}
	return &projectRepo{dir: dir, log: log, now: time.Now}, nil
}

func (r *projectRepo) Create(ctx context.Context, p *model.Project) (string, error) {
	ctx, span := tracer.Start(ctx, "ProjectRepo.Create")
	defer span.End()
	defer observe("projects", "create", time.Now())

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if strings.ContainsAny(p.ProjectCode, `/\`) {
		return "", ErrInvalidProjectCode
	}

	now := r.now()
	key := utils.NewProjectKey(p.ProjectCode, now)
	p.CreateDate = now.Format(model.TimestampLayout)
	p.Touch(now)
	p.ApplyDefaults()

	path := filepath.Join(r.dir, key.FileName())
	span.SetAttributes(attribute.String("project.key", key.String()))
	if err := writeJSONAtomic(path, p); err != nil {
		span.RecordError(err)
		r.log.Error("create project failed", zap.String("file", key.FileName()), zap.Error(err))
		return "", err
	}
	return path, nil
}

func (r *projectRepo) List(ctx context.Context) (*ListProjectsResult, error) {
	ctx, span := tracer.Start(ctx, "ProjectRepo.List")
	defer span.End()
	defer observe("projects", "list", time.Now())

	names, err := r.fileNames(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	out := &ListProjectsResult{Items: make([]*model.StoredProject, 0, len(names))}
	for _, name := range names {
		sp, err := r.read(name)
		if err != nil {
			out.Skipped++
			r.skip(name, err)
			continue
		}
		out.Items = append(out.Items, sp)
	}

	span.SetAttributes(
		attribute.Int("projects.count", len(out.Items)),
		attribute.Int("projects.skipped", out.Skipped),
	)
	return out, nil
}

func (r *projectRepo) FindByPrefix(ctx context.Context, id string) (*model.StoredProject, error) {
	ctx, span := tracer.Start(ctx, "ProjectRepo.FindByPrefix")
	defer span.End()
	defer observe("projects", "find", time.Now())
	span.SetAttributes(attribute.String("project.id", id))

	sp, err := r.resolve(ctx, id)
	if err != nil {
		if !errors.Is(err, ErrProjectNotFound) {
			span.RecordError(err)
		}
		return nil, err
	}
	return sp, nil
}

// Update replaces the whole document. createdate is kept as given in p.
func (r *projectRepo) Update(ctx context.Context, id string, p *model.Project) error {
	ctx, span := tracer.Start(ctx, "ProjectRepo.Update")
	defer span.End()
	defer observe("projects", "update", time.Now())
	span.SetAttributes(attribute.String("project.id", id))

	target, err := r.resolve(ctx, id)
	if err != nil {
		return err
	}

	p.Touch(r.now())
	p.ApplyDefaults()
	if err := writeJSONAtomic(filepath.Join(r.dir, target.File), p); err != nil {
		span.RecordError(err)
		r.log.Error("update project failed", zap.String("file", target.File), zap.Error(err))
		return err
	}
	return nil
}

func (r *projectRepo) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "ProjectRepo.Delete")
	defer span.End()
	defer observe("projects", "delete", time.Now())
	span.SetAttributes(attribute.String("project.id", id))

	target, err := r.resolve(ctx, id)
	if err != nil {
		return err
	}

	if err := os.Remove(filepath.Join(r.dir, target.File)); err != nil {
		span.RecordError(err)
		r.log.Error("delete project failed", zap.String("file", target.File), zap.Error(err))
		return fmt.Errorf("remove %s: %w", target.File, err)
	}
	return nil
}

// resolve walks the directory in name order and returns the first readable
// document whose stem has id as a prefix. Unreadable documents are skipped
// the same way List skips them.
func (r *projectRepo) resolve(ctx context.Context, id string) (*model.StoredProject, error) {
	names, err := r.fileNames(ctx)
	if err != nil {
		return nil, err
	}

	var (
		found   *model.StoredProject
		matches []string
	)
	for _, name := range names {
		stem := strings.TrimSuffix(name, projectExt)
		if !utils.MatchesPrefix(stem, id) {
			continue
		}
		if found != nil {
			matches = append(matches, stem)
			continue
		}
		sp, err := r.read(name)
		if err != nil {
			r.skip(name, err)
			continue
		}
		found = sp
		matches = append(matches, stem)
	}

	if found == nil {
		return nil, ErrProjectNotFound
	}
	if len(matches) > 1 {
		codes := make([]string, 0, len(matches))
		for _, stem := range matches {
			if key, ok := utils.ParseProjectKey(stem); ok && !slices.Contains(codes, key.Code) {
				codes = append(codes, key.Code)
			}
		}
		r.log.Warn("project id matches more than one file, using the first",
			zap.String("id", id),
			zap.Strings("matches", matches),
			zap.Strings("codes", codes),
		)
	}
	return found, nil
}

func (r *projectRepo) fileNames(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("read projects directory: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), projectExt) {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

func (r *projectRepo) read(name string) (*model.StoredProject, error) {
	data, err := os.ReadFile(filepath.Join(r.dir, name))
	if err != nil {
		return nil, err
	}
	sp := &model.StoredProject{}
	if err := sonic.ConfigStd.Unmarshal(data, &sp.Project); err != nil {
		return nil, err
	}
	sp.File = name
	return sp, nil
}

func (r *projectRepo) skip(name string, err error) {
	metrics.IncProjectFilesSkipped(1)
	r.log.Warn("skipping unreadable project file", zap.String("file", name), zap.Error(err))
}

// writeJSONAtomic writes through a uniquely named temp file in the same
// directory, so concurrent writers to one path never share a temp file.
// The last rename wins.
func writeJSONAtomic(path string, v interface{}) error {
	data, err := sonic.ConfigStd.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("encode project: %w", err)
	}

	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("write project file: %w", err)
	}
	tmp := f.Name()
	_, werr := f.Write(data)
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	if werr == nil {
		werr = os.Chmod(tmp, 0o644)
	}
	if werr == nil {
		werr = os.Rename(tmp, path)
	}
	if werr != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("write project file: %w", werr)
	}
	return nil
}
