package livrorepo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/galzit0/api-livros/model"
)

// Store is the persistence contract for Livro rows. Absence is reported as
// (nil, nil), never as an error.
type Store interface {
	FindAll(ctx context.Context) ([]model.Livro, error)
	FindByID(ctx context.Context, id int64) (*model.Livro, error)
	FindPage(ctx context.Context, filtro model.FiltroLivro, pg model.Pagina) ([]model.Livro, int64, error)
	Save(ctx context.Context, l *model.Livro) error
	DeleteByID(ctx context.Context, id int64) error

	// FindByIDForUpdate locks the row until the surrounding transaction
	// ends. Only meaningful on a tx-bound store.
	FindByIDForUpdate(ctx context.Context, id int64) (*model.Livro, error)

	// Transaction runs fn with a store bound to a single transaction and
	// commits when fn returns nil.
	Transaction(ctx context.Context, fn func(Store) error) error
}

type store struct{ db *gorm.DB }

func New(db *gorm.DB) Store { return &store{db: db} }

func (s *store) FindAll(ctx context.Context) ([]model.Livro, error) {
	var out []model.Livro
	if err := s.db.WithContext(ctx).Order("id_livro").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *store) FindByID(ctx context.Context, id int64) (*model.Livro, error) {
	var l model.Livro
	err := s.db.WithContext(ctx).First(&l, "id_livro = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (s *store) FindByIDForUpdate(ctx context.Context, id int64) (*model.Livro, error) {
	var l model.Livro
	err := s.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&l, "id_livro = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// sortColumns whitelists the sortable fields for FindPage.
var sortColumns = map[string]string{
	"id":         "id_livro",
	"titulo":     "titulo",
	"autor":      "autor",
	"isbn":       "isbn",
	"disponivel": "disponivel",
}

func (s *store) FindPage(ctx context.Context, filtro model.FiltroLivro, pg model.Pagina) ([]model.Livro, int64, error) {
	q := ApplyFiltro(s.db.WithContext(ctx).Model(&model.Livro{}), filtro)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	col, ok := sortColumns[strings.ToLower(pg.Sort)]
	if !ok {
		col = "id_livro"
	}
	dir := "DESC"
	if strings.EqualFold(pg.Direction, "asc") {
		dir = "ASC"
	}

	var out []model.Livro
	err := q.Order(col + " " + dir).
		Offset(pg.Page * pg.Size).
		Limit(pg.Size).
		Find(&out).Error
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// ApplyFiltro adds one case-insensitive equality condition per non-empty
// filter field (the example-matching semantics of getAllPage).
func ApplyFiltro(q *gorm.DB, f model.FiltroLivro) *gorm.DB {
	if f.Titulo != "" {
		q = q.Where("lower(titulo) = lower(?)", f.Titulo)
	}
	if f.Autor != "" {
		q = q.Where("lower(autor) = lower(?)", f.Autor)
	}
	if f.ISBN != "" {
		q = q.Where("lower(isbn) = lower(?)", f.ISBN)
	}
	if f.Disponivel != nil {
		q = q.Where("disponivel = ?", *f.Disponivel)
	}
	return q
}

// Save inserts when the id is zero, otherwise full-replaces every column,
// the nullable renter column included.
func (s *store) Save(ctx context.Context, l *model.Livro) error {
	return s.db.WithContext(ctx).Save(l).Error
}

func (s *store) DeleteByID(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Delete(&model.Livro{}, "id_livro = ?", id).Error
}

func (s *store) Transaction(ctx context.Context, fn func(Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&store{db: tx})
	})
}
