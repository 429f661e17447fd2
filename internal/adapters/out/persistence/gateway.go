package persistence

import (
	"context"
	"errors"
	"fmt"

	"deliveries/internal/core/ports"
	"deliveries/internal/pkg/errs"

	"gorm.io/gorm"
)

// Mapper converts between a domain record E and its row D.
type Mapper[ID comparable, E any, D any] interface {
	ToRow(entity E) D
	ToDomain(row D) (E, error)
	KeyOf(entity E) ID
	// KeyValue is the value bound to the row's primary key column.
	KeyValue(id ID) string
}

// Gateway is a ports.EntityGateway backed by one table.
type Gateway[ID comparable, E any, D any] struct {
	db     *gorm.DB
	mapper Mapper[ID, E, D]
}

func NewGateway[ID comparable, E any, D any](db *gorm.DB, mapper Mapper[ID, E, D]) *Gateway[ID, E, D] {
	return &Gateway[ID, E, D]{db: db, mapper: mapper}
}

func (g *Gateway[ID, E, D]) session(ctx context.Context) *gorm.DB {
	return g.db.WithContext(ctx).Session(&gorm.Session{NewDB: true})
}

func (g *Gateway[ID, E, D]) GetAll(ctx context.Context) ([]E, error) {
	all, err := g.scan(ctx)
	if err != nil {
		return nil, ports.NewStorageError[E]("get all", err)
	}
	return all, nil
}

func (g *Gateway[ID, E, D]) GetByID(ctx context.Context, id ID) (E, error) {
	entity, err := g.single(ctx, func(e E) bool { return g.mapper.KeyOf(e) == id })
	if err != nil {
		var zero E
		if errors.Is(err, errs.ErrObjectNotFound) {
			err = errs.NewObjectNotFoundError("id", g.mapper.KeyValue(id))
		}
		return zero, ports.NewStorageError[E]("get", err)
	}
	return entity, nil
}

func (g *Gateway[ID, E, D]) GetByPredicate(ctx context.Context, match func(E) bool) (E, error) {
	entity, err := g.single(ctx, match)
	if err != nil {
		var zero E
		return zero, ports.NewStorageError[E]("get by predicate", err)
	}
	return entity, nil
}

func (g *Gateway[ID, E, D]) Insert(ctx context.Context, entity E) error {
	row := g.mapper.ToRow(entity)
	if err := g.session(ctx).Create(&row).Error; err != nil {
		return ports.NewStorageError[E]("insert", err)
	}
	return nil
}

func (g *Gateway[ID, E, D]) Update(ctx context.Context, entity E) error {
	row := g.mapper.ToRow(entity)
	key := g.mapper.KeyValue(g.mapper.KeyOf(entity))

	// Select("*") writes zero values too; State Created is 0.
	result := g.session(ctx).Model(new(D)).Where("id = ?", key).Select("*").Updates(&row)
	if result.Error != nil {
		return ports.NewStorageError[E]("update", result.Error)
	}
	if result.RowsAffected == 0 {
		return ports.NewStorageError[E]("update", errs.NewObjectNotFoundError("id", key))
	}
	return nil
}

func (g *Gateway[ID, E, D]) Delete(ctx context.Context, id ID) error {
	key := g.mapper.KeyValue(id)

	result := g.session(ctx).Where("id = ?", key).Delete(new(D))
	if result.Error != nil {
		return ports.NewStorageError[E]("delete", result.Error)
	}
	if result.RowsAffected == 0 {
		return ports.NewStorageError[E]("delete", errs.NewObjectNotFoundError("id", key))
	}
	return nil
}

func (g *Gateway[ID, E, D]) scan(ctx context.Context) ([]E, error) {
	var rows []D
	if err := g.session(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}

	all := make([]E, 0, len(rows))
	for _, row := range rows {
		entity, err := g.mapper.ToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("decode row: %w", err)
		}
		all = append(all, entity)
	}
	return all, nil
}

// single requires exactly one match among all rows.
func (g *Gateway[ID, E, D]) single(ctx context.Context, match func(E) bool) (E, error) {
	var zero E

	all, err := g.scan(ctx)
	if err != nil {
		return zero, err
	}

	var (
		found E
		count int
	)
	for _, entity := range all {
		if match(entity) {
			found = entity
			count++
		}
	}

	switch count {
	case 0:
		return zero, errs.NewObjectNotFoundError("predicate", "no matching record")
	case 1:
		return found, nil
	default:
		return zero, errs.NewValueIsInvalidErrorWithCause("predicate", fmt.Errorf("%d records matched, expected one", count))
	}
}
