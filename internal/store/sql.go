package store

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"volunteer-board/internal/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"
)

// SQLModels SQL 后端支持的资源及其模型，database 包据此建表
var SQLModels = map[string]func() any{
	model.ResourceRecords:  func() any { return &model.Record{} },
	model.ResourceComments: func() any { return &model.Comment{} },
}

// SQLGateway 用 gorm 直接读写 records / comments 两张表，
// 对外行为与 RestGateway 一致：数据库错误统一包装为 RemoteError。
type SQLGateway struct {
	db    *gorm.DB
	cache sync.Map
}

func NewSQLGateway(db *gorm.DB) *SQLGateway {
	return &SQLGateway{db: db}
}

func (g *SQLGateway) schema(resource string) (*schema.Schema, error) {
	newModel, ok := SQLModels[resource]
	if !ok {
		return nil, fmt.Errorf("未知资源: %s", resource)
	}
	return schema.Parse(newModel(), &g.cache, g.db.NamingStrategy)
}

func checkColumn(s *schema.Schema, column string) error {
	if _, ok := s.FieldsByDBName[column]; !ok {
		return fmt.Errorf("%s 没有列 %s", s.Table, column)
	}
	return nil
}

func (g *SQLGateway) Select(ctx context.Context, resource string, query Query, out any) error {
	s, err := g.schema(resource)
	if err != nil {
		return err
	}

	tx := g.db.WithContext(ctx).Table(s.Table)
	if len(query.Columns) > 0 {
		for _, col := range query.Columns {
			if err := checkColumn(s, col); err != nil {
				return err
			}
		}
		tx = tx.Select(query.Columns)
	}
	for _, o := range query.Order {
		if err := checkColumn(s, o.Column); err != nil {
			return err
		}
		tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Name: o.Column}, Desc: o.Desc})
	}

	if err := tx.Find(out).Error; err != nil {
		return remoteFromDB(err)
	}
	return nil
}

func (g *SQLGateway) Insert(ctx context.Context, resource string, payload any) error {
	s, err := g.schema(resource)
	if err != nil {
		return err
	}
	row, err := toRow(s, payload)
	if err != nil {
		return err
	}
	if _, ok := row["created_at"]; !ok {
		row["created_at"] = time.Now().UTC()
	}

	if err := g.db.WithContext(ctx).Table(s.Table).Create(row).Error; err != nil {
		return remoteFromDB(err)
	}
	return nil
}

func (g *SQLGateway) Update(ctx context.Context, resource string, payload any, filter Filter) error {
	s, err := g.schema(resource)
	if err != nil {
		return err
	}
	if err := checkColumn(s, filter.Column); err != nil {
		return err
	}
	row, err := toRow(s, payload)
	if err != nil {
		return err
	}

	err = g.db.WithContext(ctx).
		Table(s.Table).
		Where(clause.Eq{Column: clause.Column{Name: filter.Column}, Value: filter.Value}).
		Updates(row).Error
	if err != nil {
		return remoteFromDB(err)
	}
	return nil
}

func (g *SQLGateway) Delete(ctx context.Context, resource string, filter Filter) error {
	s, err := g.schema(resource)
	if err != nil {
		return err
	}
	if err := checkColumn(s, filter.Column); err != nil {
		return err
	}

	err = g.db.WithContext(ctx).
		Where(clause.Eq{Column: clause.Column{Name: filter.Column}, Value: filter.Value}).
		Delete(SQLModels[resource]()).Error
	if err != nil {
		return remoteFromDB(err)
	}
	return nil
}

// toRow 把载荷按 JSON 字段名展开成列映射；切片、对象按 JSON 文本存储，与 REST 后端的文本列一致
func toRow(s *schema.Schema, payload any) (map[string]any, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "encode payload")
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, errors.Wrap(err, "payload must be a JSON object")
	}

	row := make(map[string]any, len(fields))
	for key, value := range fields {
		if err := checkColumn(s, key); err != nil {
			return nil, err
		}
		switch value.(type) {
		case []any, map[string]any:
			text, err := json.Marshal(value)
			if err != nil {
				return nil, errors.Wrapf(err, "encode column %s", key)
			}
			row[key] = string(text)
		default:
			row[key] = value
		}
	}
	return row, nil
}

func remoteFromDB(err error) error {
	return errors.WithStack(&RemoteError{Status: http.StatusInternalServerError, Body: err.Error()})
}
