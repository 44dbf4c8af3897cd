// Package store 对托管数据库 REST 资源的最小封装：select / insert / update / delete。
// 每次调用只发一个请求，不重试、不批量，失败原样返回给调用方。
package store

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

type Gateway interface {
	// Select 按 query 读取 resource，结果解码进 out（指向切片的指针）；响应体为空时 out 不变
	Select(ctx context.Context, resource string, query Query, out any) error
	Insert(ctx context.Context, resource string, payload any) error
	Update(ctx context.Context, resource string, payload any, filter Filter) error
	Delete(ctx context.Context, resource string, filter Filter) error
}

// Order 排序项，编码为 <col>.<asc|desc>
type Order struct {
	Column string
	Desc   bool
}

func Asc(column string) Order  { return Order{Column: column} }
func Desc(column string) Order { return Order{Column: column, Desc: true} }

func (o Order) String() string {
	if o.Desc {
		return o.Column + ".desc"
	}
	return o.Column + ".asc"
}

// Query 读取参数，编码为 select=<cols>&order=<col>.<dir>
type Query struct {
	Columns []string
	Order   []Order
}

// All 读取全部列
func All(order ...Order) Query {
	return Query{Order: order}
}

func (q Query) Values() url.Values {
	v := url.Values{}
	if len(q.Columns) == 0 {
		v.Set("select", "*")
	} else {
		v.Set("select", strings.Join(q.Columns, ","))
	}
	if len(q.Order) > 0 {
		parts := make([]string, 0, len(q.Order))
		for _, o := range q.Order {
			parts = append(parts, o.String())
		}
		v.Set("order", strings.Join(parts, ","))
	}
	return v
}

// Filter 相等过滤，编码为 <col>=eq.<value>
type Filter struct {
	Column string
	Value  string
}

func Eq(column string, value any) Filter {
	return Filter{Column: column, Value: fmt.Sprint(value)}
}

func (f Filter) Values() url.Values {
	v := url.Values{}
	v.Set(f.Column, "eq."+f.Value)
	return v
}

func (f Filter) String() string {
	return f.Column + "=eq." + f.Value
}
