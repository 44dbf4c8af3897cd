package board_test

import (
	"cmp"
	"context"
	"encoding/json"
	"slices"
	"strconv"
	"sync"
	"time"

	"volunteer-board/internal/model"
	"volunteer-board/internal/store"
)

// fakeGateway 内存版的数据后端，支持 board 用到的排序和 eq 过滤
type fakeGateway struct {
	mu       sync.Mutex
	records  []model.Record
	comments []model.Comment
	nextID   int64
	clock    time.Time

	calls []string
	fail  map[string]error // key: "<op> <resource>"
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		clock: time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC),
		fail:  map[string]error{},
	}
}

func (g *fakeGateway) tick() (int64, time.Time) {
	g.nextID++
	g.clock = g.clock.Add(time.Second)
	return g.nextID, g.clock
}

func (g *fakeGateway) record(op, resource string, extra ...string) error {
	call := op + " " + resource
	for _, e := range extra {
		call += " " + e
	}
	g.calls = append(g.calls, call)
	return g.fail[op+" "+resource]
}

func orderBy[T any](items []T, orders []store.Order, created func(T) time.Time, id func(T) int64) {
	slices.SortStableFunc(items, func(a, b T) int {
		for _, o := range orders {
			var c int
			switch o.Column {
			case "created_at":
				c = created(a).Compare(created(b))
			case "id":
				c = cmp.Compare(id(a), id(b))
			}
			if o.Desc {
				c = -c
			}
			if c != 0 {
				return c
			}
		}
		return 0
	})
}

func roundTrip(in, out any) error {
	raw, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

func (g *fakeGateway) Select(_ context.Context, resource string, query store.Query, out any) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.record("select", resource); err != nil {
		return err
	}
	switch resource {
	case model.ResourceRecords:
		rows := slices.Clone(g.records)
		orderBy(rows, query.Order,
			func(r model.Record) time.Time { return r.CreatedAt },
			func(r model.Record) int64 { return r.ID })
		return roundTrip(rows, out)
	case model.ResourceComments:
		rows := slices.Clone(g.comments)
		orderBy(rows, query.Order,
			func(c model.Comment) time.Time { return c.CreatedAt },
			func(c model.Comment) int64 { return c.ID })
		return roundTrip(rows, out)
	}
	return &store.RemoteError{Status: 404, Body: "unknown resource"}
}

func (g *fakeGateway) Insert(_ context.Context, resource string, payload any) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.record("insert", resource); err != nil {
		return err
	}
	switch resource {
	case model.ResourceRecords:
		var r model.Record
		if err := roundTrip(payload, &r); err != nil {
			return err
		}
		r.ID, r.CreatedAt = g.tick()
		g.records = append(g.records, r)
	case model.ResourceComments:
		var c model.Comment
		if err := roundTrip(payload, &c); err != nil {
			return err
		}
		c.ID, c.CreatedAt = g.tick()
		g.comments = append(g.comments, c)
	default:
		return &store.RemoteError{Status: 404, Body: "unknown resource"}
	}
	return nil
}

func (g *fakeGateway) Update(_ context.Context, resource string, payload any, filter store.Filter) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.record("update", resource, filter.String()); err != nil {
		return err
	}
	if resource != model.ResourceRecords || filter.Column != "id" {
		return &store.RemoteError{Status: 400, Body: "unsupported update"}
	}
	for i := range g.records {
		if strconv.FormatInt(g.records[i].ID, 10) == filter.Value {
			if err := roundTrip(payload, &g.records[i]); err != nil {
				return err
			}
		}
	}
	return nil
}

func (g *fakeGateway) Delete(_ context.Context, resource string, filter store.Filter) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.record("delete", resource, filter.String()); err != nil {
		return err
	}
	match := func(id int64) bool { return strconv.FormatInt(id, 10) == filter.Value }
	switch {
	case resource == model.ResourceRecords && filter.Column == "id":
		g.records = slices.DeleteFunc(g.records, func(r model.Record) bool { return match(r.ID) })
	case resource == model.ResourceComments && filter.Column == "id":
		g.comments = slices.DeleteFunc(g.comments, func(c model.Comment) bool { return match(c.ID) })
	case resource == model.ResourceComments && filter.Column == "record_id":
		g.comments = slices.DeleteFunc(g.comments, func(c model.Comment) bool { return match(c.RecordID) })
	default:
		return &store.RemoteError{Status: 400, Body: "unsupported delete"}
	}
	return nil
}

// seedRecord 直接写入一条记录，绕过控制器
func (g *fakeGateway) seedRecord(date, name string) int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	r := model.Record{
		RecordFields: model.RecordFields{
			Date: date, Name: name, Organization: "Org", Hours: 1, Photos: model.Photos{},
		},
		AuthorName:     "seed",
		AuthorPassword: "pw-" + name,
	}
	r.ID, r.CreatedAt = g.tick()
	g.records = append(g.records, r)
	return r.ID
}

func (g *fakeGateway) seedComment(recordID int64, nickname, password string) int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	c := model.Comment{RecordID: recordID, Nickname: nickname, Password: password, Content: "hi"}
	c.ID, c.CreatedAt = g.tick()
	g.comments = append(g.comments, c)
	return c.ID
}

func (g *fakeGateway) resetCalls() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls = nil
}

func (g *fakeGateway) recordByID(id int64) (model.Record, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, r := range g.records {
		if r.ID == id {
			return r, true
		}
	}
	return model.Record{}, false
}
