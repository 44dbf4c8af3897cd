package board

import (
	"context"
	"slices"
	"strings"
	"sync"

	"volunteer-board/internal/model"
	"volunteer-board/internal/store"

	"github.com/pkg/errors"
)

type SortOrder string

const (
	SortNewest SortOrder = "newest"
	SortOldest SortOrder = "oldest"
)

func (o SortOrder) Valid() bool {
	return o == SortNewest || o == SortOldest
}

// Stats 汇总数据，每次调用都从当前快照重新计算
type Stats struct {
	Records  int     `json:"records"`
	Hours    float64 `json:"hours"`
	Comments int     `json:"comments"`
}

// RecordStore 内存中的记录集合。每次变更后都整体重新加载，不做增量修补。
type RecordStore struct {
	gw store.Gateway

	mu      sync.RWMutex
	records []model.Record
	loaded  bool
}

func NewRecordStore(gw store.Gateway) *RecordStore {
	return &RecordStore{gw: gw}
}

// Reload 分两次请求拉取全部记录（创建时间倒序）和全部留言（创建时间正序），
// 按外键把留言挂到记录上。任一请求失败时保留旧快照并返回错误。
func (s *RecordStore) Reload(ctx context.Context) error {
	var records []model.Record
	err := s.gw.Select(ctx, model.ResourceRecords,
		store.All(store.Desc("created_at"), store.Desc("id")), &records)
	if err != nil {
		return errors.Wrap(err, "load records")
	}

	var comments []model.Comment
	err = s.gw.Select(ctx, model.ResourceComments,
		store.All(store.Asc("created_at"), store.Asc("id")), &comments)
	if err != nil {
		return errors.Wrap(err, "load comments")
	}

	byRecord := make(map[int64][]model.Comment, len(records))
	for _, c := range comments {
		byRecord[c.RecordID] = append(byRecord[c.RecordID], c)
	}
	for i := range records {
		thread := byRecord[records[i].ID]
		if thread == nil {
			thread = []model.Comment{}
		}
		records[i].Comments = thread
	}

	s.mu.Lock()
	s.records = records
	s.loaded = true
	s.mu.Unlock()
	return nil
}

func (s *RecordStore) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Records 当前快照的副本，顺序与加载顺序一致
func (s *RecordStore) Records() []model.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Record, len(s.records))
	for i, r := range s.records {
		out[i] = r.Clone()
	}
	return out
}

func (s *RecordStore) Find(id int64) (model.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.records {
		if r.ID == id {
			return r.Clone(), true
		}
	}
	return model.Record{}, false
}

// Sorted 按活动日期排序的视图，不修改快照；同一天的记录保持加载顺序
func (s *RecordStore) Sorted(order SortOrder) []model.Record {
	records := s.Records()
	slices.SortStableFunc(records, func(a, b model.Record) int {
		if order == SortOldest {
			return strings.Compare(a.Date, b.Date)
		}
		return strings.Compare(b.Date, a.Date)
	})
	return records
}

func (s *RecordStore) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var st Stats
	for _, r := range s.records {
		st.Records++
		st.Hours += r.Hours
		st.Comments += len(r.Comments)
	}
	return st
}
