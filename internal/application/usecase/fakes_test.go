package usecase_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/clairefro/flc-wix/internal/domain/entity"
)

var errStore = errors.New("store caído")

// memEntries colección de formularios en memoria; cuenta las lecturas paginadas.
type memEntries struct {
	mu    sync.Mutex
	items []*entity.ProgressEntry
	calls int
	fail  bool
}

func (r *memEntries) window(filter func(*entity.ProgressEntry) bool, limit, offset int) ([]*entity.ProgressEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.fail {
		return nil, errStore
	}
	var matched []*entity.ProgressEntry
	for _, e := range r.items {
		if filter(e) {
			matched = append(matched, e)
		}
	}
	if offset >= len(matched) {
		return nil, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], nil
}

func (r *memEntries) ListByEmail(_ context.Context, email string, limit, offset int) ([]*entity.ProgressEntry, error) {
	return r.window(func(e *entity.ProgressEntry) bool { return strings.EqualFold(e.Email, email) }, limit, offset)
}

func (r *memEntries) ListAll(_ context.Context, limit, offset int) ([]*entity.ProgressEntry, error) {
	return r.window(func(*entity.ProgressEntry) bool { return true }, limit, offset)
}

func (r *memEntries) ListByCourse(_ context.Context, course string, limit, offset int) ([]*entity.ProgressEntry, error) {
	return r.window(func(e *entity.ProgressEntry) bool { return e.Course == course }, limit, offset)
}

func (r *memEntries) Create(_ context.Context, e *entity.ProgressEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, e)
	return nil
}

func entry(email, first, last, course, category string, hours int64) *entity.ProgressEntry {
	return &entity.ProgressEntry{
		ID:            email + "/" + course,
		Email:         email,
		FirstName:     first,
		LastName:      last,
		DateCompleted: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Hours:         decimal.NewFromInt(hours),
		Course:        course,
		CourseName:    course,
		Category:      category,
	}
}

type memContacts struct {
	items []*entity.Contact
	fail  bool
}

func (r *memContacts) GetByID(_ context.Context, id string) (*entity.Contact, error) {
	if r.fail {
		return nil, errStore
	}
	for _, c := range r.items {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r *memContacts) List(_ context.Context, limit, offset int) ([]*entity.Contact, int, error) {
	if r.fail {
		return nil, 0, errStore
	}
	if offset >= len(r.items) {
		return nil, len(r.items), nil
	}
	end := offset + limit
	if end > len(r.items) {
		end = len(r.items)
	}
	return r.items[offset:end], len(r.items), nil
}
