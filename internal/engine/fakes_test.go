package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tsarev/lernio/internal/store"
)

// In-memory repo fakes. They mirror the store contracts closely enough for
// engine tests, including copy-on-read so engines never share pointers
// with the "durable" state.

type fakeCatalog struct {
	mu      sync.Mutex
	lessons map[string]*store.Lesson
}

func newFakeCatalog(lessons ...*store.Lesson) *fakeCatalog {
	c := &fakeCatalog{lessons: make(map[string]*store.Lesson)}
	for _, l := range lessons {
		c.lessons[l.Slug] = l
	}
	return c
}

func (c *fakeCatalog) Get(_ context.Context, slug string) (*store.Lesson, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	l, ok := c.lessons[slug]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *l
	return &cp, nil
}

func (c *fakeCatalog) List(context.Context) ([]*store.Lesson, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []*store.Lesson
	for _, l := range c.lessons {
		cp := *l
		out = append(out, &cp)
	}
	return out, nil
}

func (c *fakeCatalog) Put(_ context.Context, l *store.Lesson) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	cp := *l
	c.lessons[l.Slug] = &cp
	return nil
}

func (c *fakeCatalog) Retire(_ context.Context, slug string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	l, ok := c.lessons[slug]
	if !ok {
		return store.ErrNotFound
	}
	l.Active = false
	return nil
}

type fakeProgress struct {
	mu         sync.Mutex
	rows       map[string]*store.LessonProgress
	upsertErr  error
	upsertSeen int
}

func newFakeProgress() *fakeProgress {
	return &fakeProgress{rows: make(map[string]*store.LessonProgress)}
}

func progressKey(learnerID, slug string) string {
	return learnerID + "|" + slug
}

func (p *fakeProgress) Get(_ context.Context, learnerID, slug string) (*store.LessonProgress, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	row, ok := p.rows[progressKey(learnerID, slug)]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *row
	return &cp, nil
}

func (p *fakeProgress) Upsert(_ context.Context, row *store.LessonProgress) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.upsertSeen++
	if p.upsertErr != nil {
		return p.upsertErr
	}
	cp := *row
	cp.UpdatedAt = time.Now()
	p.rows[progressKey(row.LearnerID, row.LessonSlug)] = &cp
	return nil
}

func (p *fakeProgress) LatestIncomplete(_ context.Context, learnerID string) (*store.LessonProgress, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	var latest *store.LessonProgress
	for _, row := range p.rows {
		if row.LearnerID != learnerID || row.Completed {
			continue
		}
		if latest == nil || row.UpdatedAt.After(latest.UpdatedAt) {
			latest = row
		}
	}
	if latest == nil {
		return nil, store.ErrNotFound
	}
	cp := *latest
	return &cp, nil
}

func (p *fakeProgress) DeleteByLearner(_ context.Context, learnerID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	for k, row := range p.rows {
		if row.LearnerID == learnerID {
			delete(p.rows, k)
		}
	}
	return nil
}

type fakePlans struct {
	mu    sync.Mutex
	plans []*store.Plan
}

func newFakePlans(plans ...*store.Plan) *fakePlans {
	f := &fakePlans{}
	for _, p := range plans {
		cp := *p
		f.plans = append(f.plans, &cp)
	}
	return f
}

func (f *fakePlans) Activate(_ context.Context, p *store.Plan) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.plans {
		if existing.LearnerID == p.LearnerID {
			existing.Active = false
		}
	}
	cp := *p
	cp.Active = true
	cp.CreatedAt = time.Now()
	f.plans = append(f.plans, &cp)
	return nil
}

func (f *fakePlans) Active(_ context.Context, learnerID string) (*store.Plan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.plans {
		if p.LearnerID == learnerID && p.Active {
			cp := *p
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakePlans) Get(_ context.Context, learnerID, planID string) (*store.Plan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.plans {
		if p.LearnerID == learnerID && p.PlanID == planID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakePlans) DeleteByLearner(_ context.Context, learnerID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.plans[:0]
	for _, p := range f.plans {
		if p.LearnerID != learnerID {
			kept = append(kept, p)
		}
	}
	f.plans = kept
	return nil
}

type fakeRecords struct {
	mu        sync.Mutex
	recs      map[string]*store.ProgressRecord
	upsertErr error
}

func newFakeRecords(recs ...*store.ProgressRecord) *fakeRecords {
	f := &fakeRecords{recs: make(map[string]*store.ProgressRecord)}
	for _, r := range recs {
		cp := *r
		f.recs[r.LearnerID+"|"+r.PlanID] = &cp
	}
	return f
}

func (f *fakeRecords) Get(_ context.Context, learnerID, planID string) (*store.ProgressRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.recs[learnerID+"|"+planID]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRecords) Upsert(_ context.Context, r *store.ProgressRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.upsertErr != nil {
		return f.upsertErr
	}
	cp := *r
	cp.UpdatedAt = time.Now()
	f.recs[r.LearnerID+"|"+r.PlanID] = &cp
	return nil
}

func (f *fakeRecords) DeleteByLearner(_ context.Context, learnerID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for k, r := range f.recs {
		if r.LearnerID == learnerID {
			delete(f.recs, k)
		}
	}
	return nil
}

// mustRecord fetches a record directly, for assertions.
func (f *fakeRecords) mustRecord(learnerID, planID string) *store.ProgressRecord {
	r, err := f.Get(context.Background(), learnerID, planID)
	if err != nil {
		panic(err)
	}
	return r
}

type fakeTurns struct {
	mu        sync.Mutex
	rows      []*store.Turn
	seen      map[string]bool
	appendErr error
}

func newFakeTurns() *fakeTurns {
	return &fakeTurns{seen: make(map[string]bool)}
}

func (f *fakeTurns) Append(_ context.Context, t *store.Turn) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.appendErr != nil {
		return f.appendErr
	}
	key := fmt.Sprintf("%s|%s|%d|%d|%s", t.LearnerID, t.PlanID, t.ModuleIdx, t.StepIdx, t.Role)
	if f.seen[key] {
		return nil // idempotent
	}
	f.seen[key] = true
	cp := *t
	f.rows = append(f.rows, &cp)
	return nil
}

func (f *fakeTurns) List(_ context.Context, learnerID, planID string, limit int) ([]*store.Turn, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*store.Turn
	for _, t := range f.rows {
		if t.LearnerID == learnerID && t.PlanID == planID {
			cp := *t
			out = append(out, &cp)
		}
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (f *fakeTurns) Count(_ context.Context, learnerID string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, t := range f.rows {
		if t.LearnerID == learnerID {
			n++
		}
	}
	return n, nil
}
