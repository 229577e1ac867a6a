package todo

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"getthingsdone/internal/models"
	"getthingsdone/internal/store"
)

// DefaultKey is the storage key holding the persisted snapshot.
const DefaultKey = "todos"

// IDFunc generates a task identifier unique within the process lifetime.
type IDFunc func() string

// Snapshot is a copy of the list state handed to subscribers.
type Snapshot struct {
	Tasks     []models.Task
	Visible   []models.Task
	Filter    models.FilterMode
	Direction models.SortDirection
}

// Option configures a List.
type Option func(*List)

// WithKey sets the storage key. Empty keys are ignored.
func WithKey(key string) Option {
	return func(l *List) {
		if key != "" {
			l.key = key
		}
	}
}

// WithIDFunc replaces the UUID generator.
func WithIDFunc(fn IDFunc) Option {
	return func(l *List) {
		if fn != nil {
			l.newID = fn
		}
	}
}

// WithLocale sets the collation language used by Sort.
func WithLocale(tag language.Tag) Option {
	return func(l *List) {
		l.collator = collate.New(tag)
	}
}

// WithSingleEdit makes entering edit mode on a task leave edit mode on all others.
func WithSingleEdit(enabled bool) Option {
	return func(l *List) {
		l.singleEdit = enabled
	}
}

// WithLogger sets the logger used for load warnings and persistence failures.
func WithLogger(logger *log.Logger) Option {
	return func(l *List) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// List is the task list store. It is safe for concurrent use.
type List struct {
	kv         store.KeyValue
	key        string
	newID      IDFunc
	collator   *collate.Collator
	singleEdit bool
	logger     *log.Logger

	mu        sync.Mutex
	tasks     []models.Task
	filter    models.FilterMode
	direction models.SortDirection

	subMu   sync.Mutex
	subs    map[int]func(Snapshot)
	nextSub int
}

// New creates an empty List backed by kv. Call Load to read the persisted snapshot.
func New(kv store.KeyValue, opts ...Option) *List {
	l := &List{
		kv:        kv,
		key:       DefaultKey,
		newID:     uuid.NewString,
		collator:  collate.New(language.English),
		logger:    log.Default(),
		tasks:     []models.Task{},
		filter:    models.FilterAll,
		direction: models.SortNone,
		subs:      make(map[int]func(Snapshot)),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load replaces the in-memory list with the persisted snapshot.
// A missing or malformed snapshot yields an empty list; only a storage
// read failure is returned as an error.
func (l *List) Load(ctx context.Context) error {
	raw, ok, err := l.kv.Get(ctx, l.key)
	if err != nil {
		return fmt.Errorf("failed to load todos: %w", err)
	}

	tasks := []models.Task{}
	if ok {
		var decoded []models.Task
		if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
			l.logger.Warn("ignoring malformed todo snapshot", "key", l.key, "err", err)
		} else {
			tasks = l.sanitize(decoded)
		}
	}

	l.mu.Lock()
	l.tasks = tasks
	snap := l.snapshotLocked()
	l.mu.Unlock()

	l.logger.Debug("loaded todos", "key", l.key, "count", len(tasks))
	l.notify(snap)
	return nil
}

// sanitize drops entries whose id repeats an earlier one, assigns ids to
// entries without one and clears edit mode.
func (l *List) sanitize(decoded []models.Task) []models.Task {
	tasks := make([]models.Task, 0, len(decoded))
	seen := make(map[string]struct{}, len(decoded))
	for _, t := range decoded {
		if t.ID == "" {
			t.ID = l.newID()
		}
		if _, dup := seen[t.ID]; dup {
			l.logger.Warn("dropping todo with duplicate id", "id", t.ID)
			continue
		}
		seen[t.ID] = struct{}{}
		t.IsEditing = false
		tasks = append(tasks, t)
	}
	return tasks
}

// Add appends a new incomplete task with a fresh id and persists the list.
// The text is stored as given.
func (l *List) Add(ctx context.Context, text string) (models.Task, error) {
	task := models.Task{ID: l.newID(), Task: text}

	l.mu.Lock()
	next := make([]models.Task, 0, len(l.tasks)+1)
	next = append(next, l.tasks...)
	next = append(next, task)
	err := l.persistLocked(ctx, next)
	snap := l.snapshotLocked()
	l.mu.Unlock()

	if err != nil {
		return models.Task{}, err
	}
	l.notify(snap)
	return task, nil
}

// Remove deletes the task with the given id and persists the list.
// Unknown ids are ignored.
func (l *List) Remove(ctx context.Context, id string) error {
	return l.update(ctx, id, true, func(tasks []models.Task, i int) []models.Task {
		next := make([]models.Task, 0, len(tasks)-1)
		next = append(next, tasks[:i]...)
		return append(next, tasks[i+1:]...)
	})
}

// ToggleComplete flips the completed flag of the task and persists the list.
func (l *List) ToggleComplete(ctx context.Context, id string) error {
	return l.update(ctx, id, true, func(tasks []models.Task, i int) []models.Task {
		next := clone(tasks)
		next[i].Completed = !next[i].Completed
		return next
	})
}

// EnterEditMode flips the edit-mode flag of the task. The change is not persisted.
func (l *List) EnterEditMode(id string) {
	// update never fails when nothing is written.
	_ = l.update(context.Background(), id, false, func(tasks []models.Task, i int) []models.Task {
		next := clone(tasks)
		next[i].IsEditing = !next[i].IsEditing
		if l.singleEdit && next[i].IsEditing {
			for j := range next {
				if j != i {
					next[j].IsEditing = false
				}
			}
		}
		return next
	})
}

// CommitEdit replaces the task text, leaves edit mode and persists the list.
func (l *List) CommitEdit(ctx context.Context, id, text string) error {
	return l.update(ctx, id, true, func(tasks []models.Task, i int) []models.Task {
		next := clone(tasks)
		next[i].Task = text
		next[i].IsEditing = false
		return next
	})
}

// Sort toggles the sort direction and reorders the whole list by the
// lowercased task text using locale-aware collation. Tasks with equal keys
// keep their relative order. The new order is persisted.
func (l *List) Sort(ctx context.Context) error {
	l.mu.Lock()
	dir := l.direction.Toggle()
	next := clone(l.tasks)
	sortTasks(l.collator, next, dir)
	err := l.persistLocked(ctx, next)
	if err == nil {
		l.direction = dir
	}
	snap := l.snapshotLocked()
	l.mu.Unlock()

	if err != nil {
		return err
	}
	l.notify(snap)
	return nil
}

// SetFilter changes which tasks Visible returns. The list is not modified.
func (l *List) SetFilter(mode models.FilterMode) {
	l.mu.Lock()
	l.filter = mode
	snap := l.snapshotLocked()
	l.mu.Unlock()

	l.notify(snap)
}

// Visible returns the tasks matching the current filter in list order.
func (l *List) Visible() []models.Task {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.visibleLocked()
}

// Tasks returns a copy of the full list.
func (l *List) Tasks() []models.Task {
	l.mu.Lock()
	defer l.mu.Unlock()
	return clone(l.tasks)
}

// Filter returns the current filter mode.
func (l *List) Filter() models.FilterMode {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.filter
}

// Direction returns the direction of the last sort.
func (l *List) Direction() models.SortDirection {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.direction
}

// Snapshot returns a copy of the current state.
func (l *List) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snapshotLocked()
}

// Subscribe registers fn to be called with a Snapshot after every state
// change. fn runs on the goroutine that made the change, outside the list
// lock. The returned function removes the subscription.
func (l *List) Subscribe(fn func(Snapshot)) (cancel func()) {
	l.subMu.Lock()
	id := l.nextSub
	l.nextSub++
	l.subs[id] = fn
	l.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.subMu.Lock()
			delete(l.subs, id)
			l.subMu.Unlock()
		})
	}
}

// update applies fn to the task with the given id. When persist is set the
// result is written before it becomes current.
func (l *List) update(ctx context.Context, id string, persist bool, fn func(tasks []models.Task, i int) []models.Task) error {
	l.mu.Lock()
	i := l.indexLocked(id)
	if i < 0 {
		l.mu.Unlock()
		return nil
	}

	next := fn(l.tasks, i)
	var err error
	if persist {
		err = l.persistLocked(ctx, next)
	} else {
		l.tasks = next
	}
	snap := l.snapshotLocked()
	l.mu.Unlock()

	if err != nil {
		return err
	}
	l.notify(snap)
	return nil
}

// persistLocked writes next and, on success, makes it the current list.
func (l *List) persistLocked(ctx context.Context, next []models.Task) error {
	raw, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("failed to encode todos: %w", err)
	}
	if err := l.kv.Set(ctx, l.key, string(raw)); err != nil {
		l.logger.Error("failed to persist todos", "key", l.key, "err", err)
		return fmt.Errorf("failed to persist todos: %w", err)
	}
	l.tasks = next
	return nil
}

func (l *List) indexLocked(id string) int {
	for i := range l.tasks {
		if l.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func (l *List) visibleLocked() []models.Task {
	visible := make([]models.Task, 0, len(l.tasks))
	for _, t := range l.tasks {
		if l.filter.Match(t) {
			visible = append(visible, t)
		}
	}
	return visible
}

func (l *List) snapshotLocked() Snapshot {
	return Snapshot{
		Tasks:     clone(l.tasks),
		Visible:   l.visibleLocked(),
		Filter:    l.filter,
		Direction: l.direction,
	}
}

func (l *List) notify(snap Snapshot) {
	l.subMu.Lock()
	fns := make([]func(Snapshot), 0, len(l.subs))
	for _, fn := range l.subs {
		fns = append(fns, fn)
	}
	l.subMu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}

func clone(tasks []models.Task) []models.Task {
	next := make([]models.Task, len(tasks))
	copy(next, tasks)
	return next
}
