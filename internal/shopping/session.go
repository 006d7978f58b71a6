package shopping

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/Redwards2/MeijerShoppingList/pkg/types"
)

// DefaultAisleTimeout bounds a single aisle lookup when Options leaves it unset.
const DefaultAisleTimeout = 5 * time.Second

// sampleLists is installed by SampleFill.
var sampleLists = types.Lists{
	Pickup:  []string{"Milk", "Eggs"},
	InStore: []string{"Bananas", "Chicken"},
}

// Options wires a Session to its collaborators. Every field is optional.
type Options struct {
	Classifier   *Classifier
	Catalog      types.Catalog
	Snapshots    types.SnapshotStore
	Aisles       types.AisleLookup
	AisleTimeout time.Duration
	Logger       *slog.Logger
}

// Session is the per-user engine. All commands are serialized by one mutex and
// return the View to render next. Sessions must never be shared between users.
type Session struct {
	mu sync.Mutex

	store      *Store
	ctrl       *Controller
	snaps      *SnapshotManager
	importer   *Importer
	classifier *Classifier
	catalog    types.Catalog
	mealPlan   types.MealPlan
	aisleCache map[string]string

	aisles       types.AisleLookup
	aisleTimeout time.Duration
	logger       *slog.Logger
}

// NewSession builds an empty session and reads the meal-plan options from the
// catalog, falling back to DefaultMealPlan.
func NewSession(opts Options) *Session {
	if opts.Classifier == nil {
		opts.Classifier = NewClassifier(nil)
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.AisleTimeout <= 0 {
		opts.AisleTimeout = DefaultAisleTimeout
	}

	store := NewStore()
	s := &Session{
		store:        store,
		ctrl:         NewController(store),
		snaps:        NewSnapshotManager(opts.Snapshots),
		importer:     NewImporter(opts.Classifier, opts.Catalog, opts.Logger),
		classifier:   opts.Classifier,
		catalog:      opts.Catalog,
		aisleCache:   make(map[string]string),
		aisles:       opts.Aisles,
		aisleTimeout: opts.AisleTimeout,
		logger:       opts.Logger,
	}

	plan, err := LoadMealPlan(opts.Catalog)
	if err != nil {
		s.logger.Warn("meal plan falls back to defaults", "err", err)
	}
	s.mealPlan = plan
	return s
}

// View returns the current state.
func (s *Session) View() types.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *Session) viewLocked() types.View {
	lists := s.store.Lists()
	v := types.View{
		Pickup:  lists.Pickup,
		InStore: lists.InStore,
		Editing: s.ctrl.Cursor(),
	}
	if v.Editing != nil {
		v.Draft, _ = s.store.At(v.Editing.Category, v.Editing.Index)
	}
	for _, list := range [][]string{lists.Pickup, lists.InStore} {
		for _, item := range list {
			if aisle, ok := s.aisleCache[item]; ok {
				if v.Aisles == nil {
					v.Aisles = make(map[string]string)
				}
				v.Aisles[item] = aisle
			}
		}
	}
	return v
}

// Add appends text to category. Blank text is ignored. While an edit is open
// the add is refused with ErrEditInProgress.
func (s *Session) Add(category types.Category, text string) (types.View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := s.ctrl.Add(category, text)
	return s.viewLocked(), ignoreEmpty(err)
}

// AddClassified appends text to whichever category the classifier picks.
func (s *Session) AddClassified(text string) (types.View, error) {
	return s.Add(s.classifier.Classify(text), text)
}

// Submit is the single "add or save" action of an entry form: it commits the
// open edit if there is one, and adds to category otherwise.
func (s *Session) Submit(category types.Category, text string) (types.View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var err error
	if s.ctrl.Editing() {
		err = s.ctrl.Commit(text)
	} else {
		err = s.ctrl.Add(category, text)
	}
	return s.viewLocked(), ignoreEmpty(err)
}

// BeginEdit opens (category, index) for editing. View.Draft carries the text
// the UI should pre-fill.
func (s *Session) BeginEdit(category types.Category, index int) (types.View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.ctrl.BeginEdit(category, index)
	return s.viewLocked(), err
}

// CommitEdit saves text over the item under edit. Blank text drops the edit.
func (s *Session) CommitEdit(text string) (types.View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := s.ctrl.Commit(text)
	return s.viewLocked(), ignoreEmpty(err)
}

// CancelEdit closes the open edit without saving.
func (s *Session) CancelEdit() types.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ctrl.Cancel()
	return s.viewLocked()
}

// Delete removes (category, index). A stale index returns ErrIndexOutOfRange
// and leaves the lists untouched.
func (s *Session) Delete(category types.Category, index int) (types.View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := s.ctrl.Delete(category, index)
	return s.viewLocked(), err
}

// Clear empties both lists and closes any edit.
func (s *Session) Clear() types.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.Clear()
	s.ctrl.Reset()
	return s.viewLocked()
}

// SampleFill replaces both lists with a small demonstration list.
func (s *Session) SampleFill() types.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.Replace(sampleLists)
	s.ctrl.Reset()
	return s.viewLocked()
}

// Import bulk-adds pasted text. A returned error wrapping ErrCatalogWrite means
// the items were added but the catalog could not be updated.
func (s *Session) Import(raw string) (types.View, ImportResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, err := s.importer.Import(s.store, raw)
	return s.viewLocked(), res, err
}

// SaveSnapshot captures both lists under name.
func (s *Session) SaveSnapshot(name string) (types.View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.snaps.Save(name, s.store.Lists())
	return s.viewLocked(), err
}

// LoadSnapshot replaces both lists with the snapshot saved under name. On
// ErrSnapshotNotFound the live lists are unchanged.
func (s *Session) LoadSnapshot(name string) (types.View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lists, err := s.snaps.Load(name)
	if err != nil {
		return s.viewLocked(), err
	}
	s.store.Replace(lists)
	s.ctrl.Reset()
	return s.viewLocked(), nil
}

// DeleteSnapshot forgets the snapshot saved under name.
func (s *Session) DeleteSnapshot(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snaps.Delete(name)
}

// SnapshotNames lists saved snapshot names in ascending order.
func (s *Session) SnapshotNames() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snaps.Names()
}

// MealPlan returns the meal-plan options read at session start.
func (s *Session) MealPlan() types.MealPlan {
	s.mu.Lock()
	defer s.mu.Unlock()
	return types.MealPlan{
		Meats:      append([]string{}, s.mealPlan.Meats...),
		Vegetables: append([]string{}, s.mealPlan.Vegetables...),
		Sides:      append([]string{}, s.mealPlan.Sides...),
	}
}

// AddMeal adds each chosen meal component through the classifier.
func (s *Session) AddMeal(meal types.Meal) (types.View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ctrl.Editing() {
		return s.viewLocked(), types.ErrEditInProgress
	}
	for _, part := range []string{meal.Meat, meal.Vegetable, meal.Side} {
		if strings.TrimSpace(part) == "" {
			continue
		}
		if err := s.store.Add(s.classifier.Classify(part), part); err != nil {
			return s.viewLocked(), err
		}
	}
	return s.viewLocked(), nil
}

// Enrich looks up the aisle for item. The lookup runs outside the session
// lock with its own deadline, so a slow source never blocks other commands.
// Any failure is reported as ok == false.
func (s *Session) Enrich(ctx context.Context, item string) (string, bool) {
	item = strings.TrimSpace(item)
	if item == "" {
		return "", false
	}

	s.mu.Lock()
	aisle, cached := s.aisleCache[item]
	lookup := s.aisles
	s.mu.Unlock()
	if cached {
		return aisle, true
	}
	if lookup == nil {
		return "", false
	}

	ctx, cancel := context.WithTimeout(ctx, s.aisleTimeout)
	defer cancel()
	aisle, ok := lookup.Lookup(ctx, item)
	if !ok {
		s.logger.Debug("no aisle info", "item", item)
		return "", false
	}

	s.mu.Lock()
	s.aisleCache[item] = aisle
	s.mu.Unlock()
	return aisle, true
}

// ignoreEmpty drops validation errors for blank text, which UIs treat as a
// silent no-op.
func ignoreEmpty(err error) error {
	if errors.Is(err, types.ErrEmptyText) {
		return nil
	}
	return err
}
