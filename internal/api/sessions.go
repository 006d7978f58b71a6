package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Redwards2/MeijerShoppingList/internal/shopping"
	"github.com/Redwards2/MeijerShoppingList/pkg/types"
)

type ctxKey struct{}

// withSession resolves {id} to a Session or answers 404.
func (h *handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		s, ok := h.registry.Get(id)
		if !ok {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}
		ctx := context.WithValue(r.Context(), ctxKey{}, sessionRef{id: id, s: s})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

type sessionRef struct {
	id string
	s  *shopping.Session
}

func sessionFrom(r *http.Request) sessionRef {
	return r.Context().Value(ctxKey{}).(sessionRef)
}

// mutate runs fn against the request's session, answers with the resulting
// View and pushes it to WebSocket subscribers.
func (h *handler) mutate(w http.ResponseWriter, r *http.Request, fn func(s *shopping.Session) (types.View, error)) {
	ref := sessionFrom(r)
	v, err := fn(ref.s)
	if err != nil {
		writeError(w, err)
		return
	}
	h.hub.publish(ref.id, v)
	writeJSON(w, http.StatusOK, v)
}

func (h *handler) createSession(w http.ResponseWriter, r *http.Request) {
	id, s := h.registry.Create()
	writeJSON(w, http.StatusCreated, struct {
		ID   string     `json:"id"`
		View types.View `json:"view"`
	}{id, s.View()})
}

func (h *handler) endSession(w http.ResponseWriter, r *http.Request) {
	ref := sessionFrom(r)
	if err := h.registry.Remove(ref.id); err != nil {
		writeError(w, err)
		return
	}
	h.hub.closeSession(ref.id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) getView(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, sessionFrom(r).s.View())
}

type itemRequest struct {
	Category string `json:"category"`
	Text     string `json:"text"`
}

// addItem appends to the named category, or lets the classifier choose when
// category is empty.
func (h *handler) addItem(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if !decode(w, r, &req) {
		return
	}
	h.mutate(w, r, func(s *shopping.Session) (types.View, error) {
		if req.Category == "" {
			return s.AddClassified(req.Text)
		}
		c, err := types.ParseCategory(req.Category)
		if err != nil {
			return types.View{}, err
		}
		return s.Add(c, req.Text)
	})
}

// submit is the single add-or-save action of the input box.
func (h *handler) submit(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if !decode(w, r, &req) {
		return
	}
	h.mutate(w, r, func(s *shopping.Session) (types.View, error) {
		c := types.CategoryPickup
		if req.Category != "" {
			var err error
			if c, err = types.ParseCategory(req.Category); err != nil {
				return types.View{}, err
			}
		}
		return s.Submit(c, req.Text)
	})
}

func (h *handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	c, index, err := itemPath(r)
	if err != nil {
		writeError(w, err)
		return
	}
	h.mutate(w, r, func(s *shopping.Session) (types.View, error) {
		return s.Delete(c, index)
	})
}

func (h *handler) beginEdit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Category string `json:"category"`
		Index    int    `json:"index"`
	}
	if !decode(w, r, &req) {
		return
	}
	h.mutate(w, r, func(s *shopping.Session) (types.View, error) {
		c, err := types.ParseCategory(req.Category)
		if err != nil {
			return types.View{}, err
		}
		return s.BeginEdit(c, req.Index)
	})
}

func (h *handler) commitEdit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if !decode(w, r, &req) {
		return
	}
	h.mutate(w, r, func(s *shopping.Session) (types.View, error) {
		return s.CommitEdit(req.Text)
	})
}

func (h *handler) cancelEdit(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(s *shopping.Session) (types.View, error) {
		return s.CancelEdit(), nil
	})
}

func (h *handler) clear(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(s *shopping.Session) (types.View, error) {
		return s.Clear(), nil
	})
}

func (h *handler) sample(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(s *shopping.Session) (types.View, error) {
		return s.SampleFill(), nil
	})
}

// importText answers 200 even when the catalog update fails; the items were
// added and the failure is reported in "warning".
func (h *handler) importText(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if !decode(w, r, &req) {
		return
	}
	ref := sessionFrom(r)
	v, res, err := ref.s.Import(req.Text)
	resp := struct {
		View    types.View            `json:"view"`
		Result  shopping.ImportResult `json:"result"`
		Warning string                `json:"warning,omitempty"`
	}{View: v, Result: res}
	if err != nil {
		if !errors.Is(err, types.ErrCatalogWrite) {
			writeError(w, err)
			return
		}
		h.logger.Warn("import catalog update failed", "session", ref.id, "err", err)
		resp.Warning = err.Error()
	}
	h.hub.publish(ref.id, v)
	writeJSON(w, http.StatusOK, resp)
}

func (h *handler) getMealPlan(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, sessionFrom(r).s.MealPlan())
}

func (h *handler) addMeal(w http.ResponseWriter, r *http.Request) {
	var meal types.Meal
	if !decode(w, r, &meal) {
		return
	}
	h.mutate(w, r, func(s *shopping.Session) (types.View, error) {
		return s.AddMeal(meal)
	})
}

func (h *handler) listSnapshots(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, sessionFrom(r).s.SnapshotNames())
}

func (h *handler) saveSnapshot(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	h.mutate(w, r, func(s *shopping.Session) (types.View, error) {
		return s.SaveSnapshot(name)
	})
}

func (h *handler) loadSnapshot(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	h.mutate(w, r, func(s *shopping.Session) (types.View, error) {
		return s.LoadSnapshot(name)
	})
}

func (h *handler) deleteSnapshot(w http.ResponseWriter, r *http.Request) {
	if err := sessionFrom(r).s.DeleteSnapshot(chi.URLParam(r, "name")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// lookupAisle answers 200 whether or not an aisle was found; a hit also
// refreshes subscribers because the View now carries the annotation.
func (h *handler) lookupAisle(w http.ResponseWriter, r *http.Request) {
	ref := sessionFrom(r)
	item := chi.URLParam(r, "item")
	aisle, ok := ref.s.Enrich(r.Context(), item)
	if ok {
		h.hub.publish(ref.id, ref.s.View())
	}
	writeJSON(w, http.StatusOK, struct {
		Item  string `json:"item"`
		Aisle string `json:"aisle,omitempty"`
		Found bool   `json:"found"`
	}{item, aisle, ok})
}

func itemPath(r *http.Request) (types.Category, int, error) {
	c, err := types.ParseCategory(chi.URLParam(r, "category"))
	if err != nil {
		return "", 0, err
	}
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		return "", 0, errBadRequest
	}
	return c, index, nil
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
