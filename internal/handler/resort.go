package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ptessari/resort-catalog/internal/domain"
)

// Index handles GET /. It parses the optional filter query parameters,
// lists matching resorts with their access scores, and renders the list page.
func (s *Server) Index(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.ResortFilter{
		Query:          strings.TrimSpace(q.Get("q")),
		Region:         strings.TrimSpace(q.Get("region")),
		Status:         strings.TrimSpace(q.Get("status")),
		KeepOnly:       q.Get("keep") == "1",
		AccessibleOnly: q.Get("only_access") == "1",
	}

	resorts, err := s.resorts.List(r.Context(), filter)
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	s.render(w, r, "index.html", map[string]any{
		"Resorts":       resorts,
		"Filter":        filter,
		"Regions":       domain.Regions,
		"StatusChoices": domain.StatusChoices,
		"Flash":         popFlash(w, r),
	})
}

// NewForm handles GET /new: an empty creation form.
func (s *Server) NewForm(w http.ResponseWriter, r *http.Request) {
	s.renderForm(w, r, "new", domain.Resort{Status: domain.StatusToReview})
}

// Create handles POST /new. Any input is accepted — the service normalizes
// rather than validates — so the only failure mode is a store error.
func (s *Server) Create(w http.ResponseWriter, r *http.Request) {
	if _, err := s.resorts.Create(r.Context(), formToInput(r)); err != nil {
		s.serverError(w, r, err)
		return
	}

	setFlash(w, FlashSuccess, "Resort inserito")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// EditForm handles GET /edit/{id}: the edit form pre-filled from the store.
// A missing resort redirects to the list with a danger notice.
func (s *Server) EditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := s.resortID(w, r)
	if !ok {
		return
	}

	resort, err := s.resorts.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.redirectNotFound(w, r)
			return
		}
		s.serverError(w, r, err)
		return
	}

	s.renderForm(w, r, "edit", resort)
}

// Update handles POST /edit/{id}. On success it redirects to the detail
// view; a missing resort redirects to the list with a danger notice.
func (s *Server) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := s.resortID(w, r)
	if !ok {
		return
	}

	updated, err := s.resorts.Update(r.Context(), id, formToInput(r))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.redirectNotFound(w, r)
			return
		}
		s.serverError(w, r, err)
		return
	}

	setFlash(w, FlashSuccess, "Salvato")
	http.Redirect(w, r, "/view/"+strconv.FormatInt(updated.ID, 10), http.StatusSeeOther)
}

// View handles GET /view/{id}: the detail page with the computed access score.
func (s *Server) View(w http.ResponseWriter, r *http.Request) {
	id, ok := s.resortID(w, r)
	if !ok {
		return
	}

	resort, err := s.resorts.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.redirectNotFound(w, r)
			return
		}
		s.serverError(w, r, err)
		return
	}

	have, total := resort.AccessScore()
	s.render(w, r, "view.html", map[string]any{
		"Resort":   resort,
		"Features": resort.FeatureStates(),
		"Have":     have,
		"Total":    total,
		"Flash":    popFlash(w, r),
	})
}

// Delete handles POST /delete/{id}. Deletion is idempotent, so the response
// is the same redirect whether or not the resort existed.
func (s *Server) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := s.resortID(w, r)
	if !ok {
		return
	}

	if err := s.resorts.Delete(r.Context(), id); err != nil {
		s.serverError(w, r, err)
		return
	}

	setFlash(w, FlashWarning, "Eliminato")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// resortID parses the {id} path parameter. A non-numeric id cannot name any
// resort, so it gets the same not-found redirect as a missing one; the second
// return value reports whether the caller should proceed.
func (s *Server) resortID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		s.redirectNotFound(w, r)
		return 0, false
	}
	return id, true
}

// redirectNotFound sends the user back to the list with the not-found notice.
func (s *Server) redirectNotFound(w http.ResponseWriter, r *http.Request) {
	setFlash(w, FlashDanger, "Resort non trovato.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// renderForm renders the shared create/edit form page.
func (s *Server) renderForm(w http.ResponseWriter, r *http.Request, mode string, resort domain.Resort) {
	s.render(w, r, "form.html", map[string]any{
		"Mode":          mode,
		"Resort":        resort,
		"Features":      resort.FeatureStates(),
		"Regions":       domain.Regions,
		"StatusChoices": domain.StatusChoices,
		"Flash":         popFlash(w, r),
	})
}

// formToInput copies the posted form fields into a domain.ResortInput,
// untouched. Normalization belongs to the service layer, not here.
func formToInput(r *http.Request) domain.ResortInput {
	in := domain.ResortInput{
		Name:        r.PostFormValue("name"),
		Region:      r.PostFormValue("region"),
		City:        r.PostFormValue("city"),
		Website:     r.PostFormValue("website"),
		Phone:       r.PostFormValue("phone"),
		Email:       r.PostFormValue("email"),
		PriceWeek:   r.PostFormValue("price_week"),
		PricePeriod: r.PostFormValue("price_period"),
		PriceNotes:  r.PostFormValue("price_notes"),
		Status:      r.PostFormValue("status"),
		KeepFlag:    r.PostFormValue("keep_flag"),
		Notes:       r.PostFormValue("notes"),
		Flags:       make(map[string]string, len(domain.Features)),
	}
	for _, f := range domain.Features {
		in.Flags[f.Key] = r.PostFormValue(f.Key)
	}
	return in
}
