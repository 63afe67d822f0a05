package handler_test

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ptessari/resort-catalog/internal/domain"
	"github.com/ptessari/resort-catalog/internal/handler"
)

// mockResortServicer is a test double for handler.ResortServicer.
// Set only the method fields your test needs.
type mockResortServicer struct {
	list    func(ctx context.Context, filter domain.ResortFilter) ([]domain.ScoredResort, error)
	create  func(ctx context.Context, input domain.ResortInput) (domain.Resort, error)
	getByID func(ctx context.Context, id int64) (domain.Resort, error)
	update  func(ctx context.Context, id int64, input domain.ResortInput) (domain.Resort, error)
	delete  func(ctx context.Context, id int64) error
}

func (m *mockResortServicer) List(ctx context.Context, f domain.ResortFilter) ([]domain.ScoredResort, error) {
	return m.list(ctx, f)
}
func (m *mockResortServicer) Create(ctx context.Context, in domain.ResortInput) (domain.Resort, error) {
	return m.create(ctx, in)
}
func (m *mockResortServicer) GetByID(ctx context.Context, id int64) (domain.Resort, error) {
	return m.getByID(ctx, id)
}
func (m *mockResortServicer) Update(ctx context.Context, id int64, in domain.ResortInput) (domain.Resort, error) {
	return m.update(ctx, id, in)
}
func (m *mockResortServicer) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}

// compile-time check: mockResortServicer must satisfy handler.ResortServicer.
var _ handler.ResortServicer = (*mockResortServicer)(nil)

// newHTTPHandler wires a Server with the given mock and returns its router.
func newHTTPHandler(t *testing.T, svc handler.ResortServicer) http.Handler {
	t.Helper()
	srv, err := handler.NewServer(svc)
	require.NoError(t, err, "templates must parse")
	return srv.Routes()
}

func resortFixture() domain.Resort {
	city := "Gallipoli"
	return domain.Resort{
		ID:               3,
		Name:             "Lido Azzurro",
		City:             &city,
		Status:           domain.StatusToReview,
		WheelchairAccess: true,
		BeachBathroomH:   true,
	}
}

// flashFrom decodes the one-shot notice cookie set on the response, failing
// the test if none is present.
func flashFrom(t *testing.T, rec *httptest.ResponseRecorder) (category, message string) {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name != "catalog_flash" || c.MaxAge < 0 {
			continue
		}
		raw, err := base64.URLEncoding.DecodeString(c.Value)
		require.NoError(t, err)
		category, message, ok := strings.Cut(string(raw), "|")
		require.True(t, ok, "flash cookie must be category|message")
		return category, message
	}
	t.Fatal("no flash cookie set")
	return "", ""
}

func postForm(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// ---- GET / -----------------------------------------------------------------

func TestIndex_RendersResorts(t *testing.T) {
	svc := &mockResortServicer{
		list: func(_ context.Context, _ domain.ResortFilter) ([]domain.ScoredResort, error) {
			return []domain.ScoredResort{{Resort: resortFixture(), Have: 2, Total: 11}}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(t, svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Lido Azzurro")
	assert.Contains(t, rec.Body.String(), "2/11")
}

func TestIndex_ParsesFilterParams(t *testing.T) {
	var seen domain.ResortFilter
	svc := &mockResortServicer{
		list: func(_ context.Context, f domain.ResortFilter) ([]domain.ScoredResort, error) {
			seen = f
			return nil, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet,
		"/?q=+lido+&region=Puglia&status=interessante&only_access=1&keep=1", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(t, svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.ResortFilter{
		Query:          "lido",
		Region:         "Puglia",
		Status:         domain.StatusInteresting,
		KeepOnly:       true,
		AccessibleOnly: true,
	}, seen)
}

func TestIndex_BlankParamsMeanNoFilter(t *testing.T) {
	var seen domain.ResortFilter
	svc := &mockResortServicer{
		list: func(_ context.Context, f domain.ResortFilter) ([]domain.ScoredResort, error) {
			seen = f
			return nil, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/?q=&region=&status=&only_access=&keep=", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(t, svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, seen.IsZero(), "blank params must be omitted from the filter")
}

// ---- POST /new -------------------------------------------------------------

func TestCreate_RedirectsWithSuccessFlash(t *testing.T) {
	var got domain.ResortInput
	svc := &mockResortServicer{
		create: func(_ context.Context, in domain.ResortInput) (domain.Resort, error) {
			got = in
			return resortFixture(), nil
		},
	}

	form := url.Values{
		"name":              {"Lido Azzurro"},
		"region":            {"Puglia"},
		"price_week":        {"890,00"},
		"status":            {"interessante"},
		"keep_flag":         {"on"},
		"wheelchair_access": {"1"},
		"beach_walkway":     {"1"},
	}
	rec := httptest.NewRecorder()
	newHTTPHandler(t, svc).ServeHTTP(rec, postForm("/new", form))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	category, message := flashFrom(t, rec)
	assert.Equal(t, handler.FlashSuccess, category)
	assert.NotEmpty(t, message)

	// The handler passes form values through untouched — raw strings.
	assert.Equal(t, "Lido Azzurro", got.Name)
	assert.Equal(t, "890,00", got.PriceWeek)
	assert.Equal(t, "on", got.KeepFlag)
	assert.Equal(t, "1", got.Flags["wheelchair_access"])
	assert.Equal(t, "1", got.Flags["beach_walkway"])
	assert.Equal(t, "", got.Flags["lift"], "unticked boxes arrive empty")
}

func TestNewForm_Renders(t *testing.T) {
	svc := &mockResortServicer{}

	req := httptest.NewRequest(http.MethodGet, "/new", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(t, svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Nuovo resort")
}

// ---- GET/POST /edit/{id} ---------------------------------------------------

func TestEditForm_Renders(t *testing.T) {
	svc := &mockResortServicer{
		getByID: func(_ context.Context, id int64) (domain.Resort, error) {
			require.EqualValues(t, 3, id)
			return resortFixture(), nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/edit/3", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(t, svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Lido Azzurro")
}

func TestEditForm_NotFoundRedirectsWithDanger(t *testing.T) {
	svc := &mockResortServicer{
		getByID: func(_ context.Context, _ int64) (domain.Resort, error) {
			return domain.Resort{}, domain.ErrNotFound
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/edit/99", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(t, svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	category, _ := flashFrom(t, rec)
	assert.Equal(t, handler.FlashDanger, category)
}

func TestUpdate_RedirectsToDetailView(t *testing.T) {
	svc := &mockResortServicer{
		update: func(_ context.Context, id int64, _ domain.ResortInput) (domain.Resort, error) {
			r := resortFixture()
			r.ID = id
			return r, nil
		},
	}

	rec := httptest.NewRecorder()
	newHTTPHandler(t, svc).ServeHTTP(rec, postForm("/edit/3", url.Values{"name": {"Lido"}}))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/view/3", rec.Header().Get("Location"))

	category, _ := flashFrom(t, rec)
	assert.Equal(t, handler.FlashSuccess, category)
}

func TestUpdate_NotFoundRedirectsWithDanger(t *testing.T) {
	svc := &mockResortServicer{
		update: func(_ context.Context, _ int64, _ domain.ResortInput) (domain.Resort, error) {
			return domain.Resort{}, domain.ErrNotFound
		},
	}

	rec := httptest.NewRecorder()
	newHTTPHandler(t, svc).ServeHTTP(rec, postForm("/edit/99", url.Values{"name": {"Lido"}}))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	category, _ := flashFrom(t, rec)
	assert.Equal(t, handler.FlashDanger, category)
}

// ---- GET /view/{id} --------------------------------------------------------

func TestView_RendersScore(t *testing.T) {
	svc := &mockResortServicer{
		getByID: func(_ context.Context, _ int64) (domain.Resort, error) {
			return resortFixture(), nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/view/3", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(t, svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "2/11")
}

func TestView_NotFoundRedirects(t *testing.T) {
	svc := &mockResortServicer{
		getByID: func(_ context.Context, _ int64) (domain.Resort, error) {
			return domain.Resort{}, domain.ErrNotFound
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/view/99", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(t, svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestView_MalformedIDRedirects(t *testing.T) {
	svc := &mockResortServicer{}

	req := httptest.NewRequest(http.MethodGet, "/view/abc", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(t, svc).ServeHTTP(rec, req)

	// A non-numeric id can't name any resort: same notice as a missing one.
	require.Equal(t, http.StatusSeeOther, rec.Code)
	category, _ := flashFrom(t, rec)
	assert.Equal(t, handler.FlashDanger, category)
}

// ---- POST /delete/{id} -----------------------------------------------------

func TestDelete_RedirectsWithWarningFlash(t *testing.T) {
	var deleted int64
	svc := &mockResortServicer{
		delete: func(_ context.Context, id int64) error {
			deleted = id
			return nil
		},
	}

	rec := httptest.NewRecorder()
	newHTTPHandler(t, svc).ServeHTTP(rec, postForm("/delete/3", url.Values{}))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.EqualValues(t, 3, deleted)

	category, _ := flashFrom(t, rec)
	assert.Equal(t, handler.FlashWarning, category)
}

// ---- flash round-trip ------------------------------------------------------

// TestFlash_DisplayedOnceThenCleared verifies the one-shot behaviour: the
// notice set by a mutating request renders on the next page and the cookie
// is expired in the same response.
func TestFlash_DisplayedOnceThenCleared(t *testing.T) {
	svc := &mockResortServicer{
		delete: func(_ context.Context, _ int64) error { return nil },
		list: func(_ context.Context, _ domain.ResortFilter) ([]domain.ScoredResort, error) {
			return nil, nil
		},
	}
	h := newHTTPHandler(t, svc)

	// 1. Delete sets the flash cookie.
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, postForm("/delete/3", url.Values{}))
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	// 2. The redirected-to list page renders the notice and clears the cookie.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Eliminato")

	var cleared bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == "catalog_flash" && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared, "flash cookie must be expired after display")
}
