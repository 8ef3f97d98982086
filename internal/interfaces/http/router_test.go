package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clairefro/flc-wix/internal/application/auth"
	appdir "github.com/clairefro/flc-wix/internal/application/directory"
	"github.com/clairefro/flc-wix/internal/application/dto"
	"github.com/clairefro/flc-wix/internal/application/usecase"
	"github.com/clairefro/flc-wix/internal/domain/certification"
	domaindir "github.com/clairefro/flc-wix/internal/domain/directory"
	"github.com/clairefro/flc-wix/internal/domain/entity"
	apphttp "github.com/clairefro/flc-wix/internal/interfaces/http"
	"github.com/clairefro/flc-wix/internal/interfaces/viewsession"
	"github.com/clairefro/flc-wix/pkg/b64"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memPractitioners struct{ items []*entity.Practitioner }

func (r *memPractitioners) match(p domaindir.Predicate) []*entity.Practitioner {
	var out []*entity.Practitioner
	for _, pr := range r.items {
		if p.Country != "" && pr.Country != p.Country {
			continue
		}
		if len(p.Regions) > 0 && !containsAny(pr.Region, p.Regions) {
			continue
		}
		if p.Name != "" && !strings.Contains(strings.ToLower(pr.Name), strings.ToLower(p.Name)) {
			continue
		}
		out = append(out, pr)
	}
	return out
}

func containsAny(have, want []string) bool {
	for _, h := range have {
		for _, w := range want {
			if h == w {
				return true
			}
		}
	}
	return false
}

func (r *memPractitioners) Count(_ context.Context, p domaindir.Predicate) (int, error) {
	return len(r.match(p)), nil
}

func (r *memPractitioners) FetchPage(_ context.Context, p domaindir.Predicate, skip, limit int) ([]*entity.Practitioner, error) {
	m := r.match(p)
	if skip >= len(m) {
		return nil, nil
	}
	end := skip + limit
	if end > len(m) {
		end = len(m)
	}
	return m[skip:end], nil
}

func (r *memPractitioners) RegionsByCountry(_ context.Context, country string) ([]string, error) {
	var out []string
	for _, pr := range r.items {
		if pr.Country == country {
			out = append(out, pr.Region...)
		}
	}
	return out, nil
}

func (r *memPractitioners) ListCountries(_ context.Context) ([]string, error) {
	seen := map[string]bool{}
	out := []string{}
	for _, pr := range r.items {
		if !seen[pr.Country] {
			seen[pr.Country] = true
			out = append(out, pr.Country)
		}
	}
	return out, nil
}

func (r *memPractitioners) Upsert(_ context.Context, p *entity.Practitioner) error {
	r.items = append(r.items, p)
	return nil
}

type memMembers struct {
	mu    sync.Mutex
	items []*entity.Member
}

func (r *memMembers) Create(_ context.Context, m *entity.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, m)
	return nil
}

func (r *memMembers) GetByID(_ context.Context, id string) (*entity.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.items {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (r *memMembers) FindByEmail(_ context.Context, email string) (*entity.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.items {
		if strings.EqualFold(m.Email, email) {
			return m, nil
		}
	}
	return nil, nil
}

type memContacts struct{ items []*entity.Contact }

func (r *memContacts) GetByID(_ context.Context, id string) (*entity.Contact, error) {
	for _, c := range r.items {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r *memContacts) List(_ context.Context, limit, offset int) ([]*entity.Contact, int, error) {
	if offset >= len(r.items) {
		return nil, len(r.items), nil
	}
	end := offset + limit
	if end > len(r.items) {
		end = len(r.items)
	}
	return r.items[offset:end], len(r.items), nil
}

type memEntries struct{ items []*entity.ProgressEntry }

func (r *memEntries) window(keep func(*entity.ProgressEntry) bool, limit, offset int) ([]*entity.ProgressEntry, error) {
	var m []*entity.ProgressEntry
	for _, e := range r.items {
		if keep(e) {
			m = append(m, e)
		}
	}
	if offset >= len(m) {
		return nil, nil
	}
	end := offset + limit
	if end > len(m) {
		end = len(m)
	}
	return m[offset:end], nil
}

func (r *memEntries) ListByEmail(_ context.Context, email string, limit, offset int) ([]*entity.ProgressEntry, error) {
	return r.window(func(e *entity.ProgressEntry) bool { return e.Email == email }, limit, offset)
}

func (r *memEntries) ListAll(_ context.Context, limit, offset int) ([]*entity.ProgressEntry, error) {
	return r.window(func(*entity.ProgressEntry) bool { return true }, limit, offset)
}

func (r *memEntries) ListByCourse(_ context.Context, course string, limit, offset int) ([]*entity.ProgressEntry, error) {
	return r.window(func(e *entity.ProgressEntry) bool { return e.Course == course }, limit, offset)
}

func (r *memEntries) Create(_ context.Context, e *entity.ProgressEntry) error {
	r.items = append(r.items, e)
	return nil
}

type stubPDF struct{}

func (stubPDF) GenerateProgressPDF(context.Context, certification.Student, []certification.Record, certification.Summary) ([]byte, error) {
	return []byte("%PDF-1.3 stub"), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// App de prueba
// ──────────────────────────────────────────────────────────────────────────────

type testEnv struct {
	app     *fiber.App
	members *memMembers
	authUC  *auth.AuthUseCase
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	practitioners := &memPractitioners{}
	for i := 0; i < 45; i++ {
		region := "Kanto"
		if i%3 == 0 {
			region = "Kansai"
		}
		practitioners.items = append(practitioners.items, &entity.Practitioner{
			ID: fmt.Sprintf("jp-%02d", i), Name: fmt.Sprintf("Practitioner %02d", i),
			Country: "Japan", Region: []string{region},
		})
	}
	practitioners.items = append(practitioners.items, &entity.Practitioner{
		ID: "ca-01", Name: "Maple Shiatsu", Country: "Canada", Region: []string{"Ontario"},
	})

	members := &memMembers{}
	contacts := &memContacts{items: []*entity.Contact{
		{ID: testMemberID, Addresses: []entity.Address{{Street: "1 Main St", City: "Toronto", Country: "CA"}}},
		{ID: "c2"}, {ID: "c3"},
	}}
	entries := &memEntries{items: []*entity.ProgressEntry{
		{ID: "e1", Email: testEmail, FirstName: "Aiko", LastName: "Sato", Course: "L1",
			Category: "Core curriculum (Levels 1 -10)", Hours: decimal.NewFromInt(20)},
		{ID: "e2", Email: "other@example.com", FirstName: "Ben", LastName: "Ito", Course: "L2",
			Category: "Practice", Hours: decimal.NewFromInt(5)},
	}}

	svc := appdir.NewService(practitioners)
	authUC := auth.NewAuthUseCase(members, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: 60, Issuer: testIssuer})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		DirectorySvc:    svc,
		Sessions:        viewsession.NewStore(svc, viewsession.StoreConfig{TTL: time.Minute, RequestTimeout: time.Second}, zerolog.Nop()),
		AuthUC:          authUC,
		MemberUC:        usecase.NewMemberUseCase(contacts),
		CertificationUC: usecase.NewCertificationUseCase(entries, stubPDF{}, 0, zerolog.Nop()),
		AdminUC:         usecase.NewAdminUseCase(entries, contacts, 0, zerolog.Nop()),
		JWTSecret:       testJWTSecret,
	})
	return &testEnv{app: app, members: members, authUC: authUC}
}

func (e *testEnv) do(t *testing.T, method, path string, body any, authHeader string) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Directorio
// ──────────────────────────────────────────────────────────────────────────────

func TestPractitioners_ListYCount(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodGet, "/api/practitioners?country=Japan&skip=40", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	page := decode[dto.PractitionerPageResponse](t, resp)
	assert.Len(t, page.Items, 5)
	assert.Equal(t, 40, page.Skip)

	resp = env.do(t, http.MethodGet, "/api/practitioners/count?country=Japan&region=Kansai&region=Ontario", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 15, decode[dto.CountResponse](t, resp).Total)
}

func TestPractitioners_SkipNegativo(t *testing.T) {
	env := newTestEnv(t)
	resp := env.do(t, http.MethodGet, "/api/practitioners?skip=-1", nil, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPractitioners_RegionsYCountries(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodGet, "/api/practitioners/regions?country=Japan", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"Kansai", "Kanto"}, decode[[]string](t, resp))

	resp = env.do(t, http.MethodGet, "/api/practitioners/countries", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.ElementsMatch(t, []string{"Japan", "Canada"}, decode[[]string](t, resp))
}

func TestDirectorySession_FlujoCompleto(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodPost, "/api/directory/sessions", nil, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[dto.DirectorySessionResponse](t, resp)
	require.NotEmpty(t, created.ID)
	assert.Len(t, created.View.Items, 40)
	assert.Equal(t, "Showing 1-40 of 46 practitioners found", created.View.Status)

	path := "/api/directory/sessions/" + created.ID
	resp = env.do(t, http.MethodPost, path+"/events", dto.DirectoryEventRequest{Type: dto.EventCountry, Value: "Canada"}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	view := decode[dto.DirectorySessionResponse](t, resp).View
	assert.Equal(t, "1 practitioner found in Canada", view.Status)
	assert.True(t, view.Tags.Visible)

	resp = env.do(t, http.MethodPost, path+"/events", dto.DirectoryEventRequest{Type: "bogus"}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = env.do(t, http.MethodGet, path, nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Canada", decode[dto.DirectorySessionResponse](t, resp).View.Country)

	resp = env.do(t, http.MethodDelete, path, nil, "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = env.do(t, http.MethodGet, path, nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Base64 / miembros
// ──────────────────────────────────────────────────────────────────────────────

func TestDecodeBase64(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodPost, "/api/base64/decode", dto.Base64Request{Value: b64.Encode("Tōkyō")}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Tōkyō", decode[dto.Base64Response](t, resp).Value)

	resp = env.do(t, http.MethodPost, "/api/base64/decode", dto.Base64Request{Value: "***"}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_BASE64")
}

func TestMemberAddress(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodGet, "/api/members/me/address", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = env.do(t, http.MethodGet, "/api/members/me/address", nil, tokenForRole(t, "member"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	addr, err := b64.Decode(decode[dto.AddressResponse](t, resp).Address)
	require.NoError(t, err)
	assert.Equal(t, "1 Main St, Toronto, CA", addr)
}

// ──────────────────────────────────────────────────────────────────────────────
// Certificación / administración
// ──────────────────────────────────────────────────────────────────────────────

func TestCertification_Permisos(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodGet, "/api/certification/me", nil, tokenForRole(t, "member"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	mine := decode[dto.StudentRecordsResponse](t, resp)
	require.Len(t, mine.Records, 1)
	assert.Equal(t, "Core curriculum", mine.Records[0].Category)

	resp = env.do(t, http.MethodGet, "/api/certification/students", nil, tokenForRole(t, "member"))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = env.do(t, http.MethodGet, "/api/certification/students", nil, tokenForRole(t, "admin"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var students []map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&students))
	require.Len(t, students, 2)
	assert.Equal(t, "Aiko", students[0]["firstName"])

	resp = env.do(t, http.MethodGet, "/api/certification/students/other%40example.com", nil, tokenForRole(t, "admin"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[dto.StudentRecordsResponse](t, resp).Records, 1)
}

func TestCertification_SummaryPublico(t *testing.T) {
	env := newTestEnv(t)
	body := []map[string]any{{"category": "Core curriculum", "hours": "200"}}

	resp := env.do(t, http.MethodPost, "/api/certification/summary", body, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.SummaryResponse](t, resp)
	assert.Contains(t, out.Text, "200 / 200 hrs (100%)")
	assert.Contains(t, out.Text, "Hours remaining for requirements: 300")
}

func TestCertification_ReportPDF(t *testing.T) {
	env := newTestEnv(t)
	resp := env.do(t, http.MethodGet, "/api/certification/me/report.pdf", nil, tokenForRole(t, "member"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
}

func TestAdmin_MissingEmailsYContacts(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodGet, "/api/admin/courses/L1/missing-emails", nil, tokenForRole(t, "admin"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"other@example.com"}, decode[[]string](t, resp))

	resp = env.do(t, http.MethodGet, "/api/admin/contacts?limit=2&offset=0", nil, tokenForRole(t, "admin"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	chunk := decode[dto.ContactsChunkResponse](t, resp)
	assert.Len(t, chunk.Items, 2)
	assert.True(t, chunk.HasMore)
	assert.Equal(t, 3, chunk.TotalCount)

	resp = env.do(t, http.MethodGet, "/api/admin/contacts", nil, tokenForRole(t, "member"))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestAuth_RegisterSoloAdminYLogin(t *testing.T) {
	env := newTestEnv(t)
	in := dto.RegisterRequest{Email: "new@example.com", Password: "longenough", FirstName: "Nao"}

	resp := env.do(t, http.MethodPost, "/api/auth/register", in, tokenForRole(t, "member"))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = env.do(t, http.MethodPost, "/api/auth/register", in, tokenForRole(t, "admin"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = env.do(t, http.MethodPost, "/api/auth/register", in, tokenForRole(t, "admin"))
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = env.do(t, http.MethodPost, "/api/auth/login", dto.LoginRequest{Email: in.Email, Password: in.Password}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, decode[dto.LoginResponse](t, resp).Token)

	resp = env.do(t, http.MethodPost, "/api/auth/login", dto.LoginRequest{Email: in.Email, Password: "wrong-pass"}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
