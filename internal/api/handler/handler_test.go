package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/frostodev/sedona/internal/model"
	"github.com/frostodev/sedona/internal/repository"
	"github.com/frostodev/sedona/internal/service"
	"github.com/frostodev/sedona/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ── mock repositories ──

type stubScheduleRepo struct {
	sections  []repository.SectionRow
	roomUsage []repository.RoomUsageRow
	rooms     []string
	occupancy map[string][]int
	err       error
}

func (s *stubScheduleRepo) FindSections(_ context.Context, _ repository.Scope, _ repository.SectionFilter) ([]repository.SectionRow, error) {
	return s.sections, s.err
}

func (s *stubScheduleRepo) FindRoomUsage(_ context.Context, _ repository.Scope, _ string) ([]repository.RoomUsageRow, error) {
	return s.roomUsage, s.err
}

func (s *stubScheduleRepo) ListRooms(_ context.Context, _ repository.Scope) ([]string, error) {
	return s.rooms, s.err
}

func (s *stubScheduleRepo) OccupancyMap(_ context.Context, _ repository.Scope, _ int) (map[string][]int, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.occupancy, nil
}

type stubCatalogRepo struct {
	campuses []model.Campus
	err      error
}

func (s *stubCatalogRepo) ListCampuses(_ context.Context) ([]model.Campus, error) {
	return s.campuses, s.err
}

func (s *stubCatalogRepo) ListSemesters(_ context.Context, _ string) ([]string, error) {
	return []string{"2026-1"}, s.err
}

func (s *stubCatalogRepo) ListSubjects(_ context.Context, _ repository.Scope) ([]repository.SubjectRef, error) {
	return nil, s.err
}

func (s *stubCatalogRepo) ListSections(_ context.Context, _ int) ([]repository.SectionRef, error) {
	return nil, s.err
}

type stubStatsRepo struct {
	err error
}

func (s *stubStatsRepo) CountSubjects(_ context.Context, _ *repository.Scope) (int64, error) {
	return 10, s.err
}
func (s *stubStatsRepo) CountSections(_ context.Context, _ *repository.Scope) (int64, error) {
	return 20, s.err
}
func (s *stubStatsRepo) CountInstructors(_ context.Context, _ *repository.Scope) (int64, error) {
	return 5, s.err
}
func (s *stubStatsRepo) TopInstructorBySections(_ context.Context, _ *repository.Scope) (*repository.RankRow, error) {
	return nil, s.err
}
func (s *stubStatsRepo) TopInstructorBySubjects(_ context.Context, _ *repository.Scope) (*repository.RankRow, error) {
	return nil, s.err
}
func (s *stubStatsRepo) TopSubjectByInstructors(_ context.Context, _ *repository.Scope) (*repository.RankRow, error) {
	return nil, s.err
}
func (s *stubStatsRepo) TopSubjectBySections(_ context.Context, _ *repository.Scope) (*repository.RankRow, error) {
	return nil, s.err
}
func (s *stubStatsRepo) TopRoom(_ context.Context, _ *repository.Scope) (*repository.RankRow, error) {
	return nil, s.err
}
func (s *stubStatsRepo) BusiestWeekday(_ context.Context, _ *repository.Scope) (*repository.WeekdayRank, error) {
	return nil, s.err
}

// ── harness ──

type handlerEnv struct {
	schedule *stubScheduleRepo
	catalog  *stubCatalogRepo
	stats    *stubStatsRepo
	router   *gin.Engine
}

func setupHandlers() *handlerEnv {
	env := &handlerEnv{
		schedule: &stubScheduleRepo{occupancy: map[string][]int{}},
		catalog:  &stubCatalogRepo{},
		stats:    &stubStatsRepo{},
	}

	logger := zap.NewNop()
	room := service.NewRoomService(env.schedule, logger)

	h := &Handler{
		Search:    NewSearchHandler(service.NewSearchService(env.schedule, logger)),
		Room:      NewRoomHandler(room),
		Occupancy: NewOccupancyHandler(service.NewOccupancyService(env.schedule, logger)),
		Catalog:   NewCatalogHandler(service.NewCatalogService(env.catalog, nil, 0, logger)),
		Stats:     NewStatsHandler(service.NewStatsService(env.stats, logger)),
		Export:    NewExportHandler(service.NewExportService(room, logger)),
	}

	r := gin.New()
	v1 := r.Group("/api/v1")
	v1.GET("/catalog/campuses", h.Catalog.ListCampuses)
	v1.GET("/catalog/semesters", h.Catalog.ListSemesters)
	v1.GET("/catalog/subjects", h.Catalog.ListSubjects)
	v1.GET("/catalog/sections", h.Catalog.ListSections)
	v1.GET("/search/subjects", h.Search.SearchSubjects)
	v1.GET("/search/rooms", h.Room.SearchRooms)
	v1.GET("/search/empty-rooms", h.Occupancy.FindEmptyRooms)
	v1.GET("/stats", h.Stats.GetStats)
	v1.GET("/export/rooms", h.Export.ExportRooms)
	env.router = r
	return env
}

func (e *handlerEnv) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

// ── tests ──

func TestSearchSubjectsOK(t *testing.T) {
	env := setupHandlers()
	code := "MAT024"
	env.schedule.sections = []repository.SectionRow{{
		SubjectCode:  code,
		SubjectName:  "Calculus II",
		SectionLabel: "201",
		Capacity:     40,
	}}

	w := env.get(t, "/api/v1/search/subjects?campus=SJ&semester=2026-1&q=calculus")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	resp := decodeEnvelope(t, w)
	if resp.Code != 0 {
		t.Errorf("envelope code = %d, want 0", resp.Code)
	}
}

func TestSearchSubjectsMissingParams(t *testing.T) {
	env := setupHandlers()

	w := env.get(t, "/api/v1/search/subjects?campus=SJ")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	resp := decodeEnvelope(t, w)
	if resp.Message != "incomplete or invalid parameters" {
		t.Errorf("message = %q, want the generic validation message", resp.Message)
	}
}

func TestSearchSubjectsStorageErrorOpaque(t *testing.T) {
	env := setupHandlers()
	env.schedule.err = repository.ErrStorage

	w := env.get(t, "/api/v1/search/subjects?campus=SJ&semester=2026-1&q=x")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	resp := decodeEnvelope(t, w)
	if resp.Message != "error while processing the request" {
		t.Errorf("message = %q, want the opaque processing error", resp.Message)
	}
}

func TestSearchRoomsOK(t *testing.T) {
	env := setupHandlers()
	env.schedule.roomUsage = []repository.RoomUsageRow{{
		Room: "B008", SubjectCode: "MAT024", SubjectName: "Calculus II",
		SectionLabel: "201", Weekday: 1, Block: 1,
	}}

	w := env.get(t, "/api/v1/search/rooms?campus=SJ&semester=2026-1&room=B008")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestSearchRoomsMissingRoom(t *testing.T) {
	env := setupHandlers()

	w := env.get(t, "/api/v1/search/rooms?campus=SJ&semester=2026-1")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestFindEmptyRoomsOK(t *testing.T) {
	env := setupHandlers()
	env.schedule.rooms = []string{"B008"}
	env.schedule.occupancy = map[string][]int{"B008": {1}}

	w := env.get(t, "/api/v1/search/empty-rooms?campus=SJ&semester=2026-1&weekday=1&blocks=0&blocks=3")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestFindEmptyRoomsBadWeekday(t *testing.T) {
	env := setupHandlers()

	for _, q := range []string{
		"/api/v1/search/empty-rooms?campus=SJ&semester=2026-1&weekday=abc&blocks=0",
		"/api/v1/search/empty-rooms?campus=SJ&semester=2026-1&weekday=9&blocks=0",
		"/api/v1/search/empty-rooms?campus=SJ&semester=2026-1&weekday=1&blocks=12",
		"/api/v1/search/empty-rooms?campus=SJ&semester=2026-1&weekday=1",
	} {
		if w := env.get(t, q); w.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", q, w.Code)
		}
	}
}

func TestCatalogCampusesOK(t *testing.T) {
	env := setupHandlers()
	env.catalog.campuses = []model.Campus{{ID: 1, Name: "San Joaquin"}}

	w := env.get(t, "/api/v1/catalog/campuses")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	resp := decodeEnvelope(t, w)
	if resp.Data == nil {
		t.Error("data should carry the campus list")
	}
}

func TestCatalogSectionsBadID(t *testing.T) {
	env := setupHandlers()

	w := env.get(t, "/api/v1/catalog/sections?subject_id=abc")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestStatsHalfScope(t *testing.T) {
	env := setupHandlers()

	w := env.get(t, "/api/v1/stats?campus=SJ")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestStatsGlobalOK(t *testing.T) {
	env := setupHandlers()

	w := env.get(t, "/api/v1/stats")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestExportRoomsOK(t *testing.T) {
	env := setupHandlers()
	env.schedule.roomUsage = []repository.RoomUsageRow{{
		Room: "B008", SubjectCode: "MAT024", SubjectName: "Calculus II",
		SectionLabel: "201", Weekday: 1, Block: 1,
	}}

	w := env.get(t, "/api/v1/export/rooms?campus=SJ&semester=2026-1&room=B008")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != xlsxContentType {
		t.Errorf("content type = %q, want xlsx", ct)
	}
	if w.Header().Get("Content-Disposition") == "" {
		t.Error("missing Content-Disposition header")
	}
	if w.Body.Len() == 0 {
		t.Error("empty workbook body")
	}
}

func TestExportRoomsMissingParams(t *testing.T) {
	env := setupHandlers()

	w := env.get(t, "/api/v1/export/rooms?campus=SJ")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
