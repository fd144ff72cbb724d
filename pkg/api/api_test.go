package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoforge-dev/autoforge/ent"
	"github.com/autoforge-dev/autoforge/pkg/eventlog"
	"github.com/autoforge-dev/autoforge/pkg/models"
	"github.com/autoforge-dev/autoforge/pkg/prompts"
	"github.com/autoforge-dev/autoforge/pkg/services"
	testdb "github.com/autoforge-dev/autoforge/test/database"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeOrch records calls and returns scripted results, so handler tests
// do not need a live session loop.
type fakeOrch struct {
	initResult   *ent.AgentSession
	initErr      error
	codeResult   *ent.AgentSession
	codeErr      error
	stopID       string
	stopErr      error
	cancelErr    error
	logsDir      string
	activeID     string
	stopAfter    []string
	stopCleared  []string
	stopped      []string
	cancelled    []string
	lastMaxIters *int
}

func (f *fakeOrch) StartInitialization(_ context.Context, projectID, _ string) (*ent.AgentSession, error) {
	return f.initResult, f.initErr
}

func (f *fakeOrch) StartCodingSessions(_ context.Context, projectID, _ string, maxIterations *int) (*ent.AgentSession, error) {
	f.lastMaxIters = maxIterations
	return f.codeResult, f.codeErr
}

func (f *fakeOrch) StopSession(_ context.Context, projectID string) (string, error) {
	f.stopped = append(f.stopped, projectID)
	return f.stopID, f.stopErr
}

func (f *fakeOrch) SetStopAfterCurrent(projectID string) {
	f.stopAfter = append(f.stopAfter, projectID)
}

func (f *fakeOrch) ClearStopAfter(projectID string) {
	f.stopCleared = append(f.stopCleared, projectID)
}

func (f *fakeOrch) ActiveSessionID(_ string) string { return f.activeID }

func (f *fakeOrch) CancelInitialization(_ context.Context, projectID string) error {
	f.cancelled = append(f.cancelled, projectID)
	return f.cancelErr
}

func (f *fakeOrch) LogsDir(_ *ent.Project) string { return f.logsDir }

type apiHarness struct {
	router   *gin.Engine
	orch     *fakeOrch
	projects *services.ProjectService
	sessions *services.SessionService
	items    *services.WorkItemService
	quality  *services.QualityService
	analyses *services.AnalysisService
	versions *services.PromptVersionService
}

func newAPIHarness(t *testing.T) *apiHarness {
	t.Helper()
	client := testdb.NewTestClient(t)

	h := &apiHarness{
		orch:     &fakeOrch{logsDir: t.TempDir()},
		projects: services.NewProjectService(client.Client),
		sessions: services.NewSessionService(client.Client),
		items:    services.NewWorkItemService(client.Client),
		quality:  services.NewQualityService(client.Client),
		analyses: services.NewAnalysisService(client.Client),
		versions: services.NewPromptVersionService(client.Client),
	}

	srv := NewServer(Deps{
		DB:       client,
		Projects: h.projects,
		Sessions: h.sessions,
		Items:    h.items,
		Quality:  h.quality,
		Analyses: h.analyses,
		Versions: h.versions,
		Prompts:  prompts.NewManager("", nil, nil),
		Orch:     h.orch,
	})
	h.router = srv.Router()
	return h
}

func (h *apiHarness) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "body: %s", rec.Body.String())
	return out
}

func (h *apiHarness) createProject(t *testing.T, name string) *ent.Project {
	t.Helper()
	p, err := h.projects.CreateProject(context.Background(), models.CreateProjectRequest{
		Name:        name,
		SpecContent: "# build something",
	})
	require.NoError(t, err)
	return p
}

func TestHealth(t *testing.T) {
	h := newAPIHarness(t)
	rec := h.do(t, http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[map[string]any](t, rec)
	assert.Equal(t, "healthy", body["status"])
}

func TestProjectLifecycle(t *testing.T) {
	h := newAPIHarness(t)

	rec := h.do(t, http.MethodPost, "/api/v1/projects", models.CreateProjectRequest{
		Name:        "lifecycle",
		SpecContent: "# spec",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[map[string]any](t, rec)
	id := created["id"].(string)

	rec = h.do(t, http.MethodGet, "/api/v1/projects/"+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = h.do(t, http.MethodPost, "/api/v1/projects/"+id+"/rename",
		models.RenameProjectRequest{Name: "renamed"})
	require.Equal(t, http.StatusOK, rec.Code)
	renamed := decode[map[string]any](t, rec)
	assert.Equal(t, "renamed", renamed["name"])

	rec = h.do(t, http.MethodGet, "/api/v1/projects", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[models.ProjectListResponse](t, rec)
	assert.Equal(t, 1, list.TotalCount)

	rec = h.do(t, http.MethodDelete, "/api/v1/projects/"+id, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = h.do(t, http.MethodGet, "/api/v1/projects/"+id, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateProjectValidation(t *testing.T) {
	h := newAPIHarness(t)

	rec := h.do(t, http.MethodPost, "/api/v1/projects", models.CreateProjectRequest{Name: ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSettingsRoundTrip(t *testing.T) {
	h := newAPIHarness(t)
	p := h.createProject(t, "settings")

	rec := h.do(t, http.MethodPut, "/api/v1/projects/"+p.ID+"/settings",
		models.UpdateSettingsRequest{Settings: map[string]any{"sandbox_type": "container"}})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = h.do(t, http.MethodGet, "/api/v1/projects/"+p.ID+"/settings", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[map[string]map[string]any](t, rec)
	assert.Equal(t, "container", body["settings"]["sandbox_type"])
}

func TestEpicsTree(t *testing.T) {
	h := newAPIHarness(t)
	ctx := context.Background()
	p := h.createProject(t, "tree")

	epic, err := h.items.CreateEpic(ctx, p.ID, models.CreateEpicRequest{Name: "auth"})
	require.NoError(t, err)
	task, err := h.items.CreateTask(ctx, epic.ID, models.CreateTaskRequest{Description: "login form"})
	require.NoError(t, err)
	_, err = h.items.CreateTestCase(ctx, task.ID, models.CreateTestCaseRequest{Description: "submits"})
	require.NoError(t, err)

	rec := h.do(t, http.MethodGet, "/api/v1/projects/"+p.ID+"/epics", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Epics []struct {
			Epic  map[string]any `json:"epic"`
			Tasks []struct {
				Task  map[string]any   `json:"task"`
				Tests []map[string]any `json:"tests"`
			} `json:"tasks"`
		} `json:"epics"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Epics, 1)
	assert.Equal(t, "auth", body.Epics[0].Epic["name"])
	require.Len(t, body.Epics[0].Tasks, 1)
	assert.Len(t, body.Epics[0].Tasks[0].Tests, 1)
}

func TestStartInitializationAck(t *testing.T) {
	h := newAPIHarness(t)
	ctx := context.Background()
	p := h.createProject(t, "init-ack")

	session, err := h.sessions.AllocateSession(ctx, p.ID, "initializer", "test-model", nil)
	require.NoError(t, err)
	h.orch.initResult = session

	rec := h.do(t, http.MethodPost, "/api/v1/projects/"+p.ID+"/initialize", nil)
	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())

	ack := decode[models.SessionAck](t, rec)
	assert.Equal(t, session.ID, ack.SessionID)
	assert.Equal(t, 0, ack.SessionNumber)
	assert.Equal(t, "pending", ack.Status)
}

func TestStartCodingBusyConflict(t *testing.T) {
	h := newAPIHarness(t)
	p := h.createProject(t, "busy")
	h.orch.codeErr = &services.BusyError{ProjectID: p.ID, SessionID: "sid", SessionNumber: 3}

	rec := h.do(t, http.MethodPost, "/api/v1/projects/"+p.ID+"/code",
		models.StartSessionRequest{Model: "test-model"})
	require.Equal(t, http.StatusConflict, rec.Code)

	body := decode[map[string]any](t, rec)
	assert.Equal(t, "sid", body["session_id"])
	assert.Equal(t, float64(3), body["session_number"])
}

func TestStopDispatch(t *testing.T) {
	h := newAPIHarness(t)
	p := h.createProject(t, "stop")

	rec := h.do(t, http.MethodPost, "/api/v1/projects/"+p.ID+"/stop",
		models.StopSessionRequest{Immediate: false})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{p.ID}, h.orch.stopAfter)
	assert.Empty(t, h.orch.stopped)

	h.orch.stopID = "session-1"
	rec = h.do(t, http.MethodPost, "/api/v1/projects/"+p.ID+"/stop",
		models.StopSessionRequest{Immediate: true})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{p.ID}, h.orch.stopped)

	body := decode[map[string]any](t, rec)
	assert.Equal(t, "session-1", body["session_id"])
}

func TestStopAfterToggle(t *testing.T) {
	h := newAPIHarness(t)
	p := h.createProject(t, "stop-after")

	rec := h.do(t, http.MethodPost, "/api/v1/projects/"+p.ID+"/stop-after", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{p.ID}, h.orch.stopAfter)

	rec = h.do(t, http.MethodDelete, "/api/v1/projects/"+p.ID+"/stop-after", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{p.ID}, h.orch.stopCleared)
}

func TestStopSessionRequiresActive(t *testing.T) {
	h := newAPIHarness(t)
	ctx := context.Background()
	p := h.createProject(t, "stop-session")

	session, err := h.sessions.AllocateSession(ctx, p.ID, "coding", "test-model", nil)
	require.NoError(t, err)

	rec := h.do(t, http.MethodPost, "/api/v1/sessions/"+session.ID+"/stop", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	h.orch.activeID = session.ID
	h.orch.stopID = session.ID
	rec = h.do(t, http.MethodPost, "/api/v1/sessions/"+session.ID+"/stop", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{p.ID}, h.orch.stopped)
}

func TestStopWithoutActiveSessionMapsNotFound(t *testing.T) {
	h := newAPIHarness(t)
	p := h.createProject(t, "stop-idle")
	h.orch.stopErr = services.ErrNotFound

	rec := h.do(t, http.MethodPost, "/api/v1/projects/"+p.ID+"/stop",
		models.StopSessionRequest{Immediate: true})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLogsEndpoints(t *testing.T) {
	h := newAPIHarness(t)
	p := h.createProject(t, "logs")

	rec := h.do(t, http.MethodGet, "/api/v1/projects/"+p.ID+"/logs", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	empty := decode[map[string][]string](t, rec)
	assert.Empty(t, empty["logs"])

	logger, err := eventlog.NewLogger(h.orch.logsDir, 1)
	require.NoError(t, err)
	require.NoError(t, logger.Log(eventlog.Event{Type: "session_start"}))
	require.NoError(t, logger.Log(eventlog.Event{Type: "session_end"}))
	require.NoError(t, logger.Close())

	rec = h.do(t, http.MethodGet, "/api/v1/projects/"+p.ID+"/logs", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	listed := decode[map[string][]string](t, rec)
	require.Len(t, listed["logs"], 1)
	name := listed["logs"][0]

	rec = h.do(t, http.MethodGet, "/api/v1/projects/"+p.ID+"/logs/"+name, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "session_start")

	rec = h.do(t, http.MethodGet, "/api/v1/projects/"+p.ID+"/logs/session_1/events", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var events struct {
		Events []eventlog.Event `json:"events"`
		Count  int              `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &events))
	assert.Equal(t, 2, events.Count)

	rec = h.do(t, http.MethodGet, "/api/v1/projects/"+p.ID+"/logs/session_99", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func seedProposal(t *testing.T, h *apiHarness, status string) *ent.PromptProposal {
	t.Helper()
	ctx := context.Background()

	until := time.Now()
	analysis, err := h.analyses.CreateAnalysis(ctx, "", "test", until.Add(-7*24*time.Hour), until)
	require.NoError(t, err)

	proposals, err := h.analyses.CreateProposals(ctx, analysis.ID, []services.ProposalInput{{
		PromptFile:   prompts.CodingPromptContainer,
		SectionName:  "Browser Verification",
		ChangeType:   "addition",
		ProposedText: "Open the page after every UI change.",
		Rationale:    "reviews keep flagging unverified changes",
		Confidence:   7,
	}})
	require.NoError(t, err)
	require.Len(t, proposals, 1)

	if status != "proposed" {
		_, err = h.analyses.UpdateProposalStatus(ctx, proposals[0].ID, status)
		require.NoError(t, err)
	}
	p, err := h.analyses.GetProposal(ctx, proposals[0].ID)
	require.NoError(t, err)
	return p
}

func TestApplyProposalCreatesVersion(t *testing.T) {
	h := newAPIHarness(t)
	proposal := seedProposal(t, h, "accepted")

	rec := h.do(t, http.MethodPost, "/api/v1/improve/proposals/"+proposal.ID+"/apply",
		models.ApplyProposalRequest{AppliedBy: "tester"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	resp := decode[models.ApplyProposalResponse](t, rec)
	assert.Equal(t, "implemented", resp.Proposal.Status.String())
	require.NotNil(t, resp.Version)
	assert.Equal(t, prompts.CodingPromptContainer, resp.Version.PromptFile)
	assert.True(t, resp.Version.Active)
	assert.Contains(t, resp.Version.Content, "## Browser Verification")
	assert.Contains(t, resp.Version.Content, "Open the page after every UI change.")
}

func TestApplyProposalRequiresAccepted(t *testing.T) {
	h := newAPIHarness(t)
	proposal := seedProposal(t, h, "proposed")

	rec := h.do(t, http.MethodPost, "/api/v1/improve/proposals/"+proposal.ID+"/apply", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestListProposalsStatusFilter(t *testing.T) {
	h := newAPIHarness(t)
	proposal := seedProposal(t, h, "rejected")
	aid := proposal.AnalysisID

	rec := h.do(t, http.MethodGet, "/api/v1/improve/analyses/"+aid+"/proposals?status=rejected", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[map[string][]map[string]any](t, rec)
	require.Len(t, body["proposals"], 1)
	assert.Equal(t, proposal.ID, body["proposals"][0]["id"])

	rec = h.do(t, http.MethodGet, "/api/v1/improve/analyses/"+aid+"/proposals?status=accepted", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body = decode[map[string][]map[string]any](t, rec)
	assert.Empty(t, body["proposals"])

	rec = h.do(t, http.MethodGet, "/api/v1/improve/analyses/"+aid+"/proposals?status=bogus", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateProposalStatus(t *testing.T) {
	h := newAPIHarness(t)
	proposal := seedProposal(t, h, "proposed")

	rec := h.do(t, http.MethodPut, "/api/v1/improve/proposals/"+proposal.ID+"/status",
		models.UpdateProposalStatusRequest{Status: "rejected"})
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode[map[string]any](t, rec)
	assert.Equal(t, "rejected", body["status"])
}

func TestListVersionsRequiresPromptFile(t *testing.T) {
	h := newAPIHarness(t)
	rec := h.do(t, http.MethodGet, "/api/v1/improve/versions", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
