package publications_test

import (
	"net/http"
	"testing"

	"publications-app/database"
	"publications-app/internal/domain/publications"
	"publications-app/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreatePublication(t *testing.T) {
	sd := testutil.SetupDB(t)
	r := testutil.Router()
	token := testutil.TokenFor(t, &sd.Alice)

	body := map[string]interface{}{
		"type":     "PROBLEM",
		"title":    "Why do octopuses change colour?",
		"keywords": []string{"cephalopods", "camouflage"},
	}

	w := testutil.Do(t, r, http.MethodPost, "/publications", token, body)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]string
	testutil.DecodeBody(t, w, &resp)
	require.NotEmpty(t, resp["id"])

	var p publications.Publication
	require.NoError(t, database.DB.Preload("Statuses").First(&p, "id = ?", resp["id"]).Error)
	assert.Equal(t, publications.StatusDraft, p.CurrentStatus)
	require.Len(t, p.Statuses, 1)
	assert.Equal(t, publications.StatusDraft, p.Statuses[0].Status)
	assert.Equal(t, sd.Alice.ID, p.UserID)
}

func TestCreatePublicationValidation(t *testing.T) {
	sd := testutil.SetupDB(t)
	r := testutil.Router()
	token := testutil.TokenFor(t, &sd.Alice)

	cases := []map[string]interface{}{
		{"type": "ESSAY", "title": "Wrong type"},
		{"type": "PROBLEM"}, // missing title
		{"type": "PROBLEM", "title": "x", "licence": "MIT"},
		{"type": "PROBLEM", "title": "x", "unknownField": true},
	}

	for _, body := range cases {
		w := testutil.Do(t, r, http.MethodPost, "/publications", token, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body: %v", body)
	}

	tooMany := make([]string, 11)
	for i := range tooMany {
		tooMany[i] = "kw"
	}
	w := testutil.Do(t, r, http.MethodPost, "/publications", token,
		map[string]interface{}{"type": "PROBLEM", "title": "x", "keywords": tooMany})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDraftVisibility(t *testing.T) {
	sd := testutil.SetupDB(t)
	r := testutil.Router()

	draft := sd.Drafts[publications.TypeProblem]
	path := "/publications/" + draft.ID

	// hidden from anonymous readers and strangers
	w := testutil.Do(t, r, http.MethodGet, path, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = testutil.Do(t, r, http.MethodGet, path, testutil.TokenFor(t, &sd.Carol), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// visible to the author
	w = testutil.Do(t, r, http.MethodGet, path, testutil.TokenFor(t, &sd.Alice), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetLivePublicationDetail(t *testing.T) {
	sd := testutil.SetupDB(t)
	r := testutil.Router()

	live := sd.Live[publications.TypeProblem]
	w := testutil.Do(t, r, http.MethodGet, "/publications/"+live.ID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		ID            string `json:"id"`
		CurrentStatus string `json:"currentStatus"`
		User          *struct {
			ID string `json:"id"`
		} `json:"user"`
		CoAuthors []struct {
			ID string `json:"id"`
		} `json:"coAuthors"`
		PublicationStatus []struct {
			Status string `json:"status"`
		} `json:"publicationStatus"`
		Ratings []struct {
			Category string  `json:"category"`
			Average  float64 `json:"average"`
			Count    int64   `json:"count"`
		} `json:"ratings"`
		LinkedFrom []struct {
			PublicationID string `json:"publicationId"`
		} `json:"linkedFrom"`
	}
	testutil.DecodeBody(t, w, &resp)

	assert.Equal(t, live.ID, resp.ID)
	assert.Equal(t, "LIVE", resp.CurrentStatus)
	require.NotNil(t, resp.User)
	assert.Equal(t, sd.Alice.ID, resp.User.ID)
	require.Len(t, resp.CoAuthors, 1)
	assert.Equal(t, sd.Bob.ID, resp.CoAuthors[0].ID)

	// status history in chronological order
	require.Len(t, resp.PublicationStatus, 2)
	assert.Equal(t, "DRAFT", resp.PublicationStatus[0].Status)
	assert.Equal(t, "LIVE", resp.PublicationStatus[1].Status)

	// seeded ratings aggregate per category
	require.Len(t, resp.Ratings, 2)
	assert.Equal(t, "ORIGINAL", resp.Ratings[0].Category)
	assert.Equal(t, float64(6), resp.Ratings[0].Average)
	assert.Equal(t, int64(1), resp.Ratings[0].Count)

	// hypothesis links back to this problem
	require.Len(t, resp.LinkedFrom, 1)
	assert.Equal(t, sd.Live[publications.TypeHypothesis].ID, resp.LinkedFrom[0].PublicationID)
}

func TestBrowseLivePublications(t *testing.T) {
	testutil.SetupDB(t)
	r := testutil.Router()

	w := testutil.Do(t, r, http.MethodGet, "/publications", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Publications []struct {
			CurrentStatus string `json:"currentStatus"`
			Type          string `json:"type"`
		} `json:"publications"`
		Total int64 `json:"total"`
	}
	testutil.DecodeBody(t, w, &resp)

	// one live publication per chain type
	assert.Equal(t, int64(7), resp.Total)
	for _, p := range resp.Publications {
		assert.Equal(t, "LIVE", p.CurrentStatus)
	}

	// type filter
	w = testutil.Do(t, r, http.MethodGet, "/publications?type=PROBLEM,HYPOTHESIS", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	testutil.DecodeBody(t, w, &resp)
	assert.Equal(t, int64(2), resp.Total)

	// search by title
	w = testutil.Do(t, r, http.MethodGet, "/publications?search=published+protocol", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	testutil.DecodeBody(t, w, &resp)
	assert.Equal(t, int64(1), resp.Total)
	assert.Equal(t, "PROTOCOL", resp.Publications[0].Type)

	// bad type filter
	w = testutil.Do(t, r, http.MethodGet, "/publications?type=ESSAY", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateDraft(t *testing.T) {
	sd := testutil.SetupDB(t)
	r := testutil.Router()
	token := testutil.TokenFor(t, &sd.Alice)

	draft := sd.Drafts[publications.TypeProblem]
	body := map[string]interface{}{
		"title":       "Sharper problem statement",
		"description": "Short summary.",
	}

	w := testutil.Do(t, r, http.MethodPatch, "/publications/"+draft.ID, token, body)
	require.Equal(t, http.StatusOK, w.Code)

	var p publications.Publication
	require.NoError(t, database.DB.First(&p, "id = ?", draft.ID).Error)
	assert.Equal(t, "Sharper problem statement", p.Title)
	assert.Equal(t, "Short summary.", p.Description)
}

func TestUpdateRules(t *testing.T) {
	sd := testutil.SetupDB(t)
	r := testutil.Router()

	draft := sd.Drafts[publications.TypeProblem]
	live := sd.Live[publications.TypeProblem]
	body := map[string]interface{}{"title": "New title"}

	// non-author
	w := testutil.Do(t, r, http.MethodPatch, "/publications/"+draft.ID, testutil.TokenFor(t, &sd.Carol), body)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// co-authors cannot edit either
	w = testutil.Do(t, r, http.MethodPatch, "/publications/"+live.ID, testutil.TokenFor(t, &sd.Bob), body)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// live publications are frozen
	w = testutil.Do(t, r, http.MethodPatch, "/publications/"+live.ID, testutil.TokenFor(t, &sd.Alice), body)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestPublishDraft(t *testing.T) {
	sd := testutil.SetupDB(t)
	r := testutil.Router()
	token := testutil.TokenFor(t, &sd.Alice)

	draft := sd.Drafts[publications.TypeProblem]
	w := testutil.Do(t, r, http.MethodPut, "/publications/"+draft.ID+"/status/LIVE", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var p publications.Publication
	require.NoError(t, database.DB.Preload("Statuses", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC")
	}).First(&p, "id = ?", draft.ID).Error)

	assert.Equal(t, publications.StatusLive, p.CurrentStatus)
	require.Len(t, p.Statuses, 2)
	assert.Equal(t, publications.StatusDraft, p.Statuses[0].Status)
	assert.Equal(t, publications.StatusLive, p.Statuses[1].Status)
}

func TestPublishRules(t *testing.T) {
	sd := testutil.SetupDB(t)
	r := testutil.Router()
	aliceToken := testutil.TokenFor(t, &sd.Alice)

	draft := sd.Drafts[publications.TypeProblem]
	live := sd.Live[publications.TypeProblem]

	// only the author can publish
	w := testutil.Do(t, r, http.MethodPut, "/publications/"+draft.ID+"/status/LIVE",
		testutil.TokenFor(t, &sd.Carol), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// no transition for an already live publication
	w = testutil.Do(t, r, http.MethodPut, "/publications/"+live.ID+"/status/LIVE", aliceToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// LIVE is the only target status
	w = testutil.Do(t, r, http.MethodPut, "/publications/"+live.ID+"/status/DRAFT", aliceToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPublishIncompleteDraftFails(t *testing.T) {
	sd := testutil.SetupDB(t)
	r := testutil.Router()
	token := testutil.TokenFor(t, &sd.Alice)

	// strip the content so the completeness gate trips
	draft := sd.Drafts[publications.TypeHypothesis]
	require.NoError(t, database.DB.Model(draft).Update("content", "").Error)

	w := testutil.Do(t, r, http.MethodPut, "/publications/"+draft.ID+"/status/LIVE", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "not ready")
}

func TestDeleteDraft(t *testing.T) {
	sd := testutil.SetupDB(t)
	r := testutil.Router()
	token := testutil.TokenFor(t, &sd.Alice)

	draft := sd.Drafts[publications.TypeInterpretation]
	w := testutil.Do(t, r, http.MethodDelete, "/publications/"+draft.ID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	database.DB.Model(&publications.Publication{}).Where("id = ?", draft.ID).Count(&count)
	assert.Equal(t, int64(0), count)

	// the owned reference rows went with it
	var refCount int64
	database.DB.Table("references").Where("publication_id = ?", draft.ID).Count(&refCount)
	assert.Equal(t, int64(0), refCount)

	// live publications cannot be deleted
	live := sd.Live[publications.TypeProblem]
	w = testutil.Do(t, r, http.MethodDelete, "/publications/"+live.ID, token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
