package publications

import (
	"testing"

	"publications-app/internal/domain/users"

	"github.com/stretchr/testify/assert"
)

func draftPublication() *Publication {
	return &Publication{
		ID:            "pub-1",
		Type:          TypeProblem,
		Title:         "A well defined problem",
		Content:       "<p>Details</p>",
		Licence:       LicenceCCBY,
		CurrentStatus: StatusDraft,
		UserID:        "author-1",
		CoAuthors:     []users.User{{ID: "coauthor-1"}},
	}
}

func TestCanEdit(t *testing.T) {
	p := draftPublication()

	assert.NoError(t, CanEdit(p, "author-1"))
	assert.ErrorIs(t, CanEdit(p, "coauthor-1"), ErrNotAuthor)
	assert.ErrorIs(t, CanEdit(p, "someone-else"), ErrNotAuthor)

	p.CurrentStatus = StatusLive
	assert.ErrorIs(t, CanEdit(p, "author-1"), ErrNotDraft)
}

func TestCanViewDraft(t *testing.T) {
	p := draftPublication()

	assert.True(t, CanView(p, "author-1"))
	assert.True(t, CanView(p, "coauthor-1"))
	assert.False(t, CanView(p, "someone-else"))
	assert.False(t, CanView(p, ""))
}

func TestCanViewLive(t *testing.T) {
	p := draftPublication()
	p.CurrentStatus = StatusLive

	assert.True(t, CanView(p, "someone-else"))
	assert.True(t, CanView(p, ""))
}

func TestReadyToPublish(t *testing.T) {
	p := draftPublication()
	assert.NoError(t, ReadyToPublish(p))

	missingTitle := draftPublication()
	missingTitle.Title = ""
	assert.ErrorIs(t, ReadyToPublish(missingTitle), ErrNotReady)

	missingContent := draftPublication()
	missingContent.Content = ""
	assert.ErrorIs(t, ReadyToPublish(missingContent), ErrNotReady)

	missingLicence := draftPublication()
	missingLicence.Licence = ""
	assert.ErrorIs(t, ReadyToPublish(missingLicence), ErrNotReady)
}

func TestReadyToPublishConflictOfInterest(t *testing.T) {
	p := draftPublication()
	p.ConflictOfInterestStatus = true
	assert.ErrorIs(t, ReadyToPublish(p), ErrConflictText)

	p.ConflictOfInterestText = "Funded by the lab under study."
	assert.NoError(t, ReadyToPublish(p))
}

func TestEnumValidation(t *testing.T) {
	for _, typ := range append(ChainTypes, TypePeerReview) {
		assert.True(t, ValidType(typ))
	}
	assert.False(t, ValidType("ESSAY"))

	assert.True(t, ValidLicence(LicenceCCBYNCND))
	assert.False(t, ValidLicence("MIT"))
}
