package publications

import "errors"

var (
	ErrNotAuthor    = errors.New("user is not the author of this publication")
	ErrNotDraft     = errors.New("publication is not in a draft state")
	ErrAlreadyLive  = errors.New("publication is already live")
	ErrNotReady     = errors.New("publication is not ready to be made LIVE")
	ErrNotVisible   = errors.New("publication is not visible to this user")
	ErrOwnContent   = errors.New("user has authored or co-authored this publication")
	ErrConflictText = errors.New("a conflict of interest declaration requires a reason")
)

func IsAuthor(p *Publication, userID string) bool {
	return p.UserID == userID
}

// IsCoAuthor expects CoAuthors to be preloaded.
func IsCoAuthor(p *Publication, userID string) bool {
	for _, u := range p.CoAuthors {
		if u.ID == userID {
			return true
		}
	}
	return false
}

// CanView reports whether the publication is visible to the given user.
// Drafts are only visible to the author and co-authors.
func CanView(p *Publication, userID string) bool {
	if p.CurrentStatus == StatusLive {
		return true
	}
	return IsAuthor(p, userID) || IsCoAuthor(p, userID)
}

// CanEdit guards every draft mutation: field updates, reference replacement,
// co-author changes and deletion. Only the author may mutate, and only while
// the publication is still a draft.
func CanEdit(p *Publication, userID string) error {
	if !IsAuthor(p, userID) {
		return ErrNotAuthor
	}
	if p.CurrentStatus != StatusDraft {
		return ErrNotDraft
	}
	return nil
}

// ReadyToPublish is the completeness gate for the DRAFT -> LIVE transition.
// Title, content and licence must be present, and a declared conflict of
// interest must carry an explanation.
func ReadyToPublish(p *Publication) error {
	if p.Title == "" || p.Content == "" || p.Licence == "" {
		return ErrNotReady
	}
	if p.ConflictOfInterestStatus && p.ConflictOfInterestText == "" {
		return ErrConflictText
	}
	return nil
}
