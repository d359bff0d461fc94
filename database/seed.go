package database

import (
	"fmt"
	"strings"
	"time"

	"publications-app/internal/domain/links"
	"publications-app/internal/domain/publications"
	"publications-app/internal/domain/ratings"
	"publications-app/internal/domain/references"
	"publications-app/internal/domain/users"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedPassword is the plaintext password of every seeded account.
const SeedPassword = "TestPass123"

// SeedData holds the fixture entities so tests and the dev server can refer
// to them without hard-coded ids.
type SeedData struct {
	Alice users.User // owns every seeded publication
	Bob   users.User // co-author on the live PROBLEM publication
	Carol users.User // unaffiliated reader
	Admin users.User

	Drafts map[publications.Type]*publications.Publication
	Live   map[publications.Type]*publications.Publication
}

// Seed builds a fixture set: one DRAFT and one LIVE publication per chain
// type, a reference list on the INTERPRETATION draft, a chain link and a few
// ratings on the live PROBLEM publication.
func Seed(db *gorm.DB) (*SeedData, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(SeedPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	pw := string(hash)

	sd := &SeedData{
		Drafts: map[publications.Type]*publications.Publication{},
		Live:   map[publications.Type]*publications.Publication{},
	}

	orcid := "0000-0001-2345-6789"
	sd.Alice = users.User{Email: "alice@example.com", Password: &pw, FirstName: "Alice", LastName: "Author", Orcid: &orcid, Role: "user"}
	sd.Bob = users.User{Email: "bob@example.com", Password: &pw, FirstName: "Bob", LastName: "Coauthor", Role: "user"}
	sd.Carol = users.User{Email: "carol@example.com", Password: &pw, FirstName: "Carol", LastName: "Reader", Role: "user"}
	sd.Admin = users.User{Email: "admin@example.com", Password: &pw, FirstName: "Ada", LastName: "Admin", Role: "admin"}

	for _, u := range []*users.User{&sd.Alice, &sd.Bob, &sd.Carol, &sd.Admin} {
		if err := db.Create(u).Error; err != nil {
			return nil, err
		}
	}

	created := time.Now().Add(-48 * time.Hour)

	for _, t := range publications.ChainTypes {
		name := strings.ReplaceAll(string(t), "_", " ")

		draft := &publications.Publication{
			Type:          t,
			Title:         fmt.Sprintf("Draft %s publication", strings.ToLower(name)),
			Content:       fmt.Sprintf("<p>Work in progress on a %s.</p>", strings.ToLower(name)),
			Licence:       publications.LicenceCCBY,
			CurrentStatus: publications.StatusDraft,
			UserID:        sd.Alice.ID,
		}
		if err := db.Create(draft).Error; err != nil {
			return nil, err
		}
		if err := db.Create(&publications.PublicationStatus{
			PublicationID: draft.ID,
			Status:        publications.StatusDraft,
			CreatedAt:     created,
		}).Error; err != nil {
			return nil, err
		}
		sd.Drafts[t] = draft

		live := &publications.Publication{
			Type:          t,
			Title:         fmt.Sprintf("Published %s publication", strings.ToLower(name)),
			Content:       fmt.Sprintf("<p>Findings for a %s.</p>", strings.ToLower(name)),
			Description:   fmt.Sprintf("A published %s.", strings.ToLower(name)),
			Keywords:      []string{"fixture", strings.ToLower(name)},
			Licence:       publications.LicenceCCBY,
			CurrentStatus: publications.StatusLive,
			UserID:        sd.Alice.ID,
		}
		if err := db.Create(live).Error; err != nil {
			return nil, err
		}
		for i, s := range []publications.Status{publications.StatusDraft, publications.StatusLive} {
			if err := db.Create(&publications.PublicationStatus{
				PublicationID: live.ID,
				Status:        s,
				CreatedAt:     created.Add(time.Duration(i) * time.Hour),
			}).Error; err != nil {
				return nil, err
			}
		}
		sd.Live[t] = live
	}

	problemLive := sd.Live[publications.TypeProblem]
	if err := db.Model(problemLive).Association("CoAuthors").Append(&sd.Bob); err != nil {
		return nil, err
	}

	interpretationDraft := sd.Drafts[publications.TypeInterpretation]
	refLocation := "https://www.example-source.com/article"
	seedRefs := []references.Reference{
		{PublicationID: interpretationDraft.ID, Type: references.TypeURL, Text: "<p>Reyna, V.F. A scientific theory of gist. https://www.example-source.com/article</p>", Location: &refLocation, SortIndex: 0},
		{PublicationID: interpretationDraft.ID, Type: references.TypeText, Text: "<p>Broniatowski, D. A formal model of fuzzy-trace theory.</p>", SortIndex: 1},
	}
	if err := db.Create(&seedRefs).Error; err != nil {
		return nil, err
	}

	// hypothesis builds on the problem
	link := links.Link{
		PublicationFromID: sd.Live[publications.TypeHypothesis].ID,
		PublicationToID:   problemLive.ID,
	}
	if err := db.Create(&link).Error; err != nil {
		return nil, err
	}

	for _, r := range []ratings.Rating{
		{PublicationID: problemLive.ID, UserID: sd.Carol.ID, Category: "WELL_DEFINED", Rating: 8},
		{PublicationID: problemLive.ID, UserID: sd.Carol.ID, Category: "ORIGINAL", Rating: 6},
	} {
		if err := db.Create(&r).Error; err != nil {
			return nil, err
		}
	}

	return sd, nil
}
