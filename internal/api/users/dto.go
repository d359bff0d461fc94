package users

import "publications-app/internal/domain/users"

type UserDTO struct {
	ID          string  `json:"id"`
	Email       string  `json:"email,omitempty"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Orcid       *string `json:"orcid,omitempty"`
	Employment  string  `json:"employment,omitempty"`
	Affiliation string  `json:"affiliation,omitempty"`
}

type ProfilePublicationDTO struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Title string `json:"title"`
}

// ProfileResponse is the public view of an account: email stays private.
type ProfileResponse struct {
	User         UserDTO                 `json:"user"`
	Publications []ProfilePublicationDTO `json:"publications"`
}

type MeResponse struct {
	User         UserDTO `json:"user"`
	Publications int64   `json:"publicationCount"`
	Bookmarks    int64   `json:"bookmarkCount"`
}

func buildUserDTO(u *users.User, includeEmail bool) UserDTO {
	dto := UserDTO{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Orcid:       u.Orcid,
		Employment:  u.Employment,
		Affiliation: u.Affiliation,
	}
	if includeEmail {
		dto.Email = u.Email
	}
	return dto
}
