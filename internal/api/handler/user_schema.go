package handler

import "strconv"

type userRequest struct {
	Name  string `json:"name" example:"Aaron So"`
	Email string `json:"email" example:"aaron.so@test.com"`
	// Password is optional at creation; accounts without one cannot log in.
	Password string `json:"password,omitempty"`
}

type profileRequest struct {
	Name     string `json:"name" example:"Aaron So"`
	Location string `json:"location" example:"Victoria, Virginia"`
	AboutMe  string `json:"aboutMe" example:"I like to cook and eat."`
}

// Fixed response strings; clients match on them, so the exact wording is part
// of the API contract. Not-found conditions answer 400, never 404.
const (
	msgUserNotFoundRetrieve = "The user you are trying to retrieve doesn't exist in the db"
	msgUserNotFoundUpdate   = "The user you are trying to update doesn't exist in the db"
	msgUserNotFoundDelete   = "The user you are trying to delete doesn't exist in the db"
	msgProfileNotFound      = "The profile you are trying to update doesn't exist in the db"
	msgEmailExists          = "The specified e-mail address already exists"
	msgSelfDeleteOnly       = "A user can only be deleted by himself"
)

// parseID coerces a path id to a number, treating anything unparseable as 0.
// Id 0 is never assigned, so the lookup fails with the not-found answer.
func parseID(raw string) int64 {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return id
}
