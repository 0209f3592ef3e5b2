package dto

import (
	"github.com/amirhossein-jamali/people-registry/internal/domain/entity"
	"github.com/amirhossein-jamali/people-registry/internal/domain/port/usecase"
)

// PersonRequest carries the JSON body of the person routes. Fields are
// pointers so that presence can be told apart from a zero value when
// checking obligatory parameters.
type PersonRequest struct {
	ID      *uint64 `json:"id"`
	Name    *string `json:"name"`
	Surname *string `json:"surname"`
	Birth   *string `json:"birth"`
	Points  *int64  `json:"points"`
}

// MissingFields returns the names of required fields absent from the request
func (r *PersonRequest) MissingFields(required ...string) []string {
	var missing []string
	for _, field := range required {
		switch field {
		case "id":
			if r.ID == nil {
				missing = append(missing, field)
			}
		case "name":
			if r.Name == nil {
				missing = append(missing, field)
			}
		case "surname":
			if r.Surname == nil {
				missing = append(missing, field)
			}
		case "birth":
			if r.Birth == nil {
				missing = append(missing, field)
			}
		case "points":
			if r.Points == nil {
				missing = append(missing, field)
			}
		}
	}
	return missing
}

// ToInput converts the request body into a use case input
func (r *PersonRequest) ToInput() usecase.PersonInput {
	input := usecase.PersonInput{}
	if r.Name != nil {
		input.Name = *r.Name
	}
	if r.Surname != nil {
		input.Surname = *r.Surname
	}
	if r.Birth != nil {
		input.Birth = *r.Birth
	}
	if r.Points != nil {
		input.Points = *r.Points
	}
	return input
}

// PersonPayload is the JSON representation of a person record
type PersonPayload struct {
	ID      uint64 `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Birth   string `json:"birth"`
	Points  int64  `json:"points"`
}

// NewPersonPayload converts an entity into its JSON representation
func NewPersonPayload(p *entity.Person) PersonPayload {
	return PersonPayload{
		ID:      p.ID,
		Name:    p.Name,
		Surname: p.Surname,
		Birth:   p.Birth,
		Points:  p.Points,
	}
}

// MessageResponse is the minimal business-outcome response
type MessageResponse struct {
	Msg string `json:"msg"`
}

// MessageWithIDResponse is a business-outcome response that names the record
type MessageWithIDResponse struct {
	Msg string `json:"msg"`
	ID  uint64 `json:"id"`
}

// UsersResponse is the response of the list route
type UsersResponse struct {
	Msg   string          `json:"msg"`
	Users []PersonPayload `json:"users"`
}

// UserListResponse is the response of the single-record read route; the
// record travels as a one-element list
type UserListResponse struct {
	Msg  string          `json:"msg"`
	User []PersonPayload `json:"user"`
}

// UserResponse is the response of the create and update routes
type UserResponse struct {
	Msg  string        `json:"msg"`
	User PersonPayload `json:"user"`
}
