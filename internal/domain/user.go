package domain

import (
	"fmt"
	"strings"
)

// User is one record of the remote users listing. Only ID, Name,
// Address.City and Company.Name drive the summary; the rest is decoded
// so debug logs show the record as received.
type User struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Username string  `json:"username,omitempty"`
	Email    string  `json:"email,omitempty"`
	Phone    string  `json:"phone,omitempty"`
	Website  string  `json:"website,omitempty"`
	Address  Address `json:"address"`
	Company  Company `json:"company"`
}

// Address is the nested address object. A missing object decodes to the zero value.
type Address struct {
	Street  string `json:"street,omitempty"`
	Suite   string `json:"suite,omitempty"`
	City    string `json:"city"`
	Zipcode string `json:"zipcode,omitempty"`
	Geo     *Geo   `json:"geo,omitempty"`
}

// Geo holds the coordinates as the API sends them (strings).
type Geo struct {
	Lat string `json:"lat"`
	Lng string `json:"lng"`
}

// Company is the nested employer object.
type Company struct {
	Name        string `json:"name"`
	CatchPhrase string `json:"catchPhrase,omitempty"`
	BS          string `json:"bs,omitempty"`
}

// CityHasPrefix reports whether the user's city starts with prefix.
// An empty city never matches.
func (u User) CityHasPrefix(prefix string) bool {
	return u.Address.City != "" && strings.HasPrefix(u.Address.City, prefix)
}

// Summary is the reduced projection of a User used for display.
type Summary struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	CompanyName string `json:"companyName"`
}

// NewSummary projects a User onto a Summary.
func NewSummary(u User) Summary {
	return Summary{
		ID:          u.ID,
		Name:        u.Name,
		CompanyName: u.Company.Name,
	}
}

// String renders the summary line, e.g. "User ID 1: Ann works at Acme".
func (s Summary) String() string {
	return fmt.Sprintf(SummaryLineFormat, s.ID, s.Name, s.CompanyName)
}
