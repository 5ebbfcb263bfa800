package handler

import "unicode/utf8"

// credentialsRequest is the decoded body of register and login requests.
type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// productRequest is the decoded body of create and update requests. Pointer
// fields distinguish an omitted field from its zero value.
type productRequest struct {
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
}

// validateCredentials checks a credentials body against the user schema:
// username 1-50 characters, password at least 6 characters, both required.
// It never consults storage; uniqueness is checked separately.
func validateCredentials(req credentialsRequest) map[string]string {
	errs := map[string]string{}

	switch {
	case req.Username == "":
		errs["username"] = "username is required"
	case utf8.RuneCountInString(req.Username) > 50:
		errs["username"] = "username must be between 1 and 50 characters"
	}

	switch {
	case req.Password == "":
		errs["password"] = "password is required"
	case utf8.RuneCountInString(req.Password) < 6:
		errs["password"] = "password must be at least 6 characters"
	}

	return errs
}

// validateProduct checks a product body against the product schema: title
// 1-100 characters required, description up to 200 characters optional,
// price required.
func validateProduct(req productRequest) map[string]string {
	errs := map[string]string{}

	switch {
	case req.Title == "":
		errs["title"] = "title is required"
	case utf8.RuneCountInString(req.Title) > 100:
		errs["title"] = "title must be between 1 and 100 characters"
	}

	if req.Description != nil && utf8.RuneCountInString(*req.Description) > 200 {
		errs["description"] = "description must be at most 200 characters"
	}

	if req.Price == nil {
		errs["price"] = "price is required"
	}

	return errs
}
