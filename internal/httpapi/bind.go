package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var errInvalidBody = errors.New("httpapi.invalid_body")

// decodeJSON decodes the request body into v. Any malformed or empty
// body fails with errInvalidBody; unknown fields are tolerated, matching
// what storefront clients actually send.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %v", errInvalidBody, err)
	}
	return nil
}
