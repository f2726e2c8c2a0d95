package fetch

import (
	"net/url"
	"strings"

	"github.com/Beebek-Sharma/pacsync/internal/constants"
	"github.com/Beebek-Sharma/pacsync/internal/domain"
	"github.com/Beebek-Sharma/pacsync/internal/errors"
)

// BuildURL returns endpoint with the username and theme query parameters
// appended, username first. Query parameters already present on the
// endpoint are kept, except username and theme which are replaced.
func BuildURL(endpoint, username string, theme domain.Theme) (string, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", errors.Wrapf(errors.ErrConfigInvalid, "parse endpoint %q: %v", endpoint, err)
	}

	existing := u.Query()
	existing.Del(constants.QueryUsername)
	existing.Del(constants.QueryTheme)

	parts := make([]string, 0, 3)
	if len(existing) > 0 {
		parts = append(parts, existing.Encode())
	}
	parts = append(parts,
		constants.QueryUsername+"="+url.QueryEscape(username),
		constants.QueryTheme+"="+url.QueryEscape(theme.String()),
	)
	u.RawQuery = strings.Join(parts, "&")

	return u.String(), nil
}
