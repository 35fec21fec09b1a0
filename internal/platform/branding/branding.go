// Package branding exposes the site identity shared by templates, page
// titles, and outgoing links. The profile lives in an embedded TOML document
// so copy edits do not require touching Go code.
package branding

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// AppName is the canonical product name used in page titles.
const AppName = "Noorwave"

//go:embed site.toml
var profileTOML []byte

// Social lists outbound social links rendered in the footer.
type Social struct {
	GitHub   string `toml:"github"`
	Twitter  string `toml:"twitter"`
	LinkedIn string `toml:"linkedin"`
}

// Profile describes site-wide identity values.
type Profile struct {
	Name         string `toml:"name"`
	Domain       string `toml:"domain"`
	ContactEmail string `toml:"contact_email"`
	Social       Social `toml:"social"`
}

var defaultProfile = mustLoadProfile()

// Default returns the process-wide embedded site profile.
func Default() Profile {
	return defaultProfile
}

// LoadProfile parses a TOML site profile document.
func LoadProfile(data []byte) (Profile, error) {
	var profile Profile
	if err := toml.Unmarshal(data, &profile); err != nil {
		return Profile{}, fmt.Errorf("parse site profile: %w", err)
	}
	if strings.TrimSpace(profile.Name) == "" {
		return Profile{}, fmt.Errorf("site profile: name is required")
	}
	if strings.TrimSpace(profile.Domain) == "" {
		return Profile{}, fmt.Errorf("site profile: domain is required")
	}
	return profile, nil
}

func mustLoadProfile() Profile {
	profile, err := LoadProfile(profileTOML)
	if err != nil {
		panic(err)
	}
	return profile
}
