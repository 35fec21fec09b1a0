// Package static embeds the site's public assets.
package static

import "embed"

//go:embed site.css
var FS embed.FS
