package provider

import (
	"net/url"
	"strings"

	"prospector-api/internal/models"
)

// NormalizeDomain reduces a website to its lowercase host without a leading "www.".
// It returns "" when the website cannot be parsed.
func NormalizeDomain(website string) string {
	website = strings.TrimSpace(website)
	if website == "" {
		return ""
	}
	if !strings.HasPrefix(strings.ToLower(website), "http") {
		website = "https://" + website
	}

	u, err := url.Parse(website)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
}

// Dedupe drops leads whose website domain was already seen earlier in the slice.
// Leads without a usable website are always kept.
func Dedupe(leads []models.LeadFields) []models.LeadFields {
	seen := make(map[string]struct{}, len(leads))
	out := make([]models.LeadFields, 0, len(leads))

	for _, lead := range leads {
		if lead.Website != nil {
			if domain := NormalizeDomain(*lead.Website); domain != "" {
				if _, dup := seen[domain]; dup {
					continue
				}
				seen[domain] = struct{}{}
			}
		}
		out = append(out, lead)
	}
	return out
}
