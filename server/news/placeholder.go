package news

import "fmt"

// PlaceholderRecords returns the fixed set of static records used when every
// real retrieval path fails. This guarantees the analysis stage always has
// non-empty input to work with.
func PlaceholderRecords(location string) []Record {
	return []Record{
		{
			Title:     fmt.Sprintf("Weather Monitoring Update - %s", location),
			Snippet:   "Local emergency services are monitoring weather conditions. No immediate threats detected, but residents should stay informed about changing conditions.",
			Link:      "https://example.com/mock-news-1",
			Source:    "Mock Emergency Services",
			Published: "1 hour ago",
			Origin:    OriginPlaceholder,
		},
		{
			Title:     fmt.Sprintf("Disaster Preparedness Reminder - %s Area", location),
			Snippet:   "Authorities remind residents to keep emergency kits updated and review family emergency plans. Regular preparedness helps ensure community safety.",
			Link:      "https://example.com/mock-news-2",
			Source:    "Mock Local Authority",
			Published: "3 hours ago",
			Origin:    OriginPlaceholder,
		},
		{
			Title:     fmt.Sprintf("Infrastructure Status Report - %s", location),
			Snippet:   "All critical infrastructure systems are operating normally. Emergency services report no significant incidents requiring public attention.",
			Link:      "https://example.com/mock-news-3",
			Source:    "Mock Infrastructure Dept",
			Published: "5 hours ago",
			Origin:    OriginPlaceholder,
		},
	}
}
