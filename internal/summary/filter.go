package summary

import "github.com/osse101/usersummary/internal/domain"

// FilterByCityPrefix returns the users whose city starts with prefix, in input order.
func FilterByCityPrefix(users []domain.User, prefix string) []domain.User {
	var matched []domain.User
	for _, u := range users {
		if u.CityHasPrefix(prefix) {
			matched = append(matched, u)
		}
	}
	return matched
}

// SelectByCity filters by primary and, when that selects nothing, by fallback.
// The second return value reports whether the fallback was used.
func SelectByCity(users []domain.User, primary, fallback string) ([]domain.User, bool) {
	if matched := FilterByCityPrefix(users, primary); len(matched) > 0 {
		return matched, false
	}
	return FilterByCityPrefix(users, fallback), true
}

// Summarize projects users onto summaries.
func Summarize(users []domain.User) []domain.Summary {
	summaries := make([]domain.Summary, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, domain.NewSummary(u))
	}
	return summaries
}

// AnyCityHasPrefix reports whether any user's city starts with one of prefixes.
func AnyCityHasPrefix(users []domain.User, prefixes ...string) bool {
	for _, u := range users {
		for _, p := range prefixes {
			if u.CityHasPrefix(p) {
				return true
			}
		}
	}
	return false
}
