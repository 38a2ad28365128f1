// Package validate holds the pure pre-submit checks used by the auth forms.
// Failures here never reach a remote collaborator.
package validate

import "regexp"

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

type PasswordReport struct {
	Score       int      `json:"score"` // 0..4
	Label       string   `json:"label"`
	Suggestions []string `json:"suggestions,omitempty"`
}

var (
	lowerPattern   = regexp.MustCompile(`[a-z]`)
	upperPattern   = regexp.MustCompile(`[A-Z]`)
	digitPattern   = regexp.MustCompile(`\d`)
	specialPattern = regexp.MustCompile(`[^A-Za-z0-9]`)
)

// PasswordStrength scores a password 0..4 from five criteria (length >= 8,
// lowercase, uppercase, digit, special character) and suggests what is missing.
func PasswordStrength(password string) PasswordReport {
	var score int
	var suggestions []string

	if len(password) >= 8 {
		score++
	} else {
		suggestions = append(suggestions, "Use at least 8 characters")
	}
	if lowerPattern.MatchString(password) {
		score++
	} else {
		suggestions = append(suggestions, "Add lowercase letters")
	}
	if upperPattern.MatchString(password) {
		score++
	} else {
		suggestions = append(suggestions, "Add uppercase letters")
	}
	if digitPattern.MatchString(password) {
		score++
	} else {
		suggestions = append(suggestions, "Add numbers")
	}
	if specialPattern.MatchString(password) {
		score++
	} else {
		suggestions = append(suggestions, "Add special characters (e.g. !@#$)")
	}

	if score > 4 {
		score = 4
	}

	// Scores 0 and 1 share the "Weak" label.
	labels := []string{"Weak", "Weak", "Fair", "Good", "Strong"}
	return PasswordReport{Score: score, Label: labels[score], Suggestions: suggestions}
}
