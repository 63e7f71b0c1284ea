package tickets

// MaxTicketCharacters is the character budget for a ticket body. Bodies
// beyond it are cut and marked with an ellipsis.
const MaxTicketCharacters = 10000

const truncationMarker = "..."

// truncateText trims text to the default character budget.
func truncateText(text string) string {
	return truncateTo(text, MaxTicketCharacters)
}

// truncateTo trims text to at most max characters, appending the truncation
// marker when anything was cut. Empty input stays empty.
func truncateTo(text string, max int) string {
	if text == "" {
		return ""
	}
	runes := []rune(text)
	if len(runes) > max {
		return string(runes[:max]) + truncationMarker
	}
	return text
}
