package zodiac

// lenormandCards maps (sign, decan) to the traditional 36-card Lenormand
// deck, keyed by the Moon's position.
var lenormandCards = map[Sign][3]string{
	Aries:       {"Rider", "Clover", "Ship"},
	Taurus:      {"House", "Tree", "Clouds"},
	Gemini:      {"Snake", "Coffin", "Bouquet"},
	Cancer:      {"Scythe", "Whip", "Birds"},
	Leo:         {"Child", "Fox", "Bear"},
	Virgo:       {"Stars", "Stork", "Dog"},
	Libra:       {"Tower", "Garden", "Mountain"},
	Scorpio:     {"Paths", "Mice", "Heart"},
	Sagittarius: {"Ring", "Book", "Letter"},
	Capricorn:   {"Man", "Woman", "Lily"},
	Aquarius:    {"Sun", "Moon", "Key"},
	Pisces:      {"Fish", "Anchor", "Cross"},
}

// LenormandCard returns the card for a sign/decan pair, or "Unknown" for
// anything outside the table.
func LenormandCard(sign Sign, decan int) string {
	cards, ok := lenormandCards[sign]
	if !ok || decan < 1 || decan > 3 {
		return "Unknown"
	}
	return cards[decan-1]
}
