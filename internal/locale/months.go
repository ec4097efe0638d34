package locale

import "time"

// monthNames maps lower-case month names and abbreviations to months, per
// language. Russian lists the nominative, the genitive used in dates ("15
// октября 2026 г.") and the abbreviations of the medium date format.
var monthNames = map[string]map[string]time.Month{
	"en": {
		"january": time.January, "jan": time.January,
		"february": time.February, "feb": time.February,
		"march": time.March, "mar": time.March,
		"april": time.April, "apr": time.April,
		"may": time.May,
		"june": time.June, "jun": time.June,
		"july": time.July, "jul": time.July,
		"august": time.August, "aug": time.August,
		"september": time.September, "sep": time.September, "sept": time.September,
		"october": time.October, "oct": time.October,
		"november": time.November, "nov": time.November,
		"december": time.December, "dec": time.December,
	},
	"ru": {
		"январь": time.January, "января": time.January, "янв": time.January,
		"февраль": time.February, "февраля": time.February, "фев": time.February, "февр": time.February,
		"март": time.March, "марта": time.March, "мар": time.March,
		"апрель": time.April, "апреля": time.April, "апр": time.April,
		"май": time.May, "мая": time.May,
		"июнь": time.June, "июня": time.June, "июн": time.June,
		"июль": time.July, "июля": time.July, "июл": time.July,
		"август": time.August, "августа": time.August, "авг": time.August,
		"сентябрь": time.September, "сентября": time.September, "сен": time.September, "сент": time.September,
		"октябрь": time.October, "октября": time.October, "окт": time.October,
		"ноябрь": time.November, "ноября": time.November, "ноя": time.November, "нояб": time.November,
		"декабрь": time.December, "декабря": time.December, "дек": time.December,
	},
}

// yearWords are the words a language may write right after the year, as in
// "15 окт. 2026 г.".
var yearWords = map[string][]string{
	"ru": {"г", "год", "года"},
}

// monthsFor returns the month names recognized for a language. English names
// are always included.
func monthsFor(lang string) map[string]time.Month {
	months := make(map[string]time.Month, len(monthNames["en"])+len(monthNames[lang]))
	for name, m := range monthNames["en"] {
		months[name] = m
	}
	for name, m := range monthNames[lang] {
		months[name] = m
	}
	return months
}

func yearWordsFor(lang string) map[string]bool {
	words := make(map[string]bool)
	for _, w := range yearWords[lang] {
		words[w] = true
	}
	return words
}
