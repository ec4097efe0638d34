package report

import (
	"errors"
	"fmt"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/chriscorrea/textstat/internal/extract"
)

// message keys shared by every category
const (
	keyAnalyzedFile = "Analyzed file"
	keySummary      = "Summary statistics"
	keyNone         = "not found"
	keyFullDate     = "full date"
	keyStatistic    = "Statistic"
	keyValue        = "Value"
)

// labels holds the message keys of one category block
type labels struct {
	header    string
	count     string
	different string
	min       string
	max       string
	maxLength string
	minLength string
	average   string
}

var categoryLabels = map[extract.Category]labels{
	extract.Sentences: {
		header:    "Sentence statistics",
		count:     "Number of sentences",
		different: "different sentences",
		min:       "Minimum sentence",
		max:       "Maximum sentence",
		maxLength: "Maximum sentence length",
		minLength: "Minimum sentence length",
		average:   "Average sentence length",
	},
	extract.Words: {
		header:    "Word statistics",
		count:     "Number of words",
		different: "different words",
		min:       "Minimum word",
		max:       "Maximum word",
		maxLength: "Maximum word length",
		minLength: "Minimum word length",
		average:   "Average word length",
	},
	extract.Numbers: {
		header:    "Number statistics",
		count:     "Number of numbers",
		different: "different numbers",
		min:       "Minimum number",
		max:       "Maximum number",
		average:   "Average number",
	},
	extract.Amounts: {
		header:    "Money amount statistics",
		count:     "Number of amounts",
		different: "different amounts",
		min:       "Minimum amount",
		max:       "Maximum amount",
		average:   "Average amount",
	},
	extract.Dates: {
		header:    "Date statistics",
		count:     "Number of dates",
		different: "different dates",
		min:       "Minimum date",
		max:       "Maximum date",
		average:   "Average date",
	},
}

// translations maps an English key to its Russian text
var translations = map[string]string{
	keyAnalyzedFile: "Анализируемый файл",
	keySummary:      "Сводная статистика",
	keyNone:         "не найдено",
	keyStatistic:    "Показатель",
	keyValue:        "Значение",

	"Sentence statistics":     "Статистика по предложениям",
	"Number of sentences":     "Число предложений",
	"Minimum sentence":        "Минимальное предложение",
	"Maximum sentence":        "Максимальное предложение",
	"Maximum sentence length": "Максимальная длина предложения",
	"Minimum sentence length": "Минимальная длина предложения",
	"Average sentence length": "Средняя длина предложения",

	"Word statistics":     "Статистика по словам",
	"Number of words":     "Число слов",
	"Minimum word":        "Минимальное слово",
	"Maximum word":        "Максимальное слово",
	"Maximum word length": "Максимальная длина слова",
	"Minimum word length": "Минимальная длина слова",
	"Average word length": "Средняя длина слова",

	"Number statistics": "Статистика по числам",
	"Number of numbers": "Число чисел",
	"Minimum number":    "Минимальное число",
	"Maximum number":    "Максимальное число",
	"Average number":    "Среднее число",

	"Money amount statistics": "Статистика по суммам денег",
	"Number of amounts":       "Число сумм",
	"Minimum amount":          "Минимальная сумма",
	"Maximum amount":          "Максимальная сумма",
	"Average amount":          "Средняя сумма",

	"Date statistics": "Статистика по датам",
	"Number of dates": "Число дат",
	"Minimum date":    "Минимальная дата",
	"Maximum date":    "Максимальная дата",
	"Average date":    "Средняя дата",

	"Monday": "понедельник", "Tuesday": "вторник", "Wednesday": "среда", "Thursday": "четверг",
	"Friday": "пятница", "Saturday": "суббота", "Sunday": "воскресенье",

	// months in the genitive, as they appear in a date
	"January": "января", "February": "февраля", "March": "марта", "April": "апреля",
	"May": "мая", "June": "июня", "July": "июля", "August": "августа",
	"September": "сентября", "October": "октября", "November": "ноября", "December": "декабря",
}

// feminine categories take a different adjective ending in Russian
var feminine = map[extract.Category]bool{
	extract.Amounts: true,
	extract.Dates:   true,
}

// messages is the catalog every printer in this package reads from
var messages = mustCatalog()

func mustCatalog() *catalog.Builder {
	b, err := newCatalog()
	if err != nil {
		panic(fmt.Sprintf("report: invalid message catalog: %v", err))
	}
	return b
}

// newCatalog registers every message, returning all registration errors joined.
func newCatalog() (*catalog.Builder, error) {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	var errs []error
	add := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	for key, ru := range translations {
		add(b.SetString(language.English, key, key))
		add(b.SetString(language.Russian, key, ru))
	}

	// weekday, month name, day, year
	add(b.SetString(language.English, keyFullDate, "%[1]s, %[2]s %[3]s, %[4]s"))
	add(b.SetString(language.Russian, keyFullDate, "%[1]s, %[3]s %[2]s %[4]s г."))

	for category, l := range categoryLabels {
		add(b.Set(language.English, l.different, plural.Selectf(1, "%d",
			"other", "%d different",
		)))

		one, other := "%d различное", "%d различных"
		if feminine[category] {
			one = "%d различная"
		}
		add(b.Set(language.Russian, l.different, plural.Selectf(1, "%d",
			"one", one,
			"other", other,
		)))
	}

	return b, errors.Join(errs...)
}

// newPrinter returns a printer for tag backed by the report catalog.
// Tags without a translation fall back to English messages but keep their own
// number formatting.
func newPrinter(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(messages))
}
