// Package labels holds the user-facing strings for each supported language.
package labels

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/five82/holocron/internal/swapi"
)

// Set is every string the UI and CLI print.
type Set struct {
	Tag language.Tag

	Title             string
	SearchPlaceholder string
	SearchPrompt      string
	NothingFound      string
	Loading           string
	PageOf            string // fmt verb pair: current, total
	TotalCount        string // fmt verb: count
	Breadcrumb        string
	NotFound          string
	BackHome          string
	Edit              string
	Save              string
	Cancel            string
	Characteristics   string
	Information       string
	Additional        string
	Editing           string
	LocalOnly         string
	Unsaved           string

	Fields map[string]string

	Films     string
	Species   string
	Vehicles  string
	Starships string

	HelpTitle      string
	HelpNavigation string
	HelpPages      string
	HelpCharacter  string
	HelpGeneral    string

	Keys KeyHelp
}

// KeyHelp holds the descriptions shown next to key bindings. The edit
// session bindings use Set.Edit, Set.Save and Set.Cancel.
type KeyHelp struct {
	Quit          string
	Help          string
	CycleTheme    string
	CycleLanguage string

	Search      string
	Open        string
	NextPage    string
	PrevPage    string
	FirstPage   string
	LastPage    string
	Reload      string
	ClearSearch string
	Up          string
	Down        string

	Back        string
	NextField   string
	PrevField   string
	Confirm     string
	LeaveSearch string
}

// Field returns the label for an editable field, falling back to its key.
func (s Set) Field(name string) string {
	if label, ok := s.Fields[name]; ok {
		return label
	}
	return name
}

var russian = Set{
	Tag:               language.Russian,
	Title:             "Персонажи из Звёздных войн",
	SearchPlaceholder: "Найти персонажа...",
	SearchPrompt:      "Поиск: ",
	NothingFound:      "Ничего не найдено",
	Loading:           "Загрузка...",
	PageOf:            "Страница %d из %d",
	TotalCount:        "Всего: %d",
	Breadcrumb:        "Персонажи",
	NotFound:          "Персонаж не найден",
	BackHome:          "Вернуться на главную страницу",
	Edit:              "редактировать",
	Save:              "сохранить",
	Cancel:            "Отмена",
	Characteristics:   "Характеристики",
	Information:       "Информация",
	Additional:        "Дополнительная информация",
	Editing:           "Редактирование",
	LocalOnly:         "изменения хранятся только в этой сессии",
	Unsaved:           "есть несохранённые изменения",
	Fields: map[string]string{
		swapi.FieldName:      "Имя",
		swapi.FieldHeight:    "Рост",
		swapi.FieldMass:      "Вес",
		swapi.FieldHairColor: "Цвет волос",
		swapi.FieldSkinColor: "Цвет кожи",
		swapi.FieldEyeColor:  "Цвет глаз",
		swapi.FieldBirthYear: "Год рождения",
		swapi.FieldGender:    "Пол",
	},
	Films:     "Фильмы",
	Species:   "Разновидность",
	Vehicles:  "Транспорт",
	Starships: "Корабли",

	HelpTitle:      "Горячие клавиши",
	HelpNavigation: "Навигация",
	HelpPages:      "Страницы",
	HelpCharacter:  "Персонаж",
	HelpGeneral:    "Общее",

	Keys: KeyHelp{
		Quit:          "выход",
		Help:          "справка",
		CycleTheme:    "сменить тему",
		CycleLanguage: "сменить язык",
		Search:        "поиск",
		Open:          "открыть персонажа",
		NextPage:      "следующая страница",
		PrevPage:      "предыдущая страница",
		FirstPage:     "первая страница",
		LastPage:      "последняя страница",
		Reload:        "обновить",
		ClearSearch:   "сбросить поиск",
		Up:            "вверх",
		Down:          "вниз",
		Back:          "назад к списку",
		NextField:     "следующее поле",
		PrevField:     "предыдущее поле",
		Confirm:       "подтвердить",
		LeaveSearch:   "выйти из поиска",
	},
}

var english = Set{
	Tag:               language.English,
	Title:             "Star Wars characters",
	SearchPlaceholder: "Find a character...",
	SearchPrompt:      "Search: ",
	NothingFound:      "Nothing found",
	Loading:           "Loading...",
	PageOf:            "Page %d of %d",
	TotalCount:        "Total: %d",
	Breadcrumb:        "Characters",
	NotFound:          "Character not found",
	BackHome:          "Back to the character list",
	Edit:              "edit",
	Save:              "save locally",
	Cancel:            "cancel edit",
	Characteristics:   "Characteristics",
	Information:       "Information",
	Additional:        "Additional information",
	Editing:           "Editing",
	LocalOnly:         "changes are kept for this session only",
	Unsaved:           "unsaved changes",
	Fields: map[string]string{
		swapi.FieldName:      "Name",
		swapi.FieldHeight:    "Height",
		swapi.FieldMass:      "Mass",
		swapi.FieldHairColor: "Hair color",
		swapi.FieldSkinColor: "Skin color",
		swapi.FieldEyeColor:  "Eye color",
		swapi.FieldBirthYear: "Birth year",
		swapi.FieldGender:    "Gender",
	},
	Films:     "Films",
	Species:   "Species",
	Vehicles:  "Vehicles",
	Starships: "Starships",

	HelpTitle:      "Keyboard Shortcuts",
	HelpNavigation: "Navigation",
	HelpPages:      "Pages",
	HelpCharacter:  "Character",
	HelpGeneral:    "General",

	Keys: KeyHelp{
		Quit:          "quit",
		Help:          "toggle help",
		CycleTheme:    "cycle theme",
		CycleLanguage: "cycle language",
		Search:        "search",
		Open:          "open character",
		NextPage:      "next page",
		PrevPage:      "previous page",
		FirstPage:     "first page",
		LastPage:      "last page",
		Reload:        "reload",
		ClearSearch:   "clear search",
		Up:            "move up",
		Down:          "move down",
		Back:          "back to list",
		NextField:     "next field",
		PrevField:     "previous field",
		Confirm:       "confirm",
		LeaveSearch:   "leave search",
	},
}

// Supported lists the available sets; the first is the default.
var Supported = []Set{russian, english}

var matcher = language.NewMatcher([]language.Tag{russian.Tag, english.Tag})

// For resolves a locale string such as "en", "ru-RU" or "en_US.UTF-8" to a
// label set. Unknown or empty values yield the default set.
func For(locale string) Set {
	tag, err := language.Parse(normalizeLocale(locale))
	if err != nil {
		return Supported[0]
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return Supported[0]
	}
	return Supported[idx]
}

// Next returns the set after s in Supported, wrapping around.
func Next(s Set) Set {
	for i, candidate := range Supported {
		if candidate.Tag == s.Tag {
			return Supported[(i+1)%len(Supported)]
		}
	}
	return Supported[0]
}

// Code returns the short language code of s, e.g. "ru".
func (s Set) Code() string {
	base, _ := s.Tag.Base()
	return base.String()
}

// normalizeLocale strips POSIX encoding and modifier suffixes and converts
// underscores so language.Parse accepts values taken from $LANG.
func normalizeLocale(locale string) string {
	locale = strings.TrimSpace(locale)
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	return strings.ReplaceAll(locale, "_", "-")
}
