package templates

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/toyz/dtsdoc/internal/errors"
)

// Labels are the fixed words of the generated document
type Labels struct {
	Property    string
	Type        string
	Description string
	Required    string
	Default     string
	Yes         string
	No          string

	TypeHeading      string
	AliasName        string
	AliasDescription string
	AliasType        string
}

// Locale pairs a language with its document labels
type Locale struct {
	Tag    language.Tag
	Labels Labels
}

var (
	// LocaleChinese is the default locale
	LocaleChinese = Locale{
		Tag: language.Chinese,
		Labels: Labels{
			Property:         "属性名",
			Type:             "类型",
			Description:      "描述",
			Required:         "是否必需",
			Default:          "默认值",
			Yes:              "是",
			No:               "否",
			TypeHeading:      "type类型描述",
			AliasName:        "名称",
			AliasDescription: "描述",
			AliasType:        "类型",
		},
	}

	// LocaleEnglish renders English labels
	LocaleEnglish = Locale{
		Tag: language.English,
		Labels: Labels{
			Property:         "Property",
			Type:             "Type",
			Description:      "Description",
			Required:         "Required",
			Default:          "Default",
			Yes:              "yes",
			No:               "no",
			TypeHeading:      "Types",
			AliasName:        "Name",
			AliasDescription: "Description",
			AliasType:        "Type",
		},
	}
)

// DefaultLocale is used when no locale is configured
var DefaultLocale = LocaleChinese

var supportedLocales = []Locale{LocaleChinese, LocaleEnglish}

var localeMatcher = language.NewMatcher([]language.Tag{
	LocaleChinese.Tag,
	LocaleEnglish.Tag,
})

// ParseLocale finds the supported locale closest to a BCP 47 tag such as
// "zh", "zh-CN" or "en-US". An empty value selects the default locale.
func ParseLocale(value string) (Locale, error) {
	if value == "" {
		return DefaultLocale, nil
	}

	tag, err := language.Parse(value)
	if err != nil {
		return Locale{}, errors.WrapConfigurationError("locale", "parse", err).
			WithSuggestions(supportedLocaleHint())
	}

	_, index, confidence := localeMatcher.Match(tag)
	if confidence == language.No {
		return Locale{}, errors.ConfigurationError("locale", fmt.Sprintf("unsupported locale %q", value)).
			WithSuggestions(supportedLocaleHint())
	}

	return supportedLocales[index], nil
}

// SupportedLocales lists the base tags of every supported locale
func SupportedLocales() []string {
	result := make([]string, 0, len(supportedLocales))
	for _, locale := range supportedLocales {
		result = append(result, locale.Tag.String())
	}
	return result
}

func supportedLocaleHint() string {
	return fmt.Sprintf("Supported locales: %v", SupportedLocales())
}
