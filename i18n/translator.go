package i18n

import "sync/atomic"

// Translator retrieves localized messages for decoder message keys.
// data provides optional values to embed in the message (for example, "type").
type Translator interface {
	Message(key string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(key string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch key {
		case "not_string":
			return "文字列ではありません"
		case "not_number":
			return "数値ではありません"
		case "not_object":
			return "オブジェクトではありません"
		case "not_array":
			return "配列ではありません"
		case "not_enum":
			return "列挙値ではありません"
		case "not_literal":
			return "リテラル値と一致しません"
		case "not_one_of":
			return "いずれの型にも一致しません"
		case "not_null":
			return "null ではありません"
		case "cannot_bind":
			if t := data["type"]; t != "" {
				return "値を " + t + " に変換できません"
			}
			return "値を変換できません"
		case "invalid_input":
			return "入力が不正です"
		case "not_rfc3339":
			return "RFC3339 形式の日時ではありません"
		case "not_uuid":
			return "UUID ではありません"
		case "not_base64":
			return "Base64 ではありません"
		case "not_integer":
			return "整数ではありません"
		}
	default: // "en"
		switch key {
		case "not_string":
			return "Not a string"
		case "not_number":
			return "Not a number"
		case "not_object":
			return "Not an object"
		case "not_array":
			return "Not an array"
		case "not_enum":
			return "Not an enum value"
		case "not_literal":
			return "Does not match literal value"
		case "not_one_of":
			return "Value is not one of type"
		case "not_null":
			return "Not null"
		case "cannot_bind":
			return withType("Cannot bind value", data)
		case "invalid_input":
			return "Invalid input"
		case "not_rfc3339":
			return "Not an RFC3339 time"
		case "not_uuid":
			return "Not a UUID"
		case "not_base64":
			return "Not base64"
		case "not_integer":
			return "Not an integer"
		}
	}
	return key
}

func withType(msg string, data map[string]string) string {
	if t := data["type"]; t != "" {
		return msg + " to " + t
	}
	return msg
}

type holder struct{ tr Translator }

var current atomic.Pointer[holder]

func init() { current.Store(&holder{tr: dictTranslator{lang: "en"}}) }

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	current.Store(&holder{tr: dictTranslator{lang: lang}})
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version). A nil Translator restores the English dictionary.
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	current.Store(&holder{tr: tr})
}

// T fetches a message for the given key using the current Translator.
func T(key string, data map[string]string) string { return current.Load().tr.Message(key, data) }
