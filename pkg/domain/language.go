package domain

// Language is a UI language choice
type Language struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Code  string `json:"code"`
}

// DefaultLanguage is the seed and fallback language of the UI
const DefaultLanguage = "English"

// Languages lists supported UI languages in selector order
var Languages = []Language{
	{Name: "English", Label: "English (English)", Code: "en"},
	{Name: "Türkçe", Label: "Türkçe (Turkish)", Code: "tr"},
	{Name: "Français", Label: "Français (French)", Code: "fr"},
	{Name: "Español", Label: "Español (Spanish)", Code: "es"},
	{Name: "Afrikaans", Label: "Afrikaans (Afrikaans)", Code: "af"},
	{Name: "العربية", Label: "العربية (Arabic)", Code: "ar"},
	{Name: "Tiếng Việt", Label: "Tiếng Việt (Vietnamese)", Code: "vi"},
	{Name: "isiXhosa", Label: "isiXhosa (Xhosa)", Code: "xh"},
	{Name: "ייִדיש", Label: "ייִדיש (Yiddish)", Code: "yi"},
	{Name: "Yorùbá", Label: "Yorùbá (Yoruba)", Code: "yo"},
	{Name: "isiZulu", Label: "isiZulu (Zulu)", Code: "zu"},
	{Name: "Deutsch", Label: "Deutsch (German)", Code: "de"},
	{Name: "Italiano", Label: "Italiano (Italian)", Code: "it"},
	{Name: "Русский", Label: "Русский (Russian)", Code: "ru"},
	{Name: "日本語", Label: "日本語 (Japanese)", Code: "ja"},
	{Name: "한국어", Label: "한국어 (Korean)", Code: "ko"},
	{Name: "Polski", Label: "Polski (Polish)", Code: "pl"},
	{Name: "Nederlands", Label: "Nederlands (Dutch)", Code: "nl"},
	{Name: "Svenska", Label: "Svenska (Swedish)", Code: "sv"},
	{Name: "Dansk", Label: "Dansk (Danish)", Code: "da"},
	{Name: "Norsk", Label: "Norsk (Norwegian)", Code: "no"},
	{Name: "Suomi", Label: "Suomi (Finnish)", Code: "fi"},
	{Name: "हिन्दी", Label: "हिन्दी (Hindi)", Code: "hi"},
	{Name: "বাংলা", Label: "বাংলা (Bengali)", Code: "bn"},
	{Name: "ગુજરાતી", Label: "ગુજરાતી (Gujarati)", Code: "gu"},
	{Name: "ಕನ್ನಡ", Label: "ಕನ್ನಡ (Kannada)", Code: "kn"},
	{Name: "മലയാളം", Label: "മലയാളം (Malayalam)", Code: "ml"},
	{Name: "मराठी", Label: "मराठी (Marathi)", Code: "mr"},
	{Name: "ਪੰਜਾਬੀ", Label: "ਪੰਜਾਬੀ (Punjabi)", Code: "pa"},
	{Name: "தமிழ்", Label: "தமிழ் (Tamil)", Code: "ta"},
	{Name: "తెలుగు", Label: "తెలుగు (Telugu)", Code: "te"},
	{Name: "Odia", Label: "Odia (Odia)", Code: "or"},
	{Name: "עברית", Label: "עברית (Hebrew)", Code: "he"},
	{Name: "فارسی", Label: "فارسی (Persian)", Code: "fa"},
	{Name: "ไทย", Label: "ไทย (Thai)", Code: "th"},
	{Name: "Bahasa Indonesia", Label: "Bahasa Indonesia (Indonesian)", Code: "id"},
	{Name: "Malay", Label: "Malay (Malay)", Code: "ms"},
	{Name: "Shqip", Label: "Shqip (Albanian)", Code: "sq"},
	{Name: "Azərbaycan", Label: "Azərbaycan (Azerbaijani)", Code: "az"},
	{Name: "Беларуская", Label: "Беларуская (Belarusian)", Code: "be"},
	{Name: "Bosanski", Label: "Bosanski (Bosnian)", Code: "bs"},
	{Name: "Български", Label: "Български (Bulgarian)", Code: "bg"},
	{Name: "Hrvatski", Label: "Hrvatski (Croatian)", Code: "hr"},
	{Name: "Čeština", Label: "Čeština (Czech)", Code: "cs"},
	{Name: "Ελληνικά", Label: "Ελληνικά (Greek)", Code: "el"},
	{Name: "Eesti", Label: "Eesti (Estonian)", Code: "et"},
	{Name: "Latviešu", Label: "Latviešu (Latvian)", Code: "lv"},
	{Name: "Lietuvių", Label: "Lietuvių (Lithuanian)", Code: "lt"},
	{Name: "Magyar", Label: "Magyar (Hungarian)", Code: "hu"},
	{Name: "Slovenčina", Label: "Slovenčina (Slovak)", Code: "sk"},
	{Name: "Slovenščina", Label: "Slovenščina (Slovenian)", Code: "sl"},
	{Name: "ქართული", Label: "ქართული (Georgian)", Code: "ka"},
	{Name: "Հայերեն", Label: "Հայերեն (Armenian)", Code: "hy"},
	{Name: "Қазақша", Label: "Қазақша (Kazakh)", Code: "kk"},
	{Name: "Кыргызча", Label: "Кыргызча (Kyrgyz)", Code: "ky"},
	{Name: "Монгол", Label: "Монгол (Mongolian)", Code: "mn"},
	{Name: "Српски", Label: "Српски (Serbian)", Code: "sr"},
}

// FindLanguage looks up a language by name
func FindLanguage(name string) (Language, bool) {
	for _, l := range Languages {
		if l.Name == name {
			return l, true
		}
	}
	return Language{}, false
}

// DefaultUIStrings returns a fresh copy of the English UI strings
func DefaultUIStrings() map[string]string {
	return map[string]string{
		"title":              "Simplified Knowledge",
		"description":        "A dynamic dashboard that summarizes NASA bioscience publications and explores impacts and results.",
		"search_placeholder": "e.g., microgravity, radiation, Artemis...",
		"results_label":      "matching publications",
		"no_results":         "No matching publications found.",
		"open_button":        "Open",
		"summarize_button":   "Gather & Summarize",
		"summary_label":      "AI Summary",
		"failed_label":       "Failed to summarize",
		"ask_label":          "Ask anything:",
		"ask_placeholder":    "What would you like to know?",
		"response_label":     "Response:",
		"language_label":     "Choose language",
		"translate_columns":  "Translate dataset column names (may take time)",
		"upload_label":       "Upload one or more PDFs",
		"mention_label":      "Official NASA Website",
		"about_us":           "This dashboard explores NASA bioscience publications dynamically.",
	}
}
