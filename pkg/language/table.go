package language

// Entry describes one supported language: the provider code, the
// display name shown to users, the name injected into LLM prompts,
// and any extra aliases that should resolve to the same code.
type Entry struct {
	Code       string
	Name       string
	PromptName string
	Aliases    []string
}

// table is the canonical language list. Lookup keys are matched
// case-insensitively against code, name, prompt name and aliases.
var table = []Entry{
	{Code: "en", Name: "English", PromptName: "English"},
	{Code: "zh", Name: "Chinese", PromptName: "Simplified Chinese", Aliases: []string{"zh-cn", "simplified chinese", "mandarin"}},
	{Code: "zh-TW", Name: "Traditional Chinese", PromptName: "Traditional Chinese", Aliases: []string{"zh-tw"}},
	{Code: "ja", Name: "Japanese", PromptName: "Japanese"},
	{Code: "ko", Name: "Korean", PromptName: "Korean"},
	{Code: "fr", Name: "French", PromptName: "French"},
	{Code: "de", Name: "German", PromptName: "German"},
	{Code: "es", Name: "Spanish", PromptName: "Spanish"},
	{Code: "pt", Name: "Portuguese", PromptName: "Portuguese"},
	{Code: "it", Name: "Italian", PromptName: "Italian"},
	{Code: "ru", Name: "Russian", PromptName: "Russian"},
	{Code: "ar", Name: "Arabic", PromptName: "Arabic"},
	{Code: "hi", Name: "Hindi", PromptName: "Hindi"},
	{Code: "fa", Name: "Persian", PromptName: "Persian", Aliases: []string{"farsi"}},
	{Code: "tr", Name: "Turkish", PromptName: "Turkish"},
	{Code: "vi", Name: "Vietnamese", PromptName: "Vietnamese"},
	{Code: "th", Name: "Thai", PromptName: "Thai"},
	{Code: "id", Name: "Indonesian", PromptName: "Indonesian"},
	{Code: "ms", Name: "Malay", PromptName: "Malay"},
	{Code: "nl", Name: "Dutch", PromptName: "Dutch"},
	{Code: "pl", Name: "Polish", PromptName: "Polish"},
	{Code: "sv", Name: "Swedish", PromptName: "Swedish"},
	{Code: "da", Name: "Danish", PromptName: "Danish"},
	{Code: "fi", Name: "Finnish", PromptName: "Finnish"},
	{Code: "no", Name: "Norwegian", PromptName: "Norwegian"},
	{Code: "cs", Name: "Czech", PromptName: "Czech"},
	{Code: "ro", Name: "Romanian", PromptName: "Romanian"},
	{Code: "hu", Name: "Hungarian", PromptName: "Hungarian"},
	{Code: "uk", Name: "Ukrainian", PromptName: "Ukrainian"},
	{Code: "el", Name: "Greek", PromptName: "Greek"},
	{Code: "he", Name: "Hebrew", PromptName: "Hebrew"},
	{Code: "bg", Name: "Bulgarian", PromptName: "Bulgarian"},
	{Code: "sk", Name: "Slovak", PromptName: "Slovak"},
	{Code: "ur", Name: "Urdu", PromptName: "Urdu"},
	{Code: "bn", Name: "Bengali", PromptName: "Bengali"},
}
