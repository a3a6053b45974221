package lexicon

// contractions maps irregular contracted forms to their written-out
// expansions. Forms with no satisfactory expansion (mostly borrowings
// like "j'accuse") map to themselves so callers know not to split them.
var contractions = map[string]string{
	// not
	"can't":    "can not",
	"won't":    "will not",
	"shan't":   "shall not",
	"ain't":    "is not",
	"can't've": "can not have",
	"won't've": "will not have",
	"tain't":   "it is not",

	"mayn't":    "may not",
	"mustn't":   "must not",
	"mightn't":  "might not",
	"wouldn't":  "would not",
	"couldn't":  "could not",
	"shouldn't": "should not",
	"don't":     "do not",
	"doesn't":   "does not",
	"didn't":    "did not",
	"haven't":   "have not",
	"hasn't":    "has not",
	"hadn't":    "had not",

	"aren't":  "are not",
	"isn't":   "is not",
	"wasn't":  "was not",
	"weren't": "were not",

	"shouldn't've": "should not have",
	"wouldn't've":  "would not have",
	"couldn't've":  "could not have",
	"mightn't've":  "might not have",
	"mayn't've":    "may not have",

	// have
	"I've":     "I have",
	"we've":    "we have",
	"you've":   "you have",
	"they've":  "they have",
	"these've": "these have",
	"those've": "those have",

	"should've": "should have",
	"would've":  "would have",
	"could've":  "could have",
	"might've":  "might have",
	"may've":    "may have",
	"can've":    "can have",
	"will've":   "will have",

	"who've":   "who have",
	"where've": "where have",
	"what've":  "what have",
	"when've":  "when have",
	"why've":   "why have",
	"how've":   "how have",

	// is and are
	"I'm":     "I am",
	"we're":   "we are",
	"you're":  "you are",
	"he's":    "he is",
	"she's":   "she is",
	"they're": "they are",
	"it's":    "it is",

	"there's":     "there is",
	"all's":       "all is",
	"anybody's":   "anybody is",
	"everybody's": "everybody is",
	"somebody's":  "somebody is",
	"nobody's":    "nobody is",

	"who's":   "who is",
	"where's": "where is",
	"what's":  "what is",
	"when's":  "when is",
	"why's":   "why is",
	"how's":   "how is",

	"who're":   "who are",
	"where're": "where are",
	"what're":  "what are",
	"when're":  "when are",
	"why're":   "why are",
	"how're":   "how are",

	"that's":   "that is",
	"these're": "these are",
	"those're": "those are",

	// will
	"I'll":    "I will",
	"we'll":   "we will",
	"you'll":  "you will",
	"he'll":   "he will",
	"she'll":  "she will",
	"they'll": "they will",
	"it'll":   "it will",

	"there'll":     "there will",
	"all'l":        "all will",
	"anybody'll":   "anybody will",
	"everybody'll": "everybody will",
	"somebody'll":  "somebody will",
	"nobody'll":    "nobody will",

	"who'll":   "who will",
	"where'll": "where will",
	"what'll":  "what will",
	"when'll":  "when will",
	"why'll":   "why will",
	"how'll":   "how will",

	"that'll":  "that will",
	"this'll":  "this will",
	"these'll": "these will",
	"those'll": "those will",

	// would
	"I'd":    "I would",
	"we'd":   "we would",
	"you'd":  "you would",
	"he'd":   "he would",
	"she'd":  "she would",
	"they'd": "they would",
	"it'd":   "it would",

	"there'd":     "there would",
	"all'd":       "all would",
	"anybody'd":   "anybody would",
	"everybody'd": "everybody would",
	"somebody'd":  "somebody would",
	"nobody'd":    "nobody would",

	"who'd":   "who would",
	"where'd": "where would",
	"what'd":  "what would",
	"when'd":  "when would",
	"why'd":   "why would",
	"how'd":   "how would",

	"that'd":  "that would",
	"this'd":  "this would",
	"these'd": "these would",
	"those'd": "those would",

	"let's": "let us",
	"let'r": "let her",
	"let'm": "let him",

	"y'all":  "you all",
	"y'know": "you know",
	"ye're":  "you are",
	"'tis":   "it is",
	"g'ahn":  "go on",

	"lighter'n":        "lighter than",
	"more'n":           "more than",
	"tug-o'-war":       "tug of war",
	"will-o'-the-wisp": "will-of-the-wisp",
	"c'mon":            "c'mon",

	// apostrophe-initial
	"'em":  "them",
	"'til": "until",

	// no apostrophe at all
	"cannot":  "can not",
	"lookit":  "look at",
	"hafta":   "have to",
	"howda":   "how do",
	"whaddya": "what do you",
	"willya":  "will you",

	"gonna": "going to",
	"gotta": "got to",
	"wanna": "want to",
	"wanta": "want to",

	"lemme": "let me",
	"gimme": "give me",
	"ahm":   "I am",

	"outta":  "out of",
	"lotta":  "lot of",
	"buncha": "bunch of",

	"woulda":  "would have",
	"coulda":  "could have",
	"shoulda": "should have",
	"oughta":  "ought have",
	"musta":   "must have",
	"ima":     "I am going to",
	"wadna":   "would not have",

	// borrowings left whole
	"D'art":      "D'art",
	"L'Institut": "L'Institut",
	"c'est":      "c'est",
	"dell'":      "dell'",
	"j'ai":       "j'ai",
	"s'accuse":   "s'accuse",
	"j'accuse":   "j'accuse",
}

// suffixExpansions holds the semi-regular contraction suffixes that
// attach productively to a preceding word, in match order. These expand
// without knowing the word class, so "young'n" comes out "young than";
// the irregular table wins whenever it has the whole form.
var suffixExpansions = []struct {
	Suffix    string
	Expansion string
}{
	{"n't", "not"},
	{"'ve", "have"},
	{"'ll", "will"},
	{"'n", "than"},
}

// splitSuffixes are the contraction tails a tokenizer may detach from
// their stem without expanding, longest first. "can't" detaches as
// can + 't, not ca + n't.
var splitSuffixes = []string{"'ll", "'ve", "'re", "'s", "'d", "'t"}

// titles are personal titles, spelled out and abbreviated, without the
// abbreviation period.
var titles = newSet(
	"Mr", "Dr", "Mrs", "Ms", "Messr", "Messrs", "Rev", "Fr", "St", "Msgnr",
	"Pres", "Gen", "Cpl", "Maj", "Pvt",
	"Mister", "Doctor", "Mistress", "Miss", "Reverend", "Father", "Saint",
	"Monsignor", "President", "General", "Corporal", "Major", "Private",
)

// abbrs are common abbreviations, without the final period.
var abbrs = newSet(
	"Mr", "Dr", "Mrs", "Ms", "Messr", "Messrs",
	"Rev", "Fr", "St", "Msgnr",
	"Pres", "Gen", "Cpl", "Maj", "Pvt",

	"Jan", "Feb", "Mar", "Apr", "May",
	"Jun", "Jul", "Aug", "Sep", "Sept", "Oct", "Nov", "Dec",
	"Mon", "Tue", "Tues", "Wed", "Weds",
	"Thu", "Thur", "Thurs", "Fri", "Sat", "Sun",

	"Ave", "Blvd", "Rd", "Ln", "Ct",
	"Co", "Inc", "i.e", "e.g",
)

var months = newSet(
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
	"Jan", "Feb", "Mar", "Apr", "Jun", "Jul", "Aug", "Sep", "Sept",
	"Oct", "Nov", "Dec",
)

var weekdays = newSet(
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
	"Sunday",
	"Mon", "Tue", "Tues", "Wed", "Weds", "Thu", "Thur", "Thurs",
	"Fri", "Sat", "Sun",
)

var relativeDays = newSet("today", "tomorrow", "yesterday", "eve")

var dayParts = newSet(
	"morning", "noon", "afternoon", "night", "midnight",
	"dawn", "dusk", "matins", "vespers", "lauds",
)

// unitPrefixes are metric prefixes, useful for recognizing unit words.
var unitPrefixes = newSet(
	"deci", "centi", "milli", "micro", "nano", "pico", "atto", "femto",
	"deka", "hekta", "kilo", "mega", "giga", "tera", "peta", "exa",
	"zeta", "yotta",
)

func newSet(words ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}
