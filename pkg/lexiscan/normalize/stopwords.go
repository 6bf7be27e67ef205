package normalize

// defaultStopwords is the embedded English function-word set removed
// during normalization. Contractions appear without apostrophes
// ("dont", "isnt") because tokenization drops apostrophes before the
// lookup. Single-character words are filtered by length, so they are
// not listed here.
var defaultStopwords = []string{
	"about", "above", "after", "again", "against", "all", "also", "am",
	"an", "and", "any", "are", "arent", "as", "at", "be", "because",
	"been", "before", "being", "below", "between", "both", "but", "by",
	"can", "cannot", "cant", "could", "couldnt", "did", "didnt", "do",
	"does", "doesnt", "doing", "dont", "down", "during", "each", "few",
	"for", "from", "further", "had", "hadnt", "has", "hasnt", "have",
	"havent", "having", "he", "her", "here", "hers", "herself", "him",
	"himself", "his", "how", "if", "in", "into", "is", "isnt", "it",
	"its", "itself", "just", "me", "more", "most", "my", "myself", "no",
	"nor", "not", "now", "of", "off", "on", "once", "only", "or",
	"other", "our", "ours", "ourselves", "out", "over", "own", "same",
	"she", "should", "shouldnt", "so", "some", "such", "than", "that",
	"the", "their", "theirs", "them", "themselves", "then", "there",
	"these", "they", "this", "those", "through", "to", "too", "under",
	"until", "up", "very", "was", "wasnt", "we", "were", "werent",
	"what", "when", "where", "which", "while", "who", "whom", "why",
	"will", "with", "wont", "would", "wouldnt", "you", "your", "yours",
	"yourself", "yourselves",
}
