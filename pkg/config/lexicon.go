package config

// Built-in phrase lists for the scoring lexicon and the source-side pain
// pre-filter. All matching is case-insensitive substring matching against
// post text; the lists are lower-case by construction. Functions return
// fresh copies so callers can append without aliasing the defaults.

// DefaultSignalPatterns returns the pain-signal phrases sources record on
// matching posts at scrape time.
func DefaultSignalPatterns() []string {
	return []string{
		"is there a product that",
		"i wish someone made",
		"i wish there was",
		"why doesn't",
		"why isn't there",
		"frustrated with",
		"hate that",
		"need a better",
		"looking for something",
		"can't find a",
		"does anyone know",
		"any recommendations for",
		"sick of",
		"tired of",
		"annoying that",
		"would pay for",
		"shut up and take my money",
		"someone should make",
		"why hasn't anyone",
		"there should be",
	}
}

// DefaultHighIntensity returns the high emotion-intensity tier.
func DefaultHighIntensity() []string {
	return []string{
		"hate that",
		"hate how",
		"drives me crazy",
		"driving me crazy",
		"infuriating",
		"nightmare",
		"losing my mind",
		"can't believe there isn't",
		"so frustrated",
		"absolute worst",
		"unbearable",
		"desperate for",
	}
}

// DefaultMediumIntensity returns the medium emotion-intensity tier.
func DefaultMediumIntensity() []string {
	return []string{
		"frustrated with",
		"frustrating",
		"sick of",
		"tired of",
		"annoying that",
		"annoyed that",
		"so annoying",
		"struggling to",
		"struggle with",
		"why is it so hard",
		"fed up with",
		"painful to",
	}
}

// DefaultLowIntensity returns the low emotion-intensity tier.
func DefaultLowIntensity() []string {
	return []string{
		"i wish there was",
		"i wish someone made",
		"wish there was",
		"would be nice",
		"inconvenient",
		"tedious",
		"not ideal",
		"there should be",
		"why isn't there",
		"why doesn't",
		"looking for something",
		"can't find a",
	}
}

// DefaultPaymentIntent returns the willingness-to-pay phrases.
func DefaultPaymentIntent() []string {
	return []string{
		"would pay",
		"i'd pay",
		"would pay for",
		"pay good money",
		"take my money",
		"shut up and take my money",
		"happy to pay",
		"gladly pay",
		"worth paying for",
		"willing to pay",
		"would buy",
		"would definitely buy",
		"instant purchase",
		"day one purchase",
	}
}

// DefaultDIYSignals returns the DIY/workaround phrases.
func DefaultDIYSignals() []string {
	return []string{
		"diy",
		"workaround",
		"work around",
		"hacked together",
		"hack together",
		"built my own",
		"build my own",
		"made my own",
		"make my own",
		"wrote a script",
		"cobbled together",
		"duct tape",
		"jury-rigged",
		"ended up making",
		"my own solution",
	}
}

// DefaultStopwords returns the stopword list shared by the tokenizer and
// the keyword extractor.
func DefaultStopwords() []string {
	return []string{
		"the", "and", "for", "that", "this", "with", "you", "your", "have",
		"has", "had", "his", "not", "are", "was", "were", "been", "being",
		"can", "could", "will", "would", "should", "all", "any", "each",
		"get", "got", "just", "like", "what", "when", "where", "which",
		"who", "how", "why", "there", "their", "they", "them", "then",
		"than", "its", "it's", "from", "into", "over", "about", "after",
		"before", "because", "while", "some", "only", "very", "really",
		"also", "more", "most", "much", "many", "such", "even", "still",
		"way", "make", "made", "need", "want", "know", "use", "used",
		"using", "one", "two", "does", "don't", "doesn't", "can't",
		"won't", "isn't", "i'm", "i've", "but", "out", "now", "too",
		"people", "something", "someone", "anyone", "anything", "everyone",
	}
}

// DefaultGenericTerms returns generic terms dropped from generated titles
// in addition to the stopwords.
func DefaultGenericTerms() []string {
	return []string{
		"product", "products", "app", "apps", "solution", "solutions",
		"idea", "ideas", "thing", "things", "problem", "problems",
		"issue", "issues", "help", "question", "questions", "post",
		"recommendation", "recommendations", "advice", "stuff", "good",
		"better", "best", "new", "time", "day", "year", "work", "find",
	}
}
