package textkit

import (
	"regexp"
	"sync"
)

// regexCache holds compiled patterns shared by every tokenizer in the
// process. Compilation happens once per pattern; the lock makes the
// cache safe for tokenizers running on different goroutines.
var regexCache = struct {
	mu sync.RWMutex
	m  map[string]*regexp.Regexp
}{m: make(map[string]*regexp.Regexp)}

// cachedRegexp returns the compiled form of pattern, compiling and
// caching it on first use.
func cachedRegexp(pattern string) (*regexp.Regexp, error) {
	regexCache.mu.RLock()
	re, ok := regexCache.m[pattern]
	regexCache.mu.RUnlock()
	if ok {
		return re, nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}

	regexCache.mu.Lock()
	if prior, ok := regexCache.m[pattern]; ok {
		re = prior
	} else {
		regexCache.m[pattern] = re
	}
	regexCache.mu.Unlock()
	return re, nil
}
