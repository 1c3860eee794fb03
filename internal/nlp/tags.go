package nlp

import "strings"

// Penn Treebank tags referenced by the detectors
const (
	TagProperNoun       = "NNP"
	TagProperNounPlural = "NNPS"
)

// IsNoun reports whether tag is any noun tag (NN, NNS, NNP, NNPS)
func IsNoun(tag string) bool {
	return strings.HasPrefix(tag, "NN")
}

// IsProperNoun reports whether tag is a singular or plural proper noun
func IsProperNoun(tag string) bool {
	return tag == TagProperNoun || tag == TagProperNounPlural
}

// TagSet is a set of tags
type TagSet map[string]struct{}

// NewTagSet builds a set from a list of tags
func NewTagSet(tags []string) TagSet {
	s := make(TagSet, len(tags))
	for _, t := range tags {
		s[strings.TrimSpace(t)] = struct{}{}
	}
	return s
}

// Contains reports whether tag is in the set
func (s TagSet) Contains(tag string) bool {
	_, ok := s[tag]
	return ok
}
