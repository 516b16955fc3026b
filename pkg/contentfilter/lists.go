package contentfilter

import (
	"bytes"
	"errors"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Lists holds the phrase lists a Filter matches against.
type Lists struct {
	Spam      []string `yaml:"spam"`
	Profanity []string `yaml:"profanity"`
}

// DefaultLists returns a copy of the built-in phrase lists.
func DefaultLists() Lists {
	return Lists{
		Spam:      slices.Clone(defaultSpam),
		Profanity: slices.Clone(defaultProfanity),
	}
}

var defaultSpam = []string{
	// promotional scams
	"buy now",
	"click here",
	"limited time offer",
	"act now",
	"100% guaranteed",
	"free money",
	"make money fast",
	"work from home",
	"get rich quick",
	// adult content
	"xxx",
	"adult content",
	"escort service",
	"porn",
	// financial scams
	"western union",
	"wire transfer",
	"money gram",
	"bitcoin investment",
	"double your money",
	"advance fee",
	"nigerian prince",
}

var defaultProfanity = []string{
	"damn",
	"crap",
	"shit",
	"fuck",
	"bitch",
	"bastard",
	"asshole",
	"dickhead",
}

// LoadLists decodes a YAML lists document. Blank entries are dropped.
func LoadLists(data []byte) (Lists, error) {
	var l Lists
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&l); err != nil {
		return Lists{}, errors.Join(ErrInvalidLists, err)
	}
	l.Spam = compact(l.Spam)
	l.Profanity = compact(l.Profanity)
	return l, nil
}

// LoadListsFile reads and decodes a YAML lists file.
func LoadListsFile(path string) (Lists, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Lists{}, errors.Join(ErrInvalidLists, err)
	}
	return LoadLists(data)
}

func compact(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
