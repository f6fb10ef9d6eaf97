package tags

import (
	_ "embed"
	"fmt"
	"regexp"

	"github.com/BurntSushi/toml"
	"github.com/DarwinAwardWinner/copytags/internal/shared"
)

//go:embed blacklist.toml
var defaultRules []byte

// reservedPattern matches backend-internal tag keys, which by convention
// carry a "~" prefix. Every blacklist includes it.
const reservedPattern = `^~`

// Blacklist is an ordered list of compiled patterns identifying tag keys
// that must stay hidden from reads, writes and enumeration.
type Blacklist []*regexp.Regexp

// NewBlacklist compiles the given patterns into a Blacklist. The
// reserved-key rule is always prepended. Patterns match
// case-insensitively, since tag key casing varies by format (TagLib
// reports ENCODEDBY where mutagen-style backends report encodedby).
func NewBlacklist(patterns ...string) (Blacklist, error) {
	bl := Blacklist{regexp.MustCompile(reservedPattern)}
	for _, p := range patterns {
		re, err := regexp.Compile("(?i)" + p)
		if err != nil {
			return nil, fmt.Errorf("%w: bad blacklist pattern %q: %v", shared.ErrInvalidArgument, p, err)
		}
		bl = append(bl, re)
	}
	return bl, nil
}

// Matches reports whether key is blacklisted. Patterns are searched
// anywhere in the key, not anchored.
func (b Blacklist) Matches(key string) bool {
	for _, re := range b {
		if re.MatchString(key) {
			return true
		}
	}
	return false
}

type ruleFile struct {
	Patterns []string `toml:"patterns"`
}

// DefaultBlacklist returns the blacklist built from the embedded rule set:
// encoder info, replaygain info and reserved keys.
func DefaultBlacklist() Blacklist {
	var rules ruleFile
	if err := toml.Unmarshal(defaultRules, &rules); err != nil {
		panic(fmt.Sprintf("failed to parse embedded blacklist rules: %v", err))
	}
	bl, err := NewBlacklist(rules.Patterns...)
	if err != nil {
		panic(fmt.Sprintf("failed to compile embedded blacklist rules: %v", err))
	}
	return bl
}
