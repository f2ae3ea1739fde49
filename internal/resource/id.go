// Package resource contains code common to all content resources (pages,
// snippets, users, etc).
package resource

import (
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
)

const (
	// base58 alphabet
	base58 = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
	// length of id part of ID
	idLength = 16
)

// Kind of resource an ID identifies.
type Kind string

const (
	PageKind    Kind = "page"
	SnippetKind Kind = "snippet"
	UserKind    Kind = "user"
	TaskKind    Kind = "task"
)

var (
	// EmptyID for use in comparisons to check whether an ID is
	// uninitialized.
	EmptyID = ID{}
	// regex for a valid ID
	idRegex = regexp.MustCompile(`^[a-z]{2,}-[` + base58 + `]{1,` + strconv.Itoa(idLength) + `}$`)
)

// ID uniquely identifies a resource.
type ID struct {
	Kind Kind
	ID   string
}

// NewID constructs a resource ID with a randomly generated identifier.
func NewID(kind Kind) ID {
	return ID{Kind: kind, ID: generateRandomStringFromAlphabet(idLength, base58)}
}

// ParseID parses an ID from its string representation, e.g. page-abc123.
func ParseID(s string) (ID, error) {
	if !idRegex.MatchString(s) {
		return ID{}, fmt.Errorf("malformed ID: %s", s)
	}
	kind, id, _ := strings.Cut(s, "-")
	return ID{Kind: Kind(kind), ID: id}, nil
}

func (id ID) String() string {
	return fmt.Sprintf("%s-%s", id.Kind, id.ID)
}

func (id *ID) UnmarshalText(text []byte) error {
	parsed, err := ParseID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// generateRandomStringFromAlphabet generates a random string of a given size
// using characters from the given alphabet.
func generateRandomStringFromAlphabet(size int, alphabet string) string {
	buf := make([]byte, size)
	for i := 0; i < size; i++ {
		buf[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return string(buf)
}
