package galaxy

import (
	"fmt"
	"math/rand"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// Seed holds the primary seed used for random numbers
type Seed struct {
	intSeed int64
}

// Jan 1, 2020 (to make filenames a little smaller)
const epoch2020 = 1577836800

// Init initializes the seed
// `hexSeed` is either the empty string or a hex value
func Init(hexSeed string) (Seed, error) {
	if hexSeed != "" {
		return ParseSeed(hexSeed)
	}
	return Seed{intSeed: time.Now().UnixNano() - epoch2020}, nil
}

// ParseSeed reads the seed part of a filename.
func ParseSeed(hexSeed string) (Seed, error) {
	intSeed, err := strconv.ParseInt(hexSeed, 16, 64)
	if err != nil {
		return Seed{}, fmt.Errorf("bad seed %q: %w", hexSeed, err)
	}
	return Seed{intSeed: intSeed}, nil
}

// GetSeed returns the rand initialization seed
func (s Seed) GetSeed() int64 {
	return s.intSeed
}

// String returns the seed in hex, as accepted by Init.
func (s Seed) String() string {
	return strconv.FormatInt(s.intSeed, 16)
}

// Rand returns a new random source starting at the seed. Two sources from the
// same seed produce the same sequence.
func (s Seed) Rand() *rand.Rand {
	return rand.New(rand.NewSource(s.intSeed))
}

// GetFilename returns a string to use for this file
func (s Seed) GetFilename(prefix, ext string) string {
	return fmt.Sprintf("%s%s-%s%s", prefix, getGitHash(), s, ext)
}

func getGitHash() string {
	cmdOut, err := exec.Command("git", "rev-parse", "--verify", "HEAD").Output()
	if err != nil {
		return ""
	}
	hash := strings.TrimSpace(string(cmdOut))
	if len(hash) > 7 {
		hash = hash[:7]
	}
	return hash
}
