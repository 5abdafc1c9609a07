package gart

import (
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/scottkirkwood/gart/randompool"
)

// Seed hold the primary seed used for random numbers
type Seed struct {
	seed string
}

// Jan 1, 2020 (to make filenames a little smaller)
const epoch2020 = 1577836800

// Init initializes the seed.
// `seed` is any string; the empty string picks one from the clock.
func Init(seed string) Seed {
	if seed == "" {
		seed = strconv.FormatInt(time.Now().UnixNano()-epoch2020, 16)
	}
	return Seed{seed: seed}
}

// String returns the seed text.
func (s Seed) String() string {
	return s.seed
}

// Pool returns a fresh random pool for this seed.
func (s Seed) Pool() *randompool.Pool {
	return randompool.New(s.seed)
}

var unsafeFileRx = regexp.MustCompile(`[^A-Za-z0-9_.-]+`)

// GetFilename returns a string to use for this file
func (s Seed) GetFilename(prefix, ext string) string {
	name := unsafeFileRx.ReplaceAllString(s.seed, "_")
	if hash := getGitHash(); hash != "" {
		return fmt.Sprintf("%s%s-%s%s", prefix, hash, name, ext)
	}
	return fmt.Sprintf("%s%s%s", prefix, name, ext)
}

func getGitHash() string {
	var (
		cmdOut []byte
		err    error
	)
	cmdName := "git"
	cmdArgs := []string{"rev-parse", "--verify", "HEAD"}
	if cmdOut, err = exec.Command(cmdName, cmdArgs...).Output(); err != nil {
		return ""
	}
	out := strings.TrimSpace(string(cmdOut))
	if len(out) < 7 {
		return ""
	}
	return out[0:7]
}
