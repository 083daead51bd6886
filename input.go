package aoc

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"tailscale.com/types/logger"
)

// DefaultBaseURL is where puzzle inputs are fetched from.
const DefaultBaseURL = "https://adventofcode.com"

// Inputs loads puzzle inputs, caching them on disk.
type Inputs struct {
	Year int

	// Dir is the cache directory. Inputs are stored as Dir/<year>/<day>.input.
	Dir string

	// SessionFile holds the adventofcode.com session cookie.
	SessionFile string

	// Sample makes days run against the samples in their doc comments
	// instead of the real input.
	Sample bool

	BaseURL string       // DefaultBaseURL if empty
	Client  *http.Client // http.DefaultClient if nil
	Logf    logger.Logf
}

func (in *Inputs) logf() logger.Logf {
	return orDiscard(in.Logf)
}

// Path returns the cache file of the given day.
func (in *Inputs) Path(day int) string {
	return filepath.Join(in.Dir, fmt.Sprintf("%d/%d.input", in.Year, day))
}

// Load returns the input of the given day, fetching and caching it if it
// is not on disk yet.
func (in *Inputs) Load(day int) ([]byte, error) {
	filename := in.Path(day)
	b, err := os.ReadFile(filename)
	if err == nil {
		return b, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	url := fmt.Sprintf("%s/%d/day/%d/input", Or(in.BaseURL, DefaultBaseURL), in.Year, day)
	in.logf()("fetching %s", url)
	body, err := in.fetch(url)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0700); err != nil {
		return nil, err
	}
	if err := os.WriteFile(filename, body, 0644); err != nil {
		return nil, err
	}
	return body, nil
}

func (in *Inputs) session() (string, error) {
	if in.SessionFile == "" {
		return "", errors.New("no session file configured")
	}
	b, err := os.ReadFile(in.SessionFile)
	if err != nil {
		return "", fmt.Errorf("reading session: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

func (in *Inputs) fetch(url string) ([]byte, error) {
	session, err := in.session()
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: session})

	c := in.Client
	if c == nil {
		c = http.DefaultClient
	}
	res, err := c.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status fetching %s: %v", url, res.Status)
	}
	return io.ReadAll(res.Body)
}
