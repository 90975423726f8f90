// Package credentials resolves the GitHub token projinit authenticates with.
package credentials

import (
	"bufio"
	"log/slog"
	"os"
	"strings"

	"thoreinstein.com/projinit/pkg/config"
	projerrors "thoreinstein.com/projinit/pkg/errors"
)

// EnvVars are checked in order before any other source.
var EnvVars = []string{"GITHUB_PAT_TOKEN", "GITHUB_TOKEN"}

// Source names reported in Token.Source and CredentialError.Sources.
const (
	SourceEnv       = "env"
	SourceConfig    = "config"
	SourceKeychain  = "keychain"
	SourceTokenFile = "token file"
)

// Token is a resolved GitHub token and where it came from.
type Token struct {
	Value  string
	Source string // One of the Source* constants
	Detail string // Env var name or file path, when applicable
}

// Loader resolves a token from env, config, keychain, then the token file.
type Loader struct {
	ConfigToken string
	TokenFile   string
	Marker      string
	Store       Store // Optional; nil skips the keychain

	Getenv func(string) string
	logger *slog.Logger
}

// NewLoader creates a Loader for cfg backed by the system keychain.
func NewLoader(cfg *config.Config) *Loader {
	return &Loader{
		ConfigToken: cfg.GitHub.Token,
		TokenFile:   cfg.GitHub.TokenFile,
		Marker:      cfg.GitHub.TokenMarker,
		Store:       NewKeychainStore(),
		Getenv:      os.Getenv,
		logger:      slog.Default(),
	}
}

// Load returns the first token found. It fails with a CredentialError naming
// every source consulted when none yields a token.
func (l *Loader) Load() (*Token, error) {
	getenv := l.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	logger := l.logger
	if logger == nil {
		logger = slog.Default()
	}

	for _, name := range EnvVars {
		if v := strings.TrimSpace(getenv(name)); v != "" {
			logger.Debug("github token resolved", "source", SourceEnv, "var", name)
			return &Token{Value: v, Source: SourceEnv, Detail: name}, nil
		}
	}
	checked := []string{strings.Join(EnvVars, "/")}

	if v := strings.TrimSpace(l.ConfigToken); v != "" {
		logger.Debug("github token resolved", "source", SourceConfig)
		return &Token{Value: v, Source: SourceConfig}, nil
	}
	checked = append(checked, "github.token")

	if l.Store != nil {
		v, err := l.Store.Get()
		if err != nil {
			// An unavailable keychain (headless Linux) is not fatal.
			logger.Debug("keychain lookup failed", "error", err)
		} else if v != "" {
			logger.Debug("github token resolved", "source", SourceKeychain)
			return &Token{Value: v, Source: SourceKeychain}, nil
		}
		checked = append(checked, SourceKeychain)
	}

	if l.TokenFile != "" {
		v, err := ReadTokenFile(l.TokenFile, l.marker())
		if err != nil {
			logger.Debug("token file not usable", "path", l.TokenFile, "error", err)
		} else if v != "" {
			logger.Debug("github token resolved", "source", SourceTokenFile, "path", l.TokenFile)
			return &Token{Value: v, Source: SourceTokenFile, Detail: l.TokenFile}, nil
		}
		checked = append(checked, l.TokenFile)
	}

	return nil, projerrors.NewCredentialError("no GitHub token found", checked...)
}

func (l *Loader) marker() string {
	if l.Marker == "" {
		return config.DefaultTokenMarker
	}
	return l.Marker
}

// ReadTokenFile scans path line by line and returns the token from the first
// line containing marker. It returns "" with no error if no line matches.
func ReadTokenFile(path, marker string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if token, ok := ParseMarkerLine(scanner.Text(), marker); ok {
			return token, nil
		}
	}
	return "", scanner.Err()
}

// ParseMarkerLine extracts the first whitespace-delimited field following
// marker in line. ok is false when the marker is absent or nothing follows it.
func ParseMarkerLine(line, marker string) (token string, ok bool) {
	if marker == "" {
		return "", false
	}
	idx := strings.Index(line, marker)
	if idx < 0 {
		return "", false
	}
	fields := strings.Fields(line[idx+len(marker):])
	if len(fields) == 0 {
		return "", false
	}
	return fields[0], true
}
