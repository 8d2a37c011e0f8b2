package settings

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/magiconair/properties"
	"github.com/spf13/afero"
	"github.com/wizzomafizzo/uiprefs/internal/constants"
	"github.com/wizzomafizzo/uiprefs/internal/filesystem"
	"github.com/wizzomafizzo/uiprefs/internal/logging"
	"github.com/wizzomafizzo/uiprefs/internal/storage"
)

var (
	// ErrRead is returned when an existing settings file cannot be read.
	ErrRead = errors.New("failed to read settings file")
	// ErrParse is returned when the settings file is not valid key=value text.
	ErrParse = errors.New("failed to parse settings file")
	// ErrWrite is returned when the settings file cannot be replaced.
	ErrWrite = errors.New("failed to write settings file")
	// ErrEmptyKey is wrapped in ErrWrite when a mapping holds the empty key.
	ErrEmptyKey = errors.New("empty key cannot be stored")
)

// Store maps the settings file under the home directory to a Settings value.
// It holds no state between calls; every Load builds a fresh mapping.
type Store struct {
	fs   afero.Fs
	home storage.HomeResolver
}

// NewStore creates a store reading and writing through fs.
func NewStore(fs afero.Fs, home storage.HomeResolver) *Store {
	return &Store{fs: fs, home: home}
}

// Path returns <home>/uisettings.props.
func (s *Store) Path() string {
	return filepath.Join(s.home.HomeDir(), constants.SettingsFilename)
}

// Load returns the persisted settings. A missing or unreadable file yields an
// empty mapping; failures are logged, never returned.
func (s *Store) Load(ctx context.Context) Settings {
	loaded, err := s.LoadE(ctx)
	if err != nil {
		logging.Get(ctx).Warn().Err(err).Str("path", s.Path()).Msg("using empty settings")
		return New()
	}
	return loaded
}

// LoadE is Load with the failure reason. A missing file is not an error.
func (s *Store) LoadE(ctx context.Context) (Settings, error) {
	path := s.Path()

	exists, err := afero.Exists(s.fs, path)
	if err != nil {
		return New(), fmt.Errorf("%w %s: %w", ErrRead, path, err)
	}
	if !exists {
		logging.Get(ctx).Debug().Str("path", path).Msg("no settings file")
		return New(), nil
	}

	f, err := s.fs.Open(path)
	if err != nil {
		return New(), fmt.Errorf("%w %s: %w", ErrRead, path, err)
	}
	defer filesystem.CloseQuietly(ctx, f)

	data, err := io.ReadAll(f)
	if err != nil {
		return New(), fmt.Errorf("%w %s: %w", ErrRead, path, err)
	}

	loaded, skipped, err := decode(data)
	if err != nil {
		return New(), fmt.Errorf("%w %s: %w", ErrParse, path, err)
	}
	if skipped > 0 {
		logging.Get(ctx).Warn().Str("path", path).Int("lines", skipped).Msg("skipped entries without a key")
	}

	logging.Get(ctx).Debug().Str("path", path).Int("entries", len(loaded)).Msg("settings loaded")
	return loaded, nil
}

// Save replaces the settings file with values and reports whether every step
// succeeded. Failures are logged, never returned.
func (s *Store) Save(ctx context.Context, values Settings) bool {
	if err := s.SaveE(ctx, values); err != nil {
		logging.Get(ctx).Warn().Err(err).Str("path", s.Path()).Msg("settings not saved")
		return false
	}
	return true
}

// SaveE is Save with the failure reason. The new content is written to a
// temporary file in the home directory and renamed over the target, so a failed
// save leaves the previous file untouched. An existing file keeps its permission
// bits. The home directory is not created.
func (s *Store) SaveE(ctx context.Context, values Settings) error {
	path := s.Path()

	data, err := encode(values)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrWrite, path, err)
	}

	tmp, err := afero.TempFile(s.fs, filepath.Dir(path), constants.SettingsFilename+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrWrite, path, err)
	}
	tmpName := tmp.Name()
	closed, committed := false, false
	defer func() {
		if !closed {
			filesystem.CloseQuietly(ctx, tmp)
		}
		if !committed {
			_ = s.fs.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("%w %s: %w", ErrWrite, path, err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("%w %s: %w", ErrWrite, path, err)
	}
	closed = true
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w %s: %w", ErrWrite, path, err)
	}
	if info, err := s.fs.Stat(path); err == nil {
		if err := s.fs.Chmod(tmpName, info.Mode().Perm()); err != nil {
			return fmt.Errorf("%w %s: %w", ErrWrite, path, err)
		}
	}
	if err := s.fs.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%w %s: %w", ErrWrite, path, err)
	}
	committed = true

	logging.Get(ctx).Debug().Str("path", path).Int("entries", len(values)).Msg("settings saved")
	return nil
}

// encode writes values as key=value lines sorted by key, escaped so that every
// key and value reads back unchanged.
func encode(values Settings) ([]byte, error) {
	var b strings.Builder
	for _, k := range values.Keys() {
		if k == "" {
			return nil, ErrEmptyKey
		}
		b.WriteString(escapeKey(k))
		b.WriteByte('=')
		b.WriteString(escapeValue(values[k]))
		b.WriteByte('\n')
	}
	return []byte(b.String()), nil
}

func escapeKey(k string) string {
	var b strings.Builder
	for i, r := range k {
		switch {
		case r == ' ' || r == '=' || r == ':':
			b.WriteByte('\\')
			b.WriteRune(r)
		case i == 0 && (r == '#' || r == '!'):
			b.WriteByte('\\')
			b.WriteRune(r)
		default:
			writeEscaped(&b, r)
		}
	}
	return b.String()
}

func escapeValue(v string) string {
	var b strings.Builder
	leading := true
	for _, r := range v {
		if r != ' ' {
			leading = false
		}
		if leading {
			b.WriteString(`\ `)
			continue
		}
		writeEscaped(&b, r)
	}
	return b.String()
}

func writeEscaped(b *strings.Builder, r rune) {
	switch r {
	case '\\':
		b.WriteString(`\\`)
	case '\n':
		b.WriteString(`\n`)
	case '\r':
		b.WriteString(`\r`)
	case '\t':
		b.WriteString(`\t`)
	case '\f':
		b.WriteString(`\f`)
	default:
		b.WriteRune(r)
	}
}

// decode parses key=value text. ${...} references are kept literally. Lines with
// an empty key are skipped and counted.
func decode(data []byte) (Settings, int, error) {
	cleaned, skipped := dropEmptyKeyLines(string(data))
	loader := &properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
	p, err := loader.LoadBytes([]byte(cleaned))
	if err != nil {
		return nil, skipped, err //nolint:wrapcheck // wrapped by caller with path
	}
	return Settings(p.Map()), skipped, nil
}

// dropEmptyKeyLines removes logical lines starting with a separator, together
// with their continuation lines. The properties parser rejects them and leaves
// its lexer goroutine blocked.
func dropEmptyKeyLines(text string) (string, int) {
	var b strings.Builder
	skipped := 0
	continued, skipping := false, false
	for _, line := range strings.SplitAfter(text, "\n") {
		body := strings.TrimRight(line, "\r\n")
		trimmed := strings.TrimLeft(body, " \t\f")
		comment := false
		if !continued {
			skipping = strings.HasPrefix(trimmed, "=") || strings.HasPrefix(trimmed, ":")
			if skipping {
				skipped++
			}
			comment = strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "!")
		}
		continued = !comment && trailingBackslashes(body)%2 == 1
		if !skipping {
			b.WriteString(line)
		}
	}
	return b.String(), skipped
}

func trailingBackslashes(s string) int {
	n := 0
	for i := len(s) - 1; i >= 0 && s[i] == '\\'; i-- {
		n++
	}
	return n
}
