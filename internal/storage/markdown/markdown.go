package markdown

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"

	"github.com/chris-regnier/caldiary/internal/day"
	"github.com/chris-regnier/caldiary/internal/storage"
)

// Store implements storage.Store using one Markdown file per date with a
// YAML front-matter header, laid out as entries/YYYY/MM/DD.md.
type Store struct {
	baseDir string // e.g. ~/.caldiary/entries/
	now     func() time.Time
}

// New creates a new Markdown file storage backend.
func New(dataDir string) (*Store, error) {
	entriesDir := filepath.Join(dataDir, "entries")
	if err := os.MkdirAll(entriesDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: creating entries directory: %v", storage.ErrStorage, err)
	}
	return &Store{baseDir: entriesDir, now: time.Now}, nil
}

// Close is a no-op for the Markdown backend.
func (s *Store) Close() error {
	return nil
}

func (s *Store) entryPath(date day.Date) string {
	return filepath.Join(s.baseDir,
		fmt.Sprintf("%04d", date.Year),
		fmt.Sprintf("%02d", int(date.Month)),
		fmt.Sprintf("%02d.md", date.Day))
}

type frontMatter struct {
	Date      string `yaml:"date"`
	UpdatedAt string `yaml:"updated_at"`
}

func (s *Store) marshal(date day.Date, content string) ([]byte, error) {
	header, err := yaml.Marshal(frontMatter{
		Date:      date.String(),
		UpdatedAt: s.now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: encoding front-matter: %v", storage.ErrStorage, err)
	}
	var b bytes.Buffer
	b.WriteString("---\n")
	b.Write(header)
	b.WriteString("---\n\n")
	b.WriteString(content)
	return b.Bytes(), nil
}

// unmarshal returns the body of an entry file. Files written by hand
// without front-matter are returned whole.
func unmarshal(data []byte) (string, error) {
	var fm frontMatter
	body, err := frontmatter.Parse(bytes.NewReader(data), &fm)
	if err != nil {
		return "", fmt.Errorf("%w: parsing front-matter: %v", storage.ErrStorage, err)
	}
	// marshal separates header and body with one blank line.
	return strings.TrimPrefix(string(body), "\n"), nil
}

// atomicWrite writes data to a temp file then renames it to the target path.
func (s *Store) atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: creating directory: %v", storage.ErrStorage, err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: creating temp file: %v", storage.ErrStorage, err)
	}
	tmpName := tmp.Name()

	// Lock the temp file during write
	if err := syscall.Flock(int(tmp.Fd()), syscall.LOCK_EX); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: acquiring lock: %v", storage.ErrStorage, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: writing temp file: %v", storage.ErrStorage, err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: closing temp file: %v", storage.ErrStorage, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: renaming file: %v", storage.ErrStorage, err)
	}

	return nil
}

// Load reads the entry for date.
func (s *Store) Load(date day.Date) (string, error) {
	if err := storage.ValidateDate(date); err != nil {
		return "", err
	}
	data, err := os.ReadFile(s.entryPath(date))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", storage.ErrNotFound
		}
		return "", fmt.Errorf("%w: reading file: %v", storage.ErrStorage, err)
	}
	return unmarshal(data)
}

// Save writes the entry for date, replacing any previous one.
func (s *Store) Save(date day.Date, content string) error {
	if err := storage.Validate(date, content); err != nil {
		return err
	}
	data, err := s.marshal(date, content)
	if err != nil {
		return err
	}
	return s.atomicWrite(s.entryPath(date), data)
}

// Delete removes the entry file for date and prunes emptied month and year
// directories.
func (s *Store) Delete(date day.Date) error {
	if err := storage.ValidateDate(date); err != nil {
		return err
	}
	path := s.entryPath(date)
	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return storage.ErrNotFound
		}
		return fmt.Errorf("%w: removing file: %v", storage.ErrStorage, err)
	}

	monthDir := filepath.Dir(path)
	// Remove fails on non-empty directories, which is what we want.
	if os.Remove(monthDir) == nil {
		os.Remove(filepath.Dir(monthDir))
	}
	return nil
}

// Scan walks the entries tree and returns every date with a file.
// Files that do not follow the YYYY/MM/DD.md layout are ignored.
func (s *Store) Scan() ([]day.Date, error) {
	var dates []day.Date
	err := filepath.WalkDir(s.baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // skip errors
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}
		rel, err := filepath.Rel(s.baseDir, path)
		if err != nil {
			return nil
		}
		if date, ok := parseEntryPath(rel); ok {
			dates = append(dates, date)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: scanning entries: %v", storage.ErrStorage, err)
	}
	slices.SortFunc(dates, day.Date.Compare)
	return dates, nil
}

func parseEntryPath(rel string) (day.Date, bool) {
	parts := strings.Split(filepath.ToSlash(rel), "/")
	if len(parts) != 3 {
		return day.Date{}, false
	}
	year, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	d, err3 := strconv.Atoi(strings.TrimSuffix(parts[2], ".md"))
	if err1 != nil || err2 != nil || err3 != nil {
		return day.Date{}, false
	}
	date := day.New(year, time.Month(month), d)
	return date, date.Valid()
}
