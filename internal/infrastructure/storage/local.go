package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Store gestiona el directorio local de documentos subidos.
type Store struct {
	dir string
}

// NewStore crea (si hace falta) el directorio de uploads y devuelve el store.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de uploads: %w", err)
	}
	return &Store{dir: dir}, nil
}

// BuildPath devuelve la ruta destino y el nombre final en disco para un
// upload: <user_id>_<unix_ts>_<nombre saneado>. El timestamp evita colisiones
// entre subidas del mismo usuario; el saneado impide path traversal.
func (s *Store) BuildPath(userID, originalFilename string) (path, storedName string) {
	storedName = fmt.Sprintf("%s_%d_%s", userID, time.Now().Unix(), SanitizeFilename(originalFilename))
	return filepath.Join(s.dir, storedName), storedName
}

// Dir devuelve el directorio base de uploads.
func (s *Store) Dir() string { return s.dir }

// normalizer descompone a NFD, elimina marcas diacríticas y recompone.
var normalizer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// SanitizeFilename reduce un nombre de archivo arbitrario del cliente a un
// nombre seguro: solo el componente base (sin rutas), sin diacríticos y con
// el alfabeto restringido a [A-Za-z0-9._-]. Nunca devuelve vacío.
func SanitizeFilename(name string) string {
	// Tratar separadores de Windows y Unix antes de tomar el base name
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)

	if ascii, _, err := transform.String(normalizer, name); err == nil {
		name = ascii
	}

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	out := strings.Trim(b.String(), "._")
	if out == "" {
		return "document"
	}
	return out
}
