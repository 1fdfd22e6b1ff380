// seed genera el script SQL con las bodegas y usuarios iniciales a partir de un CSV.
//
// Uso: go run ./cmd/seed [ruta/seed.csv]
// Por defecto busca seed.csv en el directorio actual. El CSV puede venir en UTF-8 o ISO-8859-1
// (exportado desde Excel). Columnas:
//
//	warehouse,<nombre>,<tipo>,<ubicación>
//	user,<username>,<rol>,<password>,<nombre>
//
// Escribe: internal/infrastructure/postgres/migrations/002_seed.sql
package main

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Planta-api/internal/domain/access"
)

type warehouseRow struct {
	name, typ, location string
}

type userRow struct {
	username, role, password, name string
}

type seed struct {
	warehouses []warehouseRow
	users      []userRow
}

// hashFunc permite usar bcrypt.MinCost en tests.
type hashFunc func(password string) (string, error)

func bcryptHash(cost int) hashFunc {
	return func(password string) (string, error) {
		h, err := bcrypt.GenerateFromPassword([]byte(password), cost)
		return string(h), err
	}
}

func main() {
	csvPath := "seed.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	raw, err := os.ReadFile(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	s, err := parseSeed(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	outPath := filepath.Join(findModuleRoot(), "internal", "infrastructure", "postgres", "migrations", "002_seed.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := writeSQL(out, s, bcryptHash(bcrypt.DefaultCost)); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s: %d bodegas, %d usuarios\n", outPath, len(s.warehouses), len(s.users))
}

// decode devuelve un lector UTF-8; si el contenido no es UTF-8 válido se asume ISO-8859-1.
func decode(raw []byte) io.Reader {
	if utf8.Valid(raw) {
		return bytes.NewReader(raw)
	}
	return transform.NewReader(bytes.NewReader(raw), charmap.ISO8859_1.NewDecoder())
}

func parseSeed(raw []byte) (*seed, error) {
	r := csv.NewReader(decode(raw))
	r.FieldsPerRecord = -1
	r.Comment = '#'
	r.TrimLeadingSpace = true

	var s seed
	line := 0
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line++
		switch strings.ToLower(strings.TrimSpace(rec[0])) {
		case "warehouse":
			if len(rec) < 3 || rec[1] == "" || rec[2] == "" {
				return nil, fmt.Errorf("línea %d: warehouse requiere nombre y tipo", line)
			}
			w := warehouseRow{name: strings.TrimSpace(rec[1]), typ: strings.TrimSpace(rec[2])}
			if len(rec) > 3 {
				w.location = strings.TrimSpace(rec[3])
			}
			s.warehouses = append(s.warehouses, w)
		case "user":
			if len(rec) < 4 || rec[1] == "" || rec[3] == "" {
				return nil, fmt.Errorf("línea %d: user requiere username, rol y password", line)
			}
			u := userRow{username: strings.TrimSpace(rec[1]), role: strings.TrimSpace(rec[2]), password: rec[3]}
			if !access.IsKnownRole(u.role) {
				return nil, fmt.Errorf("línea %d: rol desconocido %q", line, u.role)
			}
			if len(rec) > 4 {
				u.name = strings.TrimSpace(rec[4])
			}
			s.users = append(s.users, u)
		default:
			return nil, fmt.Errorf("línea %d: tipo de registro desconocido %q", line, rec[0])
		}
	}
	return &s, nil
}

// writeSQL escribe INSERTs idempotentes. Los IDs se derivan del contenido para que regenerar no duplique filas.
func writeSQL(w io.Writer, s *seed, hash hashFunc) error {
	var b strings.Builder
	b.WriteString("-- Bodegas y usuarios iniciales\n")
	b.WriteString("-- Generado por cmd/seed\n\n")

	if len(s.warehouses) > 0 {
		b.WriteString("-- 1. Bodegas\n")
		b.WriteString("INSERT INTO warehouses (id, name, type, location) VALUES\n")
		for i, wh := range s.warehouses {
			id := uuid.NewSHA1(uuid.NameSpaceOID, []byte("warehouse:"+wh.typ+":"+wh.name))
			fmt.Fprintf(&b, "  ('%s', '%s', '%s', %s)", id, escapeSQL(wh.name), escapeSQL(wh.typ), nullable(wh.location))
			b.WriteString(sep(i, len(s.warehouses)))
		}
		b.WriteString("ON CONFLICT (id) DO NOTHING;\n\n")
	}

	if len(s.users) > 0 {
		b.WriteString("-- 2. Usuarios (password con bcrypt)\n")
		b.WriteString("INSERT INTO users (id, username, password_hash, role, name) VALUES\n")
		for i, u := range s.users {
			h, err := hash(u.password)
			if err != nil {
				return fmt.Errorf("hash de %s: %w", u.username, err)
			}
			id := uuid.NewSHA1(uuid.NameSpaceOID, []byte("user:"+u.username))
			fmt.Fprintf(&b, "  ('%s', '%s', '%s', '%s', %s)", id, escapeSQL(u.username), h, u.role, nullable(u.name))
			b.WriteString(sep(i, len(s.users)))
		}
		b.WriteString("ON CONFLICT (username) DO NOTHING;\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func sep(i, n int) string {
	if i < n-1 {
		return ",\n"
	}
	return "\n"
}

func nullable(s string) string {
	if s == "" {
		return "NULL"
	}
	return "'" + escapeSQL(s) + "'"
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
