package db

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/crypto/bcrypt"

	"metrodms/models"
)

var ErrEmailMismatch = errors.New("db: credential email does not match profile email")

// Seed is one row of the fixed credential table. The plaintext password
// only lives here; the store keeps its bcrypt hash.
type Seed struct {
	Email    string
	Password string
	Profile  models.Profile
}

// DefaultSeeds is the demo credential table, one login per role.
var DefaultSeeds = []Seed{
	{
		Email:    "executive@metrorail.com",
		Password: "exec123",
		Profile:  models.Profile{ID: "1", Name: "Sarah Johnson", Email: "executive@metrorail.com", Role: models.RoleExecutive},
	},
	{
		Email:    "staff@metrorail.com",
		Password: "staff123",
		Profile:  models.Profile{ID: "2", Name: "Mike Chen", Email: "staff@metrorail.com", Role: models.RoleStaff},
	},
	{
		Email:    "vendor@metrorail.com",
		Password: "vendor123",
		Profile:  models.Profile{ID: "3", Name: "Alice Kumar", Email: "vendor@metrorail.com", Role: models.RoleVendor},
	},
}

const bcryptCost = bcrypt.DefaultCost

// DummyHash is compared against when an email is unknown so both paths
// cost one bcrypt comparison.
var DummyHash string

func init() {
	h, err := bcrypt.GenerateFromPassword([]byte("metrodms-dummy-password"), bcryptCost)
	if err != nil {
		panic(fmt.Sprintf("db: dummy hash: %v", err))
	}
	DummyHash = string(h)
}

// CredentialStore is the read-only email -> entry table.
type CredentialStore struct {
	DB *sql.DB
}

// InitDB opens the database, creates the credentials table and loads seeds
// into it. Rows from an earlier run are replaced, so the table always equals
// seeds.
func InitDB(dataSourceName string, seeds []Seed) (*CredentialStore, error) {
	conn, err := sql.Open("sqlite3", dataSourceName)
	if err != nil {
		return nil, err
	}
	// Every connection to ":memory:" is a separate database.
	conn.SetMaxOpenConns(1)

	createTables := `
	CREATE TABLE IF NOT EXISTS credentials (
		email TEXT PRIMARY KEY,
		password_hash TEXT NOT NULL,
		user_id TEXT NOT NULL,
		name TEXT NOT NULL,
		role TEXT NOT NULL
	);
	`
	if _, err := conn.Exec(createTables); err != nil {
		conn.Close()
		return nil, fmt.Errorf("db: create tables: %w", err)
	}

	if err := seed(conn, seeds); err != nil {
		conn.Close()
		return nil, err
	}

	return &CredentialStore{DB: conn}, nil
}

func seed(conn *sql.DB, seeds []Seed) error {
	tx, err := conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM credentials"); err != nil {
		return fmt.Errorf("db: clear credentials: %w", err)
	}

	for _, s := range seeds {
		if s.Email != s.Profile.Email {
			return fmt.Errorf("%w: %q vs %q", ErrEmailMismatch, s.Email, s.Profile.Email)
		}
		hash, err := HashPassword(s.Password)
		if err != nil {
			return fmt.Errorf("db: hash password for %s: %w", s.Email, err)
		}
		_, err = tx.Exec("INSERT INTO credentials (email, password_hash, user_id, name, role) VALUES (?, ?, ?, ?, ?)",
			s.Email, hash, s.Profile.ID, s.Profile.Name, string(s.Profile.Role))
		if err != nil {
			return fmt.Errorf("db: seed %s: %w", s.Email, err)
		}
	}

	return tx.Commit()
}

// Lookup returns the entry stored under exactly this email.
func (s *CredentialStore) Lookup(email string) (models.CredentialEntry, bool) {
	var entry models.CredentialEntry
	var role string
	err := s.DB.QueryRow("SELECT email, password_hash, user_id, name, role FROM credentials WHERE email = ?", email).
		Scan(&entry.Email, &entry.PasswordHash, &entry.Profile.ID, &entry.Profile.Name, &role)
	if err != nil {
		return models.CredentialEntry{}, false
	}
	entry.Profile.Email = entry.Email
	entry.Profile.Role = models.Role(role)
	return entry, true
}

// Count returns the number of stored credentials.
func (s *CredentialStore) Count() (int, error) {
	var n int
	err := s.DB.QueryRow("SELECT COUNT(*) FROM credentials").Scan(&n)
	return n, err
}

func (s *CredentialStore) Close() error {
	return s.DB.Close()
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
